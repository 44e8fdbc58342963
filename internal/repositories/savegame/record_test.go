package savegame_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/battle-arena/internal/entities"
	"github.com/KirkDiggler/battle-arena/internal/errors"
	"github.com/KirkDiggler/battle-arena/internal/repositories/savegame"
	"github.com/KirkDiggler/battle-arena/internal/testutils"
	"github.com/KirkDiggler/battle-arena/internal/testutils/builders"
)

type RecordTestSuite struct {
	suite.Suite
}

func TestRecordSuite(t *testing.T) {
	suite.Run(t, new(RecordTestSuite))
}

func (s *RecordTestSuite) TestMarshalTextLayout() {
	data, err := testutils.CreateTestRecord().MarshalText()
	s.Require().NoError(err)
	s.Equal(testutils.EncodedTestRecord, string(data))
}

func (s *RecordTestSuite) TestMarshalTextNothingEquipped() {
	data, err := builders.NewRecordBuilder().Build().MarshalText()
	s.Require().NoError(err)
	s.Equal("Knight\nArthur\n75\n15\n10\n-1\n0\nSlime\n10\n5\n0\n", string(data))
}

func (s *RecordTestSuite) TestMarshalTextRejectsLineBreaks() {
	record := builders.NewRecordBuilder().
		WithPlayer(entities.Entity{Name: "two\nlines", Health: 1}).
		Build()

	_, err := record.MarshalText()
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *RecordTestSuite) TestUnmarshalText() {
	var record savegame.Record
	s.Require().NoError(record.UnmarshalText([]byte(testutils.EncodedTestRecord)))
	s.Equal(*testutils.CreateTestRecord(), record)
}

func (s *RecordTestSuite) TestUnmarshalTextToleratesCRLFAndTrailingBlankLines() {
	crlf := "Wizard\r\nMerlin\r\n40\r\n25\r\n5\r\n1\r\n1\r\nZombie\r\n7.5\r\n10\r\n5\r\n\r\n\r\n"

	var record savegame.Record
	s.Require().NoError(record.UnmarshalText([]byte(crlf)))
	s.Equal(*testutils.CreateTestRecord(), record)
}

func (s *RecordTestSuite) TestRoundTrip() {
	original := builders.NewRecordBuilder().
		WithJob(string(entities.JobWizard)).
		WithPlayer(entities.Entity{Name: "Sir Robin", Health: 12.25, AttackPower: 25, DefensePower: 5}).
		WithEquippedIndex(0).
		WithEnemy(2, entities.Entity{Name: "Kris", Health: -3, AttackPower: 20, DefensePower: 10}).
		Build()

	data, err := original.MarshalText()
	s.Require().NoError(err)

	var decoded savegame.Record
	s.Require().NoError(decoded.UnmarshalText(data))
	s.Equal(*original, decoded)
}

func (s *RecordTestSuite) TestUnmarshalTextFailures() {
	testCases := []struct {
		name string
		data string
	}{
		{
			name: "empty",
			data: "",
		},
		{
			name: "missing enemy",
			data: "Wizard\nMerlin\n40\n25\n5\n1\n1\n",
		},
		{
			name: "non-numeric enemy index",
			data: "Wizard\nMerlin\n40\n25\n5\n1\nsecond\nZombie\n7.5\n10\n5\n",
		},
		{
			name: "fractional equipped index",
			data: "Wizard\nMerlin\n40\n25\n5\n1.5\n1\nZombie\n7.5\n10\n5\n",
		},
		{
			name: "non-numeric health",
			data: "Wizard\nMerlin\nlots\n25\n5\n1\n1\nZombie\n7.5\n10\n5\n",
		},
		{
			name: "NaN enemy health",
			data: "Wizard\nMerlin\n40\n25\n5\n1\n0\nSlime\nNaN\n5\n0\n",
		},
		{
			name: "infinite player attack",
			data: "Wizard\nMerlin\n40\nInf\n5\n1\n0\nSlime\n10\n5\n0\n",
		},
		{
			name: "negative infinite enemy defense",
			data: "Wizard\nMerlin\n40\n25\n5\n1\n0\nSlime\n10\n5\n-Inf\n",
		},
		{
			name: "extra content",
			data: testutils.EncodedTestRecord + "surprise\n",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			record := *testutils.CreateTestRecord()
			before := record

			err := record.UnmarshalText([]byte(tc.data))
			s.Require().Error(err)
			s.True(errors.IsDataLoss(err), "got %v", err)
			s.Equal(before, record, "record must not be partially written")
		})
	}
}

func (s *RecordTestSuite) TestUnmarshalTextReportsLine() {
	var record savegame.Record
	err := record.UnmarshalText([]byte("Wizard\nMerlin\n40\n25\n5\n1\nsecond\nZombie\n7.5\n10\n5\n"))
	s.Require().Error(err)
	s.Equal(7, errors.GetMeta(err)["line"])
}

func (s *RecordTestSuite) TestUnmarshalTextReportsNonFiniteLine() {
	var record savegame.Record
	err := record.UnmarshalText([]byte("Wizard\nMerlin\n40\n25\n5\n1\n0\nSlime\nNaN\n5\n0\n"))
	s.Require().Error(err)
	s.True(errors.IsDataLoss(err))
	s.Equal(9, errors.GetMeta(err)["line"])
	s.Contains(errors.GetMessage(err), "not a finite number")
}
