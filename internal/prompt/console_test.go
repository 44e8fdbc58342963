package prompt_test

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/battle-arena/internal/errors"
	"github.com/KirkDiggler/battle-arena/internal/prompt"
)

type ConsoleTestSuite struct {
	suite.Suite
	out *bytes.Buffer
	ctx context.Context
}

func TestConsoleSuite(t *testing.T) {
	suite.Run(t, new(ConsoleTestSuite))
}

func (s *ConsoleTestSuite) SetupTest() {
	s.out = &bytes.Buffer{}
	s.ctx = context.Background()
}

func (s *ConsoleTestSuite) newConsole(input string) *prompt.Console {
	console, err := prompt.NewConsole(&prompt.ConsoleConfig{In: strings.NewReader(input), Out: s.out})
	s.Require().NoError(err)
	return console
}

func (s *ConsoleTestSuite) TestNewConsoleValidation() {
	_, err := prompt.NewConsole(&prompt.ConsoleConfig{Out: io.Discard})
	s.True(errors.IsInvalidArgument(err))

	_, err = prompt.NewConsole(nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *ConsoleTestSuite) TestChooseByNumber() {
	console := s.newConsole("2\n")

	index, err := console.Choose(s.ctx, "Pick one", []string{"Wizard", "Knight"})
	s.Require().NoError(err)
	s.Equal(1, index)
	s.Equal("Pick one\n1. Wizard\n2. Knight\n> ", s.out.String())
}

func (s *ConsoleTestSuite) TestChooseByName() {
	console := s.newConsole("  knight \n")

	index, err := console.Choose(s.ctx, "Pick one", []string{"Wizard", "Knight"})
	s.Require().NoError(err)
	s.Equal(1, index)
}

func (s *ConsoleTestSuite) TestChooseRepromptsOnInvalidInput() {
	console := s.newConsole("0\n3\nbanana\n\n1\n")

	index, err := console.Choose(s.ctx, "Pick one", []string{"Attack", "Save"})
	s.Require().NoError(err)
	s.Equal(0, index)
	s.Equal(4, strings.Count(s.out.String(), prompt.InvalidInputMessage))
	s.Equal(5, strings.Count(s.out.String(), "Pick one"))
}

func (s *ConsoleTestSuite) TestChooseClosedInput() {
	console := s.newConsole("9\n")

	_, err := console.Choose(s.ctx, "Pick one", []string{"Attack"})
	s.Require().Error(err)
	s.True(errors.IsUnavailable(err))
	s.ErrorIs(err, io.EOF)
}

func (s *ConsoleTestSuite) TestChooseRequiresOptions() {
	_, err := s.newConsole("1\n").Choose(s.ctx, "Nothing", nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *ConsoleTestSuite) TestChooseCanceledContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := s.newConsole("1\n").Choose(ctx, "Pick", []string{"a"})
	s.ErrorIs(err, context.Canceled)
	s.Empty(s.out.String())
}

func (s *ConsoleTestSuite) TestChooseUnblocksWhenCanceledMidRead() {
	in, writer := io.Pipe()
	defer func() {
		_ = writer.Close() // nolint:errcheck // test cleanup
	}()

	console, err := prompt.NewConsole(&prompt.ConsoleConfig{In: in, Out: s.out})
	s.Require().NoError(err)

	ctx, cancel := context.WithCancel(s.ctx)
	done := make(chan error, 1)
	go func() {
		_, err := console.Choose(ctx, "What will you do?", []string{"Attack", "Save"})
		done <- err
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		s.ErrorIs(err, context.Canceled)
		s.True(errors.IsCanceled(err))
	case <-time.After(time.Second):
		s.Fail("Choose still waiting after cancel")
	}
}

func (s *ConsoleTestSuite) TestLineAfterCancelGoesToNextPrompt() {
	in, writer := io.Pipe()
	defer func() {
		_ = writer.Close() // nolint:errcheck // test cleanup
	}()

	console, err := prompt.NewConsole(&prompt.ConsoleConfig{In: in, Out: s.out})
	s.Require().NoError(err)

	ctx, cancel := context.WithCancel(s.ctx)
	done := make(chan error, 1)
	go func() {
		_, err := console.ReadLine(ctx, "Name?")
		done <- err
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()
	s.Require().ErrorIs(<-done, context.Canceled)

	go func() {
		_, _ = writer.Write([]byte("2\n")) // nolint:errcheck // test input
	}()

	index, err := console.Choose(s.ctx, "Pick", []string{"a", "b"})
	s.Require().NoError(err)
	s.Equal(1, index)
}

func (s *ConsoleTestSuite) TestReadLine() {
	console := s.newConsole("  Sir Robin  \r\n")

	line, err := console.ReadLine(s.ctx, "Please enter your name.")
	s.Require().NoError(err)
	s.Equal("Sir Robin", line)
	s.Equal("Please enter your name.\n> ", s.out.String())
}

func (s *ConsoleTestSuite) TestReadLineWithoutTrailingNewline() {
	line, err := s.newConsole("Merlin").ReadLine(s.ctx, "Name?")
	s.Require().NoError(err)
	s.Equal("Merlin", line)
}

func (s *ConsoleTestSuite) TestReadLineClosedInput() {
	_, err := s.newConsole("").ReadLine(s.ctx, "Name?")
	s.True(errors.IsUnavailable(err))
}

func (s *ConsoleTestSuite) TestSay() {
	s.newConsole("").Say("You dealt 25 damage!")
	s.Equal("You dealt 25 damage!\n", s.out.String())
}
