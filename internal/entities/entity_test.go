package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/battle-arena/internal/entities"
	"github.com/KirkDiggler/battle-arena/internal/errors"
	"github.com/KirkDiggler/battle-arena/internal/pkg/idgen"
)

func TestEntityTakeDamage(t *testing.T) {
	slime := &entities.Entity{Name: "Slime", Health: 10, AttackPower: 5}

	slime.TakeDamage(4)
	assert.Equal(t, 6.0, slime.Health)
	assert.False(t, slime.IsDefeated())

	slime.TakeDamage(25)
	assert.Equal(t, -19.0, slime.Health)
	assert.True(t, slime.IsDefeated())
	assert.Equal(t, 0.0, slime.DisplayHealth())
}

func TestEntityDefeatedAtExactlyZero(t *testing.T) {
	e := &entities.Entity{Health: 5}
	e.TakeDamage(5)
	assert.True(t, e.IsDefeated())
}

func TestEntityDerivedStatsAreBase(t *testing.T) {
	e := &entities.Entity{AttackPower: 7, DefensePower: 3}
	assert.Equal(t, 7.0, e.DerivedAttack())
	assert.Equal(t, 3.0, e.DerivedDefense())
	assert.Equal(t, entities.EntityTypeEnemy, e.GetType())
}

func TestLookupJob(t *testing.T) {
	knight, err := entities.LookupJob("Knight")
	require.NoError(t, err)
	assert.Equal(t, 75.0, knight.Health)
	assert.Equal(t, 15.0, knight.AttackPower)
	assert.Equal(t, 10.0, knight.DefensePower)

	_, err = entities.LookupJob("Bard")
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestJobsEachOwnOneAttackAndOneDefenseItem(t *testing.T) {
	jobs := entities.Jobs()
	require.Len(t, jobs, 2)

	for _, job := range jobs {
		require.Len(t, job.Items, 2, string(job.Name))
		types := map[entities.ItemType]int{}
		for _, item := range job.Items {
			types[item.Type]++
		}
		assert.Equal(t, 1, types[entities.ItemTypeAttack], string(job.Name))
		assert.Equal(t, 1, types[entities.ItemTypeDefense], string(job.Name))
	}
}

func TestNewRoster(t *testing.T) {
	roster := entities.NewRoster(idgen.NewSequential("enemy"))
	require.Len(t, roster, 3)

	assert.Equal(t, "enemy_1", roster[0].ID)
	assert.Equal(t, "Slime", roster[0].Name)
	assert.Equal(t, 10.0, roster[0].Health)
	assert.Equal(t, "Zombie", roster[1].Name)

	// each roster is independent
	roster[0].TakeDamage(100)
	assert.Equal(t, 10.0, entities.DefaultRoster()[0].Health)
}

func TestDefaultRosterStats(t *testing.T) {
	assert.Equal(t, []entities.Entity{
		{Name: "Slime", Health: 10, AttackPower: 5, DefensePower: 0},
		{Name: "Zombie", Health: 15, AttackPower: 10, DefensePower: 5},
		{Name: "Kris", Health: 25, AttackPower: 20, DefensePower: 10},
	}, entities.DefaultRoster())
}

func TestItemTypeString(t *testing.T) {
	assert.Equal(t, "Attack", entities.ItemTypeAttack.String())
	assert.Equal(t, "Defense", entities.ItemTypeDefense.String())
	assert.Equal(t, "Unknown", entities.ItemType(9).String())
}
