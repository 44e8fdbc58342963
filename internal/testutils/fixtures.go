package testutils

import (
	"github.com/KirkDiggler/battle-arena/internal/entities"
	"github.com/KirkDiggler/battle-arena/internal/repositories/savegame"
)

// TestPlayerName is the default player name for fixtures
const TestPlayerName = "Merlin"

// CreateTestWizard returns a fresh wizard with nothing equipped
func CreateTestWizard() *entities.Player {
	job, err := entities.LookupJob(string(entities.JobWizard))
	if err != nil {
		panic(err)
	}
	return entities.NewPlayer("player-test-001", TestPlayerName, job)
}

// CreateTestRecord returns a save record for a wizard wearing shoes, part
// way through the fight with the zombie
func CreateTestRecord() *savegame.Record {
	return &savegame.Record{
		Job: string(entities.JobWizard),
		Player: entities.Entity{
			Name:         TestPlayerName,
			Health:       40,
			AttackPower:  25,
			DefensePower: 5,
		},
		EquippedIndex: 1,
		EnemyIndex:    1,
		Enemy: entities.Entity{
			Name:         "Zombie",
			Health:       7.5,
			AttackPower:  10,
			DefensePower: 5,
		},
	}
}

// EncodedTestRecord is CreateTestRecord in its stored form
const EncodedTestRecord = `Wizard
Merlin
40
25
5
1
1
Zombie
7.5
10
5
`
