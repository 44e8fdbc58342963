package game

import (
	"github.com/KirkDiggler/battle-arena/internal/entities"
	"github.com/KirkDiggler/battle-arena/internal/errors"
	"github.com/KirkDiggler/battle-arena/internal/repositories/savegame"
)

type restoredGame struct {
	player     *entities.Player
	roster     []entities.Entity
	enemyIndex int
}

// restore builds everything a loaded game needs without touching the live
// state.
func (o *orchestrator) restore(record *savegame.Record) (*restoredGame, error) {
	if record == nil {
		return nil, errors.DataLoss("save record is empty")
	}

	job, err := entities.LookupJob(record.Job)
	if err != nil {
		return nil, err
	}

	roster := entities.NewRoster(o.idGen)
	if record.EnemyIndex < 0 || record.EnemyIndex >= len(roster) {
		return nil, errors.DataLossf("enemy %d is not in the arena", record.EnemyIndex).
			WithMeta("enemy_index", record.EnemyIndex)
	}

	player := entities.NewPlayer(o.idGen.Generate(), record.Player.Name, job)
	player.Health = record.Player.Health
	player.AttackPower = record.Player.AttackPower
	player.DefensePower = record.Player.DefensePower

	if record.EquippedIndex != savegame.NoItemEquipped {
		if err := player.Equip(record.EquippedIndex); err != nil {
			return nil, errors.WrapWithCodef(err, errors.CodeDataLoss,
				"a %s has no item in slot %d", job.Name, record.EquippedIndex)
		}
	}

	enemy := record.Enemy
	enemy.ID = roster[record.EnemyIndex].ID
	roster[record.EnemyIndex] = enemy

	return &restoredGame{
		player:     player,
		roster:     roster,
		enemyIndex: record.EnemyIndex,
	}, nil
}

// recordFromState captures the player's base stats and the current enemy.
// Entity IDs are not persisted.
func recordFromState(s *State) *savegame.Record {
	equipped, ok := s.Player.EquippedIndex()
	if !ok {
		equipped = savegame.NoItemEquipped
	}

	player := s.Player.Entity
	player.ID = ""

	var enemy entities.Entity
	if current := s.CurrentEnemy(); current != nil {
		enemy = *current
		enemy.ID = ""
	}

	return &savegame.Record{
		Job:           string(s.Player.Job),
		Player:        player,
		EquippedIndex: equipped,
		EnemyIndex:    s.EnemyIndex,
		Enemy:         enemy,
	}
}
