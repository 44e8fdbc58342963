// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/battle-arena/internal/entities"
	"github.com/KirkDiggler/battle-arena/internal/repositories/savegame"
)

// RecordBuilder provides a fluent interface for building save records
type RecordBuilder struct {
	record *savegame.Record
}

// NewRecordBuilder starts from a knight at the first enemy with nothing
// equipped
func NewRecordBuilder() *RecordBuilder {
	return &RecordBuilder{
		record: &savegame.Record{
			Job:           string(entities.JobKnight),
			Player:        entities.Entity{Name: "Arthur", Health: 75, AttackPower: 15, DefensePower: 10},
			EquippedIndex: savegame.NoItemEquipped,
			EnemyIndex:    0,
			Enemy:         entities.DefaultRoster()[0],
		},
	}
}

// WithJob sets the job label
func (b *RecordBuilder) WithJob(job string) *RecordBuilder {
	b.record.Job = job
	return b
}

// WithPlayer sets the player's base stats
func (b *RecordBuilder) WithPlayer(player entities.Entity) *RecordBuilder {
	b.record.Player = player
	return b
}

// WithEquippedIndex sets the equipped slot
func (b *RecordBuilder) WithEquippedIndex(index int) *RecordBuilder {
	b.record.EquippedIndex = index
	return b
}

// WithEnemy sets the enemy index and its current stats
func (b *RecordBuilder) WithEnemy(index int, enemy entities.Entity) *RecordBuilder {
	b.record.EnemyIndex = index
	b.record.Enemy = enemy
	return b
}

// Build returns the record
func (b *RecordBuilder) Build() *savegame.Record {
	return b.record
}
