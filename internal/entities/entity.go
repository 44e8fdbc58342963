// Package entities holds the battle arena data model: combatants, items,
// the job catalogue and the enemy roster.
package entities

import (
	"math"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

// Entity types reported through core.Entity
const (
	EntityTypeEnemy  = "enemy"
	EntityTypePlayer = "player"
)

// Entity is the stat record shared by every combatant.
// Health is only changed through TakeDamage and may drop below zero;
// anything at or under zero counts as defeated.
type Entity struct {
	ID           string
	Name         string
	Health       float64
	AttackPower  float64
	DefensePower float64
}

// GetID returns the entity's process-local ID
func (e *Entity) GetID() string {
	return e.ID
}

// GetType returns the entity type for rpg-toolkit
func (e *Entity) GetType() string {
	return EntityTypeEnemy
}

// GetName returns the display name
func (e *Entity) GetName() string {
	return e.Name
}

// DerivedAttack is the attack used in combat. Plain entities have no
// equipment so it is the base value.
func (e *Entity) DerivedAttack() float64 {
	return e.AttackPower
}

// DerivedDefense is the defense used in combat.
func (e *Entity) DerivedDefense() float64 {
	return e.DefensePower
}

// TakeDamage subtracts amount from health without clamping.
func (e *Entity) TakeDamage(amount float64) {
	e.Health -= amount
}

// IsDefeated reports whether health has reached zero or below.
func (e *Entity) IsDefeated() bool {
	return e.Health <= 0
}

// DisplayHealth is health clamped at zero for rendering.
func (e *Entity) DisplayHealth() float64 {
	return math.Max(e.Health, 0)
}

var _ core.Entity = (*Entity)(nil)
