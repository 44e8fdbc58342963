// Package engine resolves combat between two combatants
package engine

import (
	"context"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

// Engine resolves attacks and battle rounds
type Engine interface {
	// Attack applies one attacker's damage to a defender
	Attack(ctx context.Context, input *AttackInput) (*AttackOutput, error)

	// ResolveRound runs one player attack and, if the enemy survives, its
	// counter-attack, then reports who is defeated
	ResolveRound(ctx context.Context, input *ResolveRoundInput) (*ResolveRoundOutput, error)
}

// Combatant is anything that can take part in a fight
type Combatant interface {
	core.Entity
	GetName() string
	DerivedAttack() float64
	DerivedDefense() float64
	TakeDamage(amount float64)
	IsDefeated() bool
}
