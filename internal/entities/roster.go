package entities

import (
	"github.com/KirkDiggler/battle-arena/internal/pkg/idgen"
)

// DefaultRoster returns the enemies in the order they are fought, without
// IDs.
func DefaultRoster() []Entity {
	return []Entity{
		{Name: "Slime", Health: 10, AttackPower: 5, DefensePower: 0},
		{Name: "Zombie", Health: 15, AttackPower: 10, DefensePower: 5},
		{Name: "Kris", Health: 25, AttackPower: 20, DefensePower: 10},
	}
}

// NewRoster returns a fresh copy of the default roster with an ID stamped on
// every enemy.
func NewRoster(gen idgen.Generator) []Entity {
	roster := DefaultRoster()
	for i := range roster {
		roster[i].ID = gen.Generate()
	}
	return roster
}
