package engine

// AttackInput defines the request for a single attack
type AttackInput struct {
	Attacker Combatant
	Defender Combatant
}

// AttackOutput defines the result of a single attack
type AttackOutput struct {
	Damage           float64
	DefenderDefeated bool
}

// ResolveRoundInput defines the request for a battle round
type ResolveRoundInput struct {
	Player Combatant
	Enemy  Combatant
}

// ResolveRoundOutput defines the result of a battle round.
// EnemyAttack is nil when the enemy fell before it could counter.
type ResolveRoundOutput struct {
	PlayerAttack   *AttackOutput
	EnemyAttack    *AttackOutput
	PlayerDefeated bool
	EnemyDefeated  bool
}
