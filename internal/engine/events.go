package engine

// Event types published on the event bus
const (
	EventAttackResolved = "combat.attack_resolved"
	EventEntityDefeated = "combat.entity_defeated"
)

// Event context keys
const (
	ContextKeyDamage       = "damage"
	ContextKeyTargetHealth = "target_health"
)
