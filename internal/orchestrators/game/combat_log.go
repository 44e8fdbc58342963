package game

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/battle-arena/internal/engine"
)

const combatLogPriority = 100

func subscribeCombatLog(bus events.EventBus) {
	bus.SubscribeFunc(engine.EventAttackResolved, combatLogPriority, logAttackResolved)
	bus.SubscribeFunc(engine.EventEntityDefeated, combatLogPriority, logEntityDefeated)
}

func logAttackResolved(_ context.Context, event events.Event) error {
	damage, _ := event.Context().Get(engine.ContextKeyDamage)
	health, _ := event.Context().Get(engine.ContextKeyTargetHealth)

	slog.Debug("Attack resolved",
		"attacker_id", entityID(event.Source()),
		"defender_id", entityID(event.Target()),
		"damage", damage,
		"target_health", health,
	)
	return nil
}

func logEntityDefeated(_ context.Context, event events.Event) error {
	slog.Info("Entity defeated",
		"entity_id", entityID(event.Target()),
		"entity_type", entityType(event.Target()),
		"defeated_by", entityID(event.Source()),
	)
	return nil
}

func entityID(e core.Entity) string {
	if e == nil {
		return ""
	}
	return e.GetID()
}

func entityType(e core.Entity) string {
	if e == nil {
		return ""
	}
	return e.GetType()
}
