package engine

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/battle-arena/internal/errors"
)

type engine struct {
	eventBus events.EventBus
}

// Config holds the dependencies for the combat engine
type Config struct {
	EventBus events.EventBus
}

// Validate ensures all required dependencies are provided
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if cfg.EventBus == nil {
		vb.RequiredField("EventBus")
	}
	return vb.Build()
}

// New creates a combat engine
func New(cfg *Config) (Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &engine{eventBus: cfg.EventBus}, nil
}

// CalculateDamage returns attack minus defense, or 0 when the attack does not
// exceed the defense.
func CalculateDamage(attackPower, defensePower float64) float64 {
	if attackPower > defensePower {
		return attackPower - defensePower
	}
	return 0
}

func (e *engine) Attack(ctx context.Context, input *AttackInput) (*AttackOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Attacker == nil || input.Defender == nil {
		return nil, errors.InvalidArgument("attacker and defender are required")
	}

	damage := CalculateDamage(input.Attacker.DerivedAttack(), input.Defender.DerivedDefense())
	input.Defender.TakeDamage(damage)

	output := &AttackOutput{
		Damage:           damage,
		DefenderDefeated: input.Defender.IsDefeated(),
	}

	e.publishAttack(ctx, input, output)

	return output, nil
}

func (e *engine) ResolveRound(ctx context.Context, input *ResolveRoundInput) (*ResolveRoundOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	playerAttack, err := e.Attack(ctx, &AttackInput{Attacker: input.Player, Defender: input.Enemy})
	if err != nil {
		return nil, errors.Wrap(err, "player attack failed")
	}

	output := &ResolveRoundOutput{PlayerAttack: playerAttack}

	if !playerAttack.DefenderDefeated {
		output.EnemyAttack, err = e.Attack(ctx, &AttackInput{Attacker: input.Enemy, Defender: input.Player})
		if err != nil {
			return nil, errors.Wrap(err, "enemy attack failed")
		}
	}

	// both sides are checked every round
	output.PlayerDefeated = input.Player.IsDefeated()
	output.EnemyDefeated = input.Enemy.IsDefeated()

	return output, nil
}

func (e *engine) publishAttack(ctx context.Context, input *AttackInput, output *AttackOutput) {
	attackEvent := events.NewGameEvent(EventAttackResolved, input.Attacker, input.Defender)
	attackEvent.Context().Set(ContextKeyDamage, output.Damage)
	attackEvent.Context().Set(ContextKeyTargetHealth, healthOf(input.Defender))
	e.publish(ctx, attackEvent)

	if output.DefenderDefeated {
		e.publish(ctx, events.NewGameEvent(EventEntityDefeated, input.Attacker, input.Defender))
	}
}

// publish logs and drops bus errors.
func (e *engine) publish(ctx context.Context, event events.Event) {
	if err := e.eventBus.Publish(ctx, event); err != nil {
		slog.Warn("Failed to publish combat event",
			"event_type", event.Type(),
			"error", err,
		)
	}
}

type healthReporter interface {
	DisplayHealth() float64
}

func healthOf(c Combatant) float64 {
	if h, ok := c.(healthReporter); ok {
		return h.DisplayHealth()
	}
	return 0
}
