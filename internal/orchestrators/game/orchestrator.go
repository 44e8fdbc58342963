// Package game runs the battle arena: the scene state machine, the battle
// loop and save/load.
package game

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/battle-arena/internal/engine"
	"github.com/KirkDiggler/battle-arena/internal/entities"
	"github.com/KirkDiggler/battle-arena/internal/errors"
	"github.com/KirkDiggler/battle-arena/internal/pkg/idgen"
	"github.com/KirkDiggler/battle-arena/internal/prompt"
	"github.com/KirkDiggler/battle-arena/internal/repositories/savegame"
)

// Service defines the game loop operations
type Service interface {
	// Run steps through scenes until the player quits.
	// Returns the prompter's error if input ends or ctx is cancelled
	Run(ctx context.Context) error

	// Step runs the current scene once
	Step(ctx context.Context) error

	// State exposes the live game state
	State() *State
}

// Config holds the dependencies for the game orchestrator
type Config struct {
	Prompter    prompt.Prompter
	SaveRepo    savegame.Repository
	Engine      engine.Engine
	EventBus    events.EventBus
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()

	if c.Prompter == nil {
		vb.RequiredField("Prompter")
	}
	if c.SaveRepo == nil {
		vb.RequiredField("SaveRepo")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	prompter prompt.Prompter
	saveRepo savegame.Repository
	engine   engine.Engine
	idGen    idgen.Generator

	state *State
}

// NewOrchestrator creates a game at the start menu
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	subscribeCombatLog(cfg.EventBus)

	return &orchestrator{
		prompter: cfg.Prompter,
		saveRepo: cfg.SaveRepo,
		engine:   cfg.Engine,
		idGen:    cfg.IDGenerator,
		state:    NewState(entities.NewRoster(cfg.IDGenerator)),
	}, nil
}

func (o *orchestrator) State() *State {
	return o.state
}

func (o *orchestrator) Run(ctx context.Context) error {
	slog.Info("Game started")

	for !o.state.GameOver {
		if err := o.Step(ctx); err != nil {
			slog.Warn("Game loop stopped",
				"scene", o.state.Scene.String(),
				"error", err,
			)
			return err
		}
	}

	slog.Info("Game over")
	return nil
}

func (o *orchestrator) Step(ctx context.Context) error {
	if o.state.GameOver {
		return nil
	}

	switch o.state.Scene {
	case SceneStartMenu:
		return o.startMenu(ctx)
	case SceneCharacterSelection:
		return o.characterSelection(ctx)
	case SceneBattle:
		return o.battle(ctx)
	case SceneRestartMenu:
		return o.restartMenu(ctx)
	default:
		return errors.Newf(errors.CodeInternal, "unknown scene %d", o.state.Scene)
	}
}

func (o *orchestrator) setScene(scene Scene) {
	if o.state.Scene != scene {
		slog.Debug("Scene changed",
			"from", o.state.Scene.String(),
			"to", scene.String(),
		)
	}
	o.state.Scene = scene
}
