package game

import (
	"github.com/KirkDiggler/battle-arena/internal/entities"
)

// Scene is one state of the game's top-level state machine
type Scene int

// Scenes
const (
	SceneStartMenu Scene = iota
	SceneCharacterSelection
	SceneBattle
	SceneRestartMenu
)

// String returns a human-readable scene name
func (s Scene) String() string {
	switch s {
	case SceneStartMenu:
		return "start_menu"
	case SceneCharacterSelection:
		return "character_selection"
	case SceneBattle:
		return "battle"
	case SceneRestartMenu:
		return "restart_menu"
	default:
		return "unknown"
	}
}

// State is everything the game loop mutates.
// EnemyIndex always addresses Roster; the current enemy is looked up, never
// stored.
type State struct {
	Scene      Scene
	GameOver   bool
	Roster     []entities.Entity
	EnemyIndex int
	Player     *entities.Player
	PlayerName string
}

// NewState starts a game at the start menu with a fresh roster
func NewState(roster []entities.Entity) *State {
	return &State{
		Scene:      SceneStartMenu,
		Roster:     roster,
		EnemyIndex: 0,
	}
}

// CurrentEnemy returns the enemy being fought, or nil if the roster is empty
func (s *State) CurrentEnemy() *entities.Entity {
	if s.EnemyIndex < 0 || s.EnemyIndex >= len(s.Roster) {
		return nil
	}
	return &s.Roster[s.EnemyIndex]
}

// HasNextEnemy reports whether another enemy follows the current one
func (s *State) HasNextEnemy() bool {
	return s.EnemyIndex+1 < len(s.Roster)
}

// ResetRoster replaces the roster and goes back to the first enemy
func (s *State) ResetRoster(roster []entities.Entity) {
	s.Roster = roster
	s.EnemyIndex = 0
}
