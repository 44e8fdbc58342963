// Package prompt is how the game talks to the player: menus, free text and
// messages.
package prompt

//go:generate mockgen -destination=mock/mock_prompter.go -package=promptmock github.com/KirkDiggler/battle-arena/internal/prompt Prompter

import (
	"context"
)

// Prompter blocks until the player answers
type Prompter interface {
	// Choose shows description and options and returns the zero-based index
	// of the option picked. Invalid answers are re-prompted, never returned.
	// Returns errors.Unavailable when input is closed
	Choose(ctx context.Context, description string, options []string) (int, error)

	// ReadLine shows description and returns one line of text
	// Returns errors.Unavailable when input is closed
	ReadLine(ctx context.Context, description string) (string, error)

	// Say shows a message
	Say(message string)
}
