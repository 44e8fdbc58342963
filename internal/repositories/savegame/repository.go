// Package savegame stores and restores the single save record
package savegame

//go:generate mockgen -destination=mock/mock_repository.go -package=savegamemock github.com/KirkDiggler/battle-arena/internal/repositories/savegame Repository

import (
	"context"
)

// Repository defines the interface for save record persistence
type Repository interface {
	// Save replaces the stored record
	// Returns errors.InvalidArgument for a nil or unencodable record
	// Returns errors.Internal for storage failures
	Save(ctx context.Context, input *SaveInput) (*SaveOutput, error)

	// Load reads the stored record
	// Returns errors.NotFound if nothing has been saved
	// Returns errors.DataLoss if the stored record cannot be decoded
	// Returns errors.Internal for storage failures
	Load(ctx context.Context, input *LoadInput) (*LoadOutput, error)
}

// SaveInput defines the input for saving a record
type SaveInput struct {
	Record *Record
}

// SaveOutput defines the output for saving a record
type SaveOutput struct {
	// Empty for now, can be extended later
}

// LoadInput defines the input for loading a record
type LoadInput struct {
	// Empty for now, the repository owns a single slot
}

// LoadOutput defines the output for loading a record
type LoadOutput struct {
	Record *Record
}
