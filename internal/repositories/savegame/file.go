package savegame

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/KirkDiggler/battle-arena/internal/errors"
)

type fileRepository struct {
	path string
}

// FileConfig contains configuration for the flat-file save repository.
type FileConfig struct {
	Path string
}

// Validate validates the FileConfig.
func (cfg *FileConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("Path", cfg.Path, vb)
	return vb.Build()
}

// NewFile creates a save repository backed by a single text file
func NewFile(cfg *FileConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &fileRepository{path: cfg.Path}, nil
}

func (r *fileRepository) Save(ctx context.Context, input *SaveInput) (*SaveOutput, error) {
	if input == nil || input.Record == nil {
		return nil, errors.InvalidArgument("record is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := input.Record.MarshalText()
	if err != nil {
		return nil, err
	}

	// the target is only ever replaced by a complete record
	tmp, err := os.CreateTemp(filepath.Dir(r.path), filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create temp save file")
	}
	tmpName := tmp.Name()
	defer func() {
		_ = os.Remove(tmpName) // nolint:errcheck // already renamed on success
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close() // nolint:errcheck // write error takes precedence
		return nil, errors.Wrapf(err, "failed to write save file")
	}
	if err := tmp.Close(); err != nil {
		return nil, errors.Wrapf(err, "failed to close save file")
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		return nil, errors.Wrapf(err, "failed to replace save file")
	}

	slog.Info("Game saved", "path", r.path, "job", input.Record.Job, "enemy_index", input.Record.EnemyIndex)

	return &SaveOutput{}, nil
}

func (r *fileRepository) Load(ctx context.Context, _ *LoadInput) (*LoadOutput, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.NotFoundf("no save file at %s", r.path).WithMeta("path", r.path)
		}
		return nil, errors.Wrapf(err, "failed to read save file")
	}

	var record Record
	if err := record.UnmarshalText(data); err != nil {
		return nil, errors.Wrap(err, "save file is corrupt").WithMeta("path", r.path)
	}

	return &LoadOutput{Record: &record}, nil
}
