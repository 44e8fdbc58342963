package savegame

import (
	"context"
	"log/slog"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/battle-arena/internal/errors"
	redisclient "github.com/KirkDiggler/battle-arena/internal/redis"
)

const saveKeyPrefix = "arena:save:"

type redisRepository struct {
	client redisclient.Client
	key    string
}

// RedisConfig contains configuration for the Redis save repository.
type RedisConfig struct {
	Client redisclient.Client
	Slot   string
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if cfg.Client == nil {
		vb.RequiredField("Client")
	}
	errors.ValidateRequired("Slot", cfg.Slot, vb)
	return vb.Build()
}

// NewRedis creates a save repository that keeps the encoded record under one
// Redis key per slot
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
		key:    saveKeyPrefix + cfg.Slot,
	}, nil
}

func (r *redisRepository) Save(ctx context.Context, input *SaveInput) (*SaveOutput, error) {
	if input == nil || input.Record == nil {
		return nil, errors.InvalidArgument("record is required")
	}

	data, err := input.Record.MarshalText()
	if err != nil {
		return nil, err
	}

	if err := r.client.Set(ctx, r.key, data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to save game")
	}

	slog.Info("Game saved", "key", r.key, "job", input.Record.Job, "enemy_index", input.Record.EnemyIndex)

	return &SaveOutput{}, nil
}

func (r *redisRepository) Load(ctx context.Context, _ *LoadInput) (*LoadOutput, error) {
	data, err := r.client.Get(ctx, r.key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("no saved game at %s", r.key).WithMeta("key", r.key)
		}
		return nil, errors.Wrapf(err, "failed to load game")
	}

	var record Record
	if err := record.UnmarshalText(data); err != nil {
		return nil, errors.Wrap(err, "saved game is corrupt").WithMeta("key", r.key)
	}

	return &LoadOutput{Record: &record}, nil
}
