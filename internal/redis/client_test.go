package redis_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/battle-arena/internal/redis"
)

func TestNewClientRequiresEndpoint(t *testing.T) {
	client, err := redis.NewClient("", nil)
	assert.Error(t, err)
	assert.Nil(t, client)
}

func TestNewClientTalksToServer(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := redis.NewClient(mr.Addr(), &redis.Options{PoolSize: 2})
	require.NoError(t, err)
	defer func() {
		_ = client.Close() // nolint:errcheck // test cleanup
	}()

	require.NoError(t, client.Set(context.Background(), "k", "v", 0).Err())
	got, err := mr.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "v", got)
}

func TestNewClientAppliesOptions(t *testing.T) {
	client, err := redis.NewClient("cache:6380", &redis.Options{PoolSize: 4, UseTLS: true})
	require.NoError(t, err)
	defer func() {
		_ = client.Close() // nolint:errcheck // test cleanup
	}()

	native, ok := client.(*goredis.Client)
	require.True(t, ok)

	opts := native.Options()
	assert.Equal(t, "cache:6380", opts.Addr)
	assert.Equal(t, 4, opts.PoolSize)
	require.NotNil(t, opts.TLSConfig)
	assert.False(t, opts.TLSConfig.InsecureSkipVerify)
}

func TestNewClientWithoutTLS(t *testing.T) {
	client, err := redis.NewClient("cache:6380", nil)
	require.NoError(t, err)
	defer func() {
		_ = client.Close() // nolint:errcheck // test cleanup
	}()

	native, ok := client.(*goredis.Client)
	require.True(t, ok)
	assert.Nil(t, native.Options().TLSConfig)
}
