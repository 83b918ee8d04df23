package session

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisStorage(t *testing.T) *RedisStorage {
	t.Helper()
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStorage(client)
}

func TestRedisStorageRoundTrip(t *testing.T) {
	ctx := context.Background()
	storage := newRedisStorage(t)

	_, present, err := storage.Read(ctx, KeyToken)
	require.NoError(t, err)
	assert.False(t, present)

	require.NoError(t, storage.Write(ctx, KeyToken, "t1"))
	val, present, err := storage.Read(ctx, KeyToken)
	require.NoError(t, err)
	require.True(t, present)
	assert.Equal(t, "t1", val)

	require.NoError(t, storage.Delete(ctx, KeyToken))
	_, present, err = storage.Read(ctx, KeyToken)
	require.NoError(t, err)
	assert.False(t, present)

	// Deleting an absent key is not an error.
	require.NoError(t, storage.Delete(ctx, KeyToken))
}

func TestStoreOverRedis(t *testing.T) {
	ctx := context.Background()
	storage := newRedisStorage(t)
	store := NewStore(storage, nil)

	store.Populate(ctx, freshToken(t), "alice", "a@b.com")
	assert.True(t, store.IsLoggedIn())

	restored := NewStore(storage, nil)
	restored.Hydrate(ctx)
	assert.True(t, restored.IsLoggedIn())

	restored.Clear(ctx)
	_, present, err := storage.Read(ctx, KeyUser)
	require.NoError(t, err)
	assert.False(t, present)
}
