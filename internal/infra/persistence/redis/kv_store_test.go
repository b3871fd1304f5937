package redis

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"cheeserater/config"
	"cheeserater/internal/domain/repository"
	"cheeserater/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestStore connects to REDIS_TEST_ADDR; the tests are skipped without it.
func newTestStore(t *testing.T) (repository.KVStore, string) {
	t.Helper()

	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR not set")
	}

	cfg := &config.Config{Redis: &config.RedisConfig{Addr: addr}}
	client, err := NewClient(cfg)
	require.NoError(t, err)

	store := NewKVStore(client, "test", slog.New(slog.NewTextHandler(io.Discard, nil)))
	t.Cleanup(func() { _ = store.Close() })

	return store, util.NewID("test:")
}

func TestNewClient_RequiresAddr(t *testing.T) {
	_, err := NewClient(&config.Config{})
	assert.Error(t, err)
}

func TestChannelName(t *testing.T) {
	store := NewKVStore(nil, "cheeserater", nil).(*kvStore)
	assert.Equal(t, "cheeserater:changes:cheeses", store.channel("cheeses"))

	bare := NewKVStore(nil, "", nil).(*kvStore)
	assert.Equal(t, "changes:reviews", bare.channel("reviews"))
}

func TestKVStore_RoundTrip(t *testing.T) {
	store, key := newTestStore(t)
	ctx := context.Background()

	_, err := store.Get(ctx, key)
	require.ErrorIs(t, err, repository.ErrKeyNotFound)

	require.NoError(t, store.Set(ctx, key, []byte(`{"nickname":"Ann"}`)))

	got, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.JSONEq(t, `{"nickname":"Ann"}`, string(got))
}

func TestKVStore_Subscribe(t *testing.T) {
	store, key := newTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := store.Subscribe(ctx, key)
	require.NoError(t, err)

	require.NoError(t, store.Set(ctx, key, []byte("[]")))

	select {
	case v := <-ch:
		assert.Equal(t, "[]", string(v))
	case <-time.After(2 * time.Second):
		t.Fatal("no change notification")
	}
}
