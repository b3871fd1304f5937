package watch

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receive(t *testing.T, ch <-chan []byte) []byte {
	t.Helper()

	select {
	case v, ok := <-ch:
		require.True(t, ok, "channel closed")

		return v
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for value")

		return nil
	}
}

func TestHub_PublishReachesSubscribersOfKey(t *testing.T) {
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a := hub.Subscribe(ctx, "cheeses")
	b := hub.Subscribe(ctx, "cheeses")
	other := hub.Subscribe(ctx, "reviews")

	hub.Publish("cheeses", []byte("v1"))

	assert.Equal(t, []byte("v1"), receive(t, a))
	assert.Equal(t, []byte("v1"), receive(t, b))
	select {
	case v := <-other:
		t.Fatalf("unexpected value %q on other key", v)
	default:
	}
}

func TestHub_SlowSubscriberSeesLatest(t *testing.T) {
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := hub.Subscribe(ctx, "cheeses")
	hub.Publish("cheeses", []byte("v1"))
	hub.Publish("cheeses", []byte("v2"))
	hub.Publish("cheeses", []byte("v3"))

	assert.Equal(t, []byte("v3"), receive(t, ch))
}

func TestHub_CancelClosesChannel(t *testing.T) {
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())

	ch := hub.Subscribe(ctx, "cheeses")
	require.Equal(t, 1, hub.Subscribers("cheeses"))

	cancel()

	select {
	case _, ok := <-ch:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("channel not closed after cancel")
	}
	assert.Eventually(t, func() bool { return hub.Subscribers("cheeses") == 0 }, time.Second, 10*time.Millisecond)

	// Publishing after the subscriber left must not panic.
	hub.Publish("cheeses", []byte("late"))
}

func TestHub_CloseThenCancel(t *testing.T) {
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())

	ch := hub.Subscribe(ctx, "cheeses")
	hub.Close()
	cancel()

	_, ok := <-ch
	assert.False(t, ok)
	time.Sleep(20 * time.Millisecond)
}
