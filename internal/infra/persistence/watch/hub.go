// Package watch fans out document writes to in-process subscribers.
package watch

import (
	"context"
	"sync"
)

// Hub delivers the latest value written under a key to every subscriber of
// that key. Slow subscribers skip intermediate values and only see the newest.
type Hub struct {
	mu     sync.Mutex
	nextID uint64
	subs   map[string]map[uint64]chan []byte
}

// NewHub creates an empty Hub.
func NewHub() *Hub {
	return &Hub{subs: make(map[string]map[uint64]chan []byte)}
}

// Subscribe registers interest in key. The channel is closed once ctx is done.
func (h *Hub) Subscribe(ctx context.Context, key string) <-chan []byte {
	ch := make(chan []byte, 1)

	h.mu.Lock()
	id := h.nextID
	h.nextID++
	if h.subs[key] == nil {
		h.subs[key] = make(map[uint64]chan []byte)
	}
	h.subs[key][id] = ch
	h.mu.Unlock()

	go func() {
		<-ctx.Done()

		h.mu.Lock()
		defer h.mu.Unlock()

		if _, ok := h.subs[key][id]; !ok {
			return
		}
		delete(h.subs[key], id)
		if len(h.subs[key]) == 0 {
			delete(h.subs, key)
		}
		close(ch)
	}()

	return ch
}

// Publish hands value to every current subscriber of key without blocking.
func (h *Hub) Publish(key string, value []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, ch := range h.subs[key] {
		select {
		case ch <- value:
		default:
			// Replace the undelivered value with the newer one.
			select {
			case <-ch:
			default:
			}
			ch <- value
		}
	}
}

// Subscribers returns the number of live subscriptions for key.
func (h *Hub) Subscribers(key string) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.subs[key])
}

// Close drops every subscription.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for key, subs := range h.subs {
		for id, ch := range subs {
			close(ch)
			delete(subs, id)
		}
		delete(h.subs, key)
	}
}
