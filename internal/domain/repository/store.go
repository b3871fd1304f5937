// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"cheeserater/internal/errors"
)

// ErrKeyNotFound is returned by KVStore.Get when nothing was ever written under the key.
var ErrKeyNotFound = errors.New("key not found")

// KVStore is a key-value store holding whole serialized documents.
type KVStore interface {
	// Get returns the stored bytes or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set replaces the stored bytes and notifies subscribers of the key.
	Set(ctx context.Context, key string, value []byte) error

	// Subscribe delivers every value written under key after the call returns.
	// The channel is closed once ctx is done.
	Subscribe(ctx context.Context, key string) (<-chan []byte, error)

	// Close releases connections held by the store.
	Close() error
}
