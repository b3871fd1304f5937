// Package document stores typed values as JSON documents in a repository.KVStore.
package document

import (
	"context"
	"log/slog"
	"sync"

	domainerrors "cheeserater/internal/domain/errors"
	"cheeserater/internal/domain/repository"
	"cheeserater/internal/errors"

	"github.com/bytedance/sonic"
)

// codec keeps encoding/json compatible output so documents written by other
// clients of the store stay readable.
var codec = sonic.ConfigStd

// Locks serializes read-modify-write cycles per key within one process.
type Locks struct {
	locks sync.Map
}

func (l *Locks) lock(key string) func() {
	m, _ := l.locks.LoadOrStore(key, &sync.Mutex{})
	mu := m.(*sync.Mutex)
	mu.Lock()

	return mu.Unlock
}

// Document is a typed view of one key. Reads of a missing key yield the
// value produced by empty.
type Document[T any] struct {
	store  repository.KVStore
	locks  *Locks
	logger *slog.Logger
	key    string
	empty  func() T
}

// New creates a Document bound to key.
func New[T any](store repository.KVStore, locks *Locks, logger *slog.Logger, key string, empty func() T) *Document[T] {
	return &Document[T]{
		store:  store,
		locks:  locks,
		logger: logger,
		key:    key,
		empty:  empty,
	}
}

// Key returns the store key.
func (d *Document[T]) Key() string {
	return d.key
}

// Get returns the current value or the empty default.
func (d *Document[T]) Get(ctx context.Context) (T, error) {
	raw, err := d.store.Get(ctx, d.key)
	if errors.Is(err, repository.ErrKeyNotFound) {
		return d.empty(), nil
	}
	if err != nil {
		var zero T

		return zero, domainerrors.NewStoreError(err, "failed to read "+d.key)
	}

	return d.decode(raw)
}

// Set replaces the stored value.
func (d *Document[T]) Set(ctx context.Context, value T) error {
	raw, err := codec.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "failed to encode %s", d.key)
	}
	if err := d.store.Set(ctx, d.key, raw); err != nil {
		return domainerrors.NewStoreError(err, "failed to write "+d.key)
	}

	return nil
}

// Update reads the value, applies fn and writes the result back. Concurrent
// updates of the same key in this process run one after another. An error
// from fn aborts the write and is returned unchanged.
func (d *Document[T]) Update(ctx context.Context, fn func(T) (T, error)) (T, error) {
	unlock := d.locks.lock(d.key)
	defer unlock()

	var zero T

	current, err := d.Get(ctx)
	if err != nil {
		return zero, err
	}

	next, err := fn(current)
	if err != nil {
		return zero, err
	}

	if err := d.Set(ctx, next); err != nil {
		return zero, err
	}

	return next, nil
}

// Watch emits the decoded value after every write until ctx is done.
// Values that fail to decode are logged and skipped.
func (d *Document[T]) Watch(ctx context.Context) (<-chan T, error) {
	raw, err := d.store.Subscribe(ctx, d.key)
	if err != nil {
		return nil, domainerrors.NewStoreError(err, "failed to subscribe to "+d.key)
	}

	out := make(chan T)
	go func() {
		defer close(out)

		for b := range raw {
			value, err := d.decode(b)
			if err != nil {
				d.logger.WarnContext(ctx, "Skipping undecodable document",
					slog.String("key", d.key),
					slog.Any("error", err),
				)

				continue
			}

			select {
			case out <- value:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}

func (d *Document[T]) decode(raw []byte) (T, error) {
	value := d.empty()
	if err := codec.Unmarshal(raw, &value); err != nil {
		var zero T

		return zero, domainerrors.NewStoreError(errors.Wrapf(err, "failed to decode %s", d.key), "corrupt document "+d.key)
	}

	return value, nil
}
