// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"slices"
	"time"

	"cheeserater/internal/domain/repository"
	"cheeserater/internal/errors"
	"cheeserater/internal/infra/persistence/model"
	"cheeserater/internal/infra/persistence/postgres/query"
	"cheeserater/internal/infra/persistence/watch"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// kvStore implements repository.KVStore on the kv_documents table.
// Change notifications only reach subscribers in the same process.
type kvStore struct {
	q   *query.Query
	hub *watch.Hub
	now func() time.Time
}

// NewKVStore is the constructor for kvStore.
func NewKVStore(db *gorm.DB) repository.KVStore {
	return &kvStore{
		q:   query.Use(db),
		hub: watch.NewHub(),
		now: time.Now,
	}
}

// Migrate creates or updates the kv_documents table.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(&model.DocumentModel{}); err != nil {
		return errors.Wrap(err, "failed to migrate kv_documents")
	}

	return nil
}

// Get retrieves the document stored under key.
func (s *kvStore) Get(ctx context.Context, key string) ([]byte, error) {
	documentM, err := s.q.DocumentModel.WithContext(ctx).
		Where(s.q.DocumentModel.Key.Eq(key)).
		First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrKeyNotFound
		}

		return nil, errors.Wrap(err, "failed to find document by key")
	}

	return []byte(documentM.Value), nil
}

// Set upserts the document and notifies local subscribers.
func (s *kvStore) Set(ctx context.Context, key string, value []byte) error {
	documentM := model.DocumentModel{
		Key:       key,
		Value:     slices.Clone(value),
		UpdatedAt: s.now(),
	}

	documents := s.q.DocumentModel
	if err := documents.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: string(documents.Key.ColumnName())}},
			DoUpdates: clause.AssignmentColumns([]string{
				string(documents.Value.ColumnName()),
				string(documents.UpdatedAt.ColumnName()),
			}),
		}).
		Create(&documentM); err != nil {
		if column, ok := constraintViolation(err); ok {
			return errors.Wrapf(err, "document %s rejected by constraint on %q", key, column)
		}

		return errors.Wrap(err, "failed to upsert document")
	}

	s.hub.Publish(key, slices.Clone(value))

	return nil
}

// Subscribe registers for writes made through this store.
func (s *kvStore) Subscribe(ctx context.Context, key string) (<-chan []byte, error) {
	return s.hub.Subscribe(ctx, key), nil
}

// Close drops subscribers. The connection pool is closed by its lifecycle hook.
func (s *kvStore) Close() error {
	s.hub.Close()

	return nil
}
