package repository

import (
	"context"

	"cheeserater/internal/domain/entity"
)

// CatalogUpdater derives the next catalog from the current one. Returning an
// error aborts the write.
type CatalogUpdater func(current []entity.Cheese) ([]entity.Cheese, error)

// CatalogRepository persists the single catalog document.
type CatalogRepository interface {
	// Load returns the catalog, or an empty one if it was never written.
	Load(ctx context.Context) ([]entity.Cheese, error)

	// Update applies fn to the current catalog and stores the result.
	Update(ctx context.Context, fn CatalogUpdater) ([]entity.Cheese, error)

	// Watch emits the catalog after every write until ctx is done.
	Watch(ctx context.Context) (<-chan []entity.Cheese, error)
}
