package repository

import (
	"context"

	"cheeserater/internal/domain/entity"
)

// ReviewUpdater derives the next review list from the current one.
type ReviewUpdater func(current []entity.Review) ([]entity.Review, error)

// ReviewRepository persists the single review-list document shared by all users.
type ReviewRepository interface {
	Load(ctx context.Context) ([]entity.Review, error)
	Update(ctx context.Context, fn ReviewUpdater) ([]entity.Review, error)
	Watch(ctx context.Context) (<-chan []entity.Review, error)
}
