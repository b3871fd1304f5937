package document

import (
	"context"
	"log/slog"

	"cheeserater/config"
	"cheeserater/internal/domain/entity"
	"cheeserater/internal/domain/repository"
)

const (
	catalogKey       = "cheeses"
	reviewsKey       = "reviews"
	profileKeyPrefix = "user-profile:"
)

// Keys builds store keys under an optional namespace.
type Keys struct {
	Prefix string
}

// NewKeys reads the namespace from the store configuration.
func NewKeys(cfg *config.Config) Keys {
	return Keys{Prefix: cfg.Store.KeyPrefix}
}

func (k Keys) key(name string) string {
	if k.Prefix == "" {
		return name
	}

	return k.Prefix + ":" + name
}

// Catalog is the key of the catalog document.
func (k Keys) Catalog() string { return k.key(catalogKey) }

// Reviews is the key of the review list document.
func (k Keys) Reviews() string { return k.key(reviewsKey) }

// Profile is the key of a user's profile document.
func (k Keys) Profile(userID string) string { return k.key(profileKeyPrefix + userID) }

func emptyCatalog() []entity.Cheese { return []entity.Cheese{} }

func emptyReviews() []entity.Review { return []entity.Review{} }

type catalogRepository struct {
	doc *Document[[]entity.Cheese]
}

// NewCatalogRepository stores the catalog under Keys.Catalog.
func NewCatalogRepository(store repository.KVStore, locks *Locks, keys Keys, logger *slog.Logger) repository.CatalogRepository {
	return &catalogRepository{
		doc: New(store, locks, logger, keys.Catalog(), emptyCatalog),
	}
}

func (r *catalogRepository) Load(ctx context.Context) ([]entity.Cheese, error) {
	items, err := r.doc.Get(ctx)

	return orEmpty(items), err
}

func (r *catalogRepository) Update(ctx context.Context, fn repository.CatalogUpdater) ([]entity.Cheese, error) {
	items, err := r.doc.Update(ctx, func(current []entity.Cheese) ([]entity.Cheese, error) {
		return fn(orEmpty(current))
	})

	return orEmpty(items), err
}

func (r *catalogRepository) Watch(ctx context.Context) (<-chan []entity.Cheese, error) {
	return watchNormalized(ctx, r.doc, orEmpty[entity.Cheese])
}

type reviewRepository struct {
	doc *Document[[]entity.Review]
}

// NewReviewRepository stores the review list under Keys.Reviews.
func NewReviewRepository(store repository.KVStore, locks *Locks, keys Keys, logger *slog.Logger) repository.ReviewRepository {
	return &reviewRepository{
		doc: New(store, locks, logger, keys.Reviews(), emptyReviews),
	}
}

func (r *reviewRepository) Load(ctx context.Context) ([]entity.Review, error) {
	reviews, err := r.doc.Get(ctx)

	return orEmpty(reviews), err
}

func (r *reviewRepository) Update(ctx context.Context, fn repository.ReviewUpdater) ([]entity.Review, error) {
	reviews, err := r.doc.Update(ctx, func(current []entity.Review) ([]entity.Review, error) {
		return fn(orEmpty(current))
	})

	return orEmpty(reviews), err
}

func (r *reviewRepository) Watch(ctx context.Context) (<-chan []entity.Review, error) {
	return watchNormalized(ctx, r.doc, orEmpty[entity.Review])
}

type profileRepository struct {
	store  repository.KVStore
	locks  *Locks
	keys   Keys
	logger *slog.Logger
}

// NewProfileRepository stores one profile per user under Keys.Profile.
func NewProfileRepository(store repository.KVStore, locks *Locks, keys Keys, logger *slog.Logger) repository.ProfileRepository {
	return &profileRepository{
		store:  store,
		locks:  locks,
		keys:   keys,
		logger: logger,
	}
}

func (r *profileRepository) doc(userID string) *Document[entity.UserProfile] {
	return New(r.store, r.locks, r.logger, r.keys.Profile(userID), entity.EmptyProfile)
}

func (r *profileRepository) Load(ctx context.Context, userID string) (entity.UserProfile, error) {
	profile, err := r.doc(userID).Get(ctx)

	return normalizeProfile(profile), err
}

func (r *profileRepository) Update(ctx context.Context, userID string, fn repository.ProfileUpdater) (entity.UserProfile, error) {
	profile, err := r.doc(userID).Update(ctx, func(current entity.UserProfile) (entity.UserProfile, error) {
		return fn(normalizeProfile(current))
	})

	return normalizeProfile(profile), err
}

func (r *profileRepository) Watch(ctx context.Context, userID string) (<-chan entity.UserProfile, error) {
	return watchNormalized(ctx, r.doc(userID), normalizeProfile)
}

// orEmpty turns a JSON null into an empty list.
func orEmpty[E any](items []E) []E {
	if items == nil {
		return []E{}
	}

	return items
}

func normalizeProfile(p entity.UserProfile) entity.UserProfile {
	p.TriedCheeses = orEmpty(p.TriedCheeses)
	p.Wishlist = orEmpty(p.Wishlist)

	return p
}

func watchNormalized[T any](ctx context.Context, doc *Document[T], normalize func(T) T) (<-chan T, error) {
	in, err := doc.Watch(ctx)
	if err != nil {
		return nil, err
	}

	out := make(chan T)
	go func() {
		defer close(out)

		for v := range in {
			select {
			case out <- normalize(v):
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}
