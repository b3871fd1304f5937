package repository

import (
	"context"

	"cheeserater/internal/domain/entity"
)

// ProfileUpdater derives the next profile from the current one.
type ProfileUpdater func(current entity.UserProfile) (entity.UserProfile, error)

// ProfileRepository persists one profile document per client identity.
type ProfileRepository interface {
	// Load returns the user's profile, or entity.EmptyProfile when absent.
	Load(ctx context.Context, userID string) (entity.UserProfile, error)

	// Update applies fn to the user's current profile and stores the result.
	Update(ctx context.Context, userID string, fn ProfileUpdater) (entity.UserProfile, error)

	// Watch emits the user's profile after every write until ctx is done.
	Watch(ctx context.Context, userID string) (<-chan entity.UserProfile, error)
}
