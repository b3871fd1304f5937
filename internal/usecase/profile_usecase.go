// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"cheeserater/internal/domain/entity"
)

// ProfileUsecase defines the interface for per-client profile operations.
type ProfileUsecase interface {
	// GetProfile returns the stored profile or a blank one.
	GetProfile(ctx context.Context, userID string) (entity.UserProfile, error)

	// SetNickname stores the trimmed nickname. Blank nicknames are rejected.
	SetNickname(ctx context.Context, userID, nickname string) (entity.UserProfile, error)

	// ToggleWishlist adds or removes the cheese and reports whether it was added.
	ToggleWishlist(ctx context.Context, userID, cheeseID string) (entity.UserProfile, bool, error)
}
