package usecase

import (
	"context"

	"cheeserater/internal/domain/entity"
)

// SubmitReviewInput is a rating with tasting notes for one cheese.
type SubmitReviewInput struct {
	CheeseID string
	Rating   int
	Notes    string
}

// SubmitReviewResult reports the stored review and whether it was new.
type SubmitReviewResult struct {
	Review  entity.Review      `json:"review"`
	Created bool               `json:"created"`
	Profile entity.UserProfile `json:"profile"`
}

// ReviewUsecase defines the interface for review operations.
type ReviewUsecase interface {
	// SubmitReview creates the caller's review of a cheese, or replaces its
	// rating and notes when one exists. The cheese is marked tried and
	// leaves the wishlist.
	SubmitReview(ctx context.Context, userID string, input *SubmitReviewInput) (*SubmitReviewResult, error)

	// UpdateReview edits rating and notes of a review written by the caller.
	UpdateReview(ctx context.Context, userID, reviewID string, rating int, notes string) (*entity.Review, error)

	// ListReviews returns the cheese's reviews, newest first.
	ListReviews(ctx context.Context, cheeseID string) ([]entity.Review, error)
}
