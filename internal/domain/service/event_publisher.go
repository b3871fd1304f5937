package service

import (
	"context"
)

// Document names used in change events.
const (
	DocumentCatalog = "cheeses"
	DocumentReviews = "reviews"
	DocumentProfile = "user-profile"
)

// Change actions.
const (
	ActionCheeseAdded     = "cheese_added"
	ActionReviewCreated   = "review_created"
	ActionReviewUpdated   = "review_updated"
	ActionNicknameSet     = "nickname_set"
	ActionWishlistToggled = "wishlist_toggled"
)

// ChangeEvent describes a successful write to one of the store documents.
type ChangeEvent struct {
	RequestID  string `json:"request_id,omitempty"` // For distributed tracing
	Document   string `json:"document"`
	Action     string `json:"action"`
	SubjectID  string `json:"subject_id"` // Id of the cheese or review touched
	UserID     string `json:"user_id,omitempty"`
	OccurredAt int64  `json:"occurred_at"` // Unix milliseconds
}

// EventPublisher defines the interface for publishing change events to a message queue
type EventPublisher interface {
	// PublishChangeEvent publishes a change event. Delivery is best effort.
	PublishChangeEvent(ctx context.Context, event *ChangeEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
