package usecase

import (
	"context"

	"cheeserater/internal/domain/catalog"
	"cheeserater/internal/domain/entity"
)

// CatalogItem is a cheese decorated with its rating and the caller's membership flags.
type CatalogItem struct {
	entity.Cheese
	catalog.RatingSummary
	Tried      bool `json:"tried"`
	Wishlisted bool `json:"wishlisted"`
}

// BrowseResult is one rendering of the catalog for a client.
type BrowseResult struct {
	Items         []CatalogItem `json:"items"`
	Facets        entity.Facets `json:"facets"`
	TriedCount    int           `json:"triedCount"`
	WishlistCount int           `json:"wishlistCount"`
	CatalogSize   int           `json:"catalogSize"`
	ActiveFilters int           `json:"activeFilters"`
}

// CheeseDetail is everything shown on a cheese page.
type CheeseDetail struct {
	Cheese     entity.Cheese         `json:"cheese"`
	Rating     catalog.RatingSummary `json:"rating"`
	Reviews    []entity.Review       `json:"reviews"`
	MyReview   *entity.Review        `json:"myReview,omitempty"`
	Tried      bool                  `json:"tried"`
	Wishlisted bool                  `json:"wishlisted"`
}

// NewCheeseInput defines the data required to add a catalog entry.
type NewCheeseInput struct {
	Name          string
	Origin        string
	MilkType      string
	Texture       string
	FlavorProfile []string
	Description   string
	ImageURL      string
	PurchaseURL   string
}

// CatalogUsecase defines the interface for browsing and curating the catalog.
type CatalogUsecase interface {
	// Browse derives the list and facets for the caller's selection.
	Browse(ctx context.Context, userID string, selection catalog.Selection) (*BrowseResult, error)

	// WatchBrowse emits a fresh BrowseResult, starting with the current one,
	// whenever the catalog, the reviews or the caller's profile change.
	// The channel is closed when ctx is done.
	WatchBrowse(ctx context.Context, userID string, selection catalog.Selection) (<-chan *BrowseResult, error)

	// GetCheese returns the detail view of one cheese.
	GetCheese(ctx context.Context, userID, cheeseID string) (*CheeseDetail, error)

	// AddCheese appends a new entry. Callers must have checked ownership.
	AddCheese(ctx context.Context, input *NewCheeseInput) (*entity.Cheese, error)

	// ShareCode renders a PNG QR code linking to the cheese.
	ShareCode(ctx context.Context, cheeseID string) ([]byte, error)
}
