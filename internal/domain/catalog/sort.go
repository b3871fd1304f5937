package catalog

import (
	"cmp"
	"slices"

	"cheeserater/internal/domain/entity"

	"golang.org/x/text/collate"
)

// Sort returns a sorted copy of items. Equal keys keep their input order.
// An unknown option returns the copy unsorted.
func (e *Engine) Sort(items []entity.Cheese, reviews []entity.Review, by entity.SortOption) []entity.Cheese {
	sorted := slices.Clone(items)
	if sorted == nil {
		sorted = []entity.Cheese{}
	}

	switch by {
	case entity.SortByRating:
		summaries := Summaries(reviews)
		slices.SortStableFunc(sorted, func(a, b entity.Cheese) int {
			return cmp.Compare(summaries[b.ID].Average, summaries[a.ID].Average)
		})
	case entity.SortByName:
		// collate.Collator is not safe for concurrent use.
		collator := collate.New(e.locale)
		slices.SortStableFunc(sorted, func(a, b entity.Cheese) int {
			return collator.CompareString(a.Name, b.Name)
		})
	case entity.SortByNewest:
		slices.SortStableFunc(sorted, func(a, b entity.Cheese) int {
			return cmp.Compare(b.CreatedAt, a.CreatedAt)
		})
	}

	return sorted
}

// ParseSortOption maps a raw value onto a known option.
func ParseSortOption(raw string) (entity.SortOption, bool) {
	switch opt := entity.SortOption(raw); opt {
	case entity.SortByRating, entity.SortByName, entity.SortByNewest:
		return opt, true
	default:
		return opt, false
	}
}

// ParseViewMode maps a raw value onto a known view mode.
func ParseViewMode(raw string) (entity.ViewMode, bool) {
	switch mode := entity.ViewMode(raw); mode {
	case entity.ViewAll, entity.ViewTried, entity.ViewWishlist:
		return mode, true
	default:
		return mode, false
	}
}
