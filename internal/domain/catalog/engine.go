package catalog

import (
	"cheeserater/internal/domain/entity"

	"golang.org/x/text/language"
)

// Selection is everything the viewer chose: which membership view, how to
// sort, which facet values to keep, and an optional name query.
type Selection struct {
	View    entity.ViewMode
	Sort    entity.SortOption
	Filters entity.FilterState
	Query   string
}

// Input is one snapshot of the store documents plus the viewer's selection.
type Input struct {
	Catalog   []entity.Cheese
	Reviews   []entity.Review
	Profile   entity.UserProfile
	Selection Selection
}

// Result is the list to render and the facets to offer.
type Result struct {
	Items  []entity.Cheese
	Facets entity.Facets
}

// Engine runs the derivation pipeline. It holds only immutable settings and
// may be shared between goroutines.
type Engine struct {
	locale language.Tag
}

// NewEngine creates an Engine whose name ordering follows the collation
// rules of locale (a BCP 47 tag). Unparseable tags fall back to English.
func NewEngine(locale string) *Engine {
	tag, err := language.Parse(locale)
	if err != nil || locale == "" {
		tag = language.English
	}

	return &Engine{locale: tag}
}

// Derive runs view selection, filtering, name search and sorting in that
// fixed order, and computes the facets.
func (e *Engine) Derive(in Input) Result {
	sel := in.Selection

	viewed := SelectView(in.Catalog, sel.View, in.Profile)
	filtered := Search(Filter(viewed, sel.Filters), sel.Query)
	items := e.Sort(filtered, in.Reviews, sel.Sort)

	return Result{
		Items:  items,
		Facets: ExtractAllFacets(facetBase(sel.View, viewed, items)),
	}
}

// facetBase picks the list facets are computed from. In the "all" view the
// options come from the unfiltered list, so they stay put while the viewer
// toggles filters. In the tried and wishlist views they come from the
// derived result and shrink as filters are applied.
func facetBase(view entity.ViewMode, viewed, derived []entity.Cheese) []entity.Cheese {
	if view == entity.ViewAll {
		return viewed
	}

	return derived
}
