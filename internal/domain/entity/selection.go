package entity

import "slices"

// ViewMode restricts the catalog by per-user membership before filtering.
type ViewMode string

const (
	ViewAll      ViewMode = "all"
	ViewTried    ViewMode = "tried"
	ViewWishlist ViewMode = "wishlist"
)

// SortOption selects the ordering of the derived list.
type SortOption string

const (
	SortByRating SortOption = "rating"
	SortByName   SortOption = "name"
	SortByNewest SortOption = "newest"
)

// FilterCategory names one of the four filterable attributes.
type FilterCategory string

const (
	FilterOrigin        FilterCategory = "origin"
	FilterMilkType      FilterCategory = "milkType"
	FilterTexture       FilterCategory = "texture"
	FilterFlavorProfile FilterCategory = "flavorProfile"
)

// FilterCategories lists the filterable attributes in display order.
var FilterCategories = []FilterCategory{FilterOrigin, FilterMilkType, FilterTexture, FilterFlavorProfile}

// FilterState holds the selected values per category. An empty set places
// no restriction on that category.
type FilterState struct {
	Origin        []string `json:"origin"`
	MilkType      []string `json:"milkType"`
	Texture       []string `json:"texture"`
	FlavorProfile []string `json:"flavorProfile"`
}

// EmptyFilterState selects everything.
func EmptyFilterState() FilterState {
	return FilterState{
		Origin:        []string{},
		MilkType:      []string{},
		Texture:       []string{},
		FlavorProfile: []string{},
	}
}

// Values returns the selection for a category. Unknown categories have no selection.
func (f FilterState) Values(category FilterCategory) []string {
	switch category {
	case FilterOrigin:
		return f.Origin
	case FilterMilkType:
		return f.MilkType
	case FilterTexture:
		return f.Texture
	case FilterFlavorProfile:
		return f.FlavorProfile
	default:
		return nil
	}
}

// Toggle returns a copy with value added to or removed from the category.
// Unknown categories leave the state unchanged.
func (f FilterState) Toggle(category FilterCategory, value string) FilterState {
	out := FilterState{
		Origin:        slices.Clone(f.Origin),
		MilkType:      slices.Clone(f.MilkType),
		Texture:       slices.Clone(f.Texture),
		FlavorProfile: slices.Clone(f.FlavorProfile),
	}

	var target *[]string
	switch category {
	case FilterOrigin:
		target = &out.Origin
	case FilterMilkType:
		target = &out.MilkType
	case FilterTexture:
		target = &out.Texture
	case FilterFlavorProfile:
		target = &out.FlavorProfile
	default:
		return out
	}

	if slices.Contains(*target, value) {
		*target = slices.DeleteFunc(*target, func(v string) bool { return v == value })
	} else {
		*target = append(*target, value)
	}

	return out
}

// Clear drops every selection.
func (f FilterState) Clear() FilterState {
	return EmptyFilterState()
}

// ActiveCount is the total number of selected values across categories.
func (f FilterState) ActiveCount() int {
	return len(f.Origin) + len(f.MilkType) + len(f.Texture) + len(f.FlavorProfile)
}

// IsEmpty reports whether no category restricts the result.
func (f FilterState) IsEmpty() bool {
	return f.ActiveCount() == 0
}

// Facets lists the distinct values available per filter category.
type Facets struct {
	Origins        []string `json:"origins"`
	MilkTypes      []string `json:"milkTypes"`
	Textures       []string `json:"textures"`
	FlavorProfiles []string `json:"flavorProfiles"`
}
