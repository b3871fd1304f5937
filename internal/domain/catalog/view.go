package catalog

import "cheeserater/internal/domain/entity"

// SelectView restricts the catalog to the profile's tried or wishlisted
// cheeses. ViewAll, and any unrecognised mode, keeps the whole catalog.
func SelectView(catalog []entity.Cheese, mode entity.ViewMode, profile entity.UserProfile) []entity.Cheese {
	var keep func(id string) bool
	switch mode {
	case entity.ViewTried:
		keep = profile.HasTried
	case entity.ViewWishlist:
		keep = profile.IsWishlisted
	default:
		keep = func(string) bool { return true }
	}

	out := make([]entity.Cheese, 0, len(catalog))
	for i := range catalog {
		if keep(catalog[i].ID) {
			out = append(out, catalog[i])
		}
	}

	return out
}
