package catalog

import (
	"slices"
	"strings"

	"cheeserater/internal/domain/entity"
)

// Matches reports whether the item satisfies every non-empty category of the
// filter. Scalar categories require membership; the flavor category requires
// at least one shared tag.
func Matches(item *entity.Cheese, filters entity.FilterState) bool {
	if len(filters.Origin) > 0 && !slices.Contains(filters.Origin, item.Origin) {
		return false
	}
	if len(filters.MilkType) > 0 && !slices.Contains(filters.MilkType, item.MilkType) {
		return false
	}
	if len(filters.Texture) > 0 && !slices.Contains(filters.Texture, item.Texture) {
		return false
	}
	if len(filters.FlavorProfile) > 0 {
		if !slices.ContainsFunc(filters.FlavorProfile, item.HasFlavor) {
			return false
		}
	}

	return true
}

// Filter returns the matching items in their original order.
func Filter(items []entity.Cheese, filters entity.FilterState) []entity.Cheese {
	out := make([]entity.Cheese, 0, len(items))
	for i := range items {
		if Matches(&items[i], filters) {
			out = append(out, items[i])
		}
	}

	return out
}

// Search keeps the items whose name contains query, ignoring case.
// A blank query keeps everything.
func Search(items []entity.Cheese, query string) []entity.Cheese {
	needle := strings.ToLower(strings.TrimSpace(query))
	out := make([]entity.Cheese, 0, len(items))
	for i := range items {
		if needle == "" || strings.Contains(strings.ToLower(items[i].Name), needle) {
			out = append(out, items[i])
		}
	}

	return out
}
