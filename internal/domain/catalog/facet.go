package catalog

import (
	"slices"

	"cheeserater/internal/domain/entity"
)

// ExtractFacets returns the distinct values of the attribute across items in
// ascending byte order. Flavor tags are flattened. Unknown attributes yield
// an empty list.
func ExtractFacets(items []entity.Cheese, attribute entity.FilterCategory) []string {
	seen := make(map[string]struct{})
	for i := range items {
		switch attribute {
		case entity.FilterOrigin:
			seen[items[i].Origin] = struct{}{}
		case entity.FilterMilkType:
			seen[items[i].MilkType] = struct{}{}
		case entity.FilterTexture:
			seen[items[i].Texture] = struct{}{}
		case entity.FilterFlavorProfile:
			for _, tag := range items[i].FlavorProfile {
				seen[tag] = struct{}{}
			}
		}
	}

	out := make([]string, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	slices.Sort(out)

	return out
}

// ExtractAllFacets computes the facets of every filter category.
func ExtractAllFacets(items []entity.Cheese) entity.Facets {
	return entity.Facets{
		Origins:        ExtractFacets(items, entity.FilterOrigin),
		MilkTypes:      ExtractFacets(items, entity.FilterMilkType),
		Textures:       ExtractFacets(items, entity.FilterTexture),
		FlavorProfiles: ExtractFacets(items, entity.FilterFlavorProfile),
	}
}
