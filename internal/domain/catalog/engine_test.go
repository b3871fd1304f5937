package catalog

import (
	"testing"

	"cheeserater/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_Sort_Newest(t *testing.T) {
	engine := NewEngine("en")
	items := []entity.Cheese{
		{ID: "x", CreatedAt: 100},
		{ID: "y", CreatedAt: 300},
		{ID: "z", CreatedAt: 200},
	}

	got := engine.Sort(items, nil, entity.SortByNewest)
	assert.Equal(t, []string{"y", "z", "x"}, ids(got))
	assert.Equal(t, []string{"x", "y", "z"}, ids(items), "input must stay untouched")
}

func TestEngine_Sort_Rating(t *testing.T) {
	engine := NewEngine("en")
	items := []entity.Cheese{{ID: "low"}, {ID: "none"}, {ID: "high"}, {ID: "tie"}}
	reviews := []entity.Review{
		review("low", "u1", 2, 1),
		review("high", "u1", 5, 2),
		review("high", "u2", 4, 3),
		review("tie", "u1", 2, 4),
	}

	got := engine.Sort(items, reviews, entity.SortByRating)
	assert.Equal(t, []string{"high", "low", "tie", "none"}, ids(got))
}

func TestEngine_Sort_Name(t *testing.T) {
	engine := NewEngine("en")
	items := []entity.Cheese{
		{ID: "1", Name: "Époisses"},
		{ID: "2", Name: "brie"},
		{ID: "3", Name: "Comté"},
		{ID: "4", Name: "Emmental"},
		{ID: "5", Name: "Cheddar"},
	}

	got := engine.Sort(items, nil, entity.SortByName)

	names := make([]string, 0, len(got))
	for _, c := range got {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"brie", "Cheddar", "Comté", "Emmental", "Époisses"}, names)
	assert.ElementsMatch(t, ids(items), ids(got))
}

func TestEngine_Sort_UnknownKeyKeepsOrder(t *testing.T) {
	engine := NewEngine("en")
	items := []entity.Cheese{{ID: "b", Name: "B"}, {ID: "a", Name: "A"}}

	got := engine.Sort(items, nil, entity.SortOption("price"))
	assert.Equal(t, []string{"b", "a"}, ids(got))
}

func TestNewEngine_InvalidLocaleFallsBack(t *testing.T) {
	engine := NewEngine("not a locale!!")
	got := engine.Sort([]entity.Cheese{{ID: "2", Name: "b"}, {ID: "1", Name: "a"}}, nil, entity.SortByName)
	assert.Equal(t, []string{"1", "2"}, ids(got))
}

func TestParseOptions(t *testing.T) {
	opt, ok := ParseSortOption("newest")
	assert.True(t, ok)
	assert.Equal(t, entity.SortByNewest, opt)

	_, ok = ParseSortOption("price")
	assert.False(t, ok)

	mode, ok := ParseViewMode("wishlist")
	assert.True(t, ok)
	assert.Equal(t, entity.ViewWishlist, mode)

	_, ok = ParseViewMode("favourites")
	assert.False(t, ok)
}

func fixtureCatalog() []entity.Cheese {
	return []entity.Cheese{
		{ID: "brie", Name: "Brie", Origin: "France", MilkType: "Cow", Texture: "Soft", FlavorProfile: []string{"Buttery"}, CreatedAt: 1},
		{ID: "comte", Name: "Comté", Origin: "France", MilkType: "Cow", Texture: "Hard", FlavorProfile: []string{"Nutty"}, CreatedAt: 2},
		{ID: "pecorino", Name: "Pecorino", Origin: "Italy", MilkType: "Sheep", Texture: "Hard", FlavorProfile: []string{"Salty", "Nutty"}, CreatedAt: 3},
		{ID: "chevre", Name: "Chèvre", Origin: "France", MilkType: "Goat", Texture: "Soft", CreatedAt: 4},
	}
}

func TestEngine_Derive_SingleUnreviewedCheese(t *testing.T) {
	engine := NewEngine("en")
	catalog := []entity.Cheese{{ID: "a", Name: "Brie", Origin: "France"}}
	profile := entity.EmptyProfile()

	assert.Equal(t, 0.0, AverageRating("a", nil))
	assert.Equal(t, 0, ReviewCount("a", nil))

	for view, want := range map[entity.ViewMode][]string{
		entity.ViewAll:      {"a"},
		entity.ViewTried:    {},
		entity.ViewWishlist: {},
	} {
		res := engine.Derive(Input{
			Catalog:   catalog,
			Profile:   profile,
			Selection: Selection{View: view, Sort: entity.SortByRating, Filters: entity.EmptyFilterState()},
		})
		assert.Equal(t, want, ids(res.Items), "view %s", view)
	}
}

func TestEngine_Derive_OrderOfStages(t *testing.T) {
	engine := NewEngine("en")
	reviews := []entity.Review{
		review("comte", "u1", 3, 10),
		review("pecorino", "u1", 5, 11),
		review("brie", "u1", 4, 12),
	}

	res := engine.Derive(Input{
		Catalog: fixtureCatalog(),
		Reviews: reviews,
		Profile: entity.EmptyProfile(),
		Selection: Selection{
			View:    entity.ViewAll,
			Sort:    entity.SortByRating,
			Filters: entity.FilterState{Texture: []string{"Hard"}},
		},
	})

	assert.Equal(t, []string{"pecorino", "comte"}, ids(res.Items))
}

func TestEngine_Derive_Idempotent(t *testing.T) {
	engine := NewEngine("en")
	in := Input{
		Catalog: fixtureCatalog(),
		Reviews: []entity.Review{review("brie", "u1", 4, 1), review("chevre", "u2", 4, 2)},
		Profile: entity.UserProfile{TriedCheeses: []string{"brie", "chevre"}},
		Selection: Selection{
			View:    entity.ViewTried,
			Sort:    entity.SortByRating,
			Filters: entity.FilterState{Origin: []string{"France"}},
		},
	}

	first := engine.Derive(in)
	second := engine.Derive(in)
	assert.Equal(t, first, second)
}

func TestEngine_Derive_Search(t *testing.T) {
	engine := NewEngine("en")

	res := engine.Derive(Input{
		Catalog:   fixtureCatalog(),
		Profile:   entity.EmptyProfile(),
		Selection: Selection{View: entity.ViewAll, Sort: entity.SortByName, Query: "c"},
	})

	assert.Equal(t, []string{"chevre", "comte", "pecorino"}, ids(res.Items))
}

// The all view keeps offering every facet while filters are applied; the
// tried and wishlist views only offer what is left after filtering.
func TestEngine_Derive_FacetBaseDependsOnView(t *testing.T) {
	engine := NewEngine("en")
	profile := entity.UserProfile{
		TriedCheeses: []string{"brie", "pecorino", "chevre"},
		Wishlist:     []string{},
	}
	filters := entity.FilterState{Origin: []string{"France"}}

	all := engine.Derive(Input{
		Catalog:   fixtureCatalog(),
		Profile:   profile,
		Selection: Selection{View: entity.ViewAll, Sort: entity.SortByName, Filters: filters},
	})
	assert.Equal(t, []string{"France", "Italy"}, all.Facets.Origins)
	assert.Equal(t, []string{"Cow", "Goat", "Sheep"}, all.Facets.MilkTypes)
	assert.Equal(t, []string{"Buttery", "Nutty", "Salty"}, all.Facets.FlavorProfiles)

	tried := engine.Derive(Input{
		Catalog:   fixtureCatalog(),
		Profile:   profile,
		Selection: Selection{View: entity.ViewTried, Sort: entity.SortByName, Filters: filters},
	})
	require.Equal(t, []string{"brie", "chevre"}, ids(tried.Items))
	assert.Equal(t, []string{"France"}, tried.Facets.Origins)
	assert.Equal(t, []string{"Cow", "Goat"}, tried.Facets.MilkTypes)
	assert.Equal(t, []string{"Soft"}, tried.Facets.Textures)
	assert.Equal(t, []string{"Buttery"}, tried.Facets.FlavorProfiles)
}

func TestEngine_Derive_EmptyInputs(t *testing.T) {
	engine := NewEngine("en")

	res := engine.Derive(Input{Profile: entity.EmptyProfile()})
	assert.Empty(t, res.Items)
	assert.NotNil(t, res.Items)
	assert.Empty(t, res.Facets.Origins)
}
