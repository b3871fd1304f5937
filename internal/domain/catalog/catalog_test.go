package catalog

import (
	"testing"

	"cheeserater/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(items []entity.Cheese) []string {
	out := make([]string, 0, len(items))
	for _, c := range items {
		out = append(out, c.ID)
	}

	return out
}

func review(cheeseID, userID string, rating int, createdAt int64) entity.Review {
	return entity.Review{
		ID:        cheeseID + "/" + userID,
		CheeseID:  cheeseID,
		UserID:    userID,
		Rating:    rating,
		CreatedAt: createdAt,
	}
}

func TestAverageRating(t *testing.T) {
	reviews := []entity.Review{
		review("a", "u1", 4, 1),
		review("a", "u2", 2, 2),
		review("b", "u1", 5, 3),
	}

	tests := []struct {
		name      string
		cheeseID  string
		reviews   []entity.Review
		wantAvg   float64
		wantCount int
	}{
		{name: "no reviews at all", cheeseID: "a", reviews: nil, wantAvg: 0, wantCount: 0},
		{name: "unreviewed cheese", cheeseID: "c", reviews: reviews, wantAvg: 0, wantCount: 0},
		{name: "mean of two", cheeseID: "a", reviews: reviews, wantAvg: 3.0, wantCount: 2},
		{name: "single review", cheeseID: "b", reviews: reviews, wantAvg: 5.0, wantCount: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantAvg, AverageRating(tt.cheeseID, tt.reviews))
			assert.Equal(t, tt.wantCount, ReviewCount(tt.cheeseID, tt.reviews))
		})
	}
}

func TestAverageRating_StaysInRange(t *testing.T) {
	var reviews []entity.Review
	for i := 0; i < 50; i++ {
		reviews = append(reviews, review("a", string(rune('a'+i%26))+"x", 1+i%5, int64(i)))
	}

	avg := AverageRating("a", reviews)
	assert.GreaterOrEqual(t, avg, 1.0)
	assert.LessOrEqual(t, avg, 5.0)
}

func TestFindUserReview(t *testing.T) {
	reviews := []entity.Review{
		review("a", "u1", 4, 1),
		review("a", "u2", 2, 2),
	}

	got, ok := FindUserReview("a", "u2", reviews)
	require.True(t, ok)
	assert.Equal(t, 2, got.Rating)

	_, ok = FindUserReview("a", "u3", reviews)
	assert.False(t, ok)

	_, ok = FindUserReview("b", "u1", reviews)
	assert.False(t, ok)
}

func TestReviewsFor_NewestFirst(t *testing.T) {
	reviews := []entity.Review{
		review("a", "u1", 4, 100),
		review("b", "u1", 1, 500),
		review("a", "u2", 2, 300),
		review("a", "u3", 3, 200),
	}

	got := ReviewsFor("a", reviews)
	require.Len(t, got, 3)
	assert.Equal(t, []int64{300, 200, 100}, []int64{got[0].CreatedAt, got[1].CreatedAt, got[2].CreatedAt})
}

func TestExtractFacets(t *testing.T) {
	items := []entity.Cheese{
		{ID: "1", Origin: "France", MilkType: "Cow", Texture: "Soft", FlavorProfile: []string{"Nutty", "Salty"}},
		{ID: "2", Origin: "Italy", MilkType: "Sheep", Texture: "Hard", FlavorProfile: []string{"Salty"}},
		{ID: "3", Origin: "France", MilkType: "Goat", Texture: "Soft"},
	}

	assert.Equal(t, []string{"France", "Italy"}, ExtractFacets(items, entity.FilterOrigin))
	assert.Equal(t, []string{"Cow", "Goat", "Sheep"}, ExtractFacets(items, entity.FilterMilkType))
	assert.Equal(t, []string{"Hard", "Soft"}, ExtractFacets(items, entity.FilterTexture))
	assert.Equal(t, []string{"Nutty", "Salty"}, ExtractFacets(items, entity.FilterFlavorProfile))
	assert.Empty(t, ExtractFacets(items, entity.FilterCategory("colour")))
	assert.Empty(t, ExtractFacets(nil, entity.FilterOrigin))
}

func TestFilter_Scenario(t *testing.T) {
	items := []entity.Cheese{
		{ID: "1", Origin: "France", FlavorProfile: []string{"Nutty", "Salty"}},
		{ID: "2", Origin: "France", FlavorProfile: []string{"Salty"}},
		{ID: "3", Origin: "Italy", FlavorProfile: []string{"Nutty"}},
	}
	filters := entity.FilterState{
		Origin:        []string{"France"},
		MilkType:      []string{},
		Texture:       []string{},
		FlavorProfile: []string{"Nutty"},
	}

	assert.Equal(t, []string{"1"}, ids(Filter(items, filters)))
}

func TestMatches(t *testing.T) {
	brie := entity.Cheese{Origin: "France", MilkType: "Cow", Texture: "Soft", FlavorProfile: []string{"Buttery"}}
	plain := entity.Cheese{Origin: "France", MilkType: "Cow", Texture: "Soft"}

	tests := []struct {
		name    string
		item    entity.Cheese
		filters entity.FilterState
		want    bool
	}{
		{name: "empty filter matches", item: brie, filters: entity.EmptyFilterState(), want: true},
		{name: "origin member", item: brie, filters: entity.FilterState{Origin: []string{"Italy", "France"}}, want: true},
		{name: "origin non-member", item: brie, filters: entity.FilterState{Origin: []string{"Italy"}}, want: false},
		{name: "milk non-member", item: brie, filters: entity.FilterState{MilkType: []string{"Goat"}}, want: false},
		{name: "texture non-member", item: brie, filters: entity.FilterState{Texture: []string{"Hard"}}, want: false},
		{name: "flavor any-of", item: brie, filters: entity.FilterState{FlavorProfile: []string{"Sharp", "Buttery"}}, want: true},
		{name: "no tags fails flavor filter", item: plain, filters: entity.FilterState{FlavorProfile: []string{"Buttery"}}, want: false},
		{
			name:    "categories combine with and",
			item:    brie,
			filters: entity.FilterState{Origin: []string{"France"}, Texture: []string{"Hard"}},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Matches(&tt.item, tt.filters))
		})
	}
}

func TestFilter_Monotonic(t *testing.T) {
	items := []entity.Cheese{
		{ID: "1", Origin: "France", MilkType: "Cow", Texture: "Soft", FlavorProfile: []string{"Nutty"}},
		{ID: "2", Origin: "Italy", MilkType: "Sheep", Texture: "Hard", FlavorProfile: []string{"Salty"}},
		{ID: "3", Origin: "Spain", MilkType: "Goat", Texture: "Soft"},
	}

	base := entity.FilterState{Origin: []string{"France"}}
	before := len(Filter(items, base))

	for _, category := range entity.FilterCategories {
		for _, value := range []string{"Italy", "Cow", "Soft", "Nutty", "Missing"} {
			if len(base.Values(category)) > 0 {
				continue
			}
			narrowed := base.Toggle(category, value)
			assert.LessOrEqual(t, len(Filter(items, narrowed)), before, "%s=%s", category, value)
		}
	}
}

func TestFilter_PreservesOrderAndInput(t *testing.T) {
	items := []entity.Cheese{
		{ID: "c", Origin: "France"},
		{ID: "a", Origin: "Italy"},
		{ID: "b", Origin: "France"},
	}

	got := Filter(items, entity.FilterState{Origin: []string{"France"}})
	assert.Equal(t, []string{"c", "b"}, ids(got))
	assert.Equal(t, []string{"c", "a", "b"}, ids(items))
}

func TestSearch(t *testing.T) {
	items := []entity.Cheese{{ID: "1", Name: "Brie de Meaux"}, {ID: "2", Name: "Comté"}, {ID: "3", Name: "Blue Brie"}}

	assert.Equal(t, []string{"1", "3"}, ids(Search(items, "  BRIE ")))
	assert.Equal(t, []string{"1", "2", "3"}, ids(Search(items, "   ")))
	assert.Empty(t, Search(items, "cheddar"))
}

func TestSelectView(t *testing.T) {
	catalog := []entity.Cheese{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	profile := entity.UserProfile{TriedCheeses: []string{"b", "zzz"}, Wishlist: []string{"c"}}

	assert.Equal(t, []string{"a", "b", "c"}, ids(SelectView(catalog, entity.ViewAll, profile)))
	assert.Equal(t, []string{"b"}, ids(SelectView(catalog, entity.ViewTried, profile)))
	assert.Equal(t, []string{"c"}, ids(SelectView(catalog, entity.ViewWishlist, profile)))
	assert.Equal(t, []string{"a", "b", "c"}, ids(SelectView(catalog, entity.ViewMode("bogus"), profile)))
}

func TestSummaries_AgreeWithSummarize(t *testing.T) {
	reviews := []entity.Review{
		review("a", "u1", 4, 1),
		review("a", "u2", 1, 2),
		review("b", "u1", 5, 3),
	}

	all := Summaries(reviews)
	for _, id := range []string{"a", "b", "c"} {
		assert.Equal(t, Summarize(id, reviews), all[id], id)
	}
}
