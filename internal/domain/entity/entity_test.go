package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserProfile_MarkReviewed(t *testing.T) {
	tests := []struct {
		name      string
		profile   UserProfile
		wantTried []string
		wantWish  []string
	}{
		{
			name:      "blank profile",
			profile:   EmptyProfile(),
			wantTried: []string{"x"},
			wantWish:  []string{},
		},
		{
			name:      "wishlisted becomes tried",
			profile:   UserProfile{TriedCheeses: []string{"a"}, Wishlist: []string{"x", "b"}},
			wantTried: []string{"a", "x"},
			wantWish:  []string{"b"},
		},
		{
			name:      "already tried is not duplicated",
			profile:   UserProfile{TriedCheeses: []string{"x"}, Wishlist: []string{"x"}},
			wantTried: []string{"x"},
			wantWish:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.profile.MarkReviewed("x")
			assert.Equal(t, tt.wantTried, got.TriedCheeses)
			assert.Equal(t, tt.wantWish, got.Wishlist)
			assert.False(t, got.IsWishlisted("x"))
			assert.True(t, got.HasTried("x"))
		})
	}
}

func TestUserProfile_ToggleWishlist(t *testing.T) {
	p := EmptyProfile()

	p, added := p.ToggleWishlist("x")
	assert.True(t, added)
	assert.Equal(t, []string{"x"}, p.Wishlist)

	p, added = p.ToggleWishlist("x")
	assert.False(t, added)
	assert.Empty(t, p.Wishlist)
}

func TestUserProfile_CopiesDoNotAlias(t *testing.T) {
	original := UserProfile{Wishlist: []string{"a", "b"}, TriedCheeses: []string{}}
	_ = original.MarkReviewed("a")

	assert.Equal(t, []string{"a", "b"}, original.Wishlist)
}

func TestFilterState_Toggle(t *testing.T) {
	f := EmptyFilterState()

	f = f.Toggle(FilterOrigin, "France")
	f = f.Toggle(FilterFlavorProfile, "Nutty")
	assert.Equal(t, []string{"France"}, f.Origin)
	assert.Equal(t, []string{"Nutty"}, f.FlavorProfile)
	assert.Equal(t, 2, f.ActiveCount())

	f = f.Toggle(FilterOrigin, "France")
	assert.Empty(t, f.Origin)

	unchanged := f.Toggle(FilterCategory("colour"), "Blue")
	assert.Equal(t, f, unchanged)
}

func TestValidRating(t *testing.T) {
	for r := -1; r <= 7; r++ {
		assert.Equal(t, r >= 1 && r <= 5, ValidRating(r), "rating %d", r)
	}
}

func TestRolesFromStrings(t *testing.T) {
	roles := RolesFromStrings([]string{"owner", " reviewer ", "admin", ""})

	assert.Equal(t, Roles{RoleOwner, RoleReviewer}, roles)
	assert.True(t, roles.Contains(RoleOwner))
	assert.Equal(t, []string{"owner", "reviewer"}, roles.ToStrings())
	assert.False(t, RolesFromStrings(nil).Contains(RoleOwner))
}
