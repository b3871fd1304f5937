package entity

import "slices"

// UserProfile is the per-client document holding display name and
// membership sets. TriedCheeses only ever grows.
type UserProfile struct {
	Nickname     string   `json:"nickname"`
	TriedCheeses []string `json:"triedCheeses"`
	Wishlist     []string `json:"wishlist"`
}

// EmptyProfile is the profile of a client that has never written anything.
func EmptyProfile() UserProfile {
	return UserProfile{
		Nickname:     "",
		TriedCheeses: []string{},
		Wishlist:     []string{},
	}
}

// HasNickname reports whether the nickname has been set.
func (p UserProfile) HasNickname() bool {
	return p.Nickname != ""
}

// HasTried reports whether cheeseID is in the tried set.
func (p UserProfile) HasTried(cheeseID string) bool {
	return slices.Contains(p.TriedCheeses, cheeseID)
}

// IsWishlisted reports whether cheeseID is in the wishlist.
func (p UserProfile) IsWishlisted(cheeseID string) bool {
	return slices.Contains(p.Wishlist, cheeseID)
}

// ToggleWishlist returns a copy of the profile with cheeseID removed from
// the wishlist when present, or appended when absent.
func (p UserProfile) ToggleWishlist(cheeseID string) (UserProfile, bool) {
	out := p.clone()
	if p.IsWishlisted(cheeseID) {
		out.Wishlist = slices.DeleteFunc(out.Wishlist, func(id string) bool { return id == cheeseID })

		return out, false
	}
	out.Wishlist = append(out.Wishlist, cheeseID)

	return out, true
}

// MarkReviewed returns a copy of the profile with cheeseID recorded as tried
// and evicted from the wishlist.
func (p UserProfile) MarkReviewed(cheeseID string) UserProfile {
	out := p.clone()
	if !p.HasTried(cheeseID) {
		out.TriedCheeses = append(out.TriedCheeses, cheeseID)
	}
	out.Wishlist = slices.DeleteFunc(out.Wishlist, func(id string) bool { return id == cheeseID })

	return out
}

// WithNickname returns a copy of the profile with the nickname replaced.
func (p UserProfile) WithNickname(nickname string) UserProfile {
	out := p.clone()
	out.Nickname = nickname

	return out
}

func (p UserProfile) clone() UserProfile {
	out := UserProfile{
		Nickname:     p.Nickname,
		TriedCheeses: slices.Clone(p.TriedCheeses),
		Wishlist:     slices.Clone(p.Wishlist),
	}
	if out.TriedCheeses == nil {
		out.TriedCheeses = []string{}
	}
	if out.Wishlist == nil {
		out.Wishlist = []string{}
	}

	return out
}
