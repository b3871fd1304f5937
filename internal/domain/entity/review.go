package entity

// Review is a user's rating and tasting notes for one cheese.
// There is at most one review per (CheeseID, UserID) pair; resubmitting
// replaces Rating and Notes in place.
type Review struct {
	ID       string `json:"id"`
	CheeseID string `json:"cheeseId"`
	UserID   string `json:"userId"`
	// Nickname is a snapshot of the author's display name at submission time.
	Nickname  string `json:"nickname"`
	Rating    int    `json:"rating"` // 1..5
	Notes     string `json:"notes"`
	CreatedAt int64  `json:"createdAt"` // Unix milliseconds, frozen on resubmission.
}

const (
	MinRating = 1
	MaxRating = 5
)

// ValidRating reports whether r is an allowed star rating.
func ValidRating(r int) bool {
	return r >= MinRating && r <= MaxRating
}
