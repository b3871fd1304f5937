// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// Cheese is a single catalog entry. Entries are created by the owner and
// are never updated or deleted afterwards.
type Cheese struct {
	ID            string   `json:"id"`                    // Opaque unique identifier, immutable once assigned.
	Name          string   `json:"name"`                  // Display name.
	Origin        string   `json:"origin"`                // Country or region of origin.
	MilkType      string   `json:"milkType"`              // e.g. "Cow's Milk".
	Texture       string   `json:"texture"`               // e.g. "Hard", "Soft".
	FlavorProfile []string `json:"flavorProfile"`         // Ordered flavor tags.
	Description   string   `json:"description"`           // Free-text description.
	ImageURL      string   `json:"imageUrl,omitempty"`    // Optional picture.
	PurchaseURL   string   `json:"purchaseUrl,omitempty"` // Optional shop link.
	CreatedAt     int64    `json:"createdAt"`             // Unix milliseconds, monotonically assigned.
}

// HasFlavor reports whether the cheese carries the given flavor tag.
func (c *Cheese) HasFlavor(flavor string) bool {
	for _, f := range c.FlavorProfile {
		if f == flavor {
			return true
		}
	}

	return false
}

// FindCheese returns the catalog entry with the given id.
func FindCheese(catalog []Cheese, id string) (*Cheese, bool) {
	for i := range catalog {
		if catalog[i].ID == id {
			return &catalog[i], true
		}
	}

	return nil, false
}
