package domain

import "time"

// Offer is an admin-curated bundle of products sold at a uniform percentage
// discount. Duration is decorative: it is shown on the offers page but never
// enforced as an expiry.
type Offer struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	Discount      int       `json:"discount"`
	ProductIDs    []string  `json:"products"`
	DurationValue int       `json:"durationValue"`
	DurationUnit  string    `json:"durationType"`
	CreatedAt     time.Time `json:"createdAt"`
}
