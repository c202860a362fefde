package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a storefront catalog entry. Name and description carry both
// locales; the client picks which one to render.
type Product struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	NameAr        string           `json:"nameAr"`
	Description   string           `json:"description,omitempty"`
	DescriptionAr string           `json:"descriptionAr,omitempty"`
	Images        []string         `json:"images"`
	Flavors       []string         `json:"flavors"`
	Price         decimal.Decimal  `json:"-"`
	OriginalPrice *decimal.Decimal `json:"-"`
	Discount      *int             `json:"discount,omitempty"`
	Category      string           `json:"category"`
	InStock       bool             `json:"inStock"`
	IsBestSeller  bool             `json:"isBestSeller"`
	IsNew         bool             `json:"isNew"`
	Rating        float64          `json:"rating"`
	CreatedAt     time.Time        `json:"createdAt"`
}
