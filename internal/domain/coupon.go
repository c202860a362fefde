package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CouponType selects how a coupon's discount value is interpreted.
type CouponType string

const (
	// CouponPercent discounts the subtotal by a percentage.
	CouponPercent CouponType = "percent"
	// CouponFixed discounts the subtotal by a flat amount.
	CouponFixed CouponType = "fixed"
)

// Coupon is a redeemable discount code. Codes match case-insensitively.
// ExpiresAt is stored for the admin surface but is not enforced at
// application time.
type Coupon struct {
	ID         string          `json:"id"`
	Code       string          `json:"code"`
	Discount   decimal.Decimal `json:"-"`
	Type       CouponType      `json:"type"`
	UsageLimit *int            `json:"usageLimit,omitempty"`
	Used       int             `json:"used"`
	ExpiresAt  *time.Time      `json:"expiresAt,omitempty"`
	Active     bool            `json:"active"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// CouponSnapshot is the subset of coupon fields embedded in an order record.
type CouponSnapshot struct {
	ID       string          `json:"id"`
	Code     string          `json:"code"`
	Type     CouponType      `json:"type"`
	Discount decimal.Decimal `json:"discount"`
}
