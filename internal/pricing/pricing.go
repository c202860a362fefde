// Package pricing computes payable totals from a cart subtotal, the fixed
// delivery fee, and an optional coupon. It is pure: coupon lookup and usage
// accounting live with the callers.
package pricing

import (
	"github.com/shopspring/decimal"

	"musclesaction-store/internal/domain"
)

// DeliveryFee is the flat fee added to every order, in EGP.
var DeliveryFee = decimal.NewFromInt(85)

var hundred = decimal.NewFromInt(100)

// Quote is the price breakdown for a cart, before or after a coupon.
type Quote struct {
	Subtotal    decimal.Decimal
	Discount    decimal.Decimal
	DeliveryFee decimal.Decimal
	Total       decimal.Decimal
}

// Eligible reports whether the coupon may be applied: it must be active and,
// when a usage limit is set, still under it. Expiry is stored on the coupon
// but deliberately not checked here.
func Eligible(c *domain.Coupon) error {
	if c == nil || !c.Active {
		return domain.ErrInvalidCoupon
	}
	if c.UsageLimit != nil && c.Used >= *c.UsageLimit {
		return domain.ErrCouponLimitReached
	}
	return nil
}

// Evaluate computes the payable total for the given subtotal and optional
// coupon. A percent coupon discounts subtotal*d/100; a fixed coupon discounts
// the flat amount with no floor at zero, so the total can go negative when
// the discount exceeds the subtotal.
func Evaluate(subtotal, deliveryFee decimal.Decimal, c *domain.Coupon) Quote {
	discount := decimal.Zero
	if c != nil {
		switch c.Type {
		case domain.CouponPercent:
			discount = subtotal.Mul(c.Discount).Div(hundred)
		case domain.CouponFixed:
			discount = c.Discount
		}
	}
	return Quote{
		Subtotal:    subtotal,
		Discount:    discount,
		DeliveryFee: deliveryFee,
		Total:       subtotal.Sub(discount).Add(deliveryFee),
	}
}

// OfferPrice returns a product price after an offer's uniform percentage
// discount, rounded to the nearest whole amount.
func OfferPrice(price decimal.Decimal, discountPercent int) decimal.Decimal {
	d := decimal.NewFromInt(int64(discountPercent))
	return price.Mul(decimal.NewFromInt(1).Sub(d.Div(hundred))).Round(0)
}
