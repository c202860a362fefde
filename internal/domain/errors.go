package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrEmptyCart indicates a checkout was attempted with no cart lines.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrInvalidCoupon indicates the coupon code is unknown or inactive.
	ErrInvalidCoupon = errors.New("invalid or inactive coupon code")
	// ErrCouponLimitReached indicates the coupon exhausted its usage limit.
	ErrCouponLimitReached = errors.New("coupon usage limit reached")
	// ErrInvalidCredentials is returned when email/password do not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken indicates the provided token could not be validated.
	ErrInvalidToken = errors.New("invalid token")
)
