package domain

import "time"

// Admin is a back-office account. The storefront itself is anonymous.
type Admin struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// AdminToken is an opaque bearer token issued at admin login.
type AdminToken struct {
	Token     string
	AdminID   string
	ExpiresAt time.Time
	CreatedAt time.Time
}
