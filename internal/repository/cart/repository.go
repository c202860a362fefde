package cart

import (
	"context"

	"musclesaction-store/internal/domain"
)

type Repository interface {
	// GetByToken returns domain.ErrNotFound for unknown tokens; callers
	// treat that as an empty cart.
	GetByToken(ctx context.Context, token string) (*domain.Cart, error)
	// Save upserts the cart for token and replaces its whole line list.
	Save(ctx context.Context, token string, lines domain.CartLines) error
	// Clear drops the cart's lines. Clearing an unknown token is a no-op.
	Clear(ctx context.Context, token string) error
}
