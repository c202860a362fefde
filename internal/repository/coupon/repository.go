package coupon

import (
	"context"

	"musclesaction-store/internal/domain"
)

type Repository interface {
	// FindByCode matches case-insensitively and returns domain.ErrNotFound
	// for unknown codes. Active/usage checks belong to the caller.
	FindByCode(ctx context.Context, code string) (*domain.Coupon, error)
	// IncrementUsed bumps the usage counter by one. It is a separate write
	// from order creation with no transactional guarantee.
	IncrementUsed(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Coupon, error)
	Insert(ctx context.Context, c domain.Coupon) (*domain.Coupon, error)
	Update(ctx context.Context, c domain.Coupon) (*domain.Coupon, error)
	Delete(ctx context.Context, id string) error
}
