package offer

import (
	"context"

	"musclesaction-store/internal/domain"
)

type Repository interface {
	List(ctx context.Context) ([]domain.Offer, error)
	Insert(ctx context.Context, o domain.Offer) (*domain.Offer, error)
	Update(ctx context.Context, o domain.Offer) (*domain.Offer, error)
	Delete(ctx context.Context, id string) error
}
