package product

import (
	"context"

	"musclesaction-store/internal/domain"
)

// Filter narrows product listings. Zero values mean "no filter".
type Filter struct {
	Category   string
	BestSeller bool
	New        bool
	Limit      int
}

type Repository interface {
	List(ctx context.Context, f Filter) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	GetByIDs(ctx context.Context, ids []string) ([]domain.Product, error)
	Insert(ctx context.Context, p domain.Product) (*domain.Product, error)
	Update(ctx context.Context, p domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}
