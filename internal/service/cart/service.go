package cart

import (
	"context"
	"errors"
	"io"
	"log"

	"musclesaction-store/internal/domain"
)

// Service holds the authoritative line list for each visitor cart, keyed by
// an opaque token. Every mutation persists the full updated list so the cart
// survives reloads; an unknown token is just an empty cart.
type Service struct {
	repo     cartRepo
	products productRepo
	logger   *log.Logger
}

type cartRepo interface {
	GetByToken(ctx context.Context, token string) (*domain.Cart, error)
	Save(ctx context.Context, token string, lines domain.CartLines) error
	Clear(ctx context.Context, token string) error
}

type productRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}

func New(repo cartRepo, products productRepo, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{repo: repo, products: products, logger: logger}
}

// Get returns the cart's current lines. Unknown tokens rehydrate to an empty
// cart rather than an error.
func (s *Service) Get(ctx context.Context, token string) (domain.CartLines, error) {
	c, err := s.repo.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return c.Lines, nil
}

// AddItem snapshots the product into the cart, merging by product id. The
// quantity defaults to 1 when the caller sends none.
func (s *Service) AddItem(ctx context.Context, token, productID, flavor string, qty int) (domain.CartLines, error) {
	p, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	lines, err := s.Get(ctx, token)
	if err != nil {
		return nil, err
	}
	lines = lines.Add(*p, flavor, qty)

	if err := s.repo.Save(ctx, token, lines); err != nil {
		return nil, err
	}
	s.logger.Printf("cart: add token=%s product_id=%s qty=%d lines=%d", token, productID, qty, len(lines))
	return lines, nil
}

// UpdateQuantity sets a line's quantity; below 1 the line is removed.
func (s *Service) UpdateQuantity(ctx context.Context, token, productID string, qty int) (domain.CartLines, error) {
	lines, err := s.Get(ctx, token)
	if err != nil {
		return nil, err
	}
	lines = lines.UpdateQuantity(productID, qty)

	if err := s.repo.Save(ctx, token, lines); err != nil {
		return nil, err
	}
	return lines, nil
}

// RemoveItem deletes a line; removing an absent line is not an error.
func (s *Service) RemoveItem(ctx context.Context, token, productID string) (domain.CartLines, error) {
	lines, err := s.Get(ctx, token)
	if err != nil {
		return nil, err
	}
	lines = lines.Remove(productID)

	if err := s.repo.Save(ctx, token, lines); err != nil {
		return nil, err
	}
	return lines, nil
}

// Clear empties the cart. Called after a successful checkout.
func (s *Service) Clear(ctx context.Context, token string) error {
	return s.repo.Clear(ctx, token)
}
