package catalog

import (
	"context"

	"github.com/shopspring/decimal"

	"musclesaction-store/internal/domain"
	"musclesaction-store/internal/pricing"
	productrepo "musclesaction-store/internal/repository/product"
)

// Service serves the read-only storefront catalog: product listings with
// flag/category filters and the offers page with its discounted prices.
type Service struct {
	products productRepo
	offers   offerRepo
}

type productRepo interface {
	List(ctx context.Context, f productrepo.Filter) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	GetByIDs(ctx context.Context, ids []string) ([]domain.Product, error)
}

type offerRepo interface {
	List(ctx context.Context) ([]domain.Offer, error)
}

func New(products productRepo, offers offerRepo) *Service {
	return &Service{products: products, offers: offers}
}

// Filter re-exports the repository filter for callers.
type Filter = productrepo.Filter

func (s *Service) List(ctx context.Context, f Filter) ([]domain.Product, error) {
	return s.products.List(ctx, f)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.products.GetByID(ctx, id)
}

// OfferProduct is a bundled product with its price after the offer discount.
type OfferProduct struct {
	Product         domain.Product
	DiscountedPrice decimal.Decimal
}

// OfferView is an offer resolved against the current catalog. Products that
// were deleted since the offer was curated are simply omitted.
type OfferView struct {
	Offer       domain.Offer
	Products    []OfferProduct
	BundleTotal decimal.Decimal
}

// Offers lists all offers with per-product discounted prices and the bundle
// total: round(sum(price) * (1 - discount/100)).
func (s *Service) Offers(ctx context.Context) ([]OfferView, error) {
	offers, err := s.offers.List(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]OfferView, 0, len(offers))
	for _, o := range offers {
		products, err := s.products.GetByIDs(ctx, o.ProductIDs)
		if err != nil {
			return nil, err
		}

		view := OfferView{Offer: o}
		sum := decimal.Zero
		for _, p := range products {
			view.Products = append(view.Products, OfferProduct{
				Product:         p,
				DiscountedPrice: pricing.OfferPrice(p.Price, o.Discount),
			})
			sum = sum.Add(p.Price)
		}
		view.BundleTotal = pricing.OfferPrice(sum, o.Discount)
		views = append(views, view)
	}
	return views, nil
}
