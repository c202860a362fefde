package catalog

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"musclesaction-store/internal/domain"
	productrepo "musclesaction-store/internal/repository/product"
)

type stubProductRepo struct {
	products  []domain.Product
	gotFilter productrepo.Filter
	gotIDs    []string
}

func (s *stubProductRepo) List(_ context.Context, f productrepo.Filter) ([]domain.Product, error) {
	s.gotFilter = f
	return s.products, nil
}

func (s *stubProductRepo) GetByID(_ context.Context, id string) (*domain.Product, error) {
	for i := range s.products {
		if s.products[i].ID == id {
			return &s.products[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *stubProductRepo) GetByIDs(_ context.Context, ids []string) ([]domain.Product, error) {
	s.gotIDs = ids
	var out []domain.Product
	for _, id := range ids {
		for _, p := range s.products {
			if p.ID == id {
				out = append(out, p)
			}
		}
	}
	return out, nil
}

type stubOfferRepo struct {
	offers []domain.Offer
}

func (s *stubOfferRepo) List(_ context.Context) ([]domain.Offer, error) {
	return s.offers, nil
}

func TestListForwardsFilter(t *testing.T) {
	products := &stubProductRepo{}
	svc := New(products, &stubOfferRepo{})

	_, err := svc.List(context.Background(), Filter{Category: "protein", New: true, Limit: 4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if products.gotFilter.Category != "protein" || !products.gotFilter.New || products.gotFilter.Limit != 4 {
		t.Fatalf("filter not forwarded: %+v", products.gotFilter)
	}
}

func TestOffersComputeDiscountedPrices(t *testing.T) {
	products := &stubProductRepo{products: []domain.Product{
		{ID: "p1", Name: "Whey Protein", Price: decimal.NewFromInt(1000)},
		{ID: "p2", Name: "Creatine", Price: decimal.NewFromInt(500)},
	}}
	offers := &stubOfferRepo{offers: []domain.Offer{
		{ID: "o1", Title: "Bulk Stack", Discount: 20, ProductIDs: []string{"p1", "p2"}},
	}}
	svc := New(products, offers)

	views, err := svc.Offers(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("expected 1 offer view, got %d", len(views))
	}

	v := views[0]
	if len(v.Products) != 2 {
		t.Fatalf("expected 2 bundled products, got %d", len(v.Products))
	}
	if !v.Products[0].DiscountedPrice.Equal(decimal.NewFromInt(800)) {
		t.Fatalf("unexpected discounted price: %s", v.Products[0].DiscountedPrice)
	}
	if !v.Products[1].DiscountedPrice.Equal(decimal.NewFromInt(400)) {
		t.Fatalf("unexpected discounted price: %s", v.Products[1].DiscountedPrice)
	}
	// 1500 at 20% off
	if !v.BundleTotal.Equal(decimal.NewFromInt(1200)) {
		t.Fatalf("unexpected bundle total: %s", v.BundleTotal)
	}
}

func TestOffersSkipDeletedProducts(t *testing.T) {
	products := &stubProductRepo{products: []domain.Product{
		{ID: "p1", Price: decimal.NewFromInt(1000)},
	}}
	offers := &stubOfferRepo{offers: []domain.Offer{
		{ID: "o1", Discount: 10, ProductIDs: []string{"p1", "gone"}},
	}}
	svc := New(products, offers)

	views, err := svc.Offers(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(views[0].Products) != 1 {
		t.Fatalf("deleted product should be omitted, got %d products", len(views[0].Products))
	}
	if !views[0].BundleTotal.Equal(decimal.NewFromInt(900)) {
		t.Fatalf("unexpected bundle total: %s", views[0].BundleTotal)
	}
}
