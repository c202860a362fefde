package importer

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"musclesaction-store/internal/domain"
)

type stubProductRepo struct {
	items []domain.Product
}

func (s *stubProductRepo) Insert(_ context.Context, p domain.Product) (*domain.Product, error) {
	s.items = append(s.items, p)
	return &p, nil
}

func TestJSONImporter_Run(t *testing.T) {
	data := `[
  {
    "name": "Whey Protein",
    "nameAr": "واي بروتين",
    "price": 950,
    "originalPrice": 1100,
    "category": "protein",
    "flavors": ["Chocolate", "Vanilla"],
    "isBestSeller": true,
    "rating": 4.7
  },
  {
    "name": "Creatine Monohydrate",
    "nameAr": "كرياتين",
    "price": 400,
    "category": "creatine",
    "inStock": false
  }
]`

	repo := &stubProductRepo{}
	imp := NewJSONImporter(strings.NewReader(data), repo)

	count, err := imp.Run(context.Background())
	if err != nil {
		t.Fatalf("import run: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 products imported, got %d", count)
	}

	first := repo.items[0]
	if first.Name != "Whey Protein" || !first.Price.Equal(decimal.NewFromInt(950)) {
		t.Fatalf("unexpected product data: %+v", first)
	}
	if first.OriginalPrice == nil || !first.OriginalPrice.Equal(decimal.NewFromInt(1100)) {
		t.Fatalf("expected original price preserved, got %+v", first.OriginalPrice)
	}
	if len(first.Flavors) != 2 || !first.InStock {
		t.Fatalf("unexpected product data: %+v", first)
	}

	second := repo.items[1]
	if second.InStock {
		t.Fatalf("expected inStock false to be honored: %+v", second)
	}
	if second.Images == nil || second.Flavors == nil {
		t.Fatal("absent arrays should import as empty, not nil")
	}
}

func TestJSONImporter_RejectsInvalidRecord(t *testing.T) {
	data := `[{"name": "No Price", "category": "protein"}]`

	repo := &stubProductRepo{}
	imp := NewJSONImporter(strings.NewReader(data), repo)

	count, err := imp.Run(context.Background())
	if err == nil {
		t.Fatal("expected error for record without price")
	}
	if count != 0 || len(repo.items) != 0 {
		t.Fatalf("nothing should be written, count=%d items=%d", count, len(repo.items))
	}
}

func TestJSONImporter_RejectsNonArray(t *testing.T) {
	imp := NewJSONImporter(strings.NewReader(`{"name":"x"}`), &stubProductRepo{})
	if _, err := imp.Run(context.Background()); err == nil {
		t.Fatal("expected error for non-array export")
	}
}
