package importer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"musclesaction-store/internal/domain"
)

type ProductWriter interface {
	Insert(ctx context.Context, product domain.Product) (*domain.Product, error)
}

// JSONImporter reads a catalog export (a JSON array of products) and inserts
// them one by one. The file is streamed, so large exports do not need to fit
// in memory at once.
type JSONImporter struct {
	dec      *json.Decoder
	products ProductWriter
}

func NewJSONImporter(r io.Reader, products ProductWriter) *JSONImporter {
	return &JSONImporter{
		dec:      json.NewDecoder(r),
		products: products,
	}
}

type productRecord struct {
	Name          string   `json:"name"`
	NameAr        string   `json:"nameAr"`
	Description   string   `json:"description"`
	DescriptionAr string   `json:"descriptionAr"`
	Images        []string `json:"images"`
	Flavors       []string `json:"flavors"`
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"originalPrice"`
	Discount      *int     `json:"discount"`
	Category      string   `json:"category"`
	InStock       *bool    `json:"inStock"`
	IsBestSeller  bool     `json:"isBestSeller"`
	IsNew         bool     `json:"isNew"`
	Rating        float64  `json:"rating"`
}

// Run parses the export and inserts each product, returning how many were
// written. It stops at the first invalid record.
func (i *JSONImporter) Run(ctx context.Context) (int, error) {
	tok, err := i.dec.Token()
	if err != nil {
		return 0, fmt.Errorf("read export: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '[' {
		return 0, fmt.Errorf("export must be a JSON array, got %v", tok)
	}

	imported := 0
	for i.dec.More() {
		var rec productRecord
		if err := i.dec.Decode(&rec); err != nil {
			return imported, fmt.Errorf("decode record %d: %w", imported+1, err)
		}
		p, err := rec.toDomain()
		if err != nil {
			return imported, fmt.Errorf("record %d: %w", imported+1, err)
		}
		if _, err := i.products.Insert(ctx, p); err != nil {
			return imported, fmt.Errorf("insert product %q: %w", p.Name, err)
		}
		imported++
	}

	if _, err := i.dec.Token(); err != nil {
		return imported, fmt.Errorf("read export: %w", err)
	}
	return imported, nil
}

func (r productRecord) toDomain() (domain.Product, error) {
	if r.Name == "" {
		return domain.Product{}, fmt.Errorf("missing name")
	}
	if r.Price <= 0 {
		return domain.Product{}, fmt.Errorf("product %q: price must be positive", r.Name)
	}
	if r.Category == "" {
		return domain.Product{}, fmt.Errorf("product %q: missing category", r.Name)
	}

	p := domain.Product{
		Name:          r.Name,
		NameAr:        r.NameAr,
		Description:   r.Description,
		DescriptionAr: r.DescriptionAr,
		Images:        r.Images,
		Flavors:       r.Flavors,
		Price:         decimal.NewFromFloat(r.Price),
		Discount:      r.Discount,
		Category:      r.Category,
		InStock:       true,
		IsBestSeller:  r.IsBestSeller,
		IsNew:         r.IsNew,
		Rating:        r.Rating,
	}
	if r.Images == nil {
		p.Images = []string{}
	}
	if r.Flavors == nil {
		p.Flavors = []string{}
	}
	if r.OriginalPrice != nil {
		v := decimal.NewFromFloat(*r.OriginalPrice)
		p.OriginalPrice = &v
	}
	if r.InStock != nil {
		p.InStock = *r.InStock
	}
	return p, nil
}
