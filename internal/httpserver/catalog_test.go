package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"musclesaction-store/internal/domain"
	catalogsvc "musclesaction-store/internal/service/catalog"
)

func TestListProductsParsesFilters(t *testing.T) {
	catalog := &stubCatalogSvc{products: []domain.Product{
		{ID: "p1", Name: "Whey Protein", Price: decimal.NewFromInt(950)},
	}}
	router := newTestRouter(Deps{Catalog: catalog})

	req := httptest.NewRequest(http.MethodGet, "/api/products?isNew=true&limit=4&category=protein", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !catalog.gotFilter.New || catalog.gotFilter.Limit != 4 || catalog.gotFilter.Category != "protein" {
		t.Fatalf("unexpected filter: %+v", catalog.gotFilter)
	}
	if !strings.Contains(rec.Body.String(), `"price":950`) {
		t.Fatalf("price should be a JSON number: %s", rec.Body.String())
	}
}

func TestGetProductNotFoundLocalized(t *testing.T) {
	catalog := &stubCatalogSvc{getErr: domain.ErrNotFound}
	router := newTestRouter(Deps{Catalog: catalog})

	req := httptest.NewRequest(http.MethodGet, "/api/products/ghost?lang=ar", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["error"] != "productNotFound" {
		t.Fatalf("unexpected error key: %q", body["error"])
	}
	if body["message"] == "" || body["message"] == "productNotFound" {
		t.Fatalf("expected a translated message, got %q", body["message"])
	}
}

func TestOffersIncludeDiscountedPrices(t *testing.T) {
	catalog := &stubCatalogSvc{offers: []catalogsvc.OfferView{
		{
			Offer: domain.Offer{ID: "o1", Title: "Bulk Stack", Discount: 20},
			Products: []catalogsvc.OfferProduct{
				{
					Product:         domain.Product{ID: "p1", Price: decimal.NewFromInt(1000)},
					DiscountedPrice: decimal.NewFromInt(800),
				},
			},
			BundleTotal: decimal.NewFromInt(800),
		},
	}}
	router := newTestRouter(Deps{Catalog: catalog})

	req := httptest.NewRequest(http.MethodGet, "/api/offers", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `"discountedPrice":800`) || !strings.Contains(body, `"bundleTotal":800`) {
		t.Fatalf("unexpected body: %s", body)
	}
}

func TestCategoriesListed(t *testing.T) {
	router := newTestRouter(Deps{})

	req := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"protein"`) {
		t.Fatalf("expected category ids in body: %s", rec.Body.String())
	}
}
