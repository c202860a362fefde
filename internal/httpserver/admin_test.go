package httpserver

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"musclesaction-store/internal/domain"
)

func TestAdminLogin(t *testing.T) {
	admin := &stubAdminSvc{token: "bearer-token"}
	router := newTestRouter(Deps{Admin: admin})

	body := `{"email":"admin@example.com","password":"secret"}`
	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"token":"bearer-token"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestAdminLoginBadCredentials(t *testing.T) {
	admin := &stubAdminSvc{loginErr: domain.ErrInvalidCredentials}
	router := newTestRouter(Deps{Admin: admin})

	body := `{"email":"admin@example.com","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAdminRoutesRequireToken(t *testing.T) {
	router := newTestRouter(Deps{})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/orders", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAdminCreateProduct(t *testing.T) {
	admin := &stubAdminSvc{product: &domain.Product{
		ID:    "p1",
		Name:  "Whey Protein",
		Price: decimal.NewFromInt(950),
	}}
	router := newTestRouter(Deps{Admin: admin})

	body := `{"name":"Whey Protein","nameAr":"واي بروتين","price":950,"category":"protein"}`
	req := httptest.NewRequest(http.MethodPost, "/api/admin/products", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer tok")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"price":950`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestAdminCreateProductRejectsMissingName(t *testing.T) {
	router := newTestRouter(Deps{})

	req := httptest.NewRequest(http.MethodPost, "/api/admin/products", strings.NewReader(`{"price":950}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer tok")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAdminOrderLifecycle(t *testing.T) {
	admin := &stubAdminSvc{}
	router := newTestRouter(Deps{Admin: admin})

	for _, path := range []string{
		"/api/admin/orders/order-1/confirm",
		"/api/admin/orders/order-1/deliver",
	} {
		req := httptest.NewRequest(http.MethodPost, path, nil)
		req.Header.Set("Authorization", "Bearer tok")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusNoContent {
			t.Fatalf("%s: expected 204, got %d", path, rec.Code)
		}
	}
	if len(admin.confirmed) != 1 || admin.confirmed[0] != "order-1" {
		t.Fatalf("confirm not forwarded: %v", admin.confirmed)
	}
	if len(admin.delivered) != 1 || admin.delivered[0] != "order-1" {
		t.Fatalf("deliver not forwarded: %v", admin.delivered)
	}
}

func TestAdminStats(t *testing.T) {
	admin := &stubAdminSvc{stats: &domain.OrderStats{
		TotalOrders:     12,
		TotalSales:      decimal.NewFromInt(15400),
		ConfirmedOrders: 5,
		DeliveredOrders: 4,
	}}
	router := newTestRouter(Deps{Admin: admin})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
	req.Header.Set("Authorization", "Bearer tok")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	got := rec.Body.String()
	if !strings.Contains(got, `"totalSales":15400`) || !strings.Contains(got, `"totalOrders":12`) {
		t.Fatalf("unexpected body: %s", got)
	}
}

func TestAdminListCoupons(t *testing.T) {
	limit := 10
	admin := &stubAdminSvc{coupons: []domain.Coupon{{
		ID:         "c1",
		Code:       "SAVE10",
		Discount:   decimal.NewFromInt(10),
		Type:       domain.CouponPercent,
		UsageLimit: &limit,
		Used:       3,
		Active:     true,
	}}}
	router := newTestRouter(Deps{Admin: admin})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/coupons", nil)
	req.Header.Set("Authorization", "Bearer tok")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	got := rec.Body.String()
	if !strings.Contains(got, `"discount":10`) || !strings.Contains(got, `"used":3`) {
		t.Fatalf("unexpected body: %s", got)
	}
}
