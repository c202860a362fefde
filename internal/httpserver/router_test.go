package httpserver

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"musclesaction-store/internal/domain"
	"musclesaction-store/internal/pricing"
	catalogsvc "musclesaction-store/internal/service/catalog"
	checkoutsvc "musclesaction-store/internal/service/checkout"
)

func logDiscard() *log.Logger {
	return log.New(io.Discard, "", 0)
}

type stubCatalogSvc struct {
	products  []domain.Product
	product   *domain.Product
	getErr    error
	offers    []catalogsvc.OfferView
	gotFilter catalogsvc.Filter
}

func (s *stubCatalogSvc) List(_ context.Context, f catalogsvc.Filter) ([]domain.Product, error) {
	s.gotFilter = f
	return s.products, nil
}

func (s *stubCatalogSvc) Get(_ context.Context, _ string) (*domain.Product, error) {
	return s.product, s.getErr
}

func (s *stubCatalogSvc) Offers(_ context.Context) ([]catalogsvc.OfferView, error) {
	return s.offers, nil
}

type stubCartSvc struct {
	lines     domain.CartLines
	err       error
	lastToken string
	cleared   bool
}

func (s *stubCartSvc) Get(_ context.Context, token string) (domain.CartLines, error) {
	s.lastToken = token
	return s.lines, s.err
}

func (s *stubCartSvc) AddItem(_ context.Context, token, _, _ string, _ int) (domain.CartLines, error) {
	s.lastToken = token
	return s.lines, s.err
}

func (s *stubCartSvc) UpdateQuantity(_ context.Context, token, _ string, _ int) (domain.CartLines, error) {
	s.lastToken = token
	return s.lines, s.err
}

func (s *stubCartSvc) RemoveItem(_ context.Context, token, _ string) (domain.CartLines, error) {
	s.lastToken = token
	return s.lines, s.err
}

func (s *stubCartSvc) Clear(_ context.Context, token string) error {
	s.lastToken = token
	s.cleared = true
	return s.err
}

type stubCheckoutSvc struct {
	quote    *pricing.Quote
	coupon   *domain.Coupon
	applyErr error
	order    *domain.Order
	placeErr error
	gotInput checkoutsvc.PlaceOrderInput
}

func (s *stubCheckoutSvc) ApplyCoupon(_ context.Context, _, _ string) (*pricing.Quote, *domain.Coupon, error) {
	return s.quote, s.coupon, s.applyErr
}

func (s *stubCheckoutSvc) PlaceOrder(_ context.Context, _ string, in checkoutsvc.PlaceOrderInput) (*domain.Order, error) {
	s.gotInput = in
	return s.order, s.placeErr
}

type stubAdminSvc struct {
	token    string
	loginErr error
	authErr  error

	products []domain.Product
	product  *domain.Product
	offers   []domain.Offer
	offer    *domain.Offer
	coupons  []domain.Coupon
	coupon   *domain.Coupon
	orders   []domain.Order
	stats    *domain.OrderStats

	err         error
	confirmed   []string
	delivered   []string
	deletedTyps []string
}

func (s *stubAdminSvc) Login(_ context.Context, _, _ string) (string, error) {
	return s.token, s.loginErr
}

func (s *stubAdminSvc) Authenticate(_ context.Context, token string) (string, error) {
	if s.authErr != nil {
		return "", s.authErr
	}
	if token == "" {
		return "", domain.ErrInvalidToken
	}
	return "admin-1", nil
}

func (s *stubAdminSvc) Logout(_ context.Context, _ string) error { return s.err }

func (s *stubAdminSvc) ListProducts(_ context.Context) ([]domain.Product, error) {
	return s.products, s.err
}

func (s *stubAdminSvc) CreateProduct(_ context.Context, _ domain.Product) (*domain.Product, error) {
	return s.product, s.err
}

func (s *stubAdminSvc) UpdateProduct(_ context.Context, _ domain.Product) (*domain.Product, error) {
	return s.product, s.err
}

func (s *stubAdminSvc) DeleteProduct(_ context.Context, _ string) error {
	s.deletedTyps = append(s.deletedTyps, "product")
	return s.err
}

func (s *stubAdminSvc) ListOffers(_ context.Context) ([]domain.Offer, error) {
	return s.offers, s.err
}

func (s *stubAdminSvc) CreateOffer(_ context.Context, _ domain.Offer) (*domain.Offer, error) {
	return s.offer, s.err
}

func (s *stubAdminSvc) UpdateOffer(_ context.Context, _ domain.Offer) (*domain.Offer, error) {
	return s.offer, s.err
}

func (s *stubAdminSvc) DeleteOffer(_ context.Context, _ string) error {
	s.deletedTyps = append(s.deletedTyps, "offer")
	return s.err
}

func (s *stubAdminSvc) ListCoupons(_ context.Context) ([]domain.Coupon, error) {
	return s.coupons, s.err
}

func (s *stubAdminSvc) CreateCoupon(_ context.Context, _ domain.Coupon) (*domain.Coupon, error) {
	return s.coupon, s.err
}

func (s *stubAdminSvc) UpdateCoupon(_ context.Context, _ domain.Coupon) (*domain.Coupon, error) {
	return s.coupon, s.err
}

func (s *stubAdminSvc) DeleteCoupon(_ context.Context, _ string) error {
	s.deletedTyps = append(s.deletedTyps, "coupon")
	return s.err
}

func (s *stubAdminSvc) ListOrders(_ context.Context) ([]domain.Order, error) {
	return s.orders, s.err
}

func (s *stubAdminSvc) ConfirmOrder(_ context.Context, id string) error {
	s.confirmed = append(s.confirmed, id)
	return s.err
}

func (s *stubAdminSvc) DeliverOrder(_ context.Context, id string) error {
	s.delivered = append(s.delivered, id)
	return s.err
}

func (s *stubAdminSvc) DeleteOrder(_ context.Context, _ string) error {
	s.deletedTyps = append(s.deletedTyps, "order")
	return s.err
}

func (s *stubAdminSvc) OrderStats(_ context.Context) (*domain.OrderStats, error) {
	return s.stats, s.err
}

func newTestRouter(deps Deps) *gin.Engine {
	gin.SetMode(gin.TestMode)
	if deps.Catalog == nil {
		deps.Catalog = &stubCatalogSvc{}
	}
	if deps.Cart == nil {
		deps.Cart = &stubCartSvc{}
	}
	if deps.Checkout == nil {
		deps.Checkout = &stubCheckoutSvc{}
	}
	if deps.Admin == nil {
		deps.Admin = &stubAdminSvc{}
	}
	return buildRouter(logDiscard(), nil, deps, Options{})
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(Deps{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestReadyzWithoutDB(t *testing.T) {
	router := newTestRouter(Deps{})

	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
}

func TestRequestIDEchoed(t *testing.T) {
	router := newTestRouter(Deps{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Header().Get("X-Request-ID") == "" {
		t.Fatal("expected X-Request-ID on response")
	}
}

func TestRateLimitWired(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := buildRouter(logDiscard(), nil, Deps{
		Catalog:  &stubCatalogSvc{},
		Cart:     &stubCartSvc{},
		Checkout: &stubCheckoutSvc{},
		Admin:    &stubAdminSvc{},
	}, Options{RateLimitMax: 1, RateLimitWindow: time.Minute})

	for i, want := range []int{http.StatusOK, http.StatusTooManyRequests} {
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		req.RemoteAddr = "10.1.1.1:1000"
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != want {
			t.Fatalf("request %d: expected %d, got %d", i+1, want, rec.Code)
		}
	}
}
