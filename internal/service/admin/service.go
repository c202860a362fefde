package admin

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"musclesaction-store/internal/domain"
	adminrepo "musclesaction-store/internal/repository/admin"
	couponrepo "musclesaction-store/internal/repository/coupon"
	offerrepo "musclesaction-store/internal/repository/offer"
	orderrepo "musclesaction-store/internal/repository/order"
	productrepo "musclesaction-store/internal/repository/product"
)

// Service is the back-office: email/password sign-in and CRUD over products,
// offers, coupons, and orders. Writes are last-writer-wins; list calls always
// reread the full collection.
type Service struct {
	admins   adminrepo.Repository
	tokens   *tokenManager
	products productrepo.Repository
	offers   offerrepo.Repository
	coupons  couponrepo.Repository
	orders   orderrepo.Repository
	logger   *log.Logger
	tokenTTL time.Duration
}

func New(
	admins adminrepo.Repository,
	products productrepo.Repository,
	offers offerrepo.Repository,
	coupons couponrepo.Repository,
	orders orderrepo.Repository,
	tokenTTL time.Duration,
	logger *log.Logger,
) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if tokenTTL <= 0 {
		tokenTTL = 48 * time.Hour
	}
	return &Service{
		admins:   admins,
		tokens:   newTokenManager(admins),
		products: products,
		offers:   offers,
		coupons:  coupons,
		orders:   orders,
		logger:   logger,
		tokenTTL: tokenTTL,
	}
}

// Login validates credentials and returns an opaque bearer token.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	a, err := s.admins.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)); err != nil {
		s.logger.Printf("admin: login rejected email=%s", email)
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(ctx, a.ID, s.tokenTTL)
	if err != nil {
		return "", err
	}
	s.logger.Printf("admin: login email=%s", email)
	return token, nil
}

// Authenticate resolves a bearer token to an admin id, rejecting unknown and
// expired tokens.
func (s *Service) Authenticate(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", domain.ErrInvalidToken
	}
	t, err := s.admins.FindToken(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.ErrInvalidToken
		}
		return "", err
	}
	if time.Now().UTC().After(t.ExpiresAt) {
		_ = s.admins.DeleteToken(ctx, token)
		return "", domain.ErrInvalidToken
	}
	return t.AdminID, nil
}

// Logout discards the bearer token.
func (s *Service) Logout(ctx context.Context, token string) error {
	return s.admins.DeleteToken(ctx, token)
}

// Product CRUD.

func (s *Service) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.products.List(ctx, productrepo.Filter{})
}

func (s *Service) CreateProduct(ctx context.Context, p domain.Product) (*domain.Product, error) {
	return s.products.Insert(ctx, p)
}

func (s *Service) UpdateProduct(ctx context.Context, p domain.Product) (*domain.Product, error) {
	return s.products.Update(ctx, p)
}

func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	return s.products.Delete(ctx, id)
}

// Offer CRUD.

func (s *Service) ListOffers(ctx context.Context) ([]domain.Offer, error) {
	return s.offers.List(ctx)
}

func (s *Service) CreateOffer(ctx context.Context, o domain.Offer) (*domain.Offer, error) {
	return s.offers.Insert(ctx, o)
}

func (s *Service) UpdateOffer(ctx context.Context, o domain.Offer) (*domain.Offer, error) {
	return s.offers.Update(ctx, o)
}

func (s *Service) DeleteOffer(ctx context.Context, id string) error {
	return s.offers.Delete(ctx, id)
}

// Coupon CRUD.

func (s *Service) ListCoupons(ctx context.Context) ([]domain.Coupon, error) {
	return s.coupons.List(ctx)
}

func (s *Service) CreateCoupon(ctx context.Context, c domain.Coupon) (*domain.Coupon, error) {
	if err := validateCoupon(c); err != nil {
		return nil, err
	}
	return s.coupons.Insert(ctx, c)
}

func (s *Service) UpdateCoupon(ctx context.Context, c domain.Coupon) (*domain.Coupon, error) {
	if err := validateCoupon(c); err != nil {
		return nil, err
	}
	return s.coupons.Update(ctx, c)
}

func (s *Service) DeleteCoupon(ctx context.Context, id string) error {
	return s.coupons.Delete(ctx, id)
}

// Orders.

func (s *Service) ListOrders(ctx context.Context) ([]domain.Order, error) {
	return s.orders.List(ctx)
}

// ConfirmOrder and DeliverOrder set the status unconditionally, matching the
// back-office buttons: there is no state machine guarding the transition.
func (s *Service) ConfirmOrder(ctx context.Context, id string) error {
	return s.orders.UpdateStatus(ctx, id, domain.OrderConfirmed)
}

func (s *Service) DeliverOrder(ctx context.Context, id string) error {
	return s.orders.UpdateStatus(ctx, id, domain.OrderDelivered)
}

func (s *Service) DeleteOrder(ctx context.Context, id string) error {
	return s.orders.Delete(ctx, id)
}

func (s *Service) OrderStats(ctx context.Context) (*domain.OrderStats, error) {
	return s.orders.Stats(ctx)
}

func validateCoupon(c domain.Coupon) error {
	if strings.TrimSpace(c.Code) == "" {
		return errors.New("code required")
	}
	if c.Type != domain.CouponPercent && c.Type != domain.CouponFixed {
		return errors.New("type must be percent or fixed")
	}
	if c.Discount.IsNegative() {
		return errors.New("discount must not be negative")
	}
	return nil
}
