package checkout

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"

	"github.com/shopspring/decimal"

	"musclesaction-store/internal/domain"
	"musclesaction-store/internal/pricing"
)

// Service turns the current cart plus customer-entered fields into a
// persisted order, and evaluates coupons against the cart for the order
// summary.
type Service struct {
	carts       cartStore
	coupons     couponRepo
	orders      orderRepo
	logger      *log.Logger
	deliveryFee decimal.Decimal
}

type cartStore interface {
	Get(ctx context.Context, token string) (domain.CartLines, error)
	Clear(ctx context.Context, token string) error
}

type couponRepo interface {
	FindByCode(ctx context.Context, code string) (*domain.Coupon, error)
	IncrementUsed(ctx context.Context, id string) error
}

type orderRepo interface {
	Create(ctx context.Context, o domain.Order) (*domain.Order, error)
}

func New(carts cartStore, coupons couponRepo, orders orderRepo, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{
		carts:       carts,
		coupons:     coupons,
		orders:      orders,
		logger:      logger,
		deliveryFee: pricing.DeliveryFee,
	}
}

// ValidationError reports a rejected checkout field. Key is a translation key
// so handlers can localize the message.
type ValidationError struct {
	Key string
}

func (e *ValidationError) Error() string { return e.Key }

// ErrCouponCodeRequired is returned when ApplyCoupon gets a blank code.
var ErrCouponCodeRequired = errors.New("coupon code required")

var paymentMethods = map[string]bool{
	domain.PaymentCashOnDelivery: true,
	domain.PaymentVodafoneCash:   true,
	domain.PaymentInstaPay:       true,
}

// ApplyCoupon looks up the code case-insensitively, checks eligibility, and
// returns the price breakdown for the current cart. The usage counter is NOT
// incremented here; that happens at order placement.
func (s *Service) ApplyCoupon(ctx context.Context, token, code string) (*pricing.Quote, *domain.Coupon, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, nil, ErrCouponCodeRequired
	}

	lines, err := s.carts.Get(ctx, token)
	if err != nil {
		return nil, nil, err
	}

	c, err := s.lookupCoupon(ctx, code)
	if err != nil {
		return nil, nil, err
	}

	q := pricing.Evaluate(lines.TotalPrice(), s.deliveryFee, c)
	return &q, c, nil
}

// PlaceOrderInput carries the checkout form fields.
type PlaceOrderInput struct {
	Name          string
	Address       string
	Phone         string
	PaymentMethod string
	CouponCode    string
}

// PlaceOrder validates the form, snapshots the cart into an order with status
// Pending, increments the coupon usage counter best-effort, and clears the
// cart. The order write and the counter increment are separate writes; an
// increment failure is logged and does not undo the placed order.
func (s *Service) PlaceOrder(ctx context.Context, token string, in PlaceOrderInput) (*domain.Order, error) {
	if err := validate(in); err != nil {
		return nil, err
	}

	lines, err := s.carts.Get(ctx, token)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, domain.ErrEmptyCart
	}

	var coupon *domain.Coupon
	if code := strings.TrimSpace(in.CouponCode); code != "" {
		coupon, err = s.lookupCoupon(ctx, code)
		if err != nil {
			return nil, err
		}
	}

	q := pricing.Evaluate(lines.TotalPrice(), s.deliveryFee, coupon)

	items := make([]domain.OrderItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, domain.OrderItem{
			ID:       l.ProductID,
			Name:     l.Name,
			Flavor:   l.Flavor,
			Quantity: l.Quantity,
			Price:    l.UnitPrice,
		})
	}

	order := domain.Order{
		CustomerName:  strings.TrimSpace(in.Name),
		Address:       strings.TrimSpace(in.Address),
		Phone:         strings.TrimSpace(in.Phone),
		PaymentMethod: in.PaymentMethod,
		Items:         items,
		Total:         q.Total,
		Status:        domain.OrderPending,
	}
	if coupon != nil {
		order.Coupon = &domain.CouponSnapshot{
			ID:       coupon.ID,
			Code:     coupon.Code,
			Type:     coupon.Type,
			Discount: coupon.Discount,
		}
	}

	created, err := s.orders.Create(ctx, order)
	if err != nil {
		return nil, err
	}

	if coupon != nil {
		if err := s.coupons.IncrementUsed(ctx, coupon.ID); err != nil {
			s.logger.Printf("checkout: coupon increment failed order_id=%s coupon_id=%s error=%v",
				created.ID, coupon.ID, err)
		}
	}

	if err := s.carts.Clear(ctx, token); err != nil {
		s.logger.Printf("checkout: cart clear failed order_id=%s token=%s error=%v", created.ID, token, err)
	}

	s.logger.Printf("checkout: placed order_id=%s items=%d total=%s", created.ID, len(items), created.Total)
	return created, nil
}

func (s *Service) lookupCoupon(ctx context.Context, code string) (*domain.Coupon, error) {
	c, err := s.coupons.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCoupon
		}
		return nil, err
	}
	if err := pricing.Eligible(c); err != nil {
		return nil, err
	}
	return c, nil
}

func validate(in PlaceOrderInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return &ValidationError{Key: "fullNameRequired"}
	}
	if strings.TrimSpace(in.Address) == "" {
		return &ValidationError{Key: "addressRequired"}
	}
	phone := strings.TrimSpace(in.Phone)
	if phone == "" {
		return &ValidationError{Key: "phoneRequired"}
	}
	if !digitsOnly(phone) || len(phone) > 15 {
		return &ValidationError{Key: "phoneInvalid"}
	}
	if !paymentMethods[in.PaymentMethod] {
		return &ValidationError{Key: "paymentRequired"}
	}
	return nil
}

func digitsOnly(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
