package httpserver

import (
	"time"

	"musclesaction-store/internal/domain"
	"musclesaction-store/internal/pricing"
	catalogsvc "musclesaction-store/internal/service/catalog"
)

// Wire payloads. Money fields are emitted as JSON numbers, matching the
// storefront client, so the decimal domain fields are mapped here explicitly.

type productPayload struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	NameAr        string    `json:"nameAr"`
	Description   string    `json:"description,omitempty"`
	DescriptionAr string    `json:"descriptionAr,omitempty"`
	Images        []string  `json:"images"`
	Flavors       []string  `json:"flavors"`
	Price         float64   `json:"price"`
	OriginalPrice *float64  `json:"originalPrice,omitempty"`
	Discount      *int      `json:"discount,omitempty"`
	Category      string    `json:"category"`
	InStock       bool      `json:"inStock"`
	IsBestSeller  bool      `json:"isBestSeller"`
	IsNew         bool      `json:"isNew"`
	Rating        float64   `json:"rating"`
	CreatedAt     time.Time `json:"createdAt"`
}

func toProductPayload(p domain.Product) productPayload {
	out := productPayload{
		ID:            p.ID,
		Name:          p.Name,
		NameAr:        p.NameAr,
		Description:   p.Description,
		DescriptionAr: p.DescriptionAr,
		Images:        emptyIfNil(p.Images),
		Flavors:       emptyIfNil(p.Flavors),
		Price:         p.Price.InexactFloat64(),
		Discount:      p.Discount,
		Category:      p.Category,
		InStock:       p.InStock,
		IsBestSeller:  p.IsBestSeller,
		IsNew:         p.IsNew,
		Rating:        p.Rating,
		CreatedAt:     p.CreatedAt,
	}
	if p.OriginalPrice != nil {
		v := p.OriginalPrice.InexactFloat64()
		out.OriginalPrice = &v
	}
	return out
}

func toProductPayloads(ps []domain.Product) []productPayload {
	out := make([]productPayload, 0, len(ps))
	for _, p := range ps {
		out = append(out, toProductPayload(p))
	}
	return out
}

type cartLinePayload struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	NameAr    string  `json:"nameAr"`
	Flavor    string  `json:"flavor,omitempty"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

type cartPayload struct {
	Items      []cartLinePayload `json:"items"`
	TotalItems int               `json:"totalItems"`
	TotalPrice float64           `json:"totalPrice"`
}

func toCartPayload(lines domain.CartLines) cartPayload {
	items := make([]cartLinePayload, 0, len(lines))
	for _, l := range lines {
		items = append(items, cartLinePayload{
			ProductID: l.ProductID,
			Name:      l.Name,
			NameAr:    l.NameAr,
			Flavor:    l.Flavor,
			Price:     l.UnitPrice.InexactFloat64(),
			Quantity:  l.Quantity,
		})
	}
	return cartPayload{
		Items:      items,
		TotalItems: lines.TotalItems(),
		TotalPrice: lines.TotalPrice().InexactFloat64(),
	}
}

type quotePayload struct {
	Subtotal    float64 `json:"subtotal"`
	Discount    float64 `json:"discount"`
	DeliveryFee float64 `json:"deliveryFee"`
	Total       float64 `json:"total"`
}

func toQuotePayload(q pricing.Quote) quotePayload {
	return quotePayload{
		Subtotal:    q.Subtotal.InexactFloat64(),
		Discount:    q.Discount.InexactFloat64(),
		DeliveryFee: q.DeliveryFee.InexactFloat64(),
		Total:       q.Total.InexactFloat64(),
	}
}

type orderItemPayload struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Flavor   string  `json:"flavor,omitempty"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type orderCouponPayload struct {
	ID       string  `json:"id"`
	Code     string  `json:"code"`
	Type     string  `json:"type"`
	Discount float64 `json:"discount"`
}

type orderPayload struct {
	ID            string              `json:"id"`
	Name          string              `json:"name"`
	Address       string              `json:"address"`
	Phone         string              `json:"phone"`
	PaymentMethod string              `json:"paymentMethod"`
	Items         []orderItemPayload  `json:"items"`
	Total         float64             `json:"total"`
	Coupon        *orderCouponPayload `json:"coupon,omitempty"`
	Status        string              `json:"status"`
	CreatedAt     time.Time           `json:"createdAt"`
}

func toOrderPayload(o domain.Order) orderPayload {
	items := make([]orderItemPayload, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, orderItemPayload{
			ID:       it.ID,
			Name:     it.Name,
			Flavor:   it.Flavor,
			Quantity: it.Quantity,
			Price:    it.Price.InexactFloat64(),
		})
	}
	out := orderPayload{
		ID:            o.ID,
		Name:          o.CustomerName,
		Address:       o.Address,
		Phone:         o.Phone,
		PaymentMethod: o.PaymentMethod,
		Items:         items,
		Total:         o.Total.InexactFloat64(),
		Status:        string(o.Status),
		CreatedAt:     o.CreatedAt,
	}
	if o.Coupon != nil {
		out.Coupon = &orderCouponPayload{
			ID:       o.Coupon.ID,
			Code:     o.Coupon.Code,
			Type:     string(o.Coupon.Type),
			Discount: o.Coupon.Discount.InexactFloat64(),
		}
	}
	return out
}

func toOrderPayloads(os []domain.Order) []orderPayload {
	out := make([]orderPayload, 0, len(os))
	for _, o := range os {
		out = append(out, toOrderPayload(o))
	}
	return out
}

type couponPayload struct {
	ID         string     `json:"id"`
	Code       string     `json:"code"`
	Discount   float64    `json:"discount"`
	Type       string     `json:"type"`
	UsageLimit *int       `json:"usageLimit,omitempty"`
	Used       int        `json:"used"`
	ExpiresAt  *time.Time `json:"expiresAt,omitempty"`
	Active     bool       `json:"active"`
	CreatedAt  time.Time  `json:"createdAt"`
}

func toCouponPayload(c domain.Coupon) couponPayload {
	return couponPayload{
		ID:         c.ID,
		Code:       c.Code,
		Discount:   c.Discount.InexactFloat64(),
		Type:       string(c.Type),
		UsageLimit: c.UsageLimit,
		Used:       c.Used,
		ExpiresAt:  c.ExpiresAt,
		Active:     c.Active,
		CreatedAt:  c.CreatedAt,
	}
}

func toCouponPayloads(cs []domain.Coupon) []couponPayload {
	out := make([]couponPayload, 0, len(cs))
	for _, c := range cs {
		out = append(out, toCouponPayload(c))
	}
	return out
}

type offerProductPayload struct {
	productPayload
	DiscountedPrice float64 `json:"discountedPrice"`
}

type offerPayload struct {
	ID            string                `json:"id"`
	Title         string                `json:"title"`
	Description   string                `json:"description,omitempty"`
	Discount      int                   `json:"discount"`
	DurationValue int                   `json:"durationValue"`
	DurationUnit  string                `json:"durationType"`
	Products      []offerProductPayload `json:"products"`
	BundleTotal   float64               `json:"bundleTotal"`
	CreatedAt     time.Time             `json:"createdAt"`
}

func toOfferPayload(v catalogsvc.OfferView) offerPayload {
	products := make([]offerProductPayload, 0, len(v.Products))
	for _, op := range v.Products {
		products = append(products, offerProductPayload{
			productPayload:  toProductPayload(op.Product),
			DiscountedPrice: op.DiscountedPrice.InexactFloat64(),
		})
	}
	return offerPayload{
		ID:            v.Offer.ID,
		Title:         v.Offer.Title,
		Description:   v.Offer.Description,
		Discount:      v.Offer.Discount,
		DurationValue: v.Offer.DurationValue,
		DurationUnit:  v.Offer.DurationUnit,
		Products:      products,
		BundleTotal:   v.BundleTotal.InexactFloat64(),
		CreatedAt:     v.Offer.CreatedAt,
	}
}

type statsPayload struct {
	TotalOrders     int     `json:"totalOrders"`
	TotalSales      float64 `json:"totalSales"`
	ConfirmedOrders int     `json:"confirmedOrders"`
	DeliveredOrders int     `json:"deliveredOrders"`
}

func toStatsPayload(s domain.OrderStats) statsPayload {
	return statsPayload{
		TotalOrders:     s.TotalOrders,
		TotalSales:      s.TotalSales.InexactFloat64(),
		ConfirmedOrders: s.ConfirmedOrders,
		DeliveredOrders: s.DeliveredOrders,
	}
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
