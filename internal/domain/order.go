package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the admin-driven order lifecycle state.
type OrderStatus string

const (
	OrderPending   OrderStatus = "Pending"
	OrderConfirmed OrderStatus = "Confirmed"
	OrderDelivered OrderStatus = "Delivered"
)

// Payment methods offered at checkout.
const (
	PaymentCashOnDelivery = "cod"
	PaymentVodafoneCash   = "vodafone"
	PaymentInstaPay       = "instapay"
)

// OrderItem is a cart line snapshot frozen into an order record.
type OrderItem struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Flavor   string          `json:"flavor"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// Order is a placed customer order. Items are a snapshot, not live
// references: later catalog edits cannot alter historical orders.
type Order struct {
	ID            string          `json:"id"`
	CustomerName  string          `json:"name"`
	Address       string          `json:"address"`
	Phone         string          `json:"phone"`
	PaymentMethod string          `json:"paymentMethod"`
	Items         []OrderItem     `json:"items"`
	Total         decimal.Decimal `json:"-"`
	Coupon        *CouponSnapshot `json:"coupon,omitempty"`
	Status        OrderStatus     `json:"status"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// OrderStats backs the admin income panel.
type OrderStats struct {
	TotalOrders     int             `json:"totalOrders"`
	TotalSales      decimal.Decimal `json:"-"`
	ConfirmedOrders int             `json:"confirmedOrders"`
	DeliveredOrders int             `json:"deliveredOrders"`
}
