package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartLine is one cart entry: a product snapshot plus the chosen flavor and
// quantity. Prices are snapshotted at add time so later catalog edits do not
// change what the visitor saw.
type CartLine struct {
	ProductID string
	Name      string
	NameAr    string
	Flavor    string
	UnitPrice decimal.Decimal
	Quantity  int
}

// CartLines holds the ordered line list of a cart. All mutations return the
// updated list; callers persist the whole list after each change.
type CartLines []CartLine

// Cart is a persisted visitor cart, looked up by its opaque token.
type Cart struct {
	ID        string
	Token     string
	Lines     CartLines
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Add merges by product id only: an existing line gains qty and its flavor is
// overwritten with the newly chosen one; otherwise a new line is appended.
func (ls CartLines) Add(p Product, flavor string, qty int) CartLines {
	if qty < 1 {
		qty = 1
	}
	for i := range ls {
		if ls[i].ProductID == p.ID {
			ls[i].Quantity += qty
			ls[i].Flavor = flavor
			return ls
		}
	}
	return append(ls, CartLine{
		ProductID: p.ID,
		Name:      p.Name,
		NameAr:    p.NameAr,
		Flavor:    flavor,
		UnitPrice: p.Price,
		Quantity:  qty,
	})
}

// UpdateQuantity sets the line's quantity. A quantity below 1 removes the
// line entirely. Unknown product ids are a no-op.
func (ls CartLines) UpdateQuantity(productID string, qty int) CartLines {
	if qty < 1 {
		return ls.Remove(productID)
	}
	for i := range ls {
		if ls[i].ProductID == productID {
			ls[i].Quantity = qty
			break
		}
	}
	return ls
}

// Remove deletes the line for productID. Removing an absent line is a no-op.
func (ls CartLines) Remove(productID string) CartLines {
	for i := range ls {
		if ls[i].ProductID == productID {
			return append(ls[:i:i], ls[i+1:]...)
		}
	}
	return ls
}

// TotalItems returns the sum of quantities across all lines.
func (ls CartLines) TotalItems() int {
	total := 0
	for _, l := range ls {
		total += l.Quantity
	}
	return total
}

// TotalPrice returns the sum of unit price times quantity across all lines.
// Delivery fee and coupon discounts are applied by the caller.
func (ls CartLines) TotalPrice() decimal.Decimal {
	sum := decimal.Zero
	for _, l := range ls {
		sum = sum.Add(l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return sum
}
