package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func product(id string, price int64) Product {
	return Product{ID: id, Name: "p-" + id, Price: decimal.NewFromInt(price)}
}

func TestCartLines_AddMergesByProductID(t *testing.T) {
	var lines CartLines
	lines = lines.Add(product("p1", 100), "Chocolate", 1)
	lines = lines.Add(product("p1", 100), "Chocolate", 1)

	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, 2, lines.TotalItems())
}

func TestCartLines_AddDifferentFlavorOverwritesLine(t *testing.T) {
	// Merge identity is the product id only: adding the same product with
	// another flavor updates the existing line instead of appending.
	var lines CartLines
	lines = lines.Add(product("p1", 100), "Chocolate", 1)
	lines = lines.Add(product("p1", 100), "Vanilla", 2)

	require.Len(t, lines, 1)
	assert.Equal(t, 3, lines[0].Quantity)
	assert.Equal(t, "Vanilla", lines[0].Flavor)
}

func TestCartLines_AddClampsQuantityToOne(t *testing.T) {
	var lines CartLines
	lines = lines.Add(product("p1", 100), "", 0)

	require.Len(t, lines, 1)
	assert.Equal(t, 1, lines[0].Quantity)
}

func TestCartLines_UpdateQuantity(t *testing.T) {
	tests := []struct {
		name      string
		qty       int
		wantLines int
		wantQty   int
	}{
		{name: "positive quantity is set", qty: 5, wantLines: 1, wantQty: 5},
		{name: "zero removes the line", qty: 0, wantLines: 0},
		{name: "negative removes the line", qty: -1, wantLines: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := CartLines{}.Add(product("p1", 100), "", 1)
			lines = lines.UpdateQuantity("p1", tt.qty)

			require.Len(t, lines, tt.wantLines)
			if tt.wantLines > 0 {
				assert.Equal(t, tt.wantQty, lines[0].Quantity)
			}
		})
	}
}

func TestCartLines_RemoveIsIdempotent(t *testing.T) {
	lines := CartLines{}.Add(product("p1", 100), "", 1)
	lines = lines.Remove("p1")
	lines = lines.Remove("p1")
	lines = lines.Remove("missing")

	assert.Empty(t, lines)
}

func TestCartLines_Totals(t *testing.T) {
	var lines CartLines
	lines = lines.Add(product("p1", 250), "", 2)
	lines = lines.Add(product("p2", 120), "Lemon", 1)
	lines = lines.UpdateQuantity("p2", 3)

	assert.Equal(t, 5, lines.TotalItems())
	// 250*2 + 120*3, no delivery fee or discounts.
	assert.True(t, lines.TotalPrice().Equal(decimal.NewFromInt(860)),
		"total = %s", lines.TotalPrice())
}

func TestCartLines_TotalsTrackEveryMutation(t *testing.T) {
	var lines CartLines
	lines = lines.Add(product("a", 10), "", 1)
	lines = lines.Add(product("b", 20), "", 2)
	lines = lines.Add(product("a", 10), "", 4)
	lines = lines.Remove("b")
	lines = lines.UpdateQuantity("a", 2)

	want := 0
	sum := decimal.Zero
	for _, l := range lines {
		want += l.Quantity
		sum = sum.Add(l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	assert.Equal(t, want, lines.TotalItems())
	assert.True(t, sum.Equal(lines.TotalPrice()))
}
