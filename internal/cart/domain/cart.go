package domain

import "github.com/shopspring/decimal"

// CartItem is one product entry in the cart. The ID is the unique key:
// the cart never holds two entries for the same product.
//
// The JSON tags define the snapshot format persisted across sessions.
type CartItem struct {
	ID       string          `json:"id"`
	Title    string          `json:"title"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
	Image    string          `json:"image"`
}

type PromoKind string

const (
	// PromoPercentage discounts a fraction of the subtotal. The
	// Discount field holds the fraction, in [0,1).
	PromoPercentage PromoKind = "percentage"
	// PromoFixed discounts a currency amount, capped at the subtotal
	// when applied.
	PromoFixed PromoKind = "fixed"
)

type PromoCode struct {
	Code     string
	Discount decimal.Decimal
	Kind     PromoKind
}

// State is the full cart: items in insertion order plus an optional
// applied promo. The promo is never persisted and does not survive a
// reload.
type State struct {
	Items        []CartItem
	AppliedPromo *PromoCode
}

// Subtotal is the sum of price times quantity over all items.
func (s State) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, it := range s.Items {
		total = total.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total
}

// ItemCount is the number of distinct entries, not the summed quantity.
func (s State) ItemCount() int {
	return len(s.Items)
}

// CloneItems returns a non-nil copy of the item sequence.
func CloneItems(items []CartItem) []CartItem {
	out := make([]CartItem, len(items))
	copy(out, items)
	return out
}

// ItemsEqual reports whether two item sequences are identical, entry by
// entry, with prices compared by value.
func ItemsEqual(a, b []CartItem) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ID != b[i].ID ||
			a[i].Title != b[i].Title ||
			a[i].Quantity != b[i].Quantity ||
			a[i].Image != b[i].Image ||
			!a[i].Price.Equal(b[i].Price) {
			return false
		}
	}
	return true
}
