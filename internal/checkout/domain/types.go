package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Summary is the priced breakdown of a cart. Tax applies to the
// pre-discount subtotal; shipping is a flat rate waived for empty
// carts.
type Summary struct {
	Subtotal decimal.Decimal
	Shipping decimal.Decimal
	Tax      decimal.Decimal
	Discount decimal.Decimal
	Total    decimal.Decimal

	ItemCount int
}

type Country string

const (
	CountryUS Country = "United States"
	CountryCA Country = "Canada"
	CountryUK Country = "United Kingdom"
)

type ShippingInfo struct {
	FirstName string
	LastName  string
	Address   string
	City      string
	ZIP       string
	Country   Country
}

type PaymentMethod string

const (
	PaymentCreditCard PaymentMethod = "credit-card"
	PaymentPayPal     PaymentMethod = "paypal"
)

type PaymentInfo struct {
	CardNumber string
	Expiry     string
	CVV        string
	NameOnCard string
	Method     PaymentMethod
}

type OrderLine struct {
	ProductID string
	Title     string
	UnitPrice decimal.Decimal
	Quantity  int
	LineTotal decimal.Decimal
}

type Order struct {
	ID        string
	Status    string
	Lines     []OrderLine
	Summary   Summary
	Shipping  ShippingInfo
	CreatedAt time.Time
}
