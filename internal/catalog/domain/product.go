package domain

import "github.com/shopspring/decimal"

// Product is a catalog record as fetched from the product source.
type Product struct {
	ID        string
	Title     string
	Price     decimal.Decimal
	Thumbnail string
	Category  string
	Rating    float64
}
