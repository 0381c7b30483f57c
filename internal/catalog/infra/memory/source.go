package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/urban-store/storefront/internal/catalog/domain"
)

// Source is an in-memory ProductSource seeded at construction. It
// stands in for the remote catalog in the wiring binary and in tests.
type Source struct {
	mu       sync.RWMutex
	products []domain.Product
}

func New(products []domain.Product) *Source {
	return &Source{products: products}
}

func (s *Source) List(ctx context.Context) ([]domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out, nil
}

// Search matches the keyword against product titles, case-insensitive.
func (s *Source) Search(ctx context.Context, keyword string) ([]domain.Product, error) {
	keyword = strings.ToLower(strings.TrimSpace(keyword))

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Product, 0, len(s.products))
	for _, p := range s.products {
		if keyword == "" || strings.Contains(strings.ToLower(p.Title), keyword) {
			out = append(out, p)
		}
	}
	return out, nil
}

// Seed returns a small demo catalog.
func Seed() []domain.Product {
	price := func(s string) decimal.Decimal { return decimal.RequireFromString(s) }

	return []domain.Product{
		{ID: "1", Title: "Essence Mascara Lash Princess", Price: price("9.99"), Category: "beauty", Rating: 4.94, Thumbnail: "/img/mascara.png"},
		{ID: "2", Title: "Eyeshadow Palette with Mirror", Price: price("19.99"), Category: "beauty", Rating: 3.28, Thumbnail: "/img/palette.png"},
		{ID: "3", Title: "Apple Watch Series 10", Price: price("399.00"), Category: "electronics", Rating: 4.55, Thumbnail: "/img/watch.png"},
		{ID: "4", Title: "Wireless Earbuds Pro", Price: price("129.50"), Category: "electronics", Rating: 4.12, Thumbnail: "/img/earbuds.png"},
		{ID: "5", Title: "Classic Cotton Shirt", Price: price("24.99"), Category: "mens-shirts", Rating: 3.90, Thumbnail: "/img/shirt.png"},
		{ID: "6", Title: "Trail Running Shoes", Price: price("89.95"), Category: "mens-shoes", Rating: 4.70, Thumbnail: "/img/shoes.png"},
		{ID: "7", Title: "Leather Weekend Bag", Price: price("149.00"), Category: "accessories", Rating: 4.33, Thumbnail: "/img/bag.png"},
		{ID: "8", Title: "Stainless Water Bottle", Price: price("14.50"), Category: "accessories", Rating: 4.01, Thumbnail: "/img/bottle.png"},
	}
}
