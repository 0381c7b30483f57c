package app

import (
	"context"

	catalogdomain "github.com/urban-store/storefront/internal/catalog/domain"
)

// CatalogReader resolves a product by ID. PlaceOrder uses it to verify
// every cart line still exists in the catalog before accepting the
// order.
type CatalogReader interface {
	GetProduct(ctx context.Context, productID string) (catalogdomain.Product, error)
}
