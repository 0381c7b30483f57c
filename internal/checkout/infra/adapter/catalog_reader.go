package adapter

import (
	"context"

	catalogapp "github.com/urban-store/storefront/internal/catalog/app"
	catalogdomain "github.com/urban-store/storefront/internal/catalog/domain"
)

// CatalogSourceReader adapts a catalog ProductSource to the checkout
// CatalogReader port.
type CatalogSourceReader struct {
	source catalogapp.ProductSource
}

func NewCatalogSourceReader(source catalogapp.ProductSource) *CatalogSourceReader {
	return &CatalogSourceReader{source: source}
}

func (r *CatalogSourceReader) GetProduct(ctx context.Context, productID string) (catalogdomain.Product, error) {
	products, err := r.source.List(ctx)
	if err != nil {
		return catalogdomain.Product{}, err
	}
	for _, p := range products {
		if p.ID == productID {
			return p, nil
		}
	}
	return catalogdomain.Product{}, catalogapp.ErrNotFound
}
