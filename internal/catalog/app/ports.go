package app

import (
	"context"
	"errors"

	"github.com/urban-store/storefront/internal/catalog/domain"
)

var ErrNotFound = errors.New("not found")

// ProductSource supplies the product set the listing pipeline works
// over. Implementations own the transport; the pipeline only ever sees
// in-memory records.
type ProductSource interface {
	List(ctx context.Context) ([]domain.Product, error)
	Search(ctx context.Context, keyword string) ([]domain.Product, error)
}
