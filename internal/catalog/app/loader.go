package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/urban-store/storefront/internal/catalog/domain"
)

// ErrStaleResponse marks a refresh whose result arrived after a newer
// refresh had already started. Callers drop it silently.
var ErrStaleResponse = errors.New("stale catalog response")

// Loader refreshes a Listing from the product source. Every refresh
// takes a generation token; a response carrying a superseded token is
// discarded instead of overwriting newer results, so a slow fetch can
// never clobber the state of one issued after it.
type Loader struct {
	source  ProductSource
	listing *Listing
	log     *slog.Logger

	mu  sync.Mutex
	gen uint64
}

func NewLoader(source ProductSource, listing *Listing, log *slog.Logger) *Loader {
	return &Loader{
		source:  source,
		listing: listing,
		log:     log,
	}
}

// Refresh fetches the product set (the whole catalog, or a keyword
// search) and installs it into the listing. Fetch failures are returned
// to the caller for display; there is no automatic retry.
func (l *Loader) Refresh(ctx context.Context, keyword string) error {
	l.mu.Lock()
	l.gen++
	gen := l.gen
	l.mu.Unlock()

	var (
		products []domain.Product
		err      error
	)
	if strings.TrimSpace(keyword) == "" {
		products, err = l.source.List(ctx)
	} else {
		products, err = l.source.Search(ctx, keyword)
	}
	if err != nil {
		return fmt.Errorf("fetch products: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if gen != l.gen {
		l.log.Debug("superseded catalog response discarded", slog.Uint64("generation", gen))
		return ErrStaleResponse
	}

	l.listing.Replace(products)
	l.log.Debug("catalog refreshed", slog.Int("products", len(products)))
	return nil
}
