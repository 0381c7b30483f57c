package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urban-store/storefront/internal/cart/domain"
)

// Synchronizer replays snapshot writes made by other processes into the
// local cart. Each external write produces exactly one SetSnapshot
// dispatch; there is no debouncing. The replayed items carry their
// final quantities, so the cart ends up with exactly the external
// state rather than merge-incremented counts.
type Synchronizer struct {
	cart    *Service
	watcher SnapshotWatcher
	log     *slog.Logger
}

func NewSynchronizer(cart *Service, watcher SnapshotWatcher, log *slog.Logger) *Synchronizer {
	return &Synchronizer{
		cart:    cart,
		watcher: watcher,
		log:     log,
	}
}

// Run blocks until ctx is cancelled or the watcher channel closes.
func (s *Synchronizer) Run(ctx context.Context) error {
	ch, err := s.watcher.Watch(ctx)
	if err != nil {
		return fmt.Errorf("watch snapshots: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case items, ok := <-ch:
			if !ok {
				return nil
			}
			s.log.Debug("external cart snapshot", slog.Int("items", len(items)))
			s.cart.Dispatch(domain.SetSnapshot{Items: items})
		}
	}
}
