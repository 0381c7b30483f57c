package app

import (
	"context"

	"github.com/urban-store/storefront/internal/cart/domain"
)

// SnapshotStore persists the cart's item sequence under a single
// durable key. Both operations are best-effort: Load falls back to an
// empty sequence on a missing key, malformed content or unavailable
// storage, and Save swallows storage failures. The in-memory state
// stays authoritative either way.
type SnapshotStore interface {
	Load() []domain.CartItem
	Save(items []domain.CartItem)
}

// SnapshotWatcher reports item sequences written to the same snapshot
// key by other processes. Writes made through this process's own store
// are not reported.
type SnapshotWatcher interface {
	Watch(ctx context.Context) (<-chan []domain.CartItem, error)
}
