package app

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/urban-store/storefront/internal/cart/domain"
)

// Service owns the cart state. It is the application-wide dispatch
// entry point: constructed once at startup and handed to whatever needs
// cart access, never a package-level global.
//
// Dispatches run one at a time to completion. After each transition
// that changes the item sequence the new sequence is written through to
// the store; promo-only transitions are not persisted.
type Service struct {
	store SnapshotStore
	log   *slog.Logger

	mu     sync.Mutex
	state  domain.State
	subs   map[int]func(domain.State)
	nextID int
}

func NewService(store SnapshotStore, log *slog.Logger) *Service {
	return &Service{
		store: store,
		log:   log,
		state: domain.State{Items: store.Load()},
		subs:  make(map[int]func(domain.State)),
	}
}

// Dispatch applies one action. Subscribers are notified with a copy of
// the resulting state after the transition has been persisted.
func (s *Service) Dispatch(action domain.Action) {
	s.mu.Lock()
	prev := s.state
	next := domain.Reduce(prev, action)
	s.state = next

	if !domain.ItemsEqual(prev.Items, next.Items) {
		s.store.Save(domain.CloneItems(next.Items))
	}

	s.log.Debug("cart action",
		slog.String("action", fmt.Sprintf("%T", action)),
		slog.Int("items", len(next.Items)),
	)

	subs := make([]func(domain.State), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	snapshot := cloneState(next)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snapshot)
	}
}

// State returns a copy of the current cart state.
func (s *Service) State() domain.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneState(s.state)
}

// Subscribe registers a callback invoked after every dispatch. The
// returned func removes the subscription.
func (s *Service) Subscribe(fn func(domain.State)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.subs[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

func cloneState(st domain.State) domain.State {
	out := domain.State{Items: domain.CloneItems(st.Items)}
	if st.AppliedPromo != nil {
		promo := *st.AppliedPromo
		out.AppliedPromo = &promo
	}
	return out
}
