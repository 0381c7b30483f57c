package redisstore

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"github.com/urban-store/storefront/internal/cart/domain"
)

const opTimeout = 5 * time.Second

// Store keeps the cart snapshot at a single redis key and publishes
// change events on <key>:events so other processes sharing the key can
// synchronize. Each process carries an origin ID so it can ignore its
// own writes.
type Store struct {
	client *redis.Client
	key    string
	origin string
	log    *slog.Logger
}

type envelope struct {
	Origin string            `json:"origin"`
	Items  []domain.CartItem `json:"items"`
}

func New(addr, key string, log *slog.Logger) *Store {
	opts, err := redis.ParseURL(addr)
	if err != nil {
		// Plain "host:port" form.
		opts = &redis.Options{Addr: addr}
	}

	if key == "" {
		key = "cart"
	}

	return &Store{
		client: redis.NewClient(opts),
		key:    key,
		origin: uuid.NewString(),
		log:    log,
	}
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *Store) Close() error {
	return s.client.Close()
}

// Load reads the snapshot. A missing key, unreachable server or parse
// failure all yield an empty sequence.
func (s *Store) Load() []domain.CartItem {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	val, err := s.client.Get(ctx, s.key).Result()
	if err != nil {
		if err != redis.Nil {
			s.log.Warn("load cart snapshot", slog.Any("err", err))
		}
		return []domain.CartItem{}
	}

	var items []domain.CartItem
	if err := json.Unmarshal([]byte(val), &items); err != nil {
		s.log.Debug("malformed cart snapshot dropped", slog.Any("err", err))
		return []domain.CartItem{}
	}
	if items == nil {
		items = []domain.CartItem{}
	}
	return items
}

// Save writes the snapshot and publishes a change event. Best-effort:
// failures are logged and swallowed.
func (s *Store) Save(items []domain.CartItem) {
	if items == nil {
		items = []domain.CartItem{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		s.log.Warn("encode cart snapshot", slog.Any("err", err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	if err := s.client.Set(ctx, s.key, b, 0).Err(); err != nil {
		s.log.Warn("persist cart snapshot", slog.Any("err", err))
		return
	}

	env, err := json.Marshal(envelope{Origin: s.origin, Items: items})
	if err != nil {
		return
	}
	if err := s.client.Publish(ctx, s.eventsChannel(), env).Err(); err != nil {
		s.log.Debug("publish cart snapshot event", slog.Any("err", err))
	}
}

// Watch subscribes to change events for this store's key and emits the
// item sequences written by other processes.
func (s *Store) Watch(ctx context.Context) (<-chan []domain.CartItem, error) {
	sub := s.client.Subscribe(ctx, s.eventsChannel())
	if _, err := sub.Receive(ctx); err != nil {
		sub.Close()
		return nil, err
	}

	ch := make(chan []domain.CartItem, 1)
	go func() {
		defer close(ch)
		defer sub.Close()

		msgs := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				var env envelope
				if err := json.Unmarshal([]byte(msg.Payload), &env); err != nil {
					s.log.Debug("malformed cart event dropped", slog.Any("err", err))
					continue
				}
				if env.Origin == s.origin {
					continue
				}
				items := env.Items
				if items == nil {
					items = []domain.CartItem{}
				}
				select {
				case ch <- items:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return ch, nil
}

func (s *Store) eventsChannel() string {
	return s.key + ":events"
}
