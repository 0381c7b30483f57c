package jsonstore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/urban-store/storefront/internal/cart/domain"
)

// Store keeps the cart snapshot in a single JSON file: an ordered array
// of item records. There is no schema versioning; content that does not
// parse is treated as unreadable and loads as an empty cart.
type Store struct {
	path string
	log  *slog.Logger

	mu        sync.Mutex
	lastWrite []byte
}

func New(path string, log *slog.Logger) *Store {
	// Best-effort; a missing directory surfaces later as a skipped save.
	_ = os.MkdirAll(filepath.Dir(path), 0o755)
	return &Store{path: path, log: log}
}

// Load reads the snapshot. Missing file, unreadable content or a parse
// failure all yield an empty sequence; nothing is raised to the caller.
func (s *Store) Load() []domain.CartItem {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.log.Warn("read cart snapshot", slog.Any("err", err))
		}
		return []domain.CartItem{}
	}
	return decode(b, s.log)
}

// Save writes the snapshot atomically (temp file plus rename). Failures
// are logged and swallowed; persistence is best-effort.
func (s *Store) Save(items []domain.CartItem) {
	if items == nil {
		items = []domain.CartItem{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		s.log.Warn("encode cart snapshot", slog.Any("err", err))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		s.log.Warn("persist cart snapshot", slog.Any("err", err))
		return
	}
	if err := os.Rename(tmp, s.path); err != nil {
		s.log.Warn("persist cart snapshot", slog.Any("err", err))
		return
	}
	s.lastWrite = b
}

// Watch emits the decoded item sequence whenever another process writes
// the snapshot file. Events whose content matches this store's own last
// write are suppressed, mirroring how browser storage events only fire
// in foreign tabs.
func (s *Store) Watch(ctx context.Context) (<-chan []domain.CartItem, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(filepath.Dir(s.path)); err != nil {
		watcher.Close()
		return nil, err
	}

	ch := make(chan []domain.CartItem, 1)
	go func() {
		defer close(ch)
		defer watcher.Close()

		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != filepath.Clean(s.path) {
					continue
				}
				if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) && !ev.Op.Has(fsnotify.Rename) {
					continue
				}

				b, err := os.ReadFile(s.path)
				if err != nil {
					continue
				}
				s.mu.Lock()
				own := bytes.Equal(b, s.lastWrite)
				s.mu.Unlock()
				if own {
					continue
				}

				select {
				case ch <- decode(b, s.log):
				case <-ctx.Done():
					return
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				s.log.Warn("snapshot watcher", slog.Any("err", err))
			}
		}
	}()

	return ch, nil
}

func decode(b []byte, log *slog.Logger) []domain.CartItem {
	var items []domain.CartItem
	if err := json.Unmarshal(b, &items); err != nil {
		log.Debug("malformed cart snapshot dropped", slog.Any("err", err))
		return []domain.CartItem{}
	}
	if items == nil {
		items = []domain.CartItem{}
	}
	return items
}
