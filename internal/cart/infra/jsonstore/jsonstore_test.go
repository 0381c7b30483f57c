package jsonstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/urban-store/storefront/internal/cart/domain"
	"github.com/urban-store/storefront/pkg/logger"
)

func testItems() []domain.CartItem {
	return []domain.CartItem{
		{ID: "a", Title: "product a", Price: decimal.RequireFromString("10"), Quantity: 2, Image: "/img/a.png"},
		{ID: "b", Title: "product b", Price: decimal.RequireFromString("5.99"), Quantity: 1, Image: "/img/b.png"},
	}
}

func TestLoadMissingFile(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "cart.json"), logger.Nop())

	items := store.Load()
	if items == nil || len(items) != 0 {
		t.Fatalf("missing file must load as empty, got %+v", items)
	}
}

func TestLoadMalformedSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	store := New(path, logger.Nop())
	items := store.Load()
	if len(items) != 0 {
		t.Fatalf("malformed snapshot must load as empty, got %+v", items)
	}

	// A subsequent save of the loaded state persists an empty snapshot.
	store.Save(items)
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "[]" {
		t.Fatalf("expected empty snapshot, got %q", b)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	store := New(path, logger.Nop())

	want := testItems()
	store.Save(want)

	got := store.Load()
	if !domain.ItemsEqual(want, got) {
		t.Fatalf("round trip mismatch: want %+v, got %+v", want, got)
	}

	// save(load()) reproduces the same snapshot byte for byte.
	before, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	store.Save(got)
	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(before) != string(after) {
		t.Fatalf("snapshot not stable: %q vs %q", before, after)
	}
}

func TestSaveBestEffort(t *testing.T) {
	// Unwritable target: Save must swallow the failure.
	store := &Store{path: filepath.Join(t.TempDir(), "no-such-dir", "cart.json"), log: logger.Nop()}
	store.Save(testItems())

	if items := store.Load(); len(items) != 0 {
		t.Fatalf("nothing should have been written, got %+v", items)
	}
}

func TestWatchReportsForeignWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	store := New(path, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := store.Watch(ctx)
	if err != nil {
		t.Fatal(err)
	}

	// A write through our own store must be suppressed.
	store.Save(testItems())
	select {
	case items := <-ch:
		t.Fatalf("own write must not be reported, got %+v", items)
	case <-time.After(300 * time.Millisecond):
	}

	// A foreign write (different content, written directly) must arrive.
	foreign := `[{"id":"x","title":"external","price":"3","quantity":4,"image":""}]`
	if err := os.WriteFile(path, []byte(foreign), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case items := <-ch:
		if len(items) != 1 || items[0].ID != "x" || items[0].Quantity != 4 {
			t.Fatalf("unexpected snapshot: %+v", items)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for foreign write event")
	}
}

func TestWatchIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	store := New(filepath.Join(dir, "cart.json"), logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := store.Watch(ctx)
	if err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(filepath.Join(dir, "other.json"), []byte("[]"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case items := <-ch:
		t.Fatalf("writes to other keys must be ignored, got %+v", items)
	case <-time.After(300 * time.Millisecond):
	}
}
