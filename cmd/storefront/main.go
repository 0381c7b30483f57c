package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	cartapp "github.com/urban-store/storefront/internal/cart/app"
	cartdomain "github.com/urban-store/storefront/internal/cart/domain"
	"github.com/urban-store/storefront/internal/cart/infra/jsonstore"
	"github.com/urban-store/storefront/internal/cart/infra/redisstore"
	catalogapp "github.com/urban-store/storefront/internal/catalog/app"
	"github.com/urban-store/storefront/internal/catalog/infra/memory"
	"github.com/urban-store/storefront/internal/checkout/infra/adapter"

	checkoutapp "github.com/urban-store/storefront/internal/checkout/app"
	"github.com/urban-store/storefront/pkg/config"
	"github.com/urban-store/storefront/pkg/logger"
	"github.com/urban-store/storefront/pkg/shutdown"
)

func main() {
	cfg := config.Load()
	log := logger.New(logger.Options{Service: "storefront", Env: cfg.AppEnv, Level: cfg.LogLevel, AddSource: true})

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	store, watcher := buildStore(ctx, cfg, log)

	cart := cartapp.NewService(store, log)
	syncer := cartapp.NewSynchronizer(cart, watcher, log)

	source := memory.New(memory.Seed())
	listing := catalogapp.NewListing(cfg.PageSize)
	loader := catalogapp.NewLoader(source, listing, log)
	if err := loader.Refresh(ctx, ""); err != nil {
		log.Error("initial catalog load failed", slog.Any("err", err))
	}

	checkout := checkoutapp.NewService(cart, adapter.NewCatalogSourceReader(source), log)

	unsubscribe := cart.Subscribe(func(st cartdomain.State) {
		summary := checkout.Summary()
		log.Debug("cart updated",
			slog.Int("items", summary.ItemCount),
			slog.String("total", summary.Total.StringFixed(2)),
		)
	})
	defer unsubscribe()

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	mux.HandleFunc("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := syncer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Error("cart synchronizer stopped", slog.Any("err", err))
			cancel()
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Info("http server starting", slog.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("http server error", slog.Any("err", err))
			cancel()
		}
	}()

	<-ctx.Done()
	log.Info("shutdown requested")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown error", slog.Any("err", err))
	}

	wg.Wait()
	log.Info("bye")
}

func buildStore(ctx context.Context, cfg config.Config, log *slog.Logger) (cartapp.SnapshotStore, cartapp.SnapshotWatcher) {
	switch cfg.CartStore {
	case "redis":
		store := redisstore.New(cfg.RedisAddr, cfg.CartStoreKey, log)
		if err := store.Ping(ctx); err != nil {
			log.Warn("redis unreachable, cart persistence is best-effort", slog.Any("err", err))
		}
		return store, store
	case "file":
		store := jsonstore.New(cfg.CartStorePath, log)
		return store, store
	default:
		log.Error("unknown cart store", slog.String("store", cfg.CartStore))
		os.Exit(1)
		return nil, nil
	}
}
