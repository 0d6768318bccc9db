// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.


package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"folio/internal/cache"
	"folio/internal/config"
	"folio/internal/database"
	"folio/internal/handlers"
	"folio/internal/router"
	"folio/internal/seed"
	"folio/internal/store"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server (default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

// backend holds the opened content store and the connections behind it.
type backend struct {
	store  store.ContentStore
	db     *sql.DB
	valkey *redis.Client
}

func (b *backend) Close() {
	if b.valkey != nil {
		b.valkey.Close()
	}
	if b.db != nil {
		b.db.Close()
	}
}

// openBackend picks the content store from configuration: PostgreSQL when
// enabled, otherwise the seed catalog in memory. With Valkey enabled, view
// counts are kept there on top of the base store.
func openBackend(ctx context.Context, cfg *config.Config) (*backend, error) {
	catalog, err := seed.Default()
	if err != nil {
		return nil, fmt.Errorf("load seed catalog: %w", err)
	}

	b := &backend{}
	if cfg.Database.Enabled {
		db, err := database.Connect(cfg.DSN())
		if err != nil {
			return nil, err
		}
		b.db = db
		if err := database.Migrate(db); err != nil {
			b.Close()
			return nil, err
		}
		if err := database.Seed(ctx, db, catalog); err != nil {
			b.Close()
			return nil, err
		}
		b.store = store.NewPostgres(db)
		slog.Info("content store ready", "backend", "postgres", "host", cfg.Database.Host)
	} else {
		b.store = store.NewMemoryFromCatalog(catalog)
		slog.Info("content store ready", "backend", "memory",
			"posts", len(catalog.BlogPosts), "projects", len(catalog.Projects))
	}

	if cfg.Valkey.Enabled {
		client, err := cache.ConnectValkey(cfg.ValkeyAddr(), cfg.Valkey.Password)
		if err != nil {
			b.Close()
			return nil, err
		}
		b.valkey = client
		b.store = store.WithViewCounter(b.store, cache.NewViewCounter(client))
		slog.Info("valkey connected", "addr", cfg.ValkeyAddr())
	}

	return b, nil
}

func runServe(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	slog.SetDefault(newLogger(os.Stdout, cfg.Log))

	slog.Info("configuration loaded",
		"env", cfg.App.Env,
		"addr", cfg.Addr(),
	)

	b, err := openBackend(ctx, cfg)
	if err != nil {
		return err
	}
	defer b.Close()

	var respCache *cache.ResponseCache
	if b.valkey != nil {
		respCache = cache.NewResponseCache(b.valkey, cfg.Valkey.ResponseTTL)
	}

	content := handlers.NewContent(b.store)
	rss := handlers.NewRSS(b.store, cfg.HTTP.SiteName, cfg.HTTP.SiteURL)
	r := router.New(cfg.HTTP, content, rss, respCache)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-quit:
		slog.Info("shutdown signal received", "signal", sig)
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	if respCache != nil {
		respCache.InvalidateAll(shutdownCtx)
	}

	slog.Info("server stopped gracefully")
	return nil
}
