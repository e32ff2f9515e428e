package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/lingobridge/translator-backend/internal/adapter/postgres"
	"github.com/lingobridge/translator-backend/internal/adapter/postgres/dictionary"
	"github.com/lingobridge/translator-backend/internal/config"
	"github.com/lingobridge/translator-backend/internal/dictstore"
	"github.com/lingobridge/translator-backend/internal/fallback"
	"github.com/lingobridge/translator-backend/internal/language"
	"github.com/lingobridge/translator-backend/internal/resultcache"
	"github.com/lingobridge/translator-backend/internal/service/translator"
	"github.com/lingobridge/translator-backend/internal/transport/middleware"
	"github.com/lingobridge/translator-backend/internal/transport/rest"
	"github.com/lingobridge/translator-backend/internal/translit"
)

// Run is the application entry point. It loads configuration, connects to
// the database, warms the dictionary store, wires the translation service,
// and serves HTTP until the context is canceled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	txm := postgres.NewTxManager(pool)
	repo := dictionary.New(pool, txm)

	store := dictstore.New(repo, cfg.Translator.DictionaryTTL, logger)
	if err := store.Init(ctx); err != nil {
		return fmt.Errorf("warm dictionary store: %w", err)
	}

	registry := language.NewRegistry()
	cache := resultcache.New(cfg.Translator.CacheTTL, cfg.Translator.MaxCacheSize)

	svc := translator.NewService(
		logger,
		registry,
		store,
		translit.New(registry),
		cache,
		cfg.Translator,
		cfg.Fallback,
	)
	if cfg.Fallback.Enabled {
		svc.SetFallback(fallback.NewHTTPClient(cfg.Fallback, logger))
		logger.Info("remote fallback enabled", slog.String("url", cfg.Fallback.URL))
	}

	router := rest.NewRouter(rest.RouterDeps{
		Health:    rest.NewHealthHandler(pool, BuildVersion()),
		Translate: rest.NewTranslateHandler(svc, logger),
		Admin:     rest.NewAdminHandler(store, logger),
	})

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		limiter.Limit(cfg.Server.RateLimitPerMin),
	)(router)

	addr := net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port))
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("stopped")
	return nil
}
