package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kynetic_backend/internal/auth"
	"kynetic_backend/internal/email"
	"kynetic_backend/internal/events"
	apphttp "kynetic_backend/internal/http"
	"kynetic_backend/internal/http/router"
	"kynetic_backend/internal/ledger"
	"kynetic_backend/internal/projects"
	"kynetic_backend/internal/storage"
	"kynetic_backend/internal/submissions"
	"kynetic_backend/platform/config"
	"kynetic_backend/platform/db"
	"kynetic_backend/platform/logger"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Infrastructure Layer
	// ========================================================================

	if err := withRetry(ctx, log, "database migrations", 5, 2*time.Second, func() error {
		return db.RunMigrations(ctx, cfg, "migrations")
	}); err != nil {
		log.Error("failed to run database migrations", "error", err)
		panic("failed to run database migrations: " + err.Error())
	}
	log.Info("database migrations complete")

	var pool *pgxpool.Pool
	if err := withRetry(ctx, log, "database connection", 5, 2*time.Second, func() error {
		p, err := db.NewPool(ctx, cfg)
		if err != nil {
			return err
		}
		pool = p
		return nil
	}); err != nil {
		log.Error("failed to connect to database", "error", err)
		panic("failed to connect to database: " + err.Error())
	}
	defer pool.Close()
	log.Info("database connection established")

	// Event bus for decoupled communication between modules
	eventBus := events.NewInMemoryBus(log)

	sender, err := email.NewSender(cfg)
	if err != nil {
		log.Error("failed to initialize email sender", "error", err)
		panic("failed to initialize email sender: " + err.Error())
	}

	ledgerStore, closeLedger := initLedgerStore(ctx, cfg, log)
	if closeLedger != nil {
		defer closeLedger()
	}

	imageStore := initImageStore(ctx, cfg, log)

	// ========================================================================
	// Domain Modules (Composition Root)
	// ========================================================================

	submissionsModule := submissions.NewModule(sender, eventBus, log)

	ledgerModule := ledger.NewModule(ledgerStore, log)
	ledgerModule.RegisterEventHandlers(eventBus)

	authModule := auth.NewModule(cfg, log)
	projectsModule := projects.NewModule(pool, imageStore, log)

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config:   cfg,
		Logger:   log,
		Health:   db.NewPoolAdapter(pool),
		EventBus: eventBus,
		Modules: []apphttp.Module{
			submissionsModule,
			ledgerModule,
			authModule,
			projectsModule,
		},
	}

	engine := router.New(app)
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	group.Go(func() error {
		<-groupCtx.Done()
		log.Info("shutdown signal received, gracefully shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		log.Error("server error", "error", err)
		panic("server error: " + err.Error())
	}
	log.Info("server stopped")
}

// initLedgerStore picks the submission ledger backend. With REDIS_URL the
// ledger survives restarts and is shared across instances; without it the
// history lives for the lifetime of this process only.
func initLedgerStore(ctx context.Context, cfg *config.Config, log *logger.Logger) (ledger.Store, func()) {
	if cfg.RedisURL == "" {
		log.Warn("REDIS_URL not configured; submission ledger is in-memory only")
		return ledger.NewMemoryStore(), nil
	}

	opts, err := goredis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Error("invalid REDIS_URL, falling back to in-memory ledger", "error", err)
		return ledger.NewMemoryStore(), nil
	}

	client := goredis.NewClient(opts)
	if err := withRetry(ctx, log, "redis connection", 5, 2*time.Second, func() error {
		return client.Ping(ctx).Err()
	}); err != nil {
		log.Error("failed to connect to redis, falling back to in-memory ledger", "error", err)
		_ = client.Close()
		return ledger.NewMemoryStore(), nil
	}

	log.Info("redis ledger store initialized", "key", cfg.LedgerKey)
	return ledger.NewRedisStore(client, cfg.LedgerKey, log), func() {
		_ = client.Close()
	}
}

// initImageStore sets up MinIO-backed project image storage when configured.
// Returns nil when MinIO is disabled; the projects module tolerates that.
func initImageStore(ctx context.Context, cfg *config.Config, log *logger.Logger) storage.ImageStore {
	if !cfg.IsMinIOEnabled() {
		log.Warn("MINIO_ENDPOINT not configured; project image uploads disabled")
		return nil
	}

	store, err := storage.NewMinIOStore(cfg)
	if err != nil {
		log.Error("failed to initialize image storage", "error", err)
		panic("failed to initialize image storage: " + err.Error())
	}

	if err := withRetry(ctx, log, "ensure project images bucket", 5, 2*time.Second, func() error {
		return store.EnsureBucket(ctx)
	}); err != nil {
		log.Error("failed to ensure project images bucket", "error", err)
		panic("failed to ensure project images bucket: " + err.Error())
	}

	log.Info("image storage initialized", "bucket", cfg.MinioBucketProjectImages)
	return store
}

func withRetry(ctx context.Context, log *logger.Logger, name string, attempts int, baseDelay time.Duration, fn func() error) error {
	if attempts < 1 {
		return fmt.Errorf("%s: invalid retry attempts", name)
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := fn(); err == nil {
			return nil
		} else {
			lastErr = err
			log.Warn("retryable operation failed", "operation", name, "attempt", attempt, "error", err)
		}

		if attempt < attempts {
			delay := time.Duration(attempt*attempt) * baseDelay
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return errors.New(name + ": " + lastErr.Error())
}
