package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/atelierdahl/atelier-go/internal/auth"
	"github.com/atelierdahl/atelier-go/internal/config"
	"github.com/atelierdahl/atelier-go/internal/postgres"
	"github.com/atelierdahl/atelier-go/internal/redis"
	"github.com/atelierdahl/atelier-go/internal/repository"
	"github.com/atelierdahl/atelier-go/internal/repository/memory"
	postgresrepo "github.com/atelierdahl/atelier-go/internal/repository/postgres"
	redisrepo "github.com/atelierdahl/atelier-go/internal/repository/redis"
	"github.com/atelierdahl/atelier-go/internal/service"
	"github.com/atelierdahl/atelier-go/internal/service/catalog"
	httpgin "github.com/atelierdahl/atelier-go/internal/transport/http/gin"
)

type App struct {
	cfg        *config.Config
	logger     *slog.Logger
	httpServer *http.Server
}

func New(cfg *config.Config, logger *slog.Logger) (*App, error) {
	var (
		store   repository.Storage
		cache   *redisrepo.Cache
		pubsub  *redisrepo.CoursesPubSub
		limiter *redisrepo.SlidingWindowLimiter
		idem    *redisrepo.IdempotencyStore
		tokens  auth.TokenStore
	)

	switch cfg.Storage.Driver {
	case config.StorageDriverPostgres:
		dsn := fmt.Sprintf(
			"postgres://%s:%s@%s:%d/%s?sslmode=%s",
			cfg.Postgres.User,
			cfg.Postgres.Password,
			cfg.Postgres.Host,
			cfg.Postgres.Port,
			cfg.Postgres.Name,
			cfg.Postgres.SSLMode,
		)

		pgxPool, err := postgres.New(context.Background(), postgres.Config{DSN: dsn})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize postgres: %w", err)
		}

		rdb, err := redis.New(context.Background(), redis.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize redis: %w", err)
		}

		store = postgresrepo.NewStore(pgxPool)
		cache = redisrepo.New(rdb)
		pubsub = redisrepo.NewCoursesPubSub(rdb)
		limiter = redisrepo.NewSlidingWindowLimiter(rdb, "booking", 10, 1*time.Minute)
		idem = redisrepo.NewIdempotencyStore(rdb, 2*time.Hour)
		tokens = redisrepo.NewTokenStore(rdb, cfg.Admin.TokenTTL)

	case config.StorageDriverMemory:
		// Demo/dev mode: seeded in-memory store, no redis. Booking
		// creation stays atomic, everything else just skips caching.
		store = memory.NewSeededStore()
		tokens = auth.NewMemoryTokenStore(cfg.Admin.TokenTTL)

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}

	services := service.NewServices(store, cache, pubsub, limiter, tokens, logger, service.Config{
		Catalog:       catalog.Config{},
		AdminUsername: cfg.Admin.Username,
		AdminPassHash: cfg.Admin.PasswordHash,
	})

	router := httpgin.NewRouter(services, idem, logger)

	return &App{
		cfg:    cfg,
		logger: logger,
		httpServer: &http.Server{
			Addr:    fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
			Handler: router,
		},
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.logger.Info("HTTP server listening",
			"host", a.cfg.Server.Host,
			"port", a.cfg.Server.Port,
			"storage", a.cfg.Storage.Driver,
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("failed to start HTTP server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		a.logger.Info("shutting down HTTP server")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return a.httpServer.Shutdown(ctx)
	})

	return g.Wait()
}
