package service

import (
	"log/slog"

	authstore "github.com/atelierdahl/atelier-go/internal/auth"
	"github.com/atelierdahl/atelier-go/internal/repository"
	redisrepo "github.com/atelierdahl/atelier-go/internal/repository/redis"
	"github.com/atelierdahl/atelier-go/internal/service/admin"
	"github.com/atelierdahl/atelier-go/internal/service/auth"
	"github.com/atelierdahl/atelier-go/internal/service/booking"
	"github.com/atelierdahl/atelier-go/internal/service/catalog"
)

type Services struct {
	Booking *booking.Service
	Catalog *catalog.Service
	Admin   *admin.Service
	Auth    *auth.Service
}

type Config struct {
	Catalog       catalog.Config
	AdminUsername string
	AdminPassHash string
}

// NewServices wires the service layer over any storage backend. Cache,
// pubsub and limiter may be nil (memory driver, tests); services degrade to
// direct store access.
func NewServices(
	store repository.Storage,
	cache *redisrepo.Cache,
	pubsub *redisrepo.CoursesPubSub,
	limiter *redisrepo.SlidingWindowLimiter,
	tokens authstore.TokenStore,
	logger *slog.Logger,
	cfg Config,
) *Services {
	return &Services{
		Booking: booking.New(store, cache, pubsub, limiter),
		Catalog: catalog.New(store, cache, cfg.Catalog),
		Admin:   admin.New(store, cache, pubsub, logger),
		Auth:    auth.New(cfg.AdminUsername, cfg.AdminPassHash, tokens),
	}
}
