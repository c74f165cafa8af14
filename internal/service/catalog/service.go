// Package catalog is the read side of the storefront: course templates,
// scheduled courses joined with their template, products and the gallery.
// Public reads go through a short-TTL cache-aside layer when a cache is
// wired; admin reads always hit the store.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/atelierdahl/atelier-go/internal/domain"
	"github.com/atelierdahl/atelier-go/internal/repository"
	redisrepo "github.com/atelierdahl/atelier-go/internal/repository/redis"
)

type Config struct {
	CourseTTL     time.Duration
	CourseListTTL time.Duration
	TypesTTL      time.Duration
	ProductTTL    time.Duration
	GalleryTTL    time.Duration
}

type Service struct {
	store repository.Storage
	cache *redisrepo.Cache
	cfg   Config
}

func New(store repository.Storage, cache *redisrepo.Cache, cfg Config) *Service {
	if cfg.CourseTTL <= 0 {
		cfg.CourseTTL = 15 * time.Second
	}

	if cfg.CourseListTTL <= 0 {
		cfg.CourseListTTL = 15 * time.Second
	}

	if cfg.TypesTTL <= 0 {
		cfg.TypesTTL = 5 * time.Minute
	}

	if cfg.ProductTTL <= 0 {
		cfg.ProductTTL = time.Minute
	}

	if cfg.GalleryTTL <= 0 {
		cfg.GalleryTTL = 5 * time.Minute
	}

	return &Service{
		store: store,
		cache: cache,
		cfg:   cfg,
	}
}

func (s *Service) ListCourseTypes(ctx context.Context) ([]domain.CourseType, error) {
	const op = "service.catalog.ListCourseTypes"

	if s.cache == nil {
		out, err := s.store.ListCourseTypes(ctx)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		return out, nil
	}

	out, err := redisrepo.GetOrSetJSON(
		ctx,
		s.cache,
		redisrepo.KeyCourseTypes(),
		s.cfg.TypesTTL,
		func(ctx context.Context) ([]domain.CourseType, error) {
			return s.store.ListCourseTypes(ctx)
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

// ListCourses lists the bookable (scheduled) course instances with their
// embedded template, the shape the public courses page renders.
func (s *Service) ListCourses(ctx context.Context) ([]domain.CourseWithType, error) {
	const op = "service.catalog.ListCourses"

	if s.cache == nil {
		out, err := s.store.ListCourses(ctx, false)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		return out, nil
	}

	out, err := redisrepo.GetOrSetJSON(
		ctx,
		s.cache,
		redisrepo.KeyCourseList(),
		s.cfg.CourseListTTL,
		func(ctx context.Context) ([]domain.CourseWithType, error) {
			return s.store.ListCourses(ctx, false)
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

// ListAllCourses returns every course instance regardless of status, for the
// admin back-office. Never cached: admins edit what they see.
func (s *Service) ListAllCourses(ctx context.Context) ([]domain.CourseWithType, error) {
	const op = "service.catalog.ListAllCourses"

	out, err := s.store.ListCourses(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

// GetCourse retrieves one course with its template.
//
// Returns:
//   - error: catalog.ErrCourseNotFound if the ID does not resolve.
func (s *Service) GetCourse(ctx context.Context, id int64) (*domain.CourseWithType, error) {
	const op = "service.catalog.GetCourse"

	load := func(ctx context.Context) (domain.CourseWithType, error) {
		c, err := s.store.GetCourse(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return domain.CourseWithType{}, ErrCourseNotFound
			}
			return domain.CourseWithType{}, err
		}
		return *c, nil
	}

	if s.cache == nil {
		c, err := load(ctx)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		return &c, nil
	}

	c, err := redisrepo.GetOrSetJSON(
		ctx,
		s.cache,
		redisrepo.KeyCourse(id),
		s.cfg.CourseTTL,
		load,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &c, nil
}

func (s *Service) ListProducts(ctx context.Context) ([]domain.Product, error) {
	const op = "service.catalog.ListProducts"

	if s.cache == nil {
		out, err := s.store.ListProducts(ctx)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		return out, nil
	}

	out, err := redisrepo.GetOrSetJSON(
		ctx,
		s.cache,
		redisrepo.KeyProductList(),
		s.cfg.ProductTTL,
		func(ctx context.Context) ([]domain.Product, error) {
			return s.store.ListProducts(ctx)
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

func (s *Service) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	const op = "service.catalog.GetProduct"

	p, err := s.store.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrProductNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return p, nil
}

func (s *Service) ListGallery(ctx context.Context) ([]domain.GalleryImage, error) {
	const op = "service.catalog.ListGallery"

	if s.cache == nil {
		out, err := s.store.ListGalleryImages(ctx)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		return out, nil
	}

	out, err := redisrepo.GetOrSetJSON(
		ctx,
		s.cache,
		redisrepo.KeyGalleryList(),
		s.cfg.GalleryTTL,
		func(ctx context.Context) ([]domain.GalleryImage, error) {
			return s.store.ListGalleryImages(ctx)
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}
