// Package admin implements the back-office operations: course lifecycle with
// its guards, course templates, products, gallery images and commission
// requests.
package admin

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/atelierdahl/atelier-go/internal/domain"
	"github.com/atelierdahl/atelier-go/internal/repository"
	redisrepo "github.com/atelierdahl/atelier-go/internal/repository/redis"
)

type Service struct {
	store  repository.Storage
	cache  *redisrepo.Cache
	pubsub *redisrepo.CoursesPubSub
	logger *slog.Logger
}

func New(
	store repository.Storage,
	cache *redisrepo.Cache,
	pubsub *redisrepo.CoursesPubSub,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}

	return &Service{
		store:  store,
		cache:  cache,
		pubsub: pubsub,
		logger: logger,
	}
}

type CreateCourseParams struct {
	CourseTypeID    int64
	Title           string
	Date            time.Time
	StartTime       string
	EndTime         string
	MaxParticipants int
	Location        string
	Instructor      string
	Notes           string
}

// CreateCourse schedules a new course instance. Available spots start at the
// capacity ceiling and the status at scheduled.
//
// Returns:
//   - error: admin.ErrCourseTypeNotFound if the template does not exist.
func (s *Service) CreateCourse(ctx context.Context, p CreateCourseParams) (*domain.Course, error) {
	const op = "service.admin.CreateCourse"

	ct, err := s.store.GetCourseType(ctx, p.CourseTypeID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrCourseTypeNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	title := p.Title
	if title == "" {
		title = ct.Name
	}

	c := &domain.Course{
		CourseTypeID:    p.CourseTypeID,
		Title:           title,
		Date:            p.Date,
		StartTime:       p.StartTime,
		EndTime:         p.EndTime,
		MaxParticipants: p.MaxParticipants,
		AvailableSpots:  p.MaxParticipants,
		Location:        p.Location,
		Instructor:      p.Instructor,
		Notes:           p.Notes,
		Status:          domain.CourseScheduled,
	}

	id, err := s.store.CreateCourse(ctx, c)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrCourseTypeNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	c.ID = id

	s.invalidateCourse(ctx, id)

	return c, nil
}

// UpdateCourse applies a partial edit, enforcing the status machine:
// scheduled may move to cancelled or completed, both of which are terminal.
// Spot overrides are admin trust; setting them below the booked total is
// permitted but logged.
//
// Returns:
//   - error: admin.ErrCourseNotFound if the ID does not resolve.
//   - error: *admin.StatusLockedError on a transition out of a terminal status.
//   - error: admin.ErrInvalidStatus / admin.ErrInvalidSpots on bad values.
func (s *Service) UpdateCourse(ctx context.Context, id int64, upd domain.CourseUpdate) (*domain.Course, error) {
	const op = "service.admin.UpdateCourse"

	current, err := s.store.GetCourse(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrCourseNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if upd.Status != nil && *upd.Status != current.Status {
		if !upd.Status.Valid() {
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidStatus)
		}
		if current.Status.Terminal() {
			return nil, fmt.Errorf("%s: %w", op, &StatusLockedError{Current: current.Status})
		}
	}

	if upd.AvailableSpots != nil {
		spots := *upd.AvailableSpots
		if spots < 0 || spots > current.MaxParticipants {
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidSpots)
		}

		// Accepted admin trust: the override may disagree with the booked
		// total. Log it so the mismatch is traceable.
		if booked, err := s.bookedParticipants(ctx, id); err == nil {
			if spots+int(booked) != current.MaxParticipants {
				s.logger.Warn("available spots override disagrees with booked total",
					"course_id", id,
					"available_spots", spots,
					"booked_participants", booked,
					"max_participants", current.MaxParticipants,
				)
			}
		}
	}

	c, err := s.store.UpdateCourse(ctx, id, upd)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrCourseNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.invalidateCourse(ctx, id)

	return c, nil
}

// DeleteCourse removes a course instance. When bookings reference it the
// caller must confirm with force; the error carries the booking count for
// the confirmation dialog.
//
// Returns:
//   - error: admin.ErrCourseNotFound if the ID does not resolve.
//   - error: *admin.CourseHasBookingsError when bookings exist and force is false.
func (s *Service) DeleteCourse(ctx context.Context, id int64, force bool) error {
	const op = "service.admin.DeleteCourse"

	count, err := s.store.CountBookingsForCourse(ctx, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if count > 0 && !force {
		return fmt.Errorf("%s: %w", op, &CourseHasBookingsError{CourseID: id, Count: count})
	}

	if err := s.store.DeleteCourse(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrCourseNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	s.invalidateCourse(ctx, id)

	return nil
}

func (s *Service) CreateCourseType(ctx context.Context, ct *domain.CourseType) (*domain.CourseType, error) {
	const op = "service.admin.CreateCourseType"

	id, err := s.store.CreateCourseType(ctx, ct)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ct.ID = id

	if s.cache != nil {
		_ = s.cache.InvalidateCourseTypes(ctx)
	}

	return ct, nil
}

func (s *Service) CreateProduct(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	const op = "service.admin.CreateProduct"

	id, err := s.store.CreateProduct(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	p.ID = id

	if s.cache != nil {
		_ = s.cache.InvalidateProduct(ctx, id)
	}

	return p, nil
}

func (s *Service) UpdateProduct(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	const op = "service.admin.UpdateProduct"

	if err := s.store.UpdateProduct(ctx, p); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrProductNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if s.cache != nil {
		_ = s.cache.InvalidateProduct(ctx, p.ID)
	}

	return p, nil
}

func (s *Service) DeleteProduct(ctx context.Context, id int64) error {
	const op = "service.admin.DeleteProduct"

	if err := s.store.DeleteProduct(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrProductNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	if s.cache != nil {
		_ = s.cache.InvalidateProduct(ctx, id)
	}

	return nil
}

func (s *Service) CreateGalleryImage(ctx context.Context, img *domain.GalleryImage) (*domain.GalleryImage, error) {
	const op = "service.admin.CreateGalleryImage"

	id, err := s.store.CreateGalleryImage(ctx, img)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	img.ID = id

	if s.cache != nil {
		_ = s.cache.InvalidateGallery(ctx)
	}

	return img, nil
}

func (s *Service) DeleteGalleryImage(ctx context.Context, id int64) error {
	const op = "service.admin.DeleteGalleryImage"

	if err := s.store.DeleteGalleryImage(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrImageNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	if s.cache != nil {
		_ = s.cache.InvalidateGallery(ctx)
	}

	return nil
}

func (s *Service) CreateCommissionRequest(ctx context.Context, cr *domain.CommissionRequest) error {
	const op = "service.admin.CreateCommissionRequest"

	if err := s.store.CreateCommissionRequest(ctx, cr); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Service) ListCommissionRequests(ctx context.Context) ([]domain.CommissionRequest, error) {
	const op = "service.admin.ListCommissionRequests"

	out, err := s.store.ListCommissionRequests(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

func (s *Service) UpdateCommissionStatus(ctx context.Context, id uuid.UUID, status domain.CommissionStatus) error {
	const op = "service.admin.UpdateCommissionStatus"

	if err := s.store.UpdateCommissionStatus(ctx, id, status); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrRequestNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Service) invalidateCourse(ctx context.Context, id int64) {
	if s.cache != nil {
		_ = s.cache.InvalidateCourse(ctx, id)
	}
	if s.pubsub != nil {
		_ = s.pubsub.PublishCourseChanged(ctx, id)
	}
}

func (s *Service) bookedParticipants(ctx context.Context, courseID int64) (int64, error) {
	bookings, err := s.store.ListBookings(ctx, courseID)
	if err != nil {
		return 0, err
	}

	var sum int64
	for _, b := range bookings {
		sum += int64(b.Participants)
	}

	return sum, nil
}
