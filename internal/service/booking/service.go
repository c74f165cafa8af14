// Package booking implements the public booking flow: the one place where
// the capacity invariant must hold. The total price is always computed here,
// never taken from the client, and the insert plus spots decrement happen as
// one atomic storage operation.
package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/atelierdahl/atelier-go/internal/domain"
	"github.com/atelierdahl/atelier-go/internal/pricing"
	"github.com/atelierdahl/atelier-go/internal/repository"
	redisrepo "github.com/atelierdahl/atelier-go/internal/repository/redis"
)

type Service struct {
	store   repository.Storage
	cache   *redisrepo.Cache
	pubsub  *redisrepo.CoursesPubSub
	limiter *redisrepo.SlidingWindowLimiter
}

func New(
	store repository.Storage,
	cache *redisrepo.Cache,
	pubsub *redisrepo.CoursesPubSub,
	limiter *redisrepo.SlidingWindowLimiter,
) *Service {
	return &Service{
		store:   store,
		cache:   cache,
		pubsub:  pubsub,
		limiter: limiter,
	}
}

type CreateParams struct {
	CourseID      int64
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Message       string
	Participants  int

	// RateKey scopes the rate limit, usually "ip:<addr>". Empty disables
	// limiting for this call.
	RateKey string
}

// Create validates the request against the current course state, computes
// the authoritative total and persists the booking.
//
// Returns:
//   - *domain.CourseBooking: the persisted booking.
//   - error: booking.ErrCourseNotFound if the course does not resolve.
//   - error: booking.ErrCourseNotBookable if the course is cancelled or completed.
//   - error: *pricing.CapacityError if the participant count is invalid or exceeds the spots.
//   - error: *booking.RateLimitedError when the caller is over the limit.
func (s *Service) Create(ctx context.Context, p CreateParams) (*domain.CourseBooking, error) {
	const op = "service.booking.Create"

	if s.limiter != nil && p.RateKey != "" {
		ok, _, retry, err := s.limiter.Allow(ctx, p.RateKey)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if !ok {
			return nil, fmt.Errorf("%s: %w", op, &RateLimitedError{RetryAfter: retry})
		}
	}

	course, err := s.store.GetCourse(ctx, p.CourseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrCourseNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if course.Status != domain.CourseScheduled {
		return nil, fmt.Errorf("%s: %w", op, ErrCourseNotBookable)
	}

	// Advisory pre-check against the spots just read. The atomic decrement
	// below re-checks under the storage lock, so a concurrent booking that
	// slips between the two is still rejected.
	if err := pricing.ValidateParticipants(p.Participants, course.AvailableSpots); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	b := &domain.CourseBooking{
		CourseID:      p.CourseID,
		CustomerName:  p.CustomerName,
		CustomerEmail: p.CustomerEmail,
		CustomerPhone: p.CustomerPhone,
		Message:       p.Message,
		Participants:  p.Participants,
		TotalPrice:    pricing.TotalPrice(course.CourseType.Price, p.Participants),
		Status:        domain.BookingPending,
	}

	if err := s.store.CreateBooking(ctx, b); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, fmt.Errorf("%s: %w", op, ErrCourseNotFound)
		case errors.Is(err, repository.ErrCourseNotBookable):
			return nil, fmt.Errorf("%s: %w", op, ErrCourseNotBookable)
		case errors.Is(err, repository.ErrNoCapacity):
			return nil, fmt.Errorf("%s: %w", op, &pricing.CapacityError{
				Kind:      pricing.ExceedsCapacity,
				Requested: p.Participants,
			})
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if s.cache != nil {
		_ = s.cache.InvalidateCourse(ctx, p.CourseID)
	}
	if s.pubsub != nil {
		_ = s.pubsub.PublishCourseChanged(ctx, p.CourseID)
	}

	return b, nil
}

// ListForCourse returns the bookings referencing a course, newest first.
// With courseID 0 every booking is returned.
func (s *Service) ListForCourse(ctx context.Context, courseID int64) ([]domain.CourseBooking, error) {
	const op = "service.booking.ListForCourse"

	out, err := s.store.ListBookings(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

// CountForCourse backs the admin deletion confirmation step.
func (s *Service) CountForCourse(ctx context.Context, courseID int64) (int64, error) {
	const op = "service.booking.CountForCourse"

	n, err := s.store.CountBookingsForCourse(ctx, courseID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return n, nil
}
