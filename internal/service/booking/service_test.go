package booking

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelierdahl/atelier-go/internal/domain"
	"github.com/atelierdahl/atelier-go/internal/pricing"
	"github.com/atelierdahl/atelier-go/internal/repository/memory"
)

func newFixture(t *testing.T, price string, spots int) (*Service, *memory.Store, int64) {
	t.Helper()

	store := memory.NewStore()
	ctx := context.Background()

	ctID, err := store.CreateCourseType(ctx, &domain.CourseType{
		Name:            "Stone Setting",
		Price:           decimal.RequireFromString(price),
		MaxParticipants: spots,
	})
	require.NoError(t, err)

	courseID, err := store.CreateCourse(ctx, &domain.Course{
		CourseTypeID:    ctID,
		Title:           "Stone Setting",
		Date:            time.Now().AddDate(0, 0, 10),
		StartTime:       "09:00",
		EndTime:         "13:00",
		MaxParticipants: spots,
		AvailableSpots:  spots,
		Status:          domain.CourseScheduled,
	})
	require.NoError(t, err)

	return New(store, nil, nil, nil), store, courseID
}

func TestCreate_ComputesServerSidePrice(t *testing.T) {
	svc, store, courseID := newFixture(t, "45.00", 6)

	b, err := svc.Create(context.Background(), CreateParams{
		CourseID:      courseID,
		CustomerName:  "Alice",
		CustomerEmail: "alice@example.com",
		Participants:  3,
	})
	require.NoError(t, err)

	assert.True(t, b.TotalPrice.Equal(decimal.RequireFromString("135.00")),
		"want 135.00, got %s", b.TotalPrice)
	assert.Equal(t, domain.BookingPending, b.Status)

	spots, err := store.CourseSpots(courseID)
	require.NoError(t, err)
	assert.Equal(t, 3, spots)
}

func TestCreate_CourseNotFound(t *testing.T) {
	svc, _, _ := newFixture(t, "45.00", 6)

	_, err := svc.Create(context.Background(), CreateParams{
		CourseID:     999,
		Participants: 1,
	})
	assert.ErrorIs(t, err, ErrCourseNotFound)
}

func TestCreate_NotBookable(t *testing.T) {
	svc, store, courseID := newFixture(t, "45.00", 6)

	completed := domain.CourseCompleted
	_, err := store.UpdateCourse(context.Background(), courseID, domain.CourseUpdate{Status: &completed})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), CreateParams{
		CourseID:     courseID,
		Participants: 1,
	})
	assert.ErrorIs(t, err, ErrCourseNotBookable)
}

func TestCreate_CapacityErrors(t *testing.T) {
	tests := []struct {
		name         string
		participants int
		wantKind     pricing.CapacityErrorKind
	}{
		{"zero participants", 0, pricing.NonPositiveCount},
		{"negative participants", -2, pricing.NonPositiveCount},
		{"exceeds spots", 7, pricing.ExceedsCapacity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, store, courseID := newFixture(t, "45.00", 6)

			_, err := svc.Create(context.Background(), CreateParams{
				CourseID:     courseID,
				Participants: tt.participants,
			})

			var capErr *pricing.CapacityError
			require.ErrorAs(t, err, &capErr)
			assert.Equal(t, tt.wantKind, capErr.Kind)

			spots, err := store.CourseSpots(courseID)
			require.NoError(t, err)
			assert.Equal(t, 6, spots, "failed booking must not consume spots")
		})
	}
}

func TestCreate_ExactRemainingSpots(t *testing.T) {
	svc, store, courseID := newFixture(t, "65.00", 4)

	b, err := svc.Create(context.Background(), CreateParams{
		CourseID:      courseID,
		CustomerName:  "Bob",
		CustomerEmail: "bob@example.com",
		Participants:  4,
	})
	require.NoError(t, err)
	assert.True(t, b.TotalPrice.Equal(decimal.RequireFromString("260.00")))

	spots, err := store.CourseSpots(courseID)
	require.NoError(t, err)
	assert.Equal(t, 0, spots)

	// the course is full now, the next attempt must fail on capacity
	_, err = svc.Create(context.Background(), CreateParams{
		CourseID:     courseID,
		Participants: 1,
	})
	var capErr *pricing.CapacityError
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, pricing.ExceedsCapacity, capErr.Kind)
}

// A later template price change must not alter totals of existing bookings.
func TestCreate_BookingPriceIsStable(t *testing.T) {
	svc, store, courseID := newFixture(t, "89.00", 6)
	ctx := context.Background()

	b, err := svc.Create(ctx, CreateParams{
		CourseID:      courseID,
		CustomerName:  "Carol",
		CustomerEmail: "carol@example.com",
		Participants:  2,
	})
	require.NoError(t, err)
	require.True(t, b.TotalPrice.Equal(decimal.RequireFromString("178.00")))

	// Re-create the template at a different price and point a new course at
	// it; the stored booking keeps its original total.
	ctID, err := store.CreateCourseType(ctx, &domain.CourseType{
		Name:            "Stone Setting (new pricing)",
		Price:           decimal.RequireFromString("120.00"),
		MaxParticipants: 6,
	})
	require.NoError(t, err)
	_ = ctID

	persisted, err := store.GetBooking(ctx, b.ID)
	require.NoError(t, err)
	assert.True(t, persisted.TotalPrice.Equal(decimal.RequireFromString("178.00")))
}

func TestCountForCourse(t *testing.T) {
	svc, _, courseID := newFixture(t, "45.00", 6)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.Create(ctx, CreateParams{
			CourseID:      courseID,
			CustomerName:  "Dee",
			CustomerEmail: "dee@example.com",
			Participants:  1,
		})
		require.NoError(t, err)
	}

	n, err := svc.CountForCourse(ctx, courseID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}
