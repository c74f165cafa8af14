package admin

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelierdahl/atelier-go/internal/domain"
	"github.com/atelierdahl/atelier-go/internal/repository/memory"
)

func newFixture(t *testing.T) (*Service, *memory.Store, int64) {
	t.Helper()

	store := memory.NewStore()
	svc := New(store, nil, nil, nil)

	ct, err := svc.CreateCourseType(context.Background(), &domain.CourseType{
		Name:            "Chain Making",
		Price:           decimal.RequireFromString("75.00"),
		MaxParticipants: 8,
	})
	require.NoError(t, err)

	return svc, store, ct.ID
}

func scheduleCourse(t *testing.T, svc *Service, typeID int64) *domain.Course {
	t.Helper()

	c, err := svc.CreateCourse(context.Background(), CreateCourseParams{
		CourseTypeID:    typeID,
		Date:            time.Now().AddDate(0, 0, 21),
		StartTime:       "11:00",
		EndTime:         "15:00",
		MaxParticipants: 8,
	})
	require.NoError(t, err)

	return c
}

func TestCreateCourse_Defaults(t *testing.T) {
	svc, _, typeID := newFixture(t)

	c := scheduleCourse(t, svc, typeID)

	assert.Equal(t, "Chain Making", c.Title, "empty title falls back to the template name")
	assert.Equal(t, 8, c.AvailableSpots, "spots start at capacity")
	assert.Equal(t, domain.CourseScheduled, c.Status)
}

func TestCreateCourse_UnknownType(t *testing.T) {
	svc, _, _ := newFixture(t)

	_, err := svc.CreateCourse(context.Background(), CreateCourseParams{
		CourseTypeID:    999,
		MaxParticipants: 8,
	})
	assert.ErrorIs(t, err, ErrCourseTypeNotFound)
}

func TestUpdateCourse_StatusMachine(t *testing.T) {
	svc, _, typeID := newFixture(t)
	ctx := context.Background()

	c := scheduleCourse(t, svc, typeID)

	cancelled := domain.CourseCancelled
	updated, err := svc.UpdateCourse(ctx, c.ID, domain.CourseUpdate{Status: &cancelled})
	require.NoError(t, err)
	assert.Equal(t, domain.CourseCancelled, updated.Status)

	// cancelled is terminal, no way back to scheduled
	scheduled := domain.CourseScheduled
	_, err = svc.UpdateCourse(ctx, c.ID, domain.CourseUpdate{Status: &scheduled})

	var locked *StatusLockedError
	require.ErrorAs(t, err, &locked)
	assert.Equal(t, domain.CourseCancelled, locked.Current)
}

func TestUpdateCourse_InvalidStatus(t *testing.T) {
	svc, _, typeID := newFixture(t)

	c := scheduleCourse(t, svc, typeID)

	bogus := domain.CourseStatus("postponed")
	_, err := svc.UpdateCourse(context.Background(), c.ID, domain.CourseUpdate{Status: &bogus})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateCourse_SpotsRange(t *testing.T) {
	svc, _, typeID := newFixture(t)
	ctx := context.Background()

	c := scheduleCourse(t, svc, typeID)

	for _, spots := range []int{-1, 9} {
		v := spots
		_, err := svc.UpdateCourse(ctx, c.ID, domain.CourseUpdate{AvailableSpots: &v})
		assert.ErrorIs(t, err, ErrInvalidSpots, "spots=%d", spots)
	}

	v := 3
	updated, err := svc.UpdateCourse(ctx, c.ID, domain.CourseUpdate{AvailableSpots: &v})
	require.NoError(t, err)
	assert.Equal(t, 3, updated.AvailableSpots)
}

func TestUpdateCourse_NotFound(t *testing.T) {
	svc, _, _ := newFixture(t)

	title := "Renamed"
	_, err := svc.UpdateCourse(context.Background(), 404, domain.CourseUpdate{Title: &title})
	assert.ErrorIs(t, err, ErrCourseNotFound)
}

func TestDeleteCourse_ForceGuard(t *testing.T) {
	svc, store, typeID := newFixture(t)
	ctx := context.Background()

	c := scheduleCourse(t, svc, typeID)

	require.NoError(t, store.CreateBooking(ctx, &domain.CourseBooking{
		CourseID:      c.ID,
		CustomerName:  "Eve",
		CustomerEmail: "eve@example.com",
		Participants:  2,
	}))

	err := svc.DeleteCourse(ctx, c.ID, false)

	var hasBookings *CourseHasBookingsError
	require.ErrorAs(t, err, &hasBookings)
	assert.Equal(t, c.ID, hasBookings.CourseID)
	assert.Equal(t, int64(1), hasBookings.Count)

	// course is still there
	_, err = store.GetCourse(ctx, c.ID)
	require.NoError(t, err)

	// force confirms the deletion
	require.NoError(t, svc.DeleteCourse(ctx, c.ID, true))

	_, err = svc.UpdateCourse(ctx, c.ID, domain.CourseUpdate{})
	assert.ErrorIs(t, err, ErrCourseNotFound)
}

// The ledger is append-only: force-deleting a course must not touch its
// booking rows. Counts and listings keep reporting them afterwards.
func TestDeleteCourse_ForceKeepsBookingLedger(t *testing.T) {
	svc, store, typeID := newFixture(t)
	ctx := context.Background()

	c := scheduleCourse(t, svc, typeID)

	require.NoError(t, store.CreateBooking(ctx, &domain.CourseBooking{
		CourseID:      c.ID,
		CustomerName:  "Grace",
		CustomerEmail: "grace@example.com",
		Participants:  3,
	}))

	require.NoError(t, svc.DeleteCourse(ctx, c.ID, true))

	n, err := store.CountBookingsForCourse(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	bookings, err := store.ListBookings(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, c.ID, bookings[0].CourseID)
	assert.Equal(t, 3, bookings[0].Participants)
}

func TestDeleteCourse_NoBookings(t *testing.T) {
	svc, _, typeID := newFixture(t)

	c := scheduleCourse(t, svc, typeID)

	assert.NoError(t, svc.DeleteCourse(context.Background(), c.ID, false))
}

func TestCommissionLifecycle(t *testing.T) {
	svc, _, _ := newFixture(t)
	ctx := context.Background()

	budget := decimal.RequireFromString("300.00")
	cr := &domain.CommissionRequest{
		CustomerName:  "Frank",
		CustomerEmail: "frank@example.com",
		Description:   "Engagement ring, white gold.",
		Budget:        &budget,
	}
	require.NoError(t, svc.CreateCommissionRequest(ctx, cr))
	assert.Equal(t, domain.CommissionNew, cr.Status)

	require.NoError(t, svc.UpdateCommissionStatus(ctx, cr.ID, domain.CommissionReviewed))

	list, err := svc.ListCommissionRequests(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, domain.CommissionReviewed, list[0].Status)
}

func TestProductCRUD(t *testing.T) {
	svc, _, _ := newFixture(t)
	ctx := context.Background()

	p, err := svc.CreateProduct(ctx, &domain.Product{
		Name:      "Twisted Bangle",
		Price:     decimal.RequireFromString("95.00"),
		Category:  "bracelets",
		Available: true,
	})
	require.NoError(t, err)
	require.NotZero(t, p.ID)

	p.Price = decimal.RequireFromString("99.00")
	updated, err := svc.UpdateProduct(ctx, p)
	require.NoError(t, err)
	assert.True(t, updated.Price.Equal(decimal.RequireFromString("99.00")))

	require.NoError(t, svc.DeleteProduct(ctx, p.ID))
	assert.ErrorIs(t, svc.DeleteProduct(ctx, p.ID), ErrProductNotFound)
}
