package postgres

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelierdahl/atelier-go/internal/domain"
	"github.com/atelierdahl/atelier-go/internal/repository"
)

type stubRow struct {
	scan func(dest ...any) error
}

func (r stubRow) Scan(dest ...any) error { return r.scan(dest...) }

// stubDB satisfies DB so createBookingCore's branching can be exercised
// without a live database.
type stubDB struct {
	updateTag  pgconn.CommandTag
	statusScan func(dest ...any) error

	execSQL []string
}

func (d *stubDB) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	d.execSQL = append(d.execSQL, sql)
	if strings.Contains(sql, "UPDATE courses") {
		return d.updateTag, nil
	}
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

func (d *stubDB) Query(context.Context, string, ...any) (pgx.Rows, error) {
	panic("unexpected Query")
}

func (d *stubDB) QueryRow(context.Context, string, ...any) pgx.Row {
	return stubRow{scan: d.statusScan}
}

func (d *stubDB) SendBatch(context.Context, *pgx.Batch) pgx.BatchResults {
	panic("unexpected SendBatch")
}

func newBooking(participants int) *domain.CourseBooking {
	return &domain.CourseBooking{
		CourseID:      1,
		CustomerName:  "Alice",
		CustomerEmail: "alice@example.com",
		Participants:  participants,
		TotalPrice:    decimal.RequireFromString("89.00"),
		Status:        domain.BookingPending,
	}
}

func TestCreateBooking_DecrementWins(t *testing.T) {
	db := &stubDB{updateTag: pgconn.NewCommandTag("UPDATE 1")}
	repo := (&BookingRepo{}).With(db)

	b := newBooking(2)
	require.NoError(t, repo.CreateBooking(context.Background(), b))

	assert.NotEqual(t, uuid.Nil, b.ID)
	assert.False(t, b.CreatedAt.IsZero())
	require.Len(t, db.execSQL, 2)
	assert.Contains(t, db.execSQL[0], "available_spots >= $2")
	assert.Contains(t, db.execSQL[1], "INSERT INTO course_bookings")
}

// Zero rows from the conditional decrement means the race was lost; the
// diagnostic read decides between capacity and lifecycle causes.
func TestCreateBooking_DecrementRejected(t *testing.T) {
	tests := []struct {
		name    string
		status  domain.CourseStatus
		scanErr error
		want    error
	}{
		{"still scheduled, no spots", domain.CourseScheduled, nil, repository.ErrNoCapacity},
		{"cancelled", domain.CourseCancelled, nil, repository.ErrCourseNotBookable},
		{"completed", domain.CourseCompleted, nil, repository.ErrCourseNotBookable},
		{"row gone", "", pgx.ErrNoRows, repository.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := &stubDB{
				updateTag: pgconn.NewCommandTag("UPDATE 0"),
				statusScan: func(dest ...any) error {
					if tt.scanErr != nil {
						return tt.scanErr
					}
					*(dest[0].(*domain.CourseStatus)) = tt.status
					return nil
				},
			}
			repo := (&BookingRepo{}).With(db)

			err := repo.CreateBooking(context.Background(), newBooking(3))
			assert.ErrorIs(t, err, tt.want)

			// the rejected booking must not reach the insert
			require.Len(t, db.execSQL, 1)
		})
	}
}

func TestCreateBooking_NonPositiveParticipants(t *testing.T) {
	for _, participants := range []int{0, -4} {
		db := &stubDB{}
		repo := (&BookingRepo{}).With(db)

		err := repo.CreateBooking(context.Background(), newBooking(participants))
		assert.ErrorIs(t, err, repository.ErrNoCapacity, "participants=%d", participants)
		assert.Empty(t, db.execSQL, "guard must fire before any statement runs")
	}
}
