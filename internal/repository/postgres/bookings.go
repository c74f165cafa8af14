package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/atelierdahl/atelier-go/internal/domain"
	"github.com/atelierdahl/atelier-go/internal/repository"
)

type BookingRepo struct {
	pool  *pgxpool.Pool
	store *Store
	db    DB
}

func (r *BookingRepo) With(db DB) *BookingRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *BookingRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

// CreateBooking persists the booking and decrements the course's available
// spots as a single transaction. The decrement is a conditional UPDATE, so
// two concurrent bookings can never drive the spots negative: whichever
// commits second affects zero rows and the whole unit rolls back.
//
// Returns:
//   - error: repository.ErrNotFound if the course does not exist.
//   - error: repository.ErrCourseNotBookable if the course is cancelled or completed.
//   - error: repository.ErrNoCapacity if fewer spots remain than requested.
func (r *BookingRepo) CreateBooking(ctx context.Context, b *domain.CourseBooking) error {
	const op = "postgres.BookingRepo.CreateBooking"

	if r.db != nil {
		if err := r.createBookingCore(ctx, r.db, b); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		return nil
	}

	// Read committed, not serializable: the conditional UPDATE waits on the
	// winner's row lock and re-evaluates its predicate afterwards, so a lost
	// race reads as zero rows (ErrNoCapacity) instead of a 40001 abort.
	// Deadlocks can still cancel the transaction; retry those a few times.
	var err error
	for attempt := 0; attempt < maxBookingAttempts; attempt++ {
		err = r.store.RunTx(ctx,
			&pgx.TxOptions{IsoLevel: pgx.ReadCommitted, AccessMode: pgx.ReadWrite},
			func(ctx context.Context, tx DB) error {
				return r.createBookingCore(ctx, tx, b)
			},
		)
		if err == nil || !IsRetryable(err) {
			break
		}
	}
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

const maxBookingAttempts = 3

func (r *BookingRepo) createBookingCore(ctx context.Context, db DB, b *domain.CourseBooking) error {
	// A non-positive count would turn the decrement into an increment; the
	// schema CHECKs would catch it, but the contract rejects it up front.
	if b.Participants < 1 {
		return repository.ErrNoCapacity
	}

	tag, err := db.Exec(ctx,
		`UPDATE courses
		 SET available_spots = available_spots - $2
		 WHERE id = $1
		   AND status = 'scheduled'
		   AND available_spots >= $2`,
		b.CourseID, b.Participants,
	)
	if err != nil {
		return translateDBErr(err)
	}

	if tag.RowsAffected() == 0 {
		// The conditional update rejected the booking; look at the row to
		// report the exact cause.
		var status domain.CourseStatus
		err := db.QueryRow(ctx,
			`SELECT status FROM courses WHERE id = $1`,
			b.CourseID,
		).Scan(&status)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return repository.ErrNotFound
			}
			return translateDBErr(err)
		}

		if status != domain.CourseScheduled {
			return repository.ErrCourseNotBookable
		}

		return repository.ErrNoCapacity
	}

	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now().UTC()
	}

	if _, err := db.Exec(ctx,
		`INSERT INTO course_bookings(id, course_id, customer_name, customer_email,
		                             customer_phone, message, participants, total_price, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		b.ID, b.CourseID, b.CustomerName, b.CustomerEmail,
		b.CustomerPhone, b.Message, b.Participants, b.TotalPrice, b.Status, b.CreatedAt,
	); err != nil {
		return translateDBErr(err)
	}

	return nil
}

func (r *BookingRepo) GetBooking(ctx context.Context, id uuid.UUID) (*domain.CourseBooking, error) {
	const op = "postgres.BookingRepo.GetBooking"

	db := r.handle()

	var b domain.CourseBooking
	err := db.QueryRow(ctx,
		`SELECT id, course_id, customer_name, customer_email, customer_phone,
		        message, participants, total_price, status, created_at
		 FROM course_bookings WHERE id = $1`,
		id,
	).Scan(
		&b.ID, &b.CourseID, &b.CustomerName, &b.CustomerEmail, &b.CustomerPhone,
		&b.Message, &b.Participants, &b.TotalPrice, &b.Status, &b.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, translateDBErr(err))
	}

	return &b, nil
}

// ListBookings lists bookings, newest first. With courseID 0 all bookings
// are returned; otherwise only those referencing that course.
func (r *BookingRepo) ListBookings(ctx context.Context, courseID int64) ([]domain.CourseBooking, error) {
	const op = "postgres.BookingRepo.ListBookings"

	db := r.handle()

	var rows pgx.Rows
	var err error

	if courseID > 0 {
		rows, err = db.Query(ctx,
			`SELECT id, course_id, customer_name, customer_email, customer_phone,
			        message, participants, total_price, status, created_at
			 FROM course_bookings
			 WHERE course_id = $1
			 ORDER BY created_at DESC`,
			courseID,
		)
	} else {
		rows, err = db.Query(ctx,
			`SELECT id, course_id, customer_name, customer_email, customer_phone,
			        message, participants, total_price, status, created_at
			 FROM course_bookings
			 ORDER BY created_at DESC`,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, translateDBErr(err))
	}

	defer rows.Close()

	var out []domain.CourseBooking
	for rows.Next() {
		var b domain.CourseBooking
		if err := rows.Scan(
			&b.ID, &b.CourseID, &b.CustomerName, &b.CustomerEmail, &b.CustomerPhone,
			&b.Message, &b.Participants, &b.TotalPrice, &b.Status, &b.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%s: %w", op, translateDBErr(err))
		}

		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

// CountBookingsForCourse backs the admin deletion guard.
func (r *BookingRepo) CountBookingsForCourse(ctx context.Context, courseID int64) (int64, error) {
	const op = "postgres.BookingRepo.CountBookingsForCourse"

	db := r.handle()

	var n int64
	err := db.QueryRow(ctx,
		`SELECT COUNT(*) FROM course_bookings WHERE course_id = $1`,
		courseID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, translateDBErr(err))
	}

	return n, nil
}
