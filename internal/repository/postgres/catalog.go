package postgres

import (
	"fmt"
	"strings"

	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/atelierdahl/atelier-go/internal/domain"
	"github.com/atelierdahl/atelier-go/internal/repository"
)

type CatalogRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *CatalogRepo) With(db DB) *CatalogRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *CatalogRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

const courseWithTypeColumns = `
	c.id, c.course_type_id, c.title, c.date, c.start_time, c.end_time,
	c.max_participants, c.available_spots, c.location, c.instructor, c.notes, c.status,
	ct.id, ct.name, ct.description, ct.price, ct.duration, ct.max_participants,
	ct.min_age, ct.materials, ct.requirements, ct.image_url`

func (r *CatalogRepo) ListCourseTypes(ctx context.Context) ([]domain.CourseType, error) {
	const op = "postgres.CatalogRepo.ListCourseTypes"

	db := r.handle()

	rows, err := db.Query(ctx,
		`SELECT id, name, description, price, duration, max_participants,
		        min_age, materials, requirements, image_url
		 FROM course_types
		 ORDER BY name`,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, translateDBErr(err))
	}

	defer rows.Close()

	var out []domain.CourseType
	for rows.Next() {
		var ct domain.CourseType
		if err := rows.Scan(
			&ct.ID, &ct.Name, &ct.Description, &ct.Price, &ct.Duration,
			&ct.MaxParticipants, &ct.MinAge, &ct.Materials, &ct.Requirements, &ct.ImageURL,
		); err != nil {
			return nil, fmt.Errorf("%s: %w", op, translateDBErr(err))
		}

		out = append(out, ct)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

// GetCourseType retrieves a course template by its ID.
//
// Returns:
//   - *domain.CourseType: the template when found.
//   - error: repository.ErrNotFound if no template has that ID.
func (r *CatalogRepo) GetCourseType(ctx context.Context, id int64) (*domain.CourseType, error) {
	const op = "postgres.CatalogRepo.GetCourseType"

	db := r.handle()

	var ct domain.CourseType
	err := db.QueryRow(ctx,
		`SELECT id, name, description, price, duration, max_participants,
		        min_age, materials, requirements, image_url
		 FROM course_types WHERE id = $1`,
		id,
	).Scan(
		&ct.ID, &ct.Name, &ct.Description, &ct.Price, &ct.Duration,
		&ct.MaxParticipants, &ct.MinAge, &ct.Materials, &ct.Requirements, &ct.ImageURL,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, translateDBErr(err))
	}

	return &ct, nil
}

func (r *CatalogRepo) CreateCourseType(ctx context.Context, ct *domain.CourseType) (int64, error) {
	const op = "postgres.CatalogRepo.CreateCourseType"

	db := r.handle()

	var id int64
	if err := db.QueryRow(ctx,
		`INSERT INTO course_types(name, description, price, duration, max_participants,
		                          min_age, materials, requirements, image_url)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id`,
		ct.Name, ct.Description, ct.Price, ct.Duration, ct.MaxParticipants,
		ct.MinAge, ct.Materials, ct.Requirements, ct.ImageURL,
	).Scan(&id); err != nil {
		return 0, fmt.Errorf("%s: %w", op, translateDBErr(err))
	}

	return id, nil
}

// ListCourses lists course instances joined with their template. With
// includeAll false only scheduled courses are returned, ordered by date.
func (r *CatalogRepo) ListCourses(ctx context.Context, includeAll bool) ([]domain.CourseWithType, error) {
	const op = "postgres.CatalogRepo.ListCourses"

	db := r.handle()

	q := `SELECT ` + courseWithTypeColumns + `
		 FROM courses c
		 JOIN course_types ct ON ct.id = c.course_type_id`
	if !includeAll {
		q += ` WHERE c.status = 'scheduled'`
	}
	q += ` ORDER BY c.date, c.start_time`

	rows, err := db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, translateDBErr(err))
	}

	defer rows.Close()

	var out []domain.CourseWithType
	for rows.Next() {
		var cwt domain.CourseWithType
		if err := scanCourseWithType(rows, &cwt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, translateDBErr(err))
		}

		out = append(out, cwt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

// GetCourse retrieves one course instance with its embedded template.
//
// Returns:
//   - *domain.CourseWithType: the course when found.
//   - error: repository.ErrNotFound if no course has that ID.
func (r *CatalogRepo) GetCourse(ctx context.Context, id int64) (*domain.CourseWithType, error) {
	const op = "postgres.CatalogRepo.GetCourse"

	db := r.handle()

	var cwt domain.CourseWithType
	row := db.QueryRow(ctx,
		`SELECT `+courseWithTypeColumns+`
		 FROM courses c
		 JOIN course_types ct ON ct.id = c.course_type_id
		 WHERE c.id = $1`,
		id,
	)
	if err := scanCourseWithType(row, &cwt); err != nil {
		return nil, fmt.Errorf("%s: %w", op, translateDBErr(err))
	}

	return &cwt, nil
}

func (r *CatalogRepo) CreateCourse(ctx context.Context, c *domain.Course) (int64, error) {
	const op = "postgres.CatalogRepo.CreateCourse"

	db := r.handle()

	var id int64
	if err := db.QueryRow(ctx,
		`INSERT INTO courses(course_type_id, title, date, start_time, end_time,
		                     max_participants, available_spots, location, instructor, notes, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING id`,
		c.CourseTypeID, c.Title, c.Date, c.StartTime, c.EndTime,
		c.MaxParticipants, c.AvailableSpots, c.Location, c.Instructor, c.Notes, c.Status,
	).Scan(&id); err != nil {
		return 0, fmt.Errorf("%s: %w", op, translateDBErr(err))
	}

	return id, nil
}

// UpdateCourse applies a partial admin edit and returns the updated row.
// Nil fields in upd are left unchanged.
//
// Returns:
//   - error: repository.ErrNotFound if no course has that ID.
func (r *CatalogRepo) UpdateCourse(ctx context.Context, id int64, upd domain.CourseUpdate) (*domain.Course, error) {
	const op = "postgres.CatalogRepo.UpdateCourse"

	db := r.handle()

	var sets []string
	var args []any

	add := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if upd.Title != nil {
		add("title", *upd.Title)
	}
	if upd.Date != nil {
		add("date", *upd.Date)
	}
	if upd.StartTime != nil {
		add("start_time", *upd.StartTime)
	}
	if upd.EndTime != nil {
		add("end_time", *upd.EndTime)
	}
	if upd.AvailableSpots != nil {
		add("available_spots", *upd.AvailableSpots)
	}
	if upd.Location != nil {
		add("location", *upd.Location)
	}
	if upd.Instructor != nil {
		add("instructor", *upd.Instructor)
	}
	if upd.Notes != nil {
		add("notes", *upd.Notes)
	}
	if upd.Status != nil {
		add("status", *upd.Status)
	}

	var c domain.Course
	var q string

	if len(sets) == 0 {
		q = `SELECT id, course_type_id, title, date, start_time, end_time,
		            max_participants, available_spots, location, instructor, notes, status
		     FROM courses WHERE id = $1`
		args = []any{id}
	} else {
		args = append(args, id)
		q = fmt.Sprintf(
			`UPDATE courses SET %s WHERE id = $%d
			 RETURNING id, course_type_id, title, date, start_time, end_time,
			           max_participants, available_spots, location, instructor, notes, status`,
			strings.Join(sets, ", "), len(args),
		)
	}

	if err := db.QueryRow(ctx, q, args...).Scan(
		&c.ID, &c.CourseTypeID, &c.Title, &c.Date, &c.StartTime, &c.EndTime,
		&c.MaxParticipants, &c.AvailableSpots, &c.Location, &c.Instructor, &c.Notes, &c.Status,
	); err != nil {
		return nil, fmt.Errorf("%s: %w", op, translateDBErr(err))
	}

	return &c, nil
}

// DeleteCourse removes a course instance. The booking-count confirmation
// guard lives in the admin service; the delete itself is unconditional.
func (r *CatalogRepo) DeleteCourse(ctx context.Context, id int64) error {
	const op = "postgres.CatalogRepo.DeleteCourse"

	db := r.handle()

	tag, err := db.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, translateDBErr(err))
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, repository.ErrNotFound)
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCourseWithType(row scanner, cwt *domain.CourseWithType) error {
	return row.Scan(
		&cwt.ID, &cwt.CourseTypeID, &cwt.Title, &cwt.Date, &cwt.StartTime, &cwt.EndTime,
		&cwt.MaxParticipants, &cwt.AvailableSpots, &cwt.Location, &cwt.Instructor,
		&cwt.Notes, &cwt.Status,
		&cwt.CourseType.ID, &cwt.CourseType.Name, &cwt.CourseType.Description,
		&cwt.CourseType.Price, &cwt.CourseType.Duration, &cwt.CourseType.MaxParticipants,
		&cwt.CourseType.MinAge, &cwt.CourseType.Materials, &cwt.CourseType.Requirements,
		&cwt.CourseType.ImageURL,
	)
}
