// Package memory is the in-process storage backend: seed data for local
// development and the injection seam for tests. A single mutex serializes all
// access, which makes the booking insert + spots decrement atomic the same
// way the postgres transaction does.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/atelierdahl/atelier-go/internal/domain"
	"github.com/atelierdahl/atelier-go/internal/repository"
)

type Store struct {
	mu sync.Mutex

	courseTypes map[int64]domain.CourseType
	courses     map[int64]domain.Course
	bookings    map[uuid.UUID]domain.CourseBooking
	products    map[int64]domain.Product
	gallery     map[int64]domain.GalleryImage
	commissions map[uuid.UUID]domain.CommissionRequest

	nextID int64
}

var _ repository.Storage = (*Store)(nil)

func NewStore() *Store {
	return &Store{
		courseTypes: make(map[int64]domain.CourseType),
		courses:     make(map[int64]domain.Course),
		bookings:    make(map[uuid.UUID]domain.CourseBooking),
		products:    make(map[int64]domain.Product),
		gallery:     make(map[int64]domain.GalleryImage),
		commissions: make(map[uuid.UUID]domain.CommissionRequest),
		nextID:      1,
	}
}

func (s *Store) allocID() int64 {
	id := s.nextID
	s.nextID++
	return id
}

func (s *Store) ListCourseTypes(_ context.Context) ([]domain.CourseType, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.CourseType, 0, len(s.courseTypes))
	for _, ct := range s.courseTypes {
		out = append(out, ct)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out, nil
}

func (s *Store) GetCourseType(_ context.Context, id int64) (*domain.CourseType, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ct, ok := s.courseTypes[id]
	if !ok {
		return nil, repository.ErrNotFound
	}

	return &ct, nil
}

func (s *Store) CreateCourseType(_ context.Context, ct *domain.CourseType) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ct.ID = s.allocID()
	s.courseTypes[ct.ID] = *ct

	return ct.ID, nil
}

func (s *Store) ListCourses(_ context.Context, includeAll bool) ([]domain.CourseWithType, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.CourseWithType, 0, len(s.courses))
	for _, c := range s.courses {
		if !includeAll && c.Status != domain.CourseScheduled {
			continue
		}
		out = append(out, domain.CourseWithType{
			Course:     c,
			CourseType: s.courseTypes[c.CourseTypeID],
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].StartTime < out[j].StartTime
	})

	return out, nil
}

func (s *Store) GetCourse(_ context.Context, id int64) (*domain.CourseWithType, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.courses[id]
	if !ok {
		return nil, repository.ErrNotFound
	}

	return &domain.CourseWithType{
		Course:     c,
		CourseType: s.courseTypes[c.CourseTypeID],
	}, nil
}

func (s *Store) CreateCourse(_ context.Context, c *domain.Course) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.courseTypes[c.CourseTypeID]; !ok {
		return 0, repository.ErrNotFound
	}

	c.ID = s.allocID()
	s.courses[c.ID] = *c

	return c.ID, nil
}

func (s *Store) UpdateCourse(_ context.Context, id int64, upd domain.CourseUpdate) (*domain.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.courses[id]
	if !ok {
		return nil, repository.ErrNotFound
	}

	if upd.Title != nil {
		c.Title = *upd.Title
	}
	if upd.Date != nil {
		c.Date = *upd.Date
	}
	if upd.StartTime != nil {
		c.StartTime = *upd.StartTime
	}
	if upd.EndTime != nil {
		c.EndTime = *upd.EndTime
	}
	if upd.AvailableSpots != nil {
		c.AvailableSpots = *upd.AvailableSpots
	}
	if upd.Location != nil {
		c.Location = *upd.Location
	}
	if upd.Instructor != nil {
		c.Instructor = *upd.Instructor
	}
	if upd.Notes != nil {
		c.Notes = *upd.Notes
	}
	if upd.Status != nil {
		c.Status = *upd.Status
	}

	s.courses[id] = c

	return &c, nil
}

func (s *Store) DeleteCourse(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.courses[id]; !ok {
		return repository.ErrNotFound
	}

	delete(s.courses, id)

	return nil
}

// CreateBooking checks capacity, decrements the course's available spots and
// stores the booking while holding the store mutex, so concurrent bookings
// see each other's decrements.
func (s *Store) CreateBooking(_ context.Context, b *domain.CourseBooking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.courses[b.CourseID]
	if !ok {
		return repository.ErrNotFound
	}

	if c.Status != domain.CourseScheduled {
		return repository.ErrCourseNotBookable
	}

	if b.Participants < 1 || b.Participants > c.AvailableSpots {
		return repository.ErrNoCapacity
	}

	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now().UTC()
	}

	c.AvailableSpots -= b.Participants
	s.courses[c.ID] = c
	s.bookings[b.ID] = *b

	return nil
}

func (s *Store) GetBooking(_ context.Context, id uuid.UUID) (*domain.CourseBooking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[id]
	if !ok {
		return nil, repository.ErrNotFound
	}

	return &b, nil
}

func (s *Store) ListBookings(_ context.Context, courseID int64) ([]domain.CourseBooking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.CourseBooking
	for _, b := range s.bookings {
		if courseID > 0 && b.CourseID != courseID {
			continue
		}
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })

	return out, nil
}

func (s *Store) CountBookingsForCourse(_ context.Context, courseID int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	for _, b := range s.bookings {
		if b.CourseID == courseID {
			n++
		}
	}

	return n, nil
}

func (s *Store) ListProducts(_ context.Context) ([]domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })

	return out, nil
}

func (s *Store) GetProduct(_ context.Context, id int64) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[id]
	if !ok {
		return nil, repository.ErrNotFound
	}

	return &p, nil
}

func (s *Store) CreateProduct(_ context.Context, p *domain.Product) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}

	p.ID = s.allocID()
	s.products[p.ID] = *p

	return p.ID, nil
}

func (s *Store) UpdateProduct(_ context.Context, p *domain.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	old, ok := s.products[p.ID]
	if !ok {
		return repository.ErrNotFound
	}

	p.CreatedAt = old.CreatedAt
	s.products[p.ID] = *p

	return nil
}

func (s *Store) DeleteProduct(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[id]; !ok {
		return repository.ErrNotFound
	}

	delete(s.products, id)

	return nil
}

func (s *Store) ListGalleryImages(_ context.Context) ([]domain.GalleryImage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.GalleryImage, 0, len(s.gallery))
	for _, img := range s.gallery {
		out = append(out, img)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })

	return out, nil
}

func (s *Store) CreateGalleryImage(_ context.Context, img *domain.GalleryImage) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if img.CreatedAt.IsZero() {
		img.CreatedAt = time.Now().UTC()
	}

	img.ID = s.allocID()
	s.gallery[img.ID] = *img

	return img.ID, nil
}

func (s *Store) DeleteGalleryImage(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.gallery[id]; !ok {
		return repository.ErrNotFound
	}

	delete(s.gallery, id)

	return nil
}

func (s *Store) CreateCommissionRequest(_ context.Context, cr *domain.CommissionRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cr.ID == uuid.Nil {
		cr.ID = uuid.New()
	}
	if cr.CreatedAt.IsZero() {
		cr.CreatedAt = time.Now().UTC()
	}
	if cr.Status == "" {
		cr.Status = domain.CommissionNew
	}

	s.commissions[cr.ID] = *cr

	return nil
}

func (s *Store) ListCommissionRequests(_ context.Context) ([]domain.CommissionRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.CommissionRequest, 0, len(s.commissions))
	for _, cr := range s.commissions {
		out = append(out, cr)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })

	return out, nil
}

func (s *Store) UpdateCommissionStatus(_ context.Context, id uuid.UUID, status domain.CommissionStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cr, ok := s.commissions[id]
	if !ok {
		return repository.ErrNotFound
	}

	cr.Status = status
	s.commissions[id] = cr

	return nil
}

// Snapshot helpers used by tests to assert on state without reaching into
// the maps directly.

func (s *Store) CourseSpots(id int64) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.courses[id]
	if !ok {
		return 0, fmt.Errorf("course %d: %w", id, repository.ErrNotFound)
	}

	return c.AvailableSpots, nil
}
