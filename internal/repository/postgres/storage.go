package postgres

import (
	"context"

	"github.com/google/uuid"

	"github.com/atelierdahl/atelier-go/internal/domain"
	"github.com/atelierdahl/atelier-go/internal/repository"
)

// Store satisfies repository.Storage by delegating to the per-area repos.
var _ repository.Storage = (*Store)(nil)

func (s *Store) ListCourseTypes(ctx context.Context) ([]domain.CourseType, error) {
	return s.Catalog().ListCourseTypes(ctx)
}

func (s *Store) GetCourseType(ctx context.Context, id int64) (*domain.CourseType, error) {
	return s.Catalog().GetCourseType(ctx, id)
}

func (s *Store) CreateCourseType(ctx context.Context, ct *domain.CourseType) (int64, error) {
	return s.Catalog().CreateCourseType(ctx, ct)
}

func (s *Store) ListCourses(ctx context.Context, includeAll bool) ([]domain.CourseWithType, error) {
	return s.Catalog().ListCourses(ctx, includeAll)
}

func (s *Store) GetCourse(ctx context.Context, id int64) (*domain.CourseWithType, error) {
	return s.Catalog().GetCourse(ctx, id)
}

func (s *Store) CreateCourse(ctx context.Context, c *domain.Course) (int64, error) {
	return s.Catalog().CreateCourse(ctx, c)
}

func (s *Store) UpdateCourse(ctx context.Context, id int64, upd domain.CourseUpdate) (*domain.Course, error) {
	return s.Catalog().UpdateCourse(ctx, id, upd)
}

func (s *Store) DeleteCourse(ctx context.Context, id int64) error {
	return s.Catalog().DeleteCourse(ctx, id)
}

func (s *Store) CreateBooking(ctx context.Context, b *domain.CourseBooking) error {
	return s.Bookings().CreateBooking(ctx, b)
}

func (s *Store) GetBooking(ctx context.Context, id uuid.UUID) (*domain.CourseBooking, error) {
	return s.Bookings().GetBooking(ctx, id)
}

func (s *Store) ListBookings(ctx context.Context, courseID int64) ([]domain.CourseBooking, error) {
	return s.Bookings().ListBookings(ctx, courseID)
}

func (s *Store) CountBookingsForCourse(ctx context.Context, courseID int64) (int64, error) {
	return s.Bookings().CountBookingsForCourse(ctx, courseID)
}

func (s *Store) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.Shop().ListProducts(ctx)
}

func (s *Store) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	return s.Shop().GetProduct(ctx, id)
}

func (s *Store) CreateProduct(ctx context.Context, p *domain.Product) (int64, error) {
	return s.Shop().CreateProduct(ctx, p)
}

func (s *Store) UpdateProduct(ctx context.Context, p *domain.Product) error {
	return s.Shop().UpdateProduct(ctx, p)
}

func (s *Store) DeleteProduct(ctx context.Context, id int64) error {
	return s.Shop().DeleteProduct(ctx, id)
}

func (s *Store) ListGalleryImages(ctx context.Context) ([]domain.GalleryImage, error) {
	return s.Shop().ListGalleryImages(ctx)
}

func (s *Store) CreateGalleryImage(ctx context.Context, img *domain.GalleryImage) (int64, error) {
	return s.Shop().CreateGalleryImage(ctx, img)
}

func (s *Store) DeleteGalleryImage(ctx context.Context, id int64) error {
	return s.Shop().DeleteGalleryImage(ctx, id)
}

func (s *Store) CreateCommissionRequest(ctx context.Context, cr *domain.CommissionRequest) error {
	return s.Commissions().CreateCommissionRequest(ctx, cr)
}

func (s *Store) ListCommissionRequests(ctx context.Context) ([]domain.CommissionRequest, error) {
	return s.Commissions().ListCommissionRequests(ctx)
}

func (s *Store) UpdateCommissionStatus(ctx context.Context, id uuid.UUID, status domain.CommissionStatus) error {
	return s.Commissions().UpdateCommissionStatus(ctx, id, status)
}
