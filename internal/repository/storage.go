// Package repository defines the storage capability interfaces shared by the
// postgres production backend and the in-memory backend, plus the sentinel
// errors both translate their failures into.
package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/atelierdahl/atelier-go/internal/domain"
)

// Catalog reads and writes course templates and scheduled course instances.
type Catalog interface {
	ListCourseTypes(ctx context.Context) ([]domain.CourseType, error)
	GetCourseType(ctx context.Context, id int64) (*domain.CourseType, error)
	CreateCourseType(ctx context.Context, ct *domain.CourseType) (int64, error)

	// ListCourses returns course instances joined with their template.
	// With includeAll false only scheduled courses are returned.
	ListCourses(ctx context.Context, includeAll bool) ([]domain.CourseWithType, error)
	GetCourse(ctx context.Context, id int64) (*domain.CourseWithType, error)
	CreateCourse(ctx context.Context, c *domain.Course) (int64, error)
	UpdateCourse(ctx context.Context, id int64, upd domain.CourseUpdate) (*domain.Course, error)
	DeleteCourse(ctx context.Context, id int64) error
}

// Bookings is the append-mostly booking ledger.
type Bookings interface {
	// CreateBooking persists b and decrements the referenced course's
	// available spots as one atomic unit. It fails with ErrNotFound when the
	// course does not exist, ErrCourseNotBookable when its status is not
	// scheduled, and ErrNoCapacity when b.Participants is not positive or
	// the decrement would drive the spots negative. On failure no booking
	// row is persisted.
	CreateBooking(ctx context.Context, b *domain.CourseBooking) error

	GetBooking(ctx context.Context, id uuid.UUID) (*domain.CourseBooking, error)
	ListBookings(ctx context.Context, courseID int64) ([]domain.CourseBooking, error)
	CountBookingsForCourse(ctx context.Context, courseID int64) (int64, error)
}

type Products interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	CreateProduct(ctx context.Context, p *domain.Product) (int64, error)
	UpdateProduct(ctx context.Context, p *domain.Product) error
	DeleteProduct(ctx context.Context, id int64) error
}

type Gallery interface {
	ListGalleryImages(ctx context.Context) ([]domain.GalleryImage, error)
	CreateGalleryImage(ctx context.Context, img *domain.GalleryImage) (int64, error)
	DeleteGalleryImage(ctx context.Context, id int64) error
}

type Commissions interface {
	CreateCommissionRequest(ctx context.Context, cr *domain.CommissionRequest) error
	ListCommissionRequests(ctx context.Context) ([]domain.CommissionRequest, error)
	UpdateCommissionStatus(ctx context.Context, id uuid.UUID, status domain.CommissionStatus) error
}

// Storage aggregates every capability a backend must provide.
type Storage interface {
	Catalog
	Bookings
	Products
	Gallery
	Commissions
}
