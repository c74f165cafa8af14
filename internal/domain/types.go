package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CourseStatus string

const (
	CourseScheduled CourseStatus = "scheduled"
	CourseCancelled CourseStatus = "cancelled"
	CourseCompleted CourseStatus = "completed"
)

// Terminal reports whether no further status transition is allowed.
func (s CourseStatus) Terminal() bool {
	return s == CourseCancelled || s == CourseCompleted
}

func (s CourseStatus) Valid() bool {
	switch s {
	case CourseScheduled, CourseCancelled, CourseCompleted:
		return true
	}
	return false
}

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

type CommissionStatus string

const (
	CommissionNew      CommissionStatus = "new"
	CommissionReviewed CommissionStatus = "reviewed"
	CommissionClosed   CommissionStatus = "closed"
)

// CourseType is a reusable workshop template. Admin-managed, effectively
// immutable once course instances reference it.
type CourseType struct {
	ID              int64           `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Price           decimal.Decimal `json:"price"`
	Duration        string          `json:"duration"`
	MaxParticipants int             `json:"maxParticipants"`
	MinAge          int             `json:"minAge"`
	Materials       []string        `json:"materials"`
	Requirements    string          `json:"requirements"`
	ImageURL        string          `json:"imageUrl"`
}

// Course is one scheduled occurrence of a course type.
type Course struct {
	ID              int64        `json:"id"`
	CourseTypeID    int64        `json:"courseTypeId"`
	Title           string       `json:"title"`
	Date            time.Time    `json:"date"`
	StartTime       string       `json:"startTime"`
	EndTime         string       `json:"endTime"`
	MaxParticipants int          `json:"maxParticipants"`
	AvailableSpots  int          `json:"availableSpots"`
	Location        string       `json:"location,omitempty"`
	Instructor      string       `json:"instructor,omitempty"`
	Notes           string       `json:"notes,omitempty"`
	Status          CourseStatus `json:"status"`
}

// CourseWithType is the wire shape clients consume: the course plus the full
// embedded template. Clients read price/materials/description from the nested
// object, not the flat course.
type CourseWithType struct {
	Course
	CourseType CourseType `json:"courseType"`
}

// CourseBooking is an immutable reservation record. TotalPrice is computed
// and stored at booking time so later template price changes do not alter it.
type CourseBooking struct {
	ID            uuid.UUID       `json:"id"`
	CourseID      int64           `json:"courseId"`
	CustomerName  string          `json:"customerName"`
	CustomerEmail string          `json:"customerEmail"`
	CustomerPhone string          `json:"customerPhone,omitempty"`
	Message       string          `json:"message,omitempty"`
	Participants  int             `json:"participants"`
	TotalPrice    decimal.Decimal `json:"totalPrice"`
	Status        BookingStatus   `json:"status"`
	CreatedAt     time.Time       `json:"createdAt"`
}

type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	ImageURL    string          `json:"imageUrl"`
	Available   bool            `json:"available"`
	CreatedAt   time.Time       `json:"createdAt"`
}

type GalleryImage struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category,omitempty"`
	ImageURL    string    `json:"imageUrl"`
	CreatedAt   time.Time `json:"createdAt"`
}

type CommissionRequest struct {
	ID            uuid.UUID        `json:"id"`
	CustomerName  string           `json:"customerName"`
	CustomerEmail string           `json:"customerEmail"`
	CustomerPhone string           `json:"customerPhone,omitempty"`
	Description   string           `json:"description"`
	Budget        *decimal.Decimal `json:"budget,omitempty"`
	Status        CommissionStatus `json:"status"`
	CreatedAt     time.Time        `json:"createdAt"`
}

// CourseUpdate carries a partial admin edit. Nil fields are left unchanged.
type CourseUpdate struct {
	Title          *string
	Date           *time.Time
	StartTime      *string
	EndTime        *string
	AvailableSpots *int
	Location       *string
	Instructor     *string
	Notes          *string
	Status         *CourseStatus
}
