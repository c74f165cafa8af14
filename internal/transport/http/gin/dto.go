package httpgin

import (
	"fmt"
	"regexp"
	"time"

	"github.com/shopspring/decimal"

	"github.com/atelierdahl/atelier-go/internal/domain"
)

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type CreateBookingRequest struct {
	CourseID      int64  `json:"courseId" binding:"required"`
	CustomerName  string `json:"customerName" binding:"required"`
	CustomerEmail string `json:"customerEmail" binding:"required,email"`
	CustomerPhone string `json:"customerPhone"`
	Message       string `json:"message"`
	// No binding bound: zero and negative counts flow to the pricing rules
	// so the response carries the capacity error kind.
	Participants int `json:"participants"`
}

type CreateCourseRequest struct {
	CourseTypeID    int64  `json:"courseTypeId" binding:"required"`
	Title           string `json:"title"`
	Date            string `json:"date" binding:"required"`
	StartTime       string `json:"startTime" binding:"required"`
	EndTime         string `json:"endTime" binding:"required"`
	MaxParticipants int    `json:"maxParticipants" binding:"required,gt=0"`
	Location        string `json:"location"`
	Instructor      string `json:"instructor"`
	Notes           string `json:"notes"`
}

type UpdateCourseRequest struct {
	Title          *string `json:"title"`
	Date           *string `json:"date"`
	StartTime      *string `json:"startTime"`
	EndTime        *string `json:"endTime"`
	AvailableSpots *int    `json:"availableSpots"`
	Location       *string `json:"location"`
	Instructor     *string `json:"instructor"`
	Notes          *string `json:"notes"`
	Status         *string `json:"status"`
}

type CreateCourseTypeRequest struct {
	Name            string          `json:"name" binding:"required"`
	Description     string          `json:"description"`
	Price           decimal.Decimal `json:"price" binding:"required"`
	Duration        string          `json:"duration"`
	MaxParticipants int             `json:"maxParticipants" binding:"required,gt=0"`
	MinAge          int             `json:"minAge"`
	Materials       []string        `json:"materials"`
	Requirements    string          `json:"requirements"`
	ImageURL        string          `json:"imageUrl"`
}

type ProductRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Category    string          `json:"category"`
	ImageURL    string          `json:"imageUrl"`
	Available   bool            `json:"available"`
}

type GalleryImageRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Category    string `json:"category"`
	ImageURL    string `json:"imageUrl" binding:"required"`
}

type CreateCommissionRequest struct {
	CustomerName  string           `json:"customerName" binding:"required"`
	CustomerEmail string           `json:"customerEmail" binding:"required,email"`
	CustomerPhone string           `json:"customerPhone"`
	Description   string           `json:"description" binding:"required"`
	Budget        *decimal.Decimal `json:"budget"`
}

type CommissionStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=new reviewed closed"`
}

type ErrorResponse struct {
	Error    string `json:"error"`
	Kind     string `json:"kind,omitempty"`
	Bookings int64  `json:"bookings,omitempty"`
}

var timeOfDayRe = regexp.MustCompile(`^(?:[01][0-9]|2[0-3]):[0-5][0-9]$`)

// parseDate accepts the calendar-date wire format used by the booking UI.
func parseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

func parseTimeOfDay(s string) (string, error) {
	if !timeOfDayRe.MatchString(s) {
		return "", fmt.Errorf("invalid time of day %q, want HH:MM", s)
	}
	return s, nil
}

func courseStatus(s string) (domain.CourseStatus, error) {
	st := domain.CourseStatus(s)
	if !st.Valid() {
		return "", fmt.Errorf("invalid status %q", s)
	}
	return st, nil
}
