package admin

import (
	"errors"
	"fmt"

	"github.com/atelierdahl/atelier-go/internal/domain"
)

var (
	ErrCourseNotFound     = errors.New("course not found")
	ErrCourseTypeNotFound = errors.New("course type not found")
	ErrProductNotFound    = errors.New("product not found")
	ErrImageNotFound      = errors.New("gallery image not found")
	ErrRequestNotFound    = errors.New("commission request not found")
	ErrInvalidStatus      = errors.New("invalid course status")
	ErrInvalidSpots       = errors.New("available spots out of range")
)

// StatusLockedError rejects transitions out of a terminal course status.
type StatusLockedError struct {
	Current domain.CourseStatus
}

func (e *StatusLockedError) Error() string {
	return fmt.Sprintf("course status %q is terminal", e.Current)
}

// CourseHasBookingsError is returned by DeleteCourse when bookings reference
// the course and the caller did not confirm with force. Carries the count so
// the API consumer can surface it in the confirmation step.
type CourseHasBookingsError struct {
	CourseID int64
	Count    int64
}

func (e *CourseHasBookingsError) Error() string {
	return fmt.Sprintf("course %d has %d bookings; pass force to delete", e.CourseID, e.Count)
}
