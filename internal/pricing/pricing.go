// Package pricing implements the availability and pricing rules for course
// bookings: deriving a booking total from the template base price and
// validating a requested participant count against the remaining spots.
// It is pure computation over caller-supplied values.
package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type CapacityErrorKind string

const (
	NonPositiveCount CapacityErrorKind = "non_positive_count"
	ExceedsCapacity  CapacityErrorKind = "exceeds_capacity"
)

type CapacityError struct {
	Kind           CapacityErrorKind
	Requested      int
	AvailableSpots int
}

func (e *CapacityError) Error() string {
	switch e.Kind {
	case NonPositiveCount:
		return fmt.Sprintf("participant count must be positive, got %d", e.Requested)
	default:
		return fmt.Sprintf("requested %d participants, only %d spots available", e.Requested, e.AvailableSpots)
	}
}

// TotalPrice returns basePrice multiplied by the participant count, rounded
// half-up to two decimal places. The caller must reject non-positive counts
// before calling; see ValidateParticipants.
func TotalPrice(basePrice decimal.Decimal, participants int) decimal.Decimal {
	return basePrice.Mul(decimal.NewFromInt(int64(participants))).Round(2)
}

// ValidateParticipants succeeds iff 1 <= requested <= availableSpots.
// Counts of zero or less are rejected, never clamped.
func ValidateParticipants(requested, availableSpots int) error {
	if requested < 1 {
		return &CapacityError{Kind: NonPositiveCount, Requested: requested, AvailableSpots: availableSpots}
	}

	if requested > availableSpots {
		return &CapacityError{Kind: ExceedsCapacity, Requested: requested, AvailableSpots: availableSpots}
	}

	return nil
}
