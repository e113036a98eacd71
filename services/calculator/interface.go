package calculator

import (
	"context"

	"tradely/models"
	"tradely/services/distance"
)

// BookingCalculator turns a booking request and a read-only configuration
// snapshot into a binding, fully itemized quote. Implementations are pure
// over their inputs: no shared mutable state, safe for concurrent use. The
// only suspension point is the single batched distance lookup.
type BookingCalculator interface {
	Calculate(ctx context.Context, input models.BookingCalculationInput) (*models.BookingCalculationResult, error)
}

// DefaultBookingCalculator implements BookingCalculator.
type DefaultBookingCalculator struct {
	Distance distance.Provider
}
