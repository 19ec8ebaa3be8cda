package booking

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/ironvale/gymd/internal/repositories/booking Repository

import (
	"context"

	"github.com/ironvale/gymd/internal/models"
)

// Repository defines the interface for booking ledger persistence.
// Reserve and Release are the only operations that touch a session's
// capacity counter, and both run as a single storage transaction.
type Repository interface {
	// GetBooking retrieves a booking by ID
	GetBooking(ctx context.Context, input *GetBookingInput) (*models.Booking, error)

	// ListMemberBookings retrieves all booking rows for a member,
	// most recent first
	ListMemberBookings(ctx context.Context, input *ListMemberBookingsInput) (*ListMemberBookingsOutput, error)

	// Reserve atomically checks the session is Active with free
	// capacity and no active duplicate for the member, decrements
	// availableSlots, and inserts the booking row
	Reserve(ctx context.Context, input *ReserveInput) (*ReserveOutput, error)

	// Release atomically flips an owned Booked row to Cancelled and
	// increments the session's availableSlots, clamped to maxCapacity.
	// A booking whose session was deleted is still cancelled.
	Release(ctx context.Context, input *ReleaseInput) (*ReleaseOutput, error)
}
