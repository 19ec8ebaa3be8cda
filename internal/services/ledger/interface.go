package ledger

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/ironvale/gymd/internal/services/ledger Service

import "context"

// Service defines the interface for booking ledger operations
type Service interface {
	// BookSession reserves a slot on an Active session for a member.
	// The capacity decrement and the duplicate check commit atomically
	// with the ledger insert.
	BookSession(ctx context.Context, input *BookSessionInput) (*BookSessionOutput, error)

	// CancelBooking cancels a member's own booking and returns the
	// slot to the session
	CancelBooking(ctx context.Context, input *CancelBookingInput) (*CancelBookingOutput, error)

	// ListMemberBookings returns the member's active bookings joined
	// with a session snapshot at read time
	ListMemberBookings(ctx context.Context, input *ListMemberBookingsInput) (*ListMemberBookingsOutput, error)
}
