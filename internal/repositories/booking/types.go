package booking

import (
	"time"

	"github.com/ironvale/gymd/internal/models"
)

type GetBookingInput struct {
	BookingID string
}

type ListMemberBookingsInput struct {
	MemberID string
}

type ListMemberBookingsOutput struct {
	Bookings []*models.Booking
}

type ReserveInput struct {
	// Booking is the fully-populated row to insert. Status must be
	// Booked and SessionID must resolve to an Active session.
	Booking *models.Booking
}

type ReserveOutput struct {
	// Booking is the inserted row
	Booking *models.Booking

	// Session is the session document after the slot decrement
	Session *models.Session
}

type ReleaseInput struct {
	// BookingID is the booking to cancel
	BookingID string

	// MemberID scopes the lookup to the requesting member
	MemberID string

	// Now is the cancellation timestamp
	Now time.Time
}

type ReleaseOutput struct {
	// Booking is the row after the status flip
	Booking *models.Booking

	// Session is the session document after the slot increment, or
	// nil when the session no longer exists
	Session *models.Session
}
