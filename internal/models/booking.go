package models

import (
	"time"
)

// BookingStatus represents the lifecycle state of a booking
type BookingStatus string

const (
	// BookingStatusBooked indicates an active reservation
	BookingStatusBooked BookingStatus = "Booked"

	// BookingStatusCancelled indicates a cancelled reservation.
	// Cancelled is terminal; re-booking creates a new row.
	BookingStatusCancelled BookingStatus = "Cancelled"
)

// Booking represents one member's reservation against one session.
// Bookings are never hard-deleted; cancelled rows are retained as
// history.
type Booking struct {
	// ID is the unique identifier for the booking
	ID string `json:"id"`

	// MemberID is the member who holds the reservation
	MemberID string `json:"memberId"`

	// SessionID is the session the reservation is against
	SessionID string `json:"sessionId"`

	// SessionKind is the type of the booked session
	SessionKind SessionKind `json:"sessionType"`

	// Status is the lifecycle state of the booking
	Status BookingStatus `json:"status"`

	// BookingDate is when the reservation was made. Immutable.
	BookingDate time.Time `json:"bookingDate"`

	// CancelledAt is when the reservation was cancelled, if it was
	CancelledAt time.Time `json:"cancelledAt,omitzero"`

	// UpdatedAt is when the booking was last updated
	UpdatedAt time.Time `json:"updatedAt"`
}
