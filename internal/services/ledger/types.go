package ledger

import (
	"time"

	"github.com/ironvale/gymd/internal/common/clock"
	"github.com/ironvale/gymd/internal/common/uuid"
	"github.com/ironvale/gymd/internal/events"
	"github.com/ironvale/gymd/internal/models"
	bookingRepo "github.com/ironvale/gymd/internal/repositories/booking"
	sessionRepo "github.com/ironvale/gymd/internal/repositories/session"
)

// Config holds configuration for the ledger service
type Config struct {
	// Repository dependencies
	BookingRepo bookingRepo.Repository
	SessionRepo sessionRepo.Repository

	// Service dependencies
	Clock         clock.Clock
	UUIDGenerator uuid.UUID

	// Publisher emits booking lifecycle events. Optional; defaults to
	// a no-op publisher.
	Publisher events.Publisher
}

// BookSessionInput contains parameters for booking a session
type BookSessionInput struct {
	// SessionID is the session to book
	SessionID string

	// MemberID is the member making the reservation
	MemberID string
}

// BookSessionOutput contains the result of a successful booking
type BookSessionOutput struct {
	// Booking is the inserted ledger row
	Booking *models.Booking

	// Session is the session after the slot decrement
	Session *models.Session
}

// CancelBookingInput contains parameters for cancelling a booking
type CancelBookingInput struct {
	// BookingID is the booking to cancel
	BookingID string

	// MemberID is the requesting member; bookings owned by anyone
	// else resolve as not found
	MemberID string
}

// CancelBookingOutput contains the result of a cancellation
type CancelBookingOutput struct {
	// Booking is the row after the status flip
	Booking *models.Booking

	// Session is the session after the slot increment, or nil when
	// the session no longer exists
	Session *models.Session
}

// ListMemberBookingsInput identifies the member to list for
type ListMemberBookingsInput struct {
	MemberID string
}

// SessionSnapshot is the read-time projection of session details onto
// a booking row. It is assembled per request, never stored.
type SessionSnapshot struct {
	Name         string             `json:"name"`
	Kind         models.SessionKind `json:"kind"`
	ScheduleDate time.Time          `json:"scheduleDate"`
	StartTime    string             `json:"startTime"`
	EndTime      string             `json:"endTime"`
	Temperature  int                `json:"temperature,omitempty"`
	Status       models.SessionStatus `json:"status"`
}

// MemberBooking is a booking row joined with its session snapshot.
// Session is nil when the underlying session was deleted.
type MemberBooking struct {
	Booking *models.Booking  `json:"booking"`
	Session *SessionSnapshot `json:"session,omitempty"`
}

// ListMemberBookingsOutput contains the member's active bookings
type ListMemberBookingsOutput struct {
	Bookings []*MemberBooking
}
