package ledger

import (
	"context"
	"errors"
	"log"

	"github.com/ironvale/gymd/internal/common/clock"
	"github.com/ironvale/gymd/internal/common/uuid"
	"github.com/ironvale/gymd/internal/events"
	"github.com/ironvale/gymd/internal/models"
	bookingRepo "github.com/ironvale/gymd/internal/repositories/booking"
	sessionRepo "github.com/ironvale/gymd/internal/repositories/session"
)

// service implements the Service interface
type service struct {
	bookingRepo bookingRepo.Repository
	sessionRepo sessionRepo.Repository
	clock       clock.Clock
	uuid        uuid.UUID
	publisher   events.Publisher
}

// New creates a new ledger service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.BookingRepo == nil {
		return nil, ErrNilBookingRepo
	}

	if cfg.SessionRepo == nil {
		return nil, ErrNilSessionRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	publisher := cfg.Publisher
	if publisher == nil {
		publisher = events.Noop{}
	}

	return &service{
		bookingRepo: cfg.BookingRepo,
		sessionRepo: cfg.SessionRepo,
		clock:       cfg.Clock,
		uuid:        cfg.UUIDGenerator,
		publisher:   publisher,
	}, nil
}

// BookSession reserves a slot on an Active session for a member
func (s *service) BookSession(ctx context.Context, input *BookSessionInput) (*BookSessionOutput, error) {
	if input == nil || input.SessionID == "" || input.MemberID == "" {
		return nil, ErrValidation
	}

	// Resolve the session up front to stamp the booking with its
	// kind. Status and capacity are re-checked inside the reserve
	// transaction; this read only shapes the row.
	sess, err := s.sessionRepo.GetSession(ctx, &sessionRepo.GetSessionInput{
		SessionID: input.SessionID,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	now := s.clock.Now()

	record := &models.Booking{
		ID:          s.uuid.NewUUID(),
		MemberID:    input.MemberID,
		SessionID:   input.SessionID,
		SessionKind: sess.Kind,
		Status:      models.BookingStatusBooked,
		BookingDate: now,
		UpdatedAt:   now,
	}

	out, err := s.bookingRepo.Reserve(ctx, &bookingRepo.ReserveInput{
		Booking: record,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookingRepo.ErrSessionNotFound):
			return nil, ErrSessionNotFound
		case errors.Is(err, bookingRepo.ErrSessionNotActive):
			return nil, ErrSessionNotActive
		case errors.Is(err, bookingRepo.ErrSessionFull):
			return nil, ErrSessionFull
		case errors.Is(err, bookingRepo.ErrDuplicateBooking):
			return nil, ErrDuplicateBooking
		}
		return nil, err
	}

	s.publish(ctx, events.BookingCreated, map[string]any{
		"bookingId":   out.Booking.ID,
		"memberId":    out.Booking.MemberID,
		"sessionId":   out.Booking.SessionID,
		"sessionType": out.Booking.SessionKind,
		"bookedAt":    out.Booking.BookingDate,
	})

	return &BookSessionOutput{
		Booking: out.Booking,
		Session: out.Session,
	}, nil
}

// CancelBooking cancels a member's own booking and returns the slot
func (s *service) CancelBooking(ctx context.Context, input *CancelBookingInput) (*CancelBookingOutput, error) {
	if input == nil || input.BookingID == "" || input.MemberID == "" {
		return nil, ErrValidation
	}

	out, err := s.bookingRepo.Release(ctx, &bookingRepo.ReleaseInput{
		BookingID: input.BookingID,
		MemberID:  input.MemberID,
		Now:       s.clock.Now(),
	})
	if err != nil {
		switch {
		case errors.Is(err, bookingRepo.ErrBookingNotFound):
			return nil, ErrBookingNotFound
		case errors.Is(err, bookingRepo.ErrAlreadyCancelled):
			return nil, ErrAlreadyCancelled
		}
		return nil, err
	}

	s.publish(ctx, events.BookingCancelled, map[string]any{
		"bookingId":   out.Booking.ID,
		"memberId":    out.Booking.MemberID,
		"sessionId":   out.Booking.SessionID,
		"cancelledAt": out.Booking.CancelledAt,
	})

	return &CancelBookingOutput{
		Booking: out.Booking,
		Session: out.Session,
	}, nil
}

// ListMemberBookings returns the member's active bookings joined with
// a session snapshot at read time
func (s *service) ListMemberBookings(ctx context.Context, input *ListMemberBookingsInput) (*ListMemberBookingsOutput, error) {
	if input == nil || input.MemberID == "" {
		return nil, ErrValidation
	}

	out, err := s.bookingRepo.ListMemberBookings(ctx, &bookingRepo.ListMemberBookingsInput{
		MemberID: input.MemberID,
	})
	if err != nil {
		return nil, err
	}

	bookings := make([]*MemberBooking, 0, len(out.Bookings))
	for _, record := range out.Bookings {
		if record.Status != models.BookingStatusBooked {
			continue
		}

		entry := &MemberBooking{Booking: record}

		sess, err := s.sessionRepo.GetSession(ctx, &sessionRepo.GetSessionInput{
			SessionID: record.SessionID,
		})
		if err == nil {
			entry.Session = &SessionSnapshot{
				Name:         sess.Name,
				Kind:         sess.Kind,
				ScheduleDate: sess.ScheduleDate,
				StartTime:    sess.StartTime,
				EndTime:      sess.EndTime,
				Temperature:  sess.Temperature,
				Status:       sess.Status,
			}
		} else if !errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, err
		}
		// A deleted session leaves the snapshot nil; the booking row
		// itself is still reported.

		bookings = append(bookings, entry)
	}

	return &ListMemberBookingsOutput{Bookings: bookings}, nil
}

func (s *service) publish(ctx context.Context, key string, payload map[string]any) {
	if err := s.publisher.PublishJSON(ctx, key, payload); err != nil {
		log.Printf("failed to publish %s event: %v", key, err)
	}
}
