package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	clockMocks "github.com/ironvale/gymd/internal/common/clock/mocks"
	uuidMocks "github.com/ironvale/gymd/internal/common/uuid/mocks"
	"github.com/ironvale/gymd/internal/events"
	"github.com/ironvale/gymd/internal/models"
	bookingRepo "github.com/ironvale/gymd/internal/repositories/booking"
	bookingMocks "github.com/ironvale/gymd/internal/repositories/booking/mocks"
	sessionRepo "github.com/ironvale/gymd/internal/repositories/session"
	sessionMocks "github.com/ironvale/gymd/internal/repositories/session/mocks"
)

// recordingPublisher captures published events for assertions
type recordingPublisher struct {
	keys []string
}

func (p *recordingPublisher) PublishJSON(_ context.Context, key string, _ any) error {
	p.keys = append(p.keys, key)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

type LedgerServiceTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockBookingRepo *bookingMocks.MockRepository
	mockSessionRepo *sessionMocks.MockRepository
	mockClock       *clockMocks.MockClock
	mockUUID        *uuidMocks.MockUUID
	publisher       *recordingPublisher
	service         Service
	ctx             context.Context

	// Test data
	testTime      time.Time
	testBookingID string
	testSessionID string
	testMemberID  string
	testSession   *models.Session
}

func (s *LedgerServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockBookingRepo = bookingMocks.NewMockRepository(s.mockCtrl)
	s.mockSessionRepo = sessionMocks.NewMockRepository(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)
	s.publisher = &recordingPublisher{}

	s.ctx = context.Background()

	s.testTime = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	s.testBookingID = "test-booking-id"
	s.testSessionID = "test-session-id"
	s.testMemberID = "test-member-id"

	s.testSession = &models.Session{
		ID:             s.testSessionID,
		Kind:           models.SessionKindBoxing,
		Name:           "Test Session",
		ScheduleDate:   s.testTime.Add(72 * time.Hour),
		StartTime:      "18:00",
		EndTime:        "19:00",
		MaxCapacity:    10,
		AvailableSlots: 5,
		Status:         models.SessionStatusActive,
		CreatedBy:      "test-staff-id",
	}

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()
	s.mockUUID.EXPECT().NewUUID().Return(s.testBookingID).AnyTimes()

	service, err := New(&Config{
		BookingRepo:   s.mockBookingRepo,
		SessionRepo:   s.mockSessionRepo,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
		Publisher:     s.publisher,
	})
	s.Require().NoError(err)
	s.service = service
}

func (s *LedgerServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}

func (s *LedgerServiceTestSuite) TestBookSession() {
	s.mockSessionRepo.EXPECT().
		GetSession(s.ctx, &sessionRepo.GetSessionInput{SessionID: s.testSessionID}).
		Return(s.testSession, nil)

	s.mockBookingRepo.EXPECT().
		Reserve(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *bookingRepo.ReserveInput) (*bookingRepo.ReserveOutput, error) {
			s.Equal(s.testBookingID, input.Booking.ID)
			s.Equal(s.testMemberID, input.Booking.MemberID)
			s.Equal(s.testSessionID, input.Booking.SessionID)
			s.Equal(models.SessionKindBoxing, input.Booking.SessionKind)
			s.Equal(models.BookingStatusBooked, input.Booking.Status)
			s.Equal(s.testTime, input.Booking.BookingDate)

			decremented := *s.testSession
			decremented.AvailableSlots = 4

			return &bookingRepo.ReserveOutput{
				Booking: input.Booking,
				Session: &decremented,
			}, nil
		})

	out, err := s.service.BookSession(s.ctx, &BookSessionInput{
		SessionID: s.testSessionID,
		MemberID:  s.testMemberID,
	})
	s.Require().NoError(err)

	s.Equal(s.testBookingID, out.Booking.ID)
	s.Equal(4, out.Session.AvailableSlots)
	s.Equal([]string{events.BookingCreated}, s.publisher.keys)
}

func (s *LedgerServiceTestSuite) TestBookSessionNotFound() {
	s.mockSessionRepo.EXPECT().
		GetSession(s.ctx, gomock.Any()).
		Return(nil, sessionRepo.ErrSessionNotFound)

	_, err := s.service.BookSession(s.ctx, &BookSessionInput{
		SessionID: s.testSessionID,
		MemberID:  s.testMemberID,
	})
	s.Require().ErrorIs(err, ErrSessionNotFound)
	s.Empty(s.publisher.keys)
}

func (s *LedgerServiceTestSuite) TestBookSessionErrorMapping() {
	cases := []struct {
		name     string
		repoErr  error
		expected LedgerError
	}{
		{name: "not active", repoErr: bookingRepo.ErrSessionNotActive, expected: ErrSessionNotActive},
		{name: "full", repoErr: bookingRepo.ErrSessionFull, expected: ErrSessionFull},
		{name: "duplicate", repoErr: bookingRepo.ErrDuplicateBooking, expected: ErrDuplicateBooking},
		{name: "deleted between read and reserve", repoErr: bookingRepo.ErrSessionNotFound, expected: ErrSessionNotFound},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.mockSessionRepo.EXPECT().
				GetSession(s.ctx, gomock.Any()).
				Return(s.testSession, nil)

			s.mockBookingRepo.EXPECT().
				Reserve(s.ctx, gomock.Any()).
				Return(nil, tc.repoErr)

			_, err := s.service.BookSession(s.ctx, &BookSessionInput{
				SessionID: s.testSessionID,
				MemberID:  s.testMemberID,
			})
			s.Require().ErrorIs(err, tc.expected)
		})
	}

	s.Empty(s.publisher.keys)
}

func (s *LedgerServiceTestSuite) TestBookSessionValidation() {
	_, err := s.service.BookSession(s.ctx, &BookSessionInput{
		SessionID: "",
		MemberID:  s.testMemberID,
	})
	s.Require().ErrorIs(err, ErrValidation)
}

func (s *LedgerServiceTestSuite) TestCancelBooking() {
	cancelled := &models.Booking{
		ID:          s.testBookingID,
		MemberID:    s.testMemberID,
		SessionID:   s.testSessionID,
		SessionKind: models.SessionKindBoxing,
		Status:      models.BookingStatusCancelled,
		BookingDate: s.testTime.Add(-time.Hour),
		CancelledAt: s.testTime,
		UpdatedAt:   s.testTime,
	}

	s.mockBookingRepo.EXPECT().
		Release(s.ctx, &bookingRepo.ReleaseInput{
			BookingID: s.testBookingID,
			MemberID:  s.testMemberID,
			Now:       s.testTime,
		}).
		Return(&bookingRepo.ReleaseOutput{
			Booking: cancelled,
			Session: s.testSession,
		}, nil)

	out, err := s.service.CancelBooking(s.ctx, &CancelBookingInput{
		BookingID: s.testBookingID,
		MemberID:  s.testMemberID,
	})
	s.Require().NoError(err)

	s.Equal(models.BookingStatusCancelled, out.Booking.Status)
	s.Equal([]string{events.BookingCancelled}, s.publisher.keys)
}

func (s *LedgerServiceTestSuite) TestCancelBookingErrorMapping() {
	cases := []struct {
		name     string
		repoErr  error
		expected LedgerError
	}{
		{name: "not found", repoErr: bookingRepo.ErrBookingNotFound, expected: ErrBookingNotFound},
		{name: "already cancelled", repoErr: bookingRepo.ErrAlreadyCancelled, expected: ErrAlreadyCancelled},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.mockBookingRepo.EXPECT().
				Release(s.ctx, gomock.Any()).
				Return(nil, tc.repoErr)

			_, err := s.service.CancelBooking(s.ctx, &CancelBookingInput{
				BookingID: s.testBookingID,
				MemberID:  s.testMemberID,
			})
			s.Require().ErrorIs(err, tc.expected)
		})
	}

	s.Empty(s.publisher.keys)
}

func (s *LedgerServiceTestSuite) TestListMemberBookingsJoinsSnapshots() {
	active := &models.Booking{
		ID:          "active-booking-id",
		MemberID:    s.testMemberID,
		SessionID:   s.testSessionID,
		Status:      models.BookingStatusBooked,
		BookingDate: s.testTime,
	}

	cancelled := &models.Booking{
		ID:          "cancelled-booking-id",
		MemberID:    s.testMemberID,
		SessionID:   s.testSessionID,
		Status:      models.BookingStatusCancelled,
		BookingDate: s.testTime.Add(-time.Hour),
	}

	orphaned := &models.Booking{
		ID:          "orphaned-booking-id",
		MemberID:    s.testMemberID,
		SessionID:   "deleted-session-id",
		Status:      models.BookingStatusBooked,
		BookingDate: s.testTime.Add(-2 * time.Hour),
	}

	s.mockBookingRepo.EXPECT().
		ListMemberBookings(s.ctx, &bookingRepo.ListMemberBookingsInput{MemberID: s.testMemberID}).
		Return(&bookingRepo.ListMemberBookingsOutput{
			Bookings: []*models.Booking{active, cancelled, orphaned},
		}, nil)

	s.mockSessionRepo.EXPECT().
		GetSession(s.ctx, &sessionRepo.GetSessionInput{SessionID: s.testSessionID}).
		Return(s.testSession, nil)

	s.mockSessionRepo.EXPECT().
		GetSession(s.ctx, &sessionRepo.GetSessionInput{SessionID: "deleted-session-id"}).
		Return(nil, sessionRepo.ErrSessionNotFound)

	out, err := s.service.ListMemberBookings(s.ctx, &ListMemberBookingsInput{
		MemberID: s.testMemberID,
	})
	s.Require().NoError(err)

	// Cancelled rows are filtered out; orphaned rows keep a nil snapshot
	s.Require().Len(out.Bookings, 2)

	s.Equal("active-booking-id", out.Bookings[0].Booking.ID)
	s.Require().NotNil(out.Bookings[0].Session)
	s.Equal("Test Session", out.Bookings[0].Session.Name)
	s.Equal(models.SessionKindBoxing, out.Bookings[0].Session.Kind)

	s.Equal("orphaned-booking-id", out.Bookings[1].Booking.ID)
	s.Nil(out.Bookings[1].Session)
}

func (s *LedgerServiceTestSuite) TestListMemberBookingsValidation() {
	_, err := s.service.ListMemberBookings(s.ctx, &ListMemberBookingsInput{})
	s.Require().ErrorIs(err, ErrValidation)
}
