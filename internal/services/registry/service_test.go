package registry

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	clockMocks "github.com/ironvale/gymd/internal/common/clock/mocks"
	uuidMocks "github.com/ironvale/gymd/internal/common/uuid/mocks"
	"github.com/ironvale/gymd/internal/models"
	sessionRepo "github.com/ironvale/gymd/internal/repositories/session"
	sessionMocks "github.com/ironvale/gymd/internal/repositories/session/mocks"
)

type RegistryServiceTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockSessionRepo *sessionMocks.MockRepository
	mockClock       *clockMocks.MockClock
	mockUUID        *uuidMocks.MockUUID
	service         Service
	ctx             context.Context

	// Test data
	testTime      time.Time
	testSessionID string
	testStaffID   string
}

func (s *RegistryServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockSessionRepo = sessionMocks.NewMockRepository(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)

	s.ctx = context.Background()

	s.testTime = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	s.testSessionID = "test-session-id"
	s.testStaffID = "test-staff-id"

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()
	s.mockUUID.EXPECT().NewUUID().Return(s.testSessionID).AnyTimes()

	service, err := New(&Config{
		SessionRepo:   s.mockSessionRepo,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
	})
	s.Require().NoError(err)
	s.service = service
}

func (s *RegistryServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRegistryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RegistryServiceTestSuite))
}

func (s *RegistryServiceTestSuite) validCreateInput(kind models.SessionKind) *CreateSessionInput {
	return &CreateSessionInput{
		Kind:         kind,
		Name:         "Test Session",
		ScheduleDate: s.testTime.Add(72 * time.Hour),
		StartTime:    "18:00",
		EndTime:      "19:00",
		MaxCapacity:  12,
		CreatedBy:    s.testStaffID,
	}
}

func (s *RegistryServiceTestSuite) TestCreateBoxingSession() {
	s.mockSessionRepo.EXPECT().
		SaveSession(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *sessionRepo.SaveSessionInput) error {
			s.Equal(s.testSessionID, input.Session.ID)
			s.Equal(models.SessionKindBoxing, input.Session.Kind)
			s.Equal(12, input.Session.MaxCapacity)
			s.Equal(12, input.Session.AvailableSlots)
			s.Equal(0, input.Session.Temperature)
			s.Equal(models.SessionStatusActive, input.Session.Status)
			s.Equal(s.testStaffID, input.Session.CreatedBy)
			s.Equal(s.testTime, input.Session.CreatedAt)
			return nil
		})

	out, err := s.service.CreateSession(s.ctx, s.validCreateInput(models.SessionKindBoxing))
	s.Require().NoError(err)
	s.Equal(s.testSessionID, out.Session.ID)
	s.Equal(12, out.Session.AvailableSlots)
}

func (s *RegistryServiceTestSuite) TestCreateSaunaSessionDefaultsTemperature() {
	s.mockSessionRepo.EXPECT().
		SaveSession(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *sessionRepo.SaveSessionInput) error {
			s.Equal(DefaultSaunaTemperature, input.Session.Temperature)
			return nil
		})

	out, err := s.service.CreateSession(s.ctx, s.validCreateInput(models.SessionKindSauna))
	s.Require().NoError(err)
	s.Equal(DefaultSaunaTemperature, out.Session.Temperature)
}

func (s *RegistryServiceTestSuite) TestCreateSaunaSessionTemperatureOutOfRange() {
	input := s.validCreateInput(models.SessionKindSauna)
	input.Temperature = MaxSaunaTemperature + 1

	_, err := s.service.CreateSession(s.ctx, input)
	s.Require().ErrorIs(err, ErrValidation)
}

func (s *RegistryServiceTestSuite) TestCreateSessionUnknownKind() {
	input := s.validCreateInput("Yoga")

	_, err := s.service.CreateSession(s.ctx, input)
	s.Require().ErrorIs(err, ErrValidation)
}

func (s *RegistryServiceTestSuite) TestCreateSessionRequiresCapacity() {
	input := s.validCreateInput(models.SessionKindBoxing)
	input.MaxCapacity = 0

	_, err := s.service.CreateSession(s.ctx, input)
	s.Require().ErrorIs(err, ErrValidation)
}

func (s *RegistryServiceTestSuite) existingSession(kind models.SessionKind) *models.Session {
	return &models.Session{
		ID:             s.testSessionID,
		Kind:           kind,
		Name:           "Existing Session",
		ScheduleDate:   s.testTime.Add(72 * time.Hour),
		StartTime:      "18:00",
		EndTime:        "19:00",
		MaxCapacity:    12,
		AvailableSlots: 9,
		Status:         models.SessionStatusActive,
		CreatedBy:      s.testStaffID,
		CreatedAt:      s.testTime.Add(-time.Hour),
		UpdatedAt:      s.testTime.Add(-time.Hour),
	}
}

func (s *RegistryServiceTestSuite) TestUpdateSessionPatchesFields() {
	s.mockSessionRepo.EXPECT().
		GetSession(s.ctx, &sessionRepo.GetSessionInput{SessionID: s.testSessionID}).
		Return(s.existingSession(models.SessionKindBoxing), nil)

	s.mockSessionRepo.EXPECT().
		SaveSession(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *sessionRepo.SaveSessionInput) error {
			s.Equal("Renamed Session", input.Session.Name)
			s.Equal("19:00", input.Session.StartTime)
			// Capacity and creator stay put
			s.Equal(12, input.Session.MaxCapacity)
			s.Equal(9, input.Session.AvailableSlots)
			s.Equal(s.testStaffID, input.Session.CreatedBy)
			s.Equal(s.testTime, input.Session.UpdatedAt)
			return nil
		})

	name := "Renamed Session"
	start := "19:00"

	out, err := s.service.UpdateSession(s.ctx, &UpdateSessionInput{
		SessionID: s.testSessionID,
		Name:      &name,
		StartTime: &start,
	})
	s.Require().NoError(err)
	s.Equal("Renamed Session", out.Session.Name)
}

func (s *RegistryServiceTestSuite) TestUpdateSessionTemperatureOnBoxing() {
	s.mockSessionRepo.EXPECT().
		GetSession(s.ctx, &sessionRepo.GetSessionInput{SessionID: s.testSessionID}).
		Return(s.existingSession(models.SessionKindBoxing), nil)

	temp := 90

	_, err := s.service.UpdateSession(s.ctx, &UpdateSessionInput{
		SessionID:   s.testSessionID,
		Temperature: &temp,
	})
	s.Require().ErrorIs(err, ErrValidation)
}

func (s *RegistryServiceTestSuite) TestUpdateSessionNotFound() {
	s.mockSessionRepo.EXPECT().
		GetSession(s.ctx, gomock.Any()).
		Return(nil, sessionRepo.ErrSessionNotFound)

	name := "Renamed Session"

	_, err := s.service.UpdateSession(s.ctx, &UpdateSessionInput{
		SessionID: s.testSessionID,
		Name:      &name,
	})
	s.Require().ErrorIs(err, ErrSessionNotFound)
}

func (s *RegistryServiceTestSuite) TestCancelSession() {
	s.mockSessionRepo.EXPECT().
		GetSession(s.ctx, &sessionRepo.GetSessionInput{SessionID: s.testSessionID}).
		Return(s.existingSession(models.SessionKindBoxing), nil)

	s.mockSessionRepo.EXPECT().
		SaveSession(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *sessionRepo.SaveSessionInput) error {
			s.Equal(models.SessionStatusCancelled, input.Session.Status)
			// Capacity is untouched by cancellation
			s.Equal(9, input.Session.AvailableSlots)
			return nil
		})

	out, err := s.service.CancelSession(s.ctx, &CancelSessionInput{
		SessionID: s.testSessionID,
	})
	s.Require().NoError(err)
	s.Equal(models.SessionStatusCancelled, out.Session.Status)
}

func (s *RegistryServiceTestSuite) TestDeleteSessionNotFound() {
	s.mockSessionRepo.EXPECT().
		DeleteSession(s.ctx, gomock.Any()).
		Return(sessionRepo.ErrSessionNotFound)

	err := s.service.DeleteSession(s.ctx, &DeleteSessionInput{
		SessionID: s.testSessionID,
	})
	s.Require().ErrorIs(err, ErrSessionNotFound)
}

func (s *RegistryServiceTestSuite) TestListBookableSessionsFilters() {
	full := s.existingSession(models.SessionKindBoxing)
	full.ID = "full-session"
	full.AvailableSlots = 0

	cancelled := s.existingSession(models.SessionKindBoxing)
	cancelled.ID = "cancelled-session"
	cancelled.Status = models.SessionStatusCancelled

	open := s.existingSession(models.SessionKindBoxing)
	open.ID = "open-session"

	s.mockSessionRepo.EXPECT().
		ListSessions(s.ctx, &sessionRepo.ListSessionsInput{}).
		Return(&sessionRepo.ListSessionsOutput{
			Sessions: []*models.Session{full, cancelled, open},
		}, nil)

	out, err := s.service.ListBookableSessions(s.ctx, &ListBookableSessionsInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Sessions, 1)
	s.Equal("open-session", out.Sessions[0].ID)
}
