package registry

import (
	"context"
	"errors"
	"fmt"

	"github.com/ironvale/gymd/internal/common/clock"
	"github.com/ironvale/gymd/internal/common/uuid"
	"github.com/ironvale/gymd/internal/models"
	sessionRepo "github.com/ironvale/gymd/internal/repositories/session"
)

// service implements the Service interface
type service struct {
	sessionRepo sessionRepo.Repository
	clock       clock.Clock
	uuid        uuid.UUID
}

// New creates a new registry service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
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

	return &service{
		sessionRepo: cfg.SessionRepo,
		clock:       cfg.Clock,
		uuid:        cfg.UUIDGenerator,
	}, nil
}

// CreateSession creates a new bookable session with full capacity
func (s *service) CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error) {
	if input == nil {
		return nil, fmt.Errorf("%w: input cannot be nil", ErrValidation)
	}

	if !models.ValidSessionKind(input.Kind) {
		return nil, fmt.Errorf("%w: unknown session kind %q", ErrValidation, input.Kind)
	}

	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}

	if input.ScheduleDate.IsZero() {
		return nil, fmt.Errorf("%w: schedule date is required", ErrValidation)
	}

	if input.StartTime == "" || input.EndTime == "" {
		return nil, fmt.Errorf("%w: start and end times are required", ErrValidation)
	}

	if input.MaxCapacity < 1 {
		return nil, fmt.Errorf("%w: max capacity must be at least 1", ErrValidation)
	}

	if input.CreatedBy == "" {
		return nil, fmt.Errorf("%w: creator is required", ErrValidation)
	}

	temperature := 0
	if input.Kind == models.SessionKindSauna {
		temperature = input.Temperature
		if temperature == 0 {
			temperature = DefaultSaunaTemperature
		}
		if temperature < MinSaunaTemperature || temperature > MaxSaunaTemperature {
			return nil, fmt.Errorf("%w: temperature must be between %d and %d", ErrValidation, MinSaunaTemperature, MaxSaunaTemperature)
		}
	}

	now := s.clock.Now()

	sess := &models.Session{
		ID:             s.uuid.NewUUID(),
		Kind:           input.Kind,
		Name:           input.Name,
		ScheduleDate:   input.ScheduleDate,
		StartTime:      input.StartTime,
		EndTime:        input.EndTime,
		MaxCapacity:    input.MaxCapacity,
		AvailableSlots: input.MaxCapacity,
		Temperature:    temperature,
		Description:    input.Description,
		Status:         models.SessionStatusActive,
		CreatedBy:      input.CreatedBy,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	err := s.sessionRepo.SaveSession(ctx, &sessionRepo.SaveSessionInput{
		Session: sess,
	})
	if err != nil {
		return nil, err
	}

	return &CreateSessionOutput{Session: sess}, nil
}

// UpdateSession applies a patch to an existing session
func (s *service) UpdateSession(ctx context.Context, input *UpdateSessionInput) (*UpdateSessionOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, fmt.Errorf("%w: session ID is required", ErrValidation)
	}

	sess, err := s.getSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", ErrValidation)
		}
		sess.Name = *input.Name
	}

	if input.ScheduleDate != nil {
		if input.ScheduleDate.IsZero() {
			return nil, fmt.Errorf("%w: schedule date cannot be zero", ErrValidation)
		}
		sess.ScheduleDate = *input.ScheduleDate
	}

	if input.StartTime != nil {
		sess.StartTime = *input.StartTime
	}

	if input.EndTime != nil {
		sess.EndTime = *input.EndTime
	}

	if input.Temperature != nil {
		if sess.Kind != models.SessionKindSauna {
			return nil, fmt.Errorf("%w: only sauna sessions carry a temperature", ErrValidation)
		}
		if *input.Temperature < MinSaunaTemperature || *input.Temperature > MaxSaunaTemperature {
			return nil, fmt.Errorf("%w: temperature must be between %d and %d", ErrValidation, MinSaunaTemperature, MaxSaunaTemperature)
		}
		sess.Temperature = *input.Temperature
	}

	if input.Description != nil {
		sess.Description = *input.Description
	}

	if input.Status != nil {
		if !models.ValidSessionStatus(*input.Status) {
			return nil, fmt.Errorf("%w: unknown session status %q", ErrValidation, *input.Status)
		}
		sess.Status = *input.Status
	}

	sess.UpdatedAt = s.clock.Now()

	err = s.sessionRepo.SaveSession(ctx, &sessionRepo.SaveSessionInput{
		Session: sess,
	})
	if err != nil {
		return nil, err
	}

	return &UpdateSessionOutput{Session: sess}, nil
}

// CancelSession marks a session Cancelled. Capacity and existing
// bookings are untouched; the ledger refuses new bookings against a
// non-Active session.
func (s *service) CancelSession(ctx context.Context, input *CancelSessionInput) (*CancelSessionOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, fmt.Errorf("%w: session ID is required", ErrValidation)
	}

	sess, err := s.getSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	sess.Status = models.SessionStatusCancelled
	sess.UpdatedAt = s.clock.Now()

	err = s.sessionRepo.SaveSession(ctx, &sessionRepo.SaveSessionInput{
		Session: sess,
	})
	if err != nil {
		return nil, err
	}

	return &CancelSessionOutput{Session: sess}, nil
}

// DeleteSession hard-removes a session without cascading to bookings
func (s *service) DeleteSession(ctx context.Context, input *DeleteSessionInput) error {
	if input == nil || input.SessionID == "" {
		return fmt.Errorf("%w: session ID is required", ErrValidation)
	}

	err := s.sessionRepo.DeleteSession(ctx, &sessionRepo.DeleteSessionInput{
		SessionID: input.SessionID,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return ErrSessionNotFound
		}
		return err
	}

	return nil
}

// GetSession retrieves a session by ID
func (s *service) GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, fmt.Errorf("%w: session ID is required", ErrValidation)
	}

	sess, err := s.getSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	return &GetSessionOutput{Session: sess}, nil
}

// ListSessions retrieves the full catalog ordered by schedule date
func (s *service) ListSessions(ctx context.Context, input *ListSessionsInput) (*ListSessionsOutput, error) {
	if input == nil {
		input = &ListSessionsInput{}
	}

	out, err := s.sessionRepo.ListSessions(ctx, &sessionRepo.ListSessionsInput{
		Kind: input.Kind,
	})
	if err != nil {
		return nil, err
	}

	return &ListSessionsOutput{Sessions: out.Sessions}, nil
}

// ListBookableSessions retrieves Active sessions with free slots
func (s *service) ListBookableSessions(ctx context.Context, input *ListBookableSessionsInput) (*ListBookableSessionsOutput, error) {
	if input == nil {
		input = &ListBookableSessionsInput{}
	}

	out, err := s.sessionRepo.ListSessions(ctx, &sessionRepo.ListSessionsInput{
		Kind: input.Kind,
	})
	if err != nil {
		return nil, err
	}

	bookable := make([]*models.Session, 0, len(out.Sessions))
	for _, sess := range out.Sessions {
		if sess.Status == models.SessionStatusActive && sess.AvailableSlots > 0 {
			bookable = append(bookable, sess)
		}
	}

	return &ListBookableSessionsOutput{Sessions: bookable}, nil
}

func (s *service) getSession(ctx context.Context, sessionID string) (*models.Session, error) {
	sess, err := s.sessionRepo.GetSession(ctx, &sessionRepo.GetSessionInput{
		SessionID: sessionID,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	return sess, nil
}
