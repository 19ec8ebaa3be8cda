package registry

import (
	"time"

	"github.com/ironvale/gymd/internal/common/clock"
	"github.com/ironvale/gymd/internal/common/uuid"
	"github.com/ironvale/gymd/internal/models"
	sessionRepo "github.com/ironvale/gymd/internal/repositories/session"
)

const (
	// DefaultSaunaTemperature is applied when a sauna session is
	// created without one, in Celsius
	DefaultSaunaTemperature = 85

	// MinSaunaTemperature and MaxSaunaTemperature bound accepted
	// sauna temperatures
	MinSaunaTemperature = 60
	MaxSaunaTemperature = 100
)

// Config holds configuration for the registry service
type Config struct {
	// Repository dependencies
	SessionRepo sessionRepo.Repository

	// Service dependencies
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// CreateSessionInput contains parameters for creating a session
type CreateSessionInput struct {
	// Kind is the activity type (Boxing or Sauna)
	Kind models.SessionKind

	// Name is the session's display name
	Name string

	// ScheduleDate is the calendar date of the session
	ScheduleDate time.Time

	// StartTime and EndTime are wall-clock strings, e.g. "18:00"
	StartTime string
	EndTime   string

	// MaxCapacity is the number of bookable slots
	MaxCapacity int

	// Temperature is the sauna temperature in Celsius; defaulted for
	// sauna sessions when zero, ignored for boxing
	Temperature int

	// Description is optional free text
	Description string

	// CreatedBy is the staff/admin identity creating the session.
	// Role enforcement happens upstream in the access policy.
	CreatedBy string
}

// CreateSessionOutput contains the created session
type CreateSessionOutput struct {
	Session *models.Session
}

// UpdateSessionInput contains a patch for an existing session. Nil
// fields are left unchanged. There is deliberately no CreatedBy and no
// capacity field here: both are immutable after creation.
type UpdateSessionInput struct {
	SessionID string

	Name         *string
	ScheduleDate *time.Time
	StartTime    *string
	EndTime      *string
	Temperature  *int
	Description  *string
	Status       *models.SessionStatus
}

// UpdateSessionOutput contains the session after the patch
type UpdateSessionOutput struct {
	Session *models.Session
}

// CancelSessionInput identifies the session to cancel
type CancelSessionInput struct {
	SessionID string
}

// CancelSessionOutput contains the cancelled session
type CancelSessionOutput struct {
	Session *models.Session
}

// DeleteSessionInput identifies the session to delete
type DeleteSessionInput struct {
	SessionID string
}

// GetSessionInput identifies the session to fetch
type GetSessionInput struct {
	SessionID string
}

// GetSessionOutput contains the fetched session
type GetSessionOutput struct {
	Session *models.Session
}

// ListSessionsInput filters the catalog listing
type ListSessionsInput struct {
	// Kind restricts the listing to one activity type when set
	Kind models.SessionKind
}

// ListSessionsOutput contains the catalog ordered by schedule date
type ListSessionsOutput struct {
	Sessions []*models.Session
}

// ListBookableSessionsInput filters the bookable listing
type ListBookableSessionsInput struct {
	// Kind restricts the listing to one activity type when set
	Kind models.SessionKind
}

// ListBookableSessionsOutput contains Active sessions with free slots
type ListBookableSessionsOutput struct {
	Sessions []*models.Session
}
