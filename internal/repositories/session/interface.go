package session

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/ironvale/gymd/internal/repositories/session Repository

import (
	"context"

	"github.com/ironvale/gymd/internal/models"
)

// Repository defines the interface for session catalog persistence
type Repository interface {
	// SaveSession persists a session document
	SaveSession(ctx context.Context, input *SaveSessionInput) error

	// GetSession retrieves a session by ID
	GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error)

	// ListSessions retrieves all sessions ordered by schedule date
	ListSessions(ctx context.Context, input *ListSessionsInput) (*ListSessionsOutput, error)

	// DeleteSession hard-removes a session document
	DeleteSession(ctx context.Context, input *DeleteSessionInput) error
}
