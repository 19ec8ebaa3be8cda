package registry

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/ironvale/gymd/internal/services/registry Service

import "context"

// Service defines the interface for session catalog operations
type Service interface {
	// CreateSession creates a new bookable session with full capacity
	CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error)

	// UpdateSession applies a patch to an existing session. The
	// creator reference is not patchable.
	UpdateSession(ctx context.Context, input *UpdateSessionInput) (*UpdateSessionOutput, error)

	// CancelSession marks a session Cancelled without touching its
	// capacity or existing bookings
	CancelSession(ctx context.Context, input *CancelSessionInput) (*CancelSessionOutput, error)

	// DeleteSession hard-removes a session. Bookings referencing it
	// are left in place.
	DeleteSession(ctx context.Context, input *DeleteSessionInput) error

	// GetSession retrieves a session by ID
	GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error)

	// ListSessions retrieves the full catalog ordered by schedule date
	ListSessions(ctx context.Context, input *ListSessionsInput) (*ListSessionsOutput, error)

	// ListBookableSessions retrieves Active sessions with free slots
	ListBookableSessions(ctx context.Context, input *ListBookableSessionsInput) (*ListBookableSessionsOutput, error)
}
