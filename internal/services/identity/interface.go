package identity

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/ironvale/gymd/internal/services/identity Service

import "context"

// Service defines the interface for account authentication: it issues
// and validates the bearer credentials the rest of the system consumes
// as decoded identities.
type Service interface {
	// Register creates a new member account and issues a token
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// Login verifies credentials and issues a token
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// VerifyToken validates a bearer token and returns the decoded
	// identity with a normalized role set
	VerifyToken(ctx context.Context, input *VerifyTokenInput) (*VerifyTokenOutput, error)
}
