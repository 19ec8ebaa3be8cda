package accounts

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/ironvale/gymd/internal/services/accounts Service

import "context"

// Service defines the interface for user account management
type Service interface {
	// ListUsers retrieves all accounts
	ListUsers(ctx context.Context, input *ListUsersInput) (*ListUsersOutput, error)

	// GetUser retrieves one account by ID
	GetUser(ctx context.Context, input *GetUserInput) (*GetUserOutput, error)

	// UpdateUser applies a patch to an account. Email is immutable.
	UpdateUser(ctx context.Context, input *UpdateUserInput) (*UpdateUserOutput, error)

	// DeleteUser hard-removes an account
	DeleteUser(ctx context.Context, input *DeleteUserInput) error
}
