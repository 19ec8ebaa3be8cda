package user

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/ironvale/gymd/internal/repositories/user Repository

import (
	"context"

	"github.com/ironvale/gymd/internal/models"
)

// Repository defines the interface for user account persistence
type Repository interface {
	// CreateUser inserts a new user, enforcing email uniqueness
	CreateUser(ctx context.Context, input *CreateUserInput) error

	// SaveUser re-persists an existing user document
	SaveUser(ctx context.Context, input *SaveUserInput) error

	// GetUser retrieves a user by ID
	GetUser(ctx context.Context, input *GetUserInput) (*models.User, error)

	// GetUserByEmail retrieves a user via the email index
	GetUserByEmail(ctx context.Context, input *GetUserByEmailInput) (*models.User, error)

	// ListUsers retrieves all user accounts
	ListUsers(ctx context.Context, input *ListUsersInput) (*ListUsersOutput, error)

	// DeleteUser hard-removes a user and its email index entry
	DeleteUser(ctx context.Context, input *DeleteUserInput) error
}
