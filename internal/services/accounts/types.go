package accounts

import (
	"github.com/ironvale/gymd/internal/common/clock"
	"github.com/ironvale/gymd/internal/models"
	userRepo "github.com/ironvale/gymd/internal/repositories/user"
)

// Config holds configuration for the accounts service
type Config struct {
	// Repository dependencies
	UserRepo userRepo.Repository

	// Service dependencies
	Clock clock.Clock
}

type ListUsersInput struct {
}

type ListUsersOutput struct {
	Users []*models.User
}

type GetUserInput struct {
	UserID string
}

type GetUserOutput struct {
	User *models.User
}

// UpdateUserInput contains a patch for an account. Nil fields are left
// unchanged. Roles patches are restricted to admin callers by the
// transport layer.
type UpdateUserInput struct {
	UserID string

	Name             *string
	Phone            *string
	MembershipStatus *models.MembershipStatus
	Roles            []models.Role
}

type UpdateUserOutput struct {
	User *models.User
}

type DeleteUserInput struct {
	UserID string
}
