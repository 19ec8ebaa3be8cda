package identity

import (
	"time"

	"github.com/ironvale/gymd/internal/common/clock"
	"github.com/ironvale/gymd/internal/common/uuid"
	"github.com/ironvale/gymd/internal/models"
	userRepo "github.com/ironvale/gymd/internal/repositories/user"
)

const (
	// MinPasswordLength is the minimum accepted password length
	MinPasswordLength = 8

	// DefaultTokenTTL is used when the config does not set one
	DefaultTokenTTL = 24 * time.Hour
)

// Config holds configuration for the identity service
type Config struct {
	// Repository dependencies
	UserRepo userRepo.Repository

	// Service dependencies
	Clock         clock.Clock
	UUIDGenerator uuid.UUID

	// Secret signs issued tokens (HS256)
	Secret string

	// TokenTTL bounds the lifetime of issued tokens
	TokenTTL time.Duration
}

// RegisterInput contains parameters for creating an account
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
}

// RegisterOutput contains the created account and its first token
type RegisterOutput struct {
	User  *models.User
	Token string
}

// LoginInput contains login credentials
type LoginInput struct {
	Email    string
	Password string
}

// LoginOutput contains the authenticated account and a fresh token
type LoginOutput struct {
	User  *models.User
	Token string
}

// VerifyTokenInput contains the raw bearer token
type VerifyTokenInput struct {
	Token string
}

// VerifyTokenOutput contains the decoded identity
type VerifyTokenOutput struct {
	Identity *models.Identity
}
