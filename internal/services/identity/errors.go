package identity

// IdentityError is a custom error type for authentication errors
type IdentityError string

// Error implements the error interface
func (e IdentityError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrInvalidCredentials IdentityError = "invalid email or password"
	ErrInvalidToken       IdentityError = "invalid token"
	ErrExpiredToken       IdentityError = "token has expired"
	ErrEmailInUse         IdentityError = "email already registered"
	ErrValidation         IdentityError = "invalid registration data"
	ErrNilConfig          IdentityError = "config cannot be nil"
	ErrNilUserRepo        IdentityError = "user repository cannot be nil"
	ErrNilClock           IdentityError = "clock cannot be nil"
	ErrNilUUIDGenerator   IdentityError = "UUID generator cannot be nil"
	ErrEmptySecret        IdentityError = "signing secret cannot be empty"
)
