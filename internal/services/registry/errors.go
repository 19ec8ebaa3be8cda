package registry

// RegistryError is a custom error type for session catalog errors
type RegistryError string

// Error implements the error interface
func (e RegistryError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrSessionNotFound  RegistryError = "session not found"
	ErrValidation       RegistryError = "invalid session data"
	ErrNilConfig        RegistryError = "config cannot be nil"
	ErrNilSessionRepo   RegistryError = "session repository cannot be nil"
	ErrNilClock         RegistryError = "clock cannot be nil"
	ErrNilUUIDGenerator RegistryError = "UUID generator cannot be nil"
)
