package accounts

// AccountsError is a custom error type for account management errors
type AccountsError string

// Error implements the error interface
func (e AccountsError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrUserNotFound AccountsError = "user not found"
	ErrValidation   AccountsError = "invalid account data"
	ErrNilConfig    AccountsError = "config cannot be nil"
	ErrNilUserRepo  AccountsError = "user repository cannot be nil"
	ErrNilClock     AccountsError = "clock cannot be nil"
)
