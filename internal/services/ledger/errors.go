package ledger

// LedgerError is a custom error type for booking ledger errors
type LedgerError string

// Error implements the error interface
func (e LedgerError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrSessionNotFound  LedgerError = "session not found"
	ErrSessionNotActive LedgerError = "session is not active or has been cancelled"
	ErrSessionFull      LedgerError = "session is full"
	ErrDuplicateBooking LedgerError = "you have already booked this session"
	ErrBookingNotFound  LedgerError = "booking not found"
	ErrAlreadyCancelled LedgerError = "booking is already cancelled"
	ErrValidation       LedgerError = "invalid booking request"
	ErrNilConfig        LedgerError = "config cannot be nil"
	ErrNilBookingRepo   LedgerError = "booking repository cannot be nil"
	ErrNilSessionRepo   LedgerError = "session repository cannot be nil"
	ErrNilClock         LedgerError = "clock cannot be nil"
	ErrNilUUIDGenerator LedgerError = "UUID generator cannot be nil"
)
