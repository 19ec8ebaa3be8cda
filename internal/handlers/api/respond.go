package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ironvale/gymd/internal/services/accounts"
	"github.com/ironvale/gymd/internal/services/identity"
	"github.com/ironvale/gymd/internal/services/ledger"
	"github.com/ironvale/gymd/internal/services/policy"
	"github.com/ironvale/gymd/internal/services/registry"
)

// statusFor maps domain errors onto HTTP status codes. Unknown errors
// are treated as internal.
func statusFor(err error) int {
	switch {
	case errors.Is(err, registry.ErrSessionNotFound),
		errors.Is(err, ledger.ErrSessionNotFound),
		errors.Is(err, ledger.ErrBookingNotFound),
		errors.Is(err, accounts.ErrUserNotFound):
		return http.StatusNotFound

	case errors.Is(err, registry.ErrValidation),
		errors.Is(err, ledger.ErrValidation),
		errors.Is(err, ledger.ErrSessionNotActive),
		errors.Is(err, ledger.ErrSessionFull),
		errors.Is(err, ledger.ErrDuplicateBooking),
		errors.Is(err, ledger.ErrAlreadyCancelled),
		errors.Is(err, accounts.ErrValidation),
		errors.Is(err, identity.ErrValidation),
		errors.Is(err, identity.ErrEmailInUse):
		return http.StatusBadRequest

	case errors.Is(err, policy.ErrUnauthenticated),
		errors.Is(err, identity.ErrInvalidCredentials),
		errors.Is(err, identity.ErrInvalidToken),
		errors.Is(err, identity.ErrExpiredToken):
		return http.StatusUnauthorized

	case errors.Is(err, policy.ErrForbidden):
		return http.StatusForbidden
	}

	return http.StatusInternalServerError
}

// writeError renders a domain error as a JSON response. Internal
// errors are logged and masked.
func writeError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.Printf("internal error handling %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(status, gin.H{"message": "internal server error"})
		return
	}

	c.JSON(status, gin.H{"message": err.Error()})
}

// abortWithError is writeError for middleware
func abortWithError(c *gin.Context, err error) {
	writeError(c, err)
	c.Abort()
}

// badRequest rejects malformed request bodies and parameters
func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"message": msg})
}
