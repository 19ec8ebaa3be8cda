// Package policy authorizes operations given a decoded identity and a
// required capability set. It makes decisions only; resolving the
// identity from a credential is the identity service's job.
package policy

import (
	"github.com/ironvale/gymd/internal/models"
)

// PolicyError is a custom error type for authorization failures
type PolicyError string

// Error implements the error interface
func (e PolicyError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrUnauthenticated PolicyError = "authentication required"
	ErrForbidden       PolicyError = "access denied"
)

// RequireAuthenticated fails when no identity was resolved
func RequireAuthenticated(identity *models.Identity) error {
	if identity == nil || identity.ID == "" {
		return ErrUnauthenticated
	}

	return nil
}

// RequireRole fails unless the identity holds at least one of the
// allowed roles. Role membership is always a set test: an identity
// decoded from a single-valued role claim and one decoded from an
// array behave identically here.
func RequireRole(identity *models.Identity, allowed ...models.Role) error {
	if err := RequireAuthenticated(identity); err != nil {
		return err
	}

	if !identity.HasAnyRole(allowed...) {
		return ErrForbidden
	}

	return nil
}
