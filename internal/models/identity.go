package models

// Role represents an access role held by a user
type Role string

const (
	// RoleMember is a regular gym member
	RoleMember Role = "MEMBER"

	// RoleStaff is a staff member who manages sessions
	RoleStaff Role = "STAFF"

	// RoleAdmin is an administrator with full access
	RoleAdmin Role = "ADMIN"
)

// ValidRole reports whether r is a known role value
func ValidRole(r Role) bool {
	switch r {
	case RoleMember, RoleStaff, RoleAdmin:
		return true
	}
	return false
}

// Identity is the decoded caller resolved from a bearer credential.
// Roles is always a normalized set, regardless of whether the token
// carried a single role value or an array.
type Identity struct {
	// ID is the unique identifier of the authenticated user
	ID string

	// Name is the display name carried in the credential
	Name string

	// Email is the email address carried in the credential
	Email string

	// Roles is the set of roles held by the caller
	Roles []Role
}

// HasAnyRole reports whether the identity holds at least one of the
// given roles
func (i *Identity) HasAnyRole(allowed ...Role) bool {
	if i == nil {
		return false
	}

	for _, have := range i.Roles {
		for _, want := range allowed {
			if have == want {
				return true
			}
		}
	}

	return false
}
