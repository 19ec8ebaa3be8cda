package models

import (
	"time"
)

// MembershipStatus represents the state of a member's gym membership
type MembershipStatus string

const (
	// MembershipStatusActive indicates a paid-up membership
	MembershipStatusActive MembershipStatus = "Active"

	// MembershipStatusExpired indicates a lapsed membership
	MembershipStatusExpired MembershipStatus = "Expired"

	// MembershipStatusPending indicates a membership awaiting activation
	MembershipStatusPending MembershipStatus = "Pending"
)

// ValidMembershipStatus reports whether s is a known membership status
func ValidMembershipStatus(s MembershipStatus) bool {
	switch s {
	case MembershipStatusActive, MembershipStatusExpired, MembershipStatusPending:
		return true
	}
	return false
}

// User represents a gym account: a member, staff member, or admin
type User struct {
	// ID is the unique identifier for the user
	ID string `json:"id"`

	// Name is the user's display name
	Name string `json:"name"`

	// Email is the user's unique email address
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the user's password. It is
	// stored with the document and must never be rendered by the API.
	PasswordHash string `json:"passwordHash"`

	// Roles is the set of roles held by the user
	Roles []Role `json:"roles"`

	// MembershipStatus is the state of the user's membership
	MembershipStatus MembershipStatus `json:"membershipStatus"`

	// Phone is the user's contact number
	Phone string `json:"phone"`

	// CreatedAt is when the account was created
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is when the account was last updated
	UpdatedAt time.Time `json:"updatedAt"`
}

// Identity returns the decoded identity corresponding to this user
func (u *User) Identity() *Identity {
	return &Identity{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Roles: u.Roles,
	}
}
