package models

import (
	"time"
)

// SessionKind represents the type of bookable activity
type SessionKind string

const (
	// SessionKindBoxing is a coached boxing class
	SessionKindBoxing SessionKind = "Boxing"

	// SessionKindSauna is a sauna time slot
	SessionKindSauna SessionKind = "Sauna"
)

// ValidSessionKind reports whether k is a known session kind
func ValidSessionKind(k SessionKind) bool {
	return k == SessionKindBoxing || k == SessionKindSauna
}

// SessionStatus represents the lifecycle state of a session
type SessionStatus string

const (
	// SessionStatusActive indicates a session that is open for booking
	SessionStatusActive SessionStatus = "Active"

	// SessionStatusCancelled indicates a session cancelled by staff.
	// Cancelled is terminal.
	SessionStatusCancelled SessionStatus = "Cancelled"

	// SessionStatusCompleted indicates a session whose schedule has
	// elapsed. Completed is terminal.
	SessionStatusCompleted SessionStatus = "Completed"
)

// ValidSessionStatus reports whether s is a known session status
func ValidSessionStatus(s SessionStatus) bool {
	switch s {
	case SessionStatusActive, SessionStatusCancelled, SessionStatusCompleted:
		return true
	}
	return false
}

// Session represents a scheduled, capacity-limited bookable activity
type Session struct {
	// ID is the unique identifier for the session
	ID string `json:"id"`

	// Kind is the type of activity (Boxing or Sauna)
	Kind SessionKind `json:"kind"`

	// Name is the session's display name
	Name string `json:"name"`

	// ScheduleDate is the calendar date the session takes place
	ScheduleDate time.Time `json:"scheduleDate"`

	// StartTime is the wall-clock start time, e.g. "18:00"
	StartTime string `json:"startTime"`

	// EndTime is the wall-clock end time, e.g. "19:00"
	EndTime string `json:"endTime"`

	// MaxCapacity is the number of bookable slots. Immutable after
	// creation.
	MaxCapacity int `json:"maxCapacity"`

	// AvailableSlots is the remaining capacity. Always within
	// [0, MaxCapacity].
	AvailableSlots int `json:"availableSlots"`

	// Temperature is the sauna temperature in Celsius. Zero for
	// boxing sessions.
	Temperature int `json:"temperature,omitempty"`

	// Description is optional free text shown to members
	Description string `json:"description,omitempty"`

	// Status is the lifecycle state of the session
	Status SessionStatus `json:"status"`

	// CreatedBy is the ID of the staff member or admin who created
	// the session. Immutable.
	CreatedBy string `json:"createdBy"`

	// CreatedAt is when the session was created
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is when the session was last updated
	UpdatedAt time.Time `json:"updatedAt"`
}
