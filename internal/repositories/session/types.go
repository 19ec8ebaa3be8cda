package session

import "github.com/ironvale/gymd/internal/models"

type SaveSessionInput struct {
	Session *models.Session
}

type GetSessionInput struct {
	SessionID string
}

type ListSessionsInput struct {
	// Kind filters the listing to one session kind when set
	Kind models.SessionKind
}

type ListSessionsOutput struct {
	Sessions []*models.Session
}

type DeleteSessionInput struct {
	SessionID string
}
