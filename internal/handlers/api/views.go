package api

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ironvale/gymd/internal/models"
)

// kindFromQuery reads the optional ?kind= filter; unknown values mean
// no filter rather than an empty listing.
func kindFromQuery(c *gin.Context) models.SessionKind {
	switch strings.ToLower(c.Query("kind")) {
	case "boxing":
		return models.SessionKindBoxing
	case "sauna":
		return models.SessionKindSauna
	}
	return ""
}

// userView is the API projection of an account. The stored document
// carries the password hash; this type exists so it can never leak.
type userView struct {
	ID               string                  `json:"id"`
	Name             string                  `json:"name"`
	Email            string                  `json:"email"`
	Roles            []models.Role           `json:"roles"`
	MembershipStatus models.MembershipStatus `json:"membershipStatus"`
	Phone            string                  `json:"phone"`
	CreatedAt        time.Time               `json:"createdAt"`
	UpdatedAt        time.Time               `json:"updatedAt"`
}

func toUserView(u *models.User) *userView {
	return &userView{
		ID:               u.ID,
		Name:             u.Name,
		Email:            u.Email,
		Roles:            u.Roles,
		MembershipStatus: u.MembershipStatus,
		Phone:            u.Phone,
		CreatedAt:        u.CreatedAt,
		UpdatedAt:        u.UpdatedAt,
	}
}

func toUserViews(users []*models.User) []*userView {
	views := make([]*userView, 0, len(users))
	for _, u := range users {
		views = append(views, toUserView(u))
	}
	return views
}
