package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ironvale/gymd/internal/models"
	"github.com/ironvale/gymd/internal/services/accounts"
	"github.com/ironvale/gymd/internal/services/policy"
)

type updateUserRequest struct {
	Name             *string                  `json:"name"`
	Phone            *string                  `json:"phone"`
	MembershipStatus *models.MembershipStatus `json:"membershipStatus"`
	Roles            []models.Role            `json:"roles"`
}

func (h *Handler) listUsers(c *gin.Context) {
	out, err := h.accounts.ListUsers(c.Request.Context(), &accounts.ListUsersInput{})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": toUserViews(out.Users)})
}

func (h *Handler) getUser(c *gin.Context) {
	userID := c.Param("id")
	if err := requireSelfOrAdmin(c, userID); err != nil {
		writeError(c, err)
		return
	}

	out, err := h.accounts.GetUser(c.Request.Context(), &accounts.GetUserInput{
		UserID: userID,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": toUserView(out.User)})
}

func (h *Handler) updateUser(c *gin.Context) {
	userID := c.Param("id")
	if err := requireSelfOrAdmin(c, userID); err != nil {
		writeError(c, err)
		return
	}

	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	// Only admins may grant or revoke roles or flip membership status;
	// members can edit their own contact details.
	if req.Roles != nil || req.MembershipStatus != nil {
		if err := policy.RequireRole(caller(c), models.RoleAdmin); err != nil {
			writeError(c, err)
			return
		}
	}

	out, err := h.accounts.UpdateUser(c.Request.Context(), &accounts.UpdateUserInput{
		UserID:           userID,
		Name:             req.Name,
		Phone:            req.Phone,
		MembershipStatus: req.MembershipStatus,
		Roles:            req.Roles,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": toUserView(out.User)})
}

func (h *Handler) deleteUser(c *gin.Context) {
	err := h.accounts.DeleteUser(c.Request.Context(), &accounts.DeleteUserInput{
		UserID: c.Param("id"),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "user deleted"})
}

// requireSelfOrAdmin authorizes operations on an account: the account
// owner and admins pass, everyone else is refused.
func requireSelfOrAdmin(c *gin.Context, userID string) error {
	id := caller(c)
	if err := policy.RequireAuthenticated(id); err != nil {
		return err
	}

	if id.ID == userID {
		return nil
	}

	return policy.RequireRole(id, models.RoleAdmin)
}
