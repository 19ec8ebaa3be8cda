package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ironvale/gymd/internal/services/identity"
)

// tokenCookieMaxAge keeps the cookie alive as long as the longest
// token we issue.
const tokenCookieMaxAge = int(24 * 60 * 60)

type registerRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Phone           string `json:"phone"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	if req.ConfirmPassword != "" && req.ConfirmPassword != req.Password {
		badRequest(c, "passwords do not match")
		return
	}

	out, err := h.identity.Register(c.Request.Context(), &identity.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	setTokenCookie(c, out.Token)
	c.JSON(http.StatusCreated, gin.H{
		"data":  toUserView(out.User),
		"token": out.Token,
	})
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	out, err := h.identity.Login(c.Request.Context(), &identity.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	setTokenCookie(c, out.Token)
	c.JSON(http.StatusOK, gin.H{
		"data":  toUserView(out.User),
		"token": out.Token,
	})
}

func setTokenCookie(c *gin.Context, token string) {
	c.SetCookie(tokenCookie, token, tokenCookieMaxAge, "/", "", false, true)
}
