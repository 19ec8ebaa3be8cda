package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ironvale/gymd/internal/models"
	"github.com/ironvale/gymd/internal/services/registry"
)

type createSessionRequest struct {
	Kind         models.SessionKind `json:"kind"`
	Name         string             `json:"name"`
	ScheduleDate time.Time          `json:"scheduleDate"`
	StartTime    string             `json:"startTime"`
	EndTime      string             `json:"endTime"`
	MaxCapacity  int                `json:"maxCapacity"`
	Temperature  int                `json:"temperature"`
	Description  string             `json:"description"`
}

type updateSessionRequest struct {
	Name         *string               `json:"name"`
	ScheduleDate *time.Time            `json:"scheduleDate"`
	StartTime    *string               `json:"startTime"`
	EndTime      *string               `json:"endTime"`
	Temperature  *int                  `json:"temperature"`
	Description  *string               `json:"description"`
	Status       *models.SessionStatus `json:"status"`
}

func (h *Handler) createSession(c *gin.Context) {
	var req createSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	out, err := h.registry.CreateSession(c.Request.Context(), &registry.CreateSessionInput{
		Kind:         req.Kind,
		Name:         req.Name,
		ScheduleDate: req.ScheduleDate,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		MaxCapacity:  req.MaxCapacity,
		Temperature:  req.Temperature,
		Description:  req.Description,
		CreatedBy:    caller(c).ID,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": out.Session})
}

func (h *Handler) updateSession(c *gin.Context) {
	var req updateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	out, err := h.registry.UpdateSession(c.Request.Context(), &registry.UpdateSessionInput{
		SessionID:    c.Param("id"),
		Name:         req.Name,
		ScheduleDate: req.ScheduleDate,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Temperature:  req.Temperature,
		Description:  req.Description,
		Status:       req.Status,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": out.Session})
}

func (h *Handler) cancelSession(c *gin.Context) {
	out, err := h.registry.CancelSession(c.Request.Context(), &registry.CancelSessionInput{
		SessionID: c.Param("id"),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": out.Session})
}

func (h *Handler) deleteSession(c *gin.Context) {
	err := h.registry.DeleteSession(c.Request.Context(), &registry.DeleteSessionInput{
		SessionID: c.Param("id"),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "session deleted"})
}

func (h *Handler) getSession(c *gin.Context) {
	out, err := h.registry.GetSession(c.Request.Context(), &registry.GetSessionInput{
		SessionID: c.Param("id"),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": out.Session})
}

func (h *Handler) listSessions(c *gin.Context) {
	out, err := h.registry.ListSessions(c.Request.Context(), &registry.ListSessionsInput{
		Kind: kindFromQuery(c),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": out.Sessions})
}
