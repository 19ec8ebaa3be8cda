package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ironvale/gymd/internal/services/ledger"
	"github.com/ironvale/gymd/internal/services/registry"
)

func (h *Handler) listBookableSessions(c *gin.Context) {
	out, err := h.registry.ListBookableSessions(c.Request.Context(), &registry.ListBookableSessionsInput{
		Kind: kindFromQuery(c),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": out.Sessions})
}

func (h *Handler) bookSession(c *gin.Context) {
	out, err := h.ledger.BookSession(c.Request.Context(), &ledger.BookSessionInput{
		SessionID: c.Param("id"),
		MemberID:  caller(c).ID,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"data":    out.Booking,
		"session": out.Session,
	})
}

func (h *Handler) listMyBookings(c *gin.Context) {
	out, err := h.ledger.ListMemberBookings(c.Request.Context(), &ledger.ListMemberBookingsInput{
		MemberID: caller(c).ID,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": out.Bookings})
}

func (h *Handler) cancelBooking(c *gin.Context) {
	out, err := h.ledger.CancelBooking(c.Request.Context(), &ledger.CancelBookingInput{
		BookingID: c.Param("id"),
		MemberID:  caller(c).ID,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": out.Booking})
}
