package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"washlane/models"
	"washlane/services/booking"
)

// BookingHandler exposes the checkout session flow.
type BookingHandler struct {
	Svc    booking.CheckoutService
	Logger *zap.Logger
}

func NewBookingHandler(svc booking.CheckoutService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Svc: svc, Logger: logger}
}

// sessionView is the response shape for a checkout session: the raw session
// plus its derived state, gating flags, and recomputed quote.
func sessionView(session *models.CheckoutSession) gin.H {
	return gin.H{
		"session":       session,
		"state":         session.State(),
		"canSubmit":     session.CanSubmit(),
		"missingFields": session.MissingFields(),
	}
}

// InitiateSession opens a new checkout session in state Empty.
func (h *BookingHandler) InitiateSession(c *gin.Context) {
	var input struct {
		UserID string `json:"userId"`
	}
	_ = c.ShouldBindJSON(&input)

	session, err := h.Svc.InitiateSession(c.Request.Context(), input.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to initiate session", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sessionView(session))
}

// GetSession returns the session with its derived state.
func (h *BookingHandler) GetSession(c *gin.Context) {
	session, err := h.Svc.GetSession(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.sessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionView(session))
}

// UpdateSession applies partial updates (service, schedule, address, notes,
// promotion) to the session.
func (h *BookingHandler) UpdateSession(c *gin.Context) {
	var input booking.UpdateSessionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	session, err := h.Svc.UpdateSession(c.Request.Context(), c.Param("sessionID"), input)
	if err != nil {
		h.sessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionView(session))
}

// AddExtraItem raises an extra item line by one unit.
func (h *BookingHandler) AddExtraItem(c *gin.Context) {
	h.extraItem(c, h.Svc.AddExtraItem)
}

// RemoveExtraItem lowers an extra item line by one unit.
func (h *BookingHandler) RemoveExtraItem(c *gin.Context) {
	h.extraItem(c, h.Svc.RemoveExtraItem)
}

// GetQuote returns the current price breakdown for the session.
func (h *BookingHandler) GetQuote(c *gin.Context) {
	total, err := h.Svc.Quote(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.sessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, total)
}

// Submit hands the assembled booking to the payment/persistence collaborator.
// Validation problems come back as a blocked (not failed) outcome.
func (h *BookingHandler) Submit(c *gin.Context) {
	result, err := h.Svc.Submit(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		var validation *booking.ValidationError
		var submission *booking.SubmissionError
		switch {
		case errors.As(err, &validation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"outcome":       "validation-blocked",
				"canSubmit":     false,
				"missingFields": validation.Missing,
			})
		case errors.As(err, &submission):
			h.Logger.Warn("Booking submission failed", zap.Error(submission.Err))
			c.JSON(http.StatusBadGateway, gin.H{"outcome": "submission-failed", "error": submission.Error()})
		case errors.Is(err, booking.ErrSubmissionInFlight), errors.Is(err, booking.ErrAlreadySubmitted):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			h.sessionError(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"outcome": "success",
		"orderId": result.OrderID,
		"payment": result.Payment,
		"total":   result.Request.Total,
	})
}

// CancelSession discards the checkout session.
func (h *BookingHandler) CancelSession(c *gin.Context) {
	if err := h.Svc.CancelSession(c.Request.Context(), c.Param("sessionID")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

func (h *BookingHandler) extraItem(c *gin.Context, op func(ctx context.Context, sessionID, itemName string) (*models.CheckoutSession, error)) {
	var input struct {
		ItemName string `json:"itemName" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	session, err := op(c.Request.Context(), c.Param("sessionID"), input.ItemName)
	if err != nil {
		h.sessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionView(session))
}

func (h *BookingHandler) sessionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, booking.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, booking.ErrAlreadySubmitted):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
