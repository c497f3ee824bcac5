package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"washlane/models"
	"washlane/services/order"
)

// OrderHandler exposes the order lifecycle tracker.
type OrderHandler struct {
	Svc order.TrackingService
}

func NewOrderHandler(svc order.TrackingService) *OrderHandler {
	return &OrderHandler{Svc: svc}
}

// GetOrderHandler returns a single order record.
func (h *OrderHandler) GetOrderHandler(c *gin.Context) {
	ord, err := h.Svc.GetOrder(c.Request.Context(), c.Param("orderID"))
	if err != nil {
		h.orderError(c, err)
		return
	}
	c.JSON(http.StatusOK, ord)
}

// ListOrdersHandler returns a user's orders, newest first.
func (h *OrderHandler) ListOrdersHandler(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId query parameter is required"})
		return
	}
	orders, err := h.Svc.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.orderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// GetTimelineHandler returns the derived status timeline for an order.
func (h *OrderHandler) GetTimelineHandler(c *gin.Context) {
	snapshot, err := h.Svc.Timeline(c.Request.Context(), c.Param("orderID"))
	if err != nil {
		h.orderError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// UpdateStatusHandler records a status transition requested by the fulfilment
// side, enforcing the ordering table.
func (h *OrderHandler) UpdateStatusHandler(c *gin.Context) {
	var input struct {
		Status models.OrderStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	ord, err := h.Svc.UpdateStatus(c.Request.Context(), c.Param("orderID"), input.Status)
	if err != nil {
		h.orderError(c, err)
		return
	}
	c.JSON(http.StatusOK, ord)
}

func (h *OrderHandler) orderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, order.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, order.ErrIllegalTransition):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
