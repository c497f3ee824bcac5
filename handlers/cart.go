package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"washlane/models"
	"washlane/services/cart"
)

// CartHandler exposes the session-scoped catalog cart.
type CartHandler struct {
	Svc cart.CartService
}

func NewCartHandler(svc cart.CartService) *CartHandler {
	return &CartHandler{Svc: svc}
}

// OpenCartHandler creates a new cart session.
func (h *CartHandler) OpenCartHandler(c *gin.Context) {
	var input struct {
		UserID string `json:"userId"`
	}
	// Body is optional; an anonymous cart is fine.
	_ = c.ShouldBindJSON(&input)

	crt, err := h.Svc.Open(c.Request.Context(), input.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to open cart", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessionID": crt.SessionID})
}

// GetCartHandler returns the priced cart summary.
func (h *CartHandler) GetCartHandler(c *gin.Context) {
	summary, err := h.Svc.Summarize(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.cartError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// IncrementHandler raises an item's quantity by one.
func (h *CartHandler) IncrementHandler(c *gin.Context) {
	h.mutate(c, func(sessionID, itemName string) (*models.Cart, error) {
		return h.Svc.Increment(c.Request.Context(), sessionID, itemName)
	})
}

// DecrementHandler lowers an item's quantity by one; at 1 the line disappears.
func (h *CartHandler) DecrementHandler(c *gin.Context) {
	h.mutate(c, func(sessionID, itemName string) (*models.Cart, error) {
		return h.Svc.Decrement(c.Request.Context(), sessionID, itemName)
	})
}

// SetQuantityHandler sets an explicit quantity; negatives are rejected.
func (h *CartHandler) SetQuantityHandler(c *gin.Context) {
	var input struct {
		ItemName string `json:"itemName" binding:"required"`
		Quantity int    `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	crt, err := h.Svc.SetQuantity(c.Request.Context(), c.Param("sessionID"), input.ItemName, input.Quantity)
	if err != nil {
		h.cartError(c, err)
		return
	}
	c.JSON(http.StatusOK, crt)
}

// ClearHandler empties the cart.
func (h *CartHandler) ClearHandler(c *gin.Context) {
	crt, err := h.Svc.Clear(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.cartError(c, err)
		return
	}
	c.JSON(http.StatusOK, crt)
}

func (h *CartHandler) mutate(c *gin.Context, op func(sessionID, itemName string) (*models.Cart, error)) {
	var input struct {
		ItemName string `json:"itemName" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	crt, err := op(c.Param("sessionID"), input.ItemName)
	if err != nil {
		h.cartError(c, err)
		return
	}
	c.JSON(http.StatusOK, crt)
}

func (h *CartHandler) cartError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, cart.ErrCartNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, cart.ErrUnknownItem), errors.Is(err, models.ErrNegativeQuantity):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
