package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"washlane/services/notification"
)

// NotificationHandler exposes the authoritative unread-count store.
type NotificationHandler struct {
	Store notification.UnreadStore
}

func NewNotificationHandler(store notification.UnreadStore) *NotificationHandler {
	return &NotificationHandler{Store: store}
}

// GetUnreadHandler returns the user's unread notification count.
func (h *NotificationHandler) GetUnreadHandler(c *gin.Context) {
	count, err := h.Store.Unread(c.Request.Context(), c.Param("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"unread": count})
}

// PushUnreadHandler records one new notification.
func (h *NotificationHandler) PushUnreadHandler(c *gin.Context) {
	count, err := h.Store.Push(c.Request.Context(), c.Param("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"unread": count})
}

// MarkSeenHandler resets the user's unread count.
func (h *NotificationHandler) MarkSeenHandler(c *gin.Context) {
	if err := h.Store.MarkSeen(c.Request.Context(), c.Param("userID")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"unread": 0})
}
