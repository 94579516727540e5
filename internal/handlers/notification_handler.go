package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pocketledger/internal/services"
)

// NotificationHandler handles notification requests.
type NotificationHandler struct {
	notificationService services.NotificationServicer
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(notificationService services.NotificationServicer) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// GetNotifications handles listing notifications, optionally unread only.
func (h *NotificationHandler) GetNotifications(c *gin.Context) {
	unreadOnly := c.Query("unread") == "true"
	c.JSON(http.StatusOK, gin.H{"notifications": h.notificationService.GetNotifications(unreadOnly)})
}

// MarkRead handles marking one notification as read.
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	notification, err := h.notificationService.MarkRead(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"notification": notification})
}

// MarkAllRead handles marking every notification as read.
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	if err := h.notificationService.MarkAllRead(); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "All notifications marked read"})
}

// DeleteNotification handles removing a notification.
func (h *NotificationHandler) DeleteNotification(c *gin.Context) {
	if err := h.notificationService.DeleteNotification(c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notification deleted successfully"})
}

// RunChecks handles triggering the detection sweeps.
func (h *NotificationHandler) RunChecks(c *gin.Context) {
	created, err := h.notificationService.RunChecks()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"created": created})
}
