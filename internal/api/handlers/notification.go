package handlers

import (
	"net/http"

	"inspection-scheduler-backend/internal/auth"
	"inspection-scheduler-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// NotificationHandler serves the caller's inbox
type NotificationHandler struct {
	notificationService service.NotificationServiceInterface
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(notificationService service.NotificationServiceInterface) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// ListNotifications handles GET /api/notifications
// @Summary List my notifications
// @Description Newest first. Shift notifications are hidden once the caller is no longer an inspector of that shift.
// @Tags notifications
// @Produce json
// @Success 200 {array} models.Notification
// @Security BearerAuth
// @Router /api/notifications [get]
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	userID, _ := auth.GetUserID(c)

	notifications, err := h.notificationService.List(userID)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, notifications)
}

// UnreadCount handles GET /api/notifications/unread-count
// @Summary Count unread notifications
// @Tags notifications
// @Produce json
// @Success 200 {object} map[string]interface{} "count"
// @Security BearerAuth
// @Router /api/notifications/unread-count [get]
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	userID, _ := auth.GetUserID(c)

	count, err := h.notificationService.UnreadCount(userID)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

// MarkRead handles POST /api/notifications/:id/read
// @Summary Mark a notification read
// @Tags notifications
// @Param id path string true "Notification ID (UUID)"
// @Success 204 "Marked read"
// @Failure 404 {object} ErrorResponse "Notification not found"
// @Security BearerAuth
// @Router /api/notifications/{id}/read [post]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, ok := uuidParam(c, "id", "notification")
	if !ok {
		return
	}
	userID, _ := auth.GetUserID(c)

	if err := h.notificationService.MarkRead(id, userID); err != nil {
		handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// MarkAllRead handles POST /api/notifications/read-all
// @Summary Mark every notification read
// @Tags notifications
// @Produce json
// @Success 200 {object} map[string]interface{} "updated"
// @Security BearerAuth
// @Router /api/notifications/read-all [post]
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	userID, _ := auth.GetUserID(c)

	updated, err := h.notificationService.MarkAllRead(userID)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": updated})
}
