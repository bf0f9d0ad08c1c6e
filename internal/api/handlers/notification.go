package handlers

import (
	"net/http"
	"strconv"

	"k9-duty-backend/internal/auth"
	"k9-duty-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// NotificationHandler handles HTTP requests for the authenticated employee's
// notifications
type NotificationHandler struct {
	service service.NotificationServiceInterface
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(service service.NotificationServiceInterface) *NotificationHandler {
	return &NotificationHandler{service: service}
}

// ListNotifications handles GET /api/v1/notifications?limit=&offset=
// @Summary List notifications
// @Description List the authenticated employee's notifications, newest first
// @Tags notifications
// @Produce json
// @Param limit query int false "Page size (default 20, max 100)"
// @Param offset query int false "Page offset"
// @Success 200 {object} service.NotificationListResponse "Notifications"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /notifications [get]
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	recipientID, ok := auth.GetEmployeeID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	notifications, err := h.service.ListAll(recipientID, limit, offset)
	if err != nil {
		respondError(c, err, "Failed to list notifications")
		return
	}

	c.JSON(http.StatusOK, notifications)
}

// ListUnread handles GET /api/v1/notifications/unread?limit=
// @Summary List unread notifications
// @Tags notifications
// @Produce json
// @Param limit query int false "Maximum notifications returned (default 20, max 100)"
// @Success 200 {array} service.NotificationResponse "Unread notifications"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /notifications/unread [get]
func (h *NotificationHandler) ListUnread(c *gin.Context) {
	recipientID, ok := auth.GetEmployeeID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	notifications, err := h.service.ListUnread(recipientID, limit)
	if err != nil {
		respondError(c, err, "Failed to list unread notifications")
		return
	}

	c.JSON(http.StatusOK, notifications)
}

// UnreadCount handles GET /api/v1/notifications/unread/count
// @Summary Count unread notifications
// @Tags notifications
// @Produce json
// @Success 200 {object} map[string]interface{} "Unread count"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /notifications/unread/count [get]
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	recipientID, ok := auth.GetEmployeeID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	count, err := h.service.UnreadCount(recipientID)
	if err != nil {
		respondError(c, err, "Failed to count unread notifications")
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}

// MarkRead handles POST /api/v1/notifications/:id/read
// @Summary Mark a notification read
// @Description Mark a notification read. Marking an already read notification is a no-op.
// @Tags notifications
// @Produce json
// @Param id path string true "Notification ID (UUID)"
// @Success 204 "Notification is read"
// @Failure 400 {object} map[string]interface{} "Invalid notification ID"
// @Failure 404 {object} map[string]interface{} "Notification not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /notifications/{id}/read [post]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid notification ID: invalid UUID format"})
		return
	}

	if err := h.service.MarkRead(id); err != nil {
		respondError(c, err, "Failed to mark notification read")
		return
	}

	c.Status(http.StatusNoContent)
}

// MarkAllRead handles POST /api/v1/notifications/read-all
// @Summary Mark all notifications read
// @Tags notifications
// @Produce json
// @Success 200 {object} map[string]interface{} "Number of notifications marked"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /notifications/read-all [post]
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	recipientID, ok := auth.GetEmployeeID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	marked, err := h.service.MarkAllRead(recipientID)
	if err != nil {
		respondError(c, err, "Failed to mark notifications read")
		return
	}

	c.JSON(http.StatusOK, gin.H{"marked": marked})
}
