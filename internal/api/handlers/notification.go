package handlers

import (
	"net/http"
	"strconv"

	"idea-marketplace-backend/internal/logger"
	"idea-marketplace-backend/internal/realtime"
	"idea-marketplace-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// NotificationHandler handles the caller's notification inbox and its live feed
type NotificationHandler struct {
	notificationService service.NotificationServiceInterface
	hub                 *realtime.Hub
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(notificationService service.NotificationServiceInterface, hub *realtime.Hub) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
		hub:                 hub,
	}
}

// ListNotifications handles GET /notifications
// @Summary List the caller's notifications, newest first
// @Tags notifications
// @Produce json
// @Param unread query bool false "Only unread notifications"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.NotificationListResponse
// @Security BearerAuth
// @Router /notifications [get]
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	email, ok := actorEmail(c)
	if !ok {
		return
	}
	unreadOnly, err := strconv.ParseBool(c.DefaultQuery("unread", "false"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid unread flag"})
		return
	}
	page, pageSize, ok := pageParams(c)
	if !ok {
		return
	}

	list, err := h.notificationService.List(c.Request.Context(), email, unreadOnly, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// UnreadCount handles GET /notifications/unread-count
// @Summary Number of unread notifications
// @Tags notifications
// @Produce json
// @Success 200 {object} map[string]int64
// @Security BearerAuth
// @Router /notifications/unread-count [get]
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	email, ok := actorEmail(c)
	if !ok {
		return
	}

	count, err := h.notificationService.UnreadCount(c.Request.Context(), email)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"unread": count})
}

// MarkRead handles POST /notifications/:id/read
// @Summary Mark one notification read
// @Tags notifications
// @Produce json
// @Param id path string true "Notification ID (UUID)"
// @Success 200 {object} models.Notification
// @Failure 404 {object} ErrorResponse "Notification not found"
// @Security BearerAuth
// @Router /notifications/{id}/read [post]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	email, ok := actorEmail(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "notification")
	if !ok {
		return
	}

	notification, err := h.notificationService.MarkRead(c.Request.Context(), id, email)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, notification)
}

// MarkAllRead handles POST /notifications/read-all
// @Summary Mark every notification of the caller read
// @Tags notifications
// @Produce json
// @Success 200 {object} map[string]int64
// @Security BearerAuth
// @Router /notifications/read-all [post]
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	email, ok := actorEmail(c)
	if !ok {
		return
	}

	updated, err := h.notificationService.MarkAllRead(c.Request.Context(), email)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"updated": updated})
}

// Stream handles GET /ws/notifications
// @Summary Live notification feed over a websocket
// @Description Authenticated with the token query parameter since browsers cannot set headers on upgrades
// @Tags notifications
// @Param token query string true "JWT"
// @Success 101 "Switching Protocols"
// @Router /ws/notifications [get]
func (h *NotificationHandler) Stream(c *gin.Context) {
	email, ok := actorEmail(c)
	if !ok {
		return
	}
	// the upgrader has already written the error response
	if err := h.hub.Serve(c.Writer, c.Request, email); err != nil {
		logger.WithContext(c.Request.Context()).WithError(err).Warn("websocket upgrade failed")
	}
}
