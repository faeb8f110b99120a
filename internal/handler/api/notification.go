package api

import (
	"net/http"

	reqdto "careerlaunch/internal/handler/dto/request"
	resdto "careerlaunch/internal/handler/dto/response"
	"careerlaunch/internal/handler/httperr"
	"careerlaunch/internal/state"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	notifications *state.Notifications
}

func NewNotificationHandler(notifications *state.Notifications) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

// @Summary List notifications
// @Description Refetch stored notifications, newest first, with the unread count
// @Tags notifications
// @Produce json
// @Success 200 {object} resdto.NotificationListResponse
// @Failure 500 {object} httperr.Response
// @Router /api/notifications [get]
func (h *NotificationHandler) List(c *gin.Context) {
	if err := h.notifications.FetchNotifications(c.Request.Context()); err != nil {
		httperr.Abort(c, err, "Failed to load notifications")
		return
	}
	c.JSON(http.StatusOK, resdto.FromNotificationSnapshot(h.notifications.Snapshot()))
}

// @Summary Send notification
// @Description Create a notification of the given type; rejected when the type is disabled in preferences
// @Tags notifications
// @Accept json
// @Produce json
// @Param request body reqdto.SendNotificationRequest true "Notification type and payload"
// @Success 201 {object} notification.Notification
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/notifications [post]
func (h *NotificationHandler) Send(c *gin.Context) {
	var req reqdto.SendNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	t, data, err := req.ToDomain()
	if err != nil {
		httperr.Abort(c, err, "Invalid notification data")
		return
	}

	n, err := h.notifications.SendNotification(c.Request.Context(), t, data)
	if err != nil {
		httperr.Abort(c, err, "Failed to send notification")
		return
	}
	c.JSON(http.StatusCreated, n)
}

// @Summary Mark notification as read
// @Tags notifications
// @Produce json
// @Param id path string true "Notification ID"
// @Success 200 {object} resdto.UnreadCountResponse
// @Failure 500 {object} httperr.Response
// @Router /api/notifications/{id}/read [post]
func (h *NotificationHandler) MarkAsRead(c *gin.Context) {
	if err := h.notifications.MarkAsRead(c.Request.Context(), c.Param("id")); err != nil {
		httperr.Abort(c, err, "Failed to mark notification as read")
		return
	}
	c.JSON(http.StatusOK, resdto.UnreadCountResponse{UnreadCount: h.notifications.Snapshot().UnreadCount})
}

// @Summary Mark all notifications as read
// @Tags notifications
// @Produce json
// @Success 200 {object} resdto.UnreadCountResponse
// @Failure 500 {object} httperr.Response
// @Router /api/notifications/read-all [post]
func (h *NotificationHandler) MarkAllAsRead(c *gin.Context) {
	if err := h.notifications.MarkAllAsRead(c.Request.Context()); err != nil {
		httperr.Abort(c, err, "Failed to mark all notifications as read")
		return
	}
	c.JSON(http.StatusOK, resdto.UnreadCountResponse{UnreadCount: h.notifications.Snapshot().UnreadCount})
}

// @Summary Get notification preferences
// @Tags notifications
// @Produce json
// @Success 200 {object} notification.Preferences
// @Router /api/notifications/preferences [get]
func (h *NotificationHandler) GetPreferences(c *gin.Context) {
	c.JSON(http.StatusOK, h.notifications.Snapshot().Preferences)
}

// @Summary Update notification preferences
// @Description Shallow merge: listed types replace their entry, categories replace when present
// @Tags notifications
// @Accept json
// @Produce json
// @Param request body reqdto.UpdatePreferencesRequest true "Preference patch"
// @Success 200 {object} notification.Preferences
// @Failure 400 {object} httperr.Response
// @Router /api/notifications/preferences [patch]
func (h *NotificationHandler) UpdatePreferences(c *gin.Context) {
	var req reqdto.UpdatePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	prefs, err := h.notifications.UpdatePreferences(c.Request.Context(), req.ToDomain())
	if err != nil {
		httperr.Abort(c, err, "Failed to update preferences")
		return
	}
	c.JSON(http.StatusOK, prefs)
}
