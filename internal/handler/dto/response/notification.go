package response

import (
	"careerlaunch/internal/domain/notification"
	"careerlaunch/internal/state"
)

type NotificationListResponse struct {
	Notifications []notification.Notification `json:"notifications"`
	UnreadCount   int                         `json:"unreadCount"`
	IsLoading     bool                        `json:"isLoading"`
}

type UnreadCountResponse struct {
	UnreadCount int `json:"unreadCount"`
}

func FromNotificationSnapshot(s state.NotificationSnapshot) NotificationListResponse {
	return NotificationListResponse{
		Notifications: s.Notifications,
		UnreadCount:   s.UnreadCount,
		IsLoading:     s.IsLoading,
	}
}
