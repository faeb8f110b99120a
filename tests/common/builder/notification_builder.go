//go:build unit || e2e

package builder

import (
	"encoding/json"
	"time"

	"careerlaunch/internal/domain/notification"
	reqdto "careerlaunch/internal/handler/dto/request"
)

type NotificationBuilder struct {
	ID        string
	Type      notification.Type
	Data      notification.Payload
	Read      bool
	Timestamp time.Time
}

func NewNotificationBuilder() *NotificationBuilder {
	return &NotificationBuilder{
		ID:   "0190c0de-0000-7000-8000-000000000001",
		Type: notification.TypeApplicationSubmission,
		Data: notification.ApplicationData{
			UserName: "Ada",
			JobTitle: "Backend Engineer",
			Company:  "Acme Corp",
		},
		Timestamp: time.Date(2026, 3, 16, 9, 0, 0, 0, time.UTC),
	}
}

func (b *NotificationBuilder) With(mutate func(*NotificationBuilder)) *NotificationBuilder {
	mutate(b)
	return b
}

func (b *NotificationBuilder) AsRead() *NotificationBuilder {
	b.Read = true
	return b
}

// Build methods
func (b *NotificationBuilder) BuildDomain() (notification.Notification, error) {
	n, err := notification.New(b.ID, b.Type, b.Data, notification.DefaultPreferences(), b.Timestamp)
	if err != nil {
		return notification.Notification{}, err
	}
	n.Read = b.Read
	return n, nil
}

func (b *NotificationBuilder) BuildSendRequestDTO() (reqdto.SendNotificationRequest, error) {
	raw, err := json.Marshal(b.Data)
	if err != nil {
		return reqdto.SendNotificationRequest{}, err
	}
	return reqdto.SendNotificationRequest{Type: b.Type, Data: raw}, nil
}
