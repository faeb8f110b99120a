package request

import (
	"encoding/json"

	"careerlaunch/internal/domain/notification"
	"careerlaunch/internal/pkg/errs"
)

type SendNotificationRequest struct {
	Type notification.Type `json:"type" binding:"required"`
	Data json.RawMessage   `json:"data" swaggertype:"object"`
}

// ToDomain decodes Data as the payload variant of Type.
func (r *SendNotificationRequest) ToDomain() (notification.Type, notification.Payload, error) {
	data, err := notification.DecodePayload(r.Type, r.Data)
	if err != nil {
		return "", nil, errs.Mark(err, errs.ErrValidation)
	}
	return r.Type, data, nil
}

type UpdatePreferencesRequest struct {
	Notifications map[notification.Type]notification.TypePreference `json:"notifications"`
	Categories    *notification.Categories                          `json:"categories"`
}

func (r *UpdatePreferencesRequest) ToDomain() notification.PreferencesPatch {
	return notification.PreferencesPatch{
		Notifications: r.Notifications,
		Categories:    r.Categories,
	}
}
