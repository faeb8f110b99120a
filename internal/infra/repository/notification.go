package repository

import (
	"context"
	"log/slog"

	"careerlaunch/internal/domain/notification"
	"careerlaunch/internal/infra/collection"
	"careerlaunch/internal/infra/kvstore"
)

type NotificationRepository struct {
	records *collection.Collection[notification.Notification]
}

func NewNotificationRepository(store kvstore.Store, logger *slog.Logger) *NotificationRepository {
	return &NotificationRepository{
		records: collection.New(store, KeyNotifications,
			func(n notification.Notification) string { return n.ID }, logger),
	}
}

// List returns notifications newest first, the order they are stored in.
func (r *NotificationRepository) List(ctx context.Context) ([]notification.Notification, error) {
	return r.records.List(ctx)
}

func (r *NotificationRepository) Prepend(ctx context.Context, n notification.Notification) error {
	return r.records.Insert(ctx, n, collection.Prepend)
}

// MarkRead reports whether a stored record changed. Unknown ids and records
// that are already read are left alone.
func (r *NotificationRepository) MarkRead(ctx context.Context, id string) (bool, error) {
	n, err := r.records.UpdateAll(ctx, func(item *notification.Notification) bool {
		if item.ID != id || item.Read {
			return false
		}
		item.Read = true
		return true
	})
	return n > 0, err
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context) (int, error) {
	return r.records.UpdateAll(ctx, func(item *notification.Notification) bool {
		if item.Read {
			return false
		}
		item.Read = true
		return true
	})
}
