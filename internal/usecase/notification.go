package usecase

import (
	"context"
	"log/slog"

	"careerlaunch/internal/domain/notification"
	"careerlaunch/internal/pkg/clock"
	"careerlaunch/internal/pkg/errs"
	"careerlaunch/internal/pkg/latency"

	"github.com/google/uuid"
)

type NotificationUseCase interface {
	// GetNotifications returns every stored notification, newest first.
	GetNotifications(ctx context.Context) ([]notification.Notification, error)
	// SendNotification stores a rendered notification and hands it to delivery.
	// It does not consult the enabled flag; callers gate on preferences.
	SendNotification(ctx context.Context, t notification.Type, data notification.Payload) (notification.Notification, error)
	// MarkAsRead is idempotent and ignores unknown ids.
	MarkAsRead(ctx context.Context, id string) error
	MarkAllAsRead(ctx context.Context) error
	// LoadPreferences returns the stored preferences, writing the defaults first when none are usable.
	LoadPreferences(ctx context.Context) (notification.Preferences, error)
	SavePreferences(ctx context.Context, prefs notification.Preferences) error
}

type notificationUseCaseImpl struct {
	notifications NotificationRepository
	preferences   PreferencesRepository
	deliverer     Deliverer
	latency       latency.Simulator
	clock         clock.Clock
	logger        *slog.Logger
}

func NewNotificationUseCase(
	notifications NotificationRepository,
	preferences PreferencesRepository,
	deliverer Deliverer,
	sim latency.Simulator,
	clock clock.Clock,
	logger *slog.Logger,
) NotificationUseCase {
	return &notificationUseCaseImpl{
		notifications: notifications,
		preferences:   preferences,
		deliverer:     deliverer,
		latency:       sim,
		clock:         clock,
		logger:        logger,
	}
}

func (u *notificationUseCaseImpl) GetNotifications(ctx context.Context) ([]notification.Notification, error) {
	if err := u.latency.Read(ctx); err != nil {
		return nil, err
	}
	ns, err := u.notifications.List(ctx)
	return ns, storeErr(err, ErrNotificationNotFound)
}

func (u *notificationUseCaseImpl) SendNotification(
	ctx context.Context,
	t notification.Type,
	data notification.Payload,
) (notification.Notification, error) {
	if err := u.latency.Write(ctx); err != nil {
		return notification.Notification{}, err
	}

	prefs, _, err := u.preferences.Load(ctx)
	if err != nil {
		return notification.Notification{}, storeErr(err, ErrNotificationNotFound)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return notification.Notification{}, errs.Wrap(err, "failed to generate notification id")
	}

	n, err := notification.New(id.String(), t, data, prefs, u.clock.Now())
	if err != nil {
		return notification.Notification{}, invalid(err)
	}

	if err := u.notifications.Prepend(ctx, n); err != nil {
		return notification.Notification{}, storeErr(err, ErrNotificationNotFound)
	}

	u.deliverer.Dispatch(n)
	u.logger.Info("Notification sent",
		slog.String("id", n.ID),
		slog.String("type", string(n.Type)),
		slog.String("frequency", string(n.Frequency)),
	)
	return n, nil
}

func (u *notificationUseCaseImpl) MarkAsRead(ctx context.Context, id string) error {
	if err := u.latency.Write(ctx); err != nil {
		return err
	}
	_, err := u.notifications.MarkRead(ctx, id)
	return storeErr(err, ErrNotificationNotFound)
}

func (u *notificationUseCaseImpl) MarkAllAsRead(ctx context.Context) error {
	if err := u.latency.Write(ctx); err != nil {
		return err
	}
	_, err := u.notifications.MarkAllRead(ctx)
	return storeErr(err, ErrNotificationNotFound)
}

func (u *notificationUseCaseImpl) LoadPreferences(ctx context.Context) (notification.Preferences, error) {
	prefs, found, err := u.preferences.Load(ctx)
	if err != nil {
		return notification.Preferences{}, storeErr(err, ErrNotificationNotFound)
	}
	if found {
		return prefs, nil
	}

	prefs = notification.DefaultPreferences()
	if err := u.preferences.Save(ctx, prefs); err != nil {
		return notification.Preferences{}, storeErr(err, ErrNotificationNotFound)
	}
	return prefs, nil
}

func (u *notificationUseCaseImpl) SavePreferences(ctx context.Context, prefs notification.Preferences) error {
	return storeErr(u.preferences.Save(ctx, prefs), ErrNotificationNotFound)
}
