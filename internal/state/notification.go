// Package state holds the in-process view state the HTTP layer reads from:
// cached lists, derived counters and loading flags. Containers call the use
// cases, patch their cached copy on success and publish snapshots to
// subscribers.
package state

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"careerlaunch/internal/domain/notification"
	"careerlaunch/internal/pkg/errs"
	"careerlaunch/internal/usecase"
)

var ErrNotificationDisabled = errs.Mark(errs.New("notification type is disabled"), errs.ErrConflict)

type NotificationSnapshot struct {
	Notifications []notification.Notification
	UnreadCount   int
	Preferences   notification.Preferences
	IsLoading     bool
}

type Notifications struct {
	uc     usecase.NotificationUseCase
	logger *slog.Logger

	// writeMu serializes mutations end to end, use case call included, so
	// the cache always reflects the order the store saw.
	writeMu sync.Mutex
	mu      sync.RWMutex
	state   NotificationSnapshot
	subs    subscribers[NotificationSnapshot]
}

func NewNotifications(uc usecase.NotificationUseCase, logger *slog.Logger) *Notifications {
	return &Notifications{
		uc:     uc,
		logger: logger,
		state: NotificationSnapshot{
			Notifications: []notification.Notification{},
			Preferences:   notification.DefaultPreferences(),
		},
	}
}

// Init loads (and if needed persists) the preferences, then fetches once.
func (s *Notifications) Init(ctx context.Context) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	prefs, err := s.uc.LoadPreferences(ctx)
	if err != nil {
		return err
	}
	s.update(func(st *NotificationSnapshot) { st.Preferences = prefs })
	return s.fetch(ctx)
}

func (s *Notifications) Snapshot() NotificationSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.clone()
}

// Subscribe registers fn for every published snapshot. fn runs on the
// mutating goroutine and must not call back into the container's mutations.
func (s *Notifications) Subscribe(fn func(NotificationSnapshot)) (unsubscribe func()) {
	return s.subs.add(fn)
}

// FetchNotifications replaces the cached list and recomputes the unread count from it.
func (s *Notifications) FetchNotifications(ctx context.Context) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return s.fetch(ctx)
}

func (s *Notifications) fetch(ctx context.Context) error {
	s.update(func(st *NotificationSnapshot) { st.IsLoading = true })

	ns, err := s.uc.GetNotifications(ctx)
	if err != nil {
		s.logger.Error("Failed to load notifications", slog.String("error", err.Error()))
		s.update(func(st *NotificationSnapshot) { st.IsLoading = false })
		return err
	}

	s.update(func(st *NotificationSnapshot) {
		st.Notifications = ns
		st.UnreadCount = notification.CountUnread(ns)
		st.IsLoading = false
	})
	return nil
}

// SendNotification is gated on the cached preferences: a disabled type, or
// one with no preference entry, returns ErrNotificationDisabled and the use
// case is never called.
func (s *Notifications) SendNotification(
	ctx context.Context,
	t notification.Type,
	data notification.Payload,
) (notification.Notification, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.RLock()
	allowed := s.state.Preferences.Allows(t)
	s.mu.RUnlock()
	if !allowed {
		return notification.Notification{}, ErrNotificationDisabled
	}

	s.update(func(st *NotificationSnapshot) { st.IsLoading = true })
	n, err := s.uc.SendNotification(ctx, t, data)
	if err != nil {
		s.logger.Error("Failed to send notification", slog.String("type", string(t)), slog.String("error", err.Error()))
		s.update(func(st *NotificationSnapshot) { st.IsLoading = false })
		return notification.Notification{}, err
	}

	s.update(func(st *NotificationSnapshot) {
		st.Notifications = append([]notification.Notification{n}, st.Notifications...)
		st.UnreadCount++
		st.IsLoading = false
	})
	return n, nil
}

// MarkAsRead decrements the unread count only when the cached record was
// unread, so repeating it is a no-op.
func (s *Notifications) MarkAsRead(ctx context.Context, id string) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := s.uc.MarkAsRead(ctx, id); err != nil {
		return err
	}
	s.update(func(st *NotificationSnapshot) {
		for i := range st.Notifications {
			if st.Notifications[i].ID == id && !st.Notifications[i].Read {
				st.Notifications[i].Read = true
				st.UnreadCount = max(st.UnreadCount-1, 0)
			}
		}
	})
	return nil
}

func (s *Notifications) MarkAllAsRead(ctx context.Context) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := s.uc.MarkAllAsRead(ctx); err != nil {
		return err
	}
	s.update(func(st *NotificationSnapshot) {
		for i := range st.Notifications {
			st.Notifications[i].Read = true
		}
		st.UnreadCount = 0
	})
	return nil
}

// UpdatePreferences merges patch over the cached preferences and persists the result.
func (s *Notifications) UpdatePreferences(ctx context.Context, patch notification.PreferencesPatch) (notification.Preferences, error) {
	if err := patch.Validate(); err != nil {
		return notification.Preferences{}, errs.Mark(err, errs.ErrValidation)
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.RLock()
	merged := s.state.Preferences.Merge(patch)
	s.mu.RUnlock()

	if err := s.uc.SavePreferences(ctx, merged); err != nil {
		return notification.Preferences{}, err
	}
	s.update(func(st *NotificationSnapshot) { st.Preferences = merged })
	return merged.Clone(), nil
}

func (s *Notifications) update(fn func(*NotificationSnapshot)) {
	s.mu.Lock()
	fn(&s.state)
	snap := s.state.clone()
	s.mu.Unlock()

	s.subs.publish(snap)
}

func (st NotificationSnapshot) clone() NotificationSnapshot {
	out := st
	out.Notifications = slices.Clone(st.Notifications)
	for i := range out.Notifications {
		out.Notifications[i].Methods = slices.Clone(out.Notifications[i].Methods)
	}
	out.Preferences = st.Preferences.Clone()
	return out
}
