//go:build unit

package state_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"careerlaunch/internal/domain/notification"
	"careerlaunch/internal/infra/kvstore"
	"careerlaunch/internal/infra/repository"
	"careerlaunch/internal/pkg/clock"
	"careerlaunch/internal/pkg/latency"
	"careerlaunch/internal/state"
	"careerlaunch/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopDeliverer struct{}

func (nopDeliverer) Dispatch(notification.Notification) {}

// pausingUseCase blocks the first call of the wrapped method after the store
// has been written, until release is closed.
type pausingUseCase struct {
	usecase.NotificationUseCase

	entered chan struct{}
	release chan struct{}
	once    sync.Once
}

func newPausingUseCase(inner usecase.NotificationUseCase) *pausingUseCase {
	return &pausingUseCase{
		NotificationUseCase: inner,
		entered:             make(chan struct{}),
		release:             make(chan struct{}),
	}
}

func (p *pausingUseCase) pause() {
	p.once.Do(func() {
		close(p.entered)
		<-p.release
	})
}

func (p *pausingUseCase) SavePreferences(ctx context.Context, prefs notification.Preferences) error {
	err := p.NotificationUseCase.SavePreferences(ctx, prefs)
	p.pause()
	return err
}

func (p *pausingUseCase) MarkAllAsRead(ctx context.Context) error {
	err := p.NotificationUseCase.MarkAllAsRead(ctx)
	p.pause()
	return err
}

func newStoreBackedUseCase() usecase.NotificationUseCase {
	store := kvstore.NewMemoryStore()
	return usecase.NewNotificationUseCase(
		repository.NewNotificationRepository(store, discard),
		repository.NewPreferencesRepository(store, discard),
		nopDeliverer{},
		latency.None(),
		clock.NewMockClock(time.Date(2026, 3, 16, 9, 0, 0, 0, time.UTC)),
		discard,
	)
}

// assertBlocked fails when done closes before the first mutation is released.
func assertBlocked(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
		t.Fatal("second mutation completed while the first was still in flight")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestNotifications_ConcurrentPreferenceUpdatesKeepBothChanges(t *testing.T) {
	ctx := context.Background()
	inner := newStoreBackedUseCase()
	uc := newPausingUseCase(inner)
	s := state.NewNotifications(uc, discard)
	require.NoError(t, s.Init(ctx))

	disable := func(typ notification.Type) notification.PreferencesPatch {
		return notification.PreferencesPatch{Notifications: map[notification.Type]notification.TypePreference{
			typ: {Enabled: false, Frequency: notification.FrequencyImmediate, Methods: []notification.Method{notification.MethodInApp}},
		}}
	}

	firstErr := make(chan error, 1)
	go func() {
		_, err := s.UpdatePreferences(ctx, disable(notification.TypeApplicationSubmission))
		firstErr <- err
	}()
	<-uc.entered

	secondDone := make(chan struct{})
	var secondErr error
	go func() {
		defer close(secondDone)
		_, secondErr = s.UpdatePreferences(ctx, disable(notification.TypeInterviewInvitation))
	}()

	assertBlocked(t, secondDone)
	close(uc.release)
	require.NoError(t, <-firstErr)
	<-secondDone
	require.NoError(t, secondErr)

	saved, err := inner.LoadPreferences(ctx)
	require.NoError(t, err)
	assert.False(t, saved.Allows(notification.TypeApplicationSubmission))
	assert.False(t, saved.Allows(notification.TypeInterviewInvitation))

	cached := s.Snapshot().Preferences
	assert.False(t, cached.Allows(notification.TypeApplicationSubmission))
	assert.False(t, cached.Allows(notification.TypeInterviewInvitation))
}

func TestNotifications_SendDuringMarkAllKeepsUnreadCountInSync(t *testing.T) {
	ctx := context.Background()
	inner := newStoreBackedUseCase()
	uc := newPausingUseCase(inner)
	s := state.NewNotifications(uc, discard)
	require.NoError(t, s.Init(ctx))

	data := notification.ApplicationData{JobTitle: "Designer", Company: "Acme"}
	_, err := s.SendNotification(ctx, notification.TypeApplicationSubmission, data)
	require.NoError(t, err)

	markErr := make(chan error, 1)
	go func() { markErr <- s.MarkAllAsRead(ctx) }()
	<-uc.entered

	sendDone := make(chan struct{})
	var sendErr error
	go func() {
		defer close(sendDone)
		_, sendErr = s.SendNotification(ctx, notification.TypeApplicationSubmission, data)
	}()

	assertBlocked(t, sendDone)
	close(uc.release)
	require.NoError(t, <-markErr)
	<-sendDone
	require.NoError(t, sendErr)

	all, err := inner.GetNotifications(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, 1, notification.CountUnread(all))
	assert.Equal(t, notification.CountUnread(all), s.Snapshot().UnreadCount)
}

func TestNotifications_ParallelSendsAndReadsStayConsistent(t *testing.T) {
	ctx := context.Background()
	inner := newStoreBackedUseCase()
	s := state.NewNotifications(inner, discard)
	require.NoError(t, s.Init(ctx))

	data := notification.ApplicationData{JobTitle: "Designer", Company: "Acme"}

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			n, err := s.SendNotification(ctx, notification.TypeApplicationSubmission, data)
			if !assert.NoError(t, err) {
				return
			}
			switch i % 4 {
			case 0:
				assert.NoError(t, s.MarkAsRead(ctx, n.ID))
			case 1:
				assert.NoError(t, s.MarkAllAsRead(ctx))
			}
		}()
	}
	wg.Wait()

	all, err := inner.GetNotifications(ctx)
	require.NoError(t, err)
	snap := s.Snapshot()
	assert.Len(t, snap.Notifications, 20)
	assert.Equal(t, notification.CountUnread(all), snap.UnreadCount)
	assert.Equal(t, notification.CountUnread(snap.Notifications), snap.UnreadCount)
}
