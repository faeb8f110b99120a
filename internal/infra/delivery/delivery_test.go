//go:build unit

package delivery_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"careerlaunch/internal/domain/notification"
	"careerlaunch/internal/infra/delivery"
	"careerlaunch/internal/pkg/config"

	mail "github.com/go-mail/mail/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

type recordingChannel struct {
	method notification.Method
	err    error

	mu   sync.Mutex
	sent []delivery.Message
}

func (c *recordingChannel) Method() notification.Method { return c.method }

func (c *recordingChannel) Send(_ context.Context, msg delivery.Message) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sent = append(c.sent, msg)
	return c.err
}

func (c *recordingChannel) messages() []delivery.Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]delivery.Message(nil), c.sent...)
}

func newDispatcher(channels ...delivery.Channel) *delivery.Dispatcher {
	cfg := config.NewTestConfig().Notify
	list := make([]delivery.Channel, 0, len(channels))
	list = append(list, channels...)
	return delivery.NewDispatcher(list, cfg, discard)
}

func stored(freq notification.Frequency, methods ...notification.Method) notification.Notification {
	return notification.Notification{
		ID:        "n-1",
		Type:      notification.TypeApplicationReview,
		Title:     "Your application is being reviewed",
		Content:   "<p>body</p>",
		Timestamp: time.Date(2026, 3, 16, 9, 0, 0, 0, time.UTC),
		Frequency: freq,
		Methods:   methods,
	}
}

func TestDispatcher(t *testing.T) {
	t.Run("immediate notification goes to every method", func(t *testing.T) {
		email := &recordingChannel{method: notification.MethodEmail}
		sms := &recordingChannel{method: notification.MethodSMS}
		inApp := &recordingChannel{method: notification.MethodInApp}
		d := newDispatcher(email, sms, inApp)

		d.Dispatch(stored(notification.FrequencyImmediate, notification.MethodEmail, notification.MethodSMS))
		d.Wait()

		require.Len(t, email.messages(), 1)
		assert.Equal(t, "Your application is being reviewed", email.messages()[0].Subject)
		assert.Equal(t, "<p>body</p>", email.messages()[0].Body)

		require.Len(t, sms.messages(), 1)
		assert.Equal(t,
			"Your application is being reviewed: You have a new notification regarding your job application.",
			sms.messages()[0].SMS)
		assert.Empty(t, inApp.messages())
	})

	t.Run("failed send is swallowed and not retried", func(t *testing.T) {
		email := &recordingChannel{method: notification.MethodEmail, err: errors.New("smtp down")}
		d := newDispatcher(email)

		d.Dispatch(stored(notification.FrequencyImmediate, notification.MethodEmail))
		d.Wait()

		assert.Len(t, email.messages(), 1)
	})

	t.Run("daily notification defers external methods only", func(t *testing.T) {
		email := &recordingChannel{method: notification.MethodEmail}
		inApp := &recordingChannel{method: notification.MethodInApp}
		d := newDispatcher(email, inApp)

		d.Dispatch(stored(notification.FrequencyDaily, notification.MethodEmail, notification.MethodInApp))
		d.Wait()

		assert.Empty(t, email.messages())
		assert.Len(t, inApp.messages(), 1)
		assert.Equal(t, 1, d.Digest().Pending(notification.FrequencyDaily))
		assert.Zero(t, d.Digest().Pending(notification.FrequencyWeekly))
	})
}

func TestDigest(t *testing.T) {
	t.Run("flush sends one combined message per channel", func(t *testing.T) {
		email := &recordingChannel{method: notification.MethodEmail}
		sms := &recordingChannel{method: notification.MethodSMS}
		d := newDispatcher(email, sms)

		for range 3 {
			d.Dispatch(stored(notification.FrequencyWeekly, notification.MethodEmail, notification.MethodSMS))
		}
		d.Dispatch(stored(notification.FrequencyDaily, notification.MethodEmail))

		sent := d.Digest().Flush(context.Background(), notification.FrequencyWeekly)
		assert.Equal(t, 2, sent)

		require.Len(t, email.messages(), 1)
		assert.Contains(t, email.messages()[0].Subject, "weekly")
		assert.Contains(t, email.messages()[0].Subject, "3 updates")
		require.Len(t, sms.messages(), 1)
		assert.Equal(t, "You have 3 new notifications regarding your job applications.", sms.messages()[0].SMS)

		assert.Zero(t, d.Digest().Pending(notification.FrequencyWeekly))
		assert.Equal(t, 1, d.Digest().Pending(notification.FrequencyDaily))
	})

	t.Run("empty flush sends nothing", func(t *testing.T) {
		email := &recordingChannel{method: notification.MethodEmail}
		d := newDispatcher(email)

		assert.Zero(t, d.Digest().Flush(context.Background(), notification.FrequencyDaily))
		assert.Empty(t, email.messages())
	})

	t.Run("flush all empties every bucket", func(t *testing.T) {
		email := &recordingChannel{method: notification.MethodEmail}
		d := newDispatcher(email)
		d.Dispatch(stored(notification.FrequencyDaily, notification.MethodEmail))
		d.Dispatch(stored(notification.FrequencyWeekly, notification.MethodEmail))

		assert.Equal(t, 2, d.Digest().FlushAll(context.Background()))
		assert.Len(t, email.messages(), 2)
		assert.Zero(t, d.Digest().Pending(notification.FrequencyDaily))
		assert.Zero(t, d.Digest().Pending(notification.FrequencyWeekly))
	})

	t.Run("run flushes pending buckets on shutdown", func(t *testing.T) {
		email := &recordingChannel{method: notification.MethodEmail}
		d := newDispatcher(email)
		d.Dispatch(stored(notification.FrequencyDaily, notification.MethodEmail))

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})
		go func() {
			d.Digest().Run(ctx)
			close(done)
		}()
		cancel()

		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("digest did not stop")
		}
		assert.Len(t, email.messages(), 1)
	})
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []*mail.Message
	err  error
}

func (f *fakeMailer) DialAndSend(m ...*mail.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, m...)
	return f.err
}

func TestEmailChannel(t *testing.T) {
	msg := delivery.MessageFor(stored(notification.FrequencyImmediate, notification.MethodEmail))

	t.Run("dry run without SMTP host", func(t *testing.T) {
		ch := delivery.NewEmailChannel(config.SMTPConfig{}, config.NewTestConfig().Notify, discard)
		assert.NoError(t, ch.Send(context.Background(), msg))
	})

	t.Run("sends headers through the mailer", func(t *testing.T) {
		mailer := &fakeMailer{}
		ch := delivery.NewEmailChannelWithSender(mailer, "from@example.com", "user@example.com", discard)

		require.NoError(t, ch.Send(context.Background(), msg))
		require.Len(t, mailer.sent, 1)
		assert.Equal(t, []string{"user@example.com"}, mailer.sent[0].GetHeader("To"))
		assert.Equal(t, []string{msg.Subject}, mailer.sent[0].GetHeader("Subject"))
	})

	t.Run("mailer error is returned", func(t *testing.T) {
		mailer := &fakeMailer{err: errors.New("refused")}
		ch := delivery.NewEmailChannelWithSender(mailer, "from@example.com", "user@example.com", discard)

		assert.Error(t, ch.Send(context.Background(), msg))
	})

	t.Run("cancelled context is not sent", func(t *testing.T) {
		mailer := &fakeMailer{}
		ch := delivery.NewEmailChannelWithSender(mailer, "from@example.com", "user@example.com", discard)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		assert.ErrorIs(t, ch.Send(ctx, msg), context.Canceled)
		assert.Empty(t, mailer.sent)
	})
}
