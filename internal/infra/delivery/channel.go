// Package delivery sends stored notifications out through their delivery
// methods. Sends are fire-and-forget: failures are logged and never retried.
package delivery

import (
	"context"
	"log/slog"

	"careerlaunch/internal/domain/notification"
)

// Message is one outbound send on one channel.
type Message struct {
	Type      notification.Type
	Frequency notification.Frequency
	Subject   string
	Body      string
	// SMS is the short text used where a full body does not fit.
	SMS string
}

type Channel interface {
	Method() notification.Method
	Send(ctx context.Context, msg Message) error
}

func smsText(title string) string {
	return title + ": You have a new notification regarding your job application."
}

// MessageFor builds the single-notification message.
func MessageFor(n notification.Notification) Message {
	return Message{
		Type:      n.Type,
		Frequency: n.Frequency,
		Subject:   n.Title,
		Body:      n.Content,
		SMS:       smsText(n.Title),
	}
}

type SMSChannel struct {
	to     string
	logger *slog.Logger
}

// NewSMSChannel returns a simulated SMS gateway; messages are only logged.
func NewSMSChannel(to string, logger *slog.Logger) *SMSChannel {
	return &SMSChannel{to: to, logger: logger}
}

func (c *SMSChannel) Method() notification.Method { return notification.MethodSMS }

func (c *SMSChannel) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.logger.Info("SMS notification sent",
		slog.String("type", string(msg.Type)),
		slog.String("to", c.to),
		slog.String("message", msg.SMS),
		slog.String("frequency", string(msg.Frequency)),
	)
	return nil
}

// InAppChannel has nothing to send: the stored record is the in-app notification.
type InAppChannel struct {
	logger *slog.Logger
}

func NewInAppChannel(logger *slog.Logger) *InAppChannel {
	return &InAppChannel{logger: logger}
}

func (c *InAppChannel) Method() notification.Method { return notification.MethodInApp }

func (c *InAppChannel) Send(_ context.Context, msg Message) error {
	c.logger.Debug("In-app notification available", slog.String("type", string(msg.Type)), slog.String("title", msg.Subject))
	return nil
}
