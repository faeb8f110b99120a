package delivery

import (
	"context"
	"crypto/tls"
	"log/slog"

	"careerlaunch/internal/domain/notification"
	"careerlaunch/internal/pkg/config"
	"careerlaunch/internal/pkg/errs"

	mail "github.com/go-mail/mail/v2"
)

// MailSender is satisfied by *mail.Dialer.
type MailSender interface {
	DialAndSend(m ...*mail.Message) error
}

type EmailChannel struct {
	sender MailSender // nil means dry-run
	from   string
	to     string
	logger *slog.Logger
}

// NewEmailChannel sends through SMTP with mandatory STARTTLS. Without an SMTP
// host it runs dry and only logs what it would have sent.
func NewEmailChannel(smtp config.SMTPConfig, notify config.NotifyConfig, logger *slog.Logger) *EmailChannel {
	var sender MailSender
	if smtp.Host != "" {
		d := mail.NewDialer(smtp.Host, smtp.Port, smtp.User, smtp.Password)
		d.StartTLSPolicy = mail.MandatoryStartTLS
		d.TLSConfig = &tls.Config{
			ServerName:         smtp.Host,
			InsecureSkipVerify: smtp.SkipTLSVerify,
		}
		d.Timeout = notify.DeliveryTimeout
		sender = d
	}
	return NewEmailChannelWithSender(sender, smtp.From, notify.EmailTo, logger)
}

func NewEmailChannelWithSender(sender MailSender, from, to string, logger *slog.Logger) *EmailChannel {
	return &EmailChannel{sender: sender, from: from, to: to, logger: logger}
}

func (c *EmailChannel) Method() notification.Method { return notification.MethodEmail }

func (c *EmailChannel) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	logArgs := []any{
		slog.String("type", string(msg.Type)),
		slog.String("to", c.to),
		slog.String("subject", msg.Subject),
		slog.String("frequency", string(msg.Frequency)),
	}
	if c.sender == nil {
		c.logger.Info("Email notification sent (dry run)", logArgs...)
		return nil
	}

	m := mail.NewMessage()
	m.SetHeader("From", c.from)
	m.SetHeader("To", c.to)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.Body)

	// DialAndSend cannot be interrupted; the dialer timeout bounds it and the
	// caller stops waiting once ctx ends.
	done := make(chan error, 1)
	go func() { done <- c.sender.DialAndSend(m) }()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		if err != nil {
			return errs.Wrap(err, "failed to send email")
		}
		c.logger.Info("Email notification sent", logArgs...)
		return nil
	}
}
