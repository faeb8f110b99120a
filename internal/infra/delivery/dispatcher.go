package delivery

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"careerlaunch/internal/domain/notification"
	"careerlaunch/internal/pkg/config"
)

// Dispatcher routes a stored notification to its methods. In-app and
// immediate sends start right away on their own goroutine; external methods
// of daily or weekly notifications are queued in the digest.
type Dispatcher struct {
	channels map[notification.Method]Channel
	digest   *Digest
	timeout  time.Duration
	logger   *slog.Logger

	wg sync.WaitGroup
}

func NewDispatcher(channels []Channel, cfg config.NotifyConfig, logger *slog.Logger) *Dispatcher {
	d := &Dispatcher{
		channels: make(map[notification.Method]Channel, len(channels)),
		timeout:  cfg.DeliveryTimeout,
		logger:   logger,
	}
	for _, ch := range channels {
		d.channels[ch.Method()] = ch
	}
	d.digest = newDigest(d, cfg, logger)
	return d
}

func (d *Dispatcher) Digest() *Digest {
	return d.digest
}

// Dispatch never blocks on a channel.
func (d *Dispatcher) Dispatch(n notification.Notification) {
	msg := MessageFor(n)
	for _, method := range n.Methods {
		if method.External() && n.Frequency != notification.FrequencyImmediate {
			d.digest.Enqueue(n.Frequency, method, n)
			continue
		}
		d.goSend(method, msg)
	}
}

// Wait blocks until every started send has returned.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

func (d *Dispatcher) goSend(method notification.Method, msg Message) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		// Detached from the request that triggered it: the send outlives the response.
		_ = d.send(context.Background(), method, msg)
	}()
}

func (d *Dispatcher) send(ctx context.Context, method notification.Method, msg Message) error {
	ch, ok := d.channels[method]
	if !ok {
		d.logger.Warn("No channel for delivery method", slog.String("method", string(method)))
		return nil
	}
	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}
	if err := ch.Send(ctx, msg); err != nil {
		d.logger.Error("Notification delivery failed",
			slog.String("method", string(method)),
			slog.String("type", string(msg.Type)),
			slog.String("error", err.Error()),
		)
		return err
	}
	return nil
}
