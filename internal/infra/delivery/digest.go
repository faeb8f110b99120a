package delivery

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"strings"
	"sync"
	"time"

	"careerlaunch/internal/domain/notification"
	"careerlaunch/internal/pkg/config"
)

type bucketKey struct {
	frequency notification.Frequency
	method    notification.Method
}

// Digest batches daily and weekly notifications and sends one combined
// message per external method when a bucket is flushed.
type Digest struct {
	dispatcher *Dispatcher
	intervals  map[notification.Frequency]time.Duration
	logger     *slog.Logger

	mu      sync.Mutex
	pending map[bucketKey][]notification.Notification
}

func newDigest(d *Dispatcher, cfg config.NotifyConfig, logger *slog.Logger) *Digest {
	return &Digest{
		dispatcher: d,
		intervals: map[notification.Frequency]time.Duration{
			notification.FrequencyDaily:  cfg.DigestDailyInterval,
			notification.FrequencyWeekly: cfg.DigestWeeklyInterval,
		},
		logger:  logger,
		pending: map[bucketKey][]notification.Notification{},
	}
}

func (g *Digest) Enqueue(freq notification.Frequency, method notification.Method, n notification.Notification) {
	g.mu.Lock()
	defer g.mu.Unlock()
	key := bucketKey{frequency: freq, method: method}
	g.pending[key] = append(g.pending[key], n)
}

func (g *Digest) Pending(freq notification.Frequency) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	total := 0
	for key, ns := range g.pending {
		if key.frequency == freq {
			total += len(ns)
		}
	}
	return total
}

// Flush sends and clears every bucket of the given frequency. It returns the
// number of combined messages handed to channels.
func (g *Digest) Flush(ctx context.Context, freq notification.Frequency) int {
	g.mu.Lock()
	batches := map[notification.Method][]notification.Notification{}
	for key, ns := range g.pending {
		if key.frequency == freq && len(ns) > 0 {
			batches[key.method] = ns
			delete(g.pending, key)
		}
	}
	g.mu.Unlock()

	sent := 0
	for method, ns := range batches {
		if err := g.dispatcher.send(ctx, method, digestMessage(freq, ns)); err == nil {
			sent++
		}
	}
	if sent > 0 {
		g.logger.Info("Digest flushed", slog.String("frequency", string(freq)), slog.Int("messages", sent))
	}
	return sent
}

// Run flushes each frequency on its own ticker until ctx ends, then flushes
// what is left so queued notifications are not lost on shutdown.
func (g *Digest) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for freq, every := range g.intervals {
		if every <= 0 {
			continue
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			ticker := time.NewTicker(every)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return
				case <-ticker.C:
					g.Flush(ctx, freq)
				}
			}
		}()
	}
	wg.Wait()

	g.FlushAll(context.Background())
}

// FlushAll flushes every frequency at once, for callers that exit without
// running the scheduler.
func (g *Digest) FlushAll(ctx context.Context) int {
	sent := 0
	for freq := range g.intervals {
		sent += g.Flush(ctx, freq)
	}
	return sent
}

func digestMessage(freq notification.Frequency, ns []notification.Notification) Message {
	subject := fmt.Sprintf("Your %s notification digest (%d updates)", freq, len(ns))

	var body strings.Builder
	body.WriteString("<h2>" + html.EscapeString(subject) + "</h2>\n<ul>\n")
	for _, n := range ns {
		fmt.Fprintf(&body, "  <li>%s <small>%s</small></li>\n",
			html.EscapeString(n.Title), n.Timestamp.Format(time.DateOnly))
	}
	body.WriteString("</ul>\n<p>Best regards,<br/>CareerLaunch Team</p>\n")

	return Message{
		Type:      notification.TypeOther,
		Frequency: freq,
		Subject:   subject,
		Body:      body.String(),
		SMS:       fmt.Sprintf("You have %d new notifications regarding your job applications.", len(ns)),
	}
}
