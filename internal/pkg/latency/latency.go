// Package latency injects the artificial service delays of the simulated
// backend. Every wait returns early with the context error when the caller
// gives up.
package latency

import (
	"context"
	"time"

	"careerlaunch/internal/pkg/config"
)

type Simulator interface {
	Read(ctx context.Context) error
	Write(ctx context.Context) error
}

type simulator struct {
	enabled bool
	read    time.Duration
	write   time.Duration
}

func NewSimulator(cfg config.SimulationConfig) Simulator {
	return &simulator{
		enabled: cfg.Enabled,
		read:    cfg.ReadLatency,
		write:   cfg.WriteLatency,
	}
}

// None never waits, but still reports an already cancelled context.
func None() Simulator {
	return &simulator{}
}

func (s *simulator) Read(ctx context.Context) error {
	return s.wait(ctx, s.read)
}

func (s *simulator) Write(ctx context.Context) error {
	return s.wait(ctx, s.write)
}

func (s *simulator) wait(ctx context.Context, d time.Duration) error {
	if !s.enabled || d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
