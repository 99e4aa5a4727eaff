// Package driver runs the simulation heartbeat. It owns no game rules:
// it measures elapsed wall-clock time and hands it to the engine, so a
// stalled goroutine or a laggy host never loses simulated time.
package driver

import (
	"context"
	"time"

	"github.com/zerpitt/CrimeGameIdleRPG/crimegame/engine"
)

// Ticker drives engine ticks at a fixed cadence.
type Ticker struct {
	engine   *engine.Engine
	interval time.Duration
}

func New(eng *engine.Engine, interval time.Duration) *Ticker {
	if interval <= 0 {
		interval = 100 * time.Millisecond
	}
	return &Ticker{engine: eng, interval: interval}
}

// Run blocks until ctx is cancelled, ticking the engine on every interval.
// The delta passed to the engine is measured, not assumed, so ticks that
// arrive late still advance the world by the real elapsed time.
func (t *Ticker) Run(ctx context.Context) error {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			dt := float64(now.Sub(last).Microseconds()) / 1000
			if dt <= 0 {
				continue
			}
			last = now
			t.engine.Tick(dt)
		}
	}
}
