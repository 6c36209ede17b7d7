// Package simulation drives the recurring portfolio tick.
package simulation

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// Ticker is the single operation the clock invokes each period.
type Ticker interface {
	Tick()
}

// Clock fires the portfolio tick on a fixed cadence. The cadence is a
// configuration value; the underlying scheduler's resolution is one second,
// so sub-second intervals are coerced to one second.
type Clock struct {
	cron     *cron.Cron
	interval time.Duration
	target   Ticker
}

// NewClock creates a stopped clock that will invoke target every interval.
func NewClock(interval time.Duration, target Ticker) *Clock {
	return &Clock{
		cron:     cron.New(),
		interval: interval,
		target:   target,
	}
}

// Start schedules the recurring tick and begins firing. Calling Start on a
// running clock adds no additional schedule.
func (c *Clock) Start() error {
	if len(c.cron.Entries()) == 0 {
		spec := fmt.Sprintf("@every %s", c.interval)
		if _, err := c.cron.AddFunc(spec, c.target.Tick); err != nil {
			return fmt.Errorf("failed to schedule simulation tick: %w", err)
		}
	}
	c.cron.Start()
	log.Printf("Simulation clock started (every %s)", c.interval)
	return nil
}

// Stop cancels the recurring tick and blocks until any in-flight tick has
// completed. After Stop returns, no further ticks fire; a tick that was
// running when Stop was called finishes in full, so readers never observe a
// partially applied tick.
func (c *Clock) Stop() {
	ctx := c.cron.Stop()
	<-ctx.Done()
	log.Println("Simulation clock stopped")
}
