// Package clock provides the port.Clock implementations: the wall clock
// for production wiring and a settable clock for deterministic tests.
package clock

import (
	"sync"
	"time"

	"github.com/Allirose140/SmartStackPro/internal/core/port"
)

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func System() port.Clock { return systemClock{} }

// Fixed is a clock that only moves when told to.
type Fixed struct {
	mu  sync.Mutex
	now time.Time
}

func NewFixed(now time.Time) *Fixed {
	return &Fixed{now: now}
}

func (c *Fixed) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *Fixed) Set(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

func (c *Fixed) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
