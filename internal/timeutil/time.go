package timeutil

import (
	"fmt"
	"sync"
	"time"

	"github.com/getsentry/scopeprof/internal/errorutil"
)

// Clock reports the current instant. Readings from time.Now carry a
// monotonic component, so differences are immune to wall clock jumps.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// System is the host clock.
var System Clock = systemClock{}

// Elapsed returns end - start, or an error wrapping errorutil.ErrClock if
// end precedes start.
func Elapsed(start, end time.Time) (time.Duration, error) {
	d := end.Sub(start)
	if d < 0 {
		return 0, fmt.Errorf("timeutil: %w: end %v is %v before start", errorutil.ErrClock, end, -d)
	}
	return d, nil
}

// ManualClock is a Clock that only moves when told to.
type ManualClock struct {
	mu  sync.Mutex
	now time.Time
}

func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock by d. A negative d moves it backwards.
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// ToMillis converts a duration to fractional milliseconds.
func ToMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
