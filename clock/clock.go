// Package clock paces the machine in real time.
package clock

import (
	"context"
	"time"
)

// Clock drives a tick function at a fixed frequency.
type Clock struct {
	Frequency float64 // Ticks per second. Zero or less runs unpaced.

	Now   func() time.Time                                 // Defaults to time.Now.
	Sleep func(ctx context.Context, d time.Duration) error // Defaults to a timer bounded by ctx.

	Ticks int // Ticks run by the last Run.
}

// Period returns the time budget of a single tick.
func (clk *Clock) Period() time.Duration {
	if clk.Frequency <= 0 {
		return 0
	}

	return time.Duration(float64(time.Second) / clk.Frequency)
}

// sleep waits for d, or until ctx is done.
func sleep(ctx context.Context, d time.Duration) (err error) {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		err = ctx.Err()
	case <-timer.C:
	}

	return
}

// Run calls tick until it reports done, returns an error, or ctx is
// cancelled. After each tick it sleeps for whatever is left of the period;
// a tick that overruns its period is followed immediately by the next.
func (clk *Clock) Run(ctx context.Context, tick func() (done bool, err error)) (err error) {
	now := clk.Now
	if now == nil {
		now = time.Now
	}
	wait := clk.Sleep
	if wait == nil {
		wait = sleep
	}

	period := clk.Period()
	clk.Ticks = 0

	for {
		err = ctx.Err()
		if err != nil {
			return
		}

		start := now()

		var done bool
		done, err = tick()
		clk.Ticks++
		if err != nil || done {
			return
		}

		if period <= 0 {
			continue
		}

		remaining := max(0, period-now().Sub(start))
		if remaining == 0 {
			continue
		}

		err = wait(ctx, remaining)
		if err != nil {
			return
		}
	}
}
