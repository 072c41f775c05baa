package state

import (
	"sync"
	"time"
)

// DefaultDebounce is the delay applied to bursty recompute triggers.
const DefaultDebounce = 120 * time.Millisecond

// Debouncer coalesces a burst of triggers into a single callback run:
// each Trigger restarts the timer, so only the last writer within the
// window fires the callback.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
	fn    func()
}

// NewDebouncer creates a debouncer invoking fn after delay. A
// non-positive delay falls back to DefaultDebounce.
func NewDebouncer(delay time.Duration, fn func()) *Debouncer {
	if delay <= 0 {
		delay = DefaultDebounce
	}

	return &Debouncer{delay: delay, fn: fn}
}

// Trigger schedules the callback, cancelling any pending run.
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}

	d.timer = time.AfterFunc(d.delay, d.fn)
}

// Stop cancels any pending run.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
