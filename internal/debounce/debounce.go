// Package debounce collapses bursts of edits into a single action that runs
// after a quiet period.
package debounce

import (
	"sync"
	"time"
)

// DefaultDelay is the quiet period applied to search input.
const DefaultDelay = 200 * time.Millisecond

// Token identifies one scheduled firing. Only the most recently scheduled
// token is current.
type Token uint64

// Debouncer tracks which scheduled firing is current. Schedule and Fire form
// a pure policy that callers drive with their own clock (a tea.Tick in the
// TUI).
//
// All methods are safe for concurrent use.
type Debouncer struct {
	mu      sync.Mutex
	delay   time.Duration
	seq     uint64
	pending bool
}

// New creates a Debouncer. A non-positive delay uses DefaultDelay.
func New(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Debouncer{delay: delay}
}

// Delay returns the quiet period.
func (d *Debouncer) Delay() time.Duration {
	return d.delay
}

// Schedule supersedes any pending firing and returns the token for the new
// one.
func (d *Debouncer) Schedule() Token {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.seq++
	d.pending = true
	return Token(d.seq)
}

// Fire reports whether token is still current. A current token clears the
// pending state, so each token fires at most once.
func (d *Debouncer) Fire(token Token) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.pending || uint64(token) != d.seq {
		return false
	}
	d.pending = false
	return true
}

// Pending reports whether a scheduled firing has not yet run or been
// cancelled.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending
}

// Cancel drops any pending firing.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.seq++
	d.pending = false
}
