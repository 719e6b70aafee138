// Package metadata tracks per-run fetch accounting: how many API calls a
// query made, how many pages and rows came back, and how long it took.
// Everything lives in memory for the duration of one invocation; nothing is
// persisted.
package metadata

import (
	"fmt"
	"sync"
	"time"
)

// Tracker accumulates statistics for one query run. The zero value is not
// usable; create one with New.
type Tracker struct {
	mu       sync.Mutex
	apiCalls int
	pages    int
	rows     int
	started  time.Time
}

// New creates a Tracker with the clock started.
func New() *Tracker {
	return &Tracker{started: time.Now()}
}

// IncrementAPICall records one API round trip.
func (t *Tracker) IncrementAPICall() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.apiCalls++
}

// AddPage records one received result page and its row count.
func (t *Tracker) AddPage(rows int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.pages++
	t.rows += rows
}

// APICalls returns the number of API round trips recorded.
func (t *Tracker) APICalls() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.apiCalls
}

// Pages returns the number of result pages recorded.
func (t *Tracker) Pages() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.pages
}

// Rows returns the total row count across recorded pages.
func (t *Tracker) Rows() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.rows
}

// Elapsed returns the time since the tracker was created.
func (t *Tracker) Elapsed() time.Duration {
	return time.Since(t.started)
}

// Summary returns a one-line human-readable account of the run.
func (t *Tracker) Summary() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return fmt.Sprintf("%d rows in %d pages (%d API calls, %s)",
		t.rows, t.pages, t.apiCalls, time.Since(t.started).Round(time.Millisecond))
}
