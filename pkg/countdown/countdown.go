package countdown

import (
	"sync"
	"time"
)

// Snapshot holds the remaining time fields the dashboard displays.
type Snapshot struct {
	Days  int `json:"days"`
	Hours int `json:"hours"`
	Mins  int `json:"mins"`
}

// Remaining derives the countdown fields from the target instant and the
// current time. When the target has passed (delta <= 0) it reports ok=false
// and callers keep whatever they showed last; the dashboard never arms a
// negative countdown.
func Remaining(target, now time.Time) (Snapshot, bool) {
	delta := target.Sub(now)
	if delta <= 0 {
		return Snapshot{}, false
	}
	return Snapshot{
		Days:  int(delta / (24 * time.Hour)),
		Hours: int((delta % (24 * time.Hour)) / time.Hour),
		Mins:  int((delta % time.Hour) / time.Minute),
	}, true
}

// Ticker recomputes the countdown once at start and then on a fixed interval.
// It has an explicit start/stop lifecycle so no periodic work leaks once the
// countdown is no longer displayed.
type Ticker struct {
	target   time.Time
	interval time.Duration

	mu   sync.RWMutex
	snap Snapshot

	stop chan struct{}
	wg   sync.WaitGroup
}

// NewTicker creates a countdown ticker for the given target instant.
func NewTicker(target time.Time, interval time.Duration) *Ticker {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Ticker{
		target:   target,
		interval: interval,
		stop:     make(chan struct{}),
	}
}

// Start begins the recomputation loop.
func (t *Ticker) Start() {
	t.wg.Add(1)
	go t.loop()
}

// Stop stops the loop and waits for it to exit.
func (t *Ticker) Stop() {
	close(t.stop)
	t.wg.Wait()
}

// Current returns the latest computed snapshot. After the target instant the
// snapshot stays frozen at the last positive computation.
func (t *Ticker) Current() Snapshot {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.snap
}

func (t *Ticker) loop() {
	defer t.wg.Done()
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	// Run one immediate tick on startup.
	t.tick(time.Now())

	for {
		select {
		case <-ticker.C:
			t.tick(time.Now())
		case <-t.stop:
			return
		}
	}
}

func (t *Ticker) tick(now time.Time) {
	snap, ok := Remaining(t.target, now)
	if !ok {
		return
	}
	t.mu.Lock()
	t.snap = snap
	t.mu.Unlock()
}
