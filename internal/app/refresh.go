package app

import (
	"sync"
	"time"
)

// refreshPeriod matches the original polling cadence of the client.
const refreshPeriod = 30 * time.Second

// AutoRefresh posts a tick intent on a fixed period for as long as it runs.
// Whether a tick actually refreshes anything is decided by the dispatcher,
// which skips ticks while a section other than auctions is visible.
type AutoRefresh struct {
	period   time.Duration
	post     func(Intent)
	stop     chan struct{}
	stopOnce sync.Once
}

// NewAutoRefresh creates a stopped scheduler with the given period.
func NewAutoRefresh(period time.Duration, post func(Intent)) *AutoRefresh {
	return &AutoRefresh{
		period: period,
		post:   post,
		stop:   make(chan struct{}),
	}
}

// Start begins ticking. It is called once at startup.
func (r *AutoRefresh) Start() {
	go func() {
		ticker := time.NewTicker(r.period)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				r.post(tick{})
			case <-r.stop:
				return
			}
		}
	}()
}

// Stop ends ticking. Stopping an already-stopped scheduler is a no-op.
func (r *AutoRefresh) Stop() {
	r.stopOnce.Do(func() {
		close(r.stop)
	})
}
