package wizard

import (
	"sync"
	"time"

	"github.com/ledgerline/taxintake/internal/intake"
)

// DefaultQuietPeriod is the debounce window between the last edit and the
// persist it triggers.
const DefaultQuietPeriod = 700 * time.Millisecond

type saveReq struct {
	draftID string
	rec     intake.Record
}

// autosaver coalesces bursts of edits into a single persist call. Each
// Schedule replaces the pending snapshot and restarts the quiet-period timer,
// so only the most recent state of a burst is ever sent.
//
// At most one persist is in flight at a time: a snapshot whose timer fires
// while an earlier persist is still running is parked and sent as soon as the
// running call returns (single-slot supersession; a parked snapshot is itself
// replaced by a newer one).
type autosaver struct {
	quiet time.Duration
	save  func(req saveReq)

	mu       sync.Mutex
	timer    *time.Timer
	latest   *saveReq
	inflight bool
	parked   *saveReq
}

func newAutosaver(quiet time.Duration, save func(req saveReq)) *autosaver {
	return &autosaver{quiet: quiet, save: save}
}

// Schedule records the newest state and (re)starts the quiet-period timer.
func (a *autosaver) Schedule(draftID string, rec intake.Record) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.latest = &saveReq{draftID: draftID, rec: rec}
	if a.timer != nil {
		a.timer.Stop()
	}
	a.timer = time.AfterFunc(a.quiet, a.fire)
}

// Cancel drops any pending snapshot and stops the timer. An already in-flight
// persist is not interrupted; there is no cancellation for network calls.
func (a *autosaver) Cancel() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
	a.latest = nil
	a.parked = nil
}

func (a *autosaver) fire() {
	a.mu.Lock()
	req := a.latest
	a.latest = nil
	if req == nil {
		a.mu.Unlock()
		return
	}
	if a.inflight {
		a.parked = req
		a.mu.Unlock()
		return
	}
	a.inflight = true
	a.mu.Unlock()

	a.run(*req)
}

func (a *autosaver) run(req saveReq) {
	for {
		a.save(req)

		a.mu.Lock()
		if a.parked != nil {
			req = *a.parked
			a.parked = nil
			a.mu.Unlock()
			continue
		}
		a.inflight = false
		a.mu.Unlock()
		return
	}
}
