package wizard

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerline/taxintake/internal/intake"
)

type saveRecorder struct {
	mu    sync.Mutex
	block chan struct{} // when non-nil, save blocks until the channel closes
	reqs  []saveReq
}

func (r *saveRecorder) save(req saveReq) {
	if r.block != nil {
		<-r.block
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reqs = append(r.reqs, req)
}

func (r *saveRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.reqs)
}

func (r *saveRecorder) last() saveReq {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.reqs[len(r.reqs)-1]
}

func recWithName(name string) intake.Record {
	rec := intake.DefaultRecord()
	rec.LegalName = name
	return rec
}

func TestAutosaver_CoalescesBurst(t *testing.T) {
	rec := &saveRecorder{}
	a := newAutosaver(20*time.Millisecond, rec.save)

	a.Schedule("d1", recWithName("one"))
	a.Schedule("d1", recWithName("two"))
	a.Schedule("d1", recWithName("three"))

	assert.Eventually(t, func() bool { return rec.count() == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(50 * time.Millisecond)

	require.Equal(t, 1, rec.count())
	assert.Equal(t, "three", rec.last().rec.LegalName)
}

func TestAutosaver_CancelDropsPending(t *testing.T) {
	rec := &saveRecorder{}
	a := newAutosaver(20*time.Millisecond, rec.save)

	a.Schedule("d1", recWithName("doomed"))
	a.Cancel()

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, 0, rec.count())
}

func TestAutosaver_SupersedesWhileInFlight(t *testing.T) {
	rec := &saveRecorder{block: make(chan struct{})}
	a := newAutosaver(5*time.Millisecond, rec.save)

	a.Schedule("d1", recWithName("first"))
	time.Sleep(20 * time.Millisecond) // first save now blocked in flight

	// Two more edits while the first persist is still running: only the
	// newest survives.
	a.Schedule("d1", recWithName("second"))
	time.Sleep(20 * time.Millisecond)
	a.Schedule("d1", recWithName("third"))
	time.Sleep(20 * time.Millisecond)

	close(rec.block)

	assert.Eventually(t, func() bool { return rec.count() == 2 }, time.Second, 5*time.Millisecond)
	time.Sleep(30 * time.Millisecond)

	require.Equal(t, 2, rec.count())
	assert.Equal(t, "first", rec.reqs[0].rec.LegalName)
	assert.Equal(t, "third", rec.last().rec.LegalName)
}
