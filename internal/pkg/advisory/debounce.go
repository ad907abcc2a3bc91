package advisory

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrSuperseded reports that a newer check for the same key replaced this one
// before it could complete. Callers treat it like any other degrade: no
// advisory shown.
var ErrSuperseded = errors.New("advisory check superseded by a newer request")

// Debouncer serializes availability checks per key (one key per requester)
// with a cancel-and-replace policy: each new check bumps the key's generation
// and cancels the in-flight predecessor, the upstream call fires only after
// the delay has passed without another check arriving, and a result is
// delivered only if its generation is still current. A stale response can
// therefore never overwrite a newer advisory.
type Debouncer struct {
	client Client
	delay  time.Duration

	mu      sync.Mutex
	pending map[string]*pendingCheck
}

type pendingCheck struct {
	gen    uint64
	cancel context.CancelFunc
}

func NewDebouncer(client Client, delay time.Duration) *Debouncer {
	return &Debouncer{
		client:  client,
		delay:   delay,
		pending: make(map[string]*pendingCheck),
	}
}

// CheckLeaveAvailability waits out the debounce delay, then asks the client.
// It returns ErrSuperseded if a newer check for key arrived in the meantime,
// or the context error if ctx itself was cancelled.
func (d *Debouncer) CheckLeaveAvailability(ctx context.Context, key string, q LeaveQuery) (Advisory, error) {
	d.mu.Lock()
	st, ok := d.pending[key]
	if !ok {
		st = &pendingCheck{}
		d.pending[key] = st
	}
	if st.cancel != nil {
		st.cancel()
	}
	st.gen++
	gen := st.gen
	checkCtx, cancel := context.WithCancel(ctx)
	st.cancel = cancel
	d.mu.Unlock()

	defer cancel()

	timer := time.NewTimer(d.delay)
	defer timer.Stop()

	select {
	case <-checkCtx.Done():
		if ctx.Err() != nil {
			return Advisory{}, ctx.Err()
		}
		return Advisory{}, ErrSuperseded
	case <-timer.C:
	}

	adv, err := d.client.CheckLeaveAvailability(checkCtx, q)

	d.mu.Lock()
	current := st.gen == gen
	if current {
		st.cancel = nil
		delete(d.pending, key)
	}
	d.mu.Unlock()

	if !current || checkCtx.Err() != nil {
		// The result belongs to a superseded request and must be discarded.
		if ctx.Err() != nil {
			return Advisory{}, ctx.Err()
		}
		return Advisory{}, ErrSuperseded
	}
	return adv, err
}
