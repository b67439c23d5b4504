package clock

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

var ErrNegativeAdvance = errors.New("virtual clock cannot move backwards")

// Virtual is a Clock whose time only moves when Advance or Set is called.
// Due callbacks run synchronously on the goroutine that advances the clock,
// in deadline order, each observing Now equal to its own deadline.
type Virtual struct {
	mu      sync.Mutex
	now     time.Time
	seq     uint64
	pending pendingQueue
}

var _ Clock = (*Virtual)(nil)

func NewVirtual(start time.Time) *Virtual {
	return &Virtual{now: start}
}

func (v *Virtual) Now() time.Time {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.now
}

// AfterFunc schedules f at Now+d. A non-positive d schedules at Now; the
// callback still waits for the next Advance.
func (v *Virtual) AfterFunc(d time.Duration, f func()) Timer {
	v.mu.Lock()
	defer v.mu.Unlock()

	if d < 0 {
		d = 0
	}
	v.seq++
	t := &virtualTimer{
		clock:    v,
		deadline: v.now.Add(d),
		seq:      v.seq,
		fn:       f,
	}
	v.pending.insert(t)
	return t
}

// Advance moves the clock forward by d and fires every callback that falls due,
// including callbacks scheduled by other callbacks within the window.
func (v *Virtual) Advance(d time.Duration) {
	if d < 0 {
		panic(fmt.Errorf("%w: %v", ErrNegativeAdvance, d))
	}
	v.mu.Lock()
	target := v.now.Add(d)
	v.mu.Unlock()

	v.advanceTo(target)
}

// Set moves the clock to t. Times before Now are ignored.
func (v *Virtual) Set(t time.Time) {
	v.advanceTo(t)
}

// Pending reports how many callbacks are scheduled and not yet fired or stopped.
func (v *Virtual) Pending() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.pending.len()
}

func (v *Virtual) advanceTo(target time.Time) {
	for {
		v.mu.Lock()
		t, ok := v.pending.popDue(target)
		if !ok {
			if target.After(v.now) {
				v.now = target
			}
			v.mu.Unlock()
			return
		}
		if t.deadline.After(v.now) {
			v.now = t.deadline
		}
		t.done = true
		v.mu.Unlock()

		t.fn()
	}
}

type virtualTimer struct {
	clock    *Virtual
	deadline time.Time
	seq      uint64
	fn       func()
	done     bool // guarded by clock.mu
}

func (t *virtualTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()

	if t.done {
		return false
	}
	t.done = true
	t.clock.pending.remove(t)
	return true
}
