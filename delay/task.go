package delay

import (
	"sync/atomic"
	"time"

	"github.com/on-the-ground/underbar/clock"

	"github.com/rickb777/date/v2/timespan"
)

const (
	taskPending int32 = iota
	taskFired
	taskCancelled
)

// Task is a scheduled call. It fires at most once.
type Task struct {
	id     string
	window timespan.TimeSpan
	timer  clock.Timer
	state  atomic.Int32
}

func (t *Task) ID() string {
	return t.id
}

// Window spans from the scheduling moment to the deadline.
func (t *Task) Window() timespan.TimeSpan {
	return t.window
}

func (t *Task) Deadline() time.Time {
	return t.window.End()
}

func (t *Task) Fired() bool {
	return t.state.Load() == taskFired
}

// Cancel prevents a pending task from firing.
// It returns false if the task already fired or was already cancelled.
func (t *Task) Cancel() bool {
	if !t.state.CompareAndSwap(taskPending, taskCancelled) {
		return false
	}
	t.timer.Stop()
	return true
}
