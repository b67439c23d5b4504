// Package delay runs a function once after a wait, forwarding extra arguments.
//
// Scheduling goes through a clock.Clock, so tests can drive delays with a
// clock.Virtual instead of waiting on wall time:
//
//	clk := clock.NewVirtual(time.Now())
//	s := delay.New(delay.WithClock(clk))
//	s.Delay(callback, 100*time.Millisecond, 1, 2)
//	clk.Advance(100 * time.Millisecond) // callback(1, 2) runs here
package delay

import (
	"slices"
	"time"

	"github.com/on-the-ground/underbar/clock"
	"github.com/on-the-ground/underbar/internal/logging"

	"github.com/google/uuid"
	"github.com/rickb777/date/v2/timespan"
	"go.uber.org/zap"
)

// Scheduler schedules delayed calls on a clock.
type Scheduler struct {
	clock  clock.Clock
	logger *zap.Logger
}

type Option func(*Scheduler)

// WithClock sets the time source. Defaults to clock.Real().
func WithClock(c clock.Clock) Option {
	return func(s *Scheduler) {
		s.clock = c
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(s *Scheduler) {
		s.logger = logger
	}
}

func New(opts ...Option) *Scheduler {
	s := &Scheduler{}
	for _, opt := range opts {
		opt(s)
	}
	if s.clock == nil {
		s.clock = clock.Real()
	}
	s.logger = logging.OrNop(s.logger)
	return s
}

var defaultScheduler = New()

// Delay calls fn(args...) once wait has elapsed on the real clock.
func Delay(fn func(args ...any), wait time.Duration, args ...any) *Task {
	return defaultScheduler.Delay(fn, wait, args...)
}

// Delay calls fn(args...) exactly once, no earlier than wait after now.
// A negative wait is treated as zero. A panic in fn propagates on whichever
// goroutine the clock fires callbacks on.
func (s *Scheduler) Delay(fn func(args ...any), wait time.Duration, args ...any) *Task {
	if wait < 0 {
		wait = 0
	}
	scheduledAt := s.clock.Now()
	task := &Task{
		id:     uuid.New().String(),
		window: timespan.BetweenTimes(scheduledAt, scheduledAt.Add(wait)),
	}
	forwarded := slices.Clone(args)

	task.timer = s.clock.AfterFunc(wait, func() {
		if !task.state.CompareAndSwap(taskPending, taskFired) {
			return
		}
		s.logger.Debug("delayed task firing",
			zap.String("task_id", task.id),
			zap.Time("deadline", task.Deadline()),
		)
		fn(forwarded...)
	})

	s.logger.Debug("delayed task scheduled",
		zap.String("task_id", task.id),
		zap.Duration("wait", wait),
		zap.Int("num_args", len(forwarded)),
	)
	return task
}

func Delay0(s *Scheduler, fn func(), wait time.Duration) *Task {
	return s.Delay(func(...any) { fn() }, wait)
}

func Delay1[A any](s *Scheduler, fn func(A), wait time.Duration, a A) *Task {
	return s.Delay(func(...any) { fn(a) }, wait)
}

func Delay2[A, B any](s *Scheduler, fn func(A, B), wait time.Duration, a A, b B) *Task {
	return s.Delay(func(...any) { fn(a, b) }, wait)
}
