package delay_test

import (
	"testing"
	"time"

	"github.com/on-the-ground/underbar/clock"
	"github.com/on-the-ground/underbar/delay"
	"github.com/on-the-ground/underbar/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

var epoch = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

type callSpy struct {
	calls [][]any
}

func (s *callSpy) fn(args ...any) {
	s.calls = append(s.calls, args)
}

func newVirtualScheduler() (*clock.Virtual, *delay.Scheduler) {
	clk := clock.NewVirtual(epoch)
	return clk, delay.New(delay.WithClock(clk), delay.WithLogger(logging.NewTest()))
}

func TestDelay_OnlyAfterWait(t *testing.T) {
	clk, s := newVirtualScheduler()
	spy := &callSpy{}

	task := s.Delay(spy.fn, 100*time.Millisecond)
	clk.Advance(99 * time.Millisecond)

	assert.Empty(t, spy.calls)
	assert.False(t, task.Fired())

	clk.Advance(1 * time.Millisecond)

	assert.Len(t, spy.calls, 1)
	assert.True(t, task.Fired())

	clk.Advance(time.Hour)
	assert.Len(t, spy.calls, 1)
}

func TestDelay_ForwardsArguments(t *testing.T) {
	clk, s := newVirtualScheduler()
	spy := &callSpy{}

	args := []any{1, 2}
	s.Delay(spy.fn, 100*time.Millisecond, args...)
	args[0] = "mutated"
	clk.Advance(100 * time.Millisecond)

	require.Len(t, spy.calls, 1)
	assert.Equal(t, []any{1, 2}, spy.calls[0])
}

func TestDelay_TaskWindow(t *testing.T) {
	clk, s := newVirtualScheduler()
	clk.Advance(time.Minute)

	task := s.Delay(func(...any) {}, 5*time.Second)
	assert.NotEmpty(t, task.ID())
	assert.WithinDuration(t, epoch.Add(time.Minute), task.Window().Start(), 0)
	assert.WithinDuration(t, epoch.Add(time.Minute+5*time.Second), task.Deadline(), 0)

	other := s.Delay(func(...any) {}, 5*time.Second)
	assert.NotEqual(t, task.ID(), other.ID())
}

func TestDelay_NegativeWaitIsZero(t *testing.T) {
	clk, s := newVirtualScheduler()
	spy := &callSpy{}

	task := s.Delay(spy.fn, -time.Second, "x")
	assert.WithinDuration(t, epoch, task.Deadline(), 0)
	assert.Empty(t, spy.calls)

	clk.Advance(0)
	assert.Equal(t, [][]any{{"x"}}, spy.calls)
}

func TestDelay_Cancel(t *testing.T) {
	clk, s := newVirtualScheduler()
	spy := &callSpy{}

	task := s.Delay(spy.fn, time.Second)
	assert.True(t, task.Cancel())
	assert.False(t, task.Cancel())
	assert.Equal(t, 0, clk.Pending())

	clk.Advance(time.Minute)
	assert.Empty(t, spy.calls)
	assert.False(t, task.Fired())

	fired := s.Delay(spy.fn, time.Second)
	clk.Advance(time.Second)
	assert.False(t, fired.Cancel())
	assert.True(t, fired.Fired())
}

func TestDelay_TypedHelpers(t *testing.T) {
	clk, s := newVirtualScheduler()
	var got []string

	delay.Delay0(s, func() { got = append(got, "zero") }, 3*time.Millisecond)
	delay.Delay1(s, func(a int) { got = append(got, "one") }, 2*time.Millisecond, 7)
	delay.Delay2(s, func(a string, b int) {
		assert.Equal(t, "b", a)
		assert.Equal(t, 2, b)
		got = append(got, "two")
	}, time.Millisecond, "b", 2)

	clk.Advance(10 * time.Millisecond)
	assert.Equal(t, []string{"two", "one", "zero"}, got)
}

func TestDelay_RealClock(t *testing.T) {
	defer goleak.VerifyNone(t)

	done := make(chan []any, 1)
	start := time.Now()
	delay.Delay(func(args ...any) { done <- args }, 20*time.Millisecond, "a", 1)

	select {
	case args := <-done:
		assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
		assert.Equal(t, []any{"a", 1}, args)
	case <-time.After(2 * time.Second):
		t.Fatal("delayed function did not run")
	}
}
