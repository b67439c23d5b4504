package clock_test

import (
	"testing"
	"time"

	"github.com/on-the-ground/underbar/clock"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestReal_AfterFunc(t *testing.T) {
	defer goleak.VerifyNone(t)

	clk := clock.Real()
	start := clk.Now()
	done := make(chan time.Time, 1)
	clk.AfterFunc(10*time.Millisecond, func() { done <- time.Now() })

	select {
	case firedAt := <-done:
		assert.GreaterOrEqual(t, firedAt.Sub(start), 10*time.Millisecond)
	case <-time.After(time.Second):
		t.Fatal("real clock callback did not fire")
	}
}

func TestReal_Stop(t *testing.T) {
	defer goleak.VerifyNone(t)

	called := make(chan struct{}, 1)
	timer := clock.Real().AfterFunc(time.Hour, func() { called <- struct{}{} })
	assert.True(t, timer.Stop())
	assert.False(t, timer.Stop())
	assert.Empty(t, called)
}
