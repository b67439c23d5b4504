// Package clock abstracts the timer facility so that delayed work can run
// against wall time in production and against a manually advanced virtual
// time in tests.
package clock

import "time"

// Clock provides the current time and one-shot callbacks.
type Clock interface {
	// Now returns the current time according to this clock.
	Now() time.Time

	// AfterFunc calls f once the clock has advanced by at least d.
	// The returned Timer can cancel the call before it fires.
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer is a pending AfterFunc callback.
type Timer interface {
	// Stop prevents the callback from firing. It returns false if the
	// callback already fired or was already stopped.
	Stop() bool
}

// Real returns a Clock backed by the time package.
// Callbacks run on their own goroutine, as with time.AfterFunc.
func Real() Clock {
	return realClock{}
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
