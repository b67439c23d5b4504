package purefn

import (
	"sync/atomic"

	"github.com/on-the-ground/underbar/shared/helper"
)

// Once wraps fn so that only the first call runs it.
// The first call's arguments are passed through and its result is returned
// by every later call, whatever arguments those calls receive.
//
// The guard is set before fn runs. A call that arrives while the first one is
// still running, from inside fn or from another goroutine, returns the zero
// value without blocking. If fn panics, the panic reaches the first caller and
// later calls return the zero value.
func Once[O any](fn func(args ...any) O) func(args ...any) O {
	var (
		hasRun atomic.Bool
		result atomic.Pointer[O]
	)
	return func(args ...any) O {
		if r := result.Load(); r != nil {
			return *r
		}
		if !hasRun.CompareAndSwap(false, true) {
			var zero O
			return zero
		}
		v := fn(args...)
		result.Store(&v)
		return v
	}
}

func Once0[O any](fn func() O) func() O {
	onced := Once(func(...any) O { return fn() })
	return func() O {
		return onced()
	}
}

func Once1[I1, O any](fn func(I1) O) func(I1) O {
	onced := Once(func(args ...any) O {
		return fn(helper.ArgAt[I1](args, 0))
	})
	return func(i1 I1) O {
		return onced(i1)
	}
}

func Once2[I1, I2, O any](fn func(I1, I2) O) func(I1, I2) O {
	onced := Once(func(args ...any) O {
		return fn(helper.ArgAt[I1](args, 0), helper.ArgAt[I2](args, 1))
	})
	return func(i1 I1, i2 I2) O {
		return onced(i1, i2)
	}
}

func Once3[I1, I2, I3, O any](fn func(I1, I2, I3) O) func(I1, I2, I3) O {
	onced := Once(func(args ...any) O {
		return fn(helper.ArgAt[I1](args, 0), helper.ArgAt[I2](args, 1), helper.ArgAt[I3](args, 2))
	})
	return func(i1 I1, i2 I2, i3 I3) O {
		return onced(i1, i2, i3)
	}
}
