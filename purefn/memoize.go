package purefn

import (
	"github.com/on-the-ground/underbar/shared/helper"

	"go.uber.org/zap"
)

// Memoize wraps fn with a table keyed by its argument list.
// A call with an argument list equal to an earlier one returns the stored
// result without invoking fn. A panic in fn propagates and stores nothing.
func Memoize[O any](fn func(args ...any) O, opts ...Option) func(args ...any) O {
	cfg := newConfig(opts)
	memo := newTable[O](cfg)
	return func(args ...any) O {
		key := cacheKey(args)
		v, ok := memo.Load(key)
		if !ok {
			cfg.logger.Debug("memo miss", zap.String("key", key))
			v = fn(args...)
			memo.Store(key, v)
		}
		return v
	}
}

func Memoize1[I1, O any](fn func(I1) O, opts ...Option) func(I1) O {
	memoized := Memoize(
		func(args ...any) O {
			return fn(helper.ArgAt[I1](args, 0))
		},
		opts...,
	)
	return func(i1 I1) O {
		return memoized(i1)
	}
}

func Memoize2[I1, I2, O any](fn func(I1, I2) O, opts ...Option) func(I1, I2) O {
	memoized := Memoize(
		func(args ...any) O {
			return fn(helper.ArgAt[I1](args, 0), helper.ArgAt[I2](args, 1))
		},
		opts...,
	)
	return func(i1 I1, i2 I2) O {
		return memoized(i1, i2)
	}
}

func Memoize3[I1, I2, I3, O any](fn func(I1, I2, I3) O, opts ...Option) func(I1, I2, I3) O {
	memoized := Memoize(
		func(args ...any) O {
			return fn(helper.ArgAt[I1](args, 0), helper.ArgAt[I2](args, 1), helper.ArgAt[I3](args, 2))
		},
		opts...,
	)
	return func(i1 I1, i2 I2, i3 I3) O {
		return memoized(i1, i2, i3)
	}
}

func Memoize4[I1, I2, I3, I4, O any](fn func(I1, I2, I3, I4) O, opts ...Option) func(I1, I2, I3, I4) O {
	memoized := Memoize(
		func(args ...any) O {
			return fn(
				helper.ArgAt[I1](args, 0),
				helper.ArgAt[I2](args, 1),
				helper.ArgAt[I3](args, 2),
				helper.ArgAt[I4](args, 3),
			)
		},
		opts...,
	)
	return func(i1 I1, i2 I2, i3 I3, i4 I4) O {
		return memoized(i1, i2, i3, i4)
	}
}

type pair[O1, O2 any] struct {
	O1 O1
	O2 O2
}

// Memoize1x2 memoizes a function with two results, typically (value, error).
// Errors are cached like any other result.
func Memoize1x2[I1, O1, O2 any](fn func(I1) (O1, O2), opts ...Option) func(I1) (O1, O2) {
	memoized := Memoize1(
		func(i1 I1) pair[O1, O2] {
			v1, v2 := fn(i1)
			return pair[O1, O2]{O1: v1, O2: v2}
		},
		opts...,
	)
	return func(i1 I1) (O1, O2) {
		res := memoized(i1)
		return res.O1, res.O2
	}
}

func Memoize2x2[I1, I2, O1, O2 any](fn func(I1, I2) (O1, O2), opts ...Option) func(I1, I2) (O1, O2) {
	memoized := Memoize2(
		func(i1 I1, i2 I2) pair[O1, O2] {
			v1, v2 := fn(i1, i2)
			return pair[O1, O2]{O1: v1, O2: v2}
		},
		opts...,
	)
	return func(i1 I1, i2 I2) (O1, O2) {
		res := memoized(i1, i2)
		return res.O1, res.O2
	}
}
