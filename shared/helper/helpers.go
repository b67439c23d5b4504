package helper

import (
	"errors"
	"fmt"
)

var ErrUnexpectedType = errors.New("unexpected type")

// Cast asserts v to T. A nil v yields the zero value of T and true,
// so that nil interface arguments survive a round trip through []any.
func Cast[T any](v any) (res T, ok bool) {
	if v == nil {
		return res, true
	}
	res, ok = v.(T)
	return
}

// MustCast is the panic-on-failure variant of Cast.
// Use when the value was produced by the same generic instantiation that reads it back.
func MustCast[T any](v any) T {
	res, ok := Cast[T](v)
	if !ok {
		var zero T
		panic(fmt.Errorf("%w: %T, want %T", ErrUnexpectedType, v, zero))
	}
	return res
}

// ArgAt returns args[i] asserted to T.
func ArgAt[T any](args []any, i int) T {
	if i >= len(args) {
		panic(fmt.Errorf("argument %d out of range: %d given", i, len(args)))
	}
	return MustCast[T](args[i])
}
