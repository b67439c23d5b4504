package pure

import (
	"math"
	"reflect"
)

// Truthy reports whether v counts as true when no predicate is given.
// nil, false, numeric zero, NaN, "" and nil pointers, maps, slices, funcs and
// chans are falsy. Everything else, including empty non-nil collections, is truthy.
func Truthy(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f != 0 && !math.IsNaN(f)
	case reflect.Complex64, reflect.Complex128:
		return rv.Complex() != 0
	case reflect.String:
		return rv.Len() != 0
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan,
		reflect.Interface, reflect.UnsafePointer:
		return !rv.IsNil()
	}
	return true
}

func truthyPredicate[T any](pred func(T) bool) func(T) bool {
	if pred != nil {
		return pred
	}
	return func(v T) bool {
		return Truthy(v)
	}
}

// Every reports whether pred holds for all elements of s. It is true for an
// empty s and stops at the first failure. A nil pred tests Truthy.
func Every[T any](s []T, pred func(T) bool) bool {
	pred = truthyPredicate(pred)
	for _, v := range s {
		if !pred(v) {
			return false
		}
	}
	return true
}

// Some reports whether pred holds for at least one element of s. It is false
// for an empty s and stops at the first success. A nil pred tests Truthy.
func Some[T any](s []T, pred func(T) bool) bool {
	pred = truthyPredicate(pred)
	for _, v := range s {
		if pred(v) {
			return true
		}
	}
	return false
}
