// Package purefn provides wrappers that change how often a function runs.
//
// Once runs a function a single time and replays its result forever after.
// Memoize runs a function once per distinct argument list and replays the
// stored result for every later call with an equal argument list.
//
// Both come in a variadic form, taking func(args ...any) O, and in typed
// forms for common arities:
//   - Once0 to Once3
//   - Memoize1 to Memoize4, and the dual-output Memoize1x2 and Memoize2x2
//
// # Cache keys
//
// Memoize derives its key from the whole argument list. The number of
// arguments and the dynamic type of each one are part of the key, so
//
//	f([]int{1, 2, 3})
//	f(1, 2, 3)
//
// are two different entries. Values are compared structurally: scalars by
// value, fmt.Stringer values by their String form, slices, maps and pointers
// by their canonical JSON encoding.
//
// # Bounding
//
// The table is unbounded by default. WithCapacity switches to a two-generation
// table: once the current generation is full it becomes the old generation and
// the previous old generation is dropped.
//
// WARNING: Do not memoize impure functions (e.g., those depending on time, I/O, etc).
// A dropped or racing entry re-runs the function.
package purefn
