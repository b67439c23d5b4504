// Package pure holds small collection helpers that never mutate their inputs,
// except Extend and Defaults, whose whole purpose is to fill a destination map.
package pure

// Contains reports whether v is an element of s.
func Contains[T comparable](s []T, v T) bool {
	for _, e := range s {
		if e == v {
			return true
		}
	}
	return false
}

// ContainsValue reports whether v is one of the values of m.
func ContainsValue[K, V comparable](m map[K]V, v V) bool {
	for _, e := range m {
		if e == v {
			return true
		}
	}
	return false
}

func Identity[T any](v T) T {
	return v
}
