package pure

import (
	"math/rand/v2"
	"slices"
)

// Shuffle returns a uniformly random permutation of s in a new slice.
func Shuffle[T any](s []T) []T {
	return shuffle(s, rand.IntN)
}

// ShuffleWith is Shuffle drawing from r, for reproducible orderings.
func ShuffleWith[T any](r *rand.Rand, s []T) []T {
	return shuffle(s, r.IntN)
}

// Fisher-Yates on a copy.
func shuffle[T any](s []T, intN func(int) int) []T {
	out := slices.Clone(s)
	for i := len(out) - 1; i > 0; i-- {
		j := intN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
