package pure

// Extend copies every entry of each source into dst, later sources
// overriding earlier ones, and returns dst itself. A nil dst is allocated.
func Extend[K comparable, V any](dst map[K]V, srcs ...map[K]V) map[K]V {
	if dst == nil {
		dst = make(map[K]V)
	}
	for _, src := range srcs {
		for k, v := range src {
			dst[k] = v
		}
	}
	return dst
}

// Defaults copies an entry into dst only when dst has no entry for its key.
// Presence counts, not the value: a zero value in dst is kept. The first
// source that provides a key wins. Defaults returns dst itself.
func Defaults[K comparable, V any](dst map[K]V, srcs ...map[K]V) map[K]V {
	if dst == nil {
		dst = make(map[K]V)
	}
	for _, src := range srcs {
		for k, v := range src {
			if _, ok := dst[k]; !ok {
				dst[k] = v
			}
		}
	}
	return dst
}
