package objprint

import "maps"

// The rule maps of a Config are never written after they are shared. Each
// mutation copies the one map it changes and leaves the others in place.

func withEntry[K comparable, V any](m map[K]V, k K, v V) map[K]V {
	out := make(map[K]V, len(m)+1)
	maps.Copy(out, m)
	out[k] = v
	return out
}

func withMember[K comparable](s map[K]struct{}, k K) map[K]struct{} {
	return withEntry(s, k, struct{}{})
}
