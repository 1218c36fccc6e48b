// Package maputil provides small generic helpers for working with maps.
package maputil

import "sort"

// SortedKeys returns the keys of m sorted lexicographically. It always
// returns a non-nil slice so callers can range without nil checks.
func SortedKeys[K ~string, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
