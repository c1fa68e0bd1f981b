// Package collection provides small order-preserving helpers over slices.
package collection

// DistinctBy returns key(item) for each item, dropping repeated keys.
// Keys keep the order of their first occurrence. The result is never nil.
//
// Examples:
//
//	DistinctBy([]string{"b", "a", "b"}, strings.ToUpper) // ["B", "A"]
//	DistinctBy([]int{}, identity)                        // []
func DistinctBy[T any, K comparable](items []T, key func(T) K) []K {
	seen := make(map[K]struct{}, len(items))
	out := make([]K, 0, len(items))
	for _, item := range items {
		k := key(item)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}

// NilIfEmpty returns nil for an empty slice and s otherwise.
func NilIfEmpty[T any](s []T) []T {
	if len(s) == 0 {
		return nil
	}
	return s
}
