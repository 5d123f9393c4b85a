package strategy

import "golang.org/x/exp/constraints"

// minBy returns the first element of s with the smallest key.
// s must not be empty.
func minBy[T any, K constraints.Ordered](s []T, key func(T) K) T {
	best := s[0]
	bestKey := key(best)
	for _, v := range s[1:] {
		if k := key(v); k < bestKey {
			best, bestKey = v, k
		}
	}
	return best
}
