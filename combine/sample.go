// Package combine: sampling and shuffling of raw path sets.
package combine

import "math/rand"

// SampleN draws a uniform sample of exactly n paths without replacement
// when len(paths) > n. Otherwise paths is returned unchanged. n < 1 means
// "no cap". The input slice is never mutated.
//
// SampleN runs before deduplication, so a post-dedup set may be smaller
// than n even when the raw set was larger.
func SampleN(paths [][]string, n int, rng *rand.Rand) [][]string {
	if n < 1 || len(paths) <= n {
		return paths
	}
	out := make([][]string, 0, n)
	for _, i := range rng.Perm(len(paths))[:n] {
		out = append(out, paths[i])
	}
	return out
}

// Shuffle permutes paths in place.
func Shuffle(paths [][]string, rng *rand.Rand) {
	rng.Shuffle(len(paths), func(i, j int) {
		paths[i], paths[j] = paths[j], paths[i]
	})
}
