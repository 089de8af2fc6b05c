// SPDX-License-Identifier: MIT
// Package: wordgroups/generator
//
// rng.go - sampling helpers over the generator RNG.

package generator

import "math/rand"

// sample draws k items of items uniformly without replacement using a partial
// Fisher-Yates shuffle on a copy. The draw order is part of the result.
// Requires 0 ≤ k ≤ len(items).
//
// Complexity: O(len(items)) time and space.
func sample(r *rand.Rand, items []string, k int) []string {
	pool := make([]string, len(items))
	copy(pool, items)
	for i := 0; i < k; i++ {
		j := i + r.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k:k]
}

// shuffle permutes s in place.
func shuffle(r *rand.Rand, s []string) {
	r.Shuffle(len(s), func(i, j int) { s[i], s[j] = s[j], s[i] })
}
