// SPDX-License-Identifier: MIT
// Package: wordgroups/puzzle
//
// match.go - order-insensitive group matching.

package puzzle

import "strings"

// Match reports whether selected equals one of the groups, ignoring order
// and surrounding whitespace. An empty selection never matches.
func Match(selected []string, groups []Group) bool {
	if len(selected) == 0 {
		return false
	}
	want := make(map[string]int, len(selected))
	for _, s := range selected {
		want[strings.TrimSpace(s)]++
	}

	for _, g := range groups {
		if len(g) != len(selected) {
			continue
		}
		have := make(map[string]int, len(g))
		for _, w := range g {
			have[strings.TrimSpace(w)]++
		}
		if sameCounts(want, have) {
			return true
		}
	}
	return false
}

func sameCounts(a, b map[string]int) bool {
	if len(a) != len(b) {
		return false
	}
	for k, n := range a {
		if b[k] != n {
			return false
		}
	}
	return true
}
