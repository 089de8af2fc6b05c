// SPDX-License-Identifier: MIT
// Package: wordgroups/wordbank
//
// guess.go - best-matching category for a group of words.

package wordbank

import (
	"regexp"
	"strings"
)

var guessSeparators = regexp.MustCompile(`[-\s]+`)

// guessKey folds case and treats hyphens and runs of whitespace as one space,
// so "See-saw" and "see saw" compare equal.
func guessKey(w string) string {
	return guessSeparators.ReplaceAllString(strings.ToLower(strings.TrimSpace(w)), " ")
}

// GuessCategory returns the category that best explains a group of words.
//
// Scoring per category: 2 points per word of the group found in it, 1 bonus
// point when at least half the group is found, and a size/1000 tie-break that
// favours larger categories. A category is only returned when its score
// reaches 1; otherwise ok is false.
//
// Complexity: O(C·(g + w)) for C categories of at most w words and a group of g words.
func (b *Bank) GuessCategory(group []string) (category string, ok bool) {
	if len(group) == 0 {
		return "", false
	}
	keys := make([]string, len(group))
	for i, w := range group {
		keys[i] = guessKey(w)
	}

	bestScore := -1.0
	for _, c := range b.categories {
		pool := make(map[string]struct{}, len(b.words[c]))
		for _, w := range b.words[c] {
			pool[guessKey(w)] = struct{}{}
		}
		var matches int
		for _, k := range keys {
			if _, hit := pool[k]; hit {
				matches++
			}
		}
		if matches == 0 {
			continue
		}
		score := float64(matches * 2)
		if matches*2 >= len(group) {
			score++
		}
		score += float64(len(b.words[c])) / 1000

		// Categories are walked in sorted order; strict > keeps the first on exact ties.
		if score > bestScore {
			bestScore, category = score, c
		}
	}
	if bestScore < 1 {
		return "", false
	}
	return category, true
}
