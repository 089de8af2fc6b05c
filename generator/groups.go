// SPDX-License-Identifier: MIT
// Package: wordgroups/generator
//
// groups.go - GroupBuilder: exclusive, unused words per category.

package generator

import (
	"math/rand"

	"github.com/katalvlaran/wordgroups/puzzle"
	"github.com/katalvlaran/wordgroups/wordbank"
)

// usedSet tracks the words placed in the current attempt by wordbank.Key.
type usedSet map[string]struct{}

func (u usedSet) has(w string) bool {
	_, ok := u[wordbank.Key(w)]
	return ok
}

func (u usedSet) add(w string) {
	u[wordbank.Key(w)] = struct{}{}
}

// eligibleWords returns the display forms of the words of c that belong to no
// other category and are not yet used, in bank order.
func eligibleWords(b *wordbank.Bank, c string, used usedSet) []string {
	words := b.Words(c)
	out := make([]string, 0, len(words))
	for _, w := range words {
		if !b.Exclusive(w, c) || used.has(w) {
			continue
		}
		out = append(out, wordbank.Display(w))
	}
	return out
}

// buildGroups samples one group per category, in the given order. The first
// category with fewer than puzzle.GroupSize eligible words fails the whole
// attempt; no partial groups are returned. used receives every placed word.
//
// Complexity: O(Σ|words(c)|) over the selected categories.
func buildGroups(b *wordbank.Bank, cats []string, r *rand.Rand, used usedSet) ([]puzzle.Group, Failure) {
	groups := make([]puzzle.Group, 0, len(cats))
	for _, c := range cats {
		eligible := eligibleWords(b, c, used)
		if len(eligible) < puzzle.GroupSize {
			return nil, fail(InsufficientWords, c,
				"%d eligible words, need %d", len(eligible), puzzle.GroupSize)
		}
		g := sample(r, eligible, puzzle.GroupSize)
		for _, w := range g {
			used.add(w)
		}
		groups = append(groups, puzzle.Group(g))
	}
	return groups, Failure{}
}
