// SPDX-License-Identifier: MIT
// Package: wordgroups/generator
//
// filler.go - FillerSelector: tops choices up to 16 words.

package generator

import (
	"math/rand"

	"github.com/katalvlaran/wordgroups/puzzle"
	"github.com/katalvlaran/wordgroups/wordbank"
)

// fillChoices tops choices up to puzzle.ChoiceCount with words drawn uniformly
// from the whole bank pool, rejecting and redrawing anything already used.
// With full groups it returns choices unchanged.
//
// Before drawing it checks that enough distinct unused words exist, so the
// reject-and-resample loop always terminates.
//
// Complexity: O(W) to build the unused pool plus an expected O(W/U) draws per
// word when U of the W pool words are unused.
func fillChoices(b *wordbank.Bank, choices []string, r *rand.Rand, used usedSet) ([]string, Failure) {
	need := puzzle.ChoiceCount - len(choices)
	if need <= 0 {
		return choices, Failure{}
	}

	pool := b.Pool()
	fresh := make(usedSet, len(pool))
	for _, w := range pool {
		if !used.has(w) {
			fresh.add(w)
		}
	}
	if len(fresh) < need {
		return nil, fail(FillerExhausted, "",
			"%d unused words in bank, need %d more choices", len(fresh), need)
	}

	for need > 0 {
		w := pool[r.Intn(len(pool))]
		if used.has(w) {
			continue
		}
		used.add(w)
		choices = append(choices, wordbank.Display(w))
		need--
	}
	return choices, Failure{}
}
