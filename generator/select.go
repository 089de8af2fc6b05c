// SPDX-License-Identifier: MIT
// Package: wordgroups/generator
//
// select.go - CategorySelector with the part-of-speech cap.

package generator

import (
	"math/rand"

	"github.com/katalvlaran/wordgroups/puzzle"
	"github.com/katalvlaran/wordgroups/wordbank"
)

// selectCategories picks puzzle.GroupCount distinct categories.
//
// With probability posChance, and only when the bank has part-of-speech
// categories, one is drawn from that pool and the rest from the regular pool;
// otherwise all are drawn from the regular pool. The result order is the draw
// order and is authoritative for the rest of the attempt.
func selectCategories(b *wordbank.Bank, r *rand.Rand, posChance float64) ([]string, Failure) {
	pos, regular := b.Partition()

	if len(pos) > 0 && r.Float64() < posChance {
		need := puzzle.GroupCount - 1
		if len(regular) < need {
			return nil, fail(InsufficientCategories, "",
				"need %d regular categories besides a part-of-speech one, bank has %d", need, len(regular))
		}
		picked := make([]string, 0, puzzle.GroupCount)
		picked = append(picked, pos[r.Intn(len(pos))])
		return append(picked, sample(r, regular, need)...), Failure{}
	}

	if len(regular) < puzzle.GroupCount {
		return nil, fail(InsufficientCategories, "",
			"need %d regular categories, bank has %d", puzzle.GroupCount, len(regular))
	}
	return sample(r, regular, puzzle.GroupCount), Failure{}
}
