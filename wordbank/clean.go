// SPDX-License-Identifier: MIT
// Package: wordgroups/wordbank
//
// clean.go - duplicate-entry merging for word sources.

package wordbank

import (
	"slices"
	"strings"
)

// Clean removes duplicate entries (same word, compared exactly) from a word
// source. Among duplicates the entry with more categories wins; on a tie the
// first entry is kept and the parts of speech of both are merged and sorted.
// The result is sorted by word. The input slice is not modified.
//
// Complexity: O(E log E) for E entries.
func Clean(entries []Entry) []Entry {
	byWord := make(map[string]int, len(entries))
	out := make([]Entry, 0, len(entries))

	for _, e := range entries {
		i, seen := byWord[e.Word]
		if !seen {
			byWord[e.Word] = len(out)
			out = append(out, cloneEntry(e))
			continue
		}
		switch kept := out[i]; {
		case len(e.Categories) > len(kept.Categories):
			out[i] = cloneEntry(e)
		case len(e.Categories) == len(kept.Categories):
			out[i].POS = mergePOS(kept.POS, e.POS)
		}
	}

	slices.SortStableFunc(out, func(a, b Entry) int {
		return strings.Compare(a.Word, b.Word)
	})
	return out
}

func cloneEntry(e Entry) Entry {
	return Entry{
		Word:       e.Word,
		Categories: slices.Clone(e.Categories),
		POS:        slices.Clone(e.POS),
	}
}

func mergePOS(a, b []string) []string {
	merged := make([]string, 0, len(a)+len(b))
	merged = append(merged, a...)
	merged = append(merged, b...)
	slices.Sort(merged)
	return slices.Compact(merged)
}
