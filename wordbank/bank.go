// SPDX-License-Identifier: MIT
// Package: wordgroups/wordbank
//
// bank.go - the immutable category → words Bank and its accessors.

package wordbank

import (
	"fmt"
	"slices"
	"strings"
)

// Bank is an immutable category → words mapping.
//
// All accessors return copies; callers may modify the returned slices.
type Bank struct {
	// categories holds every category id in ascending order.
	categories []string
	// words maps a category id to its sorted, de-duplicated, trimmed words.
	words map[string][]string
	// ids maps a category key (see Key) to the id spelling the bank keeps.
	ids map[string]string
	// members maps a word key (see Key) to the sorted ids of every category containing it.
	members map[string][]string
	// pos holds the lower-cased identifiers treated as part-of-speech categories.
	pos map[string]struct{}
}

// New builds a Bank from a category → words mapping.
//
// Category ids and words are trimmed; blank ones are skipped. Categories whose
// ids coincide after trimming and case folding ("Fruit", " fruit") are merged
// under the spelling that sorts first. Words repeated inside one category
// (case-insensitively) are kept once. Categories left with fewer than
// MinCategoryWords words are dropped.
//
// Returns ErrEmptyBank if nothing survives.
// Complexity: O(W log W) for W words in total.
func New(m map[string][]string, opts ...Option) (*Bank, error) {
	cfg := newBankConfig(opts...)

	// Merge by category key; iterate ids in sorted order so merges and the
	// kept spelling are stable.
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	spelling := make(map[string]string, len(m))
	raw := make(map[string][]string, len(m))
	for _, id := range ids {
		k := Key(id)
		if k == "" {
			continue
		}
		if _, ok := spelling[k]; !ok {
			spelling[k] = strings.TrimSpace(id)
		}
		raw[k] = append(raw[k], m[id]...)
	}

	b := &Bank{
		words:   make(map[string][]string, len(raw)),
		ids:     make(map[string]string, len(raw)),
		members: make(map[string][]string),
		pos:     cfg.pos,
	}
	for k, list := range raw {
		c := spelling[k]
		seen := make(map[string]struct{}, len(list))
		kept := make([]string, 0, len(list))
		for _, w := range list {
			w = strings.TrimSpace(w)
			wk := Key(w)
			if wk == "" {
				continue
			}
			if _, dup := seen[wk]; dup {
				continue
			}
			seen[wk] = struct{}{}
			kept = append(kept, w)
		}
		if len(kept) < MinCategoryWords {
			continue
		}
		slices.Sort(kept)
		b.words[c] = kept
		b.ids[k] = c
		b.categories = append(b.categories, c)
	}
	if len(b.categories) == 0 {
		return nil, fmt.Errorf("New: %d categories given: %w", len(m), ErrEmptyBank)
	}
	slices.Sort(b.categories)

	// Membership index, built in category order so each list comes out sorted.
	for _, c := range b.categories {
		for _, w := range b.words[c] {
			k := Key(w)
			b.members[k] = append(b.members[k], c)
		}
	}

	return b, nil
}

// Len reports the number of categories.
func (b *Bank) Len() int { return len(b.categories) }

// Categories returns every category id in ascending order.
func (b *Bank) Categories() []string {
	return slices.Clone(b.categories)
}

// Words returns the sorted words of category c, or nil if c is unknown.
// c is matched case-insensitively.
func (b *Bank) Words(c string) []string {
	return slices.Clone(b.words[b.ids[Key(c)]])
}

// Has reports whether c names a category of the bank, ignoring case.
func (b *Bank) Has(c string) bool {
	_, ok := b.ids[Key(c)]
	return ok
}

// Canonical returns the spelling the bank keeps for category c.
func (b *Bank) Canonical(c string) (string, bool) {
	id, ok := b.ids[Key(c)]
	return id, ok
}

// IsPartOfSpeech reports whether the category id names a grammatical class
// (noun, verb, ...) rather than a topic. The id does not have to be held by
// the bank; classification depends on the identifier text only.
func (b *Bank) IsPartOfSpeech(c string) bool {
	_, ok := b.pos[strings.ToLower(strings.TrimSpace(c))]
	return ok
}

// Partition splits the categories into part-of-speech and regular ones.
// Both slices are sorted.
func (b *Bank) Partition() (pos, regular []string) {
	for _, c := range b.categories {
		if b.IsPartOfSpeech(c) {
			pos = append(pos, c)
		} else {
			regular = append(regular, c)
		}
	}
	return pos, regular
}

// Memberships returns the sorted ids of every category that contains word,
// compared case-insensitively.
func (b *Bank) Memberships(word string) []string {
	return slices.Clone(b.members[Key(word)])
}

// Exclusive reports whether word belongs to category c and to no other
// category of the bank. Words shared between categories are what make a
// puzzle ambiguous, so only exclusive words are eligible for a group.
func (b *Bank) Exclusive(word, c string) bool {
	m := b.members[Key(word)]
	return len(m) == 1 && m[0] == b.ids[Key(c)]
}

// Pool returns every word of every category, in category order then word
// order. A word held by several categories appears once per category.
func (b *Bank) Pool() []string {
	var n int
	for _, c := range b.categories {
		n += len(b.words[c])
	}
	out := make([]string, 0, n)
	for _, c := range b.categories {
		out = append(out, b.words[c]...)
	}
	return out
}

// Map returns a deep copy of the category → words mapping.
func (b *Bank) Map() map[string][]string {
	out := make(map[string][]string, len(b.categories))
	for _, c := range b.categories {
		out[c] = slices.Clone(b.words[c])
	}
	return out
}
