// SPDX-License-Identifier: MIT
// Package: wordgroups/wordbank
//
// options.go - functional options for New and the part-of-speech set.

package wordbank

import "strings"

// MinCategoryWords is the smallest category a Bank keeps: one full group.
const MinCategoryWords = 4

// DefaultPartOfSpeech lists the category identifiers recognized as
// part-of-speech categories when no WithPartOfSpeech option is given.
// Matching is case-insensitive on the trimmed identifier.
var DefaultPartOfSpeech = []string{
	"noun", "nouns",
	"verb", "verbs",
	"adjective", "adjectives",
	"adverb", "adverbs",
}

// Option customizes Bank construction.
type Option func(*bankConfig)

type bankConfig struct {
	pos map[string]struct{}
}

// WithPartOfSpeech replaces the recognized part-of-speech identifiers.
// Panics on an empty list or a blank identifier; an explicit empty set
// would silently disable the part-of-speech cap.
func WithPartOfSpeech(ids ...string) Option {
	if len(ids) == 0 {
		panic("wordbank: WithPartOfSpeech()")
	}
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		k := strings.ToLower(strings.TrimSpace(id))
		if k == "" {
			panic("wordbank: WithPartOfSpeech(blank)")
		}
		set[k] = struct{}{}
	}
	return func(c *bankConfig) {
		c.pos = set
	}
}

func newBankConfig(opts ...Option) bankConfig {
	cfg := bankConfig{pos: make(map[string]struct{}, len(DefaultPartOfSpeech))}
	for _, id := range DefaultPartOfSpeech {
		cfg.pos[id] = struct{}{}
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
