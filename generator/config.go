// SPDX-License-Identifier: MIT
// Package: wordgroups/generator
//
// config.go - resolved generator configuration and its defaults.
//
// Defaults:
//   - attemptsPerPuzzle = 3
//   - posChance         = 0.25
//   - rng               = time-seeded (pass WithSeed for reproducible runs)
//   - log               = zap.NewNop()

package generator

import (
	"math/rand"
	"time"

	"go.uber.org/zap"
)

const (
	// DefaultAttemptsPerPuzzle is the per-puzzle share of the attempt budget.
	DefaultAttemptsPerPuzzle = 3
	// DefaultPartOfSpeechChance is the probability of offering one part-of-speech category.
	DefaultPartOfSpeechChance = 0.25
)

type config struct {
	rng               *rand.Rand
	attemptsPerPuzzle int
	posChance         float64
	log               *zap.Logger
}

func newConfig(opts ...Option) config {
	cfg := config{
		attemptsPerPuzzle: DefaultAttemptsPerPuzzle,
		posChance:         DefaultPartOfSpeechChance,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if cfg.log == nil {
		cfg.log = zap.NewNop()
	}
	return cfg
}
