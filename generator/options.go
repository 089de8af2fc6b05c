// SPDX-License-Identifier: MIT
// Package: wordgroups/generator
//
// options.go - functional options for New.
//
// Option constructors validate their input and panic on meaningless values;
// the generator itself never panics.

package generator

import (
	"math/rand"

	"go.uber.org/zap"
)

// Option customizes a Generator.
type Option func(*config)

// WithSeed seeds the generator's RNG. Equal seeds give equal batches.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand hands the generator an explicit RNG. The generator becomes its
// only user; sharing r elsewhere breaks reproducibility. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("generator: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithAttemptsPerPuzzle sets the attempt budget per requested puzzle (≥1).
func WithAttemptsPerPuzzle(k int) Option {
	if k < 1 {
		panic("generator: WithAttemptsPerPuzzle(k<1)")
	}
	return func(c *config) {
		c.attemptsPerPuzzle = k
	}
}

// WithPartOfSpeechChance sets the probability p ∈ [0,1] that a puzzle draws
// one of its categories from the part-of-speech pool.
func WithPartOfSpeechChance(p float64) Option {
	if p < 0 || p > 1 {
		panic("generator: WithPartOfSpeechChance(p outside [0,1])")
	}
	return func(c *config) {
		c.posChance = p
	}
}

// WithLogger routes attempt failures and batch summaries to l. Panics on nil;
// use zap.NewNop() to silence.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("generator: WithLogger(nil)")
	}
	return func(c *config) {
		c.log = l
	}
}
