// SPDX-License-Identifier: MIT
// Package: wordgroups/generator
//
// errors.go - sentinel errors for the generator package.
//
// Constraint failures inside an attempt are NOT errors: they are reported as
// Failure values (see outcome.go) and retried. Only misuse, an exhausted budget
// and broken post-conditions surface as errors.

package generator

import "errors"

// ErrNilBank indicates New was called without a word bank.
var ErrNilBank = errors.New("generator: bank is required")

// ErrBadCount indicates a requested puzzle count below 1.
var ErrBadCount = errors.New("generator: count must be positive")

// ErrBudgetExhausted indicates the attempt budget ran out before the requested
// number of puzzles was built. Returned by Result.Err, never by Generate.
var ErrBudgetExhausted = errors.New("generator: attempt budget exhausted")
