// SPDX-License-Identifier: MIT
// Package: wordgroups/generator
//
// outcome.go - Failure and Reason, the explicit attempt outcome.

package generator

import "fmt"

// Reason classifies why an attempt failed.
type Reason int

const (
	// ReasonNone marks a successful step.
	ReasonNone Reason = iota
	// InsufficientCategories: the category pool cannot supply 4 distinct categories.
	InsufficientCategories
	// InsufficientWords: a selected category has fewer than 4 eligible words.
	InsufficientWords
	// FillerExhausted: the bank cannot top the choices up to 16 distinct words.
	FillerExhausted
)

// String returns a stable name for the reason.
func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case InsufficientCategories:
		return "insufficient categories"
	case InsufficientWords:
		return "insufficient words"
	case FillerExhausted:
		return "filler exhausted"
	default:
		return fmt.Sprintf("reason(%d)", int(r))
	}
}

// Failure is the explicit outcome of a failed attempt step. The zero value
// means success. Failures are expected and retried; they are not errors.
type Failure struct {
	Reason Reason
	// Category is the category that could not be filled, when relevant.
	Category string
	// Detail is a human-readable explanation for logs.
	Detail string
}

// Failed reports whether f describes a failure.
func (f Failure) Failed() bool { return f.Reason != ReasonNone }

// String renders f for logs; "ok" for the zero value.
func (f Failure) String() string {
	if !f.Failed() {
		return "ok"
	}
	if f.Category != "" {
		return fmt.Sprintf("%s (%s): %s", f.Reason, f.Category, f.Detail)
	}
	return fmt.Sprintf("%s: %s", f.Reason, f.Detail)
}

func fail(reason Reason, category, format string, args ...any) Failure {
	return Failure{Reason: reason, Category: category, Detail: fmt.Sprintf(format, args...)}
}
