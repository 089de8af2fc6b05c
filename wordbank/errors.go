// SPDX-License-Identifier: MIT
// Package: wordgroups/wordbank
//
// errors.go - sentinel errors for the wordbank package.

package wordbank

import "errors"

// Sentinel errors for word-bank construction and word-source loading.
// Callers branch with errors.Is; context is attached with %w wrapping.
var (
	// ErrEmptyBank indicates that no category survived construction
	// (all were blank or had fewer than MinCategoryWords words).
	ErrEmptyBank = errors.New("wordbank: no usable categories")

	// ErrSourceUnavailable indicates the word source could not be read
	// (no path given, missing file, permission problem).
	ErrSourceUnavailable = errors.New("wordbank: word source unavailable")

	// ErrMalformedSource indicates the word source could not be decoded
	// or uses an unsupported file format.
	ErrMalformedSource = errors.New("wordbank: malformed word source")

	// ErrInvalidEntry indicates a decoded record failed structural validation.
	ErrInvalidEntry = errors.New("wordbank: invalid entry")
)
