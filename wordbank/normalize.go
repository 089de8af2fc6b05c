// SPDX-License-Identifier: MIT
// Package: wordgroups/wordbank
//
// normalize.go - comparison keys and display forms of words.

package wordbank

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Key returns the comparison form of a word: trimmed and lower-cased.
// Two words are "the same word" for uniqueness and exclusivity checks
// exactly when their keys are equal.
func Key(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}

// Display returns the presentation form of a word: trimmed, first letter
// upper-cased, the rest lower-cased ("ice CREAM" → "Ice cream").
func Display(word string) string {
	w := strings.TrimSpace(word)
	if w == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(w)
	return string(unicode.ToUpper(r)) + strings.ToLower(w[size:])
}
