// SPDX-License-Identifier: MIT
// Package: wordgroups/wordbank
//
// default.go - built-in fallback word bank.

package wordbank

// defaultTopics is the built-in fallback source: eight topical categories of
// eight words each. No word appears in two topics, so every word is eligible.
var defaultTopics = map[string][]string{
	"pets":       {"dog", "cat", "rabbit", "hamster", "parrot", "turtle", "fish", "guinea"},
	"playground": {"slide", "swing", "seesaw", "sandbox", "rope", "climb", "bench", "shade"},
	"fruit":      {"apple", "banana", "orange", "grape", "pear", "peach", "plum", "kiwi"},
	"transport":  {"car", "bus", "bike", "truck", "train", "boat", "scooter", "tram"},
	"school":     {"pencil", "eraser", "crayon", "notebook", "teacher", "student", "desk", "board"},
	"food":       {"pizza", "burger", "fries", "milk", "cookie", "bread", "cheese", "soup"},
	"home":       {"spoon", "fork", "plate", "cup", "bed", "lamp", "sofa", "table"},
	"toys":       {"ball", "doll", "blocks", "book", "puzzle", "toycar", "teddy", "kite"},
}

// Default returns the built-in fallback bank. It is used whenever a word
// source is missing or unusable, and generation behaves identically
// against it and against a loaded bank.
func Default(opts ...Option) *Bank {
	b, err := New(defaultTopics, opts...)
	if err != nil {
		// The table above is static; failure here is a programming error.
		panic(err)
	}
	return b
}
