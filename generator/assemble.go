// SPDX-License-Identifier: MIT
// Package: wordgroups/generator
//
// assemble.go - PuzzleAssembler and label formatting.

package generator

import (
	"math/rand"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/katalvlaran/wordgroups/puzzle"
	"github.com/katalvlaran/wordgroups/wordbank"
)

// FormatLabel turns a category id into a display label: hyphens and
// underscores become spaces, runs of whitespace collapse, and every word is
// title-cased ("farm-animals" → "Farm Animals").
func FormatLabel(category string) string {
	s := strings.NewReplacer("-", " ", "_", " ").Replace(category)
	return cases.Title(language.English).String(strings.Join(strings.Fields(s), " "))
}

// assemble flattens the groups into choices, applies the filler step,
// shuffles the choices and labels the groups in category order. ID and Title
// are left for the caller.
func assemble(b *wordbank.Bank, cats []string, groups []puzzle.Group, r *rand.Rand, used usedSet) (puzzle.Puzzle, Failure) {
	choices := make([]string, 0, puzzle.ChoiceCount)
	for _, g := range groups {
		choices = append(choices, g...)
	}

	choices, f := fillChoices(b, choices, r, used)
	if f.Failed() {
		return puzzle.Puzzle{}, f
	}
	shuffle(r, choices)

	labels := make([]string, len(cats))
	for i, c := range cats {
		labels[i] = FormatLabel(c)
	}

	return puzzle.Puzzle{
		Choices:     choices,
		Groups:      groups,
		GroupLabels: labels,
	}, Failure{}
}
