// SPDX-License-Identifier: MIT
// Package: wordgroups/puzzle
//
// types.go - the Puzzle record and shape constants.

package puzzle

import (
	"fmt"
	"slices"
)

// Shape constants of a puzzle.
const (
	GroupCount  = 4
	GroupSize   = 4
	ChoiceCount = GroupCount * GroupSize
)

// Group is the set of words sharing one hidden category.
// Order carries no meaning.
type Group []string

// Puzzle is one finished puzzle. GroupLabels[i] names Groups[i].
type Puzzle struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Choices     []string `json:"choices"`
	Groups      []Group  `json:"groups"`
	GroupLabels []string `json:"groupLabels,omitempty"`
}

// TitleFor returns the canonical title for a 1-based puzzle id.
func TitleFor(id int) string {
	return fmt.Sprintf("Puzzle %d", id)
}

// Clone returns a deep copy of p.
func (p Puzzle) Clone() Puzzle {
	out := Puzzle{
		ID:          p.ID,
		Title:       p.Title,
		Choices:     slices.Clone(p.Choices),
		GroupLabels: slices.Clone(p.GroupLabels),
	}
	if p.Groups != nil {
		out.Groups = make([]Group, len(p.Groups))
		for i, g := range p.Groups {
			out.Groups[i] = slices.Clone(g)
		}
	}
	return out
}
