// SPDX-License-Identifier: MIT
// Package: wordgroups/puzzle
//
// errors.go - ShapeError, the Invariant enum and ErrShapeViolation.

package puzzle

import (
	"errors"
	"fmt"
)

// ErrShapeViolation is wrapped by every *ShapeError.
var ErrShapeViolation = errors.New("puzzle: shape violation")

// Invariant names one structural rule of a puzzle batch.
type Invariant int

const (
	// NotSequence: the top-level value is not a sequence of puzzles.
	NotSequence Invariant = iota + 1
	// NotRecord: an element of the batch is not a puzzle-shaped object.
	NotRecord
	// ChoiceCount16: choices is not a sequence of exactly ChoiceCount words.
	ChoiceCount16
	// GroupCount4: groups is not a sequence of exactly GroupCount groups.
	GroupCount4
	// GroupSize4: a group is not a sequence of exactly GroupSize words.
	GroupSize4
	// WordInChoices: a group word is missing from choices.
	WordInChoices
	// DisjointGroups: a word appears in more than one group.
	DisjointGroups
	// DistinctChoices: choices contains the same word twice (strict only).
	DistinctChoices
	// DistinctGroupWords: a group repeats a word (strict only).
	DistinctGroupWords
	// LabelCount: groupLabels is present but does not have GroupCount entries (strict only).
	LabelCount
	// PositiveID: the puzzle id is not positive (strict only).
	PositiveID
)

// String returns a stable, human-readable name for the invariant.
func (i Invariant) String() string {
	switch i {
	case NotSequence:
		return "batch is a sequence"
	case NotRecord:
		return "puzzle is an object"
	case ChoiceCount16:
		return "16 choices"
	case GroupCount4:
		return "4 groups"
	case GroupSize4:
		return "4 words per group"
	case WordInChoices:
		return "group words are choices"
	case DisjointGroups:
		return "groups are disjoint"
	case DistinctChoices:
		return "choices are distinct"
	case DistinctGroupWords:
		return "group words are distinct"
	case LabelCount:
		return "4 group labels"
	case PositiveID:
		return "positive id"
	default:
		return "unknown invariant"
	}
}

// ShapeError reports the first invariant a batch violated.
type ShapeError struct {
	// Index is the 0-based position of the offending puzzle, or -1 for the batch itself.
	Index int
	// Invariant is the rule that failed.
	Invariant Invariant
	// Detail describes the offending value.
	Detail string
}

// Error formats as "puzzle N: invariant: detail".
func (e *ShapeError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("puzzle: %s: %s", e.Invariant, e.Detail)
	}
	return fmt.Sprintf("puzzle %d: %s: %s", e.Index+1, e.Invariant, e.Detail)
}

// Unwrap lets errors.Is(err, ErrShapeViolation) match.
func (e *ShapeError) Unwrap() error { return ErrShapeViolation }

func violation(index int, inv Invariant, format string, args ...any) error {
	return &ShapeError{Index: index, Invariant: inv, Detail: fmt.Sprintf(format, args...)}
}
