// SPDX-License-Identifier: MIT
// Package: wordgroups/puzzle
//
// validate.go - shape validation of typed and JSON batches.

package puzzle

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Validate checks every puzzle of a batch and returns the first violation.
// An empty batch is valid.
//
// Complexity: O(P·ChoiceCount) for P puzzles.
func Validate(batch []Puzzle) error {
	for i, p := range batch {
		if err := checkShape(i, p.Choices, groupWords(p.Groups)); err != nil {
			return err
		}
	}
	return nil
}

// ValidatePuzzle checks a single puzzle.
func ValidatePuzzle(p Puzzle) error {
	return checkShape(-1, p.Choices, groupWords(p.Groups))
}

// ValidateStrict runs ValidatePuzzle and additionally requires a positive id,
// case-insensitively distinct choices and group words, and exactly GroupCount
// labels when labels are present. Generated puzzles must pass it.
func ValidateStrict(p Puzzle) error {
	if p.ID < 1 {
		return violation(-1, PositiveID, "id %d", p.ID)
	}
	if err := ValidatePuzzle(p); err != nil {
		return err
	}

	seen := make(map[string]struct{}, len(p.Choices))
	for _, c := range p.Choices {
		k := foldWord(c)
		if _, dup := seen[k]; dup {
			return violation(-1, DistinctChoices, "%q appears twice", c)
		}
		seen[k] = struct{}{}
	}
	for gi, g := range p.Groups {
		inGroup := make(map[string]struct{}, len(g))
		for _, w := range g {
			k := foldWord(w)
			if _, dup := inGroup[k]; dup {
				return violation(-1, DistinctGroupWords, "group %d repeats %q", gi+1, w)
			}
			inGroup[k] = struct{}{}
		}
	}
	if len(p.GroupLabels) != 0 && len(p.GroupLabels) != GroupCount {
		return violation(-1, LabelCount, "got %d labels", len(p.GroupLabels))
	}
	return nil
}

// ValidateJSON checks an externally supplied batch encoded as JSON. Besides
// the record checks it verifies the top level is an array of objects whose
// choices and groups are arrays of strings.
func ValidateJSON(data []byte) error {
	var root any
	if err := json.Unmarshal(data, &root); err != nil {
		return violation(-1, NotSequence, "invalid JSON: %v", err)
	}
	list, ok := root.([]any)
	if !ok {
		return violation(-1, NotSequence, "top level is %s", kindOf(root))
	}

	for i, item := range list {
		rec, ok := item.(map[string]any)
		if !ok {
			return violation(i, NotRecord, "element is %s", kindOf(item))
		}

		choices, ok := stringList(rec["choices"])
		if !ok || len(choices) != ChoiceCount {
			return violation(i, ChoiceCount16, "choices is %s", describe(rec["choices"]))
		}

		rawGroups, ok := rec["groups"].([]any)
		if !ok || len(rawGroups) != GroupCount {
			return violation(i, GroupCount4, "groups is %s", describe(rec["groups"]))
		}
		groups := make([][]string, len(rawGroups))
		for gi, rg := range rawGroups {
			words, ok := stringList(rg)
			if !ok {
				return violation(i, GroupSize4, "group %d is %s", gi+1, describe(rg))
			}
			groups[gi] = words
		}

		if err := checkShape(i, choices, groups); err != nil {
			return err
		}
	}
	return nil
}

// checkShape enforces the batch invariants on one record. index is the
// record position used in the error (-1 for a lone puzzle).
func checkShape(index int, choices []string, groups [][]string) error {
	if len(choices) != ChoiceCount {
		return violation(index, ChoiceCount16, "got %d choices", len(choices))
	}
	if len(groups) != GroupCount {
		return violation(index, GroupCount4, "got %d groups", len(groups))
	}

	inChoices := make(map[string]struct{}, len(choices))
	for _, c := range choices {
		inChoices[c] = struct{}{}
	}

	used := make(map[string]int, ChoiceCount)
	for gi, g := range groups {
		if len(g) != GroupSize {
			return violation(index, GroupSize4, "group %d has %d words", gi+1, len(g))
		}
		for _, w := range g {
			if _, ok := inChoices[w]; !ok {
				return violation(index, WordInChoices, "group %d word %q not found in choices", gi+1, w)
			}
			if owner, ok := used[w]; ok && owner != gi {
				return violation(index, DisjointGroups, "%q is in groups %d and %d", w, owner+1, gi+1)
			}
			used[w] = gi
		}
	}
	return nil
}

func groupWords(groups []Group) [][]string {
	out := make([][]string, len(groups))
	for i, g := range groups {
		out[i] = g
	}
	return out
}

func foldWord(w string) string {
	return strings.ToLower(strings.TrimSpace(w))
}

// stringList converts a decoded JSON array of strings.
func stringList(v any) ([]string, bool) {
	raw, ok := v.([]any)
	if !ok {
		return nil, false
	}
	out := make([]string, len(raw))
	for i, item := range raw {
		s, ok := item.(string)
		if !ok {
			return nil, false
		}
		out[i] = s
	}
	return out, true
}

func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "an object"
	case []any:
		return "an array"
	case string:
		return "a string"
	case float64:
		return "a number"
	case bool:
		return "a boolean"
	default:
		return fmt.Sprintf("%T", v)
	}
}

func describe(v any) string {
	if raw, ok := v.([]any); ok {
		if _, strs := stringList(raw); !strs {
			return "an array with non-string elements"
		}
		return fmt.Sprintf("an array of %d", len(raw))
	}
	return kindOf(v)
}
