// Package puzzle defines the word-grouping puzzle record and the shape
// validator that every batch, generated or externally supplied, must pass.
//
// A Puzzle presents ChoiceCount words that a player partitions into
// GroupCount hidden groups of GroupSize words each.
//
// Validation entry points:
//
//	Validate(batch)      structural checks on typed records
//	ValidatePuzzle(p)    the same checks on one record
//	ValidateStrict(p)    adds uniqueness and label checks (the generator's post-condition)
//	ValidateJSON(data)   the same checks on untrusted JSON, including its top-level shape
//
// Every failure is a *ShapeError naming the violated Invariant and wrapping
// ErrShapeViolation. Validation never mutates its input and is idempotent.
package puzzle
