// Package generator builds word-grouping puzzles from a wordbank.Bank.
//
// Pipeline of one attempt (all randomness drawn from the Generator's single RNG):
//
//	CategorySelector  pick 4 distinct categories, at most 1 part-of-speech
//	GroupBuilder      per category, in selection order, sample 4 eligible words
//	FillerSelector    top choices up to 16 from the whole bank (normally a no-op)
//	PuzzleAssembler   shuffle choices, format labels, emit a puzzle.Puzzle
//
// A word is eligible for category c when it belongs to c and to no other
// category of the bank (cross-category exclusivity) and was not already placed
// in an earlier group of the same attempt. Selection order is authoritative:
// earlier groups shrink the eligible sets of later ones, and categories are
// never reordered to make packing easier.
//
// Retry policy
//
//	Generate(n) spends at most AttemptsPerPuzzle·n attempts, shared by the whole
//	batch. A failed attempt yields a Failure (reason code + detail), is logged and
//	discarded. When the budget runs out the batch is returned short; Result.Err
//	reports that as ErrBudgetExhausted and the caller decides whether it is fatal.
//
// Determinism
//
//	Same bank, same options, same seed ⇒ identical batches. A Generator owns its
//	*rand.Rand and is not safe for concurrent use; build one per goroutine.
//
// Every accepted puzzle passes puzzle.ValidateStrict before it is appended.
package generator
