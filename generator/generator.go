// SPDX-License-Identifier: MIT
// Package: wordgroups/generator
//
// generator.go - the batch orchestrator.
//
// State per request of n puzzles:
//   - pending:   attempts remain and len(batch) < n
//   - succeeded: len(batch) == n
//   - exhausted: attemptsPerPuzzle·n attempts spent
//
// The budget is shared by the whole batch: a run of failures while building
// one puzzle consumes attempts a later puzzle could have used.

package generator

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/wordgroups/puzzle"
	"github.com/katalvlaran/wordgroups/wordbank"
)

// Generator builds puzzles from one immutable bank with one RNG.
// It is not safe for concurrent use.
type Generator struct {
	bank *wordbank.Bank
	cfg  config
}

// New returns a Generator over bank. Options are applied in order.
func New(bank *wordbank.Bank, opts ...Option) (*Generator, error) {
	if bank == nil {
		return nil, fmt.Errorf("New: %w", ErrNilBank)
	}
	return &Generator{bank: bank, cfg: newConfig(opts...)}, nil
}

// Result is the outcome of Generate.
type Result struct {
	// Puzzles holds the accepted puzzles; ids run 1..len(Puzzles).
	Puzzles []puzzle.Puzzle
	// Requested is the count passed to Generate.
	Requested int
	// Attempts is the number of attempts spent.
	Attempts int
	// Failures lists every failed attempt in order.
	Failures []Failure
}

// Short reports whether fewer puzzles than requested were built.
func (r *Result) Short() bool { return len(r.Puzzles) < r.Requested }

// Err returns nil for a complete batch and an error wrapping
// ErrBudgetExhausted for a short one.
func (r *Result) Err() error {
	if !r.Short() {
		return nil
	}
	return fmt.Errorf("generated %d of %d puzzles in %d attempts: %w",
		len(r.Puzzles), r.Requested, r.Attempts, ErrBudgetExhausted)
}

// Attempt runs the pipeline once: select categories, build groups, fill and
// assemble. The returned puzzle has no ID or Title. On failure the puzzle is
// the zero value and the Failure says why.
func (g *Generator) Attempt() (puzzle.Puzzle, Failure) {
	r := g.cfg.rng

	cats, f := selectCategories(g.bank, r, g.cfg.posChance)
	if f.Failed() {
		return puzzle.Puzzle{}, f
	}

	used := make(usedSet, puzzle.ChoiceCount)
	groups, f := buildGroups(g.bank, cats, r, used)
	if f.Failed() {
		return puzzle.Puzzle{}, f
	}

	return assemble(g.bank, cats, groups, r, used)
}

// Generate builds up to n puzzles within the attempt budget.
//
// Failed attempts are logged at warn level and retried. Running out of budget
// is not an error here: the short batch is returned and Result.Err reports it.
// A non-nil error means misuse (n < 1) or a puzzle that broke the shape
// contract, which is a defect in this package.
func (g *Generator) Generate(n int) (*Result, error) {
	if n < 1 {
		return nil, fmt.Errorf("Generate: n=%d: %w", n, ErrBadCount)
	}

	budget := n * g.cfg.attemptsPerPuzzle
	res := &Result{
		Puzzles:   make([]puzzle.Puzzle, 0, n),
		Requested: n,
	}
	log := g.cfg.log

	for res.Attempts < budget && len(res.Puzzles) < n {
		res.Attempts++

		p, f := g.Attempt()
		if f.Failed() {
			res.Failures = append(res.Failures, f)
			log.Warn("puzzle attempt failed",
				zap.Int("attempt", res.Attempts),
				zap.Int("budget", budget),
				zap.Stringer("reason", f.Reason),
				zap.String("category", f.Category),
				zap.String("detail", f.Detail),
			)
			continue
		}

		p.ID = len(res.Puzzles) + 1
		p.Title = puzzle.TitleFor(p.ID)
		if err := puzzle.ValidateStrict(p); err != nil {
			return nil, fmt.Errorf("Generate: puzzle %d: %w", p.ID, err)
		}
		res.Puzzles = append(res.Puzzles, p)
	}

	log.Info("puzzle batch generated",
		zap.Int("requested", n),
		zap.Int("generated", len(res.Puzzles)),
		zap.Int("attempts", res.Attempts),
		zap.Int("failures", len(res.Failures)),
	)
	return res, nil
}
