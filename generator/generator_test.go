package generator_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/wordgroups/generator"
	"github.com/katalvlaran/wordgroups/puzzle"
	"github.com/katalvlaran/wordgroups/wordbank"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func mustGenerator(t *testing.T, b *wordbank.Bank, opts ...generator.Option) *generator.Generator {
	t.Helper()
	g, err := generator.New(b, opts...)
	require.NoError(t, err)
	return g
}

func TestNew_NilBank(t *testing.T) {
	_, err := generator.New(nil)
	assert.ErrorIs(t, err, generator.ErrNilBank)
}

func TestGenerate_BadCount(t *testing.T) {
	g := mustGenerator(t, wordbank.Default(), generator.WithSeed(1))
	for _, n := range []int{0, -3} {
		_, err := g.Generate(n)
		assert.ErrorIs(t, err, generator.ErrBadCount, "n=%d", n)
	}
}

// TestGenerate_Shape runs a large batch against the built-in bank and checks
// every structural guarantee of a generated puzzle.
func TestGenerate_Shape(t *testing.T) {
	g := mustGenerator(t, wordbank.Default(), generator.WithSeed(7))

	res, err := g.Generate(50)
	require.NoError(t, err)
	require.NoError(t, res.Err())
	require.Len(t, res.Puzzles, 50)
	assert.False(t, res.Short())
	assert.Equal(t, 50, res.Attempts, "the built-in bank never fails an attempt")
	assert.Empty(t, res.Failures)
	require.NoError(t, puzzle.Validate(res.Puzzles))

	for i, p := range res.Puzzles {
		assert.Equal(t, i+1, p.ID)
		assert.Equal(t, puzzle.TitleFor(i+1), p.Title)
		require.NoError(t, puzzle.ValidateStrict(p))
		assert.Len(t, p.GroupLabels, puzzle.GroupCount)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	run := func(seed int64) []puzzle.Puzzle {
		g := mustGenerator(t, wordbank.Default(), generator.WithSeed(seed))
		res, err := g.Generate(10)
		require.NoError(t, err)
		return res.Puzzles
	}

	assert.Equal(t, run(42), run(42))
	assert.NotEqual(t, run(42), run(43))

	viaRand := mustGenerator(t, wordbank.Default(), generator.WithRand(rand.New(rand.NewSource(42))))
	res, err := viaRand.Generate(10)
	require.NoError(t, err)
	assert.Equal(t, run(42), res.Puzzles)
}

// TestGenerate_FourCategories uses a bank with exactly four usable topics:
// every puzzle must use all of them and label each group correctly.
func TestGenerate_FourCategories(t *testing.T) {
	b := mustBank(t, fourTopics)
	g := mustGenerator(t, b, generator.WithSeed(3))

	res, err := g.Generate(5)
	require.NoError(t, err)
	require.Len(t, res.Puzzles, 5)

	byLabel := map[string][]string{}
	for c, words := range fourTopics {
		display := make([]string, len(words))
		for i, w := range words {
			display[i] = wordbank.Display(w)
		}
		byLabel[generator.FormatLabel(c)] = display
	}

	for _, p := range res.Puzzles {
		assert.ElementsMatch(t, []string{"Pets", "Fruit", "Toys", "School"}, p.GroupLabels)
		for i, grp := range p.Groups {
			assert.Subset(t, byLabel[p.GroupLabels[i]], []string(grp), "group %d labelled %q", i, p.GroupLabels[i])
		}
		var flat []string
		for _, grp := range p.Groups {
			flat = append(flat, grp...)
		}
		assert.ElementsMatch(t, flat, p.Choices, "no filler is needed with full groups")
	}
}

func TestGenerate_BudgetExhausted(t *testing.T) {
	b := mustBank(t, map[string][]string{
		"pets":  {"dog", "cat", "rabbit", "hamster"},
		"fruit": {"apple", "banana", "pear", "plum"},
		"toys":  {"ball", "doll", "kite", "teddy"},
	})
	g := mustGenerator(t, b, generator.WithSeed(1))

	res, err := g.Generate(1)
	require.NoError(t, err)
	assert.Empty(t, res.Puzzles)
	assert.True(t, res.Short())
	assert.Equal(t, generator.DefaultAttemptsPerPuzzle, res.Attempts)
	require.Len(t, res.Failures, generator.DefaultAttemptsPerPuzzle)
	for _, f := range res.Failures {
		assert.Equal(t, generator.InsufficientCategories, f.Reason)
	}
	assert.ErrorIs(t, res.Err(), generator.ErrBudgetExhausted)
	assert.Contains(t, res.Err().Error(), "generated 0 of 1 puzzles in 3 attempts")
}

func TestGenerate_SharedBudget(t *testing.T) {
	b := mustBank(t, map[string][]string{
		"pets": {"dog", "cat", "rabbit", "hamster"},
	})
	g := mustGenerator(t, b, generator.WithSeed(1), generator.WithAttemptsPerPuzzle(2))

	res, err := g.Generate(4)
	require.NoError(t, err)
	assert.Equal(t, 8, res.Attempts)
	assert.Len(t, res.Failures, 8)
}

// TestGenerate_Ambiguity: a word held by two categories never lands in a group.
func TestGenerate_Ambiguity(t *testing.T) {
	b := mustBank(t, map[string][]string{
		"fruit":  {"apple", "banana", "orange", "pear", "plum"},
		"colors": {"orange", "red", "blue", "green", "pink"},
		"pets":   {"dog", "cat", "rabbit", "hamster"},
		"toys":   {"ball", "doll", "kite", "teddy"},
		"school": {"pencil", "desk", "book", "chalk"},
	})
	g := mustGenerator(t, b, generator.WithSeed(5))

	res, err := g.Generate(30)
	require.NoError(t, err)
	require.Len(t, res.Puzzles, 30)
	for _, p := range res.Puzzles {
		for _, grp := range p.Groups {
			assert.NotContains(t, []string(grp), "Orange")
		}
	}
}

// TestGenerate_CaseVariantCategories: ids differing only in case form one
// category, so the batch completes and no label repeats.
func TestGenerate_CaseVariantCategories(t *testing.T) {
	b := mustBank(t, map[string][]string{
		"Fruit":  {"apple", "banana", "pear"},
		"fruit":  {"plum", "kiwi", "apple"},
		"pets":   {"dog", "cat", "rabbit", "hamster"},
		"toys":   {"ball", "doll", "kite", "teddy"},
		"school": {"pencil", "desk", "book", "chalk"},
	})
	g := mustGenerator(t, b, generator.WithSeed(1))

	res, err := g.Generate(5)
	require.NoError(t, err)
	require.Len(t, res.Puzzles, 5)
	assert.Empty(t, res.Failures)
	for _, p := range res.Puzzles {
		assert.ElementsMatch(t, []string{"Fruit", "Pets", "Toys", "School"}, p.GroupLabels)
	}
}

func TestGenerate_PartOfSpeech(t *testing.T) {
	m := map[string][]string{
		"noun": {"table", "chair", "river", "cloud", "stone"},
		"verb": {"run", "jump", "sing", "swim", "read"},
	}
	for k, v := range fourTopics {
		m[k] = v
	}
	b := mustBank(t, m)

	g := mustGenerator(t, b, generator.WithSeed(8), generator.WithPartOfSpeechChance(1))
	res, err := g.Generate(20)
	require.NoError(t, err)
	require.Len(t, res.Puzzles, 20)
	for _, p := range res.Puzzles {
		var pos int
		for _, l := range p.GroupLabels {
			if l == "Noun" || l == "Verb" {
				pos++
			}
		}
		assert.Equal(t, 1, pos, "labels %v", p.GroupLabels)
	}

	g = mustGenerator(t, b, generator.WithSeed(8), generator.WithPartOfSpeechChance(0))
	res, err = g.Generate(20)
	require.NoError(t, err)
	for _, p := range res.Puzzles {
		assert.NotContains(t, p.GroupLabels, "Noun")
		assert.NotContains(t, p.GroupLabels, "Verb")
	}
}

func TestGenerate_LogsFailures(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	b := mustBank(t, map[string][]string{
		"pets": {"dog", "cat", "rabbit", "hamster"},
	})
	g := mustGenerator(t, b, generator.WithSeed(1), generator.WithLogger(zap.New(core)))

	_, err := g.Generate(1)
	require.NoError(t, err)

	warns := logs.FilterMessage("puzzle attempt failed").All()
	require.Len(t, warns, generator.DefaultAttemptsPerPuzzle)
	assert.Equal(t, zapcore.WarnLevel, warns[0].Level)
	assert.Equal(t, "insufficient categories", warns[0].ContextMap()["reason"])

	summary := logs.FilterMessage("puzzle batch generated").All()
	require.Len(t, summary, 1)
	assert.EqualValues(t, 0, summary[0].ContextMap()["generated"])
}

func TestAttempt(t *testing.T) {
	g := mustGenerator(t, wordbank.Default(), generator.WithSeed(2))
	p, f := g.Attempt()
	require.False(t, f.Failed(), f.String())
	assert.Zero(t, p.ID)
	assert.Empty(t, p.Title)
	assert.NoError(t, puzzle.ValidatePuzzle(p))
}

func TestOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { generator.WithRand(nil) })
	assert.Panics(t, func() { generator.WithAttemptsPerPuzzle(0) })
	assert.Panics(t, func() { generator.WithPartOfSpeechChance(-0.1) })
	assert.Panics(t, func() { generator.WithPartOfSpeechChance(1.5) })
	assert.Panics(t, func() { generator.WithLogger(nil) })
	assert.NotPanics(t, func() { generator.WithPartOfSpeechChance(1) })
}
