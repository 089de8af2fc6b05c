package generator

import (
	"math/rand"

	"github.com/katalvlaran/wordgroups/puzzle"
	"github.com/katalvlaran/wordgroups/wordbank"
)

// Test hooks into the pipeline steps.

func SelectCategories(b *wordbank.Bank, r *rand.Rand, posChance float64) ([]string, Failure) {
	return selectCategories(b, r, posChance)
}

func BuildGroups(b *wordbank.Bank, cats []string, r *rand.Rand, used ...string) ([]puzzle.Group, Failure) {
	u := make(usedSet)
	for _, w := range used {
		u.add(w)
	}
	return buildGroups(b, cats, r, u)
}

func FillChoices(b *wordbank.Bank, choices []string, r *rand.Rand) ([]string, Failure) {
	u := make(usedSet)
	for _, w := range choices {
		u.add(w)
	}
	return fillChoices(b, choices, r, u)
}

func EligibleWords(b *wordbank.Bank, c string, used ...string) []string {
	u := make(usedSet)
	for _, w := range used {
		u.add(w)
	}
	return eligibleWords(b, c, u)
}

func Sample(r *rand.Rand, items []string, k int) []string { return sample(r, items, k) }
