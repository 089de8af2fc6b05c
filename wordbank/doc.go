// Package wordbank holds the categorized word source that puzzles are built from.
//
// A Bank maps category identifiers to the words that belong to them. It is
// constructed once per generation run and never mutated afterwards, so a
// single Bank may be shared freely between goroutines.
//
// What
//
//   - Bank: category → words, with a case-insensitive membership index
//     (word → every category containing it) used to keep puzzles unambiguous.
//   - Part-of-speech classification: categories whose identifier names a
//     grammatical class (noun, verb, ...) are tagged so selection can cap them.
//   - Word sources: JSON or YAML arrays of {word, categories, pos} records,
//     validated at the boundary, projected to category → words.
//   - Default: the built-in fallback bank (8 topics × 8 words).
//   - CheckSource / Clean: schema report and de-duplication for source files.
//   - GuessCategory: best-matching category for an arbitrary group of words.
//
// Invariants
//
//   - Every category held by a Bank has at least MinCategoryWords distinct words.
//     Smaller categories are dropped at construction.
//   - Categories and the words inside them are kept sorted, so every traversal
//     is deterministic and seeded generation is reproducible.
//   - Words are stored trimmed. Duplicates inside a category are collapsed
//     case-insensitively (first spelling wins).
//
// Determinism
//
//	Nothing in this package draws random numbers. Randomness belongs to the
//	generator, which only ever walks the sorted views exposed here.
package wordbank
