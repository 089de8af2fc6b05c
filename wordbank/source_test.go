package wordbank_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/wordgroups/wordbank"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sourceJSON = `[
  {"word": "dog", "categories": ["pets"], "pos": ["noun"]},
  {"word": "cat", "categories": ["pets", "jazz"], "pos": ["noun"]},
  {"word": "rabbit", "categories": ["pets"], "pos": ["noun"]},
  {"word": "hamster", "categories": [" pets "], "pos": ["noun"]},
  {"word": "swing", "categories": ["jazz"], "pos": ["noun", "verb"]}
]`

const sourceYAML = `
- word: dog
  categories: [pets]
  pos: [noun]
- word: cat
  categories: [pets]
- word: rabbit
  categories: [pets]
- word: hamster
  categories: [pets]
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// TestParse_JSON decodes a valid JSON source and projects it to a bank.
func TestParse_JSON(t *testing.T) {
	entries, err := wordbank.Parse([]byte(sourceJSON), wordbank.FormatJSON)
	require.NoError(t, err)
	require.Len(t, entries, 5)
	assert.Equal(t, []string{"noun", "verb"}, entries[4].POS)

	b, err := wordbank.FromEntries(entries)
	require.NoError(t, err)
	// "jazz" has only two words and is dropped; " pets " merges into "pets".
	assert.Equal(t, []string{"pets"}, b.Categories())
	assert.Equal(t, []string{"cat", "dog", "hamster", "rabbit"}, b.Words("pets"))
}

// TestParse_YAML decodes a YAML source; pos is optional for loading.
func TestParse_YAML(t *testing.T) {
	entries, err := wordbank.Parse([]byte(sourceYAML), wordbank.FormatYAML)
	require.NoError(t, err)
	require.Len(t, entries, 4)
	assert.Nil(t, entries[1].POS)
}

// TestParse_Errors covers malformed documents and invalid records.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		data string
		want error
	}{
		{"not json", `{{`, wordbank.ErrMalformedSource},
		{"object root", `{"word": "dog"}`, wordbank.ErrMalformedSource},
		{"blank word", `[{"word": "  ", "categories": ["pets"]}]`, wordbank.ErrInvalidEntry},
		{"missing categories", `[{"word": "dog"}]`, wordbank.ErrInvalidEntry},
		{"empty categories", `[{"word": "dog", "categories": []}]`, wordbank.ErrInvalidEntry},
		{"blank category", `[{"word": "dog", "categories": ["pets", " "]}]`, wordbank.ErrInvalidEntry},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := wordbank.Parse([]byte(tc.data), wordbank.FormatJSON)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestFormatFor maps extensions to formats.
func TestFormatFor(t *testing.T) {
	f, err := wordbank.FormatFor("words.JSON")
	require.NoError(t, err)
	assert.Equal(t, wordbank.FormatJSON, f)

	f, err = wordbank.FormatFor("dir/words.yml")
	require.NoError(t, err)
	assert.Equal(t, wordbank.FormatYAML, f)

	_, err = wordbank.FormatFor("words.csv")
	assert.ErrorIs(t, err, wordbank.ErrMalformedSource)
}

// TestLoadFile reads both supported encodings from disk.
func TestLoadFile(t *testing.T) {
	b, err := wordbank.LoadFile(writeFile(t, "words.json", sourceJSON))
	require.NoError(t, err)
	assert.Equal(t, 1, b.Len())

	b, err = wordbank.LoadFile(writeFile(t, "words.yaml", sourceYAML))
	require.NoError(t, err)
	assert.Equal(t, []string{"pets"}, b.Categories())

	_, err = wordbank.LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, wordbank.ErrSourceUnavailable)
}

// TestFromEntries_FirstSpellingWins merges categories case-insensitively and
// keeps the spelling met first in the source.
func TestFromEntries_FirstSpellingWins(t *testing.T) {
	b, err := wordbank.FromEntries([]wordbank.Entry{
		{Word: "dog", Categories: []string{"Pets"}},
		{Word: "cat", Categories: []string{"pets"}},
		{Word: "rabbit", Categories: []string{"PETS"}},
		{Word: "hamster", Categories: []string{" pets"}},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Pets"}, b.Categories())
	assert.Len(t, b.Words("pets"), 4)
}

// TestLoadOrDefault verifies every fallback path returns the built-in bank.
func TestLoadOrDefault(t *testing.T) {
	def := wordbank.Default()

	b, fallback := wordbank.LoadOrDefault(writeFile(t, "words.json", sourceJSON))
	assert.NoError(t, fallback)
	assert.Equal(t, []string{"pets"}, b.Categories())

	cases := []struct {
		name string
		path string
		want error
	}{
		{"no path", "", wordbank.ErrSourceUnavailable},
		{"missing", filepath.Join(t.TempDir(), "nope.json"), wordbank.ErrSourceUnavailable},
		{"malformed", writeFile(t, "bad.json", `[1, 2`), wordbank.ErrMalformedSource},
		{"too small", writeFile(t, "small.json", `[{"word": "a", "categories": ["x"]}]`), wordbank.ErrEmptyBank},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b, fallback := wordbank.LoadOrDefault(tc.path)
			require.NotNil(t, b)
			assert.ErrorIs(t, fallback, tc.want)
			assert.Equal(t, def.Map(), b.Map())
		})
	}
}
