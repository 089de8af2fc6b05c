// SPDX-License-Identifier: MIT
// Package: wordgroups/wordbank
//
// check.go - schema report for raw word sources.

package wordbank

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ValidPartsOfSpeech is the vocabulary accepted in an entry's pos list.
var ValidPartsOfSpeech = []string{
	"noun", "verb", "adjective", "adverb", "preposition", "conjunction", "interjection",
}

// Report is the outcome of CheckSource.
type Report struct {
	// Entries is the number of top-level records (0 when the root is unusable).
	Entries int
	// Words is the number of distinct valid words seen.
	Words int
	// Categories is the number of distinct category names seen.
	Categories int
	// Problems lists every violation found, in source order.
	Problems []string
}

// Valid reports whether no problem was found.
func (r Report) Valid() bool { return len(r.Problems) == 0 }

// CheckSource performs a schema check of a raw word source and reports every
// problem instead of stopping at the first one. Unlike Parse it tolerates
// arbitrary shapes, so it can describe exactly what is wrong with a file.
//
// Checked per entry: it is an object; word, categories and pos are present;
// word is a non-blank string not seen before; categories is a non-empty list
// of non-blank strings; pos is a non-empty list drawn from ValidPartsOfSpeech.
//
// Complexity: O(E + C + P) for E entries carrying C categories and P parts of speech.
func CheckSource(data []byte, f Format) Report {
	var root any
	var err error
	switch f {
	case FormatJSON:
		err = json.Unmarshal(data, &root)
	case FormatYAML:
		err = yaml.Unmarshal(data, &root)
	default:
		err = fmt.Errorf("unknown format %d", f)
	}
	if err != nil {
		return Report{Problems: []string{fmt.Sprintf("invalid %s format: %v", f, err)}}
	}

	list, ok := root.([]any)
	if !ok {
		return Report{Problems: []string{"root element must be an array"}}
	}

	valid := make(map[string]struct{}, len(ValidPartsOfSpeech))
	for _, p := range ValidPartsOfSpeech {
		valid[p] = struct{}{}
	}

	rep := Report{Entries: len(list)}
	words := make(map[string]struct{}, len(list))
	cats := make(map[string]struct{})
	problem := func(idx int, format string, args ...any) {
		rep.Problems = append(rep.Problems, fmt.Sprintf("entry %d: ", idx)+fmt.Sprintf(format, args...))
	}

	for i, item := range list {
		idx := i + 1
		entry, ok := item.(map[string]any)
		if !ok {
			problem(idx, "not an object")
			continue
		}

		for _, field := range []string{"word", "categories", "pos"} {
			if _, ok := entry[field]; !ok {
				problem(idx, "missing %q field", field)
			}
		}

		if raw, ok := entry["word"]; ok {
			switch w, isString := raw.(string); {
			case !isString:
				problem(idx, "'word' must be a string")
			case strings.TrimSpace(w) == "":
				problem(idx, "empty word")
			default:
				if _, dup := words[w]; dup {
					problem(idx, "duplicate word %q", w)
				} else {
					words[w] = struct{}{}
				}
			}
		}

		if raw, ok := entry["categories"]; ok {
			cs, isList := raw.([]any)
			switch {
			case !isList:
				problem(idx, "'categories' must be an array")
			case len(cs) == 0:
				problem(idx, "'categories' cannot be empty")
			default:
				for _, c := range cs {
					s, isString := c.(string)
					switch {
					case !isString:
						problem(idx, "category must be a string")
					case strings.TrimSpace(s) == "":
						problem(idx, "empty category")
					default:
						cats[s] = struct{}{}
					}
				}
			}
		}

		if raw, ok := entry["pos"]; ok {
			ps, isList := raw.([]any)
			switch {
			case !isList:
				problem(idx, "'pos' must be an array")
			case len(ps) == 0:
				problem(idx, "'pos' cannot be empty")
			default:
				var bad []string
				for _, p := range ps {
					s, _ := p.(string)
					if _, ok := valid[s]; !ok {
						bad = append(bad, fmt.Sprint(p))
					}
				}
				if len(bad) > 0 {
					problem(idx, "invalid parts of speech: %v", bad)
				}
			}
		}
	}

	rep.Words = len(words)
	rep.Categories = len(cats)
	return rep
}
