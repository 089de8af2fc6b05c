// SPDX-License-Identifier: MIT
// Package: wordgroups/wordbank
//
// source.go - word-source records, decoding, loading and fallback.

package wordbank

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"gopkg.in/yaml.v3"
)

// Entry is one record of a word source.
//
// Only Word and Categories feed the Bank; POS is carried for source tooling
// (CheckSource, Clean) and round-trips unchanged.
type Entry struct {
	Word       string   `json:"word" yaml:"word" validate:"notblank"`
	Categories []string `json:"categories" yaml:"categories" validate:"required,min=1,dive,notblank"`
	POS        []string `json:"pos" yaml:"pos,omitempty" validate:"omitempty,dive,notblank"`
}

// Format identifies the encoding of a word source.
type Format int

const (
	// FormatJSON is a JSON array of entries.
	FormatJSON Format = iota
	// FormatYAML is a YAML sequence of entries.
	FormatYAML
)

// String returns "json" or "yaml".
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// FormatFor picks the format from a file extension (.json, .yaml, .yml).
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("FormatFor: unsupported file extension %q: %w", filepath.Ext(path), ErrMalformedSource)
	}
}

var entryValidator = sync.OnceValue(func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// notblank rejects whitespace-only strings, which "required" lets through.
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	return v
})

// Validate checks the structural contract of a single entry: a non-blank
// word and at least one non-blank category.
func (e Entry) Validate() error {
	if err := entryValidator().Struct(e); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("field %s failed %q: %w", verrs[0].Namespace(), verrs[0].Tag(), ErrInvalidEntry)
		}
		return fmt.Errorf("%v: %w", err, ErrInvalidEntry)
	}
	return nil
}

// Parse decodes and validates a word source. Every entry must pass
// Entry.Validate; the first failure aborts parsing.
func Parse(data []byte, f Format) ([]Entry, error) {
	var entries []Entry
	var err error
	switch f {
	case FormatJSON:
		err = json.Unmarshal(data, &entries)
	case FormatYAML:
		err = yaml.Unmarshal(data, &entries)
	default:
		return nil, fmt.Errorf("Parse: unknown format %d: %w", f, ErrMalformedSource)
	}
	if err != nil {
		return nil, fmt.Errorf("Parse: decoding %s: %v: %w", f, err, ErrMalformedSource)
	}

	for i, e := range entries {
		if err := e.Validate(); err != nil {
			return nil, fmt.Errorf("Parse: entry %d: %w", i+1, err)
		}
	}
	return entries, nil
}

// FromEntries projects entries onto category → words and builds a Bank.
// Category ids are compared case-insensitively; the first spelling met in
// entry order is kept. Categories with fewer than MinCategoryWords words are
// dropped by New.
func FromEntries(entries []Entry, opts ...Option) (*Bank, error) {
	m := make(map[string][]string)
	spelling := make(map[string]string)
	for _, e := range entries {
		for _, c := range e.Categories {
			k := Key(c)
			id, ok := spelling[k]
			if !ok {
				id = strings.TrimSpace(c)
				spelling[k] = id
			}
			m[id] = append(m[id], e.Word)
		}
	}
	b, err := New(m, opts...)
	if err != nil {
		return nil, fmt.Errorf("FromEntries: %w", err)
	}
	return b, nil
}

// ReadEntries reads and parses the word source at path, picking the format
// from the file extension.
func ReadEntries(path string) ([]Entry, error) {
	f, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ReadEntries: %v: %w", err, ErrSourceUnavailable)
	}
	return Parse(data, f)
}

// LoadFile reads the word source at path and builds a Bank from it.
func LoadFile(path string, opts ...Option) (*Bank, error) {
	entries, err := ReadEntries(path)
	if err != nil {
		return nil, fmt.Errorf("LoadFile(%s): %w", path, err)
	}
	b, err := FromEntries(entries, opts...)
	if err != nil {
		return nil, fmt.Errorf("LoadFile(%s): %w", path, err)
	}
	return b, nil
}

// LoadOrDefault loads the word source at path and falls back to Default when
// the source is absent, unreadable, malformed, or yields no usable category.
//
// The returned Bank is never nil. fallback is nil when the source was used,
// and otherwise explains why the built-in bank was chosen; it is informational,
// not a failure.
func LoadOrDefault(path string, opts ...Option) (b *Bank, fallback error) {
	if strings.TrimSpace(path) == "" {
		return Default(opts...), fmt.Errorf("LoadOrDefault: no path given: %w", ErrSourceUnavailable)
	}
	b, err := LoadFile(path, opts...)
	if err != nil {
		return Default(opts...), err
	}
	return b, nil
}
