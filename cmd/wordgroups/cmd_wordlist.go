// SPDX-License-Identifier: MIT
// Package: wordgroups/cmd/wordgroups
//
// cmd_wordlist.go - wordlist check and wordlist clean.

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/wordgroups/wordbank"
)

var errWordlistInvalid = errors.New("word list has problems")

func newWordlistCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE",
		Short: "Report every schema problem in a word list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWordlistCheck(cmd, args[0])
		},
	}
}

func runWordlistCheck(cmd *cobra.Command, path string) error {
	format, err := wordbank.FormatFor(path)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	rep := wordbank.CheckSource(data, format)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Validation results for %s:\n", path)
	fmt.Fprintf(out, "Total entries: %d\n", rep.Entries)
	fmt.Fprintf(out, "Distinct words: %d\n", rep.Words)
	fmt.Fprintf(out, "Categories: %d\n", rep.Categories)
	if rep.Valid() {
		fmt.Fprintln(out, "No errors found.")
		return nil
	}
	fmt.Fprintln(out, "Errors found:")
	for _, p := range rep.Problems {
		fmt.Fprintf(out, "- %s\n", p)
	}
	return fmt.Errorf("%s: %d problems: %w", path, len(rep.Problems), errWordlistInvalid)
}

func newWordlistCleanCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "clean FILE",
		Short: "Merge duplicate words in a word list",
		Long: `clean keeps one entry per word: the one with the most categories, with
parts of speech merged on a tie. Entries come out sorted by word. The file is
rewritten in place unless --out is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWordlistClean(cmd, args[0], out)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default: rewrite FILE)")
	return cmd
}

func runWordlistClean(cmd *cobra.Command, path, out string) error {
	entries, err := wordbank.ReadEntries(path)
	if err != nil {
		return err
	}
	cleaned := wordbank.Clean(entries)

	if out == "" {
		out = path
	}
	format, err := wordbank.FormatFor(out)
	if err != nil {
		return err
	}
	switch format {
	case wordbank.FormatYAML:
		data, err := yaml.Marshal(cleaned)
		if err != nil {
			return fmt.Errorf("encoding %s: %w", out, err)
		}
		if err := os.WriteFile(out, data, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", out, err)
		}
	default:
		if err := writeJSON(out, cleaned); err != nil {
			return err
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Kept %d of %d entries in %s\n", len(cleaned), len(entries), out)
	return nil
}
