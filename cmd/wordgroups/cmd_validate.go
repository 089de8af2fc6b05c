// SPDX-License-Identifier: MIT
// Package: wordgroups/cmd/wordgroups
//
// cmd_validate.go - the validate command.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordgroups/puzzle"
	"github.com/katalvlaran/wordgroups/wordbank"
)

func newValidateCmd() *cobra.Command {
	var wordlist string
	cmd := &cobra.Command{
		Use:   "validate FILE",
		Short: "Check the shape of every puzzle in a JSON batch",
		Long: `validate checks that every puzzle has 16 choices and 4 disjoint groups of 4
words drawn from those choices. With --wordlist it also guesses the category
behind each group.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, args[0], wordlist)
		},
	}
	cmd.Flags().StringVar(&wordlist, "wordlist", "", "word source used to guess group categories")
	return cmd
}

func runValidate(cmd *cobra.Command, path, wordlist string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := puzzle.ValidateJSON(data); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	var batch []puzzle.Puzzle
	if err := json.Unmarshal(data, &batch); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s: %d puzzles valid\n", path, len(batch))

	if wordlist == "" {
		return nil
	}
	bank, err := wordbank.LoadFile(wordlist)
	if err != nil {
		return err
	}
	for i, p := range batch {
		for gi, g := range p.Groups {
			label := "(no match)"
			if c, ok := bank.GuessCategory(g); ok {
				label = c
			}
			fmt.Fprintf(out, "puzzle %d group %d: %s\n", i+1, gi+1, label)
		}
	}
	return nil
}
