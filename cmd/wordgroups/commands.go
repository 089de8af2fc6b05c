// SPDX-License-Identifier: MIT
// Package: wordgroups/cmd/wordgroups
//
// commands.go - the command tree.

package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "wordgroups",
		Short: "Generate and check word-grouping puzzles",
		Long: `wordgroups builds puzzles of 16 words that split into 4 hidden groups of 4,
validates puzzle files, and maintains the word lists they are drawn from.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	wordlist := &cobra.Command{
		Use:   "wordlist",
		Short: "Inspect and tidy word-list files",
	}
	wordlist.AddCommand(newWordlistCheckCmd(), newWordlistCleanCmd())

	root.AddCommand(newGenerateCmd(), newValidateCmd(), wordlist)
	return root
}
