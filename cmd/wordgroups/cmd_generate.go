// SPDX-License-Identifier: MIT
// Package: wordgroups/cmd/wordgroups
//
// cmd_generate.go - the generate command.

package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordgroups/generator"
	"github.com/katalvlaran/wordgroups/internal/config"
	"github.com/katalvlaran/wordgroups/internal/logger"
	"github.com/katalvlaran/wordgroups/puzzle"
	"github.com/katalvlaran/wordgroups/wordbank"
)

type generateFlags struct {
	configPath string
	count      int
	out        string
	seed       int64
	wordlist   string
	attempts   int
	strict     bool
}

func newGenerateCmd() *cobra.Command {
	var f generateFlags
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a batch of puzzles and write it as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, &f)
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&f.configPath, "config", "", "YAML config file")
	fl.IntVarP(&f.count, "count", "n", 0, "number of puzzles to generate")
	fl.StringVarP(&f.out, "out", "o", "", "output file")
	fl.Int64Var(&f.seed, "seed", 0, "RNG seed for reproducible output")
	fl.StringVar(&f.wordlist, "wordlist", "", "word source (.json, .yaml); the built-in bank is used if unusable")
	fl.IntVar(&f.attempts, "attempts", 0, "attempt budget per requested puzzle")
	fl.BoolVar(&f.strict, "strict", false, "fail when fewer puzzles than requested were generated")
	return cmd
}

// applyFlags overrides cfg with the flags the user actually set.
func (f *generateFlags) applyFlags(cmd *cobra.Command, cfg *config.Config) {
	fl := cmd.Flags()
	if fl.Changed("count") {
		cfg.Count = f.count
	}
	if fl.Changed("out") {
		cfg.Out = f.out
	}
	if fl.Changed("seed") {
		seed := f.seed
		cfg.Seed = &seed
	}
	if fl.Changed("wordlist") {
		cfg.Wordlist = f.wordlist
	}
	if fl.Changed("attempts") {
		cfg.AttemptsPerPuzzle = f.attempts
	}
}

func runGenerate(cmd *cobra.Command, f *generateFlags) error {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return err
	}
	f.applyFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	defer log.Sync()
	log = log.With("run_id", uuid.NewString())

	bank, fallback := wordbank.LoadOrDefault(cfg.Wordlist, cfg.BankOptions()...)
	if fallback != nil {
		log.Warn("using built-in word bank", "wordlist", cfg.Wordlist, "reason", fallback.Error())
	}
	log.Debug("word bank ready", "categories", bank.Len())

	g, err := generator.New(bank, cfg.GeneratorOptions(log.Desugar())...)
	if err != nil {
		return err
	}
	res, err := g.Generate(cfg.Count)
	if err != nil {
		return err
	}
	if err := puzzle.Validate(res.Puzzles); err != nil {
		return fmt.Errorf("generated batch failed validation: %w", err)
	}
	if err := writeJSON(cfg.Out, res.Puzzles); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d puzzles to %s\n", len(res.Puzzles), cfg.Out)
	log.Info("batch written", "out", cfg.Out, "puzzles", len(res.Puzzles), "attempts", res.Attempts)

	if res.Short() {
		log.Warn("short batch", "requested", res.Requested, "generated", len(res.Puzzles))
		if f.strict {
			return res.Err()
		}
	}
	return nil
}
