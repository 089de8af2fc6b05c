// SPDX-License-Identifier: MIT
// Package: wordgroups/internal/config
//
// config.go - layered settings for the generate command.

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/wordgroups/generator"
	"github.com/katalvlaran/wordgroups/internal/logger"
	"github.com/katalvlaran/wordgroups/wordbank"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "WORDGROUPS_"

var (
	// ErrConfigFile indicates an unreadable or undecodable config file.
	ErrConfigFile = errors.New("config: cannot read config file")
	// ErrInvalidConfig indicates a setting outside its allowed range.
	ErrInvalidConfig = errors.New("config: invalid setting")
)

// Config holds every setting of a generate run. Zero values are not
// meaningful; start from Default or Load.
type Config struct {
	Count              int      `yaml:"count" validate:"min=1"`
	Out                string   `yaml:"out" validate:"required"`
	Seed               *int64   `yaml:"seed"`
	Wordlist           string   `yaml:"wordlist"`
	AttemptsPerPuzzle  int      `yaml:"attempts_per_puzzle" validate:"min=1"`
	PartOfSpeechChance float64  `yaml:"part_of_speech_chance" validate:"gte=0,lte=1"`
	PartOfSpeech       []string `yaml:"part_of_speech" validate:"omitempty,dive,notblank"`
	LogMode            string   `yaml:"log_mode" validate:"oneof=dev prod"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Count:              4,
		Out:                "puzzles.generated.json",
		Wordlist:           "wordlist.json",
		AttemptsPerPuzzle:  generator.DefaultAttemptsPerPuzzle,
		PartOfSpeechChance: generator.DefaultPartOfSpeechChance,
		LogMode:            logger.ModeDev,
	}
}

// Load layers the config file at path (skipped when empty) and the
// environment over Default. The result is not validated: callers apply their
// flags first and then call Validate.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("Load: %v: %w", err, ErrConfigFile)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("Load: parsing %s: %v: %w", path, err, ErrConfigFile)
		}
	}

	// A missing .env is the normal case.
	_ = godotenv.Load()
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	get := func(key string) (string, bool) {
		v, ok := lookup(EnvPrefix + key)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}
	bad := func(key, v string, err error) error {
		return fmt.Errorf("env %s%s=%q: %v: %w", EnvPrefix, key, v, err, ErrInvalidConfig)
	}

	if v, ok := get("COUNT"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return bad("COUNT", v, err)
		}
		c.Count = n
	}
	if v, ok := get("OUT"); ok {
		c.Out = v
	}
	if v, ok := get("SEED"); ok {
		s, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return bad("SEED", v, err)
		}
		c.Seed = &s
	}
	if v, ok := get("WORDLIST"); ok {
		c.Wordlist = v
	}
	if v, ok := get("ATTEMPTS_PER_PUZZLE"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return bad("ATTEMPTS_PER_PUZZLE", v, err)
		}
		c.AttemptsPerPuzzle = n
	}
	if v, ok := get("PART_OF_SPEECH_CHANCE"); ok {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return bad("PART_OF_SPEECH_CHANCE", v, err)
		}
		c.PartOfSpeechChance = p
	}
	if v, ok := get("PART_OF_SPEECH"); ok {
		c.PartOfSpeech = nil
		for _, id := range strings.Split(v, ",") {
			if id = strings.TrimSpace(id); id != "" {
				c.PartOfSpeech = append(c.PartOfSpeech, id)
			}
		}
	}
	if v, ok := get("LOG_MODE"); ok {
		c.LogMode = strings.ToLower(v)
	}
	return nil
}

var validate = sync.OnceValue(func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	return v
})

// Validate checks every field against its allowed range. Part-of-speech ids
// must be non-blank, so BankOptions never panics on a validated Config.
func (c *Config) Validate() error {
	if err := validate().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("Validate: %s=%v failed %q: %w", fe.Field(), fe.Value(), fe.Tag(), ErrInvalidConfig)
		}
		return fmt.Errorf("Validate: %v: %w", err, ErrInvalidConfig)
	}
	return nil
}

// BankOptions translates the settings into word bank options.
func (c *Config) BankOptions() []wordbank.Option {
	if len(c.PartOfSpeech) == 0 {
		return nil
	}
	return []wordbank.Option{wordbank.WithPartOfSpeech(c.PartOfSpeech...)}
}

// GeneratorOptions translates the settings into generator options.
// Call Validate first; out-of-range values make the option constructors panic.
func (c *Config) GeneratorOptions(log *zap.Logger) []generator.Option {
	opts := []generator.Option{
		generator.WithAttemptsPerPuzzle(c.AttemptsPerPuzzle),
		generator.WithPartOfSpeechChance(c.PartOfSpeechChance),
	}
	if c.Seed != nil {
		opts = append(opts, generator.WithSeed(*c.Seed))
	}
	if log != nil {
		opts = append(opts, generator.WithLogger(log))
	}
	return opts
}
