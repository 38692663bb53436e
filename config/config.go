// Package config reads the settings of the bracket demo from
// the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/go-andiamo/splitter"
	"github.com/joho/godotenv"

	"github.com/ezBadminton/gobracket/core"
	"github.com/ezBadminton/gobracket/score"
)

var (
	ErrEmptyList       = errors.New("empty list")
	ErrInvalidLogLevel = errors.New("invalid log level")
)

// The players of the demo bracket when none are configured
var DefaultPlayers = []string{"Anna", "Ben", "Chou", "Dara", "Ean", "Faye", "Gita", "Hout"}

type Config struct {
	Players    []string
	Seeding    core.SeedingMode
	Seed       int64
	Scores     score.Range
	MaxRerolls int
	LogLevel   slog.Level
}

// Loads a .env file from the working directory into the
// environment if there is one. Variables that are already
// set are not overridden.
func LoadDotEnv(filenames ...string) error {
	err := godotenv.Load(filenames...)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// Reads the configuration from BRACKET_* environment
// variables. Unset variables fall back to the defaults.
func NewConfigFromEnv() (*Config, error) {
	conf := &Config{
		Players:    slices.Clone(DefaultPlayers),
		Seeding:    core.SeedSingle,
		Seed:       1,
		Scores:     score.DefaultRange,
		MaxRerolls: core.DefaultMaxRerolls,
		LogLevel:   slog.LevelInfo,
	}

	if v, ok := os.LookupEnv("BRACKET_PLAYERS"); ok {
		players, err := ParseList(v)
		if err != nil {
			return nil, fmt.Errorf("BRACKET_PLAYERS: %w", err)
		}
		conf.Players = players
	}

	if v, ok := os.LookupEnv("BRACKET_SEEDING"); ok {
		mode, err := core.ParseSeedingMode(v)
		if err != nil {
			return nil, fmt.Errorf("BRACKET_SEEDING: %w: %q", err, v)
		}
		conf.Seeding = mode
	}

	if v, ok := os.LookupEnv("BRACKET_SEED"); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("BRACKET_SEED: %w", err)
		}
		conf.Seed = seed
	}

	minScore, err := intFromEnv("BRACKET_SCORE_MIN", conf.Scores.Min)
	if err != nil {
		return nil, err
	}
	maxScore, err := intFromEnv("BRACKET_SCORE_MAX", conf.Scores.Max)
	if err != nil {
		return nil, err
	}
	conf.Scores, err = score.NewRange(minScore, maxScore)
	if err != nil {
		return nil, fmt.Errorf("BRACKET_SCORE_MIN, BRACKET_SCORE_MAX: %w", err)
	}

	conf.MaxRerolls, err = intFromEnv("BRACKET_MAX_REROLLS", conf.MaxRerolls)
	if err != nil {
		return nil, err
	}

	if v, ok := os.LookupEnv("BRACKET_LOG_LEVEL"); ok {
		level, err := ParseLogLevel(v)
		if err != nil {
			return nil, fmt.Errorf("BRACKET_LOG_LEVEL: %w", err)
		}
		conf.LogLevel = level
	}

	return conf, nil
}

func intFromEnv(key string, fallback int) (int, error) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}
	i, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return i, nil
}

// Splits a comma separated list. Entries can be double quoted
// to contain commas, e.g. `Anna, "Ben, Jr.", Chou`.
func ParseList(s string) ([]string, error) {
	commaSplitter, err := splitter.NewSplitter(',', splitter.DoubleQuotes)
	if err != nil {
		return nil, err
	}

	parts, err := commaSplitter.Split(s)
	if err != nil {
		return nil, err
	}

	list := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if len(p) >= 2 && strings.HasPrefix(p, `"`) && strings.HasSuffix(p, `"`) {
			p = p[1 : len(p)-1]
		}
		if p == "" {
			continue
		}
		list = append(list, p)
	}

	if len(list) == 0 {
		return nil, ErrEmptyList
	}
	return list, nil
}

// Parses a comma separated list of scores
func ParseScores(s string) ([]int, error) {
	parts, err := ParseList(s)
	if err != nil {
		return nil, err
	}

	points := make([]int, len(parts))
	for i, p := range parts {
		points[i], err = strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("score %d: %w", i+1, err)
		}
	}
	return points, nil
}

func ParseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("%w: %q", ErrInvalidLogLevel, s)
	}
	return level, nil
}
