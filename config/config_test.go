package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezBadminton/gobracket/core"
	"github.com/ezBadminton/gobracket/score"
)

var envKeys = []string{
	"BRACKET_PLAYERS",
	"BRACKET_SEEDING",
	"BRACKET_SEED",
	"BRACKET_SCORE_MIN",
	"BRACKET_SCORE_MAX",
	"BRACKET_MAX_REROLLS",
	"BRACKET_LOG_LEVEL",
}

// Unsets all BRACKET_* variables for the duration of the test
func clearEnv(t *testing.T) {
	for _, k := range envKeys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestNewConfigFromEnvDefaults(t *testing.T) {
	clearEnv(t)

	conf, err := NewConfigFromEnv()
	require.NoError(t, err)

	assert.Equal(t, DefaultPlayers, conf.Players)
	assert.Equal(t, core.SeedSingle, conf.Seeding)
	assert.Equal(t, int64(1), conf.Seed)
	assert.Equal(t, score.DefaultRange, conf.Scores)
	assert.Equal(t, core.DefaultMaxRerolls, conf.MaxRerolls)
	assert.Equal(t, slog.LevelInfo, conf.LogLevel)

	conf.Players[0] = "Changed"
	assert.Equal(t, "Anna", DefaultPlayers[0], "the defaults were shared with the config")
}

func TestNewConfigFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("BRACKET_PLAYERS", `Ann, "Bo, Jr.", Cy`)
	t.Setenv("BRACKET_SEEDING", "tiered")
	t.Setenv("BRACKET_SEED", "99")
	t.Setenv("BRACKET_SCORE_MIN", "2")
	t.Setenv("BRACKET_SCORE_MAX", " 21 ")
	t.Setenv("BRACKET_MAX_REROLLS", "10")
	t.Setenv("BRACKET_LOG_LEVEL", "debug")

	conf, err := NewConfigFromEnv()
	require.NoError(t, err)

	assert.Equal(t, []string{"Ann", "Bo, Jr.", "Cy"}, conf.Players)
	assert.Equal(t, core.SeedTiered, conf.Seeding)
	assert.Equal(t, int64(99), conf.Seed)
	assert.Equal(t, score.Range{Min: 2, Max: 21}, conf.Scores)
	assert.Equal(t, 10, conf.MaxRerolls)
	assert.Equal(t, slog.LevelDebug, conf.LogLevel)
}

func TestNewConfigFromEnvErrors(t *testing.T) {
	tests := []struct {
		key, value string
		err        error
	}{
		{"BRACKET_PLAYERS", " , ", ErrEmptyList},
		{"BRACKET_SEEDING", "swiss", core.ErrUnknownSeedingMode},
		{"BRACKET_SCORE_MIN", "0", score.ErrMinZero},
		{"BRACKET_SCORE_MAX", "0", score.ErrMaxBelowMin},
		{"BRACKET_LOG_LEVEL", "loud", ErrInvalidLogLevel},
		{"BRACKET_SEED", "abc", nil},
		{"BRACKET_MAX_REROLLS", "many", nil},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			conf, err := NewConfigFromEnv()
			require.Error(t, err)
			assert.Nil(t, conf)
			assert.Contains(t, err.Error(), tt.key[len("BRACKET_"):])
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
			}
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)

	require.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")))

	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("BRACKET_SEED=7\nBRACKET_SEEDING=random\n"), 0o600))

	t.Setenv("BRACKET_SEEDING", "tiered")
	require.NoError(t, LoadDotEnv(path))

	conf, err := NewConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, int64(7), conf.Seed)
	assert.Equal(t, core.SeedTiered, conf.Seeding, "a set variable was overridden")
}

func TestParseList(t *testing.T) {
	list, err := ParseList("Anna,Ben , Chou")
	require.NoError(t, err)
	assert.Equal(t, []string{"Anna", "Ben", "Chou"}, list)

	list, err = ParseList(`"Ben, Jr.",Anna,,`)
	require.NoError(t, err)
	assert.Equal(t, []string{"Ben, Jr.", "Anna"}, list)

	_, err = ParseList(" , ,")
	assert.ErrorIs(t, err, ErrEmptyList)
}

func TestParseScores(t *testing.T) {
	points, err := ParseScores("7, 3,5")
	require.NoError(t, err)
	assert.Equal(t, []int{7, 3, 5}, points)

	_, err = ParseScores("7,x")
	assert.ErrorContains(t, err, "score 2")
}

func TestParseLogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		" warn": slog.LevelWarn,
		"error": slog.LevelError,
	}
	for s, expected := range tests {
		level, err := ParseLogLevel(s)
		require.NoError(t, err)
		assert.Equal(t, expected, level)
	}

	_, err := ParseLogLevel("verbose")
	assert.ErrorIs(t, err, ErrInvalidLogLevel)
}
