package config

import (
	"io"
	"testing"

	"volscan/internal/common"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(nil, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, "fake_stock_data.txt", cfg.Data.Path)
	assert.Equal(t, '\t', cfg.Data.Comma)
	assert.False(t, cfg.Data.Header)
	assert.Equal(t, zerolog.InfoLevel, cfg.Log.Level)
	assert.False(t, cfg.Log.JSON)
	assert.False(t, cfg.Once.Enabled)
	assert.Equal(t, common.HeapStrategy, cfg.Once.Strategy)
}

func TestLoad_Flags(t *testing.T) {
	cfg, err := load([]string{
		"-data", "stocks.csv", "-delim", "comma", "-header",
		"-log-level", "debug", "-log-json",
		"-once", "-budget", "250.5", "-risk", "2", "-sector", "Tech", "-strategy", "map",
	}, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, DataConfig{Path: "stocks.csv", Comma: ',', Header: true}, cfg.Data)
	assert.Equal(t, LogConfig{Level: zerolog.DebugLevel, JSON: true}, cfg.Log)
	assert.Equal(t, OnceConfig{
		Enabled:  true,
		Query:    common.Constraints{Budget: 250.5, RiskTolerance: 2, PreferredSector: "Tech"},
		Strategy: common.MapStrategy,
	}, cfg.Once)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("VOLSCAN_DATA", "env.txt")
	t.Setenv("VOLSCAN_DELIM", ";")
	t.Setenv("VOLSCAN_HEADER", "true")
	t.Setenv("VOLSCAN_LOG_LEVEL", "warn")

	cfg, err := load(nil, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, DataConfig{Path: "env.txt", Comma: ';', Header: true}, cfg.Data)
	assert.Equal(t, zerolog.WarnLevel, cfg.Log.Level)

	// Flags take precedence over the environment.
	cfg, err = load([]string{"-data", "flag.txt"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "flag.txt", cfg.Data.Path)
}

func TestLoad_Invalid(t *testing.T) {
	_, err := load([]string{"-delim", "ab"}, io.Discard)
	assert.ErrorIs(t, err, ErrInvalidDelimiter)

	_, err = load([]string{"-strategy", "queue"}, io.Discard)
	assert.ErrorIs(t, err, common.ErrInvalidStrategy)

	_, err = load([]string{"-log-level", "loud"}, io.Discard)
	assert.Error(t, err)

	_, err = load([]string{"-nope"}, io.Discard)
	assert.Error(t, err)

	t.Setenv("VOLSCAN_HEADER", "maybe")
	_, err = load(nil, io.Discard)
	assert.Error(t, err)
}
