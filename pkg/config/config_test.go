package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoadConfig_Defaults checks the defaults without a config file
func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.InDelta(t, DefaultInitialBalance, cfg.InitialBalance, 1e-9)
	assert.Equal(t, DefaultSmoothSamples, cfg.SmoothSamples)
	assert.Equal(t, DefaultOutputDir, cfg.OutputDir)
}

// TestLoadConfig_FromFile checks JSON overrides on top of defaults
func TestLoadConfig_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.json")
	payload := `{
		"data_file": "trades.csv",
		"initial_balance": 50000,
		"from": "2023-09-01",
		"to": "2024-03-31"
	}`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "trades.csv", cfg.DataFile)
	assert.InDelta(t, 50000.0, cfg.InitialBalance, 1e-9)
	assert.Equal(t, DefaultSmoothSamples, cfg.SmoothSamples, "unset fields keep defaults")
	require.NoError(t, cfg.Validate())
}

// TestLoadConfig_BadFile checks unreadable and malformed config files fail
func TestLoadConfig_BadFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{nope"), 0644))
	_, err = LoadConfig(path)
	assert.Error(t, err)
}

// TestValidate checks the run preconditions
func TestValidate(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.DataFile = "trades.csv"
	assert.NoError(t, cfg.Validate())

	missing := NewDefaultConfig()
	assert.Error(t, missing.Validate())

	negative := NewDefaultConfig()
	negative.DataFile = "trades.csv"
	negative.InitialBalance = -5
	assert.Error(t, negative.Validate())

	inverted := NewDefaultConfig()
	inverted.DataFile = "trades.csv"
	inverted.From = "2024-03-31"
	inverted.To = "2023-09-01"
	assert.Error(t, inverted.Validate())
}

// TestWindow checks the inclusive window bounds
func TestWindow(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.From = "2023-09-01"
	cfg.To = "2024-03-31"

	from, to, err := cfg.Window()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, 9, 1, 0, 0, 0, 0, time.UTC), from)
	// the To bound covers the whole day
	assert.Equal(t, 31, to.Day())
	assert.Equal(t, 23, to.Hour())

	open := NewDefaultConfig()
	from, to, err = open.Window()
	require.NoError(t, err)
	assert.True(t, from.IsZero())
	assert.True(t, to.IsZero())

	bad := NewDefaultConfig()
	bad.From = "yesterday"
	_, _, err = bad.Window()
	assert.Error(t, err)
}
