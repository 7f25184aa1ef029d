package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, yaml string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.InDelta(t, 0.6, cfg.Mixer.CurrentRatio, 1e-9)
	assert.InDelta(t, 0.3, cfg.Mixer.ReviewRatio, 1e-9)
	assert.InDelta(t, 0.1, cfg.Mixer.OlderRatio, 1e-9)
	assert.Equal(t, 5, cfg.Mastery.StrengthCap)
	assert.Equal(t, []int{0, 1, 3, 7, 16, 35}, cfg.Mastery.IntervalsDays)
	assert.Equal(t, 5, cfg.Placement.DefaultSessionMinutes)
	assert.Equal(t, 10, cfg.XP.CorrectBase)
}

func TestDefault_DoesNotPanic(t *testing.T) {
	assert.NotPanics(t, func() { Default() })
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
mixer:
  current_ratio: 0.5
  review_ratio: 0.4
  older_ratio: 0.1
placement:
  default_session_minutes: 8
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.InDelta(t, 0.5, cfg.Mixer.CurrentRatio, 1e-9)
	assert.InDelta(t, 0.4, cfg.Mixer.ReviewRatio, 1e-9)
	assert.Equal(t, 8, cfg.Placement.DefaultSessionMinutes)
	// Untouched sections keep their defaults.
	assert.Equal(t, 5, cfg.Mastery.StrengthCap)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoad_RatiosMustSumToOne(t *testing.T) {
	path := writeConfig(t, `
mixer:
  current_ratio: 0.5
  review_ratio: 0.3
  older_ratio: 0.3
`)
	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "mixer ratios"), "got: %v", err)
}

func TestLoad_IntervalsMustBeMonotonic(t *testing.T) {
	path := writeConfig(t, `
mastery:
  intervals_days: [0, 3, 1, 7]
`)
	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "intervals_days"), "got: %v", err)
}

func TestLoad_NegativeIntervalRejected(t *testing.T) {
	path := writeConfig(t, `
mastery:
  intervals_days: [-1, 3, 7]
`)
	_, err := Load(path)
	require.Error(t, err)
}

func TestLoad_BandOrderEnforced(t *testing.T) {
	path := writeConfig(t, `
placement:
  beginner_band: 0.7
  intermediate_band: 0.4
`)
	_, err := Load(path)
	require.Error(t, err)
}

func TestValidate_ZeroStrengthCap(t *testing.T) {
	cfg := Default()
	cfg.Mastery.StrengthCap = 0
	require.Error(t, Validate(cfg))
}
