package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, help, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), []string{"converter"})
	require.NoError(t, err)
	assert.False(t, help)

	assert.Equal(t, 300.0, cfg.Conversion.MaxRarity)
	assert.Equal(t, 5, cfg.Conversion.RarityRounding)
	assert.Equal(t, []int{1337}, cfg.Conversion.SpawnAreas)
	assert.Equal(t, "pixelmon:", cfg.Conversion.ItemNamespace)
	assert.Equal(t, "pokemon", cfg.Conversion.CreatureType)
	assert.Equal(t, 1, cfg.Settings.Workers)
	assert.Equal(t, 2, cfg.Conversion.SourceRetries)
	assert.Empty(t, cfg.Args)
}

func TestLoad_Layers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
settings:
  stats_dir: /data/stats
  workers: 4
conversion:
  max_rarity: 150
  skip_ids: [25]
  weather_mapping:
    RAIN: [RAINY]
`), 0o644))

	t.Setenv("SPAWNSCHEMA_WORKERS", "8")
	t.Setenv("CONVERSION_RARITY_ROUNDING", "3")

	cfg, _, err := Load(path, []string{"converter", "-s", "/override/stats", "--output=out.json", "extra"})
	require.NoError(t, err)

	assert.Equal(t, "/override/stats", cfg.Settings.StatsDir)
	assert.Equal(t, "out.json", cfg.Settings.Output)
	assert.Equal(t, 8, cfg.Settings.Workers)
	assert.Equal(t, 150.0, cfg.Conversion.MaxRarity)
	assert.Equal(t, 3, cfg.Conversion.RarityRounding)
	assert.Equal(t, map[string][]string{"RAIN": {"RAINY"}}, cfg.Conversion.WeatherMapping)
	assert.Equal(t, []string{"extra"}, cfg.Args)

	assert.True(t, cfg.Conversion.Skipped(25))
	assert.True(t, cfg.Conversion.Skipped(650))
	assert.True(t, cfg.Conversion.Skipped(1023))
	assert.False(t, cfg.Conversion.Skipped(649))
	assert.False(t, cfg.Conversion.Skipped(1024))
}

func TestLoad_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("conversion:\n  max_rarity: 0\n"), 0o644))

	_, _, err := Load(path, []string{"converter"})
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte("settings: [broken"), 0o644))
	_, _, err = Load(path, []string{"converter"})
	assert.Error(t, err)

	_, _, err = Load(filepath.Join(t.TempDir(), "none.yaml"), []string{"converter", "--workers=-2"})
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte("conversion:\n  source_retries: -1\n"), 0o644))
	_, _, err = Load(path, []string{"converter"})
	assert.Error(t, err)
}

func TestLoad_Help(t *testing.T) {
	_, help, err := Load(filepath.Join(t.TempDir(), "none.yaml"), []string{"converter", "-h"})
	require.NoError(t, err)
	assert.True(t, help)
}
