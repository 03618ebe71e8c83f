package config

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func newFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.StringP("output", "o", "", "")
	fs.Int("precision", 0, "")
	fs.BoolP("verbose", "v", false, "")
	fs.Int("cache-size", 0, "")
	fs.String("log-level", "", "")
	return fs
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultOutput, cfg.Output)
	assert.Equal(t, DefaultPrecision, cfg.Precision)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, 0, cfg.Cache.Size)
	assert.False(t, cfg.Verbose)
	assert.NotNil(t, cfg.Aliases)
	assert.Empty(t, GetConfigFileUsed())
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
output: json
precision: 6
cache:
  size: 128
  preload:
    - Fe2O3
    - hematite
aliases:
  hematite: Fe2O3
  gypsum: CaSO4.2H2O
`)

	cfg, err := LoadConfig(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.Output)
	assert.Equal(t, 6, cfg.Precision)
	assert.Equal(t, 128, cfg.Cache.Size)
	assert.Equal(t, []string{"Fe2O3", "hematite"}, cfg.Cache.Preload)
	assert.Equal(t, "CaSO4.2H2O", cfg.Aliases["gypsum"])
	assert.Equal(t, path, GetConfigFileUsed())
	assert.Equal(t, dir, cfg.ProjectRoot)
}

func TestLoadConfigSearchesUpward(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "precision: 2\n")
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0750))
	t.Chdir(nested)

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Precision)
	assert.Equal(t, filepath.Join(root, ConfigFileName), FindConfigFile(nested))
}

func TestLoadConfigPrecedence(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "output: json\nprecision: 6\ncache:\n  size: 10\n")

	t.Setenv("METALCALC_PRECISION", "3")
	t.Setenv("METALCALC_CACHE_SIZE", "20")
	t.Setenv("METALCALC_LOG_LEVEL", "INFO")

	flags := newFlags()
	require.NoError(t, flags.Parse([]string{"--output", "yaml"}))

	cfg, err := LoadConfig(path, flags)
	require.NoError(t, err)

	assert.Equal(t, "yaml", cfg.Output, "flag beats file")
	assert.Equal(t, 3, cfg.Precision, "env beats file")
	assert.Equal(t, 20, cfg.Cache.Size, "env reaches nested keys")
	assert.Equal(t, "info", cfg.LogLevel)

	flags = newFlags()
	require.NoError(t, flags.Parse([]string{"--cache-size", "5", "--precision", "1"}))
	cfg, err = LoadConfig(path, flags)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Cache.Size, "flag beats env")
	assert.Equal(t, 1, cfg.Precision)
	assert.Equal(t, "json", cfg.Output, "unset flags do not override")
}

func TestLoadConfigInvalid(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"output", "output: html\n", "invalid output"},
		{"precision", "precision: 40\n", "precision must be"},
		{"cache size", "cache:\n  size: -1\n", "cache.size"},
		{"log level", "log_level: loud\n", "invalid log_level"},
		{"empty alias", "aliases:\n  slag: \"\"\n", "empty formula"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, dir, tt.content)
			_, err := LoadConfig(path, nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	_, err := LoadConfig(filepath.Join(dir, "missing.yaml"), nil)
	assert.Error(t, err)
}

func TestResolve(t *testing.T) {
	cfg := &Config{Aliases: map[string]string{"hematite": "Fe2O3", "Lime": "CaO"}}

	assert.Equal(t, "Fe2O3", cfg.Resolve("hematite"))
	assert.Equal(t, "Fe2O3", cfg.Resolve(" hematite "))
	assert.Equal(t, "CaO", cfg.Resolve("lime"))
	assert.Equal(t, "SiO2", cfg.Resolve("SiO2"))
	assert.Equal(t, []string{"Fe2O3", "SiO2"}, cfg.ResolveAll([]string{"hematite", "SiO2"}))

	var nilCfg *Config
	assert.Equal(t, "FeO", nilCfg.Resolve("FeO"))
}

func TestContext(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, DefaultPrecision, FromContext(ctx).Precision)
	assert.NotNil(t, GetLogger(ctx))

	cfg := &Config{Precision: 9}
	ctx = WithConfig(ctx, cfg)
	assert.Same(t, cfg, FromContext(ctx))

	var buf bytes.Buffer
	logger := NewLogger(&buf, &Config{LogLevel: "info"})
	ctx = WithLogger(ctx, logger)
	assert.Same(t, logger, GetLogger(ctx))

	GetLogger(ctx).Debug("hidden")
	GetLogger(ctx).Info("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")

	buf.Reset()
	NewLogger(&buf, &Config{LogLevel: "error", Verbose: true}).Debug("verbose wins")
	assert.Contains(t, buf.String(), "verbose wins")
}
