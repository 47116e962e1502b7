package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldkit/pkg/config"
)

type testConfig struct {
	Schema   string `env:"SCHEMA,required"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	Buffer   int    `env:"BUFFER" envDefault:"8"`
}

func TestLoad_WithPrefix(t *testing.T) {
	t.Setenv("CFGTEST_SCHEMA", "fields.yaml")
	t.Setenv("CFGTEST_LOG_LEVEL", "debug")

	var cfg testConfig
	err := config.Load(&cfg, config.WithPrefix("CFGTEST_"))

	require.NoError(t, err)
	assert.Equal(t, "fields.yaml", cfg.Schema)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 8, cfg.Buffer, "defaults apply to unset variables")
}

func TestLoad_MissingRequired(t *testing.T) {
	var cfg testConfig
	err := config.Load(&cfg, config.WithPrefix("CFGTEST_MISSING_"))

	require.Error(t, err)
	assert.True(t, errors.Is(err, config.ErrParsingConfig))
}

func TestLoad_InvalidValue(t *testing.T) {
	t.Setenv("CFGTEST_BAD_SCHEMA", "fields.yaml")
	t.Setenv("CFGTEST_BAD_BUFFER", "lots")

	var cfg testConfig
	err := config.Load(&cfg, config.WithPrefix("CFGTEST_BAD_"))
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestLoad_EnvFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(path, []byte("CFGFILE_SCHEMA=from-file.yaml\nCFGFILE_BUFFER=3\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("CFGFILE_SCHEMA")
		os.Unsetenv("CFGFILE_BUFFER")
	})

	var cfg testConfig
	err := config.Load(&cfg, config.WithPrefix("CFGFILE_"), config.WithEnvFiles(path))

	require.NoError(t, err)
	assert.Equal(t, "from-file.yaml", cfg.Schema)
	assert.Equal(t, 3, cfg.Buffer)
}

func TestLoad_MissingEnvFile(t *testing.T) {
	var cfg testConfig
	err := config.Load(&cfg, config.WithEnvFiles(filepath.Join(t.TempDir(), "nope.env")))
	assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *testConfig
	assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
}

func TestMustLoad(t *testing.T) {
	t.Run("panics on failure", func(t *testing.T) {
		var cfg testConfig
		assert.Panics(t, func() {
			config.MustLoad(&cfg, config.WithPrefix("CFGTEST_MUST_"))
		})
	})

	t.Run("loads on success", func(t *testing.T) {
		t.Setenv("CFGTEST_OK_SCHEMA", "ok.yaml")
		var cfg testConfig
		assert.NotPanics(t, func() {
			config.MustLoad(&cfg, config.WithPrefix("CFGTEST_OK_"))
		})
		assert.Equal(t, "ok.yaml", cfg.Schema)
	})
}
