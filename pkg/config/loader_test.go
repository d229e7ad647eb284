package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/biodata/pkg/config"
)

type previewConfig struct {
	Capacity int           `env:"TEST_PREVIEW_CAPACITY" envDefault:"256"`
	TTL      time.Duration `env:"TEST_PREVIEW_TTL" envDefault:"5m"`
	Enabled  bool          `env:"TEST_PREVIEW_ENABLED" envDefault:"true"`
}

type requiredConfig struct {
	Name string `env:"TEST_REQUIRED_NAME,required"`
}

type dotenvConfig struct {
	Value string `env:"TEST_DOTENV_VALUE"`
	Kept  string `env:"TEST_DOTENV_KEPT"`
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		config.Reset()

		var cfg previewConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, 256, cfg.Capacity)
		assert.Equal(t, 5*time.Minute, cfg.TTL)
		assert.True(t, cfg.Enabled)
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		config.Reset()
		t.Setenv("TEST_PREVIEW_CAPACITY", "8")
		t.Setenv("TEST_PREVIEW_ENABLED", "false")

		var cfg previewConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, 8, cfg.Capacity)
		assert.False(t, cfg.Enabled)
	})

	t.Run("cached per type", func(t *testing.T) {
		config.Reset()
		t.Setenv("TEST_PREVIEW_CAPACITY", "16")

		var first previewConfig
		require.NoError(t, config.Load(&first))

		t.Setenv("TEST_PREVIEW_CAPACITY", "32")
		var second previewConfig
		require.NoError(t, config.Load(&second))
		assert.Equal(t, 16, second.Capacity)

		config.Reset()
		var third previewConfig
		require.NoError(t, config.Load(&third))
		assert.Equal(t, 32, third.Capacity)
	})

	t.Run("required variable missing", func(t *testing.T) {
		config.Reset()
		os.Unsetenv("TEST_REQUIRED_NAME")

		var cfg requiredConfig
		err := config.Load(&cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("invalid value", func(t *testing.T) {
		config.Reset()
		t.Setenv("TEST_PREVIEW_CAPACITY", "many")

		var cfg previewConfig
		assert.ErrorIs(t, config.Load(&cfg), config.ErrParsingConfig)
	})

	t.Run("nil pointer", func(t *testing.T) {
		assert.ErrorIs(t, config.Load[previewConfig](nil), config.ErrNilPointer)
	})
}

func TestMustLoad(t *testing.T) {
	config.Reset()
	os.Unsetenv("TEST_REQUIRED_NAME")

	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg)
	})

	config.Reset()
	t.Setenv("TEST_REQUIRED_NAME", "biodata")
	assert.NotPanics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg)
		assert.Equal(t, "biodata", cfg.Name)
	})
}

func TestLoadEnv(t *testing.T) {
	config.Reset()
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(path, []byte("TEST_DOTENV_VALUE=from-file\nTEST_DOTENV_KEPT=from-file\n"), 0o600))

	os.Unsetenv("TEST_DOTENV_VALUE")
	t.Cleanup(func() { os.Unsetenv("TEST_DOTENV_VALUE") })
	t.Setenv("TEST_DOTENV_KEPT", "from-env")

	require.NoError(t, config.LoadEnv(path))

	var cfg dotenvConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "from-file", cfg.Value)
	assert.Equal(t, "from-env", cfg.Kept)

	assert.NoError(t, config.LoadEnv())
	assert.ErrorIs(t, config.LoadEnv(filepath.Join(dir, "missing.env")), config.ErrLoadingEnvFile)
}
