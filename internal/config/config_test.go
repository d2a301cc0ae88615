package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chTempDir moves the test into an empty directory so stray config files and
// .env files in the repository cannot leak into the run.
func chTempDir(t *testing.T) string {
	t.Helper()
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)

	originalDir, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(originalDir))
	})
	require.NoError(t, os.Chdir(tempDir))
	return tempDir
}

func TestLoadDefaults(t *testing.T) {
	chTempDir(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, ",", cfg.CSV.Delimiter)
	assert.Empty(t, cfg.Currency.OverridesFile)
}

func TestLoadEnvironmentVariables(t *testing.T) {
	chTempDir(t)

	t.Setenv("ISO20022_LOG_LEVEL", "debug")
	t.Setenv("ISO20022_LOG_FORMAT", "json")
	t.Setenv("ISO20022_CSV_DELIMITER", ";")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, ";", cfg.CSV.Delimiter)
}

func TestLoadConfigFile(t *testing.T) {
	tempDir := chTempDir(t)

	configContent := `
log:
  level: "warn"
csv:
  delimiter: "|"
currency:
  overrides_file: "precisions.yaml"
`
	err := os.WriteFile(filepath.Join(tempDir, "config.yaml"), []byte(configContent), 0o644)
	require.NoError(t, err)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "|", cfg.CSV.Delimiter)
	assert.Equal(t, "precisions.yaml", cfg.Currency.OverridesFile)
}

func TestLoadPrecedence(t *testing.T) {
	tempDir := chTempDir(t)

	configContent := `
log:
  level: "warn"
csv:
  delimiter: "|"
`
	err := os.WriteFile(filepath.Join(tempDir, "config.yaml"), []byte(configContent), 0o644)
	require.NoError(t, err)

	t.Setenv("ISO20022_LOG_LEVEL", "error")

	cfg, err := Load()
	require.NoError(t, err)

	// Environment wins over the file; the file wins over defaults.
	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, "|", cfg.CSV.Delimiter)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	chTempDir(t)

	t.Run("LogLevel", func(t *testing.T) {
		t.Setenv("ISO20022_LOG_LEVEL", "verbose")
		_, err := Load()
		assert.ErrorContains(t, err, "unknown log level")
	})

	t.Run("Delimiter", func(t *testing.T) {
		t.Setenv("ISO20022_CSV_DELIMITER", "abc")
		_, err := Load()
		assert.ErrorContains(t, err, "single character")
	})
}

func TestLoadEnvFile(t *testing.T) {
	tempDir := chTempDir(t)

	err := os.WriteFile(filepath.Join(tempDir, ".env"), []byte("ISO20022_LOG_FORMAT=json\n"), 0o644)
	require.NoError(t, err)
	// godotenv writes into the process environment; undo it for later tests.
	t.Cleanup(func() { os.Unsetenv("ISO20022_LOG_FORMAT") })

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Log.Format)
}
