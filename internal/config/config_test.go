package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 8090, cfg.Server.Port)
	assert.Equal(t, "64M", cfg.Server.BodyLimit)
	assert.Equal(t, 10, cfg.Upload.MaxFiles)
	assert.Equal(t, "gemini-2.0-flash", cfg.Model.Name)
	assert.Equal(t, float32(0.2), cfg.Model.Temperature)
	assert.Equal(t, 30, cfg.Session.TimeoutMinutes)
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Server.Port, cfg.Server.Port)
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
server:
  port: 9999
upload:
  maxFiles: 3
model:
  name: gemini-exp
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 9999, cfg.Server.Port)
	assert.Equal(t, 3, cfg.Upload.MaxFiles)
	assert.Equal(t, "gemini-exp", cfg.Model.Name)
	// Untouched sections keep their defaults.
	assert.Equal(t, "64M", cfg.Server.BodyLimit)
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{not yaml"), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfigModelEnvOverride(t *testing.T) {
	t.Setenv("GEMINI_MODEL", "gemini-override")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "gemini-override", cfg.Model.Name)
}

func TestGetServerAddr(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "0.0.0.0:8090", cfg.GetServerAddr())
}

func TestExtensionAllowed(t *testing.T) {
	cfg := DefaultConfig()

	assert.True(t, cfg.ExtensionAllowed("report.pdf"))
	assert.True(t, cfg.ExtensionAllowed("Report.PDF"))
	assert.True(t, cfg.ExtensionAllowed("notebook.ipynb"))
	assert.False(t, cfg.ExtensionAllowed("archive.zip"))
	assert.False(t, cfg.ExtensionAllowed("noextension"))
}
