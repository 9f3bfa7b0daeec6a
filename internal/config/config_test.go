package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	home := t.TempDir()

	cfg, err := Load(home)
	require.NoError(t, err)

	assert.Equal(t, DefaultAPIURL, cfg.APIURL)
	assert.Equal(t, home, cfg.Home)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadFromFile(t *testing.T) {
	home := t.TempDir()
	content := "api_url: https://api.example.org\nlog_level: debug\n"
	require.NoError(t, os.WriteFile(filepath.Join(home, ConfigFileName), []byte(content), 0o644))

	cfg, err := Load(home)
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.org", cfg.APIURL)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestEnvOverridesFile(t *testing.T) {
	home := t.TempDir()
	content := "api_url: https://file.example.org\n"
	require.NoError(t, os.WriteFile(filepath.Join(home, ConfigFileName), []byte(content), 0o644))
	t.Setenv(EnvAPIURL, "https://env.example.org")

	cfg, err := Load(home)
	require.NoError(t, err)

	assert.Equal(t, "https://env.example.org", cfg.APIURL)
}

func TestLoadInvalidYAML(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(home, ConfigFileName), []byte(":\t not yaml ["), 0o644))

	_, err := Load(home)
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	home := t.TempDir()
	cfg := &Config{APIURL: "https://api.example.org", Home: home, LogLevel: "info", LogFormat: "json"}
	require.NoError(t, cfg.Save())

	loaded, err := Load(home)
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.org", loaded.APIURL)
	assert.Equal(t, "info", loaded.LogLevel)
	assert.Equal(t, "json", loaded.LogFormat)
}

func TestPaths(t *testing.T) {
	cfg := &Config{Home: "/tmp/home"}
	assert.Equal(t, "/tmp/home/credentials.json", cfg.CredentialsPath())
	assert.Equal(t, "/tmp/home/society.json", cfg.SocietyPath())
}
