package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnv(t *testing.T) {
	t.Setenv(EnvKeyID, "key-from-env")
	t.Setenv(EnvSecret, "secret-from-env")
	t.Setenv(EnvBaseURL, "https://paper-api.example.com")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "key-from-env", cfg.KeyID)
	assert.Equal(t, "secret-from-env", cfg.Secret)
	assert.Equal(t, "https://paper-api.example.com", cfg.BaseURL)
}

func TestLoadDefaultBaseURL(t *testing.T) {
	t.Setenv(EnvKeyID, "key")
	t.Setenv(EnvSecret, "secret")
	t.Setenv(EnvBaseURL, "")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
}

func TestLoadMissingCredentials(t *testing.T) {
	t.Setenv(EnvKeyID, "")
	t.Setenv(EnvSecret, "")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvKeyID)
}

func TestLoadProfileFile(t *testing.T) {
	t.Setenv(EnvKeyID, "")
	t.Setenv(EnvSecret, "")
	t.Setenv(EnvBaseURL, "")

	path := filepath.Join(t.TempDir(), "profile.yaml")
	profile := "key_id: key-from-file\nsecret: secret-from-file\nbase_url: https://api.example.com\n"
	require.NoError(t, os.WriteFile(path, []byte(profile), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "key-from-file", cfg.KeyID)
	assert.Equal(t, "secret-from-file", cfg.Secret)
	assert.Equal(t, "https://api.example.com", cfg.BaseURL)
}

func TestLoadEnvOverridesProfile(t *testing.T) {
	t.Setenv(EnvKeyID, "key-from-env")
	t.Setenv(EnvSecret, "")
	t.Setenv(EnvBaseURL, "")

	path := filepath.Join(t.TempDir(), "profile.yaml")
	profile := "key_id: key-from-file\nsecret: secret-from-file\n"
	require.NoError(t, os.WriteFile(path, []byte(profile), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "key-from-env", cfg.KeyID)
	assert.Equal(t, "secret-from-file", cfg.Secret)
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
}

func TestLoadMissingProfileFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.Error(t, err)
}
