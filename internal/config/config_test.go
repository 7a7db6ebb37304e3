package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"missingfit/internal/config"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"CONFIG_FILE", "PORT", "ITEMS_BASE_URL", "FETCH_TIMEOUT", "DB_DSN", "LOG_FILE",
		"WHATSAPP_NUMBER", "BUSINESS_NAME", "ADMIN_USER", "ADMIN_PASSWORD_HASH",
		"TEMPLATES_DIR", "STATIC_DIR",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Defaults(), cfg)
	assert.False(t, cfg.AdminEnabled())
	assert.Equal(t, ":8080", cfg.Addr())
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("ITEMS_BASE_URL", "https://api.example.test")
	t.Setenv("FETCH_TIMEOUT", "3s")
	t.Setenv("ADMIN_PASSWORD_HASH", "$2a$10$abc")

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "https://api.example.test", cfg.ItemsBaseURL)
	assert.Equal(t, 3*time.Second, cfg.FetchTimeout)
	assert.True(t, cfg.AdminEnabled())
}

func TestLoadYAMLThenEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "missingfit.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
port: "7000"
items_base_url: https://catalog.example.test
fetch_timeout: 5s
business_name: Test Boutique
`), 0o600))
	t.Setenv("PORT", "7001")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "7001", cfg.Port, "env wins over file")
	assert.Equal(t, "https://catalog.example.test", cfg.ItemsBaseURL)
	assert.Equal(t, 5*time.Second, cfg.FetchTimeout)
	assert.Equal(t, "Test Boutique", cfg.BusinessName)
}

func TestLoadRejectsInvalid(t *testing.T) {
	clearEnv(t)
	t.Setenv("ITEMS_BASE_URL", "not a url")
	_, err := config.Load("")
	assert.Error(t, err)
}

func TestLoadRejectsBadTimeout(t *testing.T) {
	clearEnv(t)
	t.Setenv("FETCH_TIMEOUT", "soon")
	_, err := config.Load("")
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	clearEnv(t)
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
