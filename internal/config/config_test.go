// ABOUTME: Tests for configuration loading
// ABOUTME: Covers YAML parsing, env expansion, defaults and validation

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoad_FullConfig(t *testing.T) {
	path := writeConfig(t, `
database:
  path: /tmp/crm-test.db
auth:
  jwt_secret: super-secret
  token_ttl: 12h
session:
  path: /tmp/crm-test-token
logging:
  level: debug
  format: json
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/crm-test.db", cfg.Database.Path)
	assert.Equal(t, "super-secret", cfg.Auth.JWTSecret)
	assert.Equal(t, 12*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, "/tmp/crm-test-token", cfg.Session.Path)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("EPICEVENTS_JWT_SECRET", "env-secret")

	path := writeConfig(t, `
database:
  path: /tmp/crm-test.db
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "env-secret", cfg.Auth.JWTSecret)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.NotEmpty(t, cfg.Session.Path)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("EPICEVENTS_JWT_SECRET", "env-secret")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "env-secret", cfg.Auth.JWTSecret)
	assert.NotEmpty(t, cfg.Database.Path)
}

func TestLoad_EnvExpansion(t *testing.T) {
	t.Setenv("TEST_CRM_SECRET", "expanded-secret")
	t.Setenv("TEST_CRM_DB", "/tmp/expanded.db")

	path := writeConfig(t, `
database:
  path: ${TEST_CRM_DB}
auth:
  jwt_secret: ${TEST_CRM_SECRET}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "expanded-secret", cfg.Auth.JWTSecret)
	assert.Equal(t, "/tmp/expanded.db", cfg.Database.Path)
}

func TestLoad_MissingSecretFails(t *testing.T) {
	t.Setenv("EPICEVENTS_JWT_SECRET", "")

	path := writeConfig(t, `
database:
  path: /tmp/crm-test.db
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jwt_secret")
}

func TestLoad_BadDuration(t *testing.T) {
	path := writeConfig(t, `
auth:
  jwt_secret: super-secret
  token_ttl: not-a-duration
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "token_ttl")
}

func TestLoad_BadYAML(t *testing.T) {
	path := writeConfig(t, "database: [unclosed")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestDefaultPath_EnvOverride(t *testing.T) {
	t.Setenv("EPICEVENTS_CONFIG", "/etc/epicevents/config.yaml")
	assert.Equal(t, "/etc/epicevents/config.yaml", DefaultPath())

	t.Setenv("EPICEVENTS_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")
	assert.Equal(t, "/custom/config/epicevents/config.yaml", DefaultPath())
}
