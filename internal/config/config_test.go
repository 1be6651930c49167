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
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	configPath := writeConfig(t, `
server:
  port: 9090
  host: "0.0.0.0"

cors:
  allowed_origins:
    - "https://gites.example.fr"

sheets:
  spreadsheet_id: "sheet-id-123"
  credentials_file: "/etc/gites/credentials.json"
  timeout_seconds: 45

archive:
  path: "data/archives.json"

properties:
  - Phonsine
  - Gree
  - Edmond
  - Liberté
`)

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, []string{"https://gites.example.fr"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "sheet-id-123", cfg.Sheets.SpreadsheetID)
	assert.Equal(t, "/etc/gites/credentials.json", cfg.Sheets.CredentialsFile)
	assert.Equal(t, 45*time.Second, cfg.Sheets.Timeout())
	assert.Equal(t, "data/archives.json", cfg.Archive.Path)
	assert.Equal(t, []string{"Phonsine", "Gree", "Edmond", "Liberté"}, cfg.Properties)
}

func TestLoadDefaults(t *testing.T) {
	configPath := writeConfig(t, `
sheets:
  spreadsheet_id: "sheet-id-123"
properties: [Phonsine]
`)

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, 5001, cfg.Server.Port)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, "%s!A:I", cfg.Sheets.RangeTemplate)
	assert.Equal(t, 30*time.Second, cfg.Sheets.Timeout())
	assert.Equal(t, "archives/archives.json", cfg.Archive.Path)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadInvalidYAML(t *testing.T) {
	configPath := writeConfig(t, "server: [not a mapping")
	_, err := Load(configPath)
	assert.Error(t, err)
}

func TestLoadFromEnvOverrides(t *testing.T) {
	configPath := writeConfig(t, `
sheets:
  spreadsheet_id: "from-file"
properties: [Phonsine]
`)

	t.Setenv("SPREAD_SHEET_ID", "from-env")
	t.Setenv("ARCHIVE_PATH", "/var/lib/gites/archives.json")
	t.Setenv("ALLOWED_ORIGIN", "https://prod.example.fr")
	t.Setenv("PORT", "8081")

	cfg, err := LoadFromEnv(configPath)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Sheets.SpreadsheetID)
	assert.Equal(t, "/var/lib/gites/archives.json", cfg.Archive.Path)
	assert.Equal(t, []string{"https://prod.example.fr"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, 8081, cfg.Server.Port)
}

func TestGetHostEnvOverride(t *testing.T) {
	t.Setenv("SERVER_HOST", "0.0.0.0")
	cfg := ServerConfig{Host: "127.0.0.1"}
	assert.Equal(t, "0.0.0.0", cfg.GetHost())
}
