package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Storage.Backend = "sqlite"
	cfg.DefaultAccount = "Wallet"

	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, cfg.DataDir, got.DataDir)
	assert.Equal(t, "sqlite", got.Storage.Backend)
	assert.Equal(t, cfg.Storage.SQLitePath, got.Storage.SQLitePath)
	assert.Equal(t, cfg.Log, got.Log)
	assert.Equal(t, "Wallet", got.DefaultAccount)
}

func TestDefaults(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, "file", cfg.Storage.Backend)
	assert.Equal(t, filepath.Join("logs", "budgetbuddy.log"), cfg.Log.File)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "Main", cfg.DefaultAccount)
	assert.NoError(t, cfg.Validate())
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("data_dir: ledger\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "ledger", cfg.DataDir)
	assert.Equal(t, "file", cfg.Storage.Backend)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestYAMLFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, Save(path, Default()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "data_dir: data")
	assert.Contains(t, contents, "backend: file")
	assert.Contains(t, contents, "level: info")
	assert.Contains(t, contents, "default_account: Main")
}

func TestApplyEnv(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte(EnvStorage+"=sqlite\n"), 0o644))
	t.Setenv(EnvDataDir, "/srv/budget")
	t.Setenv(EnvLogLevel, "debug")
	// godotenv.Load does not override variables already set; clear it so the file wins.
	t.Setenv(EnvStorage, "")
	require.NoError(t, os.Unsetenv(EnvStorage))

	cfg := Default()
	require.NoError(t, cfg.ApplyEnv(envFile))

	assert.Equal(t, "/srv/budget", cfg.DataDir)
	assert.Equal(t, "sqlite", cfg.Storage.Backend)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestApplyEnv_MissingFile(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.ApplyEnv(filepath.Join(t.TempDir(), ".env")))
}

func TestResolve(t *testing.T) {
	cfg := Default()
	cfg.Log.File = "/var/log/bb.log"
	cfg.Resolve("/home/me")

	assert.Equal(t, filepath.Join("/home/me", "data"), cfg.DataDir)
	assert.Equal(t, filepath.Join("/home/me", "data", "budgetbuddy.db"), cfg.Storage.SQLitePath)
	assert.Equal(t, "/var/log/bb.log", cfg.Log.File)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Storage.Backend = "postgres"
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Log.Format = "xml"
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Log.Level = "loud"
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.DataDir = ""
	assert.Error(t, cfg.Validate())
}
