package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// FileName is the default config file name.
const FileName = "budgetbuddy.yaml"

// Environment variables that override the YAML file.
const (
	EnvDataDir  = "BUDGETBUDDY_DATA_DIR"
	EnvStorage  = "BUDGETBUDDY_STORAGE"
	EnvLogLevel = "BUDGETBUDDY_LOG_LEVEL"
)

// Config represents budgetbuddy.yaml.
type Config struct {
	DataDir        string        `yaml:"data_dir"`
	Storage        StorageConfig `yaml:"storage"`
	Log            LogConfig     `yaml:"log"`
	DefaultAccount string        `yaml:"default_account"`
}

// StorageConfig selects where the ledger is persisted.
type StorageConfig struct {
	Backend    string `yaml:"backend"` // "file" or "sqlite"
	SQLitePath string `yaml:"sqlite_path,omitempty"`
}

// LogConfig controls the application log file.
type LogConfig struct {
	File   string `yaml:"file"`
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "json" or "text"
}

// Default returns a Config with sensible defaults rooted at the current directory.
func Default() *Config {
	return &Config{
		DataDir: "data",
		Storage: StorageConfig{
			Backend:    "file",
			SQLitePath: filepath.Join("data", "budgetbuddy.db"),
		},
		Log: LogConfig{
			File:   filepath.Join("logs", "budgetbuddy.log"),
			Level:  "info",
			Format: "json",
		},
		DefaultAccount: "Main",
	}
}

// Load reads a budgetbuddy.yaml file from disk over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// LoadOrDefault is like Load but returns the defaults when path does not exist.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// ApplyEnv loads envFile if it exists and applies the BUDGETBUDDY_* overrides.
func (c *Config) ApplyEnv(envFile string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("loading %s: %w", envFile, err)
		}
	}
	if v := os.Getenv(EnvDataDir); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv(EnvStorage); v != "" {
		c.Storage.Backend = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
	return nil
}

// Resolve makes relative paths relative to root.
func (c *Config) Resolve(root string) {
	c.DataDir = resolve(root, c.DataDir)
	c.Storage.SQLitePath = resolve(root, c.Storage.SQLitePath)
	c.Log.File = resolve(root, c.Log.File)
}

// Validate checks the enumerated settings.
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case "file", "sqlite":
	default:
		return fmt.Errorf("invalid storage backend %q want file or sqlite", c.Storage.Backend)
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	switch c.Log.Format {
	case "json", "text":
	default:
		return fmt.Errorf("invalid log format %q want json or text", c.Log.Format)
	}
	if c.DataDir == "" {
		return errors.New("data_dir must be set")
	}
	return nil
}

func resolve(root, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}
