package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds runtime settings.
type Config struct {
	DatabasePath string    `yaml:"database_path"`
	SiteURL      string    `yaml:"site_url"`
	Timezone     string    `yaml:"timezone"`
	Log          LogConfig `yaml:"log"`
	API          APIConfig `yaml:"api"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level string `yaml:"level"`
	// File is where logs go; empty disables logging.
	File string `yaml:"file"`
}

// APIConfig configures the HTTP API.
type APIConfig struct {
	Addr string `yaml:"addr"`
	// AdminTokenHash is a bcrypt hash of the bearer token allowed to write.
	AdminTokenHash string `yaml:"admin_token_hash"`
}

// Default returns the built-in configuration rooted at dataDir.
func Default(dataDir string) Config {
	return Config{
		DatabasePath: filepath.Join(dataDir, DBFileName),
		SiteURL:      DefaultSiteURL,
		Timezone:     DefaultTimezone,
		Log: LogConfig{
			Level: DefaultLogLevel,
			File:  filepath.Join(dataDir, LogFileName),
		},
		API: APIConfig{Addr: DefaultAPIAddr},
	}
}

// Load builds a Config from defaults, a .env file, the YAML file at path and
// SEODESK_* environment variables, in that order. Missing files are skipped;
// an explicitly named path that does not exist is an error.
func Load(path, dataDir string) (Config, error) {
	cfg := Default(dataDir)

	if err := godotenv.Load(DefaultDotEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("load %s: %w", DefaultDotEnvFile, err)
	}

	explicit := path != ""
	if !explicit {
		path = strings.TrimSpace(os.Getenv(EnvConfig))
		explicit = path != ""
	}
	if !explicit {
		path = filepath.Join(dataDir, ConfigFileName)
	}
	if err := cfg.loadFile(path); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			err = nil
		}
		if err != nil {
			return cfg, err
		}
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	set := func(dst *string, key string) {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			*dst = v
		}
	}
	set(&c.DatabasePath, EnvDatabasePath)
	set(&c.SiteURL, EnvSiteURL)
	set(&c.Timezone, EnvTimezone)
	set(&c.API.Addr, EnvAPIAddr)
	set(&c.API.AdminTokenHash, EnvAdminTokenHash)
	set(&c.Log.Level, EnvLogLevel)
	set(&c.Log.File, EnvLogFile)
}

// Validate reports settings that cannot work.
func (c Config) Validate() error {
	if strings.TrimSpace(c.DatabasePath) == "" {
		return errors.New("database_path is empty")
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	if site := c.BaseURL(); !strings.HasPrefix(site, "http://") && !strings.HasPrefix(site, "https://") {
		return fmt.Errorf("site_url %q must start with http:// or https://", c.SiteURL)
	}
	return nil
}

// Location resolves Timezone, defaulting to UTC when empty.
func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// BaseURL returns SiteURL without a trailing slash.
func (c Config) BaseURL() string {
	return strings.TrimRight(c.SiteURL, "/")
}
