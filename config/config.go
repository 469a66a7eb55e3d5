package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	AppName string `envconfig:"APP_NAME" default:"coachdesk"`
	Debug   bool   `envconfig:"DEBUG" default:"false"`
	LogPath string `envconfig:"LOG_PATH"`

	HTTPAddr       string `envconfig:"HTTP_ADDR" default:"127.0.0.1:9090"`
	MetricsEnabled bool   `envconfig:"METRICS_ENABLED" default:"true"`

	StorageDriver string `envconfig:"STORAGE_DRIVER" default:"file"`
	DataPath      string `envconfig:"DATA_PATH"`
	SQLitePath    string `envconfig:"SQLITE_PATH"`
	DatabaseURL   string `envconfig:"DATABASE_URL"`
	StorageKey    string `envconfig:"STORAGE_KEY" default:"coachingDashboard"`

	AnalyticsCacheTTL time.Duration `envconfig:"ANALYTICS_CACHE_TTL" default:"1m"`
}

// Load reads an optional .env file and then the environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env file: %w", err)
	}

	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if err := c.resolve(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c *Config) resolve() error {
	switch c.StorageDriver {
	case "file", "sqlite":
	case "postgres":
		if c.DatabaseURL == "" {
			return fmt.Errorf("%w: DATABASE_URL is required for the postgres driver", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown STORAGE_DRIVER %q", ErrInvalidConfig, c.StorageDriver)
	}

	if c.DataPath == "" || c.SQLitePath == "" {
		dir, err := defaultDataDir(c.AppName)
		if err != nil {
			return err
		}
		if c.DataPath == "" {
			c.DataPath = filepath.Join(dir, "dashboard.json")
		}
		if c.SQLitePath == "" {
			c.SQLitePath = filepath.Join(dir, "dashboard.db")
		}
	}
	return nil
}

func defaultDataDir(appName string) (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("%w: no data directory: %v", ErrInvalidConfig, err)
	}
	return filepath.Join(base, appName), nil
}
