package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const (
	CATALOG_SOURCE_FILE = "file"
	CATALOG_SOURCE_API  = "api"
)

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const VENUES_CATALOG_RESOURCE = "venues.json"

type Config struct {
	Server  ServerConfig  `toml:"server"`
	Redis   RedisConfig   `toml:"redis"`
	Catalog CatalogConfig `toml:"catalog"`
	Listing ListingConfig `toml:"listing"`
	Metrics MetricsConfig `toml:"metrics"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"` // seconds
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// RedisConfig points at the catalog cache. An empty Addr selects the
// in-memory client.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

type CatalogConfig struct {
	Source                 string `toml:"source"` // "file" | "api"
	File                   string `toml:"file"`
	APIURL                 string `toml:"api_url"`
	APITimeout             int    `toml:"api_timeout"` // seconds
	RefreshScheduleMinutes int    `toml:"refresh_schedule_minutes"`
}

type ListingConfig struct {
	PageLimit int `toml:"page_limit"`
}

type MetricsConfig struct {
	Enabled   bool   `toml:"enabled"`
	Path      string `toml:"path"`
	Namespace string `toml:"namespace"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 5,
		},
		Catalog: CatalogConfig{
			Source:                 CATALOG_SOURCE_FILE,
			File:                   GetResourcePath(VENUES_CATALOG_RESOURCE),
			APITimeout:             10,
			RefreshScheduleMinutes: 60,
		},
		Listing: ListingConfig{PageLimit: 10},
		Metrics: MetricsConfig{
			Enabled:   true,
			Path:      "/metrics",
			Namespace: "venues_server",
		},
	}
}

// Load reads the TOML file at path over the defaults, then applies a .env
// file (if any) and environment variable overrides. A missing config file is
// not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to decode config %q: %w", path, err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}
	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	if v := os.Getenv("REDIS_DB"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid REDIS_DB %q: %w", v, err)
		}
		cfg.Redis.DB = n
	}
	if v := os.Getenv("HTTP_PORT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid HTTP_PORT %q: %w", v, err)
		}
		cfg.Server.HTTPPort = n
	}
	if v := os.Getenv("CATALOG_SOURCE"); v != "" {
		cfg.Catalog.Source = v
	}
	if v := os.Getenv("CATALOG_API_URL"); v != "" {
		cfg.Catalog.APIURL = v
	}
	if v := os.Getenv("CATALOG_FILE"); v != "" {
		cfg.Catalog.File = v
	}
	if v := os.Getenv("METRICS_ENABLED"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid METRICS_ENABLED %q: %w", v, err)
		}
		cfg.Metrics.Enabled = b
	}
	return nil
}

func (c *Config) Validate() error {
	switch c.Catalog.Source {
	case CATALOG_SOURCE_FILE:
		if c.Catalog.File == "" {
			return errors.New("catalog.file is required when catalog.source is \"file\"")
		}
	case CATALOG_SOURCE_API:
		if c.Catalog.APIURL == "" {
			return errors.New("catalog.api_url is required when catalog.source is \"api\"")
		}
	default:
		return fmt.Errorf("unknown catalog.source %q", c.Catalog.Source)
	}
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("invalid server.http_port %d", c.Server.HTTPPort)
	}
	if c.Listing.PageLimit <= 0 {
		return fmt.Errorf("invalid listing.page_limit %d", c.Listing.PageLimit)
	}
	if c.Catalog.RefreshScheduleMinutes < 0 {
		return fmt.Errorf("invalid catalog.refresh_schedule_minutes %d", c.Catalog.RefreshScheduleMinutes)
	}
	return nil
}

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resourceFile string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resourceFile)
}
