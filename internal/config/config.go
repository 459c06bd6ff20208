package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config defines server configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Transport TransportConfig `yaml:"transport"`
	Store     StoreConfig     `yaml:"store"`
	Catalog   CatalogConfig   `yaml:"catalog"`
	Log       LogConfig       `yaml:"log"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// TransportConfig selects how the service is exposed: "http" serves the REST
// API plus the MCP endpoint, "stdio" runs MCP over stdin/stdout only.
type TransportConfig struct {
	Mode string `yaml:"mode"`
}

// StoreConfig selects the roster backend. The "memory" driver matches the
// reference behavior (fresh seed on every start); "sqlite" keeps rosters in
// a database file at Path.
type StoreConfig struct {
	Driver string `yaml:"driver"`
	Path   string `yaml:"path"`
}

// CatalogConfig optionally points at a YAML file replacing the built-in
// activity seed.
type CatalogConfig struct {
	Path string `yaml:"path"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Load reads configuration from an optional YAML file and environment variables.
func Load() (Config, error) {
	cfg := Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Transport: TransportConfig{
			Mode: "http",
		},
		Store: StoreConfig{
			Driver: "memory",
			Path:   "activities.db",
		},
		Log: LogConfig{
			Level: "info",
		},
	}

	if path := os.Getenv("MERGINGTON_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if host := os.Getenv("MERGINGTON_SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if portStr := os.Getenv("MERGINGTON_SERVER_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid MERGINGTON_SERVER_PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	if mode := os.Getenv("MERGINGTON_TRANSPORT_MODE"); mode != "" {
		cfg.Transport.Mode = mode
	}
	if driver := os.Getenv("MERGINGTON_STORE_DRIVER"); driver != "" {
		cfg.Store.Driver = driver
	}
	if path := os.Getenv("MERGINGTON_STORE_PATH"); path != "" {
		cfg.Store.Path = path
	}
	if path := os.Getenv("MERGINGTON_CATALOG_PATH"); path != "" {
		cfg.Catalog.Path = path
	}
	if level := os.Getenv("MERGINGTON_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}

	if cfg.Transport.Mode != "http" && cfg.Transport.Mode != "stdio" {
		return Config{}, fmt.Errorf("invalid transport mode %q", cfg.Transport.Mode)
	}
	if cfg.Store.Driver != "memory" && cfg.Store.Driver != "sqlite" {
		return Config{}, fmt.Errorf("invalid store driver %q", cfg.Store.Driver)
	}

	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
