// Package config loads the daemon configuration from an optional yaml file
// with environment-variable overrides.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults. The upstream base URL points at the provider gateway; the
// request timeout is the pipeline's fixed wait bound.
const (
	DefaultHost           = "127.0.0.1"
	DefaultPort           = "8090"
	DefaultUpstreamURL    = "http://127.0.0.1:8080"
	DefaultRequestTimeout = 30 * time.Second
	DefaultDBPath         = "edgedeck.db"
)

type fileConfig struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	DBPath   string `yaml:"db_path"`
	Upstream struct {
		BaseURL string `yaml:"base_url"`
		Timeout string `yaml:"timeout"`
	} `yaml:"upstream"`
}

// Config is the resolved daemon configuration.
type Config struct {
	Host            string
	Port            string
	DBPath          string
	UpstreamBaseURL string
	RequestTimeout  time.Duration
}

// Addr returns the listen address.
func (c Config) Addr() string {
	return c.Host + ":" + c.Port
}

// Load reads the yaml file at path (skipped when path is empty or the file
// does not exist), then applies EDGEDECK_* environment overrides on top of
// the defaults.
func Load(path string) (Config, error) {
	cfg := Config{
		Host:            DefaultHost,
		Port:            DefaultPort,
		DBPath:          DefaultDBPath,
		UpstreamBaseURL: DefaultUpstreamURL,
		RequestTimeout:  DefaultRequestTimeout,
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			var fc fileConfig
			if err := yaml.Unmarshal(data, &fc); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", path, err)
			}
			applyFile(&cfg, fc)
		} else if !os.IsNotExist(err) {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyFile(cfg *Config, fc fileConfig) {
	if fc.Host != "" {
		cfg.Host = fc.Host
	}
	if fc.Port != "" {
		cfg.Port = fc.Port
	}
	if fc.DBPath != "" {
		cfg.DBPath = fc.DBPath
	}
	if fc.Upstream.BaseURL != "" {
		cfg.UpstreamBaseURL = fc.Upstream.BaseURL
	}
	if fc.Upstream.Timeout != "" {
		if d, err := time.ParseDuration(fc.Upstream.Timeout); err == nil && d > 0 {
			cfg.RequestTimeout = d
		}
	}
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("EDGEDECK_HOST"); v != "" {
		cfg.Host = v
	}
	if v := os.Getenv("EDGEDECK_PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("EDGEDECK_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("EDGEDECK_UPSTREAM_URL"); v != "" {
		cfg.UpstreamBaseURL = v
	}
	if v := os.Getenv("EDGEDECK_REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.RequestTimeout = d
		}
	}
}
