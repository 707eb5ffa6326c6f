// Package config loads service settings from an optional YAML file with
// environment-variable overrides. Env vars win so deployments can keep the
// checked-in file generic.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
)

type Config struct {
	Port           string   `yaml:"port"`
	DatabaseURL    string   `yaml:"database_url"`
	AllowedOrigins []string `yaml:"allowed_origins"`
	RequestsPerSec float64  `yaml:"requests_per_sec"`
	RequestBurst   int      `yaml:"request_burst"`
}

// Load reads path if it exists, then applies env overrides and defaults.
// A missing file is not an error; a malformed one is.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Port:           "8080",
		RequestsPerSec: 20,
		RequestBurst:   40,
	}

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.DatabaseURL = v
	}
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		cfg.AllowedOrigins = splitOrigins(v)
	}

	return cfg, nil
}

func splitOrigins(v string) []string {
	var out []string
	for _, o := range strings.Split(v, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
