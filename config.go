package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Config holds server configuration, loaded from an optional YAML file with
// environment overrides
type Config struct {
	Port                int      `yaml:"port"`
	DataDir             string   `yaml:"data_dir"`
	Region              string   `yaml:"region"`
	FxBase              string   `yaml:"fx_base"`
	FxTarget            string   `yaml:"fx_target"`
	FxEndpoint          string   `yaml:"fx_endpoint"`
	CostCacheTTLMinutes int      `yaml:"cost_cache_ttl_minutes"`
	FxCacheTTLMinutes   int      `yaml:"fx_cache_ttl_minutes"`
	AllowedOrigins      []string `yaml:"allowed_origins"`
}

func LoadConfig(path string, logger zerolog.Logger) (*Config, error) {
	cfg := &Config{
		Port:                8000,
		DataDir:             "Data",
		Region:              "us-east-1",
		FxBase:              "USD",
		FxTarget:            "INR",
		CostCacheTTLMinutes: 10,
		FxCacheTTLMinutes:   30,
	}

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if value := os.Getenv("FINLENS_PORT"); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			cfg.Port = parsed
		} else {
			logger.Warn().Str("value", value).Msg("invalid FINLENS_PORT, keeping configured port")
		}
	}
	if value := os.Getenv("FINLENS_DATA_DIR"); value != "" {
		cfg.DataDir = value
	}
	if value := os.Getenv("AWS_REGION"); value != "" {
		cfg.Region = value
	}
	if value := os.Getenv("FINLENS_FX_TARGET"); value != "" {
		cfg.FxTarget = strings.ToUpper(value)
	}
	if value := os.Getenv("FINLENS_CORS_ALLOWED_ORIGINS"); value != "" {
		cfg.AllowedOrigins = nil
		for _, origin := range strings.Split(value, ",") {
			trimmed := strings.TrimSpace(origin)
			if trimmed == "*" {
				logger.Warn().Msg("CORS wildcard origin (*) is insecure; use specific origins in production")
			}
			if trimmed != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, trimmed)
			}
		}
	}

	if cfg.CostCacheTTLMinutes <= 0 {
		return nil, fmt.Errorf("cost_cache_ttl_minutes must be positive, got %d", cfg.CostCacheTTLMinutes)
	}
	if cfg.FxCacheTTLMinutes <= 0 {
		return nil, fmt.Errorf("fx_cache_ttl_minutes must be positive, got %d", cfg.FxCacheTTLMinutes)
	}

	return cfg, nil
}
