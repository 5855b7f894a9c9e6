package config

import (
	"os"
	"strconv"
)

// Config represents the complete application configuration
type Config struct {
	Server ServerConfig
	Engine EngineConfig
	Report ReportConfig
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port string
}

// EngineConfig holds permutation engine defaults
type EngineConfig struct {
	Trials  int
	Seed    int64
	Workers int
}

// ReportConfig holds report output settings
type ReportConfig struct {
	OutputDir string
}

// Load reads configuration from the environment, falling back to defaults.
func Load() Config {
	return Config{
		Server: ServerConfig{
			Port: envString("RANKPERM_PORT", "8080"),
		},
		Engine: EngineConfig{
			Trials:  envInt("RANKPERM_TRIALS", 1000),
			Seed:    envInt64("RANKPERM_SEED", 42),
			Workers: envInt("RANKPERM_WORKERS", 4),
		},
		Report: ReportConfig{
			OutputDir: envString("RANKPERM_REPORT_DIR", "."),
		},
	}
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}
