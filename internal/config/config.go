package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Port              string `toml:"port"`
	LogLevel          string `toml:"log_level"`
	StrictTaskRecords bool   `toml:"strict_task_records"`
}

func Default() Config {
	return Config{
		Port:              "8080",
		LogLevel:          "info",
		StrictTaskRecords: true,
	}
}

// Load builds the configuration from defaults, then the TOML file named by
// TASKBOX_CONFIG (if set), then individual environment variables.
func Load() (Config, error) {
	cfg := Default()

	if path := os.Getenv("TASKBOX_CONFIG"); path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)

	if v := os.Getenv("STRICT_TASK_RECORDS"); v != "" {
		strict, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("STRICT_TASK_RECORDS: %w", err)
		}
		cfg.StrictTaskRecords = strict
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
