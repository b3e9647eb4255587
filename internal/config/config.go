// Package config handles reading and writing ~/.aula/config.yaml.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the top-level structure for ~/.aula/config.yaml.
type Config struct {
	Version int       `yaml:"version"`
	API     APIConfig `yaml:"api"`
	DataDir string    `yaml:"data_dir"`
}

// APIConfig holds backend endpoint settings.
type APIConfig struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"` // 0 = no timeout
}

const configDir = ".aula"
const configFile = "config.yaml"
const envFile = ".env"

// Dir returns the aula data directory inside home, typically ~/.aula.
func Dir(home string) string {
	return filepath.Join(home, configDir)
}

// Read reads config.yaml from the aula directory inside home and applies
// environment overrides on top. A missing config file is not an error; the
// defaults are used as the base.
func Read(home string) (*Config, error) {
	cfg := Default(home)

	path := filepath.Join(home, configDir, configFile)
	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parsing %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if err := applyEnv(home, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Write writes cfg to config.yaml inside the aula directory under home.
// Creates the directory if it does not exist.
func Write(home string, cfg *Config) error {
	dirPath := filepath.Join(home, configDir)
	if err := os.MkdirAll(dirPath, 0755); err != nil {
		return fmt.Errorf("config: creating directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: marshalling: %w", err)
	}

	path := filepath.Join(dirPath, configFile)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("config: writing %s: %w", path, err)
	}

	return nil
}

// Default returns a Config populated with sensible defaults.
func Default(home string) *Config {
	return &Config{
		Version: 1,
		API: APIConfig{
			BaseURL:        "http://localhost:8000/api",
			TimeoutSeconds: 0,
		},
		DataDir: filepath.Join(home, configDir),
	}
}

// applyEnv loads ~/.aula/.env if present and then applies AULA_* variables
// from the process environment over cfg. Process env wins over the file
// because godotenv.Load never overrides variables that are already set.
func applyEnv(home string, cfg *Config) error {
	dotEnvPath := filepath.Join(home, configDir, envFile)
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			return fmt.Errorf("config: loading %s: %w", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("config: stat %s: %w", dotEnvPath, err)
	}

	if v := os.Getenv("AULA_API_URL"); v != "" {
		cfg.API.BaseURL = v
	}
	if v := os.Getenv("AULA_API_TIMEOUT"); v != "" {
		secs, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: AULA_API_TIMEOUT %q: %w", v, err)
		}
		cfg.API.TimeoutSeconds = secs
	}
	if v := os.Getenv("AULA_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	return nil
}
