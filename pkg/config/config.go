package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds the server settings. Precedence is flag > env > file >
// default; flags are applied by the caller.
type Config struct {
	Port        string  `yaml:"port"`
	DBPath      string  `yaml:"db_path"`
	AIProvider  string  `yaml:"ai_provider"` // gemini or openai
	TextModel   string  `yaml:"text_model"`
	ImageModel  string  `yaml:"image_model"`
	Temperature float32 `yaml:"temperature"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Port:        "8080",
		DBPath:      "expedition-pilot.db",
		AIProvider:  "gemini",
		Temperature: 0.7,
	}
}

// Load reads an optional YAML config file over the defaults and then applies
// environment overrides. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

// applyEnv overlays environment variables onto the configuration.
// Unset variables leave the current values alone.
func (c *Config) applyEnv() {
	if v := os.Getenv("PORT"); v != "" {
		c.Port = v
	}
	if v := os.Getenv("DB_PATH"); v != "" {
		c.DBPath = v
	}
	if v := os.Getenv("AI_PROVIDER"); v != "" {
		c.AIProvider = v
	}
	if v := os.Getenv("TEXT_MODEL"); v != "" {
		c.TextModel = v
	}
	if v := os.Getenv("IMAGE_MODEL"); v != "" {
		c.ImageModel = v
	}
	if v := os.Getenv("AI_TEMPERATURE"); v != "" {
		if f, err := strconv.ParseFloat(v, 32); err == nil {
			c.Temperature = float32(f)
		}
	}
}
