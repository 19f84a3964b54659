package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("port = %q, want 8080", cfg.Port)
	}
	if cfg.AIProvider != "gemini" {
		t.Errorf("provider = %q, want gemini", cfg.AIProvider)
	}
	if cfg.Temperature != 0.7 {
		t.Errorf("temperature = %v, want 0.7", cfg.Temperature)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "port: \"9090\"\nai_provider: openai\ntext_model: gpt-4o\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "9090" {
		t.Errorf("port = %q, want 9090", cfg.Port)
	}
	if cfg.AIProvider != "openai" {
		t.Errorf("provider = %q, want openai", cfg.AIProvider)
	}
	if cfg.TextModel != "gpt-4o" {
		t.Errorf("text model = %q, want gpt-4o", cfg.TextModel)
	}
	// Untouched keys keep defaults.
	if cfg.DBPath != "expedition-pilot.db" {
		t.Errorf("db path = %q, want default", cfg.DBPath)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("port: \"9090\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PORT", "7070")
	t.Setenv("AI_TEMPERATURE", "0.2")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "7070" {
		t.Errorf("port = %q, want env override 7070", cfg.Port)
	}
	if cfg.Temperature != 0.2 {
		t.Errorf("temperature = %v, want 0.2", cfg.Temperature)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}
