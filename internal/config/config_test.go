package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigYAMLRoundTrip(t *testing.T) {
	home := t.TempDir()

	cfg := Default(home)
	cfg.API.BaseURL = "https://backend.example.edu/api"
	cfg.API.TimeoutSeconds = 30

	if err := Write(home, cfg); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	loaded, err := Read(home)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	if loaded.API.BaseURL != "https://backend.example.edu/api" {
		t.Errorf("BaseURL: got %q, want %q", loaded.API.BaseURL, "https://backend.example.edu/api")
	}
	if loaded.API.TimeoutSeconds != 30 {
		t.Errorf("TimeoutSeconds: got %d, want 30", loaded.API.TimeoutSeconds)
	}
}

func TestReadMissingFileUsesDefaults(t *testing.T) {
	home := t.TempDir()

	cfg, err := Read(home)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if cfg.API.BaseURL != Default(home).API.BaseURL {
		t.Errorf("BaseURL: got %q, want default", cfg.API.BaseURL)
	}
	if cfg.DataDir != filepath.Join(home, ".aula") {
		t.Errorf("DataDir: got %q, want %q", cfg.DataDir, filepath.Join(home, ".aula"))
	}
}

func TestEnvOverridesFile(t *testing.T) {
	home := t.TempDir()

	cfg := Default(home)
	cfg.API.BaseURL = "https://from-file.example.edu"
	if err := Write(home, cfg); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	t.Setenv("AULA_API_URL", "https://from-env.example.edu")
	t.Setenv("AULA_API_TIMEOUT", "15")

	loaded, err := Read(home)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if loaded.API.BaseURL != "https://from-env.example.edu" {
		t.Errorf("BaseURL: got %q, want env value", loaded.API.BaseURL)
	}
	if loaded.API.TimeoutSeconds != 15 {
		t.Errorf("TimeoutSeconds: got %d, want 15", loaded.API.TimeoutSeconds)
	}
}

func TestDotEnvFileIsLoaded(t *testing.T) {
	home := t.TempDir()
	dir := filepath.Join(home, ".aula")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	// Use a name no other test sets in the process env.
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("AULA_DATA_DIR="+filepath.Join(home, "elsewhere")+"\n"), 0644); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	t.Setenv("AULA_DATA_DIR", "")
	os.Unsetenv("AULA_DATA_DIR")

	cfg, err := Read(home)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if cfg.DataDir != filepath.Join(home, "elsewhere") {
		t.Errorf("DataDir: got %q, want .env value", cfg.DataDir)
	}
}

func TestBadTimeoutEnv(t *testing.T) {
	home := t.TempDir()
	t.Setenv("AULA_API_TIMEOUT", "soon")

	if _, err := Read(home); err == nil {
		t.Error("Read should fail on non-numeric AULA_API_TIMEOUT")
	}
}
