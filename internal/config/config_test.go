package config

import (
	"os"
	"path/filepath"
	"testing"
)

// A missing config file falls back to defaults instead of failing.
func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("got port %q, want 8080", cfg.Port)
	}
	if cfg.RequestsPerSec != 20 || cfg.RequestBurst != 40 {
		t.Errorf("got rate %v burst %d", cfg.RequestsPerSec, cfg.RequestBurst)
	}
}

func TestLoadFileAndEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "port: \"9090\"\nallowed_origins:\n  - http://localhost:5173\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("PORT", "7070")
	t.Setenv("ALLOWED_ORIGINS", "https://wellvis.app, https://staging.wellvis.app")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "7070" {
		t.Errorf("env should win: got port %q", cfg.Port)
	}
	want := []string{"https://wellvis.app", "https://staging.wellvis.app"}
	if len(cfg.AllowedOrigins) != len(want) {
		t.Fatalf("got origins %v", cfg.AllowedOrigins)
	}
	for i := range want {
		if cfg.AllowedOrigins[i] != want[i] {
			t.Errorf("origin %d: got %q, want %q", i, cfg.AllowedOrigins[i], want[i])
		}
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("port: [::"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}
