package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := Default()
	if cfg.Theme != "classic" {
		t.Errorf("Theme = %q, want classic", cfg.Theme)
	}
	if cfg.CharLimit != defaultCharLimit {
		t.Errorf("CharLimit = %d, want %d", cfg.CharLimit, defaultCharLimit)
	}
	if cfg.Seed != "" {
		t.Errorf("Seed = %q, want empty", cfg.Seed)
	}
}

func TestLoadFromMissingFile(t *testing.T) {
	cfg, err := loadFrom(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoadFromFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.yaml")
	data := "theme: neon\nseed: /tmp/todos.json\nchar_limit: 80\n"
	if err := os.WriteFile(p, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := loadFrom(p)
	if err != nil {
		t.Fatalf("loadFrom: %v", err)
	}
	if cfg.Theme != "neon" || cfg.Seed != "/tmp/todos.json" || cfg.CharLimit != 80 {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadFromFillsBlanks(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(p, []byte("seed: s.json\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := loadFrom(p)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Theme != "classic" || cfg.CharLimit != defaultCharLimit {
		t.Errorf("blank fields not defaulted: %+v", cfg)
	}
}

func TestLoadFromMalformed(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(p, []byte(":\n\t-bad"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadFrom(p); err == nil {
		t.Fatal("malformed YAML should error")
	}
}
