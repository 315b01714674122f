package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	content := []byte("tick_rate: 30\naudio:\n  enabled: false\ntheme:\n  player_alive: cyan\n")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.TickRate != 30 {
		t.Errorf("TickRate = %d, want 30", cfg.TickRate)
	}
	if cfg.Audio.Enabled {
		t.Error("Audio.Enabled = true, want false")
	}
	if cfg.Theme.PlayerAlive != "cyan" {
		t.Errorf("Theme.PlayerAlive = %q, want %q", cfg.Theme.PlayerAlive, "cyan")
	}
}

func TestLoadCustomPathMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("Load() with missing custom path should fail")
	}
}

func TestLoadCustomPathInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(path, []byte("tick_rate: [not a number"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if err == nil {
		t.Error("Load() with invalid YAML should fail")
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}

	want := Default()
	if cfg.TickRate != want.TickRate {
		t.Errorf("TickRate = %d, want %d", cfg.TickRate, want.TickRate)
	}
	if cfg.Audio.Enabled != want.Audio.Enabled {
		t.Errorf("Audio.Enabled = %v, want %v", cfg.Audio.Enabled, want.Audio.Enabled)
	}
	if cfg.Theme != want.Theme {
		t.Errorf("Theme = %+v, want %+v", cfg.Theme, want.Theme)
	}
	if cfg.SSH.Address != want.SSH.Address {
		t.Errorf("SSH.Address = %q, want %q", cfg.SSH.Address, want.SSH.Address)
	}
}
