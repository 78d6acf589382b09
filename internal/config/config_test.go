package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg GameConfig
	if err := yaml.Unmarshal(GetDefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if cfg != DefaultGameConfig() {
		t.Errorf("embedded default %+v differs from hardcoded %+v", cfg, DefaultGameConfig())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*GameConfig)
		wantErr bool
	}{
		{"default", func(*GameConfig) {}, false},
		{"zero width", func(c *GameConfig) { c.Board.Width = 0 }, true},
		{"negative height", func(c *GameConfig) { c.Board.Height = -3 }, true},
		{"prob above one", func(c *GameConfig) { c.Spawn.FourProb = 1.1 }, true},
		{"negative prob", func(c *GameConfig) { c.Spawn.FourProb = -0.1 }, true},
		{"tiny win target", func(c *GameConfig) { c.Rules.WinTarget = 1 }, true},
		{"wide board", func(c *GameConfig) { c.Board.Width = 8; c.Board.Height = 5 }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultGameConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.yaml")
	data := []byte("board:\n  width: 5\n  height: 3\nspawn:\n  four_prob: 0.25\nrules:\n  win_target: 256\nui:\n  theme: green\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Board.Width != 5 || cfg.Board.Height != 3 {
		t.Errorf("board = %dx%d, want 5x3", cfg.Board.Width, cfg.Board.Height)
	}
	if cfg.Spawn.FourProb != 0.25 {
		t.Errorf("four_prob = %v, want 0.25", cfg.Spawn.FourProb)
	}
	if cfg.Rules.WinTarget != 256 {
		t.Errorf("win_target = %d, want 256", cfg.Rules.WinTarget)
	}
	if cfg.UI.Theme != "green" {
		t.Errorf("theme = %q, want green", cfg.UI.Theme)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom config must fail loudly")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("board: [not a map]"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("malformed custom config must fail loudly")
	}

	invalid := filepath.Join(t.TempDir(), "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("board:\n  width: 0\n  height: 4\nspawn:\n  four_prob: 0.1\nrules:\n  win_target: 2048\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(invalid); err == nil {
		t.Error("custom config failing validation must fail loudly")
	}
}
