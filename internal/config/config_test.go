package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg RacketConfig
	if err := yaml.Unmarshal(GetDefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}

	if cfg != DefaultRacketConfig() {
		t.Errorf("embedded defaults differ from DefaultRacketConfig:\n%+v\n%+v", cfg, DefaultRacketConfig())
	}
}

func TestDefaultIsValid(t *testing.T) {
	if err := DefaultRacketConfig().Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadRacketCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "racket.yaml")
	data := []byte("gameplay:\n  lives: 7\nlaunch:\n  force: 12\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadRacket(path)
	if err != nil {
		t.Fatalf("LoadRacket() error: %v", err)
	}

	if cfg.Gameplay.Lives != 7 {
		t.Errorf("lives = %d, expected 7", cfg.Gameplay.Lives)
	}
	if cfg.Launch.Force != 12 {
		t.Errorf("force = %v, expected 12", cfg.Launch.Force)
	}
	if cfg.Arena.Width != 360 {
		t.Errorf("unset keys should keep defaults, width = %v", cfg.Arena.Width)
	}
}

func TestLoadRacketCustomPathErrors(t *testing.T) {
	if _, err := LoadRacket(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("arena: [unclosed"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadRacket(path); err == nil {
		t.Error("expected error for malformed custom config")
	}
}

func TestLoadRacketFallsBackToDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdirForTest(t, t.TempDir())

	cfg, err := LoadRacket("")
	if err != nil {
		t.Fatalf("LoadRacket() error: %v", err)
	}
	if cfg != DefaultRacketConfig() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadRacketLocalConfigsDir(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	chdirForTest(t, dir)

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join("configs", "racket.yaml"), []byte("gameplay:\n  lives: 9\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadRacket("")
	if err != nil {
		t.Fatalf("LoadRacket() error: %v", err)
	}
	if cfg.Gameplay.Lives != 9 {
		t.Errorf("lives = %d, expected 9", cfg.Gameplay.Lives)
	}
}

func TestApplyRacketPreset(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		lives  int
		width  float64
	}{
		{DifficultyEasy, 5, 110},
		{DifficultyNormal, 3, 80},
		{DifficultyHard, 2, 60},
		{"", 3, 80},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultRacketConfig()
			ApplyRacketPreset(&cfg, tc.preset)

			if cfg.Gameplay.Lives != tc.lives {
				t.Errorf("lives = %d, expected %d", cfg.Gameplay.Lives, tc.lives)
			}
			if cfg.Arena.RacketWidth != tc.width {
				t.Errorf("racket width = %v, expected %v", cfg.Arena.RacketWidth, tc.width)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset config invalid: %v", err)
			}
		})
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", "", false},
		{"easy", DifficultyEasy, false},
		{" HARD ", DifficultyHard, false},
		{"normal", DifficultyNormal, false},
		{"fixed", "", true},
	}

	for _, tc := range tests {
		got, err := ParseDifficulty(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseDifficulty(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
		}
		if got != tc.want {
			t.Errorf("ParseDifficulty(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RacketConfig)
	}{
		{"no lives", func(c *RacketConfig) { c.Gameplay.Lives = 0 }},
		{"zero force", func(c *RacketConfig) { c.Launch.Force = 0 }},
		{"empty queue", func(c *RacketConfig) { c.Input.QueueSize = 0 }},
		{"zero key step", func(c *RacketConfig) { c.Input.KeyStep = 0 }},
		{"racket too wide", func(c *RacketConfig) { c.Arena.RacketWidth = 1000 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultRacketConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}

// chdirForTest changes the working directory for the duration of the test,
// restoring the previous directory on cleanup (equivalent to testing.T.Chdir).
func chdirForTest(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restore cwd: %v", err)
		}
	})
}
