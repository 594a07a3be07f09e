package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig(nil)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Engine != "life" || cfg.Width != 64 || cfg.Height != 64 {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if cfg.Delay != 10*time.Millisecond {
		t.Fatalf("default delay %v", cfg.Delay)
	}
}

func TestParseConfigFlags(t *testing.T) {
	cfg, err := ParseConfig([]string{"--width", "12", "-y", "7", "--delay", "25ms", "--alive-color", "#000"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Width != 12 || cfg.Height != 7 {
		t.Fatalf("grid %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Delay != 25*time.Millisecond {
		t.Fatalf("delay %v", cfg.Delay)
	}
	p, err := cfg.Palette()
	if err != nil {
		t.Fatalf("palette: %v", err)
	}
	if p.Alive.R != 0 || p.Alive.A != 0xFF {
		t.Fatalf("alive colour %v", p.Alive)
	}
}

func TestParseConfigFileThenFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "life.yaml")
	data := []byte("width: 20\nheight: 30\ndelay: 50ms\ncolors:\n  dead: \"#101010\"\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := ParseConfig([]string{"--config", path, "--height", "5"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Width != 20 {
		t.Fatalf("file width not applied: %d", cfg.Width)
	}
	if cfg.Height != 5 {
		t.Fatalf("flag should override file height: %d", cfg.Height)
	}
	if cfg.Delay != 50*time.Millisecond {
		t.Fatalf("file delay %v", cfg.Delay)
	}
	if cfg.Colors.Dead != "#101010" {
		t.Fatalf("file colour %q", cfg.Colors.Dead)
	}
	if cfg.ConfigFile != path {
		t.Fatalf("config path %q", cfg.ConfigFile)
	}
}

func TestParseConfigMissingFile(t *testing.T) {
	if _, err := ParseConfig([]string{"--config", filepath.Join(t.TempDir(), "nope.yaml")}); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"width":     func(c *Config) { c.Width = 0 },
		"height":    func(c *Config) { c.Height = -1 },
		"cell size": func(c *Config) { c.CellSize = 0 },
		"delay":     func(c *Config) { c.Delay = -time.Millisecond },
		"scale":     func(c *Config) { c.Scale = 0 },
		"frames":    func(c *Config) { c.Frames = -2 },
		"colour":    func(c *Config) { c.Colors.Grid = "#zzz" },
		"log level": func(c *Config) { c.LogLevel = "loud" },
	}
	for name, mutate := range cases {
		cfg := NewConfig()
		mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected validation error", name)
		}
	}
	if err := NewConfig().Validate(); err != nil {
		t.Fatalf("defaults rejected: %v", err)
	}
}

func TestEngineOptions(t *testing.T) {
	cfg := NewConfig()
	cfg.Width, cfg.Height = 9, 4
	opts := cfg.EngineOptions()
	if opts["w"] != "9" || opts["h"] != "4" {
		t.Fatalf("engine options %v", opts)
	}
}
