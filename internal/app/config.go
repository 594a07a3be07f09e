package app

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"lifecanvas/internal/core"
	"lifecanvas/internal/render"
	"lifecanvas/internal/scheduler"

	"github.com/integrii/flaggy"
	"gopkg.in/yaml.v3"
)

// Colors holds palette overrides as hex strings.
type Colors struct {
	Grid  string `yaml:"grid"`
	Dead  string `yaml:"dead"`
	Alive string `yaml:"alive"`
}

// Config represents the command-line and file parameters for the application.
type Config struct {
	Engine   string        `yaml:"engine"`
	Width    int           `yaml:"width"`
	Height   int           `yaml:"height"`
	Seed     int64         `yaml:"seed"`
	CellSize int           `yaml:"cell_size"`
	Delay    time.Duration `yaml:"delay"`
	Refresh  time.Duration `yaml:"refresh"`
	Scale    int           `yaml:"scale"`
	HUD      bool          `yaml:"hud"`
	Colors   Colors        `yaml:"colors"`

	Frames      int    `yaml:"frames"`
	Snapshot    string `yaml:"snapshot"`
	SnapshotDir string `yaml:"snapshot_dir"`
	Text        bool   `yaml:"text"`
	Color       bool   `yaml:"color"`

	LogLevel string `yaml:"log_level"`

	ConfigFile string `yaml:"-"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Engine:   "life",
		Width:    64,
		Height:   64,
		CellSize: 8,
		Delay:    scheduler.DefaultDelay,
		Refresh:  time.Second / 60,
		Scale:    1,
		LogLevel: "info",
	}
}

// Bind attaches the configuration to the provided parser.
func (c *Config) Bind(p *flaggy.Parser) {
	p.String(&c.ConfigFile, "c", "config", "YAML file with default settings")
	p.String(&c.Engine, "e", "engine", "simulation engine: "+strings.Join(core.Names(), ", "))
	p.Int(&c.Width, "x", "width", "grid width in cells")
	p.Int(&c.Height, "y", "height", "grid height in cells")
	p.Int64(&c.Seed, "s", "seed", "seed for the initial board, 0 for the fixed pattern")
	p.Int(&c.CellSize, "", "cell-size", "cell size in pixels")
	p.Duration(&c.Delay, "d", "delay", "minimum delay between a refresh and the next tick, e.g. 10ms")
	p.Duration(&c.Refresh, "", "refresh", "headless refresh interval")
	p.Int(&c.Scale, "", "scale", "window scale multiplier")
	p.Bool(&c.HUD, "", "hud", "show generation and FPS in the window")
	p.String(&c.Colors.Grid, "", "grid-color", "gridline colour (hex)")
	p.String(&c.Colors.Dead, "", "dead-color", "dead cell colour (hex)")
	p.String(&c.Colors.Alive, "", "alive-color", "live cell colour (hex)")
	p.Int(&c.Frames, "n", "frames", "stop after this many ticks, 0 runs forever (headless)")
	p.String(&c.Snapshot, "o", "snapshot", "write the last frame to this PNG file (headless)")
	p.String(&c.SnapshotDir, "", "snapshot-dir", "write every frame as a PNG into this directory (headless)")
	p.Bool(&c.Text, "t", "text", "print every generation as text (headless)")
	p.Bool(&c.Color, "", "color", "colour live cells in text output")
	p.String(&c.LogLevel, "", "log-level", "debug, info, warn or error")
}

// LoadFile overlays the YAML file at path onto c.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("app: read config: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("app: parse config %s: %w", path, err)
	}
	return nil
}

// Validate checks values the renderer and scheduler cannot recover from.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("app: invalid grid %dx%d", c.Width, c.Height)
	}
	if c.CellSize <= 0 {
		return fmt.Errorf("app: invalid cell size %d", c.CellSize)
	}
	if c.Delay < 0 {
		return fmt.Errorf("app: negative delay %v", c.Delay)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("app: invalid scale %d", c.Scale)
	}
	if c.Frames < 0 {
		return fmt.Errorf("app: negative frame count %d", c.Frames)
	}
	if _, err := c.Palette(); err != nil {
		return err
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Palette builds the render palette from the colour overrides.
func (c *Config) Palette() (render.Palette, error) {
	return render.ParsePalette(c.Colors.Grid, c.Colors.Dead, c.Colors.Alive)
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return l, fmt.Errorf("app: log level: %w", err)
	}
	return l, nil
}

// EngineOptions returns the map handed to the engine factory.
func (c *Config) EngineOptions() map[string]string {
	return map[string]string{
		"w": fmt.Sprint(c.Width),
		"h": fmt.Sprint(c.Height),
	}
}

func (c *Config) parse(args []string) error {
	p := flaggy.NewParser("life")
	p.Description = "Conway's Game of Life on a pixel canvas"
	c.Bind(p)
	return p.ParseArgs(args)
}

// ParseConfig parses command-line arguments. When a config file is named,
// its values replace the defaults and flags given on the command line still
// take precedence over the file.
func ParseConfig(args []string) (*Config, error) {
	cfg := NewConfig()
	if err := cfg.parse(args); err != nil {
		return nil, err
	}
	if cfg.ConfigFile != "" {
		path := cfg.ConfigFile
		cfg = NewConfig()
		if err := cfg.LoadFile(path); err != nil {
			return nil, err
		}
		if err := cfg.parse(args); err != nil {
			return nil, err
		}
		cfg.ConfigFile = path
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
