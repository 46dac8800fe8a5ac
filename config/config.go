package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/game"
)

var (
	// ErrInvalidGrid is shared with game.New so callers match one sentinel
	ErrInvalidGrid  = game.ErrInvalidGrid
	ErrInvalidFPS   = errors.New("frames per second must be positive")
	ErrInvalidSpeed = errors.New("initial speed must be positive")
)

// GridConfig sizes the toroidal playfield in cells
type GridConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// Config is read once at startup, nothing here is tunable at runtime
type Config struct {
	Grid            GridConfig `toml:"grid"`
	FramesPerSecond int        `toml:"fps"`
	InitialSpeed    float64    `toml:"initial_speed"`

	// Seed 0 seeds from the clock
	Seed uint64 `toml:"seed"`

	PlayerName string `toml:"player_name"`
	Scoreboard string `toml:"scoreboard"`
	Mute       bool   `toml:"mute"`
	Debug      bool   `toml:"debug"`
}

// Default returns the stock configuration
func Default() Config {
	return Config{
		Grid: GridConfig{
			Width:  constants.DefaultGridWidth,
			Height: constants.DefaultGridHeight,
		},
		FramesPerSecond: constants.DefaultFramesPerSecond,
		InitialSpeed:    constants.DefaultInitialSpeed,
		Scoreboard:      constants.DefaultScoreboardPath,
	}
}

// Load decodes a TOML file over the defaults, keys missing from the file keep their default
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("load config %s: unknown key %q", path, undecoded[0].String())
	}
	return cfg, nil
}

// Decode parses TOML text over the defaults
func Decode(data string) (Config, error) {
	cfg := Default()
	meta, err := toml.Decode(data, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("decode config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("decode config: unknown key %q", undecoded[0].String())
	}
	return cfg, nil
}

// Validate rejects values that break the simulation or the frame delay computation
func (c Config) Validate() error {
	if c.Grid.Width <= 0 || c.Grid.Height <= 0 {
		return fmt.Errorf("grid %dx%d: %w", c.Grid.Width, c.Grid.Height, ErrInvalidGrid)
	}
	if c.FramesPerSecond <= 0 {
		return fmt.Errorf("fps %d: %w", c.FramesPerSecond, ErrInvalidFPS)
	}
	if c.InitialSpeed <= 0 {
		return fmt.Errorf("initial speed %v: %w", c.InitialSpeed, ErrInvalidSpeed)
	}
	return nil
}

// FrameDelay is 1000 / (fps * initialSpeed) ms, truncated to whole milliseconds
func (c Config) FrameDelay() time.Duration {
	ms := int64(1000 / (float64(c.FramesPerSecond) * c.InitialSpeed))
	return time.Duration(ms) * time.Millisecond
}

// RegisterFlags binds command-line overrides to c, call before flag parsing and after Load
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.Grid.Width, "width", c.Grid.Width, "grid width in cells")
	fs.IntVar(&c.Grid.Height, "height", c.Grid.Height, "grid height in cells")
	fs.IntVar(&c.FramesPerSecond, "fps", c.FramesPerSecond, "target frames per second")
	fs.Float64Var(&c.InitialSpeed, "speed", c.InitialSpeed, "initial speed multiplier, scales the frame delay")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "random seed, 0 seeds from the clock")
	fs.StringVar(&c.PlayerName, "name", c.PlayerName, "player name, prompted for when empty")
	fs.StringVar(&c.Scoreboard, "scores", c.Scoreboard, "scoreboard path, .db or .sqlite selects SQLite")
	fs.BoolVar(&c.Mute, "mute", c.Mute, "disable sound")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "write logs to "+constants.LogDir+"/"+constants.LogFileName)
}
