package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"

	"github.com/BurntSushi/toml"
)

// Default values for configuration
const (
	DefaultAIAccuracy = 0.5
	DefaultSide       = "right"
	DefaultFPS        = 60
	MinFPS            = 10
	MaxFPS            = 240
)

// Config holds the application configuration
type Config struct {
	AIAccuracy float64
	Side       string // Paddle the human controls: "left" or "right"
	FPS        int
	Mute       bool
	LogFile    string
	Debug      bool
}

// fileConfig mirrors Config for the optional TOML file
type fileConfig struct {
	AI    *float64 `toml:"ai"`
	Side  *string  `toml:"side"`
	FPS   *int     `toml:"fps"`
	Mute  *bool    `toml:"mute"`
	Log   *string  `toml:"log"`
	Debug *bool    `toml:"debug"`
}

// ParseArgs parses command line arguments and returns a Config. Values from
// a --config file are applied first; flags given on the command line win.
func ParseArgs(args []string) (*Config, error) {
	fs := flag.NewFlagSet("termpong", flag.ContinueOnError)
	fs.SetOutput(io.Discard) // Caller prints usage

	ai := fs.Float64("ai", DefaultAIAccuracy, "AI paddle speed (0-1)")
	side := fs.String("side", DefaultSide, "paddle you control (left|right)")
	fps := fs.Int("fps", DefaultFPS, fmt.Sprintf("frames per second (%d-%d)", MinFPS, MaxFPS))
	mute := fs.Bool("mute", false, "disable sound")
	logFile := fs.String("log", "", "write logs to this file")
	debug := fs.Bool("debug", false, "log debug messages")
	path := fs.String("config", "", "TOML config file")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	cfg := &Config{
		AIAccuracy: DefaultAIAccuracy,
		Side:       DefaultSide,
		FPS:        DefaultFPS,
	}

	if *path != "" {
		if err := cfg.loadFile(*path); err != nil {
			return nil, err
		}
	}

	// Only flags that were actually given override the file
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "ai":
			cfg.AIAccuracy = *ai
		case "side":
			cfg.Side = *side
		case "fps":
			cfg.FPS = *fps
		case "mute":
			cfg.Mute = *mute
		case "log":
			cfg.LogFile = *logFile
		case "debug":
			cfg.Debug = *debug
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	var fc fileConfig
	md, err := toml.DecodeFile(path, &fc)
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown key %q in config %s", undecoded[0].String(), path)
	}

	if fc.AI != nil {
		c.AIAccuracy = *fc.AI
	}
	if fc.Side != nil {
		c.Side = *fc.Side
	}
	if fc.FPS != nil {
		c.FPS = *fc.FPS
	}
	if fc.Mute != nil {
		c.Mute = *fc.Mute
	}
	if fc.Log != nil {
		c.LogFile = *fc.Log
	}
	if fc.Debug != nil {
		c.Debug = *fc.Debug
	}
	return nil
}

// Validate checks value ranges
func (c *Config) Validate() error {
	if math.IsNaN(c.AIAccuracy) || c.AIAccuracy < 0 || c.AIAccuracy > 1 {
		return fmt.Errorf("ai must be between 0 and 1, got %g", c.AIAccuracy)
	}

	if c.Side != "left" && c.Side != "right" {
		return errors.New("side must be either left or right")
	}

	if c.FPS < MinFPS || c.FPS > MaxFPS {
		return fmt.Errorf("fps must be between %d and %d, got %d", MinFPS, MaxFPS, c.FPS)
	}

	return nil
}
