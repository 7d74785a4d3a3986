// Package config provides YAML-based configuration loading for the
// pathfind CLI, its terminal viewer and its SSH server.
package config

import (
	"fmt"
	"time"
)

// Config contains all pathfind settings.
type Config struct {
	Search SearchConfig `yaml:"search"`
	Output OutputConfig `yaml:"output"`
	Watch  WatchConfig  `yaml:"watch"`
	Serve  ServeConfig  `yaml:"serve"`
	Log    LogConfig    `yaml:"log"`
	Mazes  MazesConfig  `yaml:"mazes"`
}

// SearchConfig defines how runs are performed.
type SearchConfig struct {
	Heuristic     string `yaml:"heuristic"`      // registered heuristic name
	MaxExpansions int    `yaml:"max_expansions"` // 0 = unbounded
}

// OutputConfig defines what `solve` prints.
type OutputConfig struct {
	Trace bool   `yaml:"trace"` // one line per expansion
	Color string `yaml:"color"` // "auto", "always" or "never"
}

// WatchConfig defines the step-by-step viewer.
type WatchConfig struct {
	StepDelayMS int `yaml:"step_delay_ms"` // delay between expansions
}

// StepDelay returns the viewer delay as a duration.
func (w WatchConfig) StepDelay() time.Duration {
	return time.Duration(w.StepDelayMS) * time.Millisecond
}

// ServeConfig defines the SSH server.
type ServeConfig struct {
	Address            string `yaml:"address"`
	HostKeyPath        string `yaml:"host_key_path"` // empty: ~/.pathfind/host_key
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
	Maze               string `yaml:"maze"` // maze shown to SSH sessions
}

// IdleTimeout returns the idle timeout as a duration.
func (s ServeConfig) IdleTimeout() time.Duration {
	return time.Duration(s.IdleTimeoutMinutes) * time.Minute
}

// LogConfig defines logging.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// MazesConfig defines where extra maze files live.
type MazesConfig struct {
	Dir string `yaml:"dir"`
}

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Validate checks value ranges and enumerations. Heuristic names are
// checked by the caller against the registry.
func (c Config) Validate() error {
	switch c.Output.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("config: output.color must be auto, always or never, got %q", c.Output.Color)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: log.level must be debug, info, warn or error, got %q", c.Log.Level)
	}
	if c.Search.Heuristic == "" {
		return fmt.Errorf("config: search.heuristic must be set")
	}
	if c.Search.MaxExpansions < 0 {
		return fmt.Errorf("config: search.max_expansions must be >= 0, got %d", c.Search.MaxExpansions)
	}
	if c.Watch.StepDelayMS <= 0 {
		return fmt.Errorf("config: watch.step_delay_ms must be > 0, got %d", c.Watch.StepDelayMS)
	}
	if c.Serve.IdleTimeoutMinutes <= 0 {
		return fmt.Errorf("config: serve.idle_timeout_minutes must be > 0, got %d", c.Serve.IdleTimeoutMinutes)
	}
	return nil
}
