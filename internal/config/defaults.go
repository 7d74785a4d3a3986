package config

import (
	_ "embed"
)

//go:embed defaults/pathfind.yaml
var defaultPathfindYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Search: SearchConfig{
			Heuristic:     "manhattan",
			MaxExpansions: 0,
		},
		Output: OutputConfig{
			Trace: true,
			Color: ColorAuto,
		},
		Watch: WatchConfig{
			StepDelayMS: 500,
		},
		Serve: ServeConfig{
			Address:            ":23235",
			IdleTimeoutMinutes: 30,
			Maze:               "reference",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
