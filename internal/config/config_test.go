package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() failed: %v", err)
	}
}

func TestEmbeddedMatchesDefault(t *testing.T) {
	cfg := Default()
	if err := yaml.Unmarshal(defaultPathfindYAML, &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded YAML differs from Default():\n got %+v\nwant %+v", cfg, Default())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "search:\n  heuristic: zero\noutput:\n  color: never\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if source != path {
		t.Errorf("Load(): expected source %s, got %s", path, source)
	}
	if cfg.Search.Heuristic != "zero" {
		t.Errorf("Search.Heuristic: expected zero, got %s", cfg.Search.Heuristic)
	}
	if cfg.Output.Color != ColorNever {
		t.Errorf("Output.Color: expected never, got %s", cfg.Output.Color)
	}
	// Unset keys keep their defaults.
	if cfg.Watch.StepDelayMS != 500 {
		t.Errorf("Watch.StepDelayMS: expected 500, got %d", cfg.Watch.StepDelayMS)
	}
	if !cfg.Output.Trace {
		t.Error("Output.Trace should keep its default")
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()
	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("output:\n  color: rainbow\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	broken := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(broken, []byte("search: ["), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(dir, "nope.yaml")},
		{"invalid value", invalid},
		{"broken yaml", broken},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, _, err := Load(tc.path); err == nil {
				t.Errorf("Load(%s): expected error", tc.path)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		errMsg string
	}{
		{"bad color", func(c *Config) { c.Output.Color = "blue" }, "output.color"},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
		{"no heuristic", func(c *Config) { c.Search.Heuristic = "" }, "search.heuristic"},
		{"negative budget", func(c *Config) { c.Search.MaxExpansions = -1 }, "search.max_expansions"},
		{"zero delay", func(c *Config) { c.Watch.StepDelayMS = 0 }, "watch.step_delay_ms"},
		{"zero idle", func(c *Config) { c.Serve.IdleTimeoutMinutes = 0 }, "serve.idle_timeout_minutes"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.modify(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.errMsg) {
				t.Errorf("Validate(): expected error mentioning %q, got %v", tc.errMsg, err)
			}
		})
	}
}

func TestDurations(t *testing.T) {
	cfg := Default()
	if got := cfg.Watch.StepDelay(); got != 500*time.Millisecond {
		t.Errorf("StepDelay(): expected 500ms, got %v", got)
	}
	if got := cfg.Serve.IdleTimeout(); got != 30*time.Minute {
		t.Errorf("IdleTimeout(): expected 30m, got %v", got)
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	tests := []struct {
		in, expected string
	}{
		{"", ""},
		{"/etc/key", "/etc/key"},
		{"~/.pathfind/host_key", filepath.Join(home, ".pathfind/host_key")},
	}

	for _, tc := range tests {
		got, err := ExpandHome(tc.in)
		if err != nil {
			t.Fatalf("ExpandHome(%q) failed: %v", tc.in, err)
		}
		if got != tc.expected {
			t.Errorf("ExpandHome(%q): expected %s, got %s", tc.in, tc.expected, got)
		}
	}
}
