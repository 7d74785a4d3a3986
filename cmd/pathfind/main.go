// pathfind finds shortest paths on grid mazes with uniform-cost search
// and A*, and shows how the search explores the grid.
//
// Usage:
//
//	pathfind solve [maze]     - Solve a maze and print the expansion trace
//	pathfind compare [maze]   - Compare uniform-cost search with a heuristic
//	pathfind watch [maze]     - Animate the search in the terminal
//	pathfind serve            - Serve the animation over SSH
//	pathfind list             - List mazes and heuristics
//
// Global flags:
//
//	--config <path>     - Config file (default: search ~/.pathfind, ./configs)
//	--log-level <level> - debug, info, warn or error
//	--mazes <dir>       - Extra maze directory
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pathfind/internal/config"
	"github.com/vovakirdan/tui-pathfind/internal/grid"
	"github.com/vovakirdan/tui-pathfind/internal/mazes"
	"github.com/vovakirdan/tui-pathfind/internal/registry"
	"github.com/vovakirdan/tui-pathfind/internal/search"
)

var (
	// Global flags
	flagConfigPath string
	flagLogLevel   string
	flagMazesDir   string

	// Search flags shared by solve, compare and watch
	flagStart         string
	flagGoal          string
	flagHeuristic     string
	flagMaxExpansions int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pathfind",
	Short: "Shortest paths on grid mazes with uniform-cost search and A*",
	Long: `pathfind runs a best-first search over a grid maze. With the zero
heuristic it is uniform-cost search (Dijkstra); with manhattan or chebyshev
it is A*.

Available commands:
  solve    - Solve a maze and print the expansion trace
  compare  - Compare uniform-cost search with a heuristic
  watch    - Animate the search step by step
  serve    - Start SSH server for remote viewing
  list     - Show mazes and heuristics

Examples:
  pathfind solve
  pathfind solve reference --heuristic zero
  pathfind solve ./my-maze.yaml --start 0,0 --goal 4,4
  pathfind compare corridors
  pathfind watch --heuristic chebyshev
  pathfind serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagMazesDir, "mazes", "", "Directory with extra maze files")

	// Add subcommands
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(listCmd)
}

// addSearchFlags registers the flags that select what to search.
func addSearchFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagStart, "start", "", "Start cell as row,col (default: maze start)")
	cmd.Flags().StringVar(&flagGoal, "goal", "", "Goal cell as row,col (default: maze goal)")
	cmd.Flags().StringVar(&flagHeuristic, "heuristic", "", "Heuristic name (default from config)")
	cmd.Flags().IntVar(&flagMaxExpansions, "max-expansions", 0, "Stop after this many expansions (0 = from config)")
}

// app is the configuration and logger shared by every subcommand.
type app struct {
	cfg    config.Config
	logger *log.Logger
}

// setup loads the configuration, applies global flag overrides and builds
// the logger.
func setup(cmd *cobra.Command) (*app, error) {
	cfg, source, err := config.Load(flagConfigPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	if flags.Changed("mazes") {
		cfg.Mazes.Dir = flagMazesDir
	}
	if flags.Changed("heuristic") {
		cfg.Search.Heuristic = flagHeuristic
	}
	if flags.Changed("max-expansions") {
		cfg.Search.MaxExpansions = flagMaxExpansions
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if !registry.Exists(cfg.Search.Heuristic) {
		return nil, fmt.Errorf("unknown heuristic %q (run 'pathfind list')", cfg.Search.Heuristic)
	}

	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "pathfind",
		Level:           level,
	})
	logger.Debug("configuration loaded", "source", source)

	return &app{cfg: cfg, logger: logger}, nil
}

// target is a resolved maze with its endpoints.
type target struct {
	maze  mazes.Maze
	start grid.Coord
	goal  grid.Coord
}

// resolveTarget loads the maze named by args (or def) and applies the
// --start and --goal overrides.
func (a *app) resolveTarget(args []string, def string) (target, error) {
	ref := def
	if len(args) > 0 {
		ref = args[0]
	}

	m, err := mazes.Resolve(ref, a.cfg.Mazes.Dir)
	if err != nil {
		return target{}, err
	}
	a.logger.Debug("maze resolved", "ref", ref, "id", m.ID, "file", m.FilePath,
		"size", fmt.Sprintf("%dx%d", m.Grid.Rows(), m.Grid.Cols()))

	if flagStart != "" {
		c, err := parseCoord(flagStart)
		if err != nil {
			return target{}, fmt.Errorf("--start: %w", err)
		}
		m.Start = &c
	}
	if flagGoal != "" {
		c, err := parseCoord(flagGoal)
		if err != nil {
			return target{}, fmt.Errorf("--goal: %w", err)
		}
		m.Goal = &c
	}

	start, goal, err := m.Endpoints()
	if err != nil {
		return target{}, err
	}
	return target{maze: m, start: start, goal: goal}, nil
}

// heuristic looks up the configured heuristic.
func (a *app) heuristic() (search.Heuristic, registry.Info, error) {
	return registry.Lookup(a.cfg.Search.Heuristic)
}

// parseCoord parses "row,col".
func parseCoord(s string) (grid.Coord, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return grid.Coord{}, fmt.Errorf("expected row,col, got %q", s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return grid.Coord{}, fmt.Errorf("bad row in %q: %w", s, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return grid.Coord{}, fmt.Errorf("bad column in %q: %w", s, err)
	}
	return grid.C(row, col), nil
}

// exitWithError prints err the way every subcommand reports failures and exits.
func exitWithError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
