package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pathfind/internal/config"
	"github.com/vovakirdan/tui-pathfind/internal/grid"
	"github.com/vovakirdan/tui-pathfind/internal/mazes"
	"github.com/vovakirdan/tui-pathfind/internal/platform/tui"
	"github.com/vovakirdan/tui-pathfind/internal/search"
)

var (
	flagTrace bool
	flagColor string
)

var solveCmd = &cobra.Command{
	Use:   "solve [maze]",
	Short: "Solve a maze and print the expansion trace",
	Long: `Search a path from start to goal and print one line per expansion,
the path and the maze with the path marked.

The maze is a built-in id, an id in the --mazes directory or a YAML file
path. Without an argument the reference maze is used.

Trace lines:
  Level: <n>, Position: (<r>, <c>), Cost: <c>[, Heuristic: <h>]
The heuristic column is omitted for the zero heuristic.

Examples:
  pathfind solve
  pathfind solve reference --heuristic zero
  pathfind solve open --start 0,0 --goal 9,9 --trace=false
  pathfind solve ./maze.yaml --color never`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSolve,
}

func init() {
	addSearchFlags(solveCmd)
	solveCmd.Flags().BoolVar(&flagTrace, "trace", true, "Print one line per expansion")
	solveCmd.Flags().StringVar(&flagColor, "color", "", "Color output: auto, always, never (default from config)")
}

// solveRequest is everything a single run needs.
type solveRequest struct {
	Maze          mazes.Maze
	Start, Goal   grid.Coord
	Heuristic     search.Heuristic
	Informed      bool // print the heuristic column
	Trace         bool
	MaxExpansions int
	Styles        *tui.Styles // nil: plain grid
}

func runSolve(cmd *cobra.Command, args []string) {
	a, err := setup(cmd)
	if err != nil {
		exitWithError(err)
	}
	if cmd.Flags().Changed("trace") {
		a.cfg.Output.Trace = flagTrace
	}
	if cmd.Flags().Changed("color") {
		a.cfg.Output.Color = flagColor
		if err := a.cfg.Validate(); err != nil {
			exitWithError(err)
		}
	}

	t, err := a.resolveTarget(args, mazes.DefaultID)
	if err != nil {
		exitWithError(err)
	}
	h, info, err := a.heuristic()
	if err != nil {
		exitWithError(err)
	}

	req := solveRequest{
		Maze:          t.maze,
		Start:         t.start,
		Goal:          t.goal,
		Heuristic:     h,
		Informed:      info.Informed,
		Trace:         a.cfg.Output.Trace,
		MaxExpansions: a.cfg.Search.MaxExpansions,
		Styles:        outputStyles(a.cfg.Output.Color, os.Stdout),
	}

	res, err := solve(cmd.Context(), cmd.OutOrStdout(), req)
	if err != nil {
		exitWithError(err)
	}
	a.logger.Debug("search finished",
		"maze", t.maze.ID,
		"heuristic", info.Name,
		"state", res.State,
		"expansions", len(res.Expansions),
		"nodes", res.Nodes,
		"discarded", res.Discarded,
	)
}

// solve runs one search and writes the trace, the path and the marked
// maze to w. Not finding a path is reported on w, not as an error.
func solve(ctx context.Context, w io.Writer, req solveRequest) (search.Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	opts := []search.Option{
		search.WithHeuristic(req.Heuristic),
		search.WithMaxExpansions(req.MaxExpansions),
	}
	if req.Trace {
		opts = append(opts, search.WithObserver(func(ev search.Event) {
			fmt.Fprintln(w, ev.Line(req.Informed))
		}))
	}

	res, err := search.Search(ctx, req.Maze.Grid, req.Start, req.Goal, opts...)
	if err != nil {
		return res, err
	}

	if !res.Found {
		fmt.Fprintln(w, "No path found.")
		return res, nil
	}

	fmt.Fprintf(w, "Path: %s\n", grid.FormatPath(res.Path))
	fmt.Fprintln(w, "Maze with path:")
	marked := req.Maze.Display(req.Start, req.Goal).MarkPath(res.Path)
	fmt.Fprint(w, tui.RenderGrid(marked, req.Styles))
	return res, nil
}

// outputStyles returns grid styles for the color mode, or nil for plain output.
func outputStyles(mode string, out *os.File) *tui.Styles {
	switch mode {
	case config.ColorNever:
		return nil
	case config.ColorAlways:
		r := lipgloss.NewRenderer(out)
		r.SetColorProfile(termenv.ANSI256)
		return tui.NewStyles(r)
	}
	if !term.IsTerminal(int(out.Fd())) {
		return nil
	}
	return tui.NewStyles(lipgloss.NewRenderer(out))
}
