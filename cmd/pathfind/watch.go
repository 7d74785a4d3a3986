package main

import (
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pathfind/internal/mazes"
	"github.com/vovakirdan/tui-pathfind/internal/platform/tui"
	"github.com/vovakirdan/tui-pathfind/internal/registry"
)

var (
	flagDelay  int
	flagPaused bool
	flagMenu   bool
)

var watchCmd = &cobra.Command{
	Use:   "watch [maze]",
	Short: "Animate the search step by step",
	Long: `Open a terminal viewer that runs the search one expansion at a time.

Legend:
  S / G   - Start and goal
  X       - Blocked cell
  *       - Expanded cell
  +       - Cell waiting in the frontier
  @       - Cell expanded last
  P       - Final path

Controls:
  Space     - Pause/resume
  N         - Single step (pauses)
  + / -     - Faster / slower
  R         - Restart
  ?         - More keys
  B/Esc     - Maze picker (with --menu)
  Q/Ctrl+C  - Quit

Examples:
  pathfind watch
  pathfind watch corridors --heuristic zero --delay 100
  pathfind watch --paused
  pathfind watch --menu --mazes ./mazes`,
	Args: cobra.MaximumNArgs(1),
	Run:  runWatch,
}

func init() {
	addSearchFlags(watchCmd)
	watchCmd.Flags().IntVar(&flagDelay, "delay", 0, "Milliseconds between expansions (default from config)")
	watchCmd.Flags().BoolVar(&flagPaused, "paused", false, "Start paused")
	watchCmd.Flags().BoolVar(&flagMenu, "menu", false, "Allow going back to a maze picker with B")
}

func runWatch(cmd *cobra.Command, args []string) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		exitWithError(errors.New("watch needs an interactive terminal; use 'pathfind solve' instead"))
	}

	a, err := setup(cmd)
	if err != nil {
		exitWithError(err)
	}
	if cmd.Flags().Changed("delay") {
		a.cfg.Watch.StepDelayMS = flagDelay
		if err := a.cfg.Validate(); err != nil {
			exitWithError(err)
		}
	}

	sel, err := a.selection(args, mazes.DefaultID)
	if err != nil {
		exitWithError(err)
	}
	base := tui.WatchOptions{
		Delay:  a.cfg.Watch.StepDelay(),
		Paused: flagPaused,
	}

	var model tea.Model
	if flagMenu {
		model, err = tui.NewSessionModel(a.allMazes(), registry.List(), sel, base)
	} else {
		var opts tui.WatchOptions
		if opts, err = sel.Options(base); err == nil {
			model, err = tui.NewWatchModel(opts)
		}
	}
	if err != nil {
		exitWithError(err)
	}

	if err := tui.Run(model); err != nil {
		exitWithError(err)
	}
}

// selection resolves the maze named by args (or def) and the configured
// heuristic.
func (a *app) selection(args []string, def string) (tui.Selection, error) {
	t, err := a.resolveTarget(args, def)
	if err != nil {
		return tui.Selection{}, err
	}
	// Pin the resolved endpoints so --start and --goal apply.
	t.maze.Start, t.maze.Goal = &t.start, &t.goal

	_, info, err := a.heuristic()
	if err != nil {
		return tui.Selection{}, err
	}
	return tui.Selection{Maze: t.maze, Heuristic: info}, nil
}
