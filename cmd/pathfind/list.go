package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pathfind/internal/mazes"
	"github.com/vovakirdan/tui-pathfind/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List mazes and heuristics",
	Long:  `Shows the built-in mazes, the mazes in the --mazes directory and all registered heuristics.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, _ []string) {
	a, err := setup(cmd)
	if err != nil {
		exitWithError(err)
	}

	writeList(cmd.OutOrStdout(), a.allMazes(), registry.List())
}

// allMazes returns the built-in mazes followed by those in the maze directory.
func (a *app) allMazes() []mazes.Maze {
	all := mazes.Builtins()
	if dir := a.cfg.Mazes.Dir; dir != "" {
		loaded, err := mazes.NewLoader(dir).LoadAll()
		if err != nil {
			a.logger.Warn("cannot load maze directory", "dir", dir, "error", err)
		}
		all = append(all, loaded...)
	}
	return all
}

// writeList prints mazes and heuristics as aligned columns.
func writeList(w io.Writer, all []mazes.Maze, heuristics []registry.Info) {
	fmt.Fprintln(w, "Mazes:")
	fmt.Fprintln(w)

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, m := range all {
		maxIDLen = max(maxIDLen, len(m.ID))
	}

	fmt.Fprintf(w, "  %-*s  %-7s  %s\n", maxIDLen, "ID", "Size", "Name")
	fmt.Fprintf(w, "  %-*s  %-7s  %s\n", maxIDLen, "--", "----", "----")
	for _, m := range all {
		size := fmt.Sprintf("%dx%d", m.Grid.Rows(), m.Grid.Cols())
		name := m.Name
		if m.FilePath != "" {
			name += " (" + m.FilePath + ")"
		}
		fmt.Fprintf(w, "  %-*s  %-7s  %s\n", maxIDLen, m.ID, size, name)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Heuristics:")
	fmt.Fprintln(w)

	maxNameLen := 4 // "Name" header
	for _, h := range heuristics {
		maxNameLen = max(maxNameLen, len(h.Name))
	}
	fmt.Fprintf(w, "  %-*s  %s\n", maxNameLen, "Name", "Title")
	fmt.Fprintf(w, "  %-*s  %s\n", maxNameLen, "----", "-----")
	for _, h := range heuristics {
		fmt.Fprintf(w, "  %-*s  %s\n", maxNameLen, h.Name, h.Title)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'pathfind solve <maze> --heuristic <name>' to solve a maze.")
}
