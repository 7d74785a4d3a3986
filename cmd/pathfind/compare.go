package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pathfind/internal/mazes"
	"github.com/vovakirdan/tui-pathfind/internal/registry"
	"github.com/vovakirdan/tui-pathfind/internal/search"
)

var compareCmd = &cobra.Command{
	Use:   "compare [maze]",
	Short: "Compare uniform-cost search with a heuristic",
	Long: `Run the same maze with the zero heuristic (uniform-cost search) and
with the chosen heuristic, then print path length, cost and how many cells
each run expanded.

An admissible heuristic finds a path of the same length while expanding
a subset of the cells uniform-cost search expands.

Examples:
  pathfind compare
  pathfind compare corridors --heuristic chebyshev`,
	Args: cobra.MaximumNArgs(1),
	Run:  runCompare,
}

func init() {
	addSearchFlags(compareCmd)
}

// comparison holds one run per heuristic; the first is the baseline.
type comparison struct {
	Names   []string
	Results []search.Result
}

// Subset reports whether the finalized set of run i is contained in the
// baseline's.
func (c comparison) Subset(i int) bool {
	base := c.Results[0].Finalized()
	for coord := range c.Results[i].Finalized() {
		if !base[coord] {
			return false
		}
	}
	return true
}

func runCompare(cmd *cobra.Command, args []string) {
	a, err := setup(cmd)
	if err != nil {
		exitWithError(err)
	}
	t, err := a.resolveTarget(args, mazes.DefaultID)
	if err != nil {
		exitWithError(err)
	}

	names := []string{"zero"}
	if _, info, _ := a.heuristic(); info.Name != "zero" {
		names = append(names, info.Name)
	}

	cmp, err := compare(cmd.Context(), t, names, a.cfg.Search.MaxExpansions)
	if err != nil {
		exitWithError(err)
	}
	writeComparison(cmd.OutOrStdout(), t, cmp, outputStyles(a.cfg.Output.Color, os.Stdout) != nil)
}

// compare runs the target once per named heuristic.
func compare(ctx context.Context, t target, names []string, maxExpansions int) (comparison, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	cmp := comparison{Names: names}
	for _, name := range names {
		h, _, err := registry.Lookup(name)
		if err != nil {
			return cmp, err
		}
		res, err := search.Search(ctx, t.maze.Grid, t.start, t.goal,
			search.WithHeuristic(h),
			search.WithMaxExpansions(maxExpansions),
		)
		if err != nil {
			return cmp, fmt.Errorf("%s: %w", name, err)
		}
		cmp.Results = append(cmp.Results, res)
	}
	return cmp, nil
}

// writeComparison prints the comparison as a table.
func writeComparison(w io.Writer, t target, cmp comparison, styled bool) {
	fmt.Fprintf(w, "Maze %s (%dx%d), start %v, goal %v\n\n",
		t.maze.ID, t.maze.Grid.Rows(), t.maze.Grid.Cols(), t.start, t.goal)

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Heuristic", "Found", "Moves", "Expanded", "Nodes", "Discarded", "Subset of zero")

	for i, res := range cmp.Results {
		moves := "-"
		if res.Found {
			moves = strconv.Itoa(res.Cost)
		}
		subset := "-"
		if i > 0 {
			subset = yesNo(cmp.Subset(i))
		}
		tbl.Row(
			cmp.Names[i],
			yesNo(res.Found),
			moves,
			strconv.Itoa(len(res.Expansions)),
			strconv.Itoa(res.Nodes),
			strconv.Itoa(res.Discarded),
			subset,
		)
	}

	if styled {
		header := lipgloss.NewStyle().Bold(true).Padding(0, 1)
		cell := lipgloss.NewStyle().Padding(0, 1)
		tbl.StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})
	} else {
		cell := lipgloss.NewStyle().Padding(0, 1)
		tbl.StyleFunc(func(_, _ int) lipgloss.Style { return cell })
	}

	fmt.Fprintln(w, tbl.String())
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
