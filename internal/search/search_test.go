package search

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-pathfind/internal/grid"
)

func referenceGrid(t *testing.T) *grid.Grid {
	t.Helper()
	g, err := grid.NewGrid([][]int{
		{0, 0, 0, 0, 0, 2},
		{0, 0, 1, 1, 1, 1},
		{0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0},
		{1, 1, 0, 0, 1, 1},
		{3, 0, 0, 0, 0, 0},
	})
	require.NoError(t, err)
	return g
}

// bfsDistances returns the shortest move count from start to every
// reachable free cell.
func bfsDistances(g *grid.Grid, start grid.Coord) map[grid.Coord]int {
	dist := map[grid.Coord]int{start: 0}
	queue := []grid.Coord{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range g.Neighbors(cur) {
			if _, seen := dist[n]; seen || !g.IsFree(n) {
				continue
			}
			dist[n] = dist[cur] + 1
			queue = append(queue, n)
		}
	}
	return dist
}

func assertValidPath(t *testing.T, g *grid.Grid, path []grid.Coord, start, goal grid.Coord) {
	t.Helper()
	require.NotEmpty(t, path)
	assert.Equal(t, start, path[0])
	assert.Equal(t, goal, path[len(path)-1])
	for i := 1; i < len(path); i++ {
		assert.Equal(t, 1, path[i-1].Manhattan(path[i]), "step %d: %v -> %v", i, path[i-1], path[i])
		assert.True(t, g.IsFree(path[i]), "path crosses blocked cell %v", path[i])
	}
}

func TestSearchReferenceMaze(t *testing.T) {
	g := referenceGrid(t)
	start, goal := grid.C(6, 0), grid.C(0, 5)
	shortest := bfsDistances(g, start)[goal]
	require.Equal(t, 13, shortest)

	zero, err := Search(context.Background(), g, start, goal)
	require.NoError(t, err)
	informed, err := Search(context.Background(), g, start, goal, WithHeuristic(Manhattan))
	require.NoError(t, err)

	for name, r := range map[string]Result{"zero": zero, "manhattan": informed} {
		t.Run(name, func(t *testing.T) {
			require.True(t, r.Found)
			assert.Equal(t, Succeeded, r.State)
			assert.Equal(t, shortest, r.Cost)
			assert.Len(t, r.Path, shortest+1)
			assertValidPath(t, g, r.Path, start, goal)
		})
	}

	// The informed run never expands a cell the uninformed run skipped.
	zeroSet := zero.Finalized()
	for c := range informed.Finalized() {
		assert.True(t, zeroSet[c], "manhattan finalized %v but zero did not", c)
	}
	assert.LessOrEqual(t, len(informed.Expansions), len(zero.Expansions))
}

func TestSearchTraceOnSmallGrid(t *testing.T) {
	g := grid.MustParse(`
		S .
		. G
	`)
	start, goal := grid.C(0, 0), grid.C(1, 1)

	for _, h := range []Heuristic{Zero, Manhattan} {
		r, err := Search(context.Background(), g, start, goal, WithHeuristic(h))
		require.NoError(t, err)

		var got []grid.Coord
		for i, ev := range r.Expansions {
			assert.Equal(t, i, ev.Level)
			got = append(got, ev.Coord)
		}
		// (0,1) and (1,0) tie; the east neighbour was pushed first.
		// (1,1) is then reached via (0,1), whose entry predates the one via (1,0).
		assert.Equal(t, []grid.Coord{grid.C(0, 0), grid.C(0, 1), grid.C(1, 0), grid.C(1, 1)}, got)
		assert.Equal(t, []grid.Coord{grid.C(0, 0), grid.C(0, 1), grid.C(1, 1)}, r.Path)
		assert.Zero(t, r.Discarded)
	}
}

func TestEventLine(t *testing.T) {
	ev := Event{Level: 3, Coord: grid.C(4, 2), Cost: 5, Heuristic: 6}
	assert.Equal(t, "Level: 3, Position: (4, 2), Cost: 5", ev.Line(false))
	assert.Equal(t, "Level: 3, Position: (4, 2), Cost: 5, Heuristic: 6", ev.Line(true))
}

func TestSearchStartIsGoal(t *testing.T) {
	g := referenceGrid(t)
	c := grid.C(3, 3)

	r, err := Search(context.Background(), g, c, c, WithHeuristic(Manhattan))
	require.NoError(t, err)
	assert.True(t, r.Found)
	assert.Equal(t, []grid.Coord{c}, r.Path)
	assert.Zero(t, r.Cost)
	require.Len(t, r.Expansions, 1)
	assert.True(t, r.Expansions[0].Goal)
	assert.Equal(t, 1, r.Nodes)
}

func TestSearchUnreachableGoal(t *testing.T) {
	g := grid.MustParse(`
		. . . X . .
		. S . X . G
		. . . X . .
	`)
	start, goal := grid.C(1, 1), grid.C(1, 5)

	for name, h := range map[string]Heuristic{"zero": Zero, "manhattan": Manhattan} {
		t.Run(name, func(t *testing.T) {
			r, err := Search(context.Background(), g, start, goal, WithHeuristic(h))
			require.NoError(t, err)
			assert.False(t, r.Found)
			assert.Equal(t, Exhausted, r.State)
			assert.Empty(t, r.Path)
			assert.Equal(t, NoNode, r.Terminal)

			region := bfsDistances(g, start)
			finalized := r.Finalized()
			assert.Len(t, finalized, len(region))
			for c := range region {
				assert.True(t, finalized[c], "%v reachable but not finalized", c)
			}
		})
	}
}

func TestSearchBlockedGoal(t *testing.T) {
	g := grid.MustParse(`
		S . X
	`)
	r, err := Search(context.Background(), g, grid.C(0, 0), grid.C(0, 2))
	require.NoError(t, err)
	assert.False(t, r.Found)
	assert.Len(t, r.Expansions, 2)
}

func TestSearchRejectsOutOfBounds(t *testing.T) {
	g := referenceGrid(t)

	tests := []struct {
		name        string
		start, goal grid.Coord
	}{
		{"start row", grid.C(7, 0), grid.C(0, 5)},
		{"start col", grid.C(0, -1), grid.C(0, 5)},
		{"goal", grid.C(6, 0), grid.C(0, 6)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Search(context.Background(), g, tc.start, tc.goal)
			assert.ErrorIs(t, err, grid.ErrInvalidInput)
		})
	}
}

func TestSearchIsDeterministic(t *testing.T) {
	g := referenceGrid(t)
	start, goal := grid.C(6, 0), grid.C(0, 5)

	for _, h := range []Heuristic{Zero, Manhattan, Chebyshev} {
		first, err := Search(context.Background(), g, start, goal, WithHeuristic(h))
		require.NoError(t, err)
		second, err := Search(context.Background(), g, start, goal, WithHeuristic(h))
		require.NoError(t, err)

		assert.Equal(t, first.Expansions, second.Expansions)
		assert.Equal(t, first.Path, second.Path)
	}
}

func TestSearchMatchesBFSOnRandomGrids(t *testing.T) {
	heuristics := map[string]Heuristic{"zero": Zero, "manhattan": Manhattan, "chebyshev": Chebyshev}

	for seed := int64(1); seed <= 5; seed++ {
		g := randomGrid(seed, 7, 8, 0.3)
		free := freeCells(g)

		for _, start := range free {
			dist := bfsDistances(g, start)
			for _, goal := range free {
				want, reachable := dist[goal]
				for name, h := range heuristics {
					r, err := Search(context.Background(), g, start, goal, WithHeuristic(h))
					require.NoError(t, err)
					if !reachable {
						assert.False(t, r.Found, "seed %d %s %v->%v", seed, name, start, goal)
						continue
					}
					require.True(t, r.Found, "seed %d %s %v->%v", seed, name, start, goal)
					assert.Equal(t, want, r.Cost, "seed %d %s %v->%v", seed, name, start, goal)
					assert.Len(t, r.Path, want+1)
				}
			}
		}
	}
}

func TestSearchBudget(t *testing.T) {
	g := referenceGrid(t)

	r, err := Search(context.Background(), g, grid.C(6, 0), grid.C(0, 5), WithMaxExpansions(3))
	assert.ErrorIs(t, err, ErrBudgetExceeded)
	assert.Len(t, r.Expansions, 3)
	assert.Equal(t, Running, r.State)

	// A budget equal to the needed expansions is enough.
	full, err := Search(context.Background(), g, grid.C(6, 0), grid.C(0, 5))
	require.NoError(t, err)
	_, err = Search(context.Background(), g, grid.C(6, 0), grid.C(0, 5), WithMaxExpansions(len(full.Expansions)))
	assert.NoError(t, err)
}

func TestSearchCancelled(t *testing.T) {
	g := referenceGrid(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Search(ctx, g, grid.C(6, 0), grid.C(0, 5))
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestSearchObserverSeesEveryExpansion(t *testing.T) {
	g := referenceGrid(t)
	var seen []Event

	r, err := Search(context.Background(), g, grid.C(6, 0), grid.C(0, 5),
		WithHeuristic(Manhattan),
		WithObserver(func(ev Event) { seen = append(seen, ev) }),
	)
	require.NoError(t, err)
	assert.Equal(t, r.Expansions, seen)
	assert.True(t, seen[len(seen)-1].Goal)
}

func randomGrid(seed int64, rows, cols int, density float64) *grid.Grid {
	rng := rand.New(rand.NewSource(seed))
	values := make([][]int, rows)
	for r := range values {
		values[r] = make([]int, cols)
		for c := range values[r] {
			if rng.Float64() < density {
				values[r][c] = int(grid.CellBlocked)
			}
		}
	}
	g, err := grid.NewGrid(values)
	if err != nil {
		panic(err)
	}
	return g
}

func freeCells(g *grid.Grid) []grid.Coord {
	var out []grid.Coord
	for i := 0; i < g.Len(); i++ {
		if c := g.CoordAt(i); g.IsFree(c) {
			out = append(out, c)
		}
	}
	return out
}
