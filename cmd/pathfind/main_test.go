package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-pathfind/internal/grid"
	"github.com/vovakirdan/tui-pathfind/internal/mazes"
	"github.com/vovakirdan/tui-pathfind/internal/registry"
	"github.com/vovakirdan/tui-pathfind/internal/search"
)

func TestParseCoord(t *testing.T) {
	tests := []struct {
		in       string
		expected grid.Coord
		wantErr  bool
	}{
		{"6,0", grid.C(6, 0), false},
		{" 0 , 5 ", grid.C(0, 5), false},
		{"-1,2", grid.C(-1, 2), false},
		{"3", grid.Coord{}, true},
		{"1,2,3", grid.Coord{}, true},
		{"a,1", grid.Coord{}, true},
		{"1,b", grid.Coord{}, true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := parseCoord(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Errorf("parseCoord(%q): expected error", tc.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseCoord(%q) failed: %v", tc.in, err)
			}
			if got != tc.expected {
				t.Errorf("parseCoord(%q): expected %v, got %v", tc.in, tc.expected, got)
			}
		})
	}
}

func tinyMaze(t *testing.T) mazes.Maze {
	t.Helper()
	m, err := mazes.Parse([]byte("id: tiny\nrows: ['S .', '. G']\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return m
}

func TestSolveOutput(t *testing.T) {
	var buf bytes.Buffer
	res, err := solve(context.Background(), &buf, solveRequest{
		Maze:      tinyMaze(t),
		Start:     grid.C(0, 0),
		Goal:      grid.C(1, 1),
		Heuristic: search.Manhattan,
		Informed:  true,
		Trace:     true,
	})
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	if !res.Found {
		t.Fatal("expected a path")
	}

	expected := "Level: 0, Position: (0, 0), Cost: 0, Heuristic: 2\n" +
		"Level: 1, Position: (0, 1), Cost: 1, Heuristic: 1\n" +
		"Level: 2, Position: (1, 0), Cost: 1, Heuristic: 1\n" +
		"Level: 3, Position: (1, 1), Cost: 2, Heuristic: 0\n" +
		"Path: (0, 0) (0, 1) (1, 1) \n" +
		"Maze with path:\n" +
		"P P \n" +
		". P \n"
	if got := buf.String(); got != expected {
		t.Errorf("solve() output mismatch:\n got:\n%s\nwant:\n%s", got, expected)
	}
}

func TestSolveUninformedTrace(t *testing.T) {
	var buf bytes.Buffer
	_, err := solve(context.Background(), &buf, solveRequest{
		Maze:  tinyMaze(t),
		Start: grid.C(0, 0),
		Goal:  grid.C(1, 1),
		Trace: true,
	})
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	first := strings.SplitN(buf.String(), "\n", 2)[0]
	if first != "Level: 0, Position: (0, 0), Cost: 0" {
		t.Errorf("first trace line: got %q", first)
	}
}

func TestSolveWithoutTrace(t *testing.T) {
	var buf bytes.Buffer
	_, err := solve(context.Background(), &buf, solveRequest{
		Maze:      tinyMaze(t),
		Start:     grid.C(0, 0),
		Goal:      grid.C(1, 1),
		Heuristic: search.Manhattan,
	})
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	if strings.Contains(buf.String(), "Level:") {
		t.Error("trace lines printed with Trace=false")
	}
	if !strings.HasPrefix(buf.String(), "Path: ") {
		t.Errorf("expected output to start with the path, got %q", buf.String())
	}
}

func TestSolveReference(t *testing.T) {
	m, err := mazes.Builtin("reference")
	if err != nil {
		t.Fatalf("Builtin failed: %v", err)
	}
	start, goal, err := m.Endpoints()
	if err != nil {
		t.Fatalf("Endpoints failed: %v", err)
	}

	var buf bytes.Buffer
	res, err := solve(context.Background(), &buf, solveRequest{
		Maze:      m,
		Start:     start,
		Goal:      goal,
		Heuristic: search.Manhattan,
		Informed:  true,
	})
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	if res.Cost != 13 {
		t.Errorf("expected 13 moves, got %d", res.Cost)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "Path: (6, 0) ") || !strings.Contains(out, "(0, 5) \n") {
		t.Errorf("unexpected path line:\n%s", out)
	}
	// 14 path cells are marked in the 7x6 grid.
	if got := strings.Count(out, "P "); got != 14 {
		t.Errorf("expected 14 marked cells, got %d", got)
	}
}

func TestSolveNoPath(t *testing.T) {
	m, err := mazes.Builtin("enclosed")
	if err != nil {
		t.Fatalf("Builtin failed: %v", err)
	}
	start, goal, err := m.Endpoints()
	if err != nil {
		t.Fatalf("Endpoints failed: %v", err)
	}

	var buf bytes.Buffer
	res, err := solve(context.Background(), &buf, solveRequest{Maze: m, Start: start, Goal: goal})
	if err != nil {
		t.Fatalf("no path must not be an error: %v", err)
	}
	if res.Found {
		t.Fatal("expected no path")
	}
	if buf.String() != "No path found.\n" {
		t.Errorf("expected only the no-path line, got %q", buf.String())
	}
}

func TestSolveErrors(t *testing.T) {
	tests := []struct {
		name string
		req  solveRequest
		is   error
	}{
		{
			name: "goal outside grid",
			req:  solveRequest{Maze: tinyMaze(t), Start: grid.C(0, 0), Goal: grid.C(5, 5)},
			is:   grid.ErrInvalidInput,
		},
		{
			name: "budget",
			req:  solveRequest{Maze: tinyMaze(t), Start: grid.C(0, 0), Goal: grid.C(1, 1), MaxExpansions: 1},
			is:   search.ErrBudgetExceeded,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			_, err := solve(context.Background(), &buf, tc.req)
			if !errors.Is(err, tc.is) {
				t.Errorf("solve(): expected %v, got %v", tc.is, err)
			}
		})
	}
}

func TestCompare(t *testing.T) {
	m, err := mazes.Builtin("reference")
	if err != nil {
		t.Fatalf("Builtin failed: %v", err)
	}
	start, goal, err := m.Endpoints()
	if err != nil {
		t.Fatalf("Endpoints failed: %v", err)
	}
	tg := target{maze: m, start: start, goal: goal}

	cmp, err := compare(context.Background(), tg, []string{"zero", "manhattan"}, 0)
	if err != nil {
		t.Fatalf("compare failed: %v", err)
	}
	if len(cmp.Results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(cmp.Results))
	}
	if cmp.Results[0].Cost != cmp.Results[1].Cost {
		t.Errorf("path lengths differ: zero %d, manhattan %d", cmp.Results[0].Cost, cmp.Results[1].Cost)
	}
	if !cmp.Subset(1) {
		t.Error("manhattan should expand a subset of the zero run")
	}

	var buf bytes.Buffer
	writeComparison(&buf, tg, cmp, false)
	out := buf.String()
	for _, want := range []string{"reference", "zero", "manhattan", "Subset of zero", "yes"} {
		if !strings.Contains(out, want) {
			t.Errorf("comparison table missing %q:\n%s", want, out)
		}
	}

	if _, err := compare(context.Background(), tg, []string{"nope"}, 0); err == nil {
		t.Error("expected error for unknown heuristic")
	}
}

func TestWriteList(t *testing.T) {
	var buf bytes.Buffer
	writeList(&buf, mazes.Builtins(), registry.List())
	out := buf.String()

	for _, want := range []string{"reference", "7x6", "enclosed", "manhattan", "chebyshev", "zero"} {
		if !strings.Contains(out, want) {
			t.Errorf("list output missing %q:\n%s", want, out)
		}
	}
}
