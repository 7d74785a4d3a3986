package mazes

import (
	"embed"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// DefaultID is the maze used when none is named.
const DefaultID = "reference"

// Builtins returns the mazes compiled into the binary, sorted by ID.
func Builtins() []Maze {
	entries, err := builtinFS.ReadDir("builtin")
	if err != nil {
		return nil
	}

	mazes := make([]Maze, 0, len(entries))
	for _, e := range entries {
		data, err := builtinFS.ReadFile(path.Join("builtin", e.Name()))
		if err != nil {
			continue
		}
		m, err := Parse(data)
		if err != nil {
			continue
		}
		mazes = append(mazes, m)
	}
	sort.Slice(mazes, func(i, j int) bool {
		return mazes[i].ID < mazes[j].ID
	})
	return mazes
}

// Builtin returns the built-in maze with the given ID.
func Builtin(id string) (Maze, error) {
	for _, m := range Builtins() {
		if m.ID == id {
			return m, nil
		}
	}
	return Maze{}, fmt.Errorf("mazes: no built-in maze %q", id)
}

// Resolve finds a maze by reference. Search order:
// ref as a file path -> ID under dir (if dir is set) -> built-in ID.
// An empty ref selects DefaultID.
func Resolve(ref, dir string) (Maze, error) {
	if ref == "" {
		ref = DefaultID
	}

	if info, err := os.Stat(ref); err == nil && !info.IsDir() {
		return NewLoader(filepath.Dir(ref)).LoadFile(ref)
	}

	if dir != "" {
		if m, err := NewLoader(dir).LoadByID(ref); err == nil {
			return m, nil
		}
	}

	m, err := Builtin(ref)
	if err != nil {
		return Maze{}, fmt.Errorf("mazes: unknown maze %q (not a file, not in %q, not built in)", ref, dir)
	}
	return m, nil
}
