package mazes

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Loader handles loading mazes from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new maze loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all maze files.
// Invalid files are skipped. Returns mazes sorted by ID.
func (l *Loader) LoadAll() ([]Maze, error) {
	var mazes []Maze

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(filepath.Ext(path)) {
			return nil
		}

		m, err := l.LoadFile(path)
		if err != nil {
			return nil
		}
		mazes = append(mazes, m)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("mazes: walking directory %s: %w", l.Root, err)
	}

	sort.Slice(mazes, func(i, j int) bool {
		return mazes[i].ID < mazes[j].ID
	})
	return mazes, nil
}

// LoadFile loads a single maze file.
func (l *Loader) LoadFile(path string) (Maze, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Maze{}, fmt.Errorf("mazes: reading file %s: %w", path, err)
	}

	m, err := Parse(data)
	if err != nil {
		return Maze{}, fmt.Errorf("mazes: parsing file %s: %w", path, err)
	}
	m.FilePath = path
	return m, nil
}

// LoadByID loads a specific maze by ID.
func (l *Loader) LoadByID(id string) (Maze, error) {
	mazes, err := l.LoadAll()
	if err != nil {
		return Maze{}, err
	}
	for _, m := range mazes {
		if m.ID == id {
			return m, nil
		}
	}
	return Maze{}, fmt.Errorf("mazes: maze not found: %s", id)
}

func isSupportedExtension(ext string) bool {
	ext = strings.ToLower(ext)
	for _, supported := range FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}
