// Package registry provides a global registry of named search heuristics.
// Built-in heuristics register themselves in init(), letting the CLI and
// configuration refer to them by name.
package registry

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/vovakirdan/tui-pathfind/internal/search"
)

// Info contains metadata about a registered heuristic.
type Info struct {
	Name  string
	Title string
	// Informed is false for the zero heuristic, whose traces omit the
	// heuristic column.
	Informed bool
}

type entry struct {
	info      Info
	heuristic search.Heuristic
}

var (
	entries = make(map[string]entry)
	aliases = make(map[string]string)
	mu      sync.RWMutex
)

// Register adds a heuristic under the given name.
// Panics if the name is already registered.
func Register(name, title string, informed bool, h search.Heuristic) {
	mu.Lock()
	defer mu.Unlock()

	name = strings.ToLower(name)
	if _, exists := entries[name]; exists {
		panic(fmt.Sprintf("registry: heuristic %q already registered", name))
	}
	entries[name] = entry{
		info:      Info{Name: name, Title: title, Informed: informed},
		heuristic: h,
	}
}

// Alias makes alias resolve to an already registered name.
func Alias(alias, name string) {
	mu.Lock()
	defer mu.Unlock()
	aliases[strings.ToLower(alias)] = strings.ToLower(name)
}

// List returns information about all registered heuristics, sorted by name.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.info)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}

// Lookup returns the heuristic and its metadata by name or alias.
func Lookup(name string) (search.Heuristic, Info, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := resolve(name)
	if !ok {
		return nil, Info{}, fmt.Errorf("registry: unknown heuristic %q", name)
	}
	return e.heuristic, e.info, nil
}

// Exists checks if a heuristic with the given name or alias is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := resolve(name)
	return ok
}

func resolve(name string) (entry, bool) {
	name = strings.ToLower(name)
	if target, ok := aliases[name]; ok {
		name = target
	}
	e, ok := entries[name]
	return e, ok
}

func init() {
	Register("zero", "Uniform-cost search (no heuristic)", false, search.Zero)
	Register("manhattan", "A* with Manhattan distance", true, search.Manhattan)
	Register("chebyshev", "A* with Chebyshev distance", true, search.Chebyshev)

	Alias("ucs", "zero")
	Alias("dijkstra", "zero")
	Alias("astar", "manhattan")
}
