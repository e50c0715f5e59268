// Package grid handles search grid definitions and waypoint generation
package grid

import (
	"fmt"
	"sort"
)

// Definition describes one named search grid. The anchor is the northwest
// corner of cell 1; cells are numbered row-major going south and east.
type Definition struct {
	Name      string
	Cols      int
	Rows      int
	AnchorLat float64
	AnchorLon float64
	Excluded  map[int]struct{}
}

// CellCount returns the number of cells in the grid
func (d Definition) CellCount() int {
	return d.Rows * d.Cols
}

// Contains reports whether number is a valid cell number for the grid
func (d Definition) Contains(number int) bool {
	return number > 0 && number <= d.CellCount()
}

// IsExcluded reports whether number is skipped when the whole grid is expanded
func (d Definition) IsExcluded(number int) bool {
	_, ok := d.Excluded[number]
	return ok
}

// ExcludedNumbers returns the excluded cell numbers in ascending order
func (d Definition) ExcludedNumbers() []int {
	result := make([]int, 0, len(d.Excluded))
	for n := range d.Excluded {
		result = append(result, n)
	}
	sort.Ints(result)
	return result
}

// Registry is an immutable set of grid definitions keyed by name
type Registry struct {
	grids map[string]Definition
}

// NewRegistry builds a registry from the given definitions
func NewRegistry(defs ...Definition) (*Registry, error) {
	r := &Registry{grids: make(map[string]Definition, len(defs))}

	for _, def := range defs {
		if !isGridName(def.Name) {
			return nil, fmt.Errorf("grid %q: name must be three letters", def.Name)
		}
		if def.Rows <= 0 || def.Cols <= 0 {
			return nil, fmt.Errorf("grid %s: rows and cols must be positive, got %dx%d", def.Name, def.Rows, def.Cols)
		}
		if _, exists := r.grids[def.Name]; exists {
			return nil, fmt.Errorf("grid %s: defined twice", def.Name)
		}

		// Copy the exclusion set so callers can't mutate the registry
		excluded := make(map[int]struct{}, len(def.Excluded))
		for n := range def.Excluded {
			excluded[n] = struct{}{}
		}
		def.Excluded = excluded

		r.grids[def.Name] = def
	}

	return r, nil
}

// DefaultRegistry returns the West Coast CAP grids.
// SFO and LAX were the only grids in the first version of this table; the
// values are unchanged and the remaining grids extend it.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(
		Definition{Name: "LMT", Cols: 32, Rows: 18, AnchorLat: 44.5, AnchorLon: 125.0},
		Definition{Name: "SEA", Cols: 32, Rows: 18, AnchorLat: 49.0, AnchorLon: 125.0},
		Definition{Name: "SFO", Cols: 28, Rows: 16, AnchorLat: 40.0, AnchorLon: 125.0},
		Definition{Name: "LAS", Cols: 28, Rows: 17, AnchorLat: 40.0, AnchorLon: 118.0, Excluded: numberRange(449, 460)},
		Definition{Name: "LAX", Cols: 26, Rows: 16, AnchorLat: 36.0, AnchorLon: 121.5},
	)
	if err != nil {
		panic(err)
	}
	return r
}

// Lookup returns the definition for a grid name
func (r *Registry) Lookup(name string) (Definition, error) {
	def, exists := r.grids[name]
	if !exists {
		return Definition{}, fmt.Errorf("%w: %s", ErrUnknownGrid, name)
	}
	return def, nil
}

// Names returns all grid names, sorted
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.grids))
	for name := range r.grids {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns all definitions sorted by name
func (r *Registry) All() []Definition {
	names := r.Names()
	result := make([]Definition, 0, len(names))
	for _, name := range names {
		result = append(result, r.grids[name])
	}
	return result
}

// Count returns the number of grids
func (r *Registry) Count() int {
	return len(r.grids)
}

func numberRange(lo, hi int) map[int]struct{} {
	m := make(map[int]struct{}, hi-lo+1)
	for n := lo; n <= hi; n++ {
		m[n] = struct{}{}
	}
	return m
}

func isGridName(s string) bool {
	if len(s) != 3 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !(c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z') {
			return false
		}
	}
	return true
}
