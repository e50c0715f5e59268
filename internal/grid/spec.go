package grid

import (
	"fmt"
	"iter"
	"strconv"
	"strings"
)

// Selection is an inclusive range of cell numbers requested from one grid.
// Numbers in Excluded are skipped; only whole-grid selections carry them.
type Selection struct {
	Grid     string
	Lo       int
	Hi       int
	Excluded map[int]struct{}
}

// Numbers yields the selected cell numbers in ascending order. Nothing is
// materialized, so a huge range stops as soon as the caller does.
func (s Selection) Numbers() iter.Seq[int] {
	return func(yield func(int) bool) {
		if s.Lo > s.Hi {
			return
		}
		for n := s.Lo; ; n++ {
			if _, skip := s.Excluded[n]; !skip && !yield(n) {
				return
			}
			// n++ would wrap when Hi is math.MaxInt
			if n == s.Hi {
				return
			}
		}
	}
}

// ParseSpec parses a grid spec such as "SFO", "SFO12", "SFO1,5" or
// "SFO1-3,10-12". A bare grid name selects every cell except the grid's
// excluded numbers. Explicit numbers are returned as written, excluded or
// not, and are not bounds-checked.
func ParseSpec(spec string, registry *Registry) ([]Selection, error) {
	if len(spec) < 3 || !isGridName(spec[:3]) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSpec, spec)
	}
	name := spec[:3]

	def, err := registry.Lookup(name)
	if err != nil {
		return nil, err
	}

	if len(spec) == 3 {
		return []Selection{{Grid: name, Lo: 1, Hi: def.CellCount(), Excluded: def.Excluded}}, nil
	}

	items := strings.Split(spec[3:], ",")
	selections := make([]Selection, 0, len(items))
	for _, item := range items {
		lo, hi, err := parseRange(item)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidSpec, spec)
		}
		selections = append(selections, Selection{Grid: name, Lo: lo, Hi: hi})
	}

	return selections, nil
}

// parseRange parses "N" or "MIN-MAX". Only the first dash separates, so
// "1--3" is the range 1 to -3, which is empty.
func parseRange(item string) (int, int, error) {
	parts := strings.SplitN(item, "-", 2)

	lo, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, err
	}
	if len(parts) == 1 {
		return lo, lo, nil
	}

	hi, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, err
	}
	return lo, hi, nil
}
