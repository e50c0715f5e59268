package grid

import "strconv"

const (
	// CellSize is the width and height of a whole cell in degrees
	CellSize = 0.25

	// QuarterSize is the width and height of a quarter cell in degrees
	QuarterSize = 0.125
)

// Cell is one numbered rectangle within a grid
type Cell struct {
	Grid   string
	Number int
	Row    int
	Col    int

	originLat float64
	originLon float64
}

// NewCell resolves a cell number to its zero-based row and column
func NewCell(def Definition, number int) Cell {
	row := (number - 1) / def.Cols
	col := (number - 1) % def.Cols

	return Cell{
		Grid:      def.Name,
		Number:    number,
		Row:       row,
		Col:       col,
		originLat: def.AnchorLat - float64(row)*CellSize,
		originLon: def.AnchorLon - float64(col)*CellSize,
	}
}

// Name returns the grid name and number, e.g. SFO12
func (c Cell) Name() string {
	return c.Grid + strconv.Itoa(c.Number)
}

// Origin returns the northwest corner of the cell (lon is west-positive)
func (c Cell) Origin() (lat, lon float64) {
	return c.originLat, c.originLon
}

// Bounds returns the cell edges in degrees (lon is west-positive)
func (c Cell) Bounds() (north, south, west, east float64) {
	return c.originLat, c.originLat - CellSize, c.originLon, c.originLon - CellSize
}
