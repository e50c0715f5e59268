package grid

import (
	"fmt"

	"github.com/randytsao24/capgrid/internal/models"
)

// WaypointsPerCell is the number of waypoints produced for every cell
const WaypointsPerCell = len(models.Quarters) * len(models.Corners)

// Generator turns grid cells into waypoints
type Generator struct {
	registry *Registry
}

// NewGenerator creates a generator backed by the given registry
func NewGenerator(registry *Registry) *Generator {
	return &Generator{registry: registry}
}

// Cell validates a cell number and resolves its position.
// Excluded numbers are valid here; only whole-grid expansion skips them.
func (g *Generator) Cell(gridName string, number int) (Cell, error) {
	def, err := g.registry.Lookup(gridName)
	if err != nil {
		return Cell{}, err
	}

	if !def.Contains(number) {
		return Cell{}, fmt.Errorf("%w: %s%d", ErrInvalidCellNumber, gridName, number)
	}

	return NewCell(def, number), nil
}

// GenerateCell returns the 16 corner waypoints of a cell, quarters A-D in
// the outer loop and corners NW, NE, SW, SE in the inner loop.
func (g *Generator) GenerateCell(gridName string, number int) ([]models.Waypoint, error) {
	cell, err := g.Cell(gridName, number)
	if err != nil {
		return nil, err
	}
	return Waypoints(cell), nil
}

// Waypoints returns the waypoints of an already resolved cell
func Waypoints(cell Cell) []models.Waypoint {
	baseLat, baseLon := cell.Origin()
	prefix := cell.Name()

	waypoints := make([]models.Waypoint, 0, WaypointsPerCell)
	for _, q := range models.Quarters {
		for _, c := range models.Corners {
			waypoints = append(waypoints, models.Waypoint{
				Label:        prefix + q.Label + c.Label,
				Lat:          baseLat - QuarterSize*float64(q.LatStep+c.LatStep),
				Lon:          baseLon - QuarterSize*float64(q.LonStep+c.LonStep),
				AltitudeMode: models.AltitudeModeAbsolute,
			})
		}
	}
	return waypoints
}
