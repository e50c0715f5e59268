// Package models defines shared data types
package models

// AltitudeModeAbsolute is the altitude mode written for every waypoint
const AltitudeModeAbsolute = "absolute"

// Waypoint is a single labeled point inside a grid cell.
// Lon is stored west-positive: 125.0 means 125 degrees west.
type Waypoint struct {
	Label        string
	Lat          float64
	Lon          float64
	AltitudeMode string
}

// Quarter is one of the four 0.125 degree subdivisions of a cell
type Quarter struct {
	Label   string
	LatStep int
	LonStep int
}

// Corner is one of the four points bounding a quarter
type Corner struct {
	Label   string
	LatStep int
	LonStep int
}

// Quarters in output order
var Quarters = [4]Quarter{
	{Label: "A", LatStep: 0, LonStep: 0},
	{Label: "B", LatStep: 0, LonStep: 1},
	{Label: "C", LatStep: 1, LonStep: 0},
	{Label: "D", LatStep: 1, LonStep: 1},
}

// Corners in output order
var Corners = [4]Corner{
	{Label: "NW", LatStep: 0, LonStep: 0},
	{Label: "NE", LatStep: 0, LonStep: 1},
	{Label: "SW", LatStep: 1, LonStep: 0},
	{Label: "SE", LatStep: 1, LonStep: 1},
}
