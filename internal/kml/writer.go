// Package kml writes grid cell waypoints as KML placemark files
package kml

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"

	gokml "github.com/twpayne/go-kml"

	"github.com/randytsao24/capgrid/internal/models"
)

const (
	kmlNamespace  = "http://www.opengis.net/kml/2.2"
	atomNamespace = "http://www.w3.org/2005/Atom"
)

// Document builds a KML document holding one folder named after the cell
// with a placemark per waypoint
func Document(name string, waypoints []models.Waypoint) *gokml.CompoundElement {
	folder := gokml.Folder(gokml.Name(name))
	for _, wp := range waypoints {
		folder.Add(placemark(wp))
	}

	root := gokml.GxKML(gokml.Document(folder))
	root.Attr = append(root.Attr,
		xml.Attr{Name: xml.Name{Local: "xmlns:kml"}, Value: kmlNamespace},
		xml.Attr{Name: xml.Name{Local: "xmlns:atom"}, Value: atomNamespace},
	)
	return root
}

func placemark(wp models.Waypoint) *gokml.CompoundElement {
	return gokml.Placemark(
		gokml.Name(wp.Label),
		gokml.Description(""),
		gokml.Point(
			gokml.AltitudeMode(gokml.AltitudeModeEnum(wp.AltitudeMode)),
			// Waypoints carry west-positive longitudes; KML wants east-positive
			gokml.CoordinatesArray([]float64{-wp.Lon, wp.Lat}),
		),
	)
}

// Encode writes the XML header and an indented document to w.
// Coordinates use the shortest decimal form, so 125.0W 40.0N is written
// as "-125,40" rather than "-125.0,40.0".
func Encode(w io.Writer, name string, waypoints []models.Waypoint) error {
	if err := Document(name, waypoints).WriteIndent(w, "", "  "); err != nil {
		return fmt.Errorf("encoding %s: %w", name, err)
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// Writer writes one .kml file per cell into a directory
type Writer struct {
	dir string
}

// NewWriter creates the output directory, including parents, if needed
func NewWriter(dir string) (*Writer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	return &Writer{dir: dir}, nil
}

// Dir returns the output directory
func (w *Writer) Dir() string {
	return w.dir
}

// Path returns the file path used for a cell name
func (w *Writer) Path(name string) string {
	return filepath.Join(w.dir, name+".kml")
}

// WriteCell writes {dir}/{name}.kml and returns its path and size
func (w *Writer) WriteCell(name string, waypoints []models.Waypoint) (string, int64, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, name, waypoints); err != nil {
		return "", 0, err
	}

	path := w.Path(name)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", 0, fmt.Errorf("writing %s: %w", path, err)
	}

	return path, int64(buf.Len()), nil
}
