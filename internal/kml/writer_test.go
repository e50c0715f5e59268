package kml

import (
	"bytes"
	"encoding/xml"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randytsao24/capgrid/internal/grid"
	"github.com/randytsao24/capgrid/internal/models"
)

// ---------------------------------------------------------------------------
// Test helpers
// ---------------------------------------------------------------------------

type kmlFile struct {
	XMLName xml.Name `xml:"kml"`
	Folder  struct {
		Name       string `xml:"name"`
		Placemarks []struct {
			Name        string  `xml:"name"`
			Description *string `xml:"description"`
			Point       struct {
				AltitudeMode string `xml:"altitudeMode"`
				Coordinates  string `xml:"coordinates"`
			} `xml:"Point"`
		} `xml:"Placemark"`
	} `xml:"Document>Folder"`
}

func sfo1(t *testing.T) []models.Waypoint {
	t.Helper()
	waypoints, err := grid.NewGenerator(grid.DefaultRegistry()).GenerateCell("SFO", 1)
	require.NoError(t, err)
	return waypoints
}

func decode(t *testing.T, data []byte) kmlFile {
	t.Helper()
	var doc kmlFile
	if err := xml.Unmarshal(data, &doc); err != nil {
		t.Fatalf("decode kml: %v\n%s", err, data)
	}
	return doc
}

// ---------------------------------------------------------------------------
// Encoding
// ---------------------------------------------------------------------------

func TestEncode(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, "SFO1", sfo1(t)))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, xml.Header), "missing XML header")
	assert.Contains(t, out, `xmlns="http://www.opengis.net/kml/2.2"`)
	assert.Contains(t, out, `xmlns:gx="http://www.google.com/kml/ext/2.2"`)
	assert.Contains(t, out, `xmlns:kml="http://www.opengis.net/kml/2.2"`)
	assert.Contains(t, out, `xmlns:atom="http://www.w3.org/2005/Atom"`)

	doc := decode(t, buf.Bytes())
	assert.Equal(t, kmlNamespace, doc.XMLName.Space)
	assert.Equal(t, "SFO1", doc.Folder.Name)
	require.Len(t, doc.Folder.Placemarks, 16)

	first := doc.Folder.Placemarks[0]
	assert.Equal(t, "SFO1ANW", first.Name)
	require.NotNil(t, first.Description)
	assert.Equal(t, "", *first.Description)
	assert.Equal(t, "absolute", first.Point.AltitudeMode)
	assert.Equal(t, "-125,40", first.Point.Coordinates)

	second := doc.Folder.Placemarks[1]
	assert.Equal(t, "SFO1ANE", second.Name)
	assert.Equal(t, "-124.875,40", second.Point.Coordinates)

	last := doc.Folder.Placemarks[15]
	assert.Equal(t, "SFO1DSE", last.Name)
	assert.Equal(t, "-124.75,39.75", last.Point.Coordinates)
}

func TestEncodePreservesWaypointOrder(t *testing.T) {
	waypoints := sfo1(t)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, "SFO1", waypoints))

	doc := decode(t, buf.Bytes())
	for i, pm := range doc.Folder.Placemarks {
		if pm.Name != waypoints[i].Label {
			t.Errorf("placemark %d = %s, want %s", i, pm.Name, waypoints[i].Label)
		}
	}
}

// ---------------------------------------------------------------------------
// Files
// ---------------------------------------------------------------------------

func TestWriterCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")

	w, err := NewWriter(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, w.Dir())

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestWriteCell(t *testing.T) {
	w, err := NewWriter(t.TempDir())
	require.NoError(t, err)

	path, size, err := w.WriteCell("SFO1", sfo1(t))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(w.Dir(), "SFO1.kml"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, int64(len(data)), size)

	doc := decode(t, data)
	assert.Equal(t, "SFO1", doc.Folder.Name)
	assert.Len(t, doc.Folder.Placemarks, 16)
}

func TestWriteCellOverwrites(t *testing.T) {
	w, err := NewWriter(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(w.Path("SFO1"), []byte("stale"), 0o644))

	path, _, err := w.WriteCell("SFO1", sfo1(t))
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "stale")
}
