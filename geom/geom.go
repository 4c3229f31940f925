package geom

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// BBox is the exact coordinate extent of a geometry, without any
// rendering inflation.
type BBox struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// Dataset is a loaded file: its shapes in file order plus an optional
// attribute table whose rows line up with Shapes.
type Dataset struct {
	Name    string
	Shapes  Collection
	Columns []string
	Rows    [][]string
}

// Counts tallies points, line strings and polygons the way a viewer
// status line reports them.
type Counts struct {
	Points   int
	Lines    int
	Polygons int
}

func (c Counts) String() string {
	return fmt.Sprintf("pts=%d ls=%d poly=%d", c.Points, c.Lines, c.Polygons)
}

// Coords flattens every coordinate of g in order.
func Coords(g Geometry) []Coord {
	if g == nil {
		return nil
	}
	return g.appendCoords(nil)
}

// Extent returns the bounding box of g. ok is false when g holds no
// coordinate at all.
func Extent(g Geometry) (BBox, bool) {
	coords := Coords(g)
	if len(coords) == 0 {
		return BBox{}, false
	}
	first := coords[0]
	bbox := BBox{MinX: first.X, MinY: first.Y, MaxX: first.X, MaxY: first.Y}
	for _, c := range coords[1:] {
		bbox.MinX = min(bbox.MinX, c.X)
		bbox.MinY = min(bbox.MinY, c.Y)
		bbox.MaxX = max(bbox.MaxX, c.X)
		bbox.MaxY = max(bbox.MaxY, c.Y)
	}
	return bbox, true
}

// Count walks g and tallies its members.
func Count(g Geometry) Counts {
	var c Counts
	var walk func(g Geometry)
	walk = func(g Geometry) {
		switch g := g.(type) {
		case Coord, Point:
			c.Points++
		case MultiPoint:
			c.Points += len(g)
		case Line, LineString:
			c.Lines++
		case MultiLineString:
			c.Lines += len(g)
		case Polygon, Rect, Triangle:
			c.Polygons++
		case MultiPolygon:
			c.Polygons += len(g)
		case Collection:
			for _, m := range g {
				walk(m)
			}
		}
	}
	walk(g)
	return c
}

// Load reads a supported file, picking the decoder by extension.
func Load(path string) (Dataset, error) {
	ext := strings.ToLower(filepath.Ext(path))
	var (
		d   Dataset
		err error
	)
	switch ext {
	case ".geojson", ".json":
		d, err = LoadGeoJSON(path)
	case ".csv":
		d, err = LoadCSV(path)
	case ".kml":
		d, err = LoadKML(path)
	case ".wkt":
		var data []byte
		data, err = os.ReadFile(path)
		if err != nil {
			return Dataset{}, err
		}
		var g Geometry
		g, err = ParseWKT(string(data))
		if err == nil {
			d.Shapes = Collection{g}
		}
	default:
		return Dataset{}, errors.New("unsupported file: " + ext)
	}
	if err != nil {
		return Dataset{}, fmt.Errorf("load %s: %w", filepath.Base(path), err)
	}
	d.Name = filepath.Base(path)
	return d, nil
}

// Supported reports whether Load understands the extension of path.
func Supported(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".geojson", ".json", ".csv", ".kml", ".wkt":
		return true
	}
	return false
}
