package geom

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"

	"github.com/paulmach/orb/geojson"
)

// LoadGeoJSON reads a GeoJSON file. Every feature (or bare geometry)
// becomes one shape; feature properties become the attribute table.
func LoadGeoJSON(path string) (Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return Dataset{}, err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return Dataset{}, err
	}
	return ParseGeoJSON(data)
}

// ParseGeoJSON decodes a Feature, FeatureCollection or bare geometry.
func ParseGeoJSON(data []byte) (Dataset, error) {
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return Dataset{}, err
	}
	var features []*geojson.Feature
	switch head.Type {
	case "":
		return Dataset{}, errors.New("invalid geojson: missing type")
	case "FeatureCollection":
		fc, err := geojson.UnmarshalFeatureCollection(data)
		if err != nil {
			return Dataset{}, err
		}
		features = fc.Features
	case "Feature":
		f, err := geojson.UnmarshalFeature(data)
		if err != nil {
			return Dataset{}, err
		}
		features = []*geojson.Feature{f}
	case "Point", "MultiPoint", "LineString", "MultiLineString", "Polygon", "MultiPolygon", "GeometryCollection":
		g, err := geojson.UnmarshalGeometry(data)
		if err != nil {
			return Dataset{}, err
		}
		features = []*geojson.Feature{geojson.NewFeature(g.Geometry())}
	default:
		return Dataset{}, errors.New("unsupported geojson type: " + head.Type)
	}

	var (
		d     Dataset
		props []map[string]any
	)
	for _, f := range features {
		// features with a null geometry carry nothing to draw
		if f == nil || f.Geometry == nil {
			continue
		}
		shape := fromOrb(f.Geometry)
		if shape == nil {
			continue
		}
		d.Shapes = append(d.Shapes, shape)
		props = append(props, f.Properties)
	}
	if len(d.Shapes) == 0 {
		return Dataset{}, errors.New("no geometries found")
	}
	d.Columns, d.Rows = propertyTable(props)
	return d, nil
}

// propertyTable unions property keys in first-seen order and renders
// each feature's values as strings.
func propertyTable(props []map[string]any) ([]string, [][]string) {
	var order []string
	seen := map[string]bool{}
	for _, pm := range props {
		// map order is random; sort keys of each feature for stable columns
		for _, k := range slices.Sorted(maps.Keys(pm)) {
			if !seen[k] {
				seen[k] = true
				order = append(order, k)
			}
		}
	}
	if len(order) == 0 {
		return nil, nil
	}
	rows := make([][]string, 0, len(props))
	for _, pm := range props {
		vals := make([]string, 0, len(order))
		for _, k := range order {
			switch t := pm[k].(type) {
			case nil:
				vals = append(vals, "")
			case string:
				vals = append(vals, t)
			case float64:
				vals = append(vals, fmt.Sprintf("%g", t))
			case bool:
				vals = append(vals, fmt.Sprintf("%t", t))
			default:
				bs, _ := json.Marshal(t)
				vals = append(vals, string(bs))
			}
		}
		rows = append(rows, vals)
	}
	return order, rows
}
