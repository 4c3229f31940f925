package geom

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/net/html/charset"
)

type kmlCoords struct {
	Coordinates string `xml:"coordinates"`
}

type kmlBoundary struct {
	Ring kmlCoords `xml:"LinearRing"`
}

type kmlPolygon struct {
	Outer kmlBoundary   `xml:"outerBoundaryIs"`
	Inner []kmlBoundary `xml:"innerBoundaryIs"`
}

type kmlMulti struct {
	Points   []kmlCoords  `xml:"Point"`
	Lines    []kmlCoords  `xml:"LineString"`
	Polygons []kmlPolygon `xml:"Polygon"`
}

type kmlPlacemark struct {
	Name        string      `xml:"name"`
	Description string      `xml:"description"`
	Point       *kmlCoords  `xml:"Point"`
	LineString  *kmlCoords  `xml:"LineString"`
	Polygon     *kmlPolygon `xml:"Polygon"`
	Multi       *kmlMulti   `xml:"MultiGeometry"`
}

// LoadKML extracts placemark geometries (Point, LineString, Polygon and
// MultiGeometry) from a KML file. The placemark name and description
// become attributes.
func LoadKML(path string) (Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return Dataset{}, err
	}
	defer f.Close()
	return DecodeKML(f)
}

// DecodeKML reads KML from r, honoring the encoding declared in the XML
// prolog.
func DecodeKML(r io.Reader) (Dataset, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Dataset{}, err
	}
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.CharsetReader = charset.NewReaderLabel

	// placemarks may sit under Document, Folder or directly under kml
	var placemarks []kmlPlacemark
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Dataset{}, err
		}
		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "Placemark" {
			continue
		}
		var pm kmlPlacemark
		if err := dec.DecodeElement(&pm, &se); err != nil {
			return Dataset{}, err
		}
		placemarks = append(placemarks, pm)
	}

	var d Dataset
	for _, pm := range placemarks {
		shape, ok := pm.geometry()
		if !ok {
			continue
		}
		d.Shapes = append(d.Shapes, shape)
		d.Rows = append(d.Rows, []string{pm.Name, strings.TrimSpace(pm.Description)})
	}
	if len(d.Shapes) == 0 {
		return Dataset{}, errors.New("kml: no placemark geometries found")
	}
	d.Columns = []string{"name", "description"}
	return d, nil
}

func (pm kmlPlacemark) geometry() (Geometry, bool) {
	switch {
	case pm.Point != nil:
		ls := parseKMLCoords(pm.Point.Coordinates)
		if len(ls) == 0 {
			return nil, false
		}
		return Point(ls[0]), true
	case pm.LineString != nil:
		ls := parseKMLCoords(pm.LineString.Coordinates)
		return ls, len(ls) > 0
	case pm.Polygon != nil:
		poly := pm.Polygon.toPolygon()
		return poly, len(poly.Exterior) > 0
	case pm.Multi != nil:
		var gc Collection
		for _, p := range pm.Multi.Points {
			if ls := parseKMLCoords(p.Coordinates); len(ls) > 0 {
				gc = append(gc, Point(ls[0]))
			}
		}
		for _, l := range pm.Multi.Lines {
			if ls := parseKMLCoords(l.Coordinates); len(ls) > 0 {
				gc = append(gc, ls)
			}
		}
		for _, p := range pm.Multi.Polygons {
			gc = append(gc, p.toPolygon())
		}
		return gc, len(gc) > 0
	}
	return nil, false
}

func (p kmlPolygon) toPolygon() Polygon {
	poly := Polygon{Exterior: parseKMLCoords(p.Outer.Ring.Coordinates)}
	for _, in := range p.Inner {
		poly.Interiors = append(poly.Interiors, parseKMLCoords(in.Ring.Coordinates))
	}
	return poly
}

// parseKMLCoords reads whitespace-separated "lon,lat[,alt]" tuples; the
// altitude is ignored and malformed tuples are skipped.
func parseKMLCoords(s string) LineString {
	var out LineString
	for _, tuple := range strings.Fields(s) {
		vals := strings.Split(tuple, ",")
		if len(vals) < 2 {
			continue
		}
		lon, err1 := strconv.ParseFloat(strings.TrimSpace(vals[0]), 64)
		lat, err2 := strconv.ParseFloat(strings.TrimSpace(vals[1]), 64)
		if err1 != nil || err2 != nil {
			continue
		}
		out = append(out, Coord{X: lon, Y: lat})
	}
	return out
}
