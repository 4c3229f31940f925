package svg

import (
	"strconv"
	"strings"

	"geosvg/geom"
)

// Renderer is the drawing protocol: given a style, produce a markup
// fragment and the ViewBox that encloses it. Implementations never fail;
// degenerate input yields an empty fragment and an empty ViewBox.
type Renderer interface {
	Render(style Style) string
	Bounds(style Style) ViewBox
}

// Shape adapts a geometry to the Renderer protocol.
func Shape(g geom.Geometry) Renderer { return shape{g: g} }

type shape struct{ g geom.Geometry }

func (s shape) Render(style Style) string {
	var b strings.Builder
	writeGeometry(&b, s.g, style)
	return b.String()
}

func (s shape) Bounds(style Style) ViewBox { return geometryBounds(s.g, style) }

// num formats coordinates in their shortest decimal form.
func num(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

func writeGeometry(b *strings.Builder, g geom.Geometry, style Style) {
	switch g := g.(type) {
	case geom.Coord:
		writePoint(b, g, style)
	case geom.Point:
		writePoint(b, geom.Coord(g), style)
	case geom.Line:
		writePath(b, geom.LineString{g.Start, g.End}, style)
	case geom.LineString:
		writePath(b, g, style)
	case geom.Polygon:
		writePolygon(b, g, style)
	case geom.Rect:
		writePolygon(b, g.ToPolygon(), style)
	case geom.Triangle:
		writePolygon(b, g.ToPolygon(), style)
	case geom.MultiPoint:
		for _, p := range g {
			writePoint(b, geom.Coord(p), style)
		}
	case geom.MultiLineString:
		for _, ls := range g {
			writePath(b, ls, style)
		}
	case geom.MultiPolygon:
		for _, p := range g {
			writePolygon(b, p, style)
		}
	case geom.Collection:
		for _, m := range g {
			writeGeometry(b, m, style)
		}
	}
}

func geometryBounds(g geom.Geometry, style Style) ViewBox {
	var vb ViewBox
	switch g := g.(type) {
	case geom.Coord:
		vb = pointBounds(g, style)
	case geom.Point:
		vb = pointBounds(geom.Coord(g), style)
	case geom.Line:
		vb = lineBounds(geom.LineString{g.Start, g.End}, style)
	case geom.LineString:
		vb = lineBounds(g, style)
	case geom.Polygon:
		vb = polygonBounds(g, style)
	case geom.Rect:
		vb = polygonBounds(g.ToPolygon(), style)
	case geom.Triangle:
		vb = polygonBounds(g.ToPolygon(), style)
	case geom.MultiPoint:
		for _, p := range g {
			vb = vb.Add(pointBounds(geom.Coord(p), style))
		}
	case geom.MultiLineString:
		for _, ls := range g {
			vb = vb.Add(lineBounds(ls, style))
		}
	case geom.MultiPolygon:
		for _, p := range g {
			vb = vb.Add(polygonBounds(p, style))
		}
	case geom.Collection:
		for _, m := range g {
			vb = vb.Add(geometryBounds(m, style))
		}
	}
	return vb
}

func writePoint(b *strings.Builder, c geom.Coord, style Style) {
	b.WriteString(`<circle cx="` + num(c.X) + `" cy="` + num(c.Y) + `" r="` + num(style.Radius) + `"`)
	style.writeTo(b)
	b.WriteString("/>")
}

// pointBounds is the point inflated by radius plus stroke width.
func pointBounds(c geom.Coord, style Style) ViewBox {
	r := style.inflation()
	return NewViewBox(c.X-r, c.Y-r, c.X+r, c.Y+r)
}

// vertexBounds unions the boxes of every vertex treated as a radius-0
// point, so only the stroke inflates lines.
func vertexBounds(ls geom.LineString, style Style) ViewBox {
	style.Radius = 0
	var vb ViewBox
	for _, c := range ls {
		vb = vb.Add(pointBounds(c, style))
	}
	return vb
}

// lineBounds is empty for a string with no segment.
func lineBounds(ls geom.LineString, style Style) ViewBox {
	if len(ls) < 2 {
		return ViewBox{}
	}
	return vertexBounds(ls, style)
}

// writePath emits an open path with one M and one L per further vertex.
// A string with fewer than two vertices has no segment and draws nothing.
func writePath(b *strings.Builder, ls geom.LineString, style Style) {
	if len(ls) < 2 {
		return
	}
	b.WriteString(`<path d="`)
	writeRing(b, ls)
	b.WriteString(`"`)
	style.writeTo(b)
	b.WriteString("/>")
}

func writeRing(b *strings.Builder, ls geom.LineString) {
	for i, c := range ls {
		if i == 0 {
			b.WriteString("M " + num(c.X) + " " + num(c.Y))
			continue
		}
		b.WriteString(" L " + num(c.X) + " " + num(c.Y))
	}
}

// writePolygon emits every non-empty ring as a closed sub-path of one
// even-odd filled path so that interior rings cut holes.
func writePolygon(b *strings.Builder, p geom.Polygon, style Style) {
	rings := make([]geom.LineString, 0, 1+len(p.Interiors))
	for _, ring := range append([]geom.LineString{p.Exterior}, p.Interiors...) {
		if len(ring) > 0 {
			rings = append(rings, ring)
		}
	}
	if len(rings) == 0 {
		return
	}
	b.WriteString(`<path fill-rule="evenodd" d="`)
	for i, ring := range rings {
		if i > 0 {
			b.WriteByte(' ')
		}
		writeRing(b, ring)
		b.WriteString(" Z")
	}
	b.WriteString(`"`)
	style.writeTo(b)
	b.WriteString("/>")
}

func polygonBounds(p geom.Polygon, style Style) ViewBox {
	vb := vertexBounds(p.Exterior, style)
	for _, ring := range p.Interiors {
		vb = vb.Add(vertexBounds(ring, style))
	}
	return vb
}
