package tui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"geosvg/geom"
	"geosvg/svg"
)

// projection maps document coordinates onto the braille microgrid (2x4
// per cell). SVG's y axis points down, and so does the terminal's, so
// the preview is laid out exactly like the exported file.
type projection struct {
	vb      svg.ViewBox
	zoom    float64
	offsetX int
	offsetY int
	w, h    int
}

func (m Model) projection(w, h int) (projection, bool) {
	vb := m.Document().ViewBox()
	if !(vb.Width() > 0 && vb.Height() > 0) || w <= 1 || h <= 1 {
		return projection{}, false
	}
	return projection{vb: vb, zoom: m.zoom, offsetX: m.offsetX, offsetY: m.offsetY, w: w, h: h}, true
}

// micro converts a document coordinate to microgrid pixels.
func (p projection) micro(x, y float64) (int, int) {
	nx := (x - p.vb.MinX()) / p.vb.Width()
	ny := (y - p.vb.MinY()) / p.vb.Height()
	zx := 0.5 + (nx-0.5)*p.zoom
	zy := 0.5 + (ny-0.5)*p.zoom
	sx := int(zx*float64(p.w*2-1)) + p.offsetX*2
	sy := int(zy*float64(p.h*4-1)) + p.offsetY*4
	return sx, sy
}

// cell converts a map cell back to a document coordinate.
func (p projection) cell(cx, cy int) (float64, float64) {
	zx := float64(cx-p.offsetX) / float64(p.w-1)
	zy := float64(cy-p.offsetY) / float64(p.h-1)
	nx := 0.5 + (zx-0.5)/p.zoom
	ny := 0.5 + (zy-0.5)/p.zoom
	return p.vb.MinX() + nx*p.vb.Width(), p.vb.MinY() + ny*p.vb.Height()
}

func (m Model) renderMap(w, h int) string {
	blank := strings.Repeat(" ", w)
	lines := make([]string, h)
	for y := range lines {
		lines[y] = blank
	}
	p, ok := m.projection(w, h)
	if !ok {
		if h > 0 {
			lines[h/2] = padRight(dimStyle.Render("  nothing to draw: open a file (Tab) or paste WKT (p)"), w)
		}
		return strings.Join(lines, "\n")
	}
	br := newBrailleBuf(w, h)
	for _, g := range m.data.Shapes {
		drawGeometry(br, p, g)
	}
	tint := strokeStyle(m.style.Stroke())
	for y, row := range br.toLines() {
		if strings.TrimSpace(row) != "" {
			lines[y] = tint.Render(row)
		}
	}
	if m.hovering && m.hoverHasGeo {
		cx, cy := p.micro(m.hoverX, m.hoverY)
		cx, cy = cx/2, cy/4
		if cy >= 0 && cy < h && cx >= 0 && cx < w {
			r := []rune(br.toLines()[cy])
			marker := hoverStyle.Render("◯")
			lines[cy] = tint.Render(string(r[:cx])) + marker + tint.Render(string(r[cx+1:]))
		}
	}
	return strings.Join(lines, "\n")
}

func drawGeometry(br *brailleBuf, p projection, g geom.Geometry) {
	switch g := g.(type) {
	case geom.Coord:
		br.setPixel(p.micro(g.X, g.Y))
	case geom.Point:
		br.setPixel(p.micro(g.X, g.Y))
	case geom.MultiPoint:
		for _, pt := range g {
			br.setPixel(p.micro(pt.X, pt.Y))
		}
	case geom.Line:
		drawPolyline(br, p, geom.LineString{g.Start, g.End}, false)
	case geom.LineString:
		drawPolyline(br, p, g, false)
	case geom.MultiLineString:
		for _, ls := range g {
			drawPolyline(br, p, ls, false)
		}
	case geom.Polygon:
		drawPolygon(br, p, g)
	case geom.Rect:
		drawPolygon(br, p, g.ToPolygon())
	case geom.Triangle:
		drawPolygon(br, p, g.ToPolygon())
	case geom.MultiPolygon:
		for _, poly := range g {
			drawPolygon(br, p, poly)
		}
	case geom.Collection:
		for _, m := range g {
			drawGeometry(br, p, m)
		}
	}
}

func drawPolyline(br *brailleBuf, p projection, ls geom.LineString, closed bool) {
	if len(ls) == 0 {
		return
	}
	pts := make([][2]int, len(ls))
	for i, c := range ls {
		pts[i][0], pts[i][1] = p.micro(c.X, c.Y)
	}
	if len(pts) == 1 {
		br.setPixel(pts[0][0], pts[0][1])
		return
	}
	for i := 0; i+1 < len(pts); i++ {
		br.drawLineMicro(pts[i][0], pts[i][1], pts[i+1][0], pts[i+1][1])
	}
	if closed {
		last := pts[len(pts)-1]
		br.drawLineMicro(last[0], last[1], pts[0][0], pts[0][1])
	}
}

// drawPolygon fills with the even-odd rule across all rings, matching
// the fill-rule of the exported path, then draws the ring edges.
func drawPolygon(br *brailleBuf, p projection, poly geom.Polygon) {
	var rings [][][2]int
	for _, ring := range append([]geom.LineString{poly.Exterior}, poly.Interiors...) {
		if len(ring) < 3 {
			drawPolyline(br, p, ring, true)
			continue
		}
		r := make([][2]int, len(ring))
		for i, c := range ring {
			r[i][0], r[i][1] = p.micro(c.X, c.Y)
		}
		rings = append(rings, r)
	}
	for yMic := 0; yMic < br.h*4; yMic++ {
		var xs []int
		for _, r := range rings {
			for i := range r {
				a, b := r[i], r[(i+1)%len(r)]
				if a[1] == b[1] { // horizontal edge: skip
					continue
				}
				if (yMic >= a[1] && yMic < b[1]) || (yMic >= b[1] && yMic < a[1]) {
					t := float64(yMic-a[1]) / float64(b[1]-a[1])
					xs = append(xs, int(float64(a[0])+t*float64(b[0]-a[0])))
				}
			}
		}
		sort.Ints(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			for xMic := max(0, xs[i]); xMic <= xs[i+1]; xMic++ {
				br.setPixel(xMic, yMic)
			}
		}
	}
	for _, r := range rings {
		for i := range r {
			a, b := r[i], r[(i+1)%len(r)]
			br.drawLineMicro(a[0], a[1], b[0], b[1])
		}
	}
}

func padRight(s string, w int) string {
	if n := w - lipgloss.Width(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}
