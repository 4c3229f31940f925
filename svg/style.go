package svg

import "strings"

// Style is a snapshot of presentation attributes. Optional fields are
// only emitted once set; Radius always applies because points must be
// drawn at some size.
type Style struct {
	opacity       bound
	fillOpacity   bound
	strokeWidth   bound
	strokeOpacity bound
	fill          Color
	stroke        Color

	Radius float64
}

// DefaultStyle has no presentation attribute set and a radius of 1.
func DefaultStyle() Style {
	return Style{Radius: 1}
}

func (s Style) WithOpacity(v float64) Style       { s.opacity = some(v); return s }
func (s Style) WithFill(c Color) Style            { s.fill = c; return s }
func (s Style) WithFillOpacity(v float64) Style   { s.fillOpacity = some(v); return s }
func (s Style) WithStroke(c Color) Style          { s.stroke = c; return s }
func (s Style) WithStrokeWidth(v float64) Style   { s.strokeWidth = some(v); return s }
func (s Style) WithStrokeOpacity(v float64) Style { s.strokeOpacity = some(v); return s }
func (s Style) WithRadius(r float64) Style        { s.Radius = r; return s }

func (s Style) Opacity() (float64, bool)       { return s.opacity.v, s.opacity.ok }
func (s Style) FillOpacity() (float64, bool)   { return s.fillOpacity.v, s.fillOpacity.ok }
func (s Style) StrokeWidth() (float64, bool)   { return s.strokeWidth.v, s.strokeWidth.ok }
func (s Style) StrokeOpacity() (float64, bool) { return s.strokeOpacity.v, s.strokeOpacity.ok }
func (s Style) Fill() Color                    { return s.fill }
func (s Style) Stroke() Color                  { return s.stroke }

// inflation is how far a point's box extends past its center.
func (s Style) inflation() float64 {
	w := 1.0
	if s.strokeWidth.ok {
		w = s.strokeWidth.v
	}
	return s.Radius + w
}

// String renders the set attributes, each with a leading space, in the
// order opacity, fill, fill-opacity, stroke, stroke-width, stroke-opacity.
func (s Style) String() string {
	var b strings.Builder
	s.writeTo(&b)
	return b.String()
}

func (s Style) writeTo(b *strings.Builder) {
	attrNum := func(name string, v bound) {
		if v.ok {
			b.WriteString(" " + name + `="` + num(v.v) + `"`)
		}
	}
	attrColor := func(name string, c Color) {
		if c != nil {
			b.WriteString(" " + name + `="` + c.String() + `"`)
		}
	}
	attrNum("opacity", s.opacity)
	attrColor("fill", s.fill)
	attrNum("fill-opacity", s.fillOpacity)
	attrColor("stroke", s.stroke)
	attrNum("stroke-width", s.strokeWidth)
	attrNum("stroke-opacity", s.strokeOpacity)
}
