// Package svg renders geometries to SVG markup and computes the
// viewport that encloses them.
//
// A document is an Svg tree: a node holds the shapes it draws, a style,
// and sibling trees merged with And. Style setters cascade: they return
// a new tree in which the node and every sibling carry the new value.
//
//	doc := svg.FromGeometry(geom.NewPoint(0, 0)).
//		WithRadius(10).
//		And(svg.FromGeometry(geom.NewPoint(50, 0)).WithRadius(5)).
//		WithStrokeColor(svg.Named("black"))
//	fmt.Println(doc)
package svg

import (
	"io"
	"strings"

	"geosvg/geom"
)

const (
	xmlns               = "http://www.w3.org/2000/svg"
	preserveAspectRatio = "xMidYMid meet"
)

// Svg is a renderable tree node. The zero value is an empty document
// with a zero radius; use New or FromGeometry.
type Svg struct {
	items    []Renderer
	siblings []Svg
	style    Style
	seed     ViewBox
	margin   bound
}

// New returns a node drawing items with the default style.
func New(items ...Renderer) Svg {
	return Svg{items: items, style: DefaultStyle()}
}

// FromGeometry returns a node drawing g with the default style.
func FromGeometry(g geom.Geometry) Svg {
	return New(Shape(g))
}

// And merges other into s as a sibling. The sibling keeps its own style
// until a setter is called on the result.
func (s Svg) And(other Svg) Svg {
	s.siblings = append(s.siblings[:len(s.siblings):len(s.siblings)], other)
	return s
}

// WithMargin pads this node's ViewBox by m on every side.
func (s Svg) WithMargin(m float64) Svg {
	s.margin = some(m)
	return s
}

// WithViewBox forces vb into this node's ViewBox.
func (s Svg) WithViewBox(vb ViewBox) Svg {
	s.seed = s.seed.Add(vb)
	return s
}

// Style returns the style this node renders its own items with.
func (s Svg) Style() Style { return s.style }

// cascade applies f to the node and, recursively, to every sibling. The
// sibling slice is rebuilt so s never shares it with the result.
func (s Svg) cascade(f func(Style) Style) Svg {
	s.style = f(s.style)
	if len(s.siblings) > 0 {
		siblings := make([]Svg, len(s.siblings))
		for i, sib := range s.siblings {
			siblings[i] = sib.cascade(f)
		}
		s.siblings = siblings
	}
	return s
}

func (s Svg) WithOpacity(v float64) Svg {
	return s.cascade(func(st Style) Style { return st.WithOpacity(v) })
}

func (s Svg) WithFill(c Color) Svg {
	return s.cascade(func(st Style) Style { return st.WithFill(c) })
}

// WithFillColor is WithFill.
func (s Svg) WithFillColor(c Color) Svg { return s.WithFill(c) }

func (s Svg) WithFillOpacity(v float64) Svg {
	return s.cascade(func(st Style) Style { return st.WithFillOpacity(v) })
}

func (s Svg) WithStrokeWidth(v float64) Svg {
	return s.cascade(func(st Style) Style { return st.WithStrokeWidth(v) })
}

func (s Svg) WithStrokeOpacity(v float64) Svg {
	return s.cascade(func(st Style) Style { return st.WithStrokeOpacity(v) })
}

func (s Svg) WithStrokeColor(c Color) Svg {
	return s.cascade(func(st Style) Style { return st.WithStroke(c) })
}

func (s Svg) WithRadius(r float64) Svg {
	return s.cascade(func(st Style) Style { return st.WithRadius(r) })
}

// WithStyle replaces the whole style of the node and its siblings.
func (s Svg) WithStyle(style Style) Svg {
	return s.cascade(func(Style) Style { return style })
}

// Fragment renders the node's items with its style followed by every
// sibling with the sibling's own style. It carries no envelope.
func (s Svg) Fragment() string {
	var b strings.Builder
	s.writeFragment(&b)
	return b.String()
}

func (s Svg) writeFragment(b *strings.Builder) {
	for _, it := range s.items {
		b.WriteString(it.Render(s.style))
	}
	for _, sib := range s.siblings {
		sib.writeFragment(b)
	}
}

// ViewBox unions the seed, every item's bounds under the node's style
// and every sibling's ViewBox, then applies the margin.
func (s Svg) ViewBox() ViewBox {
	vb := s.seed
	for _, it := range s.items {
		vb = vb.Add(it.Bounds(s.style))
	}
	for _, sib := range s.siblings {
		vb = vb.Add(sib.ViewBox())
	}
	if s.margin.ok {
		vb = vb.WithMargin(s.margin.v)
	}
	return vb
}

// String renders the complete document.
func (s Svg) String() string {
	var b strings.Builder
	s.writeDocument(&b)
	return b.String()
}

// WriteTo writes the complete document to w.
func (s Svg) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, s.String())
	return int64(n), err
}

func (s Svg) writeDocument(b *strings.Builder) {
	b.WriteString(`<svg xmlns="` + xmlns + `" preserveAspectRatio="` + preserveAspectRatio + `" viewBox="` + s.ViewBox().Attr() + `">`)
	s.writeFragment(b)
	b.WriteString("</svg>")
}

// Svg is itself a Renderer: nested in another tree it draws as a
// complete inner document restyled with the parent's style.
var _ Renderer = Svg{}

func (s Svg) Render(style Style) string { return s.WithStyle(style).String() }

func (s Svg) Bounds(style Style) ViewBox { return s.WithStyle(style).ViewBox() }
