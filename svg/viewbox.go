package svg

import "math"

// bound is an optional coordinate.
type bound struct {
	v  float64
	ok bool
}

func some(v float64) bound { return bound{v: v, ok: true} }

func (b bound) or0() float64 {
	if !b.ok {
		return 0
	}
	return b.v
}

// pick combines two optional bounds; an unset side yields the other.
func pick(a, b bound, f func(x, y float64) float64) bound {
	switch {
	case a.ok && b.ok:
		return some(f(a.v, b.v))
	case a.ok:
		return a
	default:
		return b
	}
}

func (b bound) shift(d float64) bound {
	if !b.ok {
		return b
	}
	return some(b.v + d)
}

// ViewBox accumulates the rectangle enclosing rendered content. Each
// bound is optional; the zero value has no extent and is the identity
// of Add.
type ViewBox struct {
	minX, minY, maxX, maxY bound
}

// NewViewBox returns a ViewBox with all four bounds set.
func NewViewBox(minX, minY, maxX, maxY float64) ViewBox {
	return ViewBox{minX: some(minX), minY: some(minY), maxX: some(maxX), maxY: some(maxY)}
}

// Add returns the union of v and o.
func (v ViewBox) Add(o ViewBox) ViewBox {
	return ViewBox{
		minX: pick(v.minX, o.minX, math.Min),
		minY: pick(v.minY, o.minY, math.Min),
		maxX: pick(v.maxX, o.maxX, math.Max),
		maxY: pick(v.maxY, o.maxY, math.Max),
	}
}

// WithMargin moves every present bound outwards by m. Absent bounds stay
// absent, so an empty ViewBox remains empty.
func (v ViewBox) WithMargin(m float64) ViewBox {
	return ViewBox{
		minX: v.minX.shift(-m),
		minY: v.minY.shift(-m),
		maxX: v.maxX.shift(m),
		maxY: v.maxY.shift(m),
	}
}

// IsEmpty reports whether no bound is set.
func (v ViewBox) IsEmpty() bool {
	return !v.minX.ok && !v.minY.ok && !v.maxX.ok && !v.maxY.ok
}

func (v ViewBox) MinX() float64 { return v.minX.or0() }
func (v ViewBox) MinY() float64 { return v.minY.or0() }
func (v ViewBox) MaxX() float64 { return v.maxX.or0() }
func (v ViewBox) MaxY() float64 { return v.maxY.or0() }

func (v ViewBox) Width() float64  { return math.Abs(v.MinX() - v.MaxX()) }
func (v ViewBox) Height() float64 { return math.Abs(v.MinY() - v.MaxY()) }

// Contains reports whether (x, y) lies inside the resolved bounds.
func (v ViewBox) Contains(x, y float64) bool {
	return x >= v.MinX() && x <= v.MaxX() && y >= v.MinY() && y <= v.MaxY()
}

// Attr renders the value of an SVG viewBox attribute: origin then extent.
func (v ViewBox) Attr() string {
	return num(v.MinX()) + " " + num(v.MinY()) + " " + num(v.Width()) + " " + num(v.Height())
}
