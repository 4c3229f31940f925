package geom

// Kind enumerates the closed set of geometry variants.
type Kind int

const (
	KindPoint Kind = iota
	KindLine
	KindLineString
	KindPolygon
	KindRect
	KindTriangle
	KindMultiPoint
	KindMultiLineString
	KindMultiPolygon
	KindCollection
)

var kindNames = [...]string{
	KindPoint:           "point",
	KindLine:            "line",
	KindLineString:      "linestring",
	KindPolygon:         "polygon",
	KindRect:            "rect",
	KindTriangle:        "triangle",
	KindMultiPoint:      "multipoint",
	KindMultiLineString: "multilinestring",
	KindMultiPolygon:    "multipolygon",
	KindCollection:      "collection",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Geometry is implemented by every shape of this package and by nothing
// else.
type Geometry interface {
	Kind() Kind
	appendCoords(dst []Coord) []Coord
}

// Coord is a bare x/y pair. Used on its own it behaves like a Point.
type Coord struct {
	X float64
	Y float64
}

// Point is a single position.
type Point Coord

// NewPoint returns the point at (x, y).
func NewPoint(x, y float64) Point { return Point{X: x, Y: y} }

// Line is a single segment.
type Line struct {
	Start Coord
	End   Coord
}

// LineString is an open, ordered run of coordinates.
type LineString []Coord

// Polygon has one exterior ring and zero or more holes. Rings are
// implicitly closed.
type Polygon struct {
	Exterior  LineString
	Interiors []LineString
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	Min Coord
	Max Coord
}

// NewRect returns the rectangle spanned by a and b with normalized corners.
func NewRect(a, b Coord) Rect {
	return Rect{
		Min: Coord{X: min(a.X, b.X), Y: min(a.Y, b.Y)},
		Max: Coord{X: max(a.X, b.X), Y: max(a.Y, b.Y)},
	}
}

// ToPolygon returns the four corners counter-clockwise from Min.
func (r Rect) ToPolygon() Polygon {
	return Polygon{Exterior: LineString{
		{X: r.Min.X, Y: r.Min.Y},
		{X: r.Max.X, Y: r.Min.Y},
		{X: r.Max.X, Y: r.Max.Y},
		{X: r.Min.X, Y: r.Max.Y},
	}}
}

// Triangle is three vertices.
type Triangle [3]Coord

func (t Triangle) ToPolygon() Polygon {
	return Polygon{Exterior: LineString{t[0], t[1], t[2]}}
}

type MultiPoint []Point

type MultiLineString []LineString

type MultiPolygon []Polygon

// Collection is a heterogeneous, ordered list of geometries.
type Collection []Geometry

func (Coord) Kind() Kind           { return KindPoint }
func (Point) Kind() Kind           { return KindPoint }
func (Line) Kind() Kind            { return KindLine }
func (LineString) Kind() Kind      { return KindLineString }
func (Polygon) Kind() Kind         { return KindPolygon }
func (Rect) Kind() Kind            { return KindRect }
func (Triangle) Kind() Kind        { return KindTriangle }
func (MultiPoint) Kind() Kind      { return KindMultiPoint }
func (MultiLineString) Kind() Kind { return KindMultiLineString }
func (MultiPolygon) Kind() Kind    { return KindMultiPolygon }
func (Collection) Kind() Kind      { return KindCollection }

func (c Coord) appendCoords(dst []Coord) []Coord { return append(dst, c) }
func (p Point) appendCoords(dst []Coord) []Coord { return append(dst, Coord(p)) }
func (l Line) appendCoords(dst []Coord) []Coord  { return append(dst, l.Start, l.End) }

func (ls LineString) appendCoords(dst []Coord) []Coord { return append(dst, ls...) }

func (p Polygon) appendCoords(dst []Coord) []Coord {
	dst = append(dst, p.Exterior...)
	for _, ring := range p.Interiors {
		dst = append(dst, ring...)
	}
	return dst
}

func (r Rect) appendCoords(dst []Coord) []Coord     { return r.ToPolygon().appendCoords(dst) }
func (t Triangle) appendCoords(dst []Coord) []Coord { return append(dst, t[:]...) }

func (mp MultiPoint) appendCoords(dst []Coord) []Coord {
	for _, p := range mp {
		dst = append(dst, Coord(p))
	}
	return dst
}

func (ml MultiLineString) appendCoords(dst []Coord) []Coord {
	for _, ls := range ml {
		dst = append(dst, ls...)
	}
	return dst
}

func (mp MultiPolygon) appendCoords(dst []Coord) []Coord {
	for _, p := range mp {
		dst = p.appendCoords(dst)
	}
	return dst
}

func (gc Collection) appendCoords(dst []Coord) []Coord {
	for _, g := range gc {
		if g != nil {
			dst = g.appendCoords(dst)
		}
	}
	return dst
}
