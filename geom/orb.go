package geom

import "github.com/paulmach/orb"

// fromOrb converts a geometry decoded by orb into the geom types. The
// first ring of a polygon is its exterior, the rest are holes. It
// returns nil for types geom has no counterpart for.
func fromOrb(g orb.Geometry) Geometry {
	switch g := g.(type) {
	case orb.Point:
		return NewPoint(g[0], g[1])
	case orb.MultiPoint:
		mp := make(MultiPoint, 0, len(g))
		for _, p := range g {
			mp = append(mp, NewPoint(p[0], p[1]))
		}
		return mp
	case orb.LineString:
		return lineFromOrb(g)
	case orb.MultiLineString:
		ml := make(MultiLineString, 0, len(g))
		for _, ls := range g {
			ml = append(ml, lineFromOrb(ls))
		}
		return ml
	case orb.Ring:
		return polygonFromOrb(orb.Polygon{g})
	case orb.Polygon:
		return polygonFromOrb(g)
	case orb.MultiPolygon:
		mp := make(MultiPolygon, 0, len(g))
		for _, p := range g {
			mp = append(mp, polygonFromOrb(p))
		}
		return mp
	case orb.Bound:
		return NewRect(Coord{X: g.Min[0], Y: g.Min[1]}, Coord{X: g.Max[0], Y: g.Max[1]})
	case orb.Collection:
		gc := make(Collection, 0, len(g))
		for _, m := range g {
			if c := fromOrb(m); c != nil {
				gc = append(gc, c)
			}
		}
		return gc
	}
	return nil
}

func lineFromOrb(ls []orb.Point) LineString {
	out := make(LineString, len(ls))
	for i, p := range ls {
		out[i] = Coord{X: p[0], Y: p[1]}
	}
	return out
}

func polygonFromOrb(p orb.Polygon) Polygon {
	if len(p) == 0 {
		return Polygon{}
	}
	poly := Polygon{Exterior: lineFromOrb(p[0]), Interiors: make([]LineString, 0, len(p)-1)}
	for _, ring := range p[1:] {
		poly.Interiors = append(poly.Interiors, lineFromOrb(ring))
	}
	return poly
}
