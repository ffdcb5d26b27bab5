/*
Copyright © 2026 the geofeat authors.
This file is part of geofeat.

geofeat is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

geofeat is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with geofeat.  If not, see <http://www.gnu.org/licenses/>.
*/

package geofeat

import "math"

// Polygon is a series of rings. The first ring is the exterior, the rest
// are holes.
type Polygon struct {
	collection[*LineString]
}

// NewPolygon returns a polygon from rings. Ring closure is not checked.
func NewPolygon(rings []*LineString) (*Polygon, error) {
	c, err := newCollection(rings)
	if err != nil {
		return nil, err
	}
	return &Polygon{c}, nil
}

func newPolygon(rings []*LineString) *Polygon {
	return &Polygon{collection[*LineString]{comps: rings}}
}

func (p *Polygon) Type() Type { return TypePolygon }

func (p *Polygon) WithSRID(srid int) Geometry {
	c := *p
	c.srid = srid
	return &c
}

func (p *Polygon) Dimension() int { return 2 }

// ExteriorRing returns the first ring, or nil for a polygon without rings.
func (p *Polygon) ExteriorRing() *LineString {
	if len(p.comps) == 0 {
		return nil
	}
	return p.comps[0]
}

func (p *Polygon) NumInteriorRings() int {
	if len(p.comps) == 0 {
		return 0
	}
	return len(p.comps) - 1
}

// InteriorRingN returns the hole at 0-based index i, or nil.
func (p *Polygon) InteriorRingN(i int) *LineString {
	if i < 0 || i >= p.NumInteriorRings() {
		return nil
	}
	return p.comps[i+1]
}

// signedArea computes the shoelace area of a ring, wrapping from the last
// point back to the first. Counter-clockwise rings are positive.
func signedArea(ring []*Point) float64 {
	n := len(ring)
	a := 0.
	for k, pk := range ring {
		pj := ring[(k+1)%n]
		a += pk.x*pj.y - pk.y*pj.x
	}
	return a / 2
}

// SignedArea returns the signed area of the exterior ring.
func (p *Polygon) SignedArea() float64 {
	if len(p.comps) == 0 {
		return 0
	}
	return signedArea(p.comps[0].comps)
}

// ExteriorArea returns the area enclosed by the exterior ring.
func (p *Polygon) ExteriorArea() float64 { return math.Abs(p.SignedArea()) }

// Area returns the exterior area minus the area of each hole. Holes are
// not checked to lie inside the exterior.
func (p *Polygon) Area() float64 {
	a := p.ExteriorArea()
	for _, r := range p.comps[min(1, len(p.comps)):] {
		a -= math.Abs(signedArea(r.comps))
	}
	return a
}

// Centroid calculates the centroid of the exterior ring, from
// wikipedia: http://en.wikipedia.org/wiki/Centroid#Centroid_of_polygon.
// Holes are ignored. A ring with zero area gives its first vertex.
func (p *Polygon) Centroid() *Point {
	ext := p.ExteriorRing()
	if ext == nil || len(ext.comps) == 0 || p.IsEmpty() {
		return nil
	}
	r := ext.comps
	a := signedArea(r)
	if a == 0 {
		return NewPoint(r[0].x, r[0].y)
	}
	var cx, cy float64
	n := len(r)
	for k, pk := range r {
		pj := r[(k+1)%n]
		f := pk.x*pj.y - pk.y*pj.x
		cx += (pk.x + pj.x) * f
		cy += (pk.y + pj.y) * f
	}
	return NewPoint(cx/(6*a), cy/(6*a))
}

// Boundary returns the rings of p, as a LineString when there is only an
// exterior ring and as a MultiLineString otherwise.
func (p *Polygon) Boundary() Geometry {
	if p.IsEmpty() {
		return &MultiLineString{}
	}
	if len(p.comps) == 1 {
		return p.comps[0]
	}
	return newMultiLineString(p.Components())
}

// IsSimple reports whether no two segments of any rings properly cross.
func (p *Polygon) IsSimple() bool {
	return !anyCrossing(p.Explode(), false)
}

// PointOnVertex reports whether pt coincides with any vertex of p.
func (p *Polygon) PointOnVertex(pt *Point) bool {
	for _, r := range p.comps {
		for _, v := range r.comps {
			if v.Equals(pt) {
				return true
			}
		}
	}
	return false
}

// PointInPolygon determines whether pt lies within p by counting ray
// crossings. Points on a vertex return onVertex and points on an edge
// return onBoundary.
func (p *Polygon) PointInPolygon(pt *Point, onBoundary, onVertex bool) bool {
	if pt == nil || pt.empty || p.IsEmpty() {
		return false
	}
	if p.PointOnVertex(pt) {
		return onVertex
	}
	crossings := 0
	for _, r := range p.comps {
		ring := r.comps
		for i := 1; i < len(ring); i++ {
			a, b := ring[i-1], ring[i]
			if a.empty || b.empty {
				continue
			}
			// Horizontal edge through pt.
			if a.y == b.y && a.y == pt.y &&
				pt.x > math.Min(a.x, b.x) && pt.x < math.Max(a.x, b.x) {
				return onBoundary
			}
			if pt.y > math.Min(a.y, b.y) && pt.y <= math.Max(a.y, b.y) &&
				pt.x <= math.Max(a.x, b.x) && a.y != b.y {
				xinters := (pt.y-a.y)*(b.x-a.x)/(b.y-a.y) + a.x
				if xinters == pt.x {
					return onBoundary
				}
				if a.x == b.x || pt.x <= xinters {
					crossings++
				}
			}
		}
	}
	return crossings%2 != 0
}

func (p *Polygon) Equals(g Geometry) bool {
	p2, ok := g.(*Polygon)
	return ok && p2 != nil && p.equals(p2.collection)
}

func (p *Polygon) InvertXY() Geometry { return &Polygon{p.invertXY()} }
