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

// LineString is a sequence of points joined by straight segments. It
// holds zero or at least two points.
type LineString struct {
	collection[*Point]
}

// NewLineString returns a line string through points. It fails with
// ErrStructure if exactly one point is given or any point is nil.
func NewLineString(points []*Point) (*LineString, error) {
	if len(points) == 1 {
		return nil, structureError("a line string needs zero or at least two points")
	}
	c, err := newCollection(points)
	if err != nil {
		return nil, err
	}
	return &LineString{c}, nil
}

// NewLineStringXY builds a line string from interleaved x, y ordinates.
func NewLineStringXY(xy ...float64) (*LineString, error) {
	if len(xy)%2 != 0 {
		return nil, structureError("odd number of ordinates (%d)", len(xy))
	}
	pts := make([]*Point, len(xy)/2)
	for i := range pts {
		pts[i] = NewPoint(xy[2*i], xy[2*i+1])
	}
	return NewLineString(pts)
}

// newLineString wraps points without copying or validating them.
func newLineString(points []*Point) *LineString {
	return &LineString{collection[*Point]{comps: points}}
}

func (l *LineString) Type() Type { return TypeLineString }

func (l *LineString) WithSRID(srid int) Geometry {
	c := *l
	c.srid = srid
	return &c
}

func (l *LineString) Dimension() int { return 1 }

// Points returns a copy of the vertices.
func (l *LineString) Points() []*Point { return l.Components() }

// NumPoints returns the number of vertices.
func (l *LineString) NumPoints() int { return len(l.comps) }

// PointN returns the vertex at 0-based index i, or nil.
func (l *LineString) PointN(i int) *Point {
	if i < 0 || i >= len(l.comps) {
		return nil
	}
	return l.comps[i]
}

func (l *LineString) StartPoint() *Point { return l.PointN(0) }
func (l *LineString) EndPoint() *Point   { return l.PointN(len(l.comps) - 1) }

// IsClosed reports whether the first and last points are equal. An empty
// line string is not closed.
func (l *LineString) IsClosed() bool {
	if len(l.comps) == 0 {
		return false
	}
	return l.StartPoint().Equals(l.EndPoint())
}

// IsRing reports whether l is both closed and simple.
func (l *LineString) IsRing() bool { return l.IsClosed() && l.IsSimple() }

// Length is the Euclidean length of l.
func (l *LineString) Length() float64 {
	length := 0.
	l.eachSegment(func(a, b *Point) {
		length += a.distance(b)
	})
	return length
}

// GreatCircleLength returns the length of l on a sphere of the given
// radius, treating X as longitude and Y as latitude in degrees. A
// radius <= 0 selects DefaultEarthRadius.
func (l *LineString) GreatCircleLength(radius float64) float64 {
	if radius <= 0 {
		radius = DefaultEarthRadius
	}
	length := 0.
	l.eachSegment(func(a, b *Point) {
		length += greatCircle(a, b, radius)
	})
	return length
}

// HaversineLength returns the angular length of l in degrees.
func (l *LineString) HaversineLength() float64 {
	length := 0.
	l.eachSegment(func(a, b *Point) {
		length += haversine(a, b)
	})
	return length
}

// eachSegment calls f for every pair of consecutive non-empty points.
func (l *LineString) eachSegment(f func(a, b *Point)) {
	for i := 1; i < len(l.comps); i++ {
		a, b := l.comps[i-1], l.comps[i]
		if a.empty || b.empty {
			continue
		}
		f(a, b)
	}
}

// Explode returns every segment of l as a two-point line string.
func (l *LineString) Explode() []*LineString {
	if len(l.comps) < 2 {
		return nil
	}
	segs := make([]*LineString, 0, len(l.comps)-1)
	for i := 1; i < len(l.comps); i++ {
		segs = append(segs, newLineString([]*Point{l.comps[i-1], l.comps[i]}))
	}
	return segs
}

// IsSimple reports whether no two non-adjacent segments of l cross.
func (l *LineString) IsSimple() bool {
	return !anyCrossing(l.Explode(), true)
}

// Boundary of an open line string is its two end points. A closed or
// empty line string has an empty boundary.
func (l *LineString) Boundary() Geometry {
	if l.IsEmpty() || l.IsClosed() {
		return &MultiPoint{}
	}
	return newMultiPoint([]*Point{l.StartPoint(), l.EndPoint()})
}

func (l *LineString) Equals(g Geometry) bool {
	l2, ok := g.(*LineString)
	return ok && l2 != nil && l.equals(l2.collection)
}

func (l *LineString) InvertXY() Geometry { return &LineString{l.invertXY()} }

// LineSegmentIntersect reports whether the segments running from the
// start to the end of a and of b cross at a point strictly inside both.
// Parallel and collinear segments never intersect.
func LineSegmentIntersect(a, b *LineString) bool {
	p0, p1 := a.StartPoint(), a.EndPoint()
	p2, p3 := b.StartPoint(), b.EndPoint()
	if p0 == nil || p1 == nil || p2 == nil || p3 == nil {
		return false
	}
	return segmentsCross(p0, p1, p2, p3)
}

func segmentsCross(p0, p1, p2, p3 *Point) bool {
	s1x, s1y := p1.x-p0.x, p1.y-p0.y
	s2x, s2y := p3.x-p2.x, p3.y-p2.y

	fps := -s2x*s1y + s1x*s2y
	fpt := -s2x*s1y + s1x*s2y
	if fps == 0 || fpt == 0 {
		return false
	}
	s := (-s1y*(p0.x-p2.x) + s1x*(p0.y-p2.y)) / fps
	t := (s2x*(p0.y-p2.y) - s2y*(p0.x-p2.x)) / fpt
	return s > 0 && s < 1 && t > 0 && t < 1
}

// anyCrossing tests segment pairs for a proper crossing. When
// skipAdjacent is set, consecutive segments are not compared.
func anyCrossing(segs []*LineString, skipAdjacent bool) bool {
	for i := 0; i < len(segs); i++ {
		start := i + 1
		if skipAdjacent {
			start = i + 2
		}
		for j := start; j < len(segs); j++ {
			if LineSegmentIntersect(segs[i], segs[j]) {
				return true
			}
		}
	}
	return false
}
