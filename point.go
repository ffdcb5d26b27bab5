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

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Point is a single two-dimensional coordinate. An empty point carries
// no ordinates.
type Point struct {
	x, y  float64
	empty bool
	srid  int
}

// NewPoint returns a new point with the given ordinates.
func NewPoint(x, y float64) *Point {
	return &Point{x: x, y: y}
}

// EmptyPoint returns a point without ordinates.
func EmptyPoint() *Point {
	return &Point{empty: true}
}

// X returns the X ordinate, or NaN if p is empty.
func (p *Point) X() float64 {
	if p.empty {
		return math.NaN()
	}
	return p.x
}

// Y returns the Y ordinate, or NaN if p is empty.
func (p *Point) Y() float64 {
	if p.empty {
		return math.NaN()
	}
	return p.y
}

func (p *Point) Type() Type { return TypePoint }
func (p *Point) SRID() int  { return p.srid }

func (p *Point) WithSRID(srid int) Geometry {
	c := *p
	c.srid = srid
	return &c
}

// Bounds gives the rectangular extents of the point.
func (p *Point) Bounds() *Bounds {
	if p.empty {
		return nil
	}
	return &Bounds{MinX: p.x, MinY: p.y, MaxX: p.x, MaxY: p.y}
}

func (p *Point) IsEmpty() bool            { return p.empty }
func (p *Point) Dimension() int           { return 0 }
func (p *Point) CoordinateDimension() int { return 2 }
func (p *Point) HasZ() bool               { return false }
func (p *Point) IsMeasured() bool         { return false }

// Points returns p itself, or nothing for an empty point.
func (p *Point) Points() []*Point {
	if p.empty {
		return nil
	}
	return []*Point{p}
}

func (p *Point) NumPoints() int { return len(p.Points()) }
func (p *Point) IsSimple() bool { return true }

func (p *Point) NumGeometries() int {
	if p.empty {
		return 0
	}
	return 1
}

func (p *Point) GeometryN(i int) Geometry {
	if i != 0 || p.empty {
		return nil
	}
	return p
}

func (p *Point) Area() float64 { return 0 }

// Centroid of a point is the point itself, or nil when it is empty.
func (p *Point) Centroid() *Point {
	if p.empty {
		return nil
	}
	return p
}

func (p *Point) Length() float64                   { return 0 }
func (p *Point) GreatCircleLength(float64) float64 { return 0 }
func (p *Point) HaversineLength() float64          { return 0 }
func (p *Point) Envelope() *Polygon                { return p.Bounds().Polygon() }

// Boundary of a point is an empty geometry collection.
func (p *Point) Boundary() Geometry     { return &GeometryCollection{} }
func (p *Point) Explode() []*LineString { return nil }
func (p *Point) StartPoint() *Point     { return nil }
func (p *Point) EndPoint() *Point       { return nil }
func (p *Point) IsClosed() bool         { return false }
func (p *Point) IsRing() bool           { return false }

// Equals reports whether g is a point with the same ordinates within
// Epsilon. Two empty points are equal.
func (p *Point) Equals(g Geometry) bool {
	p2, ok := g.(*Point)
	if !ok || p2 == nil {
		return false
	}
	if p.empty || p2.empty {
		return p.empty == p2.empty
	}
	return floats.EqualWithinAbs(p.x, p2.x, Epsilon) &&
		floats.EqualWithinAbs(p.y, p2.y, Epsilon)
}

func (p *Point) InvertXY() Geometry {
	c := *p
	c.x, c.y = p.y, p.x
	return &c
}

// distance is the Euclidean distance between two non-empty points.
func (p *Point) distance(p2 *Point) float64 {
	return math.Hypot(p2.x-p.x, p2.y-p.y)
}
