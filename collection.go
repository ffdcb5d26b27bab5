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

import "reflect"

// collection holds the components of an aggregate geometry and
// implements the behavior shared by all aggregates. Concrete types embed
// it and override what differs.
type collection[T Geometry] struct {
	comps []T
	srid  int
}

// newCollection copies comps, rejecting nil components.
func newCollection[T Geometry](comps []T) (collection[T], error) {
	for i, c := range comps {
		if isNil(c) {
			return collection[T]{}, structureError("component %d is nil", i)
		}
	}
	c := make([]T, len(comps))
	copy(c, comps)
	return collection[T]{comps: c}, nil
}

func isNil(g Geometry) bool {
	if g == nil {
		return true
	}
	v := reflect.ValueOf(g)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

func (c collection[T]) SRID() int { return c.srid }

// Components returns a copy of the component slice.
func (c collection[T]) Components() []T {
	o := make([]T, len(c.comps))
	copy(o, c.comps)
	return o
}

// Bounds gives the aggregate extent of the non-empty components.
func (c collection[T]) Bounds() *Bounds {
	b := NewBounds()
	for _, g := range c.comps {
		b.Extend(g.Bounds())
	}
	if b.Empty() {
		return nil
	}
	return b
}

// IsEmpty is true when there are no components or all are empty.
func (c collection[T]) IsEmpty() bool {
	for _, g := range c.comps {
		if !g.IsEmpty() {
			return false
		}
	}
	return true
}

// Dimension is the largest dimension of the components.
func (c collection[T]) Dimension() int {
	d := 0
	for _, g := range c.comps {
		if gd := g.Dimension(); gd > d {
			d = gd
		}
	}
	return d
}

func (c collection[T]) CoordinateDimension() int { return 2 }
func (c collection[T]) HasZ() bool               { return false }
func (c collection[T]) IsMeasured() bool         { return false }

func (c collection[T]) Points() []*Point {
	var pts []*Point
	for _, g := range c.comps {
		pts = append(pts, g.Points()...)
	}
	return pts
}

func (c collection[T]) NumPoints() int {
	n := 0
	for _, g := range c.comps {
		n += g.NumPoints()
	}
	return n
}

// IsSimple reports whether every component is simple.
func (c collection[T]) IsSimple() bool {
	for _, g := range c.comps {
		if !g.IsSimple() {
			return false
		}
	}
	return true
}

func (c collection[T]) NumGeometries() int { return len(c.comps) }

func (c collection[T]) GeometryN(i int) Geometry {
	if i < 0 || i >= len(c.comps) {
		return nil
	}
	return c.comps[i]
}

func (c collection[T]) Area() float64 {
	a := 0.
	for _, g := range c.comps {
		a += g.Area()
	}
	return a
}

func (c collection[T]) Length() float64 {
	l := 0.
	for _, g := range c.comps {
		l += g.Length()
	}
	return l
}

func (c collection[T]) GreatCircleLength(radius float64) float64 {
	l := 0.
	for _, g := range c.comps {
		l += g.GreatCircleLength(radius)
	}
	return l
}

func (c collection[T]) HaversineLength() float64 {
	l := 0.
	for _, g := range c.comps {
		l += g.HaversineLength()
	}
	return l
}

func (c collection[T]) Envelope() *Polygon { return c.Bounds().Polygon() }

// Centroid of an aggregate is approximated by the centroid of its
// envelope.
func (c collection[T]) Centroid() *Point {
	if c.IsEmpty() {
		return nil
	}
	return c.Envelope().Centroid()
}

func (c collection[T]) Explode() []*LineString {
	var segs []*LineString
	for _, g := range c.comps {
		segs = append(segs, g.Explode()...)
	}
	return segs
}

func (c collection[T]) StartPoint() *Point { return nil }
func (c collection[T]) EndPoint() *Point   { return nil }
func (c collection[T]) IsClosed() bool     { return false }
func (c collection[T]) IsRing() bool       { return false }

func (c collection[T]) equals(c2 collection[T]) bool {
	if len(c.comps) != len(c2.comps) {
		return false
	}
	for i, g := range c.comps {
		if !g.Equals(c2.comps[i]) {
			return false
		}
	}
	return true
}

func (c collection[T]) invertXY() collection[T] {
	o := collection[T]{comps: make([]T, len(c.comps)), srid: c.srid}
	for i, g := range c.comps {
		o.comps[i] = g.InvertXY().(T)
	}
	return o
}
