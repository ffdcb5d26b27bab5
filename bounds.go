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

// Bounds holds the spatial extent of a geometry.
type Bounds struct {
	MinX, MinY, MaxX, MaxY float64
}

// Extend increases the extent of b to include b2. A nil b2 is ignored.
func (b *Bounds) Extend(b2 *Bounds) {
	if b2 == nil {
		return
	}
	b.MinX = math.Min(b.MinX, b2.MinX)
	b.MinY = math.Min(b.MinY, b2.MinY)
	b.MaxX = math.Max(b.MaxX, b2.MaxX)
	b.MaxY = math.Max(b.MaxY, b2.MaxY)
}

// NewBounds initializes a new bounds object that contains nothing.
func NewBounds() *Bounds {
	return &Bounds{MinX: math.Inf(1), MinY: math.Inf(1), MaxX: math.Inf(-1), MaxY: math.Inf(-1)}
}

// Copy returns a copy of b.
func (b *Bounds) Copy() *Bounds {
	c := *b
	return &c
}

// Empty returns true if b does not contain any points.
func (b *Bounds) Empty() bool {
	return b.MaxX < b.MinX || b.MaxY < b.MinY
}

func (b *Bounds) extendPoint(p *Point) {
	if p == nil || p.empty {
		return
	}
	b.MinX = math.Min(b.MinX, p.x)
	b.MinY = math.Min(b.MinY, p.y)
	b.MaxX = math.Max(b.MaxX, p.x)
	b.MaxY = math.Max(b.MaxY, p.y)
}

// Overlaps returns whether b and b2 overlap, edges included.
func (b *Bounds) Overlaps(b2 *Bounds) bool {
	return b.MinX <= b2.MaxX && b.MinY <= b2.MaxY &&
		b.MaxX >= b2.MinX && b.MaxY >= b2.MinY
}

// ContainsPoint reports whether p falls inside b or on its edge.
func (b *Bounds) ContainsPoint(p *Point) bool {
	if p == nil || p.empty {
		return false
	}
	return p.x >= b.MinX && p.x <= b.MaxX && p.y >= b.MinY && p.y <= b.MaxY
}

// Polygon returns b as a closed rectangular ring running
// (maxX,minY), (maxX,maxY), (minX,maxY), (minX,minY), (maxX,minY).
// An empty b gives an empty polygon.
func (b *Bounds) Polygon() *Polygon {
	if b == nil || b.Empty() {
		return &Polygon{}
	}
	ring := newLineString([]*Point{
		NewPoint(b.MaxX, b.MinY),
		NewPoint(b.MaxX, b.MaxY),
		NewPoint(b.MinX, b.MaxY),
		NewPoint(b.MinX, b.MinY),
		NewPoint(b.MaxX, b.MinY),
	})
	return newPolygon([]*LineString{ring})
}
