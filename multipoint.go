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

// MultiPoint is a holder for multiple related points.
type MultiPoint struct {
	collection[*Point]
}

// NewMultiPoint returns a MultiPoint of points.
func NewMultiPoint(points []*Point) (*MultiPoint, error) {
	c, err := newCollection(points)
	if err != nil {
		return nil, err
	}
	return &MultiPoint{c}, nil
}

func newMultiPoint(points []*Point) *MultiPoint {
	return &MultiPoint{collection[*Point]{comps: points}}
}

func (mp *MultiPoint) Type() Type { return TypeMultiPoint }

func (mp *MultiPoint) WithSRID(srid int) Geometry {
	c := *mp
	c.srid = srid
	return &c
}

// IsSimple always returns true for point sets.
func (mp *MultiPoint) IsSimple() bool { return true }

func (mp *MultiPoint) Explode() []*LineString { return nil }
func (mp *MultiPoint) Boundary() Geometry     { return &GeometryCollection{} }
func (mp *MultiPoint) InvertXY() Geometry     { return &MultiPoint{mp.invertXY()} }

func (mp *MultiPoint) Equals(g Geometry) bool {
	mp2, ok := g.(*MultiPoint)
	return ok && mp2 != nil && mp.equals(mp2.collection)
}
