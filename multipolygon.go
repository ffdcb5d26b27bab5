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

// MultiPolygon is a holder for multiple related polygons.
type MultiPolygon struct {
	collection[*Polygon]
}

// NewMultiPolygon returns a MultiPolygon of polygons.
func NewMultiPolygon(polygons []*Polygon) (*MultiPolygon, error) {
	c, err := newCollection(polygons)
	if err != nil {
		return nil, err
	}
	return &MultiPolygon{c}, nil
}

func newMultiPolygon(polygons []*Polygon) *MultiPolygon {
	return &MultiPolygon{collection[*Polygon]{comps: polygons}}
}

func (mp *MultiPolygon) Type() Type { return TypeMultiPolygon }

func (mp *MultiPolygon) WithSRID(srid int) Geometry {
	c := *mp
	c.srid = srid
	return &c
}

// Boundary returns every ring of every polygon.
func (mp *MultiPolygon) Boundary() Geometry {
	var rings []*LineString
	for _, p := range mp.comps {
		rings = append(rings, p.comps...)
	}
	return newMultiLineString(rings)
}

// PointInPolygon reports whether pt is within any of the polygons.
func (mp *MultiPolygon) PointInPolygon(pt *Point, onBoundary, onVertex bool) bool {
	for _, p := range mp.comps {
		if p.PointInPolygon(pt, onBoundary, onVertex) {
			return true
		}
	}
	return false
}

func (mp *MultiPolygon) InvertXY() Geometry { return &MultiPolygon{mp.invertXY()} }

func (mp *MultiPolygon) Equals(g Geometry) bool {
	mp2, ok := g.(*MultiPolygon)
	return ok && mp2 != nil && mp.equals(mp2.collection)
}
