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

// GeometryCollection is a heterogeneous group of geometries.
type GeometryCollection struct {
	collection[Geometry]
}

// NewGeometryCollection returns a GeometryCollection of geoms.
func NewGeometryCollection(geoms []Geometry) (*GeometryCollection, error) {
	c, err := newCollection(geoms)
	if err != nil {
		return nil, err
	}
	return &GeometryCollection{c}, nil
}

func (gc *GeometryCollection) Type() Type { return TypeGeometryCollection }

func (gc *GeometryCollection) WithSRID(srid int) Geometry {
	c := *gc
	c.srid = srid
	return &c
}

// IsSimple is always false for a heterogeneous collection.
func (gc *GeometryCollection) IsSimple() bool { return false }

// Boundary is not defined for a geometry collection; it returns an empty
// one.
func (gc *GeometryCollection) Boundary() Geometry { return &GeometryCollection{} }

func (gc *GeometryCollection) InvertXY() Geometry {
	return &GeometryCollection{gc.invertXY()}
}

func (gc *GeometryCollection) Equals(g Geometry) bool {
	gc2, ok := g.(*GeometryCollection)
	return ok && gc2 != nil && gc.equals(gc2.collection)
}
