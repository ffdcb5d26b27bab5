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

// Reduce returns the simplest geometry that holds every leaf of gs.
// Collections are flattened recursively; a single leaf is returned as
// is, leaves of one kind become the matching Multi type, and mixed
// leaves become a GeometryCollection. Reduce returns false when gs holds
// no leaves. The result carries the SRID shared by all inputs, if any.
func Reduce(gs ...Geometry) (Geometry, bool) {
	var in []Geometry
	for _, g := range gs {
		if !isNil(g) {
			in = append(in, g)
		}
	}
	if len(in) == 0 {
		return nil, false
	}
	if len(in) == 1 {
		switch in[0].(type) {
		case *Point, *LineString, *Polygon:
			return in[0], true
		}
	}

	var leaves []Geometry
	for _, g := range in {
		leaves = flatten(leaves, g)
	}
	if len(leaves) == 0 {
		return nil, false
	}
	var out Geometry
	switch {
	case len(leaves) == 1:
		out = leaves[0]
	case sameType(leaves):
		out = multiOf(leaves)
	default:
		out = &GeometryCollection{collection[Geometry]{comps: leaves}}
	}
	if srid, ok := commonSRID(in); ok && srid != out.SRID() {
		out = out.WithSRID(srid)
	}
	return out, true
}

func flatten(dst []Geometry, g Geometry) []Geometry {
	switch t := g.(type) {
	case *Point, *LineString, *Polygon:
		return append(dst, g)
	case *MultiPoint:
		for _, c := range t.comps {
			dst = append(dst, c)
		}
	case *MultiLineString:
		for _, c := range t.comps {
			dst = append(dst, c)
		}
	case *MultiPolygon:
		for _, c := range t.comps {
			dst = append(dst, c)
		}
	case *GeometryCollection:
		for _, c := range t.comps {
			dst = flatten(dst, c)
		}
	}
	return dst
}

func sameType(gs []Geometry) bool {
	for _, g := range gs[1:] {
		if g.Type() != gs[0].Type() {
			return false
		}
	}
	return true
}

// multiOf wraps leaves, which all have the same type, in a Multi type.
func multiOf(leaves []Geometry) Geometry {
	switch leaves[0].(type) {
	case *Point:
		pts := make([]*Point, len(leaves))
		for i, g := range leaves {
			pts[i] = g.(*Point)
		}
		return newMultiPoint(pts)
	case *LineString:
		ls := make([]*LineString, len(leaves))
		for i, g := range leaves {
			ls[i] = g.(*LineString)
		}
		return newMultiLineString(ls)
	default:
		ps := make([]*Polygon, len(leaves))
		for i, g := range leaves {
			ps[i] = g.(*Polygon)
		}
		return newMultiPolygon(ps)
	}
}

func commonSRID(gs []Geometry) (int, bool) {
	srid := gs[0].SRID()
	for _, g := range gs[1:] {
		if g.SRID() != srid {
			return 0, false
		}
	}
	return srid, srid != 0
}
