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

package geojson

import (
	"github.com/tidwall/gjson"

	"github.com/spatialmodel/geofeat"
)

// Decode reads a GeoJSON Geometry, Feature or FeatureCollection. The
// geometries of a FeatureCollection are reduced into one.
func Decode(data []byte) (geofeat.Geometry, error) {
	return Codec{}.Decode(data)
}

type decoder struct {
	maxDepth int
}

func malformed(reason string, a ...interface{}) error {
	return geofeat.Malformed(formatName, nil, reason, a...)
}

func (d decoder) object(r gjson.Result, depth int) (geofeat.Geometry, error) {
	if depth > d.maxDepth {
		return nil, malformed("nesting deeper than %d", d.maxDepth)
	}
	if !r.IsObject() {
		return nil, malformed("expected an object")
	}
	typ := r.Get("type")
	if typ.Type != gjson.String {
		return nil, malformed("missing \"type\" member")
	}
	coords := r.Get("coordinates")
	switch typ.String() {
	case "Point":
		return position(coords)
	case "LineString":
		return lineString(coords)
	case "Polygon":
		return polygon(coords)
	case "MultiPoint":
		var pts []*geofeat.Point
		if err := each(coords, func(c gjson.Result) error {
			p, err := position(c)
			pts = append(pts, p)
			return err
		}); err != nil {
			return nil, err
		}
		return geofeat.NewMultiPoint(pts)
	case "MultiLineString":
		var ls []*geofeat.LineString
		if err := each(coords, func(c gjson.Result) error {
			l, err := lineString(c)
			ls = append(ls, l)
			return err
		}); err != nil {
			return nil, err
		}
		return geofeat.NewMultiLineString(ls)
	case "MultiPolygon":
		var ps []*geofeat.Polygon
		if err := each(coords, func(c gjson.Result) error {
			p, err := polygon(c)
			ps = append(ps, p)
			return err
		}); err != nil {
			return nil, err
		}
		return geofeat.NewMultiPolygon(ps)
	case "GeometryCollection":
		gs, err := d.objects(r.Get("geometries"), depth)
		if err != nil {
			return nil, err
		}
		return geofeat.NewGeometryCollection(gs)
	case "Feature":
		g := r.Get("geometry")
		if !g.Exists() || g.Type == gjson.Null {
			return &geofeat.GeometryCollection{}, nil
		}
		return d.object(g, depth+1)
	case "FeatureCollection":
		var gs []geofeat.Geometry
		if err := each(r.Get("features"), func(f gjson.Result) error {
			g, err := d.object(f, depth+1)
			if err == nil && !g.IsEmpty() {
				gs = append(gs, g)
			}
			return err
		}); err != nil {
			return nil, err
		}
		if g, ok := geofeat.Reduce(gs...); ok {
			return g, nil
		}
		return &geofeat.GeometryCollection{}, nil
	default:
		return nil, &geofeat.FormatError{Format: formatName, Reason: "unsupported type",
			Err: UnsupportedGeometryError{Type: typ.String()}}
	}
}

func (d decoder) objects(r gjson.Result, depth int) ([]geofeat.Geometry, error) {
	var gs []geofeat.Geometry
	err := each(r, func(c gjson.Result) error {
		g, err := d.object(c, depth+1)
		gs = append(gs, g)
		return err
	})
	return gs, err
}

// each calls f for every element of the array r, stopping at the first
// error.
func each(r gjson.Result, f func(gjson.Result) error) error {
	if !r.IsArray() {
		return malformed("expected an array, got %s", r.Type)
	}
	for _, c := range r.Array() {
		if err := f(c); err != nil {
			return err
		}
	}
	return nil
}

// position reads [x, y]. An empty array is the empty point.
func position(r gjson.Result) (*geofeat.Point, error) {
	if !r.IsArray() {
		return nil, malformed("expected a position array")
	}
	a := r.Array()
	switch len(a) {
	case 0:
		return geofeat.EmptyPoint(), nil
	case 2:
	default:
		return nil, malformed("position must have 2 ordinates, has %d", len(a))
	}
	if a[0].Type != gjson.Number || a[1].Type != gjson.Number {
		return nil, malformed("non-numeric ordinate in %s", r.Raw)
	}
	return geofeat.NewPoint(a[0].Float(), a[1].Float()), nil
}

func lineString(r gjson.Result) (*geofeat.LineString, error) {
	var pts []*geofeat.Point
	if err := each(r, func(c gjson.Result) error {
		p, err := position(c)
		pts = append(pts, p)
		return err
	}); err != nil {
		return nil, err
	}
	l, err := geofeat.NewLineString(pts)
	if err != nil {
		return nil, geofeat.Malformed(formatName, err, "line string")
	}
	return l, nil
}

func polygon(r gjson.Result) (*geofeat.Polygon, error) {
	var rings []*geofeat.LineString
	if err := each(r, func(c gjson.Result) error {
		l, err := lineString(c)
		rings = append(rings, l)
		return err
	}); err != nil {
		return nil, err
	}
	return geofeat.NewPolygon(rings)
}
