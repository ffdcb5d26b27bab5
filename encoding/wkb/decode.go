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

package wkb

import "github.com/spatialmodel/geofeat"

// header is the byte order, type word and optional SRID that start every
// geometry.
type header struct {
	typ     geofeat.Type
	srid    int
	hasSRID bool
}

type decoder struct {
	c        *cursor
	maxDepth int
	extended bool
}

// Decode reads a WKB geometry. An SRID field, if present, is skipped.
func Decode(b []byte) (geofeat.Geometry, error) {
	return Codec{}.Decode(b)
}

// DecodeExtended reads an EWKB geometry and stamps it with its SRID.
func DecodeExtended(b []byte) (geofeat.Geometry, error) {
	return Codec{Extended: true}.Decode(b)
}

func (d *decoder) header() (header, error) {
	var h header
	order, err := d.c.u8()
	if err != nil {
		return h, err
	}
	if order != littleEndian {
		return h, geofeat.Malformed(d.c.format, nil, "unsupported byte order %d", order)
	}
	if d.c.remaining() < 4 {
		return h, d.c.short(4)
	}
	w := d.c.b[d.c.off : d.c.off+4]
	d.c.off += 4
	code, z, m, flags := w[0], w[1], w[2], w[3]
	if z != 0 || m != 0 || flags&(flagZ|flagM) != 0 {
		return h, geofeat.Malformed(d.c.format, nil, "unsupported coordinate dimension (Z or M)")
	}
	h.typ = geofeat.Type(code)
	if !h.typ.Valid() {
		return h, geofeat.Malformed(d.c.format, nil, "unknown geometry type %d", code)
	}
	// Writers disagree on which bit marks the SRID; any other flag
	// means one follows.
	if flags != 0 {
		srid, err := d.c.u32()
		if err != nil {
			return h, err
		}
		h.srid, h.hasSRID = int(int32(srid)), true
	}
	return h, nil
}

func (d *decoder) geometry(depth int) (geofeat.Geometry, error) {
	if depth > d.maxDepth {
		return nil, geofeat.Malformed(d.c.format, nil, "nesting deeper than %d", d.maxDepth)
	}
	h, err := d.header()
	if err != nil {
		return nil, err
	}
	g, err := d.body(h.typ, depth)
	if err != nil {
		return nil, err
	}
	if d.extended && h.hasSRID {
		g = g.WithSRID(h.srid)
	}
	return g, nil
}

func (d *decoder) body(typ geofeat.Type, depth int) (geofeat.Geometry, error) {
	switch typ {
	case geofeat.TypePoint:
		if depth == 0 && d.c.eof() {
			return geofeat.EmptyPoint(), nil
		}
		x, err := d.c.f64()
		if err != nil {
			return nil, err
		}
		y, err := d.c.f64()
		if err != nil {
			return nil, err
		}
		return point(x, y), nil
	case geofeat.TypeLineString:
		return d.lineString()
	case geofeat.TypePolygon:
		return d.polygon()
	}

	n, err := d.count(5)
	if err != nil {
		return nil, err
	}
	comps := make([]geofeat.Geometry, n)
	for i := range comps {
		if comps[i], err = d.geometry(depth + 1); err != nil {
			return nil, err
		}
		if want := componentType(typ); want != 0 && comps[i].Type() != want {
			return nil, geofeat.Malformed(d.c.format, nil, "%v holds a %v", typ, comps[i].Type())
		}
	}
	var g geofeat.Geometry
	switch typ {
	case geofeat.TypeMultiPoint:
		g, err = geofeat.NewMultiPoint(as[*geofeat.Point](comps))
	case geofeat.TypeMultiLineString:
		g, err = geofeat.NewMultiLineString(as[*geofeat.LineString](comps))
	case geofeat.TypeMultiPolygon:
		g, err = geofeat.NewMultiPolygon(as[*geofeat.Polygon](comps))
	default:
		g, err = geofeat.NewGeometryCollection(comps)
	}
	if err != nil {
		return nil, geofeat.Malformed(d.c.format, err, "%v", typ)
	}
	return g, nil
}

// count reads an element count, rejecting counts that cannot fit in the
// remaining input at minSize bytes per element.
func (d *decoder) count(minSize int) (uint32, error) {
	n, err := d.c.u32()
	if err != nil {
		return 0, err
	}
	if uint64(n)*uint64(minSize) > uint64(d.c.remaining()) {
		return 0, geofeat.Malformed(d.c.format, nil, "count %d exceeds remaining input", n)
	}
	return n, nil
}

func (d *decoder) lineString() (*geofeat.LineString, error) {
	n, err := d.c.u32()
	if err != nil {
		return nil, err
	}
	pts, err := d.c.coords(n)
	if err != nil {
		return nil, err
	}
	l, err := geofeat.NewLineString(pts)
	if err != nil {
		return nil, geofeat.Malformed(d.c.format, err, "line string")
	}
	return l, nil
}

func (d *decoder) polygon() (*geofeat.Polygon, error) {
	n, err := d.count(4)
	if err != nil {
		return nil, err
	}
	rings := make([]*geofeat.LineString, n)
	for i := range rings {
		if rings[i], err = d.lineString(); err != nil {
			return nil, err
		}
	}
	return geofeat.NewPolygon(rings)
}

func componentType(t geofeat.Type) geofeat.Type {
	switch t {
	case geofeat.TypeMultiPoint:
		return geofeat.TypePoint
	case geofeat.TypeMultiLineString:
		return geofeat.TypeLineString
	case geofeat.TypeMultiPolygon:
		return geofeat.TypePolygon
	}
	return 0
}

func as[T geofeat.Geometry](gs []geofeat.Geometry) []T {
	o := make([]T, len(gs))
	for i, g := range gs {
		o[i] = g.(T)
	}
	return o
}
