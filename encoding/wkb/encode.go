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

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/spatialmodel/geofeat"
)

// Encode writes g as base WKB. The SRID is not written.
func Encode(g geofeat.Geometry) ([]byte, error) {
	return appendGeometry(nil, g, true, false)
}

// EncodeExtended writes g as EWKB, including the SRID field when g has
// one.
func EncodeExtended(g geofeat.Geometry) ([]byte, error) {
	return appendGeometry(nil, g, true, true)
}

func appendHeader(b []byte, g geofeat.Geometry, withSRID bool) []byte {
	word := g.Type().WKBCode()
	if withSRID {
		word |= flagSRID << 24
	}
	b = append(b, littleEndian)
	b = binary.LittleEndian.AppendUint32(b, word)
	if withSRID {
		b = binary.LittleEndian.AppendUint32(b, uint32(int32(g.SRID())))
	}
	return b
}

func appendFloat(b []byte, v float64) []byte {
	return binary.LittleEndian.AppendUint64(b, math.Float64bits(v))
}

func appendPoint(b []byte, p *geofeat.Point) []byte {
	if p.IsEmpty() {
		return appendFloat(appendFloat(b, math.NaN()), math.NaN())
	}
	return appendFloat(appendFloat(b, p.X()), p.Y())
}

func appendLine(b []byte, l *geofeat.LineString) []byte {
	b = binary.LittleEndian.AppendUint32(b, uint32(l.NumPoints()))
	for _, p := range l.Points() {
		b = appendPoint(b, p)
	}
	return b
}

// appendGeometry writes g. Only the outermost geometry may carry an SRID,
// and only an outermost empty point is written without ordinates.
func appendGeometry(b []byte, g geofeat.Geometry, top, extended bool) ([]byte, error) {
	if g == nil {
		return nil, fmt.Errorf("wkb: %w: nil geometry", geofeat.ErrStructure)
	}
	b = appendHeader(b, g, top && extended && g.SRID() != 0)
	switch t := g.(type) {
	case *geofeat.Point:
		if top && t.IsEmpty() {
			return b, nil
		}
		return appendPoint(b, t), nil
	case *geofeat.LineString:
		return appendLine(b, t), nil
	case *geofeat.Polygon:
		b = binary.LittleEndian.AppendUint32(b, uint32(t.NumGeometries()))
		for _, r := range t.Components() {
			b = appendLine(b, r)
		}
		return b, nil
	case *geofeat.MultiPoint, *geofeat.MultiLineString, *geofeat.MultiPolygon, *geofeat.GeometryCollection:
		n := g.NumGeometries()
		b = binary.LittleEndian.AppendUint32(b, uint32(n))
		var err error
		for i := 0; i < n; i++ {
			if b, err = appendGeometry(b, g.GeometryN(i), false, extended); err != nil {
				return nil, err
			}
		}
		return b, nil
	}
	return nil, fmt.Errorf("wkb: %w: unsupported geometry %T", geofeat.ErrStructure, g)
}
