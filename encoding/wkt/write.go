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

package wkt

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spatialmodel/geofeat"
)

// Write returns the WKT form of g.
func Write(g geofeat.Geometry) (string, error) {
	var b strings.Builder
	if err := write(&b, g); err != nil {
		return "", err
	}
	return b.String(), nil
}

// WriteExtended returns the EWKT form of g: its WKT prefixed with
// "SRID=<n>;" when g has an SRID.
func WriteExtended(g geofeat.Geometry) (string, error) {
	s, err := Write(g)
	if err != nil || g.SRID() == 0 {
		return s, err
	}
	return "SRID=" + strconv.Itoa(g.SRID()) + ";" + s, nil
}

func write(b *strings.Builder, g geofeat.Geometry) error {
	if g == nil {
		return fmt.Errorf("wkt: %w: nil geometry", geofeat.ErrStructure)
	}
	b.WriteString(strings.ToUpper(g.Type().String()))
	if g.IsEmpty() {
		b.WriteString(" " + empty)
		return nil
	}
	b.WriteString(" (")
	if err := body(b, g); err != nil {
		return err
	}
	b.WriteByte(')')
	return nil
}

// formatFloat writes v in plain decimal, switching to exponent form
// for magnitudes that would otherwise need long runs of zeros.
func formatFloat(v float64) string {
	if a := math.Abs(v); a != 0 && (a < 1e-6 || a >= 1e21) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// body writes the contents of g without type keyword or outer
// parentheses.
func body(b *strings.Builder, g geofeat.Geometry) error {
	switch t := g.(type) {
	case *geofeat.Point:
		b.WriteString(formatFloat(t.X()))
		b.WriteByte(' ')
		b.WriteString(formatFloat(t.Y()))
	case *geofeat.LineString:
		for i, p := range t.Points() {
			if i > 0 {
				b.WriteString(", ")
			}
			if err := body(b, p); err != nil {
				return err
			}
		}
	case *geofeat.MultiPoint, *geofeat.MultiLineString, *geofeat.Polygon, *geofeat.MultiPolygon:
		for i := 0; i < g.NumGeometries(); i++ {
			if i > 0 {
				b.WriteString(", ")
			}
			c := g.GeometryN(i)
			if c.IsEmpty() {
				b.WriteString(empty)
				continue
			}
			b.WriteByte('(')
			if err := body(b, c); err != nil {
				return err
			}
			b.WriteByte(')')
		}
	case *geofeat.GeometryCollection:
		for i := 0; i < t.NumGeometries(); i++ {
			if i > 0 {
				b.WriteString(", ")
			}
			if err := write(b, t.GeometryN(i)); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("wkt: %w: unsupported geometry %T", geofeat.ErrStructure, g)
	}
	return nil
}
