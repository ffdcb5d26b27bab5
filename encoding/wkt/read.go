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

// Package wkt reads and writes geometries in Well-Known Text and in the
// extended EWKT form, which prefixes the text with "SRID=<n>;".
package wkt

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/spatialmodel/geofeat"
)

// DefaultMaxDepth bounds collection nesting when no limit is set.
const DefaultMaxDepth = 64

const empty = "EMPTY"

type reader struct {
	format   string
	maxDepth int
}

// Read parses a WKT or EWKT geometry. An SRID prefix is stamped on the
// result.
func Read(s string) (geofeat.Geometry, error) {
	return Codec{}.read(s)
}

func malformed(format string, cause error, reason string, a ...interface{}) error {
	return geofeat.Malformed(format, cause, reason, a...)
}

func (r reader) geometry(s string, depth int) (geofeat.Geometry, error) {
	if depth > r.maxDepth {
		return nil, malformed(r.format, nil, "nesting deeper than %d", r.maxDepth)
	}
	s = strings.TrimSpace(s)
	srid := 0
	if len(s) >= 5 && strings.EqualFold(s[:5], "SRID=") {
		i := strings.IndexByte(s, ';')
		if i < 0 {
			return nil, malformed(r.format, nil, "SRID prefix without ';'")
		}
		v, err := strconv.Atoi(strings.TrimSpace(s[5:i]))
		if err != nil {
			return nil, malformed(r.format, err, "invalid SRID")
		}
		srid, s = v, strings.TrimSpace(s[i+1:])
	}
	s = normalize(s)

	kw := s[:len(s)-len(strings.TrimLeftFunc(s, unicode.IsLetter))]
	typ, ok := geofeat.ParseType(kw)
	if !ok {
		if kw == "" {
			return nil, malformed(r.format, nil, "missing geometry type")
		}
		return nil, malformed(r.format, nil, "unknown geometry type %q", kw)
	}
	data := strings.TrimSpace(s[len(kw):])
	if !strings.EqualFold(data, empty) {
		if !strings.HasPrefix(data, "(") {
			return nil, malformed(r.format, nil, "%v: expected '(' or EMPTY", typ)
		}
		if !balanced(data) {
			return nil, malformed(r.format, nil, "unbalanced parentheses")
		}
	}
	g, err := r.parse(typ, data, depth)
	if err != nil {
		return nil, err
	}
	if srid != 0 {
		g = g.WithSRID(srid)
	}
	return g, nil
}

func (r reader) parse(typ geofeat.Type, data string, depth int) (geofeat.Geometry, error) {
	switch typ {
	case geofeat.TypePoint:
		return r.point(data)
	case geofeat.TypeLineString:
		return r.lineString(data)
	case geofeat.TypePolygon:
		return r.polygon(data)
	case geofeat.TypeMultiPoint:
		parts, err := r.parts(data)
		if err != nil {
			return nil, err
		}
		pts := make([]*geofeat.Point, len(parts))
		for i, p := range parts {
			if !strings.HasPrefix(p, "(") && !strings.EqualFold(p, empty) {
				p = "(" + p + ")"
			}
			if pts[i], err = r.point(p); err != nil {
				return nil, err
			}
		}
		return geofeat.NewMultiPoint(pts)
	case geofeat.TypeMultiLineString:
		parts, err := r.parts(data)
		if err != nil {
			return nil, err
		}
		ls := make([]*geofeat.LineString, len(parts))
		for i, p := range parts {
			if ls[i], err = r.lineString(p); err != nil {
				return nil, err
			}
		}
		return geofeat.NewMultiLineString(ls)
	case geofeat.TypeMultiPolygon:
		parts, err := r.parts(data)
		if err != nil {
			return nil, err
		}
		ps := make([]*geofeat.Polygon, len(parts))
		for i, p := range parts {
			if ps[i], err = r.polygon(p); err != nil {
				return nil, err
			}
		}
		return geofeat.NewMultiPolygon(ps)
	default:
		parts, err := r.parts(data)
		if err != nil {
			return nil, err
		}
		gs := make([]geofeat.Geometry, len(parts))
		for i, p := range parts {
			if gs[i], err = r.geometry(p, depth+1); err != nil {
				return nil, err
			}
		}
		return geofeat.NewGeometryCollection(gs)
	}
}

// parts strips one level of parentheses from data and splits the
// contents at top-level commas. EMPTY gives no parts.
func (r reader) parts(data string) ([]string, error) {
	if strings.EqualFold(data, empty) {
		return nil, nil
	}
	inner, err := r.trimParens(data)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(inner) == "" {
		return nil, malformed(r.format, nil, "empty parentheses")
	}
	return splitTop(inner), nil
}

func (r reader) trimParens(data string) (string, error) {
	data = strings.TrimSpace(data)
	if len(data) < 2 || data[0] != '(' || data[len(data)-1] != ')' {
		return "", malformed(r.format, nil, "expected parenthesized list, got %q", data)
	}
	return data[1 : len(data)-1], nil
}

func (r reader) point(data string) (*geofeat.Point, error) {
	if strings.EqualFold(data, empty) {
		return geofeat.EmptyPoint(), nil
	}
	inner, err := r.trimParens(data)
	if err != nil {
		return nil, err
	}
	if strings.EqualFold(strings.TrimSpace(inner), empty) {
		return geofeat.EmptyPoint(), nil
	}
	return r.coord(inner)
}

func (r reader) coord(s string) (*geofeat.Point, error) {
	f := strings.Fields(s)
	if len(f) != 2 {
		return nil, malformed(r.format, nil, "coordinate %q must have 2 ordinates", s)
	}
	var xy [2]float64
	for i, v := range f {
		n, err := strconv.ParseFloat(v, 64)
		if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
			return nil, malformed(r.format, err, "invalid ordinate %q", v)
		}
		xy[i] = n
	}
	return geofeat.NewPoint(xy[0], xy[1]), nil
}

func (r reader) lineString(data string) (*geofeat.LineString, error) {
	parts, err := r.parts(data)
	if err != nil {
		return nil, err
	}
	pts := make([]*geofeat.Point, len(parts))
	for i, p := range parts {
		if pts[i], err = r.coord(p); err != nil {
			return nil, err
		}
	}
	l, err := geofeat.NewLineString(pts)
	if err != nil {
		return nil, malformed(r.format, err, "line string")
	}
	return l, nil
}

func (r reader) polygon(data string) (*geofeat.Polygon, error) {
	parts, err := r.parts(data)
	if err != nil {
		return nil, err
	}
	rings := make([]*geofeat.LineString, len(parts))
	for i, p := range parts {
		if rings[i], err = r.lineString(p); err != nil {
			return nil, err
		}
	}
	return geofeat.NewPolygon(rings)
}

// normalize removes whitespace next to commas and parentheses and
// collapses other runs of whitespace to one space.
func normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	var last rune
	space := false
	for _, c := range s {
		if unicode.IsSpace(c) {
			space = true
			continue
		}
		if space && last != 0 && !isDelim(c) && !isDelim(last) {
			b.WriteByte(' ')
		}
		space = false
		b.WriteRune(c)
		last = c
	}
	return b.String()
}

func isDelim(c rune) bool { return c == ',' || c == '(' || c == ')' }

func balanced(s string) bool {
	depth := 0
	for _, c := range s {
		switch c {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return false
			}
		}
	}
	return depth == 0
}

// splitTop splits s at commas outside parentheses.
func splitTop(s string) []string {
	var parts []string
	depth, start := 0, 0
	for i, c := range s {
		switch c {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, strings.TrimSpace(s[start:i]))
				start = i + 1
			}
		}
	}
	return append(parts, strings.TrimSpace(s[start:]))
}
