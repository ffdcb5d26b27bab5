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

// MultiLineString is a holder for multiple related line strings.
type MultiLineString struct {
	collection[*LineString]
}

// NewMultiLineString returns a MultiLineString of lines.
func NewMultiLineString(lines []*LineString) (*MultiLineString, error) {
	c, err := newCollection(lines)
	if err != nil {
		return nil, err
	}
	return &MultiLineString{c}, nil
}

func newMultiLineString(lines []*LineString) *MultiLineString {
	return &MultiLineString{collection[*LineString]{comps: lines}}
}

func (ml *MultiLineString) Type() Type { return TypeMultiLineString }

func (ml *MultiLineString) WithSRID(srid int) Geometry {
	c := *ml
	c.srid = srid
	return &c
}

// IsClosed reports whether every line is closed.
func (ml *MultiLineString) IsClosed() bool {
	if len(ml.comps) == 0 {
		return false
	}
	for _, l := range ml.comps {
		if !l.IsClosed() {
			return false
		}
	}
	return true
}

// Boundary applies the mod-2 rule: an end point belongs to the boundary
// when it ends an odd number of the lines.
func (ml *MultiLineString) Boundary() Geometry {
	var ends []*Point
	var counts []int
	for _, l := range ml.comps {
		if l.IsEmpty() {
			continue
		}
	next:
		for _, e := range []*Point{l.StartPoint(), l.EndPoint()} {
			for i, seen := range ends {
				if seen.Equals(e) {
					counts[i]++
					continue next
				}
			}
			ends = append(ends, e)
			counts = append(counts, 1)
		}
	}
	var b []*Point
	for i, e := range ends {
		if counts[i]%2 == 1 {
			b = append(b, e)
		}
	}
	return newMultiPoint(b)
}

func (ml *MultiLineString) InvertXY() Geometry {
	return &MultiLineString{ml.invertXY()}
}

func (ml *MultiLineString) Equals(g Geometry) bool {
	ml2, ok := g.(*MultiLineString)
	return ok && ml2 != nil && ml.equals(ml2.collection)
}
