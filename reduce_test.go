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

import "testing"

func TestReduce(t *testing.T) {
	p1, p2 := NewPoint(1, 1), NewPoint(2, 2)
	line := mustLine(t, 0, 0, 1, 1)
	twoPoints, _ := NewGeometryCollection([]Geometry{p1, p2})
	mixed, _ := NewGeometryCollection([]Geometry{p1, line})
	nested, _ := NewGeometryCollection([]Geometry{twoPoints})
	mp, _ := NewMultiPoint([]*Point{p1, p2})

	tests := []struct {
		name     string
		in       []Geometry
		wantType Type
		wantN    int
	}{
		{name: "leaf", in: []Geometry{p1}, wantType: TypePoint, wantN: 1},
		{name: "collection of points", in: []Geometry{twoPoints}, wantType: TypeMultiPoint, wantN: 2},
		{name: "nested", in: []Geometry{nested}, wantType: TypeMultiPoint, wantN: 2},
		{name: "list of points", in: []Geometry{p1, p2}, wantType: TypeMultiPoint, wantN: 2},
		{name: "mixed", in: []Geometry{mixed}, wantType: TypeGeometryCollection, wantN: 2},
		{name: "point and multipoint", in: []Geometry{p1, mp}, wantType: TypeMultiPoint, wantN: 3},
		{name: "one multipoint", in: []Geometry{mp}, wantType: TypeMultiPoint, wantN: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Reduce(tt.in...)
			if !ok {
				t.Fatal("not reduced")
			}
			if got.Type() != tt.wantType {
				t.Errorf("type = %v, want %v", got.Type(), tt.wantType)
			}
			if got.NumGeometries() != tt.wantN {
				t.Errorf("NumGeometries = %d, want %d", got.NumGeometries(), tt.wantN)
			}
		})
	}

	if got, _ := Reduce(twoPoints); !got.Equals(mp) {
		t.Error("collection of two points should reduce to the MultiPoint of both")
	}
	if _, ok := Reduce(); ok {
		t.Error("empty input reduced")
	}
	if _, ok := Reduce(&GeometryCollection{}); ok {
		t.Error("collection without leaves reduced")
	}
	if got, _ := Reduce(p1.WithSRID(4326), p2.WithSRID(4326)); got.SRID() != 4326 {
		t.Errorf("shared SRID lost: %d", got.SRID())
	}
	if got, _ := Reduce(p1.WithSRID(4326), p2); got.SRID() != 0 {
		t.Errorf("mixed SRIDs kept: %d", got.SRID())
	}
}

func TestReduceIdempotent(t *testing.T) {
	mp, _ := NewMultiPoint([]*Point{NewPoint(1, 1), NewPoint(2, 2)})
	once, _ := Reduce(mp)
	twice, _ := Reduce(once)
	if !once.Equals(twice) || !once.Equals(mp) {
		t.Error("Reduce is not idempotent")
	}
}
