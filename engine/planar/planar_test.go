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

package planar

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/spatialmodel/geofeat"
	"github.com/spatialmodel/geofeat/encoding/wkt"
)

func read(t *testing.T, s string) geofeat.Geometry {
	t.Helper()
	g, err := wkt.Read(s)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestAreaCentroid(t *testing.T) {
	ctx := context.Background()
	var e Engine
	sq := read(t, "POLYGON((0 0,4 0,4 4,0 4,0 0),(1 1,2 1,2 2,1 2,1 1))")
	a, err := e.Area(ctx, sq)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(a-15) > 1e-9 {
		t.Errorf("area = %g, want 15", a)
	}
	c, err := e.Centroid(ctx, read(t, "POLYGON((0 0,4 0,4 4,0 4,0 0))"))
	if err != nil {
		t.Fatal(err)
	}
	if !c.Equals(geofeat.NewPoint(2, 2)) {
		t.Errorf("centroid = %v", c)
	}
	if _, err := e.Area(ctx, read(t, "LINESTRING(0 0,1 1)")); !errors.Is(err, geofeat.ErrUnavailable) {
		t.Errorf("line area: err = %v", err)
	}
	if _, err := e.Centroid(ctx, read(t, "POINT EMPTY")); !errors.Is(err, geofeat.ErrUnavailable) {
		t.Errorf("empty centroid: err = %v", err)
	}
}

func TestOverlay(t *testing.T) {
	ctx := context.Background()
	var e Engine
	a := read(t, "SRID=4326;POLYGON((0 0,2 0,2 2,0 2,0 0))")
	b := read(t, "POLYGON((1 1,3 1,3 3,1 3,1 1))")
	for op, want := range map[geofeat.OverlayOp]float64{
		geofeat.Intersection:  1,
		geofeat.Difference:    3,
		geofeat.SymDifference: 6,
		geofeat.Union:         7,
	} {
		t.Run(op.String(), func(t *testing.T) {
			g, err := e.Overlay(ctx, op, a, b)
			if err != nil {
				t.Fatal(err)
			}
			if g.SRID() != 4326 {
				t.Errorf("srid = %d", g.SRID())
			}
			for _, r := range g.(*geofeat.Polygon).Components() {
				if !r.IsClosed() {
					t.Errorf("ring %v is not closed", r.Points())
				}
			}
			area, err := e.Area(ctx, g)
			if err != nil {
				t.Fatal(err)
			}
			if math.Abs(area-want) > 1e-9 {
				t.Errorf("area = %g, want %g", area, want)
			}
		})
	}
	if _, err := e.Overlay(ctx, geofeat.Union, a, read(t, "POINT(1 1)")); !errors.Is(err, geofeat.ErrUnavailable) {
		t.Errorf("point overlay: err = %v", err)
	}
}

func TestPredicate(t *testing.T) {
	ctx := context.Background()
	var e Engine
	sq := read(t, "POLYGON((0 0,4 0,4 4,0 4,0 0))")
	tests := []struct {
		p    geofeat.Predicate
		a, b string
		want bool
	}{
		{p: geofeat.Within, a: "POINT(1 1)", b: "POLYGON((0 0,4 0,4 4,0 4,0 0))", want: true},
		{p: geofeat.Within, a: "POINT(0 1)", b: "POLYGON((0 0,4 0,4 4,0 4,0 0))", want: false},
		{p: geofeat.CoveredBy, a: "POINT(0 1)", b: "POLYGON((0 0,4 0,4 4,0 4,0 0))", want: true},
		{p: geofeat.Within, a: "POINT(5 5)", b: "POLYGON((0 0,4 0,4 4,0 4,0 0))", want: false},
		{p: geofeat.Contains, a: "POLYGON((0 0,4 0,4 4,0 4,0 0))", b: "LINESTRING(1 1,2 2)", want: true},
		{p: geofeat.Covers, a: "POLYGON((0 0,4 0,4 4,0 4,0 0))", b: "MULTIPOINT((1 1),(6 6))", want: false},
		{p: geofeat.Intersects, a: "POLYGON((0 0,4 0,4 4,0 4,0 0))", b: "POLYGON((2 2,6 2,6 6,2 6,2 2))", want: true},
		{p: geofeat.Disjoint, a: "POLYGON((0 0,4 0,4 4,0 4,0 0))", b: "POLYGON((5 5,6 5,6 6,5 6,5 5))", want: true},
		{p: geofeat.Intersects, a: "POINT(1 1)", b: "POLYGON((0 0,4 0,4 4,0 4,0 0))", want: true},
	}
	for _, tt := range tests {
		t.Run(tt.p.String()+" "+tt.a+" "+tt.b, func(t *testing.T) {
			got, err := e.Predicate(ctx, tt.p, read(t, tt.a), read(t, tt.b))
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
	if _, err := e.Predicate(ctx, geofeat.Touches, sq, sq); !errors.Is(err, geofeat.ErrUnavailable) {
		t.Errorf("touches: err = %v", err)
	}
}

func TestSimplify(t *testing.T) {
	ctx := context.Background()
	var e Engine
	g, err := e.Simplify(ctx, read(t, "SRID=3857;LINESTRING(0 0,1 0.0001,2 0)"), 0.01, true)
	if err != nil {
		t.Fatal(err)
	}
	if g.NumPoints() != 2 || g.SRID() != 3857 {
		t.Errorf("simplified = %v points, srid %d", g.NumPoints(), g.SRID())
	}
	if _, err := e.Simplify(ctx, read(t, "POINT(1 1)"), 1, true); !errors.Is(err, geofeat.ErrUnavailable) {
		t.Errorf("point: err = %v", err)
	}
}

func TestEqualsExact(t *testing.T) {
	ctx := context.Background()
	var e Engine
	a := read(t, "POLYGON((0 0,4 0,4 4,0 4,0 0))")
	b := read(t, "POLYGON((4 0,4 4,0 4,0 0,4 0))")
	ok, err := e.EqualsExact(ctx, a, b, 1e-9)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Error("rotated ring should be equal")
	}
	ok, err = e.EqualsExact(ctx, read(t, "POINT(1 1)"), read(t, "POINT(1.1 1)"), 0.05)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("points 0.1 apart should differ at tolerance 0.05")
	}
}

func TestConversionRoundTrip(t *testing.T) {
	for _, s := range []string{
		"POINT(1 2)",
		"LINESTRING(0 0,1 1,2 0)",
		"POLYGON((0 0,4 0,4 4,0 4,0 0),(1 1,2 1,2 2,1 2,1 1))",
		"MULTIPOINT((1 2),(3 4))",
		"MULTILINESTRING((0 0,1 1),(2 2,3 3))",
		"MULTIPOLYGON(((0 0,1 0,1 1,0 0)),((5 5,6 5,6 6,5 5)))",
		"GEOMETRYCOLLECTION(POINT(1 2),LINESTRING(0 0,1 1))",
	} {
		g := read(t, s)
		gg, err := toGeom(g)
		if err != nil {
			t.Fatalf("%s: %v", s, err)
		}
		back, err := fromGeom(gg)
		if err != nil {
			t.Fatalf("%s: %v", s, err)
		}
		if !back.Equals(g) {
			t.Errorf("%s: round trip gave %v", s, back)
		}
	}
}
