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

package postgis

import (
	"context"
	"math"
	"testing"

	"github.com/spatialmodel/geofeat"
	"github.com/spatialmodel/geofeat/encoding/wkt"
	testdb "github.com/spatialmodel/geofeat/internal/postgis"
)

func read(t *testing.T, s string) geofeat.Geometry {
	t.Helper()
	g, err := wkt.Read(s)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestEngine(t *testing.T) {
	ctx := context.Background()
	url := testdb.SetupTestDB(ctx, t)
	e, err := Open(ctx, url)
	if err != nil {
		t.Fatal(err)
	}
	defer e.Close()

	sq := read(t, "SRID=4326;POLYGON((0 0,4 0,4 4,0 4,0 0))")

	t.Run("area", func(t *testing.T) {
		a, err := e.Area(ctx, sq)
		if err != nil {
			t.Fatal(err)
		}
		if a != 16 {
			t.Errorf("area = %g", a)
		}
	})
	t.Run("centroid", func(t *testing.T) {
		c, err := e.Centroid(ctx, sq)
		if err != nil {
			t.Fatal(err)
		}
		if !c.Equals(geofeat.NewPoint(2, 2)) || c.SRID() != 4326 {
			t.Errorf("centroid = %v srid %d", c, c.SRID())
		}
	})
	t.Run("boundary", func(t *testing.T) {
		b, err := e.Boundary(ctx, sq)
		if err != nil {
			t.Fatal(err)
		}
		if b.Type() != geofeat.TypeLineString || b.Length() != 16 {
			t.Errorf("boundary = %v, length %g", b.Type(), b.Length())
		}
	})
	t.Run("overlay", func(t *testing.T) {
		g, err := e.Overlay(ctx, geofeat.Intersection, sq, read(t, "SRID=4326;POLYGON((2 2,6 2,6 6,2 6,2 2))"))
		if err != nil {
			t.Fatal(err)
		}
		if g.Area() != 4 {
			t.Errorf("intersection area = %g", g.Area())
		}
	})
	t.Run("predicate", func(t *testing.T) {
		ok, err := e.Predicate(ctx, geofeat.Contains, sq, read(t, "SRID=4326;POINT(1 1)"))
		if err != nil {
			t.Fatal(err)
		}
		if !ok {
			t.Error("square should contain (1 1)")
		}
	})
	t.Run("relate", func(t *testing.T) {
		m, err := e.Relate(ctx, sq, read(t, "SRID=4326;POINT(10 10)"))
		if err != nil {
			t.Fatal(err)
		}
		if ok, _ := geofeat.RelatePattern(m, "FF*FF****"); !ok {
			t.Errorf("relate = %s, want disjoint", m)
		}
	})
	t.Run("distance", func(t *testing.T) {
		d, err := e.Distance(ctx, read(t, "POINT(0 0)"), read(t, "POINT(3 4)"))
		if err != nil {
			t.Fatal(err)
		}
		if d != 5 {
			t.Errorf("distance = %g", d)
		}
	})
	t.Run("project", func(t *testing.T) {
		d, err := e.Project(ctx, read(t, "LINESTRING(0 0,10 0)"), read(t, "POINT(3 5)"))
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(d-3) > 1e-9 {
			t.Errorf("project = %g", d)
		}
	})
	t.Run("simplify", func(t *testing.T) {
		g, err := e.Simplify(ctx, read(t, "LINESTRING(0 0,1 0.0001,2 0)"), 0.01, true)
		if err != nil {
			t.Fatal(err)
		}
		if g.NumPoints() != 2 {
			t.Errorf("simplified to %d points", g.NumPoints())
		}
	})
	t.Run("validity", func(t *testing.T) {
		v, err := e.CheckValidity(ctx, read(t, "POLYGON((0 0,2 2,2 0,0 2,0 0))"))
		if err != nil {
			t.Fatal(err)
		}
		if v.Valid || v.Reason == "" || v.Location == nil {
			t.Errorf("bowtie validity = %+v", v)
		}
	})
	t.Run("empty point", func(t *testing.T) {
		g, err := e.ConvexHull(ctx, geofeat.EmptyPoint())
		if err != nil {
			t.Fatal(err)
		}
		if !g.IsEmpty() {
			t.Errorf("hull of empty point = %v", g)
		}
	})
}
