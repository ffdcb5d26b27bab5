//go:build geos

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

package geos

import (
	"context"
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

func TestEngine(t *testing.T) {
	ctx := context.Background()
	var e Engine
	sq := read(t, "SRID=4326;POLYGON((0 0,4 0,4 4,0 4,0 0))")

	a, err := e.Area(ctx, sq)
	if err != nil {
		t.Fatal(err)
	}
	if a != 16 {
		t.Errorf("area = %g", a)
	}

	c, err := e.Centroid(ctx, sq)
	if err != nil {
		t.Fatal(err)
	}
	if !c.Equals(geofeat.NewPoint(2, 2)) || c.SRID() != 4326 {
		t.Errorf("centroid = %v, srid %d", c, c.SRID())
	}

	u, err := e.Overlay(ctx, geofeat.Union, sq, read(t, "POLYGON((2 2,6 2,6 6,2 6,2 2))"))
	if err != nil {
		t.Fatal(err)
	}
	if u.Area() != 28 {
		t.Errorf("union area = %g", u.Area())
	}

	ok, err := e.Predicate(ctx, geofeat.Touches, sq, read(t, "POLYGON((4 0,8 0,8 4,4 4,4 0))"))
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Error("adjacent squares should touch")
	}

	m, err := e.Relate(ctx, sq, read(t, "POINT(2 2)"))
	if err != nil {
		t.Fatal(err)
	}
	if m != "0F2FF1FF2" {
		t.Errorf("relate = %s", m)
	}

	d, err := e.Project(ctx, read(t, "LINESTRING(0 0,10 0)"), read(t, "POINT(3 5)"))
	if err != nil {
		t.Fatal(err)
	}
	if d != 3 {
		t.Errorf("project = %g", d)
	}

	v, err := e.CheckValidity(ctx, read(t, "POLYGON((0 0,2 2,2 0,0 2,0 0))"))
	if err != nil {
		t.Fatal(err)
	}
	if v.Valid {
		t.Error("bowtie should be invalid")
	}
}
