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

package geohash

import (
	"errors"
	"strings"
	"testing"

	"github.com/spatialmodel/geofeat"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		lon, lat  float64
		precision float64
		want      string
	}{
		{lon: -5.6, lat: 42.6, want: "ezs42"},
		{lon: 10.40744, lat: 57.64911, precision: 1e-5, want: "u4pruydqq"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got, err := Encode(geofeat.NewPoint(tt.lon, tt.lat), tt.precision)
			if err != nil {
				t.Fatal(err)
			}
			if !strings.HasPrefix(got, tt.want) {
				t.Errorf("Encode = %q, want prefix %q", got, tt.want)
			}
		})
	}
	if _, err := Encode(geofeat.NewPoint(200, 0), 0); !errors.Is(err, geofeat.ErrMalformed) {
		t.Errorf("out of range: err = %v", err)
	}
}

func TestDecode(t *testing.T) {
	c, err := Decode("ezs42")
	if err != nil {
		t.Fatal(err)
	}
	if c.Lat != 42.6 || c.Lon != -5.6 {
		t.Errorf("center = (%g, %g), want (42.6, -5.6)", c.Lat, c.Lon)
	}
	if c.MinLat >= 42.6 || c.MaxLat <= 42.6 || c.MinLon >= -5.6 || c.MaxLon <= -5.6 {
		t.Errorf("cell %+v does not hold the center", c)
	}
	upper, err := Decode("EZS42")
	if err != nil || upper != c {
		t.Errorf("upper case decode = %+v, %v", upper, err)
	}
	for _, bad := range []string{"", "ezs4a", "ezs!2"} {
		if _, err := Decode(bad); !errors.Is(err, geofeat.ErrMalformed) {
			t.Errorf("Decode(%q): err = %v", bad, err)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	pt := geofeat.NewPoint(-5.6, 42.6)
	h, err := Encode(pt, 0)
	if err != nil {
		t.Fatal(err)
	}
	g, err := Read(h, false)
	if err != nil {
		t.Fatal(err)
	}
	if !g.Equals(pt) {
		t.Errorf("round trip of %q gave %v", h, g)
	}
}

func TestGrid(t *testing.T) {
	g, err := Read("ezs42", true)
	if err != nil {
		t.Fatal(err)
	}
	c, _ := Decode("ezs42")
	poly, ok := g.(*geofeat.Polygon)
	if !ok {
		t.Fatalf("got %T, want polygon", g)
	}
	want := []*geofeat.Point{
		geofeat.NewPoint(c.MinLon, c.MaxLat),
		geofeat.NewPoint(c.MaxLon, c.MaxLat),
		geofeat.NewPoint(c.MaxLon, c.MinLat),
		geofeat.NewPoint(c.MinLon, c.MinLat),
		geofeat.NewPoint(c.MinLon, c.MaxLat),
	}
	got := poly.ExteriorRing().Points()
	for i := range want {
		if !got[i].Equals(want[i]) {
			t.Errorf("corner %d = (%g %g)", i, got[i].X(), got[i].Y())
		}
	}
}

func TestWrite(t *testing.T) {
	if s, err := Write(geofeat.EmptyPoint(), 0); err != nil || s != "" {
		t.Errorf("empty = %q, %v", s, err)
	}
	l, err := geofeat.NewLineStringXY(-5.6, 42.6, -5.601, 42.601)
	if err != nil {
		t.Fatal(err)
	}
	h, err := Write(l, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(h, "ezs42") {
		t.Errorf("Write = %q, want prefix ezs42", h)
	}
	corner, _ := Encode(geofeat.NewPoint(-5.6, 42.6), EnvelopePrecision)
	if !strings.HasPrefix(corner, h) {
		t.Errorf("%q is not a prefix of corner hash %q", h, corner)
	}
}

func TestAdjacent(t *testing.T) {
	c, _ := Decode("ezs42")
	for _, tt := range []struct {
		dir, back Direction
		check     func(n Cell) bool
	}{
		{East, West, func(n Cell) bool { return n.MinLon == c.MaxLon && n.MinLat == c.MinLat }},
		{West, East, func(n Cell) bool { return n.MaxLon == c.MinLon && n.MinLat == c.MinLat }},
		{North, South, func(n Cell) bool { return n.MinLat == c.MaxLat && n.MinLon == c.MinLon }},
		{South, North, func(n Cell) bool { return n.MaxLat == c.MinLat && n.MinLon == c.MinLon }},
	} {
		h, err := Adjacent("ezs42", tt.dir)
		if err != nil {
			t.Fatal(err)
		}
		n, err := Decode(h)
		if err != nil {
			t.Fatal(err)
		}
		if !tt.check(n) {
			t.Errorf("%d: %q is not adjacent to ezs42", tt.dir, h)
		}
		if back, _ := Adjacent(h, tt.back); back != "ezs42" {
			t.Errorf("%d: going back from %q gave %q", tt.dir, h, back)
		}
	}
	ns, err := Neighbors("ezs42")
	if err != nil {
		t.Fatal(err)
	}
	seen := map[string]bool{"ezs42": true}
	for _, h := range ns {
		if len(h) != 5 || seen[h] {
			t.Errorf("bad neighbor %q in %v", h, ns)
		}
		seen[h] = true
	}
	if _, err := Adjacent("ezs4a", North); !errors.Is(err, geofeat.ErrMalformed) {
		t.Errorf("invalid hash: err = %v", err)
	}
}
