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

package format

import (
	"encoding/hex"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spatialmodel/geofeat"
)

func TestDetect(t *testing.T) {
	bin, _ := hex.DecodeString("01010000000000000000003e400000000000002440")
	ebin, _ := hex.DecodeString("0101000020e61000000000000000003e400000000000002440")
	tests := []struct {
		name string
		data string
		want Detection
	}{
		{name: "wkb", data: string(bin), want: Detection{Format: "wkb"}},
		{name: "ewkb", data: string(ebin), want: Detection{Format: "ewkb"}},
		{name: "hex wkb", data: "01010000000000000000003e400000000000002440", want: Detection{Format: "wkb", Hex: true}},
		{name: "hex ewkb", data: "0101000020E61000000000000000003E400000000000002440", want: Detection{Format: "ewkb", Hex: true}},
		{name: "hex ewkb low flag", data: "0101000001e61000000000000000003e400000000000002440", want: Detection{Format: "ewkb", Hex: true}},
		{name: "json", data: `{"type":"Point"}`, want: Detection{Format: "json"}},
		{name: "ewkt", data: "SRID=4326;POINT(1 2)", want: Detection{Format: "ewkt"}},
		{name: "wkt", data: "POINT(1 2)", want: Detection{Format: "wkt"}},
		{name: "wkt collection", data: "GEOMETRYCOLLECTION EMPTY", want: Detection{Format: "wkt"}},
		{name: "leading whitespace", data: " \n\tLINESTRING(1 2, 3 4)", want: Detection{Format: "wkt"}},
		{name: "kml", data: `<?xml version="1.0"?><kml><Placemark/></kml>`, want: Detection{Format: "kml"}},
		{name: "gpx", data: `<gpx version="1.1"><wpt/></gpx>`, want: Detection{Format: "gpx"}},
		{name: "georss", data: `<feed xmlns:georss="http://www.georss.org/georss">`, want: Detection{Format: "georss"}},
		{name: "geohash", data: "ezs42", want: Detection{Format: "geohash"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Detect([]byte(tt.data))
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
	for _, s := range []string{"", "   ", "<html></html>", "##", "Ezs42"} {
		_, ok := Detect([]byte(s))
		assert.False(t, ok, "%q detected", s)
	}
}

func TestLoad(t *testing.T) {
	r := NewRegistry(0)
	want := geofeat.NewPoint(30, 10)
	for _, in := range []interface{}{
		"POINT (30 10)",
		"01010000000000000000003e400000000000002440",
		[]byte(`{"type":"Point","coordinates":[30,10]}`),
		want,
	} {
		g, err := r.Load(in, "")
		require.NoError(t, err)
		assert.True(t, g.Equals(want), "%v", in)
	}

	g, err := r.Load("SRID=4326;POINT (30 10)", "")
	require.NoError(t, err)
	assert.Equal(t, 4326, g.SRID())

	g, err = r.Load("0101000001e61000000000000000003e400000000000002440", "")
	require.NoError(t, err)
	assert.Equal(t, 4326, g.SRID())
	assert.True(t, g.Equals(want))

	g, err = r.Load("01010000000000000000003e400000000000002440", "hexwkb")
	require.NoError(t, err)
	assert.True(t, g.Equals(want))

	g, err = r.Load("", "")
	assert.NoError(t, err)
	assert.Nil(t, g)

	g, err = r.Load([]string{"POINT (1 2)", "POINT (3 4)"}, "wkt")
	require.NoError(t, err)
	assert.Equal(t, geofeat.TypeMultiPoint, g.Type())

	g, err = r.Load([]string{"POINT (1 2)", "LINESTRING (3 4, 5 6)"}, "")
	require.NoError(t, err)
	assert.Equal(t, geofeat.TypeGeometryCollection, g.Type())

	g, err = r.Load([]string{"", " "}, "")
	assert.NoError(t, err)
	assert.Nil(t, g)
}

func TestLoadErrors(t *testing.T) {
	r := NewRegistry(0)
	_, err := r.Load("<kml><Placemark/></kml>", "")
	assert.True(t, errors.Is(err, geofeat.ErrUnsupportedFormat), "kml: %v", err)

	_, err = r.Load("1 2", "google_geocode")
	assert.True(t, errors.Is(err, geofeat.ErrUnsupportedFormat))

	_, err = r.Load("POINT (1 2)", "shapefile")
	assert.True(t, errors.Is(err, geofeat.ErrUnsupportedFormat))

	_, err = r.Load("##", "")
	assert.True(t, errors.Is(err, geofeat.ErrUnsupportedFormat))

	_, err = r.Load("POINT (1", "")
	assert.True(t, errors.Is(err, geofeat.ErrMalformed))

	_, err = r.Load(42, "")
	assert.True(t, errors.Is(err, geofeat.ErrUnsupportedFormat))

	_, err = r.Load([]string{"POINT (1 2)", "POINT (x y)"}, "")
	assert.True(t, errors.Is(err, geofeat.ErrMalformed))
}

func TestWrite(t *testing.T) {
	r := NewRegistry(0)
	pt := geofeat.NewPoint(30, 10)
	for _, tt := range []struct{ name, want string }{
		{"wkt", "POINT (30 10)"},
		{"WKT", "POINT (30 10)"},
		{"hexwkb", "01010000000000000000003e400000000000002440"},
		{"json", `{"type":"Point","coordinates":[30,10]}`},
	} {
		b, err := r.Write(pt, tt.name)
		require.NoError(t, err)
		assert.Equal(t, tt.want, string(b))
	}
	b, err := r.Write(pt.WithSRID(4326), "ewkt")
	require.NoError(t, err)
	assert.Equal(t, "SRID=4326;POINT (30 10)", string(b))

	b, err = r.Write(pt.WithSRID(4326), "hexwkb")
	require.NoError(t, err)
	assert.Equal(t, "01010000000000000000003e400000000000002440", string(b))
	b, err = r.Write(pt.WithSRID(4326), "hexewkb")
	require.NoError(t, err)
	assert.Equal(t, "0101000020e61000000000000000003e400000000000002440", string(b))
	b, err = r.Write(pt, "hexewkb")
	require.NoError(t, err)
	assert.Equal(t, "01010000000000000000003e400000000000002440", string(b))

	_, err = r.Write(pt, "gpx")
	assert.True(t, errors.Is(err, geofeat.ErrUnsupportedFormat))
	assert.Contains(t, r.Names(), "geohash")
}
