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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gowkt "github.com/twpayne/go-geom/encoding/wkt"

	"github.com/spatialmodel/geofeat"
)

func TestRoundTrip(t *testing.T) {
	tests := []string{
		"POINT (30 10)",
		"POINT EMPTY",
		"POINT (-1.5 0.000001)",
		"LINESTRING (30 10, 10 30, 40 40)",
		"LINESTRING EMPTY",
		"POLYGON ((30 10, 40 40, 20 40, 10 20, 30 10))",
		"POLYGON ((35 10, 45 45, 15 40, 10 20, 35 10), (20 30, 35 35, 30 20, 20 30))",
		"MULTIPOINT ((10 40), (40 30), (20 20), (30 10))",
		"MULTILINESTRING ((10 10, 20 20, 10 40), (40 40, 30 30, 40 20, 30 10))",
		"MULTIPOLYGON (((30 20, 45 40, 10 40, 30 20)), ((15 5, 40 10, 10 20, 5 10, 15 5)))",
		"MULTIPOLYGON (((40 40, 20 45, 45 30, 40 40)), ((20 35, 10 30, 10 10, 30 5, 45 20, 20 35), (30 20, 20 15, 20 25, 30 20)))",
		"GEOMETRYCOLLECTION (POINT (40 10), LINESTRING (10 10, 20 20, 10 40), POLYGON ((40 40, 20 45, 45 30, 40 40)))",
		"GEOMETRYCOLLECTION (POINT (1 2), GEOMETRYCOLLECTION (MULTIPOINT ((3 4), (5 6)), POINT EMPTY))",
		"GEOMETRYCOLLECTION EMPTY",
	}
	for _, s := range tests {
		t.Run(s, func(t *testing.T) {
			g, err := Read(s)
			require.NoError(t, err)
			out, err := Write(g)
			require.NoError(t, err)
			assert.Equal(t, s, out)
		})
	}
}

func TestReadVariants(t *testing.T) {
	want, err := geofeat.NewLineStringXY(30, 10, 10, 30, 40, 40)
	require.NoError(t, err)
	for _, s := range []string{
		"LINESTRING(30 10,10 30,40 40)",
		"  linestring ( 30 10 ,  10 30, 40\t40 )\n",
		"LineString (30 10, 10 30, 40 40)",
	} {
		g, err := Read(s)
		require.NoError(t, err, s)
		assert.True(t, g.Equals(want), s)
	}

	mp, err := Read("MULTIPOINT (10 40, 40 30)")
	require.NoError(t, err)
	assert.Equal(t, geofeat.TypeMultiPoint, mp.Type())
	assert.Equal(t, 2, mp.NumGeometries())
	assert.True(t, mp.GeometryN(1).Equals(geofeat.NewPoint(40, 30)))

	sci, err := Read("POINT (1e3 -2.5E-2)")
	require.NoError(t, err)
	assert.True(t, sci.Equals(geofeat.NewPoint(1000, -0.025)))
}

func TestExtended(t *testing.T) {
	g, err := Read("SRID=4326;POINT (30 10)")
	require.NoError(t, err)
	assert.Equal(t, 4326, g.SRID())

	s, err := WriteExtended(g)
	require.NoError(t, err)
	assert.Equal(t, "SRID=4326;POINT (30 10)", s)

	s, err = Write(g)
	require.NoError(t, err)
	assert.Equal(t, "POINT (30 10)", s)

	b, err := Codec{Extended: true}.Encode(geofeat.NewPoint(1, 2))
	require.NoError(t, err)
	assert.Equal(t, "POINT (1 2)", string(b))

	g, err = Read("SRID=0;POINT (30 10)")
	require.NoError(t, err)
	assert.Equal(t, 0, g.SRID())
	s, err = WriteExtended(g)
	require.NoError(t, err)
	assert.Equal(t, "POINT (30 10)", s)
}

func TestWriteExponent(t *testing.T) {
	for _, tt := range []struct {
		x, y float64
		want string
	}{
		{1e-300, 2, "POINT (1e-300 2)"},
		{-2.5e-7, 1e21, "POINT (-2.5e-07 1e+21)"},
		{0.000001, 123456789, "POINT (0.000001 123456789)"},
		{0, -0.5, "POINT (0 -0.5)"},
	} {
		s, err := Write(geofeat.NewPoint(tt.x, tt.y))
		require.NoError(t, err)
		assert.Equal(t, tt.want, s)

		g, err := Read(s)
		require.NoError(t, err)
		p := g.(*geofeat.Point)
		assert.Equal(t, tt.x, p.X(), s)
		assert.Equal(t, tt.y, p.Y(), s)
	}
}

func TestAgainstGoGeom(t *testing.T) {
	for _, s := range []string{
		"POINT (30 10)",
		"POINT (1e-300 -2.5)",
		"LINESTRING (30 10, 10 30, 40 40)",
		"POLYGON ((35 10, 45 45, 15 40, 10 20, 35 10), (20 30, 35 35, 30 20, 20 30))",
		"MULTIPOINT ((10 40), (40 30), (20 20), (30 10))",
		"MULTILINESTRING ((10 10, 20 20, 10 40), (40 40, 30 30, 40 20, 30 10))",
		"MULTIPOLYGON (((30 20, 45 40, 10 40, 30 20)), ((15 5, 40 10, 10 20, 5 10, 15 5)))",
		"GEOMETRYCOLLECTION (POINT (40 10), LINESTRING (10 10, 20 20, 10 40))",
	} {
		t.Run(s, func(t *testing.T) {
			g, err := Read(s)
			require.NoError(t, err)
			out, err := Write(g)
			require.NoError(t, err)
			gt, err := gowkt.Unmarshal(out)
			require.NoError(t, err, out)
			back, err := gowkt.Marshal(gt)
			require.NoError(t, err)
			got, err := Read(back)
			require.NoError(t, err, back)
			assert.True(t, g.Equals(got), "%s read back from %s", out, back)
		})
	}
}

func TestMalformed(t *testing.T) {
	for _, s := range []string{
		"",
		"CIRCLE (1 2)",
		"POINT (1)",
		"POINT (1 2 3)",
		"POINT (a b)",
		"POINT (1 2",
		"POINT 1 2",
		"LINESTRING (1 2)",
		"POLYGON ((0 0, 1 1, 1 0, 0 0)",
		"MULTIPOLYGON (((0 0, 1 1, 1 0, 0 0))))",
		"SRID=x;POINT (1 2)",
		"SRID=4326 POINT (1 2)",
		"GEOMETRYCOLLECTION (POINT (1 2), SQUARE (1 2))",
		"LINESTRING ()",
	} {
		t.Run(s, func(t *testing.T) {
			_, err := Read(s)
			require.Error(t, err)
			assert.True(t, errors.Is(err, geofeat.ErrMalformed), "err = %v", err)
		})
	}
}

func TestMaxDepth(t *testing.T) {
	s := "GEOMETRYCOLLECTION (GEOMETRYCOLLECTION (GEOMETRYCOLLECTION (POINT (1 2))))"
	_, err := Codec{MaxDepth: 2}.Decode([]byte(s))
	assert.True(t, errors.Is(err, geofeat.ErrMalformed))
	g, err := Codec{MaxDepth: 3}.Decode([]byte(s))
	require.NoError(t, err)
	p := g.Points()
	require.Len(t, p, 1)
	assert.True(t, p[0].Equals(geofeat.NewPoint(1, 2)))
}
