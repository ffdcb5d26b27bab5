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

package gogeom

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"

	"github.com/spatialmodel/geofeat"
	"github.com/spatialmodel/geofeat/encoding/wkt"
)

func TestRoundTrip(t *testing.T) {
	for _, s := range []string{
		"POINT(1 2)",
		"SRID=4326;LINESTRING(0 0,1 1,2 0)",
		"POLYGON((0 0,4 0,4 4,0 4,0 0),(1 1,2 1,2 2,1 2,1 1))",
		"MULTIPOINT((1 2),(3 4))",
		"SRID=3857;MULTILINESTRING((0 0,1 1),(2 2,3 3))",
		"MULTIPOLYGON(((0 0,1 0,1 1,0 0)),((5 5,6 5,6 6,5 5)))",
		"GEOMETRYCOLLECTION(POINT(1 2),LINESTRING(0 0,1 1))",
	} {
		t.Run(s, func(t *testing.T) {
			g, err := wkt.Read(s)
			require.NoError(t, err)
			gt, err := ToGeomT(g)
			require.NoError(t, err)
			assert.Equal(t, g.SRID(), gt.SRID())
			back, err := FromGeomT(gt)
			require.NoError(t, err)
			assert.True(t, back.Equals(g), "got %v", back)
			assert.Equal(t, g.SRID(), back.SRID())
		})
	}
}

func TestFromGeomT(t *testing.T) {
	p := geom.NewPointFlat(geom.XY, []float64{3, 4}).SetSRID(4326)
	g, err := FromGeomT(p)
	require.NoError(t, err)
	assert.True(t, g.Equals(geofeat.NewPoint(3, 4)))
	assert.Equal(t, 4326, g.SRID())

	_, err = FromGeomT(geom.NewPointFlat(geom.XYZ, []float64{1, 2, 3}))
	assert.True(t, errors.Is(err, geofeat.ErrUnsupportedFormat))

	_, err = FromGeomT(nil)
	assert.True(t, errors.Is(err, geofeat.ErrStructure))
}

func TestEmptyPoint(t *testing.T) {
	gt, err := ToGeomT(geofeat.EmptyPoint())
	require.NoError(t, err)
	back, err := FromGeomT(gt)
	require.NoError(t, err)
	assert.True(t, back.IsEmpty())
	assert.Equal(t, geofeat.TypePoint, back.Type())
}
