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

// Package gogeom converts between geofeat geometries and
// github.com/twpayne/go-geom geometries. Values pass through EWKB, so
// SRIDs are preserved.
package gogeom

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/ewkb"

	"github.com/spatialmodel/geofeat"
	"github.com/spatialmodel/geofeat/encoding/wkb"
)

// ToGeomT converts g to a go-geom geometry.
func ToGeomT(g geofeat.Geometry) (geom.T, error) {
	if p, ok := g.(*geofeat.Point); ok && p.IsEmpty() {
		g = geofeat.NewPoint(math.NaN(), math.NaN()).WithSRID(p.SRID())
	}
	b, err := wkb.EncodeExtended(g)
	if err != nil {
		return nil, err
	}
	t, err := ewkb.Unmarshal(b)
	if err != nil {
		return nil, fmt.Errorf("gogeom: %w", err)
	}
	return t, nil
}

// FromGeomT converts t to a geofeat geometry. Only XY layouts are
// accepted.
func FromGeomT(t geom.T) (geofeat.Geometry, error) {
	if t == nil {
		return nil, fmt.Errorf("gogeom: %w: nil geometry", geofeat.ErrStructure)
	}
	if t.Layout() != geom.XY && t.Layout() != geom.NoLayout {
		return nil, fmt.Errorf("gogeom: %w: layout %v", geofeat.ErrUnsupportedFormat, t.Layout())
	}
	b, err := ewkb.Marshal(t, binary.LittleEndian)
	if err != nil {
		return nil, fmt.Errorf("gogeom: %w", err)
	}
	return wkb.DecodeExtended(b)
}
