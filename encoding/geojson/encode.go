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

package geojson

import (
	"encoding/json"
	"fmt"

	"github.com/spatialmodel/geofeat"
)

func pointCoordinates(p *geofeat.Point) []float64 {
	if p.IsEmpty() {
		return []float64{}
	}
	return []float64{p.X(), p.Y()}
}

func pointsCoordinates(points []*geofeat.Point) [][]float64 {
	coordinates := make([][]float64, len(points))
	for i, p := range points {
		coordinates[i] = pointCoordinates(p)
	}
	return coordinates
}

func ringsCoordinates(rings []*geofeat.LineString) [][][]float64 {
	coordinates := make([][][]float64, len(rings))
	for i, r := range rings {
		coordinates[i] = pointsCoordinates(r.Points())
	}
	return coordinates
}

// ToGeoJSON converts g into its GeoJSON object.
func ToGeoJSON(g geofeat.Geometry) (*Geometry, error) {
	switch t := g.(type) {
	case *geofeat.Point:
		return &Geometry{Type: "Point", Coordinates: pointCoordinates(t)}, nil
	case *geofeat.LineString:
		return &Geometry{Type: "LineString", Coordinates: pointsCoordinates(t.Points())}, nil
	case *geofeat.Polygon:
		return &Geometry{Type: "Polygon", Coordinates: ringsCoordinates(t.Components())}, nil
	case *geofeat.MultiPoint:
		return &Geometry{Type: "MultiPoint", Coordinates: pointsCoordinates(t.Components())}, nil
	case *geofeat.MultiLineString:
		return &Geometry{Type: "MultiLineString", Coordinates: ringsCoordinates(t.Components())}, nil
	case *geofeat.MultiPolygon:
		polys := t.Components()
		coordinates := make([][][][]float64, len(polys))
		for i, p := range polys {
			coordinates[i] = ringsCoordinates(p.Components())
		}
		return &Geometry{Type: "MultiPolygon", Coordinates: coordinates}, nil
	case *geofeat.GeometryCollection:
		o := &Geometry{Type: "GeometryCollection", Geometries: []*Geometry{}}
		for _, c := range t.Components() {
			cj, err := ToGeoJSON(c)
			if err != nil {
				return nil, err
			}
			o.Geometries = append(o.Geometries, cj)
		}
		return o, nil
	default:
		return nil, fmt.Errorf("geojson: %w: unsupported geometry %T", geofeat.ErrStructure, g)
	}
}

// Encode returns the GeoJSON encoding of g.
func Encode(g geofeat.Geometry) ([]byte, error) {
	object, err := ToGeoJSON(g)
	if err != nil {
		return nil, err
	}
	return json.Marshal(object)
}
