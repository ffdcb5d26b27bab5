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

// Package geojson reads and writes geometries as GeoJSON objects.
// Features and feature collections are read for their geometries;
// properties are ignored.
package geojson

import "encoding/json"

// Geometry is the JSON form of a GeoJSON geometry object.
type Geometry struct {
	Type        string      `json:"type"`
	Coordinates interface{} `json:"coordinates,omitempty"`
	Geometries  []*Geometry `json:"geometries,omitempty"`
}

// MarshalJSON writes the "geometries" member of a GeometryCollection
// even when it has no members.
func (g Geometry) MarshalJSON() ([]byte, error) {
	if g.Type == "GeometryCollection" {
		geometries := g.Geometries
		if geometries == nil {
			geometries = []*Geometry{}
		}
		return json.Marshal(struct {
			Type       string      `json:"type"`
			Geometries []*Geometry `json:"geometries"`
		}{g.Type, geometries})
	}
	type plain Geometry
	return json.Marshal(plain(g))
}

// UnsupportedGeometryError is returned for a "type" member this package
// does not read.
type UnsupportedGeometryError struct {
	Type string
}

func (e UnsupportedGeometryError) Error() string {
	return "geojson: unsupported geometry type " + e.Type
}

// DefaultMaxDepth bounds collection nesting.
const DefaultMaxDepth = 64

const formatName = "json"
