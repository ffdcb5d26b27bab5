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

import "github.com/spatialmodel/geofeat"

// Codec reads and writes geohash strings.
type Codec struct {
	// Precision is passed to Write; <= 0 derives it from the input.
	Precision float64
	// AsGrid decodes hashes into cell polygons instead of center points.
	AsGrid bool
}

func (c Codec) Decode(b []byte) (geofeat.Geometry, error) {
	return Read(string(b), c.AsGrid)
}

func (c Codec) Encode(g geofeat.Geometry) ([]byte, error) {
	s, err := Write(g, c.Precision)
	return []byte(s), err
}
