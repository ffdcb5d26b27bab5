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
	"github.com/tidwall/gjson"

	"github.com/spatialmodel/geofeat"
)

// Codec reads and writes GeoJSON.
type Codec struct {
	// MaxDepth bounds collection nesting. Zero means DefaultMaxDepth.
	MaxDepth int
}

func (c Codec) Decode(data []byte) (geofeat.Geometry, error) {
	if !gjson.ValidBytes(data) {
		return nil, malformed("invalid JSON")
	}
	d := decoder{maxDepth: c.MaxDepth}
	if d.maxDepth <= 0 {
		d.maxDepth = DefaultMaxDepth
	}
	return d.object(gjson.ParseBytes(data), 0)
}

func (c Codec) Encode(g geofeat.Geometry) ([]byte, error) { return Encode(g) }
