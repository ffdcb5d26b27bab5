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

import "github.com/spatialmodel/geofeat"

// Codec reads and writes WKT text.
type Codec struct {
	// Extended writes the SRID prefix when the geometry has one.
	Extended bool
	// MaxDepth bounds collection nesting. Zero means DefaultMaxDepth.
	MaxDepth int
}

// Name returns the format name of c, one of "wkt" or "ewkt".
func (c Codec) Name() string {
	if c.Extended {
		return "ewkt"
	}
	return "wkt"
}

func (c Codec) read(s string) (geofeat.Geometry, error) {
	r := reader{format: c.Name(), maxDepth: c.MaxDepth}
	if r.maxDepth <= 0 {
		r.maxDepth = DefaultMaxDepth
	}
	return r.geometry(s, 0)
}

// Decode parses b. Either form is accepted regardless of Extended.
func (c Codec) Decode(b []byte) (geofeat.Geometry, error) {
	return c.read(string(b))
}

// Encode writes g.
func (c Codec) Encode(g geofeat.Geometry) ([]byte, error) {
	var s string
	var err error
	if c.Extended {
		s, err = WriteExtended(g)
	} else {
		s, err = Write(g)
	}
	return []byte(s), err
}
