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

package wkb

import (
	"encoding/hex"
	"strings"

	"github.com/spatialmodel/geofeat"
)

// Codec reads and writes WKB. The zero value reads and writes base
// binary WKB.
type Codec struct {
	// Hex selects hexadecimal text instead of raw bytes. Output is lower
	// case; input may use either case.
	Hex bool
	// Extended selects EWKB: the SRID is read into the geometry and
	// written when present.
	Extended bool
	// MaxDepth bounds collection nesting. Zero means DefaultMaxDepth.
	MaxDepth int
}

// Name returns the format name of c, one of "wkb" or "ewkb".
func (c Codec) Name() string {
	if c.Extended {
		return "ewkb"
	}
	return "wkb"
}

// Decode reads a geometry from b.
func (c Codec) Decode(b []byte) (geofeat.Geometry, error) {
	if c.Hex {
		raw, err := hex.DecodeString(strings.TrimSpace(string(b)))
		if err != nil {
			return nil, geofeat.Malformed(c.Name(), err, "invalid hexadecimal")
		}
		b = raw
	}
	if len(b) == 0 {
		return nil, geofeat.Malformed(c.Name(), nil, "empty input")
	}
	d := decoder{
		c:        &cursor{b: b, format: c.Name()},
		maxDepth: c.MaxDepth,
		extended: c.Extended,
	}
	if d.maxDepth <= 0 {
		d.maxDepth = DefaultMaxDepth
	}
	g, err := d.geometry(0)
	if err != nil {
		return nil, err
	}
	if !d.c.eof() {
		return nil, geofeat.Malformed(c.Name(), nil, "%d trailing bytes", d.c.remaining())
	}
	return g, nil
}

// Encode writes g.
func (c Codec) Encode(g geofeat.Geometry) ([]byte, error) {
	b, err := appendGeometry(nil, g, true, c.Extended)
	if err != nil {
		return nil, err
	}
	if c.Hex {
		return []byte(hex.EncodeToString(b)), nil
	}
	return b, nil
}
