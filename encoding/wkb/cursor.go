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

// Package wkb reads and writes geometries in little-endian Well-Known
// Binary and in the extended EWKB form, which adds an optional SRID.
package wkb

import (
	"encoding/binary"
	"math"

	"github.com/spatialmodel/geofeat"
)

// DefaultMaxDepth bounds collection nesting when a Codec sets no limit.
const DefaultMaxDepth = 64

// Flags carried in the high byte of the type word.
const (
	flagZ    = 0x80
	flagM    = 0x40
	flagSRID = 0x20
)

const littleEndian = 1

// cursor reads primitives from a byte slice, failing on short input.
type cursor struct {
	b      []byte
	off    int
	format string
}

func (c *cursor) remaining() int { return len(c.b) - c.off }
func (c *cursor) eof() bool      { return c.off >= len(c.b) }

func (c *cursor) short(n int) error {
	return geofeat.Malformed(c.format, nil, "need %d bytes at offset %d, have %d", n, c.off, c.remaining())
}

func (c *cursor) u8() (byte, error) {
	if c.remaining() < 1 {
		return 0, c.short(1)
	}
	v := c.b[c.off]
	c.off++
	return v, nil
}

func (c *cursor) u32() (uint32, error) {
	if c.remaining() < 4 {
		return 0, c.short(4)
	}
	v := binary.LittleEndian.Uint32(c.b[c.off:])
	c.off += 4
	return v, nil
}

func (c *cursor) f64() (float64, error) {
	if c.remaining() < 8 {
		return 0, c.short(8)
	}
	v := math.Float64frombits(binary.LittleEndian.Uint64(c.b[c.off:]))
	c.off += 8
	return v, nil
}

// coords reads n coordinate pairs.
func (c *cursor) coords(n uint32) ([]*geofeat.Point, error) {
	if uint64(n)*16 > uint64(c.remaining()) {
		return nil, geofeat.Malformed(c.format, nil, "%d coordinates do not fit in %d bytes", n, c.remaining())
	}
	pts := make([]*geofeat.Point, n)
	for i := range pts {
		x, _ := c.f64()
		y, _ := c.f64()
		pts[i] = point(x, y)
	}
	return pts, nil
}

// point reads a NaN pair as the empty point.
func point(x, y float64) *geofeat.Point {
	if math.IsNaN(x) && math.IsNaN(y) {
		return geofeat.EmptyPoint()
	}
	return geofeat.NewPoint(x, y)
}
