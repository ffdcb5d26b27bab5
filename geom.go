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

// Package geofeat holds Simple-Feature geometry objects and functions to
// operate on them. Geometries can be encoded and decoded by the packages
// under encoding, and loaded from sniffed byte streams by package format.
package geofeat

import "strings"

// Version is the version of geofeat.
const Version = "0.1.0"

// Epsilon is the per-ordinate tolerance used when comparing points.
const Epsilon = 1e-9

// Type identifies one of the seven Simple-Feature geometry kinds.
type Type int

// The geometry kinds. The values match the WKB type codes.
const (
	TypePoint Type = iota + 1
	TypeLineString
	TypePolygon
	TypeMultiPoint
	TypeMultiLineString
	TypeMultiPolygon
	TypeGeometryCollection
)

var typeNames = [...]string{
	TypePoint:              "Point",
	TypeLineString:         "LineString",
	TypePolygon:            "Polygon",
	TypeMultiPoint:         "MultiPoint",
	TypeMultiLineString:    "MultiLineString",
	TypeMultiPolygon:       "MultiPolygon",
	TypeGeometryCollection: "GeometryCollection",
}

// Types lists every geometry kind in WKB code order.
var Types = []Type{TypePoint, TypeLineString, TypePolygon, TypeMultiPoint,
	TypeMultiLineString, TypeMultiPolygon, TypeGeometryCollection}

// String returns the canonical name of t, e.g. "MultiPolygon".
func (t Type) String() string {
	if !t.Valid() {
		return "Unknown"
	}
	return typeNames[t]
}

// Valid reports whether t is one of the seven geometry kinds.
func (t Type) Valid() bool { return t >= TypePoint && t <= TypeGeometryCollection }

// WKBCode returns the binary type code of t.
func (t Type) WKBCode() uint32 { return uint32(t) }

// ParseType matches name case-insensitively against the canonical names.
func ParseType(name string) (Type, bool) {
	for _, t := range Types {
		if strings.EqualFold(name, typeNames[t]) {
			return t, true
		}
	}
	return 0, false
}

// Geometry is the interface implemented by every geometry type. All
// aggregate values are derived from the components on each call.
// Geometries are immutable once constructed and may be shared between
// goroutines.
type Geometry interface {
	Type() Type

	// SRID returns the spatial reference identifier, 0 meaning none.
	SRID() int
	// WithSRID returns a copy of the geometry carrying srid.
	WithSRID(srid int) Geometry

	// Bounds returns the bounding box, or nil for an empty geometry.
	Bounds() *Bounds
	IsEmpty() bool
	Dimension() int
	CoordinateDimension() int
	HasZ() bool
	IsMeasured() bool

	// Points returns all coordinates in order.
	Points() []*Point
	NumPoints() int
	IsSimple() bool

	NumGeometries() int
	// GeometryN returns the component at 0-based index i, or nil.
	GeometryN(i int) Geometry

	Area() float64
	// Centroid returns nil for an empty geometry.
	Centroid() *Point
	Length() float64
	GreatCircleLength(radius float64) float64
	HaversineLength() float64
	Envelope() *Polygon
	Boundary() Geometry
	// Explode splits the geometry into 2-point segments. It returns nil
	// for point types.
	Explode() []*LineString

	// StartPoint and EndPoint return nil where not applicable.
	StartPoint() *Point
	EndPoint() *Point
	IsClosed() bool
	IsRing() bool

	// Equals reports structural equality with per-ordinate tolerance
	// Epsilon.
	Equals(g Geometry) bool
	// InvertXY returns a new geometry with the ordinates swapped.
	InvertXY() Geometry
}
