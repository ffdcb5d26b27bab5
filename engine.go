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

package geofeat

import (
	"context"
	"fmt"
)

// Predicate names a spatial relationship between two geometries.
type Predicate int

// The spatial predicates an Engine may evaluate.
const (
	Disjoint Predicate = iota
	Touches
	Intersects
	Crosses
	Within
	Contains
	Overlaps
	Covers
	CoveredBy
	Equal
)

var predicateNames = [...]string{"disjoint", "touches", "intersects", "crosses",
	"within", "contains", "overlaps", "covers", "coveredby", "equals"}

func (p Predicate) String() string {
	if p < 0 || int(p) >= len(predicateNames) {
		return fmt.Sprintf("Predicate(%d)", int(p))
	}
	return predicateNames[p]
}

// ParsePredicate returns the predicate with the given lower-case name.
func ParsePredicate(name string) (Predicate, error) {
	for i, n := range predicateNames {
		if n == name {
			return Predicate(i), nil
		}
	}
	return 0, fmt.Errorf("geofeat: unknown predicate %q", name)
}

// OverlayOp names a set-theoretic overlay operation.
type OverlayOp int

// The overlay operations.
const (
	Intersection OverlayOp = iota
	Difference
	SymDifference
	Union
)

var overlayNames = [...]string{"intersection", "difference", "symdifference", "union"}

func (op OverlayOp) String() string {
	if op < 0 || int(op) >= len(overlayNames) {
		return fmt.Sprintf("OverlayOp(%d)", int(op))
	}
	return overlayNames[op]
}

// ParseOverlayOp returns the overlay operation with the given name.
func ParseOverlayOp(name string) (OverlayOp, error) {
	for i, n := range overlayNames {
		if n == name {
			return OverlayOp(i), nil
		}
	}
	return 0, fmt.Errorf("geofeat: unknown overlay operation %q", name)
}

// Validity is the result of a validity check.
type Validity struct {
	Valid bool
	// Reason and Location describe the first problem found, if any.
	Reason   string
	Location Geometry
}

// Engine is a native geometry engine that can evaluate operations the
// core does not implement. Implementations return ErrUnavailable for
// operations or operand types they do not support.
type Engine interface {
	Area(ctx context.Context, g Geometry) (float64, error)
	Centroid(ctx context.Context, g Geometry) (Geometry, error)
	Boundary(ctx context.Context, g Geometry) (Geometry, error)
	Buffer(ctx context.Context, g Geometry, distance float64) (Geometry, error)
	ConvexHull(ctx context.Context, g Geometry) (Geometry, error)
	Simplify(ctx context.Context, g Geometry, tolerance float64, preserveTopology bool) (Geometry, error)
	Overlay(ctx context.Context, op OverlayOp, a, b Geometry) (Geometry, error)
	Predicate(ctx context.Context, p Predicate, a, b Geometry) (bool, error)
	// Relate returns the nine-character DE-9IM intersection matrix.
	Relate(ctx context.Context, a, b Geometry) (string, error)
	Distance(ctx context.Context, a, b Geometry) (float64, error)
	HausdorffDistance(ctx context.Context, a, b Geometry) (float64, error)
	// Project returns the distance along line of the point on it nearest
	// to pt.
	Project(ctx context.Context, line, pt Geometry) (float64, error)
	EqualsExact(ctx context.Context, a, b Geometry, tolerance float64) (bool, error)
	CheckValidity(ctx context.Context, g Geometry) (Validity, error)
}

// Unavailable is an Engine that supports nothing. Embed it to implement
// a partial engine.
type Unavailable struct{}

var _ Engine = Unavailable{}

func (Unavailable) Area(context.Context, Geometry) (float64, error) {
	return 0, ErrUnavailable
}

func (Unavailable) Centroid(context.Context, Geometry) (Geometry, error) {
	return nil, ErrUnavailable
}

func (Unavailable) Boundary(context.Context, Geometry) (Geometry, error) {
	return nil, ErrUnavailable
}

func (Unavailable) Buffer(context.Context, Geometry, float64) (Geometry, error) {
	return nil, ErrUnavailable
}

func (Unavailable) ConvexHull(context.Context, Geometry) (Geometry, error) {
	return nil, ErrUnavailable
}

func (Unavailable) Simplify(context.Context, Geometry, float64, bool) (Geometry, error) {
	return nil, ErrUnavailable
}

func (Unavailable) Overlay(context.Context, OverlayOp, Geometry, Geometry) (Geometry, error) {
	return nil, ErrUnavailable
}

func (Unavailable) Predicate(context.Context, Predicate, Geometry, Geometry) (bool, error) {
	return false, ErrUnavailable
}

func (Unavailable) Relate(context.Context, Geometry, Geometry) (string, error) {
	return "", ErrUnavailable
}

func (Unavailable) Distance(context.Context, Geometry, Geometry) (float64, error) {
	return 0, ErrUnavailable
}

func (Unavailable) HausdorffDistance(context.Context, Geometry, Geometry) (float64, error) {
	return 0, ErrUnavailable
}

func (Unavailable) Project(context.Context, Geometry, Geometry) (float64, error) {
	return 0, ErrUnavailable
}

func (Unavailable) EqualsExact(context.Context, Geometry, Geometry, float64) (bool, error) {
	return false, ErrUnavailable
}

func (Unavailable) CheckValidity(context.Context, Geometry) (Validity, error) {
	return Validity{}, ErrUnavailable
}
