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
	"errors"

	"github.com/sirupsen/logrus"
)

// Ops evaluates geometry operations, delegating to Engine where one is
// set. Operations the core implements natively use the engine first and
// fall back to the native result if the engine fails. All others return
// ErrUnavailable without an engine.
type Ops struct {
	Engine Engine

	// Log receives engine fallback messages. It defaults to
	// logrus.StandardLogger().
	Log logrus.FieldLogger
}

func (o Ops) engine() Engine {
	if o.Engine == nil {
		return Unavailable{}
	}
	return o.Engine
}

func (o Ops) log() logrus.FieldLogger {
	if o.Log == nil {
		return logrus.StandardLogger()
	}
	return o.Log
}

// fallback records a failed engine call that the native core will
// answer instead.
func (o Ops) fallback(op string, g Geometry, err error) {
	if errors.Is(err, ErrUnavailable) {
		return
	}
	o.log().WithFields(logrus.Fields{
		"op":   op,
		"type": g.Type().String(),
	}).WithError(err).Debug("geometry engine failed; using native implementation")
}

// Area returns the area of g.
func (o Ops) Area(ctx context.Context, g Geometry) float64 {
	if o.Engine != nil {
		a, err := o.Engine.Area(ctx, g)
		if err == nil {
			return a
		}
		o.fallback("area", g, err)
	}
	return g.Area()
}

// Centroid returns the centroid of g, or nil if g is empty.
func (o Ops) Centroid(ctx context.Context, g Geometry) *Point {
	if o.Engine != nil && !g.IsEmpty() {
		c, err := o.Engine.Centroid(ctx, g)
		if err == nil {
			if pt, ok := c.(*Point); ok {
				return pt
			}
		} else {
			o.fallback("centroid", g, err)
		}
	}
	return g.Centroid()
}

// Boundary returns the boundary of g.
func (o Ops) Boundary(ctx context.Context, g Geometry) Geometry {
	if o.Engine != nil {
		b, err := o.Engine.Boundary(ctx, g)
		if err == nil && b != nil {
			return b
		}
		if err != nil {
			o.fallback("boundary", g, err)
		}
	}
	return g.Boundary()
}

func (o Ops) Length(_ context.Context, g Geometry) float64    { return g.Length() }
func (o Ops) Envelope(_ context.Context, g Geometry) *Polygon { return g.Envelope() }
func (o Ops) IsSimple(_ context.Context, g Geometry) bool     { return g.IsSimple() }
func (o Ops) Bounds(_ context.Context, g Geometry) *Bounds    { return g.Bounds() }

func (o Ops) Buffer(ctx context.Context, g Geometry, distance float64) (Geometry, error) {
	return o.engine().Buffer(ctx, g, distance)
}

func (o Ops) ConvexHull(ctx context.Context, g Geometry) (Geometry, error) {
	return o.engine().ConvexHull(ctx, g)
}

func (o Ops) Simplify(ctx context.Context, g Geometry, tolerance float64, preserveTopology bool) (Geometry, error) {
	return o.engine().Simplify(ctx, g, tolerance, preserveTopology)
}

func (o Ops) Overlay(ctx context.Context, op OverlayOp, a, b Geometry) (Geometry, error) {
	return o.engine().Overlay(ctx, op, a, b)
}

// Predicate evaluates p on a and b. Without an engine, containment of a
// point in a polygonal geometry is answered natively, with boundary
// points counting as contained only for Covers and CoveredBy.
func (o Ops) Predicate(ctx context.Context, p Predicate, a, b Geometry) (bool, error) {
	ok, err := o.engine().Predicate(ctx, p, a, b)
	if err == nil || !errors.Is(err, ErrUnavailable) {
		return ok, err
	}
	if ok, native := pointPolygonPredicate(p, a, b); native {
		return ok, nil
	}
	return false, err
}

func pointPolygonPredicate(p Predicate, a, b Geometry) (result, ok bool) {
	type polygonal interface {
		PointInPolygon(pt *Point, onBoundary, onVertex bool) bool
	}
	switch p {
	case Within, CoveredBy:
	case Contains, Covers:
		a, b = b, a
	default:
		return false, false
	}
	pt, isPt := a.(*Point)
	poly, isPoly := b.(polygonal)
	if !isPt || !isPoly || pt.IsEmpty() {
		return false, false
	}
	edge := p == Covers || p == CoveredBy
	return poly.PointInPolygon(pt, edge, edge), true
}

func (o Ops) Relate(ctx context.Context, a, b Geometry) (string, error) {
	return o.engine().Relate(ctx, a, b)
}

// RelatePattern reports whether the intersection matrix of a and b
// matches pattern.
func (o Ops) RelatePattern(ctx context.Context, a, b Geometry, pattern string) (bool, error) {
	m, err := o.Relate(ctx, a, b)
	if err != nil {
		return false, err
	}
	return RelatePattern(m, pattern)
}

func (o Ops) Distance(ctx context.Context, a, b Geometry) (float64, error) {
	return o.engine().Distance(ctx, a, b)
}

func (o Ops) HausdorffDistance(ctx context.Context, a, b Geometry) (float64, error) {
	return o.engine().HausdorffDistance(ctx, a, b)
}

func (o Ops) Project(ctx context.Context, line, pt Geometry) (float64, error) {
	return o.engine().Project(ctx, line, pt)
}

func (o Ops) EqualsExact(ctx context.Context, a, b Geometry, tolerance float64) (bool, error) {
	return o.engine().EqualsExact(ctx, a, b, tolerance)
}

func (o Ops) CheckValidity(ctx context.Context, g Geometry) (Validity, error) {
	return o.engine().CheckValidity(ctx, g)
}
