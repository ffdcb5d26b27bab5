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

// Package planar is a pure-Go geometry engine backed by
// github.com/ctessum/geom. It evaluates polygon overlays, simplification,
// polygonal area and centroid, exact equality, and containment of points
// and lines in polygons. Other operations return
// geofeat.ErrUnavailable.
package planar

import (
	"context"
	"fmt"

	"github.com/ctessum/geom"

	"github.com/spatialmodel/geofeat"
)

// Engine is the planar engine. The zero value is ready to use.
type Engine struct {
	geofeat.Unavailable
}

var _ geofeat.Engine = Engine{}

func unavailable(op string, g geofeat.Geometry) error {
	return fmt.Errorf("planar: %s of %v: %w", op, g.Type(), geofeat.ErrUnavailable)
}

func (Engine) polygonal(op string, g geofeat.Geometry) (geom.Polygonal, error) {
	gg, err := toGeom(g)
	if err != nil {
		return nil, err
	}
	p, ok := gg.(geom.Polygonal)
	if !ok {
		return nil, unavailable(op, g)
	}
	return p, nil
}

// Area returns the area of a Polygon or MultiPolygon.
func (e Engine) Area(_ context.Context, g geofeat.Geometry) (float64, error) {
	p, err := e.polygonal("area", g)
	if err != nil {
		return 0, err
	}
	return p.Area(), nil
}

// Centroid returns the area-weighted centroid of a Polygon or
// MultiPolygon.
func (e Engine) Centroid(_ context.Context, g geofeat.Geometry) (geofeat.Geometry, error) {
	if g.IsEmpty() {
		return nil, unavailable("centroid", g)
	}
	p, err := e.polygonal("centroid", g)
	if err != nil {
		return nil, err
	}
	c := p.Centroid()
	return geofeat.NewPoint(c.X, c.Y), nil
}

// Simplify removes vertices of linear and polygonal geometries that are
// closer than tolerance to the simplified shape. The result never
// self-intersects unless the input does, so preserveTopology is always
// honored.
func (Engine) Simplify(_ context.Context, g geofeat.Geometry, tolerance float64, _ bool) (geofeat.Geometry, error) {
	gg, err := toGeom(g)
	if err != nil {
		return nil, err
	}
	s, ok := gg.(geom.Simplifier)
	if !ok {
		return nil, unavailable("simplify", g)
	}
	out, err := fromGeom(s.Simplify(tolerance))
	if err != nil {
		return nil, err
	}
	return out.WithSRID(g.SRID()), nil
}

// Overlay computes op on two polygonal geometries.
func (e Engine) Overlay(_ context.Context, op geofeat.OverlayOp, a, b geofeat.Geometry) (geofeat.Geometry, error) {
	pa, err := e.polygonal(op.String(), a)
	if err != nil {
		return nil, err
	}
	pb, err := e.polygonal(op.String(), b)
	if err != nil {
		return nil, err
	}
	var out geom.Polygon
	switch op {
	case geofeat.Intersection:
		out = pa.Intersection(pb)
	case geofeat.Difference:
		out = pa.Difference(pb)
	case geofeat.SymDifference:
		out = pa.XOr(pb)
	case geofeat.Union:
		out = pa.Union(pb)
	default:
		return nil, fmt.Errorf("planar: unknown overlay %v: %w", op, geofeat.ErrUnavailable)
	}
	g, err := fromGeom(out)
	if err != nil {
		return nil, err
	}
	return g.WithSRID(a.SRID()), nil
}

// Predicate evaluates containment of points and lines in polygonal
// geometries, and intersection of polygonal geometries.
func (e Engine) Predicate(_ context.Context, p geofeat.Predicate, a, b geofeat.Geometry) (bool, error) {
	switch p {
	case geofeat.Contains, geofeat.Covers:
		a, b = b, a
	}
	switch p {
	case geofeat.Within, geofeat.Contains, geofeat.CoveredBy, geofeat.Covers:
		status, err := e.within(a, b)
		if err != nil {
			return false, err
		}
		if p == geofeat.Within || p == geofeat.Contains {
			return status == geom.Inside, nil
		}
		return status != geom.Outside, nil
	case geofeat.Intersects, geofeat.Disjoint:
		hit, err := e.intersects(a, b)
		if err != nil {
			return false, err
		}
		return hit == (p == geofeat.Intersects), nil
	}
	return false, unavailable(p.String(), a)
}

type withiner interface {
	Within(geom.Polygonal) geom.WithinStatus
}

func (e Engine) within(a, b geofeat.Geometry) (geom.WithinStatus, error) {
	if a.IsEmpty() || b.IsEmpty() {
		return geom.Outside, nil
	}
	ga, err := toGeom(a)
	if err != nil {
		return geom.Outside, err
	}
	w, ok := ga.(withiner)
	if !ok {
		return geom.Outside, unavailable("within", a)
	}
	pb, err := e.polygonal("within", b)
	if err != nil {
		return geom.Outside, err
	}
	return w.Within(pb), nil
}

func (e Engine) intersects(a, b geofeat.Geometry) (bool, error) {
	if a.IsEmpty() || b.IsEmpty() {
		return false, nil
	}
	if !a.Bounds().Overlaps(b.Bounds()) {
		return false, nil
	}
	if _, ok := a.(*geofeat.Point); ok {
		a, b = b, a
	}
	if pt, ok := b.(*geofeat.Point); ok {
		s, err := e.within(pt, a)
		return s != geom.Outside, err
	}
	pa, err := e.polygonal("intersects", a)
	if err != nil {
		return false, err
	}
	pb, err := e.polygonal("intersects", b)
	if err != nil {
		return false, err
	}
	return len(pa.Intersection(pb)) > 0, nil
}

// EqualsExact reports whether a and b have the same structure with
// vertices no farther apart than tolerance. Polygon rings may start at
// different vertices and appear in any order.
func (Engine) EqualsExact(_ context.Context, a, b geofeat.Geometry, tolerance float64) (bool, error) {
	ga, err := toGeom(a)
	if err != nil {
		return false, err
	}
	gb, err := toGeom(b)
	if err != nil {
		return false, err
	}
	return ga.Similar(gb, tolerance), nil
}
