//go:build geos

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

// Package geos is a geometry engine backed by the GEOS C library through
// github.com/paulsmith/gogeos. It requires cgo and the geos build tag.
package geos

import (
	"context"
	"fmt"
	"math"

	"github.com/paulsmith/gogeos/geos"

	"github.com/spatialmodel/geofeat"
	"github.com/spatialmodel/geofeat/encoding/wkb"
)

// Engine evaluates operations in-process with GEOS. The zero value is
// ready to use. Results carry the SRID of the first operand.
type Engine struct{}

var _ geofeat.Engine = Engine{}

func toGEOS(g geofeat.Geometry) (*geos.Geometry, error) {
	if p, ok := g.(*geofeat.Point); ok && p.IsEmpty() {
		g = geofeat.NewPoint(math.NaN(), math.NaN())
	}
	b, err := wkb.Encode(g)
	if err != nil {
		return nil, err
	}
	gg, err := geos.FromWKB(b)
	if err != nil {
		return nil, fmt.Errorf("geos: reading %v: %w", g.Type(), err)
	}
	return gg, nil
}

func fromGEOS(gg *geos.Geometry, srid int) (geofeat.Geometry, error) {
	b, err := gg.WKB()
	if err != nil {
		return nil, fmt.Errorf("geos: writing result: %w", err)
	}
	g, err := wkb.Decode(b)
	if err != nil {
		return nil, fmt.Errorf("geos: decoding result: %w", err)
	}
	return g.WithSRID(srid), nil
}

func unary(g geofeat.Geometry, f func(*geos.Geometry) (*geos.Geometry, error)) (geofeat.Geometry, error) {
	gg, err := toGEOS(g)
	if err != nil {
		return nil, err
	}
	out, err := f(gg)
	if err != nil {
		return nil, fmt.Errorf("geos: %w", err)
	}
	return fromGEOS(out, g.SRID())
}

func pair(a, b geofeat.Geometry) (*geos.Geometry, *geos.Geometry, error) {
	ga, err := toGEOS(a)
	if err != nil {
		return nil, nil, err
	}
	gb, err := toGEOS(b)
	if err != nil {
		return nil, nil, err
	}
	return ga, gb, nil
}

func (Engine) Area(_ context.Context, g geofeat.Geometry) (float64, error) {
	gg, err := toGEOS(g)
	if err != nil {
		return 0, err
	}
	return gg.Area()
}

func (Engine) Centroid(_ context.Context, g geofeat.Geometry) (geofeat.Geometry, error) {
	return unary(g, (*geos.Geometry).Centroid)
}

func (Engine) Boundary(_ context.Context, g geofeat.Geometry) (geofeat.Geometry, error) {
	return unary(g, (*geos.Geometry).Boundary)
}

func (Engine) Buffer(_ context.Context, g geofeat.Geometry, distance float64) (geofeat.Geometry, error) {
	return unary(g, func(gg *geos.Geometry) (*geos.Geometry, error) { return gg.Buffer(distance) })
}

func (Engine) ConvexHull(_ context.Context, g geofeat.Geometry) (geofeat.Geometry, error) {
	return unary(g, (*geos.Geometry).ConvexHull)
}

func (Engine) Simplify(_ context.Context, g geofeat.Geometry, tolerance float64, preserveTopology bool) (geofeat.Geometry, error) {
	return unary(g, func(gg *geos.Geometry) (*geos.Geometry, error) {
		if preserveTopology {
			return gg.SimplifyP(tolerance)
		}
		return gg.Simplify(tolerance)
	})
}

func (Engine) Overlay(_ context.Context, op geofeat.OverlayOp, a, b geofeat.Geometry) (geofeat.Geometry, error) {
	ga, gb, err := pair(a, b)
	if err != nil {
		return nil, err
	}
	var out *geos.Geometry
	switch op {
	case geofeat.Intersection:
		out, err = ga.Intersection(gb)
	case geofeat.Difference:
		out, err = ga.Difference(gb)
	case geofeat.SymDifference:
		out, err = ga.SymDifference(gb)
	case geofeat.Union:
		out, err = ga.Union(gb)
	default:
		return nil, fmt.Errorf("geos: overlay %v: %w", op, geofeat.ErrUnavailable)
	}
	if err != nil {
		return nil, fmt.Errorf("geos: %v: %w", op, err)
	}
	return fromGEOS(out, a.SRID())
}

func (Engine) Predicate(_ context.Context, p geofeat.Predicate, a, b geofeat.Geometry) (bool, error) {
	ga, gb, err := pair(a, b)
	if err != nil {
		return false, err
	}
	switch p {
	case geofeat.Disjoint:
		return ga.Disjoint(gb)
	case geofeat.Touches:
		return ga.Touches(gb)
	case geofeat.Intersects:
		return ga.Intersects(gb)
	case geofeat.Crosses:
		return ga.Crosses(gb)
	case geofeat.Within:
		return ga.Within(gb)
	case geofeat.Contains:
		return ga.Contains(gb)
	case geofeat.Overlaps:
		return ga.Overlaps(gb)
	case geofeat.Covers:
		return ga.Covers(gb)
	case geofeat.CoveredBy:
		return ga.CoveredBy(gb)
	case geofeat.Equal:
		return ga.Equals(gb)
	}
	return false, fmt.Errorf("geos: predicate %v: %w", p, geofeat.ErrUnavailable)
}

func (Engine) Relate(_ context.Context, a, b geofeat.Geometry) (string, error) {
	ga, gb, err := pair(a, b)
	if err != nil {
		return "", err
	}
	return ga.Relate(gb)
}

func (Engine) Distance(_ context.Context, a, b geofeat.Geometry) (float64, error) {
	ga, gb, err := pair(a, b)
	if err != nil {
		return 0, err
	}
	return ga.Distance(gb)
}

func (Engine) HausdorffDistance(_ context.Context, a, b geofeat.Geometry) (float64, error) {
	ga, gb, err := pair(a, b)
	if err != nil {
		return 0, err
	}
	return ga.HausdorffDistance(gb)
}

func (Engine) Project(_ context.Context, line, pt geofeat.Geometry) (float64, error) {
	if line.Type() != geofeat.TypeLineString || pt.Type() != geofeat.TypePoint {
		return 0, fmt.Errorf("geos: project %v onto %v: %w", pt.Type(), line.Type(), geofeat.ErrUnavailable)
	}
	gl, gp, err := pair(line, pt)
	if err != nil {
		return 0, err
	}
	return gl.Project(gp), nil
}

func (Engine) EqualsExact(_ context.Context, a, b geofeat.Geometry, tolerance float64) (bool, error) {
	ga, gb, err := pair(a, b)
	if err != nil {
		return false, err
	}
	return ga.EqualsExact(gb, tolerance)
}

// CheckValidity reports validity only. GEOS's reason and location are not
// exposed by the bindings.
func (Engine) CheckValidity(_ context.Context, g geofeat.Geometry) (geofeat.Validity, error) {
	gg, err := toGEOS(g)
	if err != nil {
		return geofeat.Validity{}, err
	}
	ok, err := gg.IsValid()
	if err != nil {
		return geofeat.Validity{}, fmt.Errorf("geos: %w", err)
	}
	return geofeat.Validity{Valid: ok}, nil
}
