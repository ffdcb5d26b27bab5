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

// Package postgis is a geometry engine that evaluates every operation as
// a single ST_* query against a PostGIS database. Geometries travel as
// EWKB in both directions.
package postgis

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/spatialmodel/geofeat"
	"github.com/spatialmodel/geofeat/encoding/wkb"
)

// Engine holds a connection pool to a PostGIS database.
type Engine struct {
	Pool *pgxpool.Pool

	// Timeout bounds each query. Zero means no bound beyond the
	// caller's context.
	Timeout time.Duration

	// Log receives query and connection messages. It defaults to
	// logrus.StandardLogger().
	Log logrus.FieldLogger
}

var _ geofeat.Engine = (*Engine)(nil)

// MaxRetries is how many times Open pings the database before giving up.
const MaxRetries = 10

// Open connects to the database at url, retrying the initial ping with
// exponential backoff.
func Open(ctx context.Context, url string) (*Engine, error) {
	cfg, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("postgis: parse url: %w", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("postgis: connect: %w", err)
	}
	e := &Engine{Pool: pool, Log: logrus.StandardLogger()}
	b := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), MaxRetries), ctx)
	err = backoff.RetryNotify(func() error {
		return pool.Ping(ctx)
	}, b, func(err error, wait time.Duration) {
		e.log().WithFields(logrus.Fields{
			"host":  cfg.ConnConfig.Host,
			"retry": wait,
		}).Warnf("postgis: ping failed: %v", err)
	})
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgis: ping: %w", err)
	}
	return e, nil
}

// Close releases the pool.
func (e *Engine) Close() { e.Pool.Close() }

func (e *Engine) log() logrus.FieldLogger {
	if e.Log == nil {
		return logrus.StandardLogger()
	}
	return e.Log
}

// param encodes g for a query. PostGIS writes an empty point as a NaN
// coordinate pair, so that is what it is sent as.
func param(g geofeat.Geometry) ([]byte, error) {
	if p, ok := g.(*geofeat.Point); ok && p.IsEmpty() {
		g = geofeat.NewPoint(math.NaN(), math.NaN()).WithSRID(p.SRID())
	}
	return wkb.EncodeExtended(g)
}

func params(gs ...geofeat.Geometry) ([]interface{}, error) {
	out := make([]interface{}, len(gs))
	for i, g := range gs {
		b, err := param(g)
		if err != nil {
			return nil, err
		}
		out[i] = b
	}
	return out, nil
}

// scan runs sql with the geometries gs as $1, $2, ... followed by extra
// arguments, and scans the single result row into dest.
func (e *Engine) scan(ctx context.Context, sql string, gs []geofeat.Geometry, extra []interface{}, dest ...interface{}) error {
	args, err := params(gs...)
	if err != nil {
		return err
	}
	args = append(args, extra...)
	if e.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.Timeout)
		defer cancel()
	}
	e.log().WithField("sql", sql).Debug("postgis: query")
	if err := e.Pool.QueryRow(ctx, sql, args...).Scan(dest...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("postgis: %s: %w", sql, geofeat.ErrUnavailable)
		}
		return fmt.Errorf("postgis: %s: %w", sql, err)
	}
	return nil
}

func (e *Engine) float(ctx context.Context, sql string, gs []geofeat.Geometry, extra ...interface{}) (float64, error) {
	var v *float64
	if err := e.scan(ctx, sql, gs, extra, &v); err != nil {
		return 0, err
	}
	if v == nil {
		return 0, fmt.Errorf("postgis: %s: null result: %w", sql, geofeat.ErrUnavailable)
	}
	return *v, nil
}

// geometry evaluates the geometry expression expr and decodes the
// result.
func (e *Engine) geometry(ctx context.Context, expr string, gs []geofeat.Geometry, extra ...interface{}) (geofeat.Geometry, error) {
	sql := "SELECT ST_AsEWKB(" + expr + ", 'NDR')"
	var b []byte
	if err := e.scan(ctx, sql, gs, extra, &b); err != nil {
		return nil, err
	}
	if b == nil {
		return nil, fmt.Errorf("postgis: %s: null result: %w", sql, geofeat.ErrUnavailable)
	}
	g, err := wkb.DecodeExtended(b)
	if err != nil {
		return nil, fmt.Errorf("postgis: decoding result: %w", err)
	}
	return g, nil
}

func (e *Engine) Area(ctx context.Context, g geofeat.Geometry) (float64, error) {
	return e.float(ctx, "SELECT ST_Area(ST_GeomFromEWKB($1::bytea))", []geofeat.Geometry{g})
}

func (e *Engine) Centroid(ctx context.Context, g geofeat.Geometry) (geofeat.Geometry, error) {
	return e.geometry(ctx, "ST_Centroid(ST_GeomFromEWKB($1::bytea))", []geofeat.Geometry{g})
}

func (e *Engine) Boundary(ctx context.Context, g geofeat.Geometry) (geofeat.Geometry, error) {
	return e.geometry(ctx, "ST_Boundary(ST_GeomFromEWKB($1::bytea))", []geofeat.Geometry{g})
}

func (e *Engine) Buffer(ctx context.Context, g geofeat.Geometry, distance float64) (geofeat.Geometry, error) {
	return e.geometry(ctx, "ST_Buffer(ST_GeomFromEWKB($1::bytea), $2::float8)", []geofeat.Geometry{g}, distance)
}

func (e *Engine) ConvexHull(ctx context.Context, g geofeat.Geometry) (geofeat.Geometry, error) {
	return e.geometry(ctx, "ST_ConvexHull(ST_GeomFromEWKB($1::bytea))", []geofeat.Geometry{g})
}

func (e *Engine) Simplify(ctx context.Context, g geofeat.Geometry, tolerance float64, preserveTopology bool) (geofeat.Geometry, error) {
	fn := "ST_Simplify"
	if preserveTopology {
		fn = "ST_SimplifyPreserveTopology"
	}
	return e.geometry(ctx, fn+"(ST_GeomFromEWKB($1::bytea), $2::float8)", []geofeat.Geometry{g}, tolerance)
}

var overlays = map[geofeat.OverlayOp]string{
	geofeat.Intersection:  "ST_Intersection",
	geofeat.Difference:    "ST_Difference",
	geofeat.SymDifference: "ST_SymDifference",
	geofeat.Union:         "ST_Union",
}

func (e *Engine) Overlay(ctx context.Context, op geofeat.OverlayOp, a, b geofeat.Geometry) (geofeat.Geometry, error) {
	fn, ok := overlays[op]
	if !ok {
		return nil, fmt.Errorf("postgis: overlay %v: %w", op, geofeat.ErrUnavailable)
	}
	return e.geometry(ctx, fn+"(ST_GeomFromEWKB($1::bytea), ST_GeomFromEWKB($2::bytea))", []geofeat.Geometry{a, b})
}

var predicates = map[geofeat.Predicate]string{
	geofeat.Disjoint:   "ST_Disjoint",
	geofeat.Touches:    "ST_Touches",
	geofeat.Intersects: "ST_Intersects",
	geofeat.Crosses:    "ST_Crosses",
	geofeat.Within:     "ST_Within",
	geofeat.Contains:   "ST_Contains",
	geofeat.Overlaps:   "ST_Overlaps",
	geofeat.Covers:     "ST_Covers",
	geofeat.CoveredBy:  "ST_CoveredBy",
	geofeat.Equal:      "ST_Equals",
}

func (e *Engine) Predicate(ctx context.Context, p geofeat.Predicate, a, b geofeat.Geometry) (bool, error) {
	fn, ok := predicates[p]
	if !ok {
		return false, fmt.Errorf("postgis: predicate %v: %w", p, geofeat.ErrUnavailable)
	}
	var v bool
	err := e.scan(ctx, "SELECT "+fn+"(ST_GeomFromEWKB($1::bytea), ST_GeomFromEWKB($2::bytea))", []geofeat.Geometry{a, b}, nil, &v)
	return v, err
}

func (e *Engine) Relate(ctx context.Context, a, b geofeat.Geometry) (string, error) {
	var m string
	err := e.scan(ctx, "SELECT ST_Relate(ST_GeomFromEWKB($1::bytea), ST_GeomFromEWKB($2::bytea))", []geofeat.Geometry{a, b}, nil, &m)
	return m, err
}

func (e *Engine) Distance(ctx context.Context, a, b geofeat.Geometry) (float64, error) {
	return e.float(ctx, "SELECT ST_Distance(ST_GeomFromEWKB($1::bytea), ST_GeomFromEWKB($2::bytea))", []geofeat.Geometry{a, b})
}

func (e *Engine) HausdorffDistance(ctx context.Context, a, b geofeat.Geometry) (float64, error) {
	return e.float(ctx, "SELECT ST_HausdorffDistance(ST_GeomFromEWKB($1::bytea), ST_GeomFromEWKB($2::bytea))", []geofeat.Geometry{a, b})
}

// Project returns the distance along line of the point on line closest
// to pt.
func (e *Engine) Project(ctx context.Context, line, pt geofeat.Geometry) (float64, error) {
	const sql = `SELECT ST_LineLocatePoint(l, p) * ST_Length(l)
FROM (SELECT ST_GeomFromEWKB($1::bytea) AS l, ST_GeomFromEWKB($2::bytea) AS p) AS args`
	return e.float(ctx, sql, []geofeat.Geometry{line, pt})
}

// EqualsExact compares vertex order exactly when tolerance is zero.
// Otherwise a and b must share type and vertex count and lie within
// tolerance of each other in Hausdorff distance.
func (e *Engine) EqualsExact(ctx context.Context, a, b geofeat.Geometry, tolerance float64) (bool, error) {
	var v bool
	if tolerance == 0 {
		err := e.scan(ctx, "SELECT ST_OrderingEquals(ST_GeomFromEWKB($1::bytea), ST_GeomFromEWKB($2::bytea))", []geofeat.Geometry{a, b}, nil, &v)
		return v, err
	}
	const sql = `SELECT GeometryType(a) = GeometryType(b) AND ST_NPoints(a) = ST_NPoints(b)
	AND ST_HausdorffDistance(a, b) <= $3::float8
FROM (SELECT ST_GeomFromEWKB($1::bytea) AS a, ST_GeomFromEWKB($2::bytea) AS b) AS args`
	err := e.scan(ctx, sql, []geofeat.Geometry{a, b}, []interface{}{tolerance}, &v)
	return v, err
}

func (e *Engine) CheckValidity(ctx context.Context, g geofeat.Geometry) (geofeat.Validity, error) {
	var (
		v      geofeat.Validity
		reason *string
		loc    []byte
	)
	const sql = "SELECT valid, reason, ST_AsEWKB(location, 'NDR') FROM ST_IsValidDetail(ST_GeomFromEWKB($1::bytea))"
	if err := e.scan(ctx, sql, []geofeat.Geometry{g}, nil, &v.Valid, &reason, &loc); err != nil {
		return v, err
	}
	if reason != nil {
		v.Reason = *reason
	}
	if loc != nil {
		p, err := wkb.DecodeExtended(loc)
		if err != nil {
			return v, fmt.Errorf("postgis: decoding location: %w", err)
		}
		v.Location = p
	}
	return v, nil
}
