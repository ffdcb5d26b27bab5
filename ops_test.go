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
	"testing"
)

// stubEngine answers Area and Relate and fails Centroid.
type stubEngine struct {
	Unavailable
}

func (stubEngine) Area(context.Context, Geometry) (float64, error) { return 42, nil }

func (stubEngine) Centroid(context.Context, Geometry) (Geometry, error) {
	return nil, errors.New("engine crashed")
}

func (stubEngine) Relate(context.Context, Geometry, Geometry) (string, error) {
	return "FF2FF1212", nil
}

func TestOpsWithoutEngine(t *testing.T) {
	ctx := context.Background()
	var o Ops
	sq := square(t)
	if got := o.Area(ctx, sq); got != 16 {
		t.Errorf("Area = %g", got)
	}
	if got := o.Centroid(ctx, sq); !got.Equals(NewPoint(2, 2)) {
		t.Errorf("Centroid = %v", got)
	}
	if _, err := o.Buffer(ctx, sq, 1); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Buffer: err = %v, want ErrUnavailable", err)
	}
	if _, err := o.Overlay(ctx, Union, sq, sq); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Overlay: err = %v, want ErrUnavailable", err)
	}
	if _, err := o.Predicate(ctx, Touches, sq, sq); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Predicate: err = %v, want ErrUnavailable", err)
	}
	in, err := o.Predicate(ctx, Contains, sq, NewPoint(1, 1))
	if err != nil || !in {
		t.Errorf("native contains = %v, %v", in, err)
	}
	edge, err := o.Predicate(ctx, Within, NewPoint(0, 2), sq)
	if err != nil || edge {
		t.Errorf("boundary point within = %v, %v", edge, err)
	}
	covered, err := o.Predicate(ctx, CoveredBy, NewPoint(0, 2), sq)
	if err != nil || !covered {
		t.Errorf("boundary point covered by = %v, %v", covered, err)
	}
}

func TestOpsWithEngine(t *testing.T) {
	ctx := context.Background()
	o := Ops{Engine: stubEngine{}}
	sq := square(t)
	if got := o.Area(ctx, sq); got != 42 {
		t.Errorf("Area = %g, want engine result", got)
	}
	if got := o.Centroid(ctx, sq); !got.Equals(NewPoint(2, 2)) {
		t.Errorf("Centroid did not fall back: %v", got)
	}
	if b := o.Boundary(ctx, sq); b.Type() != TypeLineString {
		t.Errorf("Boundary did not fall back: %v", b.Type())
	}
	ok, err := o.RelatePattern(ctx, sq, sq, "FF*FF****")
	if err != nil || !ok {
		t.Errorf("RelatePattern = %v, %v", ok, err)
	}
}

func TestPredicateNames(t *testing.T) {
	for p := Disjoint; p <= Equal; p++ {
		got, err := ParsePredicate(p.String())
		if err != nil || got != p {
			t.Errorf("ParsePredicate(%q) = %v, %v", p.String(), got, err)
		}
	}
	for op := Intersection; op <= Union; op++ {
		got, err := ParseOverlayOp(op.String())
		if err != nil || got != op {
			t.Errorf("ParseOverlayOp(%q) = %v, %v", op.String(), got, err)
		}
	}
}
