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

package geofeatutil

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/spatialmodel/geofeat"
)

// analysis is an operation run by the analyze command. Exactly one of
// geometry and value is set.
type analysis struct {
	operands int
	geometry func(ctx context.Context, o geofeat.Ops, gs []geofeat.Geometry) (geofeat.Geometry, error)
	value    func(ctx context.Context, o geofeat.Ops, gs []geofeat.Geometry) (interface{}, error)
}

var analyses = map[string]analysis{
	"area": {operands: 1, value: func(ctx context.Context, o geofeat.Ops, gs []geofeat.Geometry) (interface{}, error) {
		return o.Area(ctx, gs[0]), nil
	}},
	"length": {operands: 1, value: func(ctx context.Context, o geofeat.Ops, gs []geofeat.Geometry) (interface{}, error) {
		return o.Length(ctx, gs[0]), nil
	}},
	"centroid": {operands: 1, geometry: func(ctx context.Context, o geofeat.Ops, gs []geofeat.Geometry) (geofeat.Geometry, error) {
		if c := o.Centroid(ctx, gs[0]); c != nil {
			return c, nil
		}
		return nil, fmt.Errorf("geofeat: %v has no centroid", gs[0].Type())
	}},
	"boundary": {operands: 1, geometry: func(ctx context.Context, o geofeat.Ops, gs []geofeat.Geometry) (geofeat.Geometry, error) {
		return o.Boundary(ctx, gs[0]), nil
	}},
	"envelope": {operands: 1, geometry: func(ctx context.Context, o geofeat.Ops, gs []geofeat.Geometry) (geofeat.Geometry, error) {
		return o.Envelope(ctx, gs[0]), nil
	}},
	"buffer": {operands: 1, geometry: func(ctx context.Context, o geofeat.Ops, gs []geofeat.Geometry) (geofeat.Geometry, error) {
		return o.Buffer(ctx, gs[0], Cfg.GetFloat64("distance"))
	}},
	"hull": {operands: 1, geometry: func(ctx context.Context, o geofeat.Ops, gs []geofeat.Geometry) (geofeat.Geometry, error) {
		return o.ConvexHull(ctx, gs[0])
	}},
	"simplify": {operands: 1, geometry: func(ctx context.Context, o geofeat.Ops, gs []geofeat.Geometry) (geofeat.Geometry, error) {
		return o.Simplify(ctx, gs[0], Cfg.GetFloat64("tolerance"), Cfg.GetBool("preserve-topology"))
	}},
	"validity": {operands: 1, value: func(ctx context.Context, o geofeat.Ops, gs []geofeat.Geometry) (interface{}, error) {
		v, err := o.CheckValidity(ctx, gs[0])
		if err != nil || v.Valid {
			return v.Valid, err
		}
		return fmt.Sprintf("false: %s", v.Reason), nil
	}},
	"relate": {operands: 2, value: func(ctx context.Context, o geofeat.Ops, gs []geofeat.Geometry) (interface{}, error) {
		return o.Relate(ctx, gs[0], gs[1])
	}},
	"distance": {operands: 2, value: func(ctx context.Context, o geofeat.Ops, gs []geofeat.Geometry) (interface{}, error) {
		return o.Distance(ctx, gs[0], gs[1])
	}},
	"hausdorff": {operands: 2, value: func(ctx context.Context, o geofeat.Ops, gs []geofeat.Geometry) (interface{}, error) {
		return o.HausdorffDistance(ctx, gs[0], gs[1])
	}},
	"project": {operands: 2, value: func(ctx context.Context, o geofeat.Ops, gs []geofeat.Geometry) (interface{}, error) {
		return o.Project(ctx, gs[0], gs[1])
	}},
	"equals-exact": {operands: 2, value: func(ctx context.Context, o geofeat.Ops, gs []geofeat.Geometry) (interface{}, error) {
		return o.EqualsExact(ctx, gs[0], gs[1], Cfg.GetFloat64("tolerance"))
	}},
}

func init() {
	for _, op := range []geofeat.OverlayOp{geofeat.Intersection, geofeat.Difference, geofeat.SymDifference, geofeat.Union} {
		op := op
		analyses[op.String()] = analysis{operands: 2, geometry: func(ctx context.Context, o geofeat.Ops, gs []geofeat.Geometry) (geofeat.Geometry, error) {
			return o.Overlay(ctx, op, gs[0], gs[1])
		}}
	}
	for _, p := range []geofeat.Predicate{
		geofeat.Disjoint, geofeat.Touches, geofeat.Intersects, geofeat.Crosses, geofeat.Within,
		geofeat.Contains, geofeat.Overlaps, geofeat.Covers, geofeat.CoveredBy, geofeat.Equal,
	} {
		p := p
		analyses[p.String()] = analysis{operands: 2, value: func(ctx context.Context, o geofeat.Ops, gs []geofeat.Geometry) (interface{}, error) {
			return o.Predicate(ctx, p, gs[0], gs[1])
		}}
	}
	analyzeCmd.Long += "\n\nOperations: " + strings.Join(analysisNames(), ", ") + "."
}

func analysisNames() []string {
	names := make([]string, 0, len(analyses))
	for n := range analyses {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze operation geometry [geometry]",
	Short: "Evaluate a measure, predicate, or overlay",
	Long: `analyze evaluates an operation on one or two geometries, using the engine
selected by Engine.Kind for operations the native code cannot evaluate.
Geometry results are written in the --to format; other results are printed
as text.`,
	Args: cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, ok := analyses[strings.ToLower(args[0])]
		if !ok {
			return fmt.Errorf("geofeat: unknown operation %q", args[0])
		}
		if len(args)-1 != a.operands {
			return fmt.Errorf("geofeat: %s takes %d geometries, got %d", args[0], a.operands, len(args)-1)
		}
		gs := make([]geofeat.Geometry, a.operands)
		for i, s := range args[1:] {
			g, err := load(cmd, []string{s})
			if err != nil {
				return err
			}
			gs[i] = g
		}

		ctx, cancel := commandContext(cmd)
		defer cancel()
		o, closer, err := ops(ctx, Cfg)
		if err != nil {
			return err
		}
		defer closer()

		if a.geometry != nil {
			g, err := a.geometry(ctx, o, gs)
			if err != nil {
				return err
			}
			return write(cmd, g)
		}
		v, err := a.value(ctx, o, gs)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), v)
		return nil
	},
	DisableAutoGenTag: true,
}
