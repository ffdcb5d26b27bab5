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

package planar

import (
	"fmt"

	"github.com/ctessum/geom"

	"github.com/spatialmodel/geofeat"
)

// toGeom converts g to its ctessum/geom form. Empty points have no such
// form.
func toGeom(g geofeat.Geometry) (geom.Geom, error) {
	switch t := g.(type) {
	case *geofeat.Point:
		if t.IsEmpty() {
			return nil, unavailable("conversion", g)
		}
		return geom.Point{X: t.X(), Y: t.Y()}, nil
	case *geofeat.LineString:
		return toPath(t)
	case *geofeat.Polygon:
		return toPolygon(t)
	case *geofeat.MultiPoint:
		var mp geom.MultiPoint
		for _, p := range t.Components() {
			if p.IsEmpty() {
				continue
			}
			mp = append(mp, geom.Point{X: p.X(), Y: p.Y()})
		}
		return mp, nil
	case *geofeat.MultiLineString:
		var ml geom.MultiLineString
		for _, l := range t.Components() {
			gl, err := toPath(l)
			if err != nil {
				return nil, err
			}
			ml = append(ml, gl)
		}
		return ml, nil
	case *geofeat.MultiPolygon:
		var mp geom.MultiPolygon
		for _, p := range t.Components() {
			gp, err := toPolygon(p)
			if err != nil {
				return nil, err
			}
			mp = append(mp, gp)
		}
		return mp, nil
	case *geofeat.GeometryCollection:
		var gc geom.GeometryCollection
		for _, c := range t.Components() {
			gg, err := toGeom(c)
			if err != nil {
				return nil, err
			}
			gc = append(gc, gg)
		}
		return gc, nil
	}
	return nil, fmt.Errorf("planar: %w: unsupported geometry %T", geofeat.ErrStructure, g)
}

func toPath(l *geofeat.LineString) (geom.LineString, error) {
	pts := l.Points()
	path := make(geom.LineString, 0, len(pts))
	for _, p := range pts {
		if p.IsEmpty() {
			return nil, unavailable("conversion", l)
		}
		path = append(path, geom.Point{X: p.X(), Y: p.Y()})
	}
	return path, nil
}

func toPolygon(p *geofeat.Polygon) (geom.Polygon, error) {
	rings := p.Components()
	out := make(geom.Polygon, 0, len(rings))
	for _, r := range rings {
		path, err := toPath(r)
		if err != nil {
			return nil, err
		}
		out = append(out, []geom.Point(path))
	}
	return out, nil
}

// fromGeom converts a ctessum/geom value back. Clipping results hold
// unclosed rings, so polygon rings are closed on the way out.
func fromGeom(g geom.Geom) (geofeat.Geometry, error) {
	switch t := g.(type) {
	case geom.Point:
		return geofeat.NewPoint(t.X, t.Y), nil
	case geom.LineString:
		return fromPath(t)
	case geom.Polygon:
		return fromPolygon(t)
	case geom.MultiPoint:
		pts := make([]*geofeat.Point, len(t))
		for i, p := range t {
			pts[i] = geofeat.NewPoint(p.X, p.Y)
		}
		return geofeat.NewMultiPoint(pts)
	case geom.MultiLineString:
		ls := make([]*geofeat.LineString, len(t))
		for i, l := range t {
			var err error
			if ls[i], err = fromPath(l); err != nil {
				return nil, err
			}
		}
		return geofeat.NewMultiLineString(ls)
	case geom.MultiPolygon:
		ps := make([]*geofeat.Polygon, len(t))
		for i, p := range t {
			var err error
			if ps[i], err = fromPolygon(p); err != nil {
				return nil, err
			}
		}
		return geofeat.NewMultiPolygon(ps)
	case geom.GeometryCollection:
		gs := make([]geofeat.Geometry, len(t))
		for i, c := range t {
			var err error
			if gs[i], err = fromGeom(c); err != nil {
				return nil, err
			}
		}
		return geofeat.NewGeometryCollection(gs)
	}
	return nil, fmt.Errorf("planar: %w: unsupported result %T", geofeat.ErrStructure, g)
}

func fromPath(path []geom.Point) (*geofeat.LineString, error) {
	pts := make([]*geofeat.Point, len(path))
	for i, p := range path {
		pts[i] = geofeat.NewPoint(p.X, p.Y)
	}
	return geofeat.NewLineString(pts)
}

func fromPolygon(p geom.Polygon) (*geofeat.Polygon, error) {
	rings := make([]*geofeat.LineString, 0, len(p))
	for _, r := range p {
		if len(r) == 0 {
			continue
		}
		if first, last := r[0], r[len(r)-1]; first != last {
			r = append(r[:len(r):len(r)], first)
		}
		l, err := fromPath(r)
		if err != nil {
			return nil, err
		}
		rings = append(rings, l)
	}
	return geofeat.NewPolygon(rings)
}
