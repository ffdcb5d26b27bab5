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

package format

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/spatialmodel/geofeat"
	"github.com/spatialmodel/geofeat/encoding/geohash"
	"github.com/spatialmodel/geofeat/encoding/geojson"
	"github.com/spatialmodel/geofeat/encoding/wkb"
	"github.com/spatialmodel/geofeat/encoding/wkt"
)

// Codec converts between bytes and geometries in one format.
type Codec interface {
	Decode([]byte) (geofeat.Geometry, error)
	Encode(geofeat.Geometry) ([]byte, error)
}

// Unsupported lists format names that are recognized but have no codec.
var Unsupported = []string{"kml", "gpx", "georss", "google_geocode"}

// Registry maps format names to codecs.
type Registry struct {
	codecs map[string]Codec

	// Log receives format detection messages. It defaults to
	// logrus.StandardLogger().
	Log logrus.FieldLogger
}

// NewRegistry returns a registry holding the codecs of this module.
// maxDepth bounds collection nesting in every reader; zero selects each
// reader's default.
//
// The "wkb" and "hexwkb" writers always emit the base form. The "ewkb"
// and "hexewkb" writers add the SRID header when the geometry carries a
// non-zero SRID; select them only when the reader understands EWKB.
func NewRegistry(maxDepth int) *Registry {
	r := &Registry{codecs: make(map[string]Codec)}
	r.Register("wkb", wkb.Codec{MaxDepth: maxDepth})
	r.Register("ewkb", wkb.Codec{Extended: true, MaxDepth: maxDepth})
	r.Register("hexwkb", wkb.Codec{Hex: true, MaxDepth: maxDepth})
	r.Register("hexewkb", wkb.Codec{Hex: true, Extended: true, MaxDepth: maxDepth})
	r.Register("wkt", wkt.Codec{MaxDepth: maxDepth})
	r.Register("ewkt", wkt.Codec{Extended: true, MaxDepth: maxDepth})
	r.Register("geohash", geohash.Codec{})
	r.Register("json", geojson.Codec{MaxDepth: maxDepth})
	r.Register("geojson", geojson.Codec{MaxDepth: maxDepth})
	return r
}

// Register adds or replaces the codec for name.
func (r *Registry) Register(name string, c Codec) {
	r.codecs[strings.ToLower(name)] = c
}

// Names returns the registered format names in order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.codecs))
	for n := range r.codecs {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) log() logrus.FieldLogger {
	if r.Log == nil {
		return logrus.StandardLogger()
	}
	return r.Log
}

// Codec returns the codec for name. Known formats without a codec and
// unknown names fail with geofeat.ErrUnsupportedFormat.
func (r *Registry) Codec(name string) (Codec, error) {
	name = strings.ToLower(name)
	if c, ok := r.codecs[name]; ok {
		return c, nil
	}
	for _, u := range Unsupported {
		if name == u {
			return nil, fmt.Errorf("format: %w: no adapter for %s", geofeat.ErrUnsupportedFormat, name)
		}
	}
	return nil, fmt.Errorf("format: %w: unknown format %q", geofeat.ErrUnsupportedFormat, name)
}

// Load returns the geometry held by v. v may be a geofeat.Geometry,
// which is returned unchanged, encoded data as []byte or string, or a
// slice of any of these, whose geometries are reduced into one. An empty
// name means the format of each datum is detected. Empty data loads as a
// nil geometry without error.
func (r *Registry) Load(v interface{}, name string) (geofeat.Geometry, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case geofeat.Geometry:
		return t, nil
	case []byte:
		return r.decode(t, name)
	case string:
		return r.decode([]byte(t), name)
	case [][]byte:
		return r.loadAll(len(t), func(i int) (geofeat.Geometry, error) { return r.decode(t[i], name) })
	case []string:
		return r.loadAll(len(t), func(i int) (geofeat.Geometry, error) { return r.decode([]byte(t[i]), name) })
	case []geofeat.Geometry:
		return r.loadAll(len(t), func(i int) (geofeat.Geometry, error) { return t[i], nil })
	}
	return nil, fmt.Errorf("format: %w: cannot load %T", geofeat.ErrUnsupportedFormat, v)
}

func (r *Registry) loadAll(n int, load func(i int) (geofeat.Geometry, error)) (geofeat.Geometry, error) {
	var gs []geofeat.Geometry
	for i := 0; i < n; i++ {
		g, err := load(i)
		if err != nil {
			return nil, fmt.Errorf("format: item %d: %w", i, err)
		}
		if g != nil {
			gs = append(gs, g)
		}
	}
	g, ok := geofeat.Reduce(gs...)
	if !ok {
		return nil, nil
	}
	return g, nil
}

func (r *Registry) decode(data []byte, name string) (geofeat.Geometry, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	if name == "" {
		d, ok := Detect(data)
		if !ok {
			return nil, fmt.Errorf("format: %w: could not detect format", geofeat.ErrUnsupportedFormat)
		}
		name = d.Name()
		r.log().WithFields(logrus.Fields{
			"format": name,
			"bytes":  len(data),
		}).Debug("detected geometry format")
	}
	c, err := r.Codec(name)
	if err != nil {
		return nil, err
	}
	return c.Decode(data)
}

// Write encodes g in the named format.
func (r *Registry) Write(g geofeat.Geometry, name string) ([]byte, error) {
	c, err := r.Codec(name)
	if err != nil {
		return nil, err
	}
	return c.Encode(g)
}
