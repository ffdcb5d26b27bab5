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
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/spatialmodel/geofeat"
	"github.com/spatialmodel/geofeat/encoding/geohash"
	"github.com/spatialmodel/geofeat/engine/planar"
	"github.com/spatialmodel/geofeat/engine/postgis"
	"github.com/spatialmodel/geofeat/format"
)

// configureLog sets the level and formatter of log from cfg.
func configureLog(log *logrus.Logger, cfg *viper.Viper) error {
	level, err := logrus.ParseLevel(cfg.GetString("LogLevel"))
	if err != nil {
		return fmt.Errorf("geofeat: invalid LogLevel: %v", err)
	}
	log.SetLevel(level)
	switch f := strings.ToLower(cfg.GetString("LogFormat")); f {
	case "text":
		log.SetFormatter(&logrus.TextFormatter{})
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	default:
		return fmt.Errorf("geofeat: invalid LogFormat %q", f)
	}
	return nil
}

// registry returns the format registry configured by cfg.
func registry(cfg *viper.Viper) *format.Registry {
	r := format.NewRegistry(cfg.GetInt("MaxDepth"))
	r.Register("geohash", geohash.Codec{
		Precision: cfg.GetFloat64("Geohash.Precision"),
		AsGrid:    cfg.GetBool("Geohash.AsGrid"),
	})
	r.Log = Log
	return r
}

// engineOpeners holds the engines that can be selected with Engine.Kind,
// besides none and planar. Each returns the engine and a function that
// releases it.
var engineOpeners = map[string]func(ctx context.Context, cfg *viper.Viper) (geofeat.Engine, func(), error){
	"postgis": openPostGIS,
}

func openPostGIS(ctx context.Context, cfg *viper.Viper) (geofeat.Engine, func(), error) {
	url := cfg.GetString("Engine.PostGIS.URL")
	if url == "" {
		return nil, nil, fmt.Errorf("geofeat: Engine.PostGIS.URL must be set to use the postgis engine")
	}
	timeout, err := cast.ToDurationE(cfg.Get("Engine.PostGIS.Timeout"))
	if err != nil {
		return nil, nil, fmt.Errorf("geofeat: invalid Engine.PostGIS.Timeout: %v", err)
	}
	e, err := postgis.Open(ctx, url)
	if err != nil {
		return nil, nil, err
	}
	e.Timeout = timeout
	e.Log = Log
	return e, e.Close, nil
}

// openEngine returns the engine selected by cfg.
func openEngine(ctx context.Context, cfg *viper.Viper) (geofeat.Engine, func(), error) {
	kind := strings.ToLower(cfg.GetString("Engine.Kind"))
	switch kind {
	case "", "none":
		return geofeat.Unavailable{}, func() {}, nil
	case "planar":
		return planar.Engine{}, func() {}, nil
	}
	open, ok := engineOpeners[kind]
	if !ok {
		return nil, nil, fmt.Errorf("geofeat: engine %q is not available in this build", kind)
	}
	return open(ctx, cfg)
}

// ops returns the operations dispatcher for the configured engine.
func ops(ctx context.Context, cfg *viper.Viper) (geofeat.Ops, func(), error) {
	e, closer, err := openEngine(ctx, cfg)
	if err != nil {
		return geofeat.Ops{}, nil, err
	}
	return geofeat.Ops{Engine: e, Log: Log}, closer, nil
}

// inputs returns args, or the contents of standard input if there are no
// args. Textual standard input is trimmed of surrounding white space;
// binary input, which always holds zero bytes, is left as is.
func inputs(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	b, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, fmt.Errorf("geofeat: reading standard input: %v", err)
	}
	if !bytes.Contains(b, []byte{0}) {
		b = bytes.TrimSpace(b)
	}
	return []string{string(b)}, nil
}

// load reads a single geometry from each input and reduces them into one.
func load(cmd *cobra.Command, args []string) (geofeat.Geometry, error) {
	in, err := inputs(cmd, args)
	if err != nil {
		return nil, err
	}
	r := registry(Cfg)
	var g geofeat.Geometry
	if len(in) == 1 {
		g, err = r.Load(in[0], Cfg.GetString("from"))
	} else {
		g, err = r.Load(in, Cfg.GetString("from"))
	}
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, fmt.Errorf("geofeat: no geometry in input")
	}
	return g, nil
}

// outputFormat returns the registry name of the configured output
// format.
func outputFormat(cfg *viper.Viper) string {
	to := strings.ToLower(cfg.GetString("to"))
	if cfg.GetBool("hex") && (to == "wkb" || to == "ewkb") {
		return "hex" + to
	}
	return to
}

// write encodes g in the configured output format.
func write(cmd *cobra.Command, g geofeat.Geometry) error {
	if srid := Cfg.GetInt("srid-out"); srid != 0 {
		g = g.WithSRID(srid)
	}
	name := outputFormat(Cfg)
	b, err := registry(Cfg).Write(g, name)
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	if _, err := w.Write(b); err != nil {
		return err
	}
	if name != "wkb" && name != "ewkb" {
		fmt.Fprintln(w)
	}
	return nil
}

func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithCancel(ctx)
}
