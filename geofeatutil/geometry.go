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
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spatialmodel/geofeat"
	"github.com/spatialmodel/geofeat/encoding/geohash"
	"github.com/spatialmodel/geofeat/encoding/wkt"
	"github.com/spatialmodel/geofeat/format"
)

var detectCmd = &cobra.Command{
	Use:   "detect [data...]",
	Short: "Detect the format of encoded geometries",
	Long: `detect prints the format name of each input: wkt, ewkt, wkb, ewkb,
hexwkb, hexewkb, json, geohash, or one of the recognized formats that
have no reader (kml, gpx, georss, google_geocode).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := inputs(cmd, args)
		if err != nil {
			return err
		}
		for _, s := range in {
			d, ok := format.Detect([]byte(s))
			if !ok {
				return fmt.Errorf("geofeat: %w: could not detect format of %q", geofeat.ErrUnsupportedFormat, abbreviate(s))
			}
			fmt.Fprintln(cmd.OutOrStdout(), d.Name())
		}
		return nil
	},
	DisableAutoGenTag: true,
}

var convertCmd = &cobra.Command{
	Use:   "convert [data...]",
	Short: "Convert geometries between formats",
	Long: `convert reads each input in the --from format (detected if empty) and
writes it in the --to format, one geometry per line.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := inputs(cmd, args)
		if err != nil {
			return err
		}
		for _, s := range in {
			g, err := load(cmd, []string{s})
			if err != nil {
				return err
			}
			if err := write(cmd, g); err != nil {
				return err
			}
		}
		return nil
	},
	DisableAutoGenTag: true,
}

var reduceCmd = &cobra.Command{
	Use:   "reduce [data...]",
	Short: "Combine geometries into the simplest covering type",
	Long: `reduce reads all inputs and writes a single geometry: the lone
geometry if there is one, a Multi geometry if all parts share a type,
and a GeometryCollection otherwise.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := load(cmd, args)
		if err != nil {
			return err
		}
		return write(cmd, g)
	},
	DisableAutoGenTag: true,
}

var infoCmd = &cobra.Command{
	Use:   "info [data...]",
	Short: "Describe geometries",
	Long: `info prints the type, SRID, emptiness, dimension, bounding box, area,
length, centroid, and simplicity of each input. Area and centroid use the
engine selected by Engine.Kind when it can evaluate them.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext(cmd)
		defer cancel()
		o, closer, err := ops(ctx, Cfg)
		if err != nil {
			return err
		}
		defer closer()
		in, err := inputs(cmd, args)
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		for i, s := range in {
			g, err := load(cmd, []string{s})
			if err != nil {
				return err
			}
			if i > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "type:       %v\n", g.Type())
			fmt.Fprintf(w, "srid:       %d\n", g.SRID())
			fmt.Fprintf(w, "empty:      %v\n", g.IsEmpty())
			fmt.Fprintf(w, "dimension:  %d\n", g.Dimension())
			fmt.Fprintf(w, "points:     %d\n", g.NumPoints())
			fmt.Fprintf(w, "geometries: %d\n", g.NumGeometries())
			if b := o.Bounds(ctx, g); b != nil {
				fmt.Fprintf(w, "bounds:     %g %g %g %g\n", b.MinX, b.MinY, b.MaxX, b.MaxY)
			}
			fmt.Fprintf(w, "area:       %g\n", o.Area(ctx, g))
			fmt.Fprintf(w, "length:     %g\n", o.Length(ctx, g))
			if c := o.Centroid(ctx, g); c != nil {
				s, err := wkt.Write(c)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "centroid:   %s\n", s)
			}
			fmt.Fprintf(w, "simple:     %v\n", o.IsSimple(ctx, g))
		}
		return nil
	},
	DisableAutoGenTag: true,
}

var hashCmd = &cobra.Command{
	Use:   "hash",
	Short: "Work with geohashes",
	Long: `hash encodes geometries as geohashes and inspects geohash cells.
Use the subcommands specified below.`,
	DisableAutoGenTag: true,
}

var hashEncodeCmd = &cobra.Command{
	Use:   "encode [data...]",
	Short: "Encode geometries as geohashes",
	Long: `encode prints the geohash of each input. Points are encoded at
Geohash.Precision; other geometries are encoded as the longest hash whose
cell contains their envelope.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := inputs(cmd, args)
		if err != nil {
			return err
		}
		for _, s := range in {
			g, err := load(cmd, []string{s})
			if err != nil {
				return err
			}
			h, err := geohash.Write(g, Cfg.GetFloat64("Geohash.Precision"))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), h)
		}
		return nil
	},
	DisableAutoGenTag: true,
}

var hashDecodeCmd = &cobra.Command{
	Use:   "decode hash...",
	Short: "Print the cells of geohashes",
	Long:  "decode prints the center and extent of each geohash cell.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		for _, h := range args {
			c, err := geohash.Decode(h)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%s: center %g %g, lat %g..%g, lon %g..%g\n",
				h, c.Lat, c.Lon, c.MinLat, c.MaxLat, c.MinLon, c.MaxLon)
		}
		return nil
	},
	DisableAutoGenTag: true,
}

var hashNeighborsCmd = &cobra.Command{
	Use:   "neighbors hash",
	Short: "Print the eight cells around a geohash",
	Long:  "neighbors prints the adjacent cells in the order n, ne, e, se, s, sw, w, nw.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := geohash.Neighbors(args[0])
		if err != nil {
			return err
		}
		for i, label := range []string{"n", "ne", "e", "se", "s", "sw", "w", "nw"} {
			fmt.Fprintf(cmd.OutOrStdout(), "%-2s %s\n", label, n[i])
		}
		return nil
	},
	DisableAutoGenTag: true,
}

func abbreviate(s string) string {
	const max = 40
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}
