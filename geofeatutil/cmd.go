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

// Package geofeatutil holds the geofeat command-line interface.
package geofeatutil

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/spatialmodel/geofeat"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

// Log is the logger used by the commands. Its level and format are set
// from the LogLevel and LogFormat options.
var Log = logrus.New()

type option struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

var options []option

func init() {
	options = []option{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "LogLevel",
			usage: `
              LogLevel is the minimum level of log messages written to
              standard error: trace, debug, info, warn, or error.`,
			defaultVal: "info",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "LogFormat",
			usage: `
              LogFormat is the log message format: text or json.`,
			defaultVal: "text",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "from",
			usage: `
              from is the format of the input geometries. If it is empty,
              the format of each input is detected.`,
			shorthand:  "f",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "to",
			usage: `
              to is the format output geometries are written in. One of
              wkt, ewkt, wkb, ewkb, json, geojson, or geohash.`,
			shorthand:  "t",
			defaultVal: "wkt",
			flagsets:   []*pflag.FlagSet{convertCmd.Flags(), reduceCmd.Flags(), analyzeCmd.Flags()},
		},
		{
			name: "hex",
			usage: `
              hex specifies whether wkb and ewkb output is written as
              hexadecimal text instead of raw bytes.`,
			defaultVal: true,
			flagsets:   []*pflag.FlagSet{convertCmd.Flags(), reduceCmd.Flags(), analyzeCmd.Flags()},
		},
		{
			name: "srid-out",
			usage: `
              srid-out, if not zero, replaces the SRID of output geometries.`,
			defaultVal: 0,
			flagsets:   []*pflag.FlagSet{convertCmd.Flags(), reduceCmd.Flags(), analyzeCmd.Flags()},
		},
		{
			name: "Geohash.Precision",
			usage: `
              Geohash.Precision is the precision in degrees geohashes are
              encoded with. Zero derives it from the number of decimal
              places in the input coordinates.`,
			defaultVal: 0.0,
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "Geohash.AsGrid",
			usage: `
              Geohash.AsGrid specifies whether decoded geohashes become the
              cell polygon instead of its center point.`,
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "Engine.Kind",
			usage: `
              Engine.Kind selects the geometry engine used for operations
              the native code cannot evaluate: none, planar, postgis, or
              geos. geos requires a build with the geos tag.`,
			defaultVal: "planar",
			flagsets:   []*pflag.FlagSet{infoCmd.Flags(), analyzeCmd.Flags()},
		},
		{
			name: "Engine.PostGIS.URL",
			usage: `
              Engine.PostGIS.URL is the connection URL of the PostGIS
              database used when Engine.Kind is postgis.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{infoCmd.Flags(), analyzeCmd.Flags()},
		},
		{
			name: "Engine.PostGIS.Timeout",
			usage: `
              Engine.PostGIS.Timeout bounds each PostGIS query, for
              example "30s". Zero means no bound.`,
			defaultVal: "30s",
			flagsets:   []*pflag.FlagSet{infoCmd.Flags(), analyzeCmd.Flags()},
		},
		{
			name: "MaxDepth",
			usage: `
              MaxDepth bounds how deeply geometry collections may nest in
              decoded input. Zero selects each reader's default.`,
			defaultVal: 0,
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "distance",
			usage: `
              distance is the buffer distance used by "analyze buffer".`,
			shorthand:  "d",
			defaultVal: 0.0,
			flagsets:   []*pflag.FlagSet{analyzeCmd.Flags()},
		},
		{
			name: "tolerance",
			usage: `
              tolerance is used by "analyze simplify" and "analyze equals-exact".`,
			defaultVal: 0.0,
			flagsets:   []*pflag.FlagSet{analyzeCmd.Flags()},
		},
		{
			name: "preserve-topology",
			usage: `
              preserve-topology specifies whether "analyze simplify" keeps
              the result free of self-intersections.`,
			defaultVal: true,
			flagsets:   []*pflag.FlagSet{analyzeCmd.Flags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("GEOFEAT")
	Cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	Cfg.AutomaticEnv()

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch v := option.defaultVal.(type) {
			case string:
				set.StringP(option.name, option.shorthand, v, option.usage)
			case bool:
				set.BoolP(option.name, option.shorthand, v, option.usage)
			case int:
				set.IntP(option.name, option.shorthand, v, option.usage)
			case float64:
				set.Float64P(option.name, option.shorthand, v, option.usage)
			default:
				panic("invalid argument type")
			}
		}
		for _, set := range option.flagsets {
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(configCmd)
	Root.AddCommand(detectCmd)
	Root.AddCommand(convertCmd)
	Root.AddCommand(infoCmd)
	Root.AddCommand(reduceCmd)
	Root.AddCommand(hashCmd)
	hashCmd.AddCommand(hashEncodeCmd)
	hashCmd.AddCommand(hashDecodeCmd)
	hashCmd.AddCommand(hashNeighborsCmd)
	Root.AddCommand(analyzeCmd)
}

// setConfig finds and reads in the configuration file, if there is one,
// and configures Log.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(cfgpath)
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("geofeat: problem reading configuration file: %v", err)
		}
	}
	return configureLog(Log, Cfg)
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "geofeat",
	Short: "Read, write, inspect, and operate on Simple-Feature geometries.",
	Long: `geofeat reads geometries in WKT, EWKT, WKB, EWKB (raw or hexadecimal),
GeoJSON, and geohash form, converts between these formats, and evaluates
geometric measures, predicates, and overlays.

Input geometries are given as arguments, or read from standard input when
no arguments are given. Each command documents its options.
Configuration can be changed by using a configuration file (and providing the
path to the file using the --config flag), by using command-line arguments,
or by setting environment variables in the format 'GEOFEAT_var' where 'var' is the
name of the variable to be set, with dots replaced by underscores.
Refer to https://github.com/spf13/viper for additional configuration information.`,
	DisableAutoGenTag: true,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of geofeat.",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "geofeat v%s\n", geofeat.Version)
	},
	DisableAutoGenTag: true,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `config prints the configuration in effect after reading the
configuration file, the environment, and command-line flags, in TOML
format. The output can be used as a configuration file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := toml.NewEncoder(cmd.OutOrStdout()).Encode(Cfg.AllSettings()); err != nil {
			return fmt.Errorf("geofeat: writing configuration: %v", err)
		}
		return nil
	},
	DisableAutoGenTag: true,
}
