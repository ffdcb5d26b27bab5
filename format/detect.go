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

// Package format detects the encoding of geometry data and dispatches
// loading and writing to the matching codec.
package format

import (
	"bytes"
	"encoding/hex"
)

// Detection is the result of sniffing a byte stream.
type Detection struct {
	// Format is one of wkb, ewkb, wkt, ewkt, json, geohash, kml, gpx or
	// georss.
	Format string
	// Hex is set for hexadecimal WKB text.
	Hex bool
}

// Name returns the registry name of the codec that reads d.
func (d Detection) Name() string {
	if d.Hex {
		return "hex" + d.Format
	}
	return d.Format
}

const (
	headLen = 11
	xmlLen  = 256
	hashLen = 8
)

// Detect guesses the format of data from its first bytes. Leading
// whitespace is skipped if the untrimmed data is not recognized. Empty
// data is never recognized.
func Detect(data []byte) (Detection, bool) {
	if d, ok := detect(data); ok {
		return d, true
	}
	if trimmed := bytes.TrimLeft(data, " \t\r\n"); len(trimmed) != len(data) {
		return detect(trimmed)
	}
	return Detection{}, false
}

func detect(data []byte) (Detection, bool) {
	if len(data) == 0 {
		return Detection{}, false
	}
	head := data[:min(headLen, len(data))]

	if head[0] == 1 {
		if len(head) > 4 && head[4] != 0 {
			return Detection{Format: "ewkb"}, true
		}
		return Detection{Format: "wkb"}, true
	}
	if len(data) >= 18 && head[0] == '0' && head[1] == '1' {
		if flags, err := hex.DecodeString(string(head[8:10])); err == nil {
			if flags[0] != 0 {
				return Detection{Format: "ewkb", Hex: true}, true
			}
			return Detection{Format: "wkb", Hex: true}, true
		}
	}

	switch head[0] {
	case '{':
		return Detection{Format: "json"}, true
	case 'S':
		return Detection{Format: "ewkt"}, true
	case 'P', 'L', 'M', 'G':
		return Detection{Format: "wkt"}, true
	case '<':
		x := bytes.ToLower(data[:min(xmlLen, len(data))])
		switch {
		case bytes.Contains(x, []byte("<kml")), bytes.Contains(x, []byte("<coordinate")):
			return Detection{Format: "kml"}, true
		case bytes.Contains(x, []byte("<gpx")):
			return Detection{Format: "gpx"}, true
		case bytes.Contains(x, []byte("<georss")), bytes.Contains(x, []byte("<rss")), bytes.Contains(x, []byte("<feed")):
			return Detection{Format: "georss"}, true
		}
		return Detection{}, false
	}

	h := bytes.TrimSpace(data[:min(hashLen, len(data))])
	if len(h) == 0 {
		return Detection{}, false
	}
	for _, c := range h {
		if !('a' <= c && c <= 'z' || '0' <= c && c <= '9') {
			return Detection{}, false
		}
	}
	return Detection{Format: "geohash"}, true
}
