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

// Package geohash converts between points and geohash strings, and
// between geohash cells and polygons.
package geohash

import (
	"math"
	"strconv"
	"strings"

	"github.com/spatialmodel/geofeat"
)

const base32 = "0123456789bcdefghjkmnpqrstuvwxyz"

// MaxLength caps the length of generated hashes. Cells beyond it are
// smaller than float64 resolution.
const MaxLength = 24

// EnvelopePrecision is the precision used to encode the envelope corners
// of non-point geometries.
const EnvelopePrecision = 1e-7

const formatName = "geohash"

// Cell is the area covered by a geohash.
type Cell struct {
	MinLat, MaxLat float64
	MinLon, MaxLon float64
	// LatErr and LonErr are the half-extents of the cell.
	LatErr, LonErr float64
	// Lat and Lon are the cell center, rounded to the digits the cell
	// resolves.
	Lat, Lon float64
}

// Encode returns the geohash of pt, adding characters until the cell
// error is below precision. A precision <= 0 is derived from the number
// of decimal digits of the ordinates.
func Encode(pt *geofeat.Point, precision float64) (string, error) {
	if pt == nil || pt.IsEmpty() {
		return "", nil
	}
	lon, lat := pt.X(), pt.Y()
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return "", geofeat.Malformed(formatName, nil, "point (%g %g) outside longitude/latitude range", lon, lat)
	}
	if precision <= 0 {
		precision = math.Pow(10, -float64(max(decimals(lat), decimals(lon)))) / 2
	}
	minLat, maxLat := -90., 90.
	minLon, maxLon := -180., 180.
	latE, lonE := 90., 180.
	errE := 180.
	var hash strings.Builder
	for i := 0; errE >= precision && i < MaxLength; i++ {
		chr := 0
		for b := 4; b >= 0; b-- {
			if 1&b == 1&i {
				// A longitude bit: even bits of even characters and odd
				// bits of odd characters.
				next := (minLon + maxLon) / 2
				if lon > next {
					chr |= 1 << b
					minLon = next
				} else {
					maxLon = next
				}
				lonE /= 2
			} else {
				next := (minLat + maxLat) / 2
				if lat > next {
					chr |= 1 << b
					minLat = next
				} else {
					maxLat = next
				}
				latE /= 2
			}
		}
		hash.WriteByte(base32[chr])
		errE = math.Min(latE, lonE)
	}
	return hash.String(), nil
}

// decimals returns the number of digits after the decimal point in the
// shortest representation of v.
func decimals(v float64) int {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return len(s) - i - 1
	}
	return 0
}

// Decode returns the cell of hash. Hashes are case-insensitive.
func Decode(hash string) (Cell, error) {
	hash = strings.ToLower(strings.TrimSpace(hash))
	if hash == "" {
		return Cell{}, geofeat.Malformed(formatName, nil, "empty hash")
	}
	minLat, maxLat := -90., 90.
	minLon, maxLon := -180., 180.
	latE, lonE := 90., 180.
	for i := 0; i < len(hash); i++ {
		v := strings.IndexByte(base32, hash[i])
		if v < 0 {
			return Cell{}, geofeat.Malformed(formatName, nil, "invalid character %q at %d", hash[i], i)
		}
		for b := 4; b >= 0; b-- {
			set := v&(1<<b) != 0
			if 1&b == 1&i {
				mid := (minLon + maxLon) / 2
				if set {
					minLon = mid
				} else {
					maxLon = mid
				}
			} else {
				mid := (minLat + maxLat) / 2
				if set {
					minLat = mid
				} else {
					maxLat = mid
				}
			}
		}
		if i%2 == 1 {
			latE /= 8
			lonE /= 4
		} else {
			latE /= 4
			lonE /= 8
		}
	}
	return Cell{
		MinLat: minLat, MaxLat: maxLat,
		MinLon: minLon, MaxLon: maxLon,
		LatErr: latE, LonErr: lonE,
		Lat: round((minLat+maxLat)/2, digits(latE)),
		Lon: round((minLon+maxLon)/2, digits(lonE)),
	}, nil
}

// digits is the number of decimals worth keeping for error e.
func digits(e float64) int {
	return max(1, int(-math.Round(math.Log10(e)))) - 1
}

func round(v float64, n int) float64 {
	p := math.Pow(10, float64(n))
	return math.Round(v*p) / p
}

// Point returns the center of c.
func (c Cell) Point() *geofeat.Point { return geofeat.NewPoint(c.Lon, c.Lat) }

// Polygon returns c as a closed ring starting at its north-west corner.
func (c Cell) Polygon() *geofeat.Polygon {
	ring, _ := geofeat.NewLineStringXY(
		c.MinLon, c.MaxLat,
		c.MaxLon, c.MaxLat,
		c.MaxLon, c.MinLat,
		c.MinLon, c.MinLat,
		c.MinLon, c.MaxLat,
	)
	p, _ := geofeat.NewPolygon([]*geofeat.LineString{ring})
	return p
}

// Read decodes hash into the cell center, or into the cell polygon when
// asGrid is set.
func Read(hash string, asGrid bool) (geofeat.Geometry, error) {
	c, err := Decode(hash)
	if err != nil {
		return nil, err
	}
	if asGrid {
		return c.Polygon(), nil
	}
	return c.Point(), nil
}

// Write returns the geohash of g. A point is encoded with precision;
// any other geometry gives the longest hash whose cell holds its whole
// envelope. An empty geometry gives "".
func Write(g geofeat.Geometry, precision float64) (string, error) {
	if g == nil || g.IsEmpty() {
		return "", nil
	}
	if pt, ok := g.(*geofeat.Point); ok {
		return Encode(pt, precision)
	}
	var hashes []string
	for _, pt := range g.Envelope().Points() {
		h, err := Encode(pt, EnvelopePrecision)
		if err != nil {
			return "", err
		}
		hashes = append(hashes, h)
	}
	prefix := hashes[0]
	for _, h := range hashes[1:] {
		n := 0
		for n < len(prefix) && n < len(h) && prefix[n] == h[n] {
			n++
		}
		prefix = prefix[:n]
	}
	return prefix, nil
}
