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

import "math"

// DefaultEarthRadius is the equatorial radius of the WGS84 ellipsoid in
// meters.
const DefaultEarthRadius = 6378137.0

func deg2rad(d float64) float64 { return d * math.Pi / 180 }
func rad2deg(r float64) float64 { return r * 180 / math.Pi }

// greatCircle returns the distance between a and b along a sphere of the
// given radius, using the special case of the Vincenty formula.
func greatCircle(a, b *Point, radius float64) float64 {
	lat1, lon1 := deg2rad(a.y), deg2rad(a.x)
	lat2, lon2 := deg2rad(b.y), deg2rad(b.x)
	dlon := lon2 - lon1
	sin1, cos1 := math.Sincos(lat1)
	sin2, cos2 := math.Sincos(lat2)
	sdl, cdl := math.Sincos(dlon)
	num := math.Sqrt(math.Pow(cos2*sdl, 2) + math.Pow(cos1*sin2-sin1*cos2*cdl, 2))
	den := sin1*sin2 + cos1*cos2*cdl
	return radius * math.Atan2(num, den)
}

// haversine returns the central angle between a and b in degrees.
func haversine(a, b *Point) float64 {
	lat1, lat2 := deg2rad(a.y), deg2rad(b.y)
	dlon := math.Abs(deg2rad(b.x - a.x))
	c := math.Sin(lat1)*math.Sin(lat2) + math.Cos(lat1)*math.Cos(lat2)*math.Cos(dlon)
	// Rounding can push c just outside [-1, 1].
	c = math.Max(-1, math.Min(1, c))
	return rad2deg(math.Acos(c))
}
