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

package geohash

import (
	"strings"

	"github.com/spatialmodel/geofeat"
)

// Direction is a compass direction between neighboring cells.
type Direction int

// The four directions.
const (
	North Direction = iota
	East
	South
	West
)

// Neighbor and border lookup tables, indexed by direction and by whether
// the hash has an even (0) or odd (1) length.
var (
	neighbors = [4][2]string{
		North: {"p0r21436x8zb9dcf5h7kjnmqesgutwvy", "bc01fg45238967deuvhjyznpkmstqrwx"},
		East:  {"bc01fg45238967deuvhjyznpkmstqrwx", "p0r21436x8zb9dcf5h7kjnmqesgutwvy"},
		South: {"14365h7k9dcfesgujnmqp0r2twvyx8zb", "238967debc01fg45kmstqrwxuvhjyznp"},
		West:  {"238967debc01fg45kmstqrwxuvhjyznp", "14365h7k9dcfesgujnmqp0r2twvyx8zb"},
	}
	borders = [4][2]string{
		North: {"prxz", "bcfguvyz"},
		East:  {"bcfguvyz", "prxz"},
		South: {"028b", "0145hjnp"},
		West:  {"0145hjnp", "028b"},
	}
)

// Adjacent returns the hash of the same-length cell next to hash in
// direction dir. Longitude wraps around the antimeridian.
func Adjacent(hash string, dir Direction) (string, error) {
	hash = strings.ToLower(strings.TrimSpace(hash))
	if hash == "" {
		return "", geofeat.Malformed(formatName, nil, "empty hash")
	}
	if dir < North || dir > West {
		return "", geofeat.Malformed(formatName, nil, "invalid direction %d", dir)
	}
	if strings.Trim(hash, base32) != "" {
		return "", geofeat.Malformed(formatName, nil, "invalid character in %q", hash)
	}
	return adjacent(hash, dir), nil
}

func adjacent(hash string, dir Direction) string {
	if hash == "" {
		return ""
	}
	last := hash[len(hash)-1]
	parity := len(hash) % 2
	base := hash[:len(hash)-1]
	if strings.IndexByte(borders[dir][parity], last) >= 0 {
		base = adjacent(base, dir)
	}
	return base + string(base32[strings.IndexByte(neighbors[dir][parity], last)])
}

// Neighbors returns the eight cells around hash, clockwise from north:
// N, NE, E, SE, S, SW, W, NW.
func Neighbors(hash string) ([8]string, error) {
	n, err := Adjacent(hash, North)
	if err != nil {
		return [8]string{}, err
	}
	hash = strings.ToLower(strings.TrimSpace(hash))
	s := adjacent(hash, South)
	return [8]string{
		n, adjacent(n, East),
		adjacent(hash, East), adjacent(s, East),
		s, adjacent(s, West),
		adjacent(hash, West), adjacent(n, West),
	}, nil
}
