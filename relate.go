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

import "fmt"

// RelatePattern reports whether a DE-9IM intersection matrix matches
// pattern. Pattern characters are T (any intersection), F (none),
// * (anything) or an exact dimension 0, 1 or 2.
func RelatePattern(matrix, pattern string) (bool, error) {
	if len(matrix) != 9 {
		return false, fmt.Errorf("geofeat: intersection matrix %q must have 9 characters", matrix)
	}
	if len(pattern) != 9 {
		return false, fmt.Errorf("geofeat: relate pattern %q must have 9 characters", pattern)
	}
	match := true
	for i := 0; i < 9; i++ {
		m, p := matrix[i], pattern[i]
		switch m {
		case 'F', 'f', '0', '1', '2':
		default:
			return false, fmt.Errorf("geofeat: invalid intersection matrix character %q", m)
		}
		switch p {
		case '*':
		case 'T', 't':
			if m == 'F' || m == 'f' {
				match = false
			}
		case 'F', 'f':
			if m != 'F' && m != 'f' {
				match = false
			}
		case '0', '1', '2':
			if m != p {
				match = false
			}
		default:
			return false, fmt.Errorf("geofeat: invalid relate pattern character %q", p)
		}
	}
	return match, nil
}
