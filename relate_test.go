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

import "testing"

func TestRelatePattern(t *testing.T) {
	tests := []struct {
		matrix, pattern string
		want            bool
	}{
		{"212101212", "T*T***T**", true},
		{"212101212", "FF*FF****", false},
		{"FF2FF1212", "FF*FF****", true},
		{"0FFFFF212", "0********", true},
		{"0FFFFF212", "1********", false},
		{"0FFFFF212", "*********", true},
	}
	for _, tt := range tests {
		t.Run(tt.matrix+"/"+tt.pattern, func(t *testing.T) {
			got, err := RelatePattern(tt.matrix, tt.pattern)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
	if _, err := RelatePattern("0FF", "*********"); err == nil {
		t.Error("short matrix accepted")
	}
	if _, err := RelatePattern("0FFFFF212", "X********"); err == nil {
		t.Error("bad pattern character accepted")
	}
}
