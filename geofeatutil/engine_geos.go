//go:build geos

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
	"context"

	"github.com/spf13/viper"

	"github.com/spatialmodel/geofeat"
	"github.com/spatialmodel/geofeat/engine/geos"
)

func init() {
	engineOpeners["geos"] = func(context.Context, *viper.Viper) (geofeat.Engine, func(), error) {
		return geos.Engine{}, func() {}, nil
	}
}
