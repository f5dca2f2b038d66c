/*
Copyright © 2025 the DotSpatial-Go authors.
This file is part of DotSpatial-Go.

DotSpatial-Go is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

DotSpatial-Go is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with DotSpatial-Go.  If not, see <http://www.gnu.org/licenses/>.
*/

package positioning

import "strconv"

// Elevation is an immutable vertical measurement stored in meters. It
// participates in the same descriptor scheme as Angle through its
// one-scalar constructor.
type Elevation struct {
	meters float64
}

// ElevationEmpty is the well-known empty elevation.
var ElevationEmpty = Elevation{}

// NewElevation returns an elevation of m meters.
func NewElevation(m float64) Elevation {
	return Elevation{meters: m}
}

// Meters returns the scalar the elevation was constructed from.
func (e Elevation) Meters() float64 { return e.meters }

// IsEmpty reports whether the elevation is the empty (zero) elevation.
func (e Elevation) IsEmpty() bool { return e.meters == 0 }

func (e Elevation) String() string {
	return strconv.FormatFloat(e.meters, 'f', -1, 64) + " m"
}

func init() {
	RegisterConstructor("Elevation", "FromMeters", func(v float64) interface{} {
		return NewElevation(v)
	})
	RegisterConstant("Elevation", emptyConstantTag, ElevationEmpty)
}
