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

// Package positioning holds geographic measurement value types and the
// conversion bridge that moves them between representations for hosts
// (such as a visual designer) that have no compile-time knowledge of
// the value types.
package positioning

import (
	"math"
	"strconv"
	"strings"
)

// Angle is an immutable angular measurement stored in decimal degrees.
// Two angles constructed from the same scalar are equal.
type Angle struct {
	decimalDegrees float64
}

// AngleEmpty is the well-known empty angle. It has value semantics and
// compares equal to NewAngle(0).
var AngleEmpty = Angle{}

// NewAngle returns an angle measuring dd decimal degrees. This is the
// single-scalar constructor the reconstruction descriptor scheme
// replays; any value type participating in that scheme must have one.
func NewAngle(dd float64) Angle {
	return Angle{decimalDegrees: dd}
}

// DecimalDegrees returns the scalar the angle was constructed from.
func (a Angle) DecimalDegrees() float64 {
	return a.decimalDegrees
}

// IsEmpty reports whether the angle is the empty (zero) angle.
func (a Angle) IsEmpty() bool {
	return a.decimalDegrees == 0
}

// Equals reports whether a and o measure the same number of degrees.
func (a Angle) Equals(o Angle) bool {
	return a.decimalDegrees == o.decimalDegrees
}

// Add returns the sum of a and o.
func (a Angle) Add(o Angle) Angle {
	return Angle{decimalDegrees: a.decimalDegrees + o.decimalDegrees}
}

// Multiply returns a scaled by f.
func (a Angle) Multiply(f float64) Angle {
	return Angle{decimalDegrees: a.decimalDegrees * f}
}

// Normalize returns an equivalent angle in the interval [0°, 360°).
func (a Angle) Normalize() Angle {
	dd := math.Mod(a.decimalDegrees, 360)
	if dd < 0 {
		dd += 360
	}
	return Angle{decimalDegrees: dd}
}

// String returns the canonical text rendering of the angle: the scalar
// in invariant-culture notation followed by the degree sign, e.g. "45.5°".
func (a Angle) String() string {
	return a.Format(InvariantCulture)
}

// Format renders the angle as text using the decimal notation of
// culture c. The result is re-parseable by ParseAngle under the same
// culture.
func (a Angle) Format(c Culture) string {
	s := strconv.FormatFloat(a.decimalDegrees, 'f', -1, 64)
	if c.decimal != '.' && c.decimal != 0 {
		s = strings.Replace(s, ".", string(c.decimal), 1)
	}
	return s + degreeSign
}

const degreeSign = "°"

// zeroAngleText is the fixed sentinel rendering of a missing angle.
const zeroAngleText = "0" + degreeSign

// ParseAngle parses a text rendering of an angle under the numeric
// conventions of culture c. A trailing degree sign is optional, as is
// surrounding whitespace. Empty input yields AngleEmpty. A malformed
// scalar yields a *FormatError.
func ParseAngle(s string, c Culture) (Angle, error) {
	t := strings.TrimSpace(s)
	t = strings.TrimSuffix(t, degreeSign)
	t = strings.TrimSpace(t)
	if t == "" {
		return AngleEmpty, nil
	}
	dd, err := strconv.ParseFloat(c.normalizeNumber(t), 64)
	if err != nil {
		return Angle{}, &FormatError{Input: s, Err: err}
	}
	return Angle{decimalDegrees: dd}, nil
}

func init() {
	RegisterConstructor(angleTypeTag, angleConstructorTag, func(v float64) interface{} {
		return NewAngle(v)
	})
	RegisterConstant(angleTypeTag, emptyConstantTag, AngleEmpty)
}
