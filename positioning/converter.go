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

import "fmt"

// RepresentationKind identifies the alternate representations the
// conversion bridge can move a measurement value through. The set is
// closed; the converters switch over it exhaustively.
type RepresentationKind int

const (
	// ReprSameType passes the value through unchanged.
	ReprSameType RepresentationKind = iota
	// ReprText is the culture-formatted text rendering.
	ReprText
	// ReprNumber is the underlying float64 scalar.
	ReprNumber
	// ReprDescriptor is a reconstruction recipe (InstanceDescriptor).
	ReprDescriptor
)

func (k RepresentationKind) String() string {
	switch k {
	case ReprSameType:
		return "same-type"
	case ReprText:
		return "text"
	case ReprNumber:
		return "number"
	case ReprDescriptor:
		return "descriptor"
	}
	return fmt.Sprintf("RepresentationKind(%d)", int(k))
}

// AngleConverter is the stateless bridge between Angle values and their
// loosely-typed representations. It holds no mutable state and is safe
// for concurrent use.
type AngleConverter struct{}

// CanConvertFrom reports whether ConvertFrom accepts representation
// kind k. Anything outside the supported set is rejected.
func (AngleConverter) CanConvertFrom(k RepresentationKind) bool {
	switch k {
	case ReprText, ReprNumber, ReprDescriptor, ReprSameType:
		return true
	}
	return false
}

// ConvertFrom builds an Angle from a loosely-typed representation,
// dispatching on the dynamic type of v: a string is parsed under
// culture c, a float64 constructs directly, an Angle passes through,
// and an InstanceDescriptor is replayed through the registry. Malformed
// text yields a *FormatError; any other input type yields an
// *UnsupportedConversionError.
func (AngleConverter) ConvertFrom(v interface{}, c Culture) (Angle, error) {
	switch t := v.(type) {
	case string:
		return ParseAngle(t, c)
	case float64:
		return NewAngle(t), nil
	case Angle:
		return t, nil
	case InstanceDescriptor:
		o, err := Materialize(t)
		if err != nil {
			return Angle{}, err
		}
		a, ok := o.(Angle)
		if !ok {
			return Angle{}, &UnsupportedConversionError{Kind: fmt.Sprintf("%T", o)}
		}
		return a, nil
	}
	return Angle{}, &UnsupportedConversionError{Kind: fmt.Sprintf("%T", v)}
}

// CanConvertTo reports whether ConvertTo can produce representation
// kind k.
func (AngleConverter) CanConvertTo(k RepresentationKind) bool {
	switch k {
	case ReprText, ReprNumber, ReprDescriptor, ReprSameType:
		return true
	}
	return false
}

// ConvertTo renders an Angle as representation kind k. The value may be
// passed as an Angle, a *Angle, or nil; nil (or a nil pointer) stands
// for an absent value and is checked before anything touches the value
// itself. An absent value renders as the fixed "0°" sentinel for text
// and as an empty-constant descriptor for descriptors.
func (AngleConverter) ConvertTo(v interface{}, k RepresentationKind, c Culture) (interface{}, error) {
	var a Angle
	null := v == nil
	if !null {
		switch t := v.(type) {
		case Angle:
			a = t
		case *Angle:
			if t == nil {
				null = true
			} else {
				a = *t
			}
		default:
			return nil, &UnsupportedConversionError{Kind: fmt.Sprintf("%T", v)}
		}
	}
	switch k {
	case ReprSameType:
		return v, nil
	case ReprText:
		if null {
			return zeroAngleText, nil
		}
		return a.Format(c), nil
	case ReprNumber:
		return a.DecimalDegrees(), nil
	case ReprDescriptor:
		if null {
			return InstanceDescriptor{Type: angleTypeTag, Constant: emptyConstantTag}, nil
		}
		return InstanceDescriptor{
			Type:        angleTypeTag,
			Constructor: angleConstructorTag,
			Args:        []float64{a.DecimalDegrees()},
		}, nil
	}
	return nil, &UnsupportedConversionError{Kind: k.String()}
}

// standardAngles holds the symbolic presets the bridge suggests to
// design-time hosts, keyed by name. The list is suggestive, not
// exclusive: hosts still accept arbitrary input.
var standardAngles = []struct {
	name  string
	value Angle
}{
	{"Equator", NewAngle(0)},
	{"Tropic of Cancer", NewAngle(23.4366)},
	{"Tropic of Capricorn", NewAngle(-23.4366)},
	{"Arctic Circle", NewAngle(66.5634)},
	{"Antarctic Circle", NewAngle(-66.5634)},
	{"North Pole", NewAngle(90)},
	{"South Pole", NewAngle(-90)},
}

// StandardValues returns the fixed, ordered list of symbolic preset
// names. The returned slice is a copy.
func (AngleConverter) StandardValues() []string {
	names := make([]string, len(standardAngles))
	for i, s := range standardAngles {
		names[i] = s.name
	}
	return names
}

// StandardValuesExclusive reports whether the standard values are the
// only permitted inputs. They never are.
func (AngleConverter) StandardValuesExclusive() bool { return false }

// StandardAngle resolves a symbolic preset name to its angle.
func StandardAngle(name string) (Angle, bool) {
	for _, s := range standardAngles {
		if s.name == name {
			return s.value, true
		}
	}
	return Angle{}, false
}
