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

const (
	angleTypeTag        = "Angle"
	angleConstructorTag = "FromDecimalDegrees"
	emptyConstantTag    = "Empty"
)

// InstanceDescriptor is a recipe for re-creating a measurement value
// later: either the name of a one-scalar constructor plus its argument,
// or the name of a well-known constant. It is plain data; the host
// replays it through Materialize.
type InstanceDescriptor struct {
	// Type is the value-type tag, e.g. "Angle".
	Type string
	// Constructor names the one-scalar constructor to replay. It is
	// empty when Constant is set.
	Constructor string
	// Constant names a well-known constant of the type, e.g. "Empty".
	Constant string
	// Args holds the constructor arguments. The descriptor scheme is
	// defined for single-scalar constructors, so a valid constructor
	// descriptor carries exactly one argument.
	Args []float64
}

// IsConstant reports whether d references a well-known constant rather
// than a constructor call.
func (d InstanceDescriptor) IsConstant() bool {
	return d.Constant != ""
}

// Constructor functions and well-known constants are looked up by
// "Type.Name" tags. Registration happens during package init; the maps
// are read-only afterward, which keeps Materialize safe for concurrent
// use.
var (
	constructors = make(map[string]func(float64) interface{})
	constants    = make(map[string]interface{})
)

// RegisterConstructor makes a one-scalar constructor available for
// descriptor replay. It must be called during init.
func RegisterConstructor(typeTag, ctorTag string, fn func(float64) interface{}) {
	constructors[typeTag+"."+ctorTag] = fn
}

// RegisterConstant makes a well-known constant available for descriptor
// replay. It must be called during init.
func RegisterConstant(typeTag, constTag string, v interface{}) {
	constants[typeTag+"."+constTag] = v
}

// Materialize replays a descriptor, producing a value equivalent to the
// one the descriptor was created from.
func Materialize(d InstanceDescriptor) (interface{}, error) {
	if d.IsConstant() {
		v, ok := constants[d.Type+"."+d.Constant]
		if !ok {
			return nil, fmt.Errorf("positioning: no constant registered for %s.%s", d.Type, d.Constant)
		}
		return v, nil
	}
	fn, ok := constructors[d.Type+"."+d.Constructor]
	if !ok {
		return nil, fmt.Errorf("positioning: no constructor registered for %s.%s", d.Type, d.Constructor)
	}
	if len(d.Args) != 1 {
		return nil, fmt.Errorf("positioning: constructor %s.%s requires exactly one scalar argument; got %d",
			d.Type, d.Constructor, len(d.Args))
	}
	return fn(d.Args[0]), nil
}
