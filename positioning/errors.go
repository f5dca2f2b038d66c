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

// FormatError reports text that could not be parsed as a measurement
// scalar under the given culture. Hosts typically recover by
// re-prompting for input.
type FormatError struct {
	Input string
	Err   error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("positioning: cannot parse %q as a measurement: %v", e.Input, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// UnsupportedConversionError reports a conversion request involving a
// representation outside the supported set. It is surfaced to the
// caller and never retried.
type UnsupportedConversionError struct {
	// Kind describes the offending representation, either a
	// RepresentationKind name or a Go type name.
	Kind string
}

func (e *UnsupportedConversionError) Error() string {
	return fmt.Sprintf("positioning: conversion involving %s is not supported", e.Kind)
}
