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

import (
	"errors"
	"testing"

	"golang.org/x/text/language"
)

func TestParseAngle(t *testing.T) {
	de := CultureFor(language.German)
	tests := []struct {
		input   string
		culture Culture
		want    Angle
	}{
		{"45.5", InvariantCulture, NewAngle(45.5)},
		{"45.5°", InvariantCulture, NewAngle(45.5)},
		{"  -23.4366 ", InvariantCulture, NewAngle(-23.4366)},
		{"1,234.5", InvariantCulture, NewAngle(1234.5)},
		{"45,5", de, NewAngle(45.5)},
		{"1.234,5°", de, NewAngle(1234.5)},
		{"0°", InvariantCulture, AngleEmpty},
		{"", InvariantCulture, AngleEmpty},
		{"   ", InvariantCulture, AngleEmpty},
	}
	for _, test := range tests {
		have, err := ParseAngle(test.input, test.culture)
		if err != nil {
			t.Errorf("%q: unexpected error %v", test.input, err)
			continue
		}
		if !have.Equals(test.want) {
			t.Errorf("%q: want %v but have %v", test.input, test.want, have)
		}
	}
}

func TestParseAngleMalformed(t *testing.T) {
	for _, input := range []string{"north", "12.3.4", "--5", "45x"} {
		_, err := ParseAngle(input, InvariantCulture)
		if err == nil {
			t.Errorf("%q: expected an error", input)
			continue
		}
		var fe *FormatError
		if !errors.As(err, &fe) {
			t.Errorf("%q: want *FormatError but have %T", input, err)
		} else if fe.Input != input {
			t.Errorf("%q: error records input %q", input, fe.Input)
		}
	}
}

func TestAngleFormat(t *testing.T) {
	de := CultureFor(language.German)
	tests := []struct {
		a       Angle
		culture Culture
		want    string
	}{
		{NewAngle(45.5), InvariantCulture, "45.5°"},
		{NewAngle(45.5), de, "45,5°"},
		{NewAngle(0), InvariantCulture, "0°"},
		{NewAngle(-90), InvariantCulture, "-90°"},
	}
	for _, test := range tests {
		if have := test.a.Format(test.culture); have != test.want {
			t.Errorf("want %q but have %q", test.want, have)
		}
	}
	if NewAngle(45.5).String() != "45.5°" {
		t.Errorf("String: want 45.5° but have %s", NewAngle(45.5))
	}
}

func TestAngleEquivalence(t *testing.T) {
	// Any two instances constructed from the same scalar are
	// observably equivalent.
	a, b := NewAngle(12.25), NewAngle(12.25)
	if a != b {
		t.Errorf("%v != %v", a, b)
	}
	if !a.Equals(b) {
		t.Errorf("Equals: %v != %v", a, b)
	}
	if a.DecimalDegrees() != b.DecimalDegrees() {
		t.Errorf("scalars differ: %v, %v", a.DecimalDegrees(), b.DecimalDegrees())
	}
}

func TestAngleNormalize(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{360, 0},
		{365, 5},
		{-90, 270},
		{720.5, 0.5},
	}
	for _, test := range tests {
		if have := NewAngle(test.in).Normalize(); have.DecimalDegrees() != test.want {
			t.Errorf("Normalize(%v): want %v but have %v", test.in, test.want, have.DecimalDegrees())
		}
	}
}

func TestAngleArithmetic(t *testing.T) {
	if have := NewAngle(30).Add(NewAngle(12.5)); !have.Equals(NewAngle(42.5)) {
		t.Errorf("Add: want 42.5° but have %v", have)
	}
	if have := NewAngle(30).Multiply(-2); !have.Equals(NewAngle(-60)) {
		t.Errorf("Multiply: want -60° but have %v", have)
	}
}

func TestCultureFor(t *testing.T) {
	if c := CultureFor(language.German); c.normalizeNumber("1.234,5") != "1234.5" {
		t.Errorf("German: have %q", c.normalizeNumber("1.234,5"))
	}
	if c := CultureFor(language.Japanese); c.normalizeNumber("1,234.5") != "1234.5" {
		t.Errorf("unlisted language should fall back to invariant separators: have %q",
			c.normalizeNumber("1,234.5"))
	}
}

func TestAngleEmpty(t *testing.T) {
	if !AngleEmpty.IsEmpty() {
		t.Error("AngleEmpty is not empty")
	}
	if !AngleEmpty.Equals(NewAngle(0)) {
		t.Error("AngleEmpty != NewAngle(0)")
	}
	if NewAngle(1).IsEmpty() {
		t.Error("NewAngle(1) reports empty")
	}
}
