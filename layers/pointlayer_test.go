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

package layers

import (
	"errors"
	"reflect"
	"testing"

	"github.com/ctessum/geom"

	"github.com/mytudousi/DotSpatial/data"
)

func pointSet(kind data.GeometryKind, points ...geom.Point) *data.FeatureSet {
	fs := data.NewFeatureSet(kind)
	for _, p := range points {
		fs.Add(&data.Feature{Geom: p})
	}
	return fs
}

// TestGeometryKindGate checks that an incompatible geometry kind
// prevents the layer from coming into existence.
func TestGeometryKindGate(t *testing.T) {
	for _, kind := range []data.GeometryKind{data.KindLine, data.KindPolygon} {
		l, err := NewPointLayer(pointSet(kind))
		if l != nil {
			t.Errorf("%s: a layer escaped the gate", kind)
		}
		var ge *GeometryKindMismatchError
		if !errors.As(err, &ge) {
			t.Errorf("%s: want *GeometryKindMismatchError but have %v", kind, err)
			continue
		}
		if ge.Kind != kind {
			t.Errorf("want kind %s but have %s", kind, ge.Kind)
		}
	}

	for _, kind := range []data.GeometryKind{data.KindPoint, data.KindMultiPoint, data.KindUnspecified} {
		if _, err := NewPointLayer(pointSet(kind)); err != nil {
			t.Errorf("%s: unexpected error %v", kind, err)
		}
	}
}

func TestNewPointLayerNil(t *testing.T) {
	if _, err := NewPointLayer(nil); err == nil {
		t.Error("expected an error for a nil collection")
	}
}

func TestExtentEmptyCollection(t *testing.T) {
	l, err := NewPointLayer(pointSet(data.KindPoint))
	if err != nil {
		t.Fatal(err)
	}
	if !l.Extent.Empty() {
		t.Errorf("want an empty extent but have %v", l.Extent)
	}
}

// TestExtentSingleFeature checks the degenerate-bounds padding: a
// single point at (x, y) yields an extent of at least
// [x-10, x+10] x [y-10, y+10].
func TestExtentSingleFeature(t *testing.T) {
	l, err := NewPointLayer(pointSet(data.KindPoint, geom.Point{X: 3, Y: 4}))
	if err != nil {
		t.Fatal(err)
	}
	want := &geom.Bounds{
		Min: geom.Point{X: -7, Y: -6},
		Max: geom.Point{X: 13, Y: 14},
	}
	if !reflect.DeepEqual(want, l.Extent) {
		t.Errorf("want %v but have %v", want, l.Extent)
	}
}

// TestExtentMultipleFeatures checks that two or more rows yield an
// unpadded copy of the collection's own extent.
func TestExtentMultipleFeatures(t *testing.T) {
	fs := pointSet(data.KindPoint,
		geom.Point{X: 0, Y: 0},
		geom.Point{X: 8, Y: -2},
		geom.Point{X: 3, Y: 11},
	)
	l, err := NewPointLayer(fs)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(fs.Extent(), l.Extent) {
		t.Errorf("want %v but have %v", fs.Extent(), l.Extent)
	}
}

// TestExtentIsACopy checks that the layer's extent is not retroactively
// altered by later changes to the collection.
func TestExtentIsACopy(t *testing.T) {
	fs := pointSet(data.KindPoint,
		geom.Point{X: 0, Y: 0},
		geom.Point{X: 1, Y: 1},
	)
	l, err := NewPointLayer(fs)
	if err != nil {
		t.Fatal(err)
	}
	before := *l.Extent

	fs.Add(&data.Feature{Geom: geom.Point{X: 1000, Y: 1000}})
	if *l.Extent != before {
		t.Errorf("collection edit leaked into the layer extent: %v", l.Extent)
	}
}

func TestDefaultSchemeInstalled(t *testing.T) {
	l, err := NewPointLayer(pointSet(data.KindPoint, geom.Point{X: 1, Y: 1}))
	if err != nil {
		t.Fatal(err)
	}
	if l.Symbology == nil || len(l.Symbology.Categories) == 0 {
		t.Fatal("no rendering scheme was installed")
	}
}

// TestConfigurationDeterministic checks that constructing twice from
// the same collection yields the same extent and scheme.
func TestConfigurationDeterministic(t *testing.T) {
	fs := pointSet(data.KindPoint,
		geom.Point{X: 2, Y: 3},
		geom.Point{X: 9, Y: 1},
	)
	a, err := NewPointLayer(fs)
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewPointLayer(fs)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a.Extent, b.Extent) {
		t.Errorf("extents differ: %v, %v", a.Extent, b.Extent)
	}
	if !reflect.DeepEqual(a.Symbology, b.Symbology) {
		t.Error("schemes differ")
	}
}

func TestLayerSurface(t *testing.T) {
	fs := pointSet(data.KindPoint, geom.Point{X: 1, Y: 2})
	fs.Name = "wells"
	l, err := NewPointLayer(fs)
	if err != nil {
		t.Fatal(err)
	}
	var _ Layer = l
	if l.Bounds() != l.Extent {
		t.Error("Bounds does not report the cached extent")
	}
	if l.LegendText() != "wells" {
		t.Errorf("want wells but have %q", l.LegendText())
	}
}
