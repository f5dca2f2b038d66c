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

// Package layers holds map layers and the configuration logic that
// establishes their invariants at construction time.
package layers

import (
	"fmt"

	"github.com/ctessum/geom"

	"github.com/mytudousi/DotSpatial/data"
	"github.com/mytudousi/DotSpatial/symbology"
)

// pointLayerPadding is the symmetric padding, in map units per axis,
// applied to the extent of a single-feature collection so that the
// layer never reports a zero-area viewing window.
const pointLayerPadding = 10.

// GeometryKindMismatchError reports an attempt to construct a layer
// from a feature collection of an incompatible geometry family. The
// construction attempt aborts; no layer exists afterward.
type GeometryKindMismatchError struct {
	Kind data.GeometryKind
}

func (e *GeometryKindMismatchError) Error() string {
	return fmt.Sprintf("layers: cannot construct a point layer from a %s feature collection", e.Kind)
}

// PointLayer is a map layer over a point or multipoint feature
// collection. The collection is referenced, not copied; the extent and
// symbology are set once at construction and owned by the layer
// afterward.
type PointLayer struct {
	// FeatureSet is the collection the layer draws. It remains owned
	// by the caller and is read-only from the layer's perspective.
	FeatureSet *data.FeatureSet
	// Extent is the layer's cached bounding box. It is derived at
	// construction and not kept in sync with later collection edits.
	Extent *geom.Bounds
	// Symbology is the layer's rendering scheme.
	Symbology *symbology.PointScheme
}

// NewPointLayer constructs and configures a point layer from a feature
// collection. The collection's geometry kind must be point, multipoint,
// or unspecified; otherwise construction fails with a
// *GeometryKindMismatchError and no layer object escapes.
//
// The layer extent is derived from the collection: an empty collection
// yields empty bounds, a single-feature collection yields the
// collection extent padded by 10 units on each axis, and anything
// larger yields an exact copy of the collection extent. A default
// point scheme is installed unconditionally.
func NewPointLayer(fs *data.FeatureSet) (*PointLayer, error) {
	if fs == nil {
		return nil, fmt.Errorf("layers: nil feature collection")
	}
	switch fs.GeometryKind() {
	case data.KindPoint, data.KindMultiPoint, data.KindUnspecified:
	default:
		return nil, &GeometryKindMismatchError{Kind: fs.GeometryKind()}
	}

	l := &PointLayer{FeatureSet: fs}
	switch n := fs.Count(); {
	case n == 0:
		l.Extent = geom.NewBounds()
	case n == 1:
		b := fs.Extent()
		b.Min.X -= pointLayerPadding
		b.Min.Y -= pointLayerPadding
		b.Max.X += pointLayerPadding
		b.Max.Y += pointLayerPadding
		l.Extent = b
	default:
		l.Extent = fs.Extent()
	}
	l.Symbology = symbology.NewDefaultPointScheme()
	return l, nil
}

// Bounds returns the layer's cached extent, satisfying the Layer
// interface.
func (l *PointLayer) Bounds() *geom.Bounds { return l.Extent }

// LegendText returns the layer's display name.
func (l *PointLayer) LegendText() string { return l.FeatureSet.Name }
