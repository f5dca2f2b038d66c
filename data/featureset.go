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

// Package data holds the vector feature model: features, geometry-kind
// tagged feature collections, and readers that load them from files.
package data

import (
	"github.com/ctessum/geom"
	"github.com/ctessum/geom/index/rtree"
	"github.com/ctessum/geom/proj"
)

// GeometryKind tags a feature collection with the family of geometries
// it holds.
type GeometryKind int

const (
	// KindUnspecified means the collection has not declared a
	// geometry family.
	KindUnspecified GeometryKind = iota
	// KindPoint holds single-point features.
	KindPoint
	// KindMultiPoint holds multi-point features.
	KindMultiPoint
	// KindLine holds polyline features.
	KindLine
	// KindPolygon holds polygon features.
	KindPolygon
)

func (k GeometryKind) String() string {
	switch k {
	case KindUnspecified:
		return "unspecified"
	case KindPoint:
		return "point"
	case KindMultiPoint:
		return "multipoint"
	case KindLine:
		return "line"
	case KindPolygon:
		return "polygon"
	}
	return "unknown"
}

// Feature is a single geometric feature together with its attribute
// row. Attribute values are string, int64, or float64.
type Feature struct {
	geom.Geom
	Attributes map[string]interface{}
}

// FeatureSet is a geometry-kind tagged collection of features with a
// spatial index.
type FeatureSet struct {
	// Name identifies the collection, typically the base name of the
	// file it was read from.
	Name string
	// SR is the collection's spatial reference, if known.
	SR *proj.SR

	kind     GeometryKind
	index    *rtree.Rtree
	features []*Feature
}

// NewFeatureSet initializes an empty feature collection of the given
// geometry kind.
func NewFeatureSet(kind GeometryKind) *FeatureSet {
	return &FeatureSet{
		kind:  kind,
		index: rtree.NewTree(25, 50),
	}
}

// GeometryKind returns the geometry family the collection holds.
func (fs *FeatureSet) GeometryKind() GeometryKind { return fs.kind }

// Add appends a feature to the collection and indexes it.
func (fs *FeatureSet) Add(f *Feature) {
	fs.index.Insert(f)
	fs.features = append(fs.features, f)
}

// Count returns the number of feature rows in the collection.
func (fs *FeatureSet) Count() int { return len(fs.features) }

// Features returns the features stored in the collection.
func (fs *FeatureSet) Features() []*Feature { return fs.features }

// Extent computes the spatial bounding box of the collection. The
// result is freshly allocated on every call, so callers own it; an
// empty collection yields bounds for which Empty() is true.
func (fs *FeatureSet) Extent() *geom.Bounds {
	b := geom.NewBounds()
	for _, f := range fs.features {
		b.Extend(f.Bounds())
	}
	return b
}

// SearchIntersect returns the features whose bounds overlap b.
func (fs *FeatureSet) SearchIntersect(b *geom.Bounds) []*Feature {
	hits := fs.index.SearchIntersect(b)
	o := make([]*Feature, len(hits))
	for i, h := range hits {
		o[i] = h.(*Feature)
	}
	return o
}
