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

// Package symbology holds rendering schemes for map layers.
package symbology

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/Knetic/govaluate"
	"github.com/ctessum/geom/carto"
	"gonum.org/v1/gonum/floats"
)

// PointCategory describes how one class of point features is drawn and
// which features belong to it.
type PointCategory struct {
	LegendText string
	Color      color.NRGBA
	// Size is the symbol size in points.
	Size float64
	// FilterExpression selects the features the category applies to,
	// evaluated against each feature's attribute row. An empty
	// expression matches every feature.
	FilterExpression string
}

// AppliesTo evaluates the category's filter expression against an
// attribute row.
func (c *PointCategory) AppliesTo(attrs map[string]interface{}) (bool, error) {
	if c.FilterExpression == "" {
		return true, nil
	}
	expr, err := govaluate.NewEvaluableExpression(c.FilterExpression)
	if err != nil {
		return false, fmt.Errorf("symbology: bad filter expression %q: %v", c.FilterExpression, err)
	}
	res, err := expr.Evaluate(attrs)
	if err != nil {
		return false, fmt.Errorf("symbology: evaluating filter %q: %v", c.FilterExpression, err)
	}
	b, ok := res.(bool)
	if !ok {
		return false, fmt.Errorf("symbology: filter %q is not a boolean expression", c.FilterExpression)
	}
	return b, nil
}

// PointScheme is the rendering scheme for a point layer: an ordered
// list of categories. Later categories win when filters overlap.
type PointScheme struct {
	Categories []*PointCategory
}

const defaultPointSize = 4

// NewDefaultPointScheme returns the scheme installed on freshly
// constructed point layers: a single category matching every feature.
// The scheme is deterministic so that constructing a layer twice from
// the same collection yields the same symbology.
func NewDefaultPointScheme() *PointScheme {
	return &PointScheme{
		Categories: []*PointCategory{{
			LegendText: "Default",
			Color:      color.NRGBA{R: 0, G: 112, B: 255, A: 255},
			Size:       defaultPointSize,
		}},
	}
}

// CategoryFor returns the last category whose filter matches the
// attribute row, or nil if none matches.
func (s *PointScheme) CategoryFor(attrs map[string]interface{}) (*PointCategory, error) {
	var match *PointCategory
	for _, c := range s.Categories {
		ok, err := c.AppliesTo(attrs)
		if err != nil {
			return nil, err
		}
		if ok {
			match = c
		}
	}
	return match, nil
}

// NewGraduatedPointScheme builds an equal-interval graduated scheme
// over the values of the named attribute field, with n classes colored
// from a linear color ramp. All-equal values collapse to a single
// category.
func NewGraduatedPointScheme(field string, values []float64, n int) (*PointScheme, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("symbology: no values to classify for field %s", field)
	}
	if n < 1 {
		return nil, fmt.Errorf("symbology: invalid class count %d", n)
	}
	min, max := floats.Min(values), floats.Max(values)
	if min == max {
		return &PointScheme{
			Categories: []*PointCategory{{
				LegendText: fmt.Sprintf("%s = %g", field, min),
				Color:      color.NRGBA{R: 0, G: 112, B: 255, A: 255},
				Size:       defaultPointSize,
			}},
		}, nil
	}
	ramp := carto.NewColorMap(carto.Linear)
	ramp.AddArray(values)
	ramp.Set()

	width := (max - min) / float64(n)
	s := &PointScheme{Categories: make([]*PointCategory, n)}
	for i := 0; i < n; i++ {
		lo := min + width*float64(i)
		hi := lo + width
		// Fixed-point notation keeps the bounds parseable by the
		// expression evaluator.
		loS := strconv.FormatFloat(lo, 'f', -1, 64)
		hiS := strconv.FormatFloat(hi, 'f', -1, 64)
		filter := fmt.Sprintf("%s >= %s && %s < %s", field, loS, field, hiS)
		if i == n-1 {
			// The top class includes its upper bound.
			filter = fmt.Sprintf("%s >= %s && %s <= %s", field, loS, field, hiS)
		}
		s.Categories[i] = &PointCategory{
			LegendText:       fmt.Sprintf("%g - %g", lo, hi),
			Color:            ramp.GetColor((lo + hi) / 2),
			Size:             defaultPointSize,
			FilterExpression: filter,
		}
	}
	return s, nil
}
