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

package data

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ctessum/geom/encoding/shp"
	goshp "github.com/jonas-p/go-shp"
	"github.com/pkg/errors"
)

// ReadShapefile reads an ESRI shapefile into a feature collection. The
// geometry kind is taken from the shapefile header, attribute rows are
// decoded into feature attribute maps, and the spatial reference is
// read from the accompanying .prj file when one exists (a missing .prj
// is not an error).
func ReadShapefile(filename string) (*FeatureSet, error) {
	d, err := shp.NewDecoder(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "data: opening shapefile %s", filename)
	}
	defer d.Close()

	fs := NewFeatureSet(kindFromShapeType(d.GeometryType))
	fs.Name = strings.TrimSuffix(filepath.Base(filename), ".shp")

	var names []string
	for _, f := range d.Fields() {
		names = append(names, f.String())
	}
	for {
		g, vals, more := d.DecodeRowFields(names...)
		if !more {
			break
		}
		attrs := make(map[string]interface{}, len(vals))
		for k, v := range vals {
			attrs[k] = attributeValue(v)
		}
		fs.Add(&Feature{Geom: g, Attributes: attrs})
	}
	if err := d.Error(); err != nil {
		return nil, errors.Wrapf(err, "data: reading shapefile %s", filename)
	}
	if sr, err := d.SR(); err == nil {
		fs.SR = sr
	}
	return fs, nil
}

// kindFromShapeType maps a shapefile header shape type to a geometry
// kind. Measured and 3D variants collapse onto their 2D family.
func kindFromShapeType(t goshp.ShapeType) GeometryKind {
	switch t {
	case goshp.POINT, goshp.POINTZ, goshp.POINTM:
		return KindPoint
	case goshp.MULTIPOINT, goshp.MULTIPOINTZ, goshp.MULTIPOINTM:
		return KindMultiPoint
	case goshp.POLYLINE, goshp.POLYLINEZ, goshp.POLYLINEM:
		return KindLine
	case goshp.POLYGON, goshp.POLYGONZ, goshp.POLYGONM:
		return KindPolygon
	}
	return KindUnspecified
}

// attributeValue converts a dBase attribute string to an int64,
// float64, or trimmed string, in that order of preference.
func attributeValue(s string) interface{} {
	t := strings.TrimSpace(s)
	if i, err := strconv.ParseInt(t, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(t, 64); err == nil {
		return f
	}
	return t
}
