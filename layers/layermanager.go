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
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ctessum/geom"
	"github.com/pkg/errors"

	"github.com/mytudousi/DotSpatial/data"
)

// Layer is the minimal surface shared by map layers.
type Layer interface {
	Bounds() *geom.Bounds
	LegendText() string
}

// OpenFunc opens a data file as a map layer.
type OpenFunc func(filename string) (Layer, error)

// LayerManager maps file extensions to layer openers.
type LayerManager struct {
	openers map[string]OpenFunc
}

// NewLayerManager returns a manager with the built-in openers
// registered.
func NewLayerManager() *LayerManager {
	m := &LayerManager{openers: make(map[string]OpenFunc)}
	m.Register(".shp", openShapefileLayer)
	return m
}

// Register associates a file extension (including the dot, case
// insensitive) with an opener. Registering an extension twice replaces
// the earlier opener.
func (m *LayerManager) Register(ext string, fn OpenFunc) {
	m.openers[strings.ToLower(ext)] = fn
}

// OpenLayer opens a data file as a map layer using the opener
// registered for its extension.
func (m *LayerManager) OpenLayer(filename string) (Layer, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	fn, ok := m.openers[ext]
	if !ok {
		return nil, fmt.Errorf("layers: no opener registered for %q files", ext)
	}
	return fn(filename)
}

// DefaultManager is the manager used by the package-level open
// helpers.
var DefaultManager = NewLayerManager()

// OpenPointLayer opens a data file and narrows the result to a point
// layer, failing if the file opens as some other layer kind.
func OpenPointLayer(filename string) (*PointLayer, error) {
	l, err := DefaultManager.OpenLayer(filename)
	if err != nil {
		return nil, err
	}
	pl, ok := l.(*PointLayer)
	if !ok {
		return nil, fmt.Errorf("layers: %s did not open as a point layer", filename)
	}
	return pl, nil
}

func openShapefileLayer(filename string) (Layer, error) {
	fs, err := data.ReadShapefile(filename)
	if err != nil {
		return nil, errors.Wrap(err, "layers: opening shapefile layer")
	}
	return NewPointLayer(fs)
}
