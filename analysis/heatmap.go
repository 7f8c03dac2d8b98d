// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package analysis

import (
	"image/color"
	"io"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const (
	// HeatMapSize is the width and height of a rendered heat map.
	HeatMapSize = 10 * vg.Inch

	heatMapColors = 255
)

// heatGrid exposes a Matrix as a plotter.GridXYZ with the first column drawn
// in the top row.
type heatGrid struct {
	m *Matrix
}

func (g heatGrid) Dims() (c, r int) {
	n := len(g.m.Columns)
	return n, n
}

func (g heatGrid) Z(c, r int) float64 {
	return g.m.Values[len(g.m.Columns)-1-r][c]
}

func (g heatGrid) X(c int) float64 { return float64(c) }

func (g heatGrid) Y(r int) float64 { return float64(r) }

// HeatMap builds a plot of the matrix on a diverging blue to red scale fixed
// to [-1, 1]. Undefined coefficients are drawn grey.
func (m *Matrix) HeatMap() (*plot.Plot, error) {
	n := len(m.Columns)
	if n == 0 {
		return nil, ErrEmptyMatrix
	}

	colors := moreland.SmoothBlueRed()
	colors.SetMin(-1)
	colors.SetMax(1)

	h := plotter.NewHeatMap(heatGrid{m: m}, colors.Palette(heatMapColors))
	h.Min, h.Max = -1, 1
	h.NaN = color.Gray{Y: 0xd0}

	p := plot.New()
	p.Title.Text = "Correlation Matrix"
	p.Add(h)

	xticks := make([]plot.Tick, n)
	yticks := make([]plot.Tick, n)
	for i, name := range m.Columns {
		xticks[i] = plot.Tick{Value: float64(i), Label: name}
		yticks[i] = plot.Tick{Value: float64(n - 1 - i), Label: name}
	}
	p.X.Tick.Marker = plot.ConstantTicks(xticks)
	p.Y.Tick.Marker = plot.ConstantTicks(yticks)
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter
	return p, nil
}

// SaveHeatMap renders the heat map to path. The image format follows the
// file extension (png, jpg, svg, pdf, eps, tif).
func (m *Matrix) SaveHeatMap(path string) error {
	p, err := m.HeatMap()
	if err != nil {
		return err
	}
	return p.Save(HeatMapSize, HeatMapSize, path)
}

// WriteHeatMap renders the heat map to w in format, e.g. "png".
func (m *Matrix) WriteHeatMap(w io.Writer, format string) error {
	p, err := m.HeatMap()
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(HeatMapSize, HeatMapSize, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}
