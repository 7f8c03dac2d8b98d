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
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/poiesic/jobscout/core"
	"gonum.org/v1/gonum/stat"
)

// Matrix is a symmetric matrix of Pearson correlation coefficients. Entries
// are NaN where a pair has fewer than two joint observations or either side
// has no variance.
type Matrix struct {
	Columns []string
	Values  [][]float64
}

// At returns the coefficient for columns a and b.
func (m *Matrix) At(a, b string) (float64, bool) {
	i, j := -1, -1
	for k, name := range m.Columns {
		if name == a {
			i = k
		}
		if name == b {
			j = k
		}
	}
	if i < 0 || j < 0 {
		return 0, false
	}
	return m.Values[i][j], true
}

// WriteCSV writes the matrix with a header row and the column name leading
// every row. NaN entries are written as empty cells.
func (m *Matrix) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(append([]string{""}, m.Columns...)); err != nil {
		return err
	}
	for i, name := range m.Columns {
		record := make([]string, 0, len(m.Columns)+1)
		record = append(record, name)
		for _, v := range m.Values[i] {
			if math.IsNaN(v) {
				record = append(record, "")
				continue
			}
			record = append(record, strconv.FormatFloat(v, 'f', -1, 64))
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Correlate computes pairwise Pearson correlations between columns of t. Each
// pair uses only the rows where both values are present. Every column must
// exist and have numeric or boolean storage.
func Correlate(t *core.Table, columns ...string) (*Matrix, error) {
	if t == nil {
		return nil, ErrTableRequired
	}
	if err := core.ValidateColumns(t, columns...); err != nil {
		return nil, err
	}

	series := make([][]float64, len(columns))
	present := make([][]bool, len(columns))
	for i, name := range columns {
		col, _ := t.Column(name)
		if !isNumeric(col) {
			return nil, fmt.Errorf("%w: %q has %s storage", ErrNonNumericColumn, name, col.Kind)
		}
		series[i], present[i] = floats(col)
	}

	m := &Matrix{Columns: columns, Values: make([][]float64, len(columns))}
	for i := range columns {
		m.Values[i] = make([]float64, len(columns))
	}
	for i := range columns {
		for j := i; j < len(columns); j++ {
			r := pairwise(series[i], present[i], series[j], present[j])
			if i == j && !math.IsNaN(r) {
				r = 1
			}
			m.Values[i][j] = r
			m.Values[j][i] = r
		}
	}
	return m, nil
}

func pairwise(x []float64, xok []bool, y []float64, yok []bool) float64 {
	var xs, ys []float64
	for k := range x {
		if xok[k] && yok[k] {
			xs = append(xs, x[k])
			ys = append(ys, y[k])
		}
	}
	if len(xs) < 2 {
		return math.NaN()
	}
	if stat.StdDev(xs, nil) == 0 || stat.StdDev(ys, nil) == 0 {
		return math.NaN()
	}
	r := stat.Correlation(xs, ys, nil)
	// rounding can push identical series slightly past 1
	return math.Max(-1, math.Min(1, r))
}

func isNumeric(col *core.Column) bool {
	switch col.Kind {
	case core.KindInt, core.KindFloat, core.KindBool:
		return true
	}
	return false
}

// floats converts a numeric column to float64 values and a presence mask.
func floats(col *core.Column) ([]float64, []bool) {
	values := make([]float64, col.Len())
	present := make([]bool, col.Len())
	for i, v := range col.Values {
		values[i], present[i] = toFloat(v)
	}
	return values, present
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case int64:
		return float64(x), true
	case float64:
		return x, !math.IsNaN(x)
	case bool:
		if x {
			return 1, true
		}
		return 0, true
	}
	return 0, false
}
