package analysis

import (
	"bytes"
	"math"
	"testing"

	"github.com/poiesic/jobscout/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func numbersTable(t *testing.T) *core.Table {
	t.Helper()
	table, err := core.NewTable(
		core.NewColumn("up", 1, 2, 3, 4),
		core.NewColumn("double", 2.0, 4.0, 6.0, 8.0),
		core.NewColumn("down", 4, 3, 2, 1),
		core.NewColumn("partial", 2.0, 4.0, 7.0, nil),
		core.NewColumn("flat", 5, 5, 5, 5),
		core.NewColumn("lonely", nil, nil, 1.0, nil),
		core.NewColumn("title", "a", "b", "c", "d"),
	)
	require.NoError(t, err)
	return table
}

func TestCorrelate(t *testing.T) {
	m, err := Correlate(numbersTable(t), "up", "double", "down", "partial")
	require.NoError(t, err)

	tests := []struct {
		a, b     string
		expected float64
	}{
		{"up", "up", 1},
		{"up", "double", 1},
		{"up", "down", -1},
		{"down", "up", -1},
		{"up", "partial", 0.9933992677987828},
		{"partial", "up", 0.9933992677987828},
	}
	for _, tt := range tests {
		got, ok := m.At(tt.a, tt.b)
		require.True(t, ok)
		assert.InDelta(t, tt.expected, got, 1e-9, "%s/%s", tt.a, tt.b)
	}

	_, ok := m.At("up", "missing")
	assert.False(t, ok)
}

func TestCorrelate_Degenerate(t *testing.T) {
	m, err := Correlate(numbersTable(t), "up", "flat", "lonely")
	require.NoError(t, err)

	for _, pair := range [][2]string{{"up", "flat"}, {"flat", "flat"}, {"up", "lonely"}, {"lonely", "lonely"}} {
		got, _ := m.At(pair[0], pair[1])
		assert.True(t, math.IsNaN(got), "%s/%s = %v", pair[0], pair[1], got)
	}
}

func TestCorrelate_Errors(t *testing.T) {
	_, err := Correlate(nil, "up")
	assert.Equal(t, ErrTableRequired, err)

	_, err = Correlate(numbersTable(t), "up", "missing")
	assert.ErrorIs(t, err, core.ErrUnknownColumn)

	_, err = Correlate(numbersTable(t), "up", "title")
	assert.ErrorIs(t, err, ErrNonNumericColumn)
}

func TestMatrixWriteCSV(t *testing.T) {
	m := &Matrix{
		Columns: []string{"a", "b"},
		Values:  [][]float64{{1, -0.5}, {-0.5, math.NaN()}},
	}

	var buf bytes.Buffer
	require.NoError(t, m.WriteCSV(&buf))
	assert.Equal(t, ",a,b\na,1,-0.5\nb,-0.5,\n", buf.String())
}
