package ingestion

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/poiesic/jobscout/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMerger(t *testing.T, dir string, logs *bytes.Buffer, opts ...Option) *Merger {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(logs, nil))
	m, err := NewMerger(dir, append([]Option{WithLogger(logger), WithPoolSize(2)}, opts...)...)
	require.NoError(t, err)
	t.Cleanup(m.Release)
	return m
}

func TestNewMerger(t *testing.T) {
	t.Run("requires directory", func(t *testing.T) {
		_, err := NewMerger("")
		assert.Equal(t, ErrDirectoryRequired, err)
	})

	t.Run("nil logger falls back to default", func(t *testing.T) {
		m, err := NewMerger(t.TempDir(), WithLogger(nil))
		require.NoError(t, err)
		defer m.Release()
		assert.NotNil(t, m.logger)
	})
}

func TestMerge_DisjointColumns(t *testing.T) {
	first, err := core.NewTable(core.NewColumn("A", 1, 2), core.NewColumn("B", "x", "y"))
	require.NoError(t, err)
	second, err := core.NewTable(core.NewColumn("A", 3), core.NewColumn("C", "z"))
	require.NoError(t, err)

	var logs bytes.Buffer
	m := newTestMerger(t, t.TempDir(), &logs)

	merged, err := m.Merge(context.Background(),
		LabeledTable{Label: "first", Table: first},
		RawTable{Table: second},
	)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"A", "B", "C", core.SourceColumn}, merged.ColumnNames())
	assert.Equal(t, 3, merged.NumRows())

	c, _ := merged.Column("C")
	assert.Equal(t, []any{nil, nil, "z"}, c.Values)
	b, _ := merged.Column("B")
	assert.Equal(t, []any{"x", "y", nil}, b.Values)
	src, _ := merged.Column(core.SourceColumn)
	assert.Equal(t, []any{"first", "first", DefaultLabel}, src.Values)

	assert.False(t, first.HasColumn(core.SourceColumn), "input table was modified")
	assert.False(t, second.HasColumn(core.SourceColumn), "input table was modified")
}

func TestMerge_FilesInSourceOrder(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.csv"), []byte("title,pay\ngo dev,10\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.csv"), []byte("title,city\npython dev,Austin\nsre,Boston\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.csv"), []byte("title\n\"unterminated\n"), 0644))

	var logs bytes.Buffer
	m := newTestMerger(t, dir, &logs)

	merged, err := m.Merge(context.Background(), Files("b.csv", "missing.csv", "bad.csv", "a.csv")...)
	require.NoError(t, err)

	assert.Equal(t, []string{"title", "city", core.SourceColumn, "pay"}, merged.ColumnNames())
	src, _ := merged.Column(core.SourceColumn)
	assert.Equal(t, []any{"b.csv", "b.csv", "a.csv"}, src.Values)

	pay, _ := merged.Column("pay")
	assert.Equal(t, core.KindFloat, pay.Kind)
	assert.Equal(t, []any{nil, nil, 10.0}, pay.Values)

	assert.Contains(t, logs.String(), "missing.csv")
	assert.Contains(t, logs.String(), "bad.csv")
}

func TestMerge_NothingAcquired(t *testing.T) {
	var logs bytes.Buffer
	m := newTestMerger(t, t.TempDir(), &logs)

	merged, err := m.Merge(context.Background(), FileRef{Name: "missing.csv"}, RawTable{Table: nil})
	require.NoError(t, err)
	assert.True(t, merged.IsEmpty())
	assert.Contains(t, logs.String(), "no valid data sources")
}

func TestMerge_CanceledContext(t *testing.T) {
	var logs bytes.Buffer
	m := newTestMerger(t, t.TempDir(), &logs)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := m.Merge(ctx, FileRef{Name: "a.csv"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMerge_DateColumns(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.csv"), []byte("posted\n2024-01-05\n"), 0644))

	var logs bytes.Buffer
	m := newTestMerger(t, dir, &logs, WithDateColumns("posted"))

	merged, err := m.Merge(context.Background(), FileRef{Name: "a.csv"})
	require.NoError(t, err)
	posted, _ := merged.Column("posted")
	assert.Equal(t, core.KindTime, posted.Kind)
}
