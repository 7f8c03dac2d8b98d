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

package ingestion

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/jobscout/core"
)

// Merger acquires sources and concatenates them into a single table.
type Merger struct {
	dir     string
	csvOpts CSVOptions
	pool    *ants.Pool
	logger  *slog.Logger
}

// Option configures a Merger.
type Option func(*Merger) error

// WithPoolSize sets the worker pool size for loading files.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(m *Merger) error {
		if size < 1 {
			size = 1
		}

		if m.pool != nil {
			m.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		m.pool = pool
		return nil
	}
}

// WithDateColumns sets the columns parsed as datetimes when loading CSV files.
func WithDateColumns(columns ...string) Option {
	return func(m *Merger) error {
		m.csvOpts.DateColumns = columns
		return nil
	}
}

// WithDateLayouts overrides the layouts tried for date columns.
func WithDateLayouts(layouts ...string) Option {
	return func(m *Merger) error {
		m.csvOpts.DateLayouts = layouts
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(m *Merger) error {
		if logger == nil {
			logger = slog.Default()
		}
		m.logger = logger
		return nil
	}
}

// NewMerger creates a merger resolving file sources against dir.
func NewMerger(dir string, opts ...Option) (*Merger, error) {
	if dir == "" {
		return nil, ErrDirectoryRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	m := &Merger{
		dir:    dir,
		pool:   pool,
		logger: slog.Default(),
	}

	for _, opt := range opts {
		if optErr := opt(m); optErr != nil {
			m.Release()
			return nil, optErr
		}
	}

	m.logger = m.logger.With("component", "merger")
	return m, nil
}

// loadResult is the outcome of acquiring one file source.
type loadResult struct {
	table *core.Table
	err   error
}

// Merge acquires every source, tags its rows with the source label in
// core.SourceColumn and concatenates the results in source order. Sources
// that fail to load are logged and skipped. When nothing could be acquired
// the result is an empty table. Caller supplied tables are never modified.
// The only error returned is the context's.
func (m *Merger) Merge(ctx context.Context, sources ...Source) (*core.Table, error) {
	loaded := m.loadFiles(ctx, sources)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tagged := make([]*core.Table, 0, len(sources))
	for i, source := range sources {
		var table *core.Table
		switch s := source.(type) {
		case FileRef:
			if loaded[i].err != nil {
				m.logger.Warn("error loading source", "source", s.Name, "err", loaded[i].err)
				continue
			}
			table = loaded[i].table
			m.logger.Info("loaded source", "source", s.Name, "rows", table.NumRows(), "columns", table.NumColumns())
		case LabeledTable:
			table = s.Table
			m.logger.Info("using preloaded table", "label", s.Label, "rows", rowsOf(table), "columns", colsOf(table))
		case RawTable:
			table = s.Table
			m.logger.Info("using unnamed preloaded table", "rows", rowsOf(table), "columns", colsOf(table))
		default:
			m.logger.Warn("unsupported source type", "type", fmt.Sprintf("%T", source))
			continue
		}
		if table == nil {
			m.logger.Warn("error loading source", "source", source.sourceLabel(), "err", fmt.Errorf("%w: table is nil", ErrSourceUnavailable))
			continue
		}

		out, err := tagRows(table, source.sourceLabel())
		if err != nil {
			m.logger.Warn("error tagging source", "source", source.sourceLabel(), "err", err)
			continue
		}
		tagged = append(tagged, out)
	}

	if len(tagged) == 0 {
		m.logger.Warn("no valid data sources provided")
		return core.EmptyTable(), nil
	}

	combined := core.Concat(tagged...)
	m.logger.Info("combined sources", "sources", len(tagged), "rows", combined.NumRows(), "columns", combined.NumColumns())
	return combined, nil
}

// loadFiles loads every FileRef on the worker pool. Results are indexed like
// sources; non-file slots stay zero.
func (m *Merger) loadFiles(ctx context.Context, sources []Source) []loadResult {
	results := make([]loadResult, len(sources))
	var wg sync.WaitGroup
	for i, source := range sources {
		ref, ok := source.(FileRef)
		if !ok {
			continue
		}
		if ctx.Err() != nil {
			break
		}

		path := ref.Name
		if !filepath.IsAbs(path) {
			path = filepath.Join(m.dir, path)
		}

		wg.Add(1)
		err := m.pool.Submit(func() {
			defer wg.Done()
			table, err := LoadCSV(path, m.csvOpts)
			results[i] = loadResult{table: table, err: err}
		})
		if err != nil {
			wg.Done()
			results[i] = loadResult{err: fmt.Errorf("%w: %w", ErrSourceUnavailable, err)}
		}
	}
	wg.Wait()
	return results
}

// tagRows returns a copy of table with every row labeled.
func tagRows(table *core.Table, label string) (*core.Table, error) {
	labels := make([]any, table.NumRows())
	for i := range labels {
		labels[i] = label
	}
	return table.WithColumn(core.NewColumn(core.SourceColumn, labels...))
}

func rowsOf(t *core.Table) int {
	if t == nil {
		return 0
	}
	return t.NumRows()
}

func colsOf(t *core.Table) int {
	if t == nil {
		return 0
	}
	return t.NumColumns()
}

// Release releases the worker pool.
// The merger should not be used after calling Release.
func (m *Merger) Release() {
	if m.pool != nil {
		m.pool.Release()
	}
}
