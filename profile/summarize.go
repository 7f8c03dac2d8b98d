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

package profile

import (
	"log/slog"
	"math"
	"slices"

	"github.com/poiesic/jobscout/core"
)

// Report is the result of summarizing a table.
type Report struct {
	Summaries []core.ColumnSummary
	Groups    *core.TypeGroups
}

// Summarizer produces column summaries for tables.
type Summarizer struct {
	inferencer *Inferencer
	priority   []core.InferredType
	logger     *slog.Logger
}

// Option configures a Summarizer.
type Option func(*Summarizer) error

// WithThresholds overrides the inference thresholds.
func WithThresholds(thresholds Thresholds) Option {
	return func(s *Summarizer) error {
		inf, err := NewInferencer(thresholds)
		if err != nil {
			return err
		}
		s.inferencer = inf
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Summarizer) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewSummarizer creates a summarizer with default thresholds.
func NewSummarizer(opts ...Option) (*Summarizer, error) {
	s := &Summarizer{
		inferencer: &Inferencer{thresholds: DefaultThresholds()},
		priority:   typePriority,
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Summarize infers a type for every column of t, the source column included,
// and returns the summaries ordered by type priority along with the type
// groups. Each call computes everything afresh.
func (s *Summarizer) Summarize(t *core.Table) (*Report, error) {
	if t == nil {
		return nil, ErrTableRequired
	}

	summaries := make([]core.ColumnSummary, 0, t.NumColumns())
	for _, col := range t.Columns() {
		summaries = append(summaries, s.summarizeColumn(col))
	}
	SortSummaries(summaries, s.priority)

	groups := GroupByType(summaries)
	if groups.Len() == 0 {
		s.logger.Warn("no summary data to group")
	} else {
		s.logger.Debug("columns grouped by type", "types", groups.Len(), "columns", len(summaries))
	}

	return &Report{Summaries: summaries, Groups: groups}, nil
}

func (s *Summarizer) summarizeColumn(col *core.Column) core.ColumnSummary {
	st := columnStats(col)

	var missing float64
	if st.total > 0 {
		missing = float64(st.total-st.present) / float64(st.total) * 100
	}

	return core.ColumnSummary{
		Name:         col.Name,
		InferredType: s.inferencer.Infer(col),
		StorageType:  col.Kind.String(),
		UniqueValues: st.distinct,
		MissingPct:   math.Round(missing*100) / 100,
	}
}

// SortSummaries orders summaries by the position of their type in priority.
// Types missing from priority sort after all listed ones. The sort is
// stable, so ties keep column order.
func SortSummaries(summaries []core.ColumnSummary, priority []core.InferredType) {
	rank := func(t core.InferredType) int {
		if i := slices.Index(priority, t); i >= 0 {
			return i
		}
		return len(priority)
	}
	slices.SortStableFunc(summaries, func(a, b core.ColumnSummary) int {
		return rank(a.InferredType) - rank(b.InferredType)
	})
}

// GroupByType groups column names by inferred type. Types and the names
// within each group are sorted lexically, independent of summary order.
func GroupByType(summaries []core.ColumnSummary) *core.TypeGroups {
	groups := core.NewTypeGroups()
	for _, s := range summaries {
		groups.Add(s.InferredType, s.Name)
	}
	return groups
}
