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

package search

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/poiesic/jobscout/core"
)

// Ranker scores corpus rows against queries. Every call refits the TF-IDF
// model on the corpus it is given; nothing is cached between calls.
type Ranker struct {
	monitor SearchMonitor
	logger  *slog.Logger
}

// Option configures a Ranker.
type Option func(*Ranker) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Ranker) error {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
		return nil
	}
}

// WithMonitor installs a monitor notified at each ranking stage.
// A nil monitor disables monitoring.
func WithMonitor(monitor SearchMonitor) Option {
	return func(r *Ranker) error {
		if monitor == nil {
			monitor = &noopMonitor{}
		}
		r.monitor = monitor
		return nil
	}
}

// NewRanker creates a new ranker.
func NewRanker(opts ...Option) (*Ranker, error) {
	r := &Ranker{
		monitor: &noopMonitor{},
		logger:  slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Rank returns the k corpus rows most similar to query, best first. Ties
// keep ascending row order. If k exceeds the corpus size every row is
// returned; an empty corpus yields an empty result set.
func (r *Ranker) Rank(corpus []string, query string, k int) (*core.ResultSet, error) {
	return r.rank(nil, corpus, query, k, nil)
}

// RankTable ranks corpus like Rank and attaches the values of the extra
// columns of t to every result. corpus must hold one entry per row of t.
// Extra columns missing from t are dropped with a warning.
func (r *Ranker) RankTable(t *core.Table, corpus []string, query string, k int, extra ...string) (*core.ResultSet, error) {
	if t == nil {
		return nil, ErrTableRequired
	}
	if len(corpus) != t.NumRows() {
		return nil, fmt.Errorf("%w: %d entries for %d rows", ErrCorpusMismatch, len(corpus), t.NumRows())
	}

	present, missing := core.SplitColumns(t, extra...)
	for _, name := range missing {
		r.logger.Warn("requested result column not found, dropping", "column", name)
	}
	return r.rank(t, corpus, query, k, present)
}

func (r *Ranker) rank(t *core.Table, corpus []string, query string, k int, columns []string) (*core.ResultSet, error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidLimit, k)
	}

	r.monitor.Start(query)
	results := &core.ResultSet{Columns: columns, Results: []core.SearchResult{}}
	if len(corpus) == 0 {
		r.logger.Debug("empty corpus, nothing to rank", "query", query)
		r.monitor.Finish(results)
		return results, nil
	}

	model := Fit(corpus)
	r.monitor.AfterFit(model.Len(), len(model.vocabulary))

	scores := model.Scores(query)
	r.monitor.AfterScoring(scores)

	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		switch {
		case scores[a] > scores[b]:
			return -1
		case scores[a] < scores[b]:
			return 1
		default:
			return 0
		}
	})
	if k < len(order) {
		order = order[:k]
	}

	for _, idx := range order {
		result := core.SearchResult{Index: idx, Score: scores[idx]}
		if len(columns) > 0 {
			result.Attributes = make(map[string]any, len(columns))
			for _, name := range columns {
				col, _ := t.Column(name)
				result.Attributes[name] = col.Values[idx]
			}
		}
		results.Results = append(results.Results, result)
	}

	r.logger.Debug("ranked corpus", "query", query, "documents", len(corpus), "returned", results.Len())
	r.monitor.Finish(results)
	return results, nil
}
