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

package jobscout

import (
	"context"
	"log/slog"

	"github.com/poiesic/jobscout/analysis"
	"github.com/poiesic/jobscout/config"
	"github.com/poiesic/jobscout/core"
	"github.com/poiesic/jobscout/ingestion"
	"github.com/poiesic/jobscout/profile"
	"github.com/poiesic/jobscout/redact"
	"github.com/poiesic/jobscout/search"
)

// Explorer wires discovery, loading, profiling, search and correlation
// together for one configuration.
type Explorer struct {
	cfg        *config.Config
	merger     *ingestion.Merger
	summarizer *profile.Summarizer
	ranker     *search.Ranker
	redactor   *redact.Redactor
	logger     *slog.Logger
}

// ExplorerOption configures an Explorer.
type ExplorerOption func(*explorerOptions)

type explorerOptions struct {
	logger  *slog.Logger
	monitor search.SearchMonitor
}

// WithLogger sets the logger handed to every component.
func WithLogger(logger *slog.Logger) ExplorerOption {
	return func(o *explorerOptions) {
		o.logger = logger
	}
}

// WithSearchMonitor installs a monitor observing every search.
func WithSearchMonitor(monitor search.SearchMonitor) ExplorerOption {
	return func(o *explorerOptions) {
		o.monitor = monitor
	}
}

// NewExplorer creates an Explorer. A nil cfg uses config.DefaultConfig.
func NewExplorer(cfg *config.Config, opts ...ExplorerOption) (*Explorer, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	options := &explorerOptions{logger: slog.Default()}
	for _, opt := range opts {
		opt(options)
	}
	if options.logger == nil {
		options.logger = slog.Default()
	}

	summarizer, err := profile.NewSummarizer(
		profile.WithThresholds(cfg.Inference.Thresholds()),
		profile.WithLogger(options.logger),
	)
	if err != nil {
		return nil, err
	}

	ranker, err := search.NewRanker(
		search.WithLogger(options.logger),
		search.WithMonitor(options.monitor),
	)
	if err != nil {
		return nil, err
	}

	redactor, err := redact.NewRedactor(redact.WithLogger(options.logger))
	if err != nil {
		return nil, err
	}

	mergerOpts := []ingestion.Option{
		ingestion.WithDateColumns(cfg.DateColumns...),
		ingestion.WithLogger(options.logger),
	}
	if cfg.PoolSize > 0 {
		mergerOpts = append(mergerOpts, ingestion.WithPoolSize(cfg.PoolSize))
	}
	merger, err := ingestion.NewMerger(cfg.DataDir, mergerOpts...)
	if err != nil {
		return nil, err
	}

	return &Explorer{
		cfg:        cfg,
		merger:     merger,
		summarizer: summarizer,
		ranker:     ranker,
		redactor:   redactor,
		logger:     options.logger,
	}, nil
}

// Close releases the loader pool.
func (e *Explorer) Close() error {
	e.merger.Release()
	return nil
}

// Config returns the explorer's configuration.
func (e *Explorer) Config() *config.Config {
	return e.cfg
}

// Discover lists the files in the data directory matching the configured
// keywords and extensions.
func (e *Explorer) Discover() ([]string, error) {
	logic, err := ingestion.ParseMatchLogic(e.cfg.MatchLogic)
	if err != nil {
		return nil, err
	}
	return ingestion.FindFiles(e.logger, e.cfg.DataDir, ingestion.Criteria{
		Keywords:   e.cfg.Keywords,
		Extensions: e.cfg.Extensions,
		Logic:      logic,
	})
}

// Load merges sources into one table. With no sources the discovered files
// are loaded. PII is redacted from the result when configured.
func (e *Explorer) Load(ctx context.Context, sources ...ingestion.Source) (*core.Table, error) {
	if len(sources) == 0 {
		files, err := e.Discover()
		if err != nil {
			return nil, err
		}
		sources = ingestion.Files(files...)
	}

	table, err := e.merger.Merge(ctx, sources...)
	if err != nil {
		return nil, err
	}
	if !e.cfg.RedactPII || table.IsEmpty() {
		return table, nil
	}

	result, err := e.redactor.Anonymize(table)
	if err != nil {
		return nil, err
	}
	return result.Table, nil
}

// Summarize profiles every column of t.
func (e *Explorer) Summarize(t *core.Table) (*profile.Report, error) {
	return e.summarizer.Summarize(t)
}

// Search ranks the rows of t against query using the configured text columns
// and attaches the configured result columns. A missing text column is an
// error wrapping core.ErrUnknownColumn. An empty table yields an empty
// result set.
func (e *Explorer) Search(t *core.Table, query string, k int) (*core.ResultSet, error) {
	if t == nil {
		return nil, search.ErrTableRequired
	}
	if t.IsEmpty() {
		return e.ranker.Rank(nil, query, k)
	}
	corpus, err := search.BuildCorpus(t, e.cfg.TextColumns...)
	if err != nil {
		return nil, err
	}
	return e.ranker.RankTable(t, corpus, query, k, e.cfg.ResultColumns...)
}

// Correlate adds the pay range feature when the pay columns exist, picks the
// numeric columns worth correlating and returns their correlation matrix.
func (e *Explorer) Correlate(t *core.Table) (*analysis.Matrix, error) {
	if t == nil {
		return nil, analysis.ErrTableRequired
	}
	if t.HasColumn(analysis.MinAmountColumn) && t.HasColumn(analysis.MaxAmountColumn) {
		withRange, err := analysis.AddPayRange(t)
		if err != nil {
			e.logger.Warn("skipping pay range feature", "err", err)
		} else {
			t = withRange
		}
	}

	report, err := e.summarizer.Summarize(t)
	if err != nil {
		return nil, err
	}
	columns := analysis.CorrelationCandidates(t, report.Groups, e.cfg.Correlation.Exclude)
	e.logger.Info("correlating numeric columns", "columns", columns)
	return analysis.Correlate(t, columns...)
}
