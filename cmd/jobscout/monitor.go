package main

import (
	"log/slog"

	"github.com/poiesic/jobscout/core"
	"github.com/poiesic/jobscout/search"
)

// logMonitor reports search stages at debug level.
type logMonitor struct {
	logger *slog.Logger
}

var _ search.SearchMonitor = (*logMonitor)(nil)

func (m *logMonitor) Start(query string) {
	m.logger.Debug("search started", "query", query)
}

func (m *logMonitor) AfterFit(documents, vocabulary int) {
	m.logger.Debug("fitted tf-idf model", "documents", documents, "vocabulary", vocabulary)
}

func (m *logMonitor) AfterScoring(scores []float64) {
	matched := 0
	for _, s := range scores {
		if s > 0 {
			matched++
		}
	}
	m.logger.Debug("scored documents", "documents", len(scores), "matched", matched)
}

func (m *logMonitor) Finish(results *core.ResultSet) {
	m.logger.Debug("search finished", "results", results.Len())
}
