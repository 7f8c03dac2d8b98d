package search

import (
	"bytes"
	"log/slog"
	"math"
	"testing"

	"github.com/poiesic/jobscout/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingMonitor records the stages it observes.
type recordingMonitor struct {
	stages     []string
	query      string
	documents  int
	vocabulary int
	scores     []float64
	results    *core.ResultSet
}

var _ SearchMonitor = (*recordingMonitor)(nil)

func (m *recordingMonitor) Start(query string) {
	m.stages = append(m.stages, "start")
	m.query = query
}

func (m *recordingMonitor) AfterFit(documents, vocabulary int) {
	m.stages = append(m.stages, "fit")
	m.documents = documents
	m.vocabulary = vocabulary
}

func (m *recordingMonitor) AfterScoring(scores []float64) {
	m.stages = append(m.stages, "scoring")
	m.scores = scores
}

func (m *recordingMonitor) Finish(results *core.ResultSet) {
	m.stages = append(m.stages, "finish")
	m.results = results
}

func newTestRanker(t *testing.T, opts ...Option) (*Ranker, *bytes.Buffer) {
	t.Helper()
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	r, err := NewRanker(append([]Option{WithLogger(logger)}, opts...)...)
	require.NoError(t, err)
	return r, &logs
}

func TestNewRanker(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		r, err := NewRanker()
		require.NoError(t, err)
		assert.NotNil(t, r.logger)
		assert.NotNil(t, r.monitor)
	})

	t.Run("nil options fall back to defaults", func(t *testing.T) {
		r, err := NewRanker(WithLogger(nil), WithMonitor(nil))
		require.NoError(t, err)
		assert.NotNil(t, r.logger)
		assert.NotNil(t, r.monitor)
	})
}

func TestRank_BestMatchFirst(t *testing.T) {
	r, _ := newTestRanker(t)

	results, err := r.Rank([]string{"java developer role", "python developer role"}, "java", 1)
	require.NoError(t, err)
	require.Equal(t, 1, results.Len())
	assert.Equal(t, 0, results.Results[0].Index)
	assert.InDelta(t, 0.7049094889, results.Results[0].Score, 1e-9)
}

func TestRank_EmptyDocumentScoresZero(t *testing.T) {
	r, _ := newTestRanker(t)

	results, err := r.Rank([]string{"", "golang developer"}, "golang", 2)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0}, results.Indices())

	empty := results.Results[1]
	assert.False(t, math.IsNaN(empty.Score))
	assert.Equal(t, 0.0, empty.Score)
}

func TestRank_LimitAboveCorpusSize(t *testing.T) {
	r, _ := newTestRanker(t)

	results, err := r.Rank([]string{"data engineer", "data analyst", "nurse"}, "data", 10)
	require.NoError(t, err)
	assert.Equal(t, 3, results.Len())
	assert.Equal(t, []int{0, 1, 2}, results.Indices())
}

func TestRank_TiesKeepRowOrder(t *testing.T) {
	r, _ := newTestRanker(t)
	corpus := []string{"rust engineer", "python engineer", "rust engineer", "python engineer"}

	t.Run("equal positive scores", func(t *testing.T) {
		results, err := r.Rank(corpus, "rust", 4)
		require.NoError(t, err)
		assert.Equal(t, []int{0, 2, 1, 3}, results.Indices())
		assert.Equal(t, results.Results[0].Score, results.Results[1].Score)
	})

	t.Run("all zero", func(t *testing.T) {
		results, err := r.Rank(corpus, "kotlin", 4)
		require.NoError(t, err)
		assert.Equal(t, []int{0, 1, 2, 3}, results.Indices())
	})
}

func TestRank_InvalidLimit(t *testing.T) {
	r, _ := newTestRanker(t)

	for _, k := range []int{0, -3} {
		_, err := r.Rank([]string{"a doc"}, "doc", k)
		assert.ErrorIs(t, err, ErrInvalidLimit)
	}
}

func TestRank_EmptyCorpus(t *testing.T) {
	r, _ := newTestRanker(t)

	results, err := r.Rank(nil, "anything", 5)
	require.NoError(t, err)
	require.NotNil(t, results)
	assert.Equal(t, 0, results.Len())
	assert.NotNil(t, results.Results)
}

func TestRankTable_ExtraColumns(t *testing.T) {
	table, err := core.NewTable(
		core.NewColumn("title", "java developer", "python developer"),
		core.NewColumn("company", "Acme", nil),
	)
	require.NoError(t, err)
	corpus, err := BuildCorpus(table, "title")
	require.NoError(t, err)

	r, logs := newTestRanker(t)
	results, err := r.RankTable(table, corpus, "python", 2, "company", "salary")
	require.NoError(t, err)

	assert.Equal(t, []string{"company"}, results.Columns)
	assert.Equal(t, []int{1, 0}, results.Indices())
	assert.Equal(t, map[string]any{"company": nil}, results.Results[0].Attributes)
	assert.Equal(t, map[string]any{"company": "Acme"}, results.Results[1].Attributes)
	assert.Contains(t, logs.String(), "level=WARN")
	assert.Contains(t, logs.String(), "column=salary")
}

func TestRankTable_Errors(t *testing.T) {
	r, _ := newTestRanker(t)

	_, err := r.RankTable(nil, nil, "q", 1)
	assert.Equal(t, ErrTableRequired, err)

	table, err := core.NewTable(core.NewColumn("title", "a", "b"))
	require.NoError(t, err)
	_, err = r.RankTable(table, []string{"only one"}, "q", 1)
	assert.ErrorIs(t, err, ErrCorpusMismatch)
}

func TestRank_Monitor(t *testing.T) {
	monitor := &recordingMonitor{}
	r, _ := newTestRanker(t, WithMonitor(monitor))

	results, err := r.Rank([]string{"java developer role", "python developer role"}, "java", 1)
	require.NoError(t, err)

	assert.Equal(t, []string{"start", "fit", "scoring", "finish"}, monitor.stages)
	assert.Equal(t, "java", monitor.query)
	assert.Equal(t, 2, monitor.documents)
	assert.Equal(t, 4, monitor.vocabulary)
	assert.Len(t, monitor.scores, 2)
	assert.Same(t, results, monitor.results)
}

func TestRank_MonitorEmptyCorpus(t *testing.T) {
	monitor := &recordingMonitor{}
	r, _ := newTestRanker(t, WithMonitor(monitor))

	_, err := r.Rank([]string{}, "java", 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"start", "finish"}, monitor.stages)
}
