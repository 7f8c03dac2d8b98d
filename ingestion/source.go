package ingestion

import "github.com/poiesic/jobscout/core"

// DefaultLabel tags rows of a RawTable.
const DefaultLabel = "preloaded_table"

// Source is one input to Merge. It is implemented only by FileRef,
// LabeledTable and RawTable.
type Source interface {
	sourceLabel() string
}

// FileRef names a CSV file, relative to the merger's directory unless absolute.
// Rows are labeled with the name as given.
type FileRef struct {
	Name string
}

// LabeledTable is an already materialized table with a caller chosen label.
type LabeledTable struct {
	Label string
	Table *core.Table
}

// RawTable is an already materialized table labeled with DefaultLabel.
type RawTable struct {
	Table *core.Table
}

func (f FileRef) sourceLabel() string      { return f.Name }
func (l LabeledTable) sourceLabel() string { return l.Label }
func (r RawTable) sourceLabel() string     { return DefaultLabel }

var (
	_ Source = FileRef{}
	_ Source = LabeledTable{}
	_ Source = RawTable{}
)

// Files converts file names into sources.
func Files(names ...string) []Source {
	out := make([]Source, len(names))
	for i, name := range names {
		out[i] = FileRef{Name: name}
	}
	return out
}
