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
	"regexp"
	"strings"

	"github.com/poiesic/jobscout/core"
)

var (
	dashRuns       = regexp.MustCompile(`-{2,}`)
	whitespaceRuns = regexp.MustCompile(`\s+`)
)

// BuildCorpus returns one string per row of t: the values of columns joined
// by a single space, with runs of hyphens and whitespace collapsed to a
// single space and the ends trimmed. Absent values contribute an empty
// string. Every column must exist; a missing column returns an error
// wrapping core.ErrUnknownColumn.
func BuildCorpus(t *core.Table, columns ...string) ([]string, error) {
	if err := core.ValidateColumns(t, columns...); err != nil {
		return nil, fmt.Errorf("building corpus: %w", err)
	}

	selected := make([]*core.Column, len(columns))
	for i, name := range columns {
		selected[i], _ = t.Column(name)
	}

	corpus := make([]string, t.NumRows())
	parts := make([]string, len(selected))
	for row := range corpus {
		for i, col := range selected {
			parts[i] = core.FormatValue(col.Values[row])
		}
		corpus[row] = CleanText(strings.Join(parts, " "))
	}
	return corpus, nil
}

// CorpusFromColumn converts an existing text column into a corpus, treating
// absent values as empty strings.
func CorpusFromColumn(col *core.Column) []string {
	corpus := make([]string, col.Len())
	for i, v := range col.Values {
		corpus[i] = core.FormatValue(v)
	}
	return corpus
}

// CleanText collapses hyphen runs and whitespace runs to single spaces and
// trims the result.
func CleanText(s string) string {
	s = dashRuns.ReplaceAllString(s, " ")
	s = whitespaceRuns.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
