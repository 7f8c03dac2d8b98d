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
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/poiesic/jobscout/core"
)

// DefaultMaxPerLine is the number of column names printed per line by RenderGroups.
const DefaultMaxPerLine = 5

var summaryHeader = []string{"column_name", "inferred_type", "storage_type", "unique_values", "missing_pct"}

// RenderSummary writes summaries as a left-aligned fixed-width table.
func RenderSummary(w io.Writer, summaries []core.ColumnSummary) error {
	rows := make([][]string, 0, len(summaries)+1)
	rows = append(rows, summaryHeader)
	for _, s := range summaries {
		rows = append(rows, []string{
			s.Name,
			string(s.InferredType),
			s.StorageType,
			strconv.Itoa(s.UniqueValues),
			strconv.FormatFloat(s.MissingPct, 'f', 2, 64),
		})
	}

	widths := make([]int, len(summaryHeader))
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], len(cell))
		}
	}

	var b strings.Builder
	b.WriteString("Column Summary Table:\n")
	for _, row := range rows {
		var line strings.Builder
		for i, cell := range row {
			if i > 0 {
				line.WriteString("  ")
			}
			fmt.Fprintf(&line, "%-*s", widths[i], cell)
		}
		b.WriteString(strings.TrimRight(line.String(), " "))
		b.WriteByte('\n')
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// RenderGroups writes each type followed by its column names, maxPerLine
// names per line.
func RenderGroups(w io.Writer, groups *core.TypeGroups, maxPerLine int) error {
	if maxPerLine < 1 {
		maxPerLine = DefaultMaxPerLine
	}
	if groups == nil || groups.Len() == 0 {
		_, err := io.WriteString(w, "No summary data to group.\n")
		return err
	}

	var b strings.Builder
	b.WriteString("Columns grouped by type:\n")
	for _, t := range groups.Types() {
		fmt.Fprintf(&b, "  %s:\n", t)
		cols := groups.Columns(t)
		for start := 0; start < len(cols); start += maxPerLine {
			end := min(start+maxPerLine, len(cols))
			fmt.Fprintf(&b, "    %s\n", strings.Join(cols[start:end], ", "))
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}
