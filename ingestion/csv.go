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
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/poiesic/jobscout/core"
)

// naTokens are cell contents read as absent values.
var naTokens = map[string]struct{}{
	"": {}, "#N/A": {}, "#N/A N/A": {}, "#NA": {}, "-1.#IND": {}, "-1.#QNAN": {},
	"-NaN": {}, "-nan": {}, "1.#IND": {}, "1.#QNAN": {}, "<NA>": {}, "N/A": {},
	"NA": {}, "NULL": {}, "NaN": {}, "None": {}, "n/a": {}, "nan": {}, "null": {},
}

// DefaultDateLayouts are tried in order when parsing date columns.
var DefaultDateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"01/02/2006",
}

// CSVOptions controls how CSV content becomes a table.
type CSVOptions struct {
	// DateColumns are parsed as datetimes when every present value parses.
	DateColumns []string
	// DateLayouts overrides DefaultDateLayouts.
	DateLayouts []string
}

// LoadCSV reads the CSV file at path. All failures wrap ErrSourceUnavailable.
func LoadCSV(path string, opts CSVOptions) (*core.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	defer f.Close()

	table, err := ReadCSV(f, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrSourceUnavailable, path, err)
	}
	return table, nil
}

// ReadCSV parses CSV content with a header row. Each column's storage kind
// is detected from its present cells: integers, then floats, then
// true/false, otherwise strings.
func ReadCSV(r io.Reader, opts CSVOptions) (*core.Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: no columns to parse", ErrMalformedCSV)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedCSV, err)
	}
	names := mangleHeader(header)

	cells := make([][]string, len(names))
	present := make([][]bool, len(names))
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedCSV, err)
		}
		if len(record) > len(names) {
			return nil, fmt.Errorf("%w: line %d: expected %d fields, saw %d", ErrMalformedCSV, line, len(names), len(record))
		}
		for i := range names {
			var cell string
			ok := false
			if i < len(record) {
				cell = record[i]
				_, na := naTokens[cell]
				ok = !na
			}
			cells[i] = append(cells[i], cell)
			present[i] = append(present[i], ok)
		}
	}

	layouts := opts.DateLayouts
	if len(layouts) == 0 {
		layouts = DefaultDateLayouts
	}

	columns := make([]*core.Column, len(names))
	for i, name := range names {
		var values []any
		if slices.Contains(opts.DateColumns, name) {
			values = parseDates(cells[i], present[i], layouts)
		}
		if values == nil {
			values = parseCells(cells[i], present[i])
		}
		columns[i] = core.NewColumn(name, values...)
	}

	table, err := core.NewTable(columns...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedCSV, err)
	}
	return table, nil
}

// mangleHeader names blank headers "Unnamed: i" and suffixes repeated names
// with ".1", ".2" and so on.
func mangleHeader(header []string) []string {
	names := make([]string, len(header))
	used := make(map[string]bool, len(header))
	counts := make(map[string]int, len(header))
	for i, h := range header {
		name := h
		if strings.TrimSpace(name) == "" {
			name = "Unnamed: " + strconv.Itoa(i)
		}
		base := name
		for used[name] {
			counts[base]++
			name = base + "." + strconv.Itoa(counts[base])
		}
		used[name] = true
		names[i] = name
	}
	return names
}

func parseCells(cells []string, present []bool) []any {
	if ints, ok := parseAll(cells, present, func(s string) (any, bool) {
		v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		return v, err == nil
	}); ok {
		return ints
	}
	if floats, ok := parseAll(cells, present, func(s string) (any, bool) {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		return v, err == nil
	}); ok {
		return floats
	}
	if bools, ok := parseAll(cells, present, parseBool); ok {
		return bools
	}
	out := make([]any, len(cells))
	for i, cell := range cells {
		if present[i] {
			out[i] = cell
		}
	}
	return out
}

func parseDates(cells []string, present []bool, layouts []string) []any {
	values, ok := parseAll(cells, present, func(s string) (any, bool) {
		for _, layout := range layouts {
			if t, err := time.Parse(layout, strings.TrimSpace(s)); err == nil {
				return t, true
			}
		}
		return nil, false
	})
	if !ok {
		return nil
	}
	return values
}

func parseBool(s string) (any, bool) {
	switch s {
	case "True", "TRUE", "true":
		return true, true
	case "False", "FALSE", "false":
		return false, true
	}
	return nil, false
}

// parseAll converts every present cell with parse. Absent cells become nil.
// Columns without any present cell are not claimed by any parser.
func parseAll(cells []string, present []bool, parse func(string) (any, bool)) ([]any, bool) {
	out := make([]any, len(cells))
	found := false
	for i, cell := range cells {
		if !present[i] {
			continue
		}
		v, ok := parse(cell)
		if !ok {
			return nil, false
		}
		out[i] = v
		found = true
	}
	return out, found
}
