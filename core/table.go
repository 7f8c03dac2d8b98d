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

package core

import (
	"fmt"
	"slices"
)

// SourceColumn is the reserved column recording which source each row came from.
const SourceColumn = "_source_file"

// Column is a named, ordered sequence of values. A nil value is absent.
type Column struct {
	Name   string
	Kind   Kind
	Values []any
}

// NewColumn builds a column from arbitrary Go values, normalizing them and
// detecting the storage kind.
func NewColumn(name string, values ...any) *Column {
	normalized := make([]any, len(values))
	for i, v := range values {
		normalized[i] = NormalizeValue(v)
	}
	return newColumn(name, normalized)
}

// NewColumnOfKind builds a column with an explicit storage kind. Values must
// already be normalized.
func NewColumnOfKind(name string, kind Kind, values []any) *Column {
	return &Column{Name: name, Kind: kind, Values: values}
}

func newColumn(name string, normalized []any) *Column {
	kind := DetectKind(normalized)
	for i, v := range normalized {
		normalized[i] = coerce(v, kind)
	}
	return &Column{Name: name, Kind: kind, Values: normalized}
}

// Len returns the number of values, absent ones included.
func (c *Column) Len() int {
	return len(c.Values)
}

// Clone returns a deep copy of the column's value slice.
func (c *Column) Clone() *Column {
	return &Column{Name: c.Name, Kind: c.Kind, Values: slices.Clone(c.Values)}
}

// Table is an ordered set of equally long columns.
type Table struct {
	columns []*Column
	index   map[string]int
	rows    int
}

// NewTable builds a table from columns. Column names must be unique and all
// columns must have the same length.
func NewTable(columns ...*Column) (*Table, error) {
	t := &Table{index: make(map[string]int, len(columns))}
	for i, col := range columns {
		if col == nil {
			return nil, fmt.Errorf("%w: column %d is nil", ErrInvalidTable, i)
		}
		if _, exists := t.index[col.Name]; exists {
			return nil, fmt.Errorf("%w: duplicate column %q", ErrInvalidTable, col.Name)
		}
		if i == 0 {
			t.rows = col.Len()
		} else if col.Len() != t.rows {
			return nil, fmt.Errorf("%w: column %q has %d values, want %d", ErrInvalidTable, col.Name, col.Len(), t.rows)
		}
		t.index[col.Name] = i
		t.columns = append(t.columns, col)
	}
	return t, nil
}

// EmptyTable returns a table with no columns and no rows.
func EmptyTable() *Table {
	return &Table{index: map[string]int{}}
}

// NumRows returns the number of rows.
func (t *Table) NumRows() int {
	return t.rows
}

// NumColumns returns the number of columns.
func (t *Table) NumColumns() int {
	return len(t.columns)
}

// IsEmpty reports whether the table has neither rows nor columns.
func (t *Table) IsEmpty() bool {
	return t.rows == 0 && len(t.columns) == 0
}

// ColumnNames returns the column names in table order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.columns))
	for i, col := range t.columns {
		names[i] = col.Name
	}
	return names
}

// Columns returns the table's columns in order. Callers must not modify them.
func (t *Table) Columns() []*Column {
	return slices.Clone(t.columns)
}

// Column returns the named column.
func (t *Table) Column(name string) (*Column, bool) {
	i, ok := t.index[name]
	if !ok {
		return nil, false
	}
	return t.columns[i], true
}

// HasColumn reports whether the table has the named column.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Value returns the value at row for the named column.
// Returns ErrUnknownColumn if the column does not exist.
func (t *Table) Value(row int, name string) (any, error) {
	col, ok := t.Column(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
	}
	if row < 0 || row >= t.rows {
		return nil, fmt.Errorf("%w: row %d out of range [0,%d)", ErrInvalidTable, row, t.rows)
	}
	return col.Values[row], nil
}

// Row returns the row as a mapping from column name to value.
func (t *Table) Row(row int) map[string]any {
	out := make(map[string]any, len(t.columns))
	for _, col := range t.columns {
		out[col.Name] = col.Values[row]
	}
	return out
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	out := &Table{index: make(map[string]int, len(t.columns)), rows: t.rows}
	for i, col := range t.columns {
		out.columns = append(out.columns, col.Clone())
		out.index[col.Name] = i
	}
	return out
}

// WithColumn returns a copy of the table with col appended, or replacing an
// existing column of the same name. The receiver is not modified.
func (t *Table) WithColumn(col *Column) (*Table, error) {
	if len(t.columns) > 0 && col.Len() != t.rows {
		return nil, fmt.Errorf("%w: column %q has %d values, want %d", ErrInvalidTable, col.Name, col.Len(), t.rows)
	}
	out := t.Clone()
	if len(out.columns) == 0 {
		out.rows = col.Len()
	}
	if i, ok := out.index[col.Name]; ok {
		out.columns[i] = col
		return out, nil
	}
	out.index[col.Name] = len(out.columns)
	out.columns = append(out.columns, col)
	return out, nil
}

// WithoutColumns returns a copy of the table lacking the named columns.
// Unknown names are ignored.
func (t *Table) WithoutColumns(names ...string) *Table {
	out := &Table{index: map[string]int{}, rows: t.rows}
	for _, col := range t.columns {
		if slices.Contains(names, col.Name) {
			continue
		}
		out.index[col.Name] = len(out.columns)
		out.columns = append(out.columns, col.Clone())
	}
	return out
}

// Concat stacks tables vertically. The result's columns are the union of the
// inputs' columns in order of first appearance; rows from a table lacking a
// column hold absent values there. Storage kinds are recomputed over the
// combined values. Inputs are not modified.
func Concat(tables ...*Table) *Table {
	var order []string
	seen := make(map[string]bool)
	total := 0
	for _, t := range tables {
		total += t.rows
		for _, col := range t.columns {
			if !seen[col.Name] {
				seen[col.Name] = true
				order = append(order, col.Name)
			}
		}
	}
	if len(order) == 0 {
		return EmptyTable()
	}

	out := &Table{index: make(map[string]int, len(order)), rows: total}
	for i, name := range order {
		values := make([]any, 0, total)
		for _, t := range tables {
			if col, ok := t.Column(name); ok {
				values = append(values, col.Values...)
				continue
			}
			for range t.rows {
				values = append(values, nil)
			}
		}
		out.columns = append(out.columns, newColumn(name, values))
		out.index[name] = i
	}
	return out
}
