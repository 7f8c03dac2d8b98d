package core

import (
	"encoding/binary"
	"slices"

	"github.com/go-crypt/x/blake2b"
)

// ID is a 64-bit content digest.
type ID uint64

// IDFromContent generates a deterministic ID from raw bytes using BLAKE2b hashing.
// Identical content produces identical IDs.
func IDFromContent(data []byte) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write(data)
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// InferredType is the semantic category assigned to a column by heuristic
// analysis, as opposed to its storage Kind.
type InferredType string

const (
	TypeNumeric     InferredType = "numeric"
	TypeCategorical InferredType = "categorical"
	TypeBoolean     InferredType = "boolean"
	TypeDatetime    InferredType = "datetime"
	TypeNumericText InferredType = "numeric (text)"
	TypeBooleanText InferredType = "boolean (text)"
	TypeText        InferredType = "text"
	TypeUnknown     InferredType = "mixed/unknown"
)

// ColumnSummary describes one column of a table.
type ColumnSummary struct {
	Name         string
	InferredType InferredType
	StorageType  string  // native storage label, e.g. "int64", "object"
	UniqueValues int     // distinct non-absent values
	MissingPct   float64 // 0-100, rounded to 2 decimals
}

// TypeGroups maps inferred types to the alphabetically sorted names of the
// columns carrying them. Types iterate in lexical order.
type TypeGroups struct {
	order  []InferredType
	groups map[InferredType][]string
}

// NewTypeGroups returns an empty TypeGroups.
func NewTypeGroups() *TypeGroups {
	return &TypeGroups{groups: make(map[InferredType][]string)}
}

// Add records column under t. Types and groups are both kept sorted.
func (g *TypeGroups) Add(t InferredType, column string) {
	names, ok := g.groups[t]
	if !ok {
		j, _ := slices.BinarySearch(g.order, t)
		g.order = slices.Insert(g.order, j, t)
	}
	i, _ := slices.BinarySearch(names, column)
	g.groups[t] = slices.Insert(names, i, column)
}

// Types returns the inferred types in lexical order.
func (g *TypeGroups) Types() []InferredType {
	return slices.Clone(g.order)
}

// Columns returns the sorted column names for t, or nil.
func (g *TypeGroups) Columns(t InferredType) []string {
	return slices.Clone(g.groups[t])
}

// Len returns the number of distinct types.
func (g *TypeGroups) Len() int {
	return len(g.order)
}

// SearchResult is one ranked row.
type SearchResult struct {
	Index      int            // original row index
	Score      float64        // cosine similarity in [0,1]
	Attributes map[string]any // requested extra column values
}

// ResultSet is a ranked list of rows, best first.
type ResultSet struct {
	Columns []string // extra columns attached to every result, in request order
	Results []SearchResult
}

// Len returns the number of results.
func (r *ResultSet) Len() int {
	return len(r.Results)
}

// Indices returns the row indices in rank order.
func (r *ResultSet) Indices() []int {
	out := make([]int, len(r.Results))
	for i, res := range r.Results {
		out[i] = res.Index
	}
	return out
}
