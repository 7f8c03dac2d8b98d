package core

import (
	"slices"
	"testing"
)

func TestIDFromContent(t *testing.T) {
	tests := []struct {
		name    string
		content []byte
	}{
		{name: "same content produces same ID", content: []byte("test content")},
		{name: "empty content", content: nil},
		{name: "binary content", content: []byte{0x00, 0xff, 0x10, 0x20}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id1 := IDFromContent(tt.content)
			id2 := IDFromContent(tt.content)
			if id1 != id2 {
				t.Errorf("IDFromContent() produced different IDs for same content: %d vs %d", id1, id2)
			}
		})
	}
}

func TestIDFromContent_Different(t *testing.T) {
	if IDFromContent([]byte("content1")) == IDFromContent([]byte("content2")) {
		t.Errorf("IDFromContent() produced same ID for different content")
	}
}

func TestTypeGroups_SortedAndOrdered(t *testing.T) {
	g := NewTypeGroups()
	g.Add(TypeText, "description")
	g.Add(TypeNumeric, "zebra")
	g.Add(TypeNumeric, "apple")
	g.Add(TypeNumeric, "mango")

	if got, want := g.Types(), []InferredType{TypeNumeric, TypeText}; !slices.Equal(got, want) {
		t.Errorf("Types() = %v, want %v", got, want)
	}
	if got, want := g.Columns(TypeNumeric), []string{"apple", "mango", "zebra"}; !slices.Equal(got, want) {
		t.Errorf("Columns(numeric) = %v, want %v", got, want)
	}
	if got := g.Columns(TypeBoolean); got != nil {
		t.Errorf("Columns(boolean) = %v, want nil", got)
	}
	if g.Len() != 2 {
		t.Errorf("Len() = %d, want 2", g.Len())
	}
}

func TestTypeGroups_TypesSortedLexically(t *testing.T) {
	g := NewTypeGroups()
	g.Add(TypeText, "desc")
	g.Add(TypeUnknown, "blob")
	g.Add(TypeNumeric, "salary")
	g.Add(TypeBooleanText, "flag")
	g.Add(TypeCategorical, "site")

	want := []InferredType{TypeBooleanText, TypeCategorical, TypeUnknown, TypeNumeric, TypeText}
	if got := g.Types(); !slices.Equal(got, want) {
		t.Errorf("Types() = %v, want %v", got, want)
	}
}

func TestTypeGroups_ColumnsReturnsCopy(t *testing.T) {
	g := NewTypeGroups()
	g.Add(TypeText, "b")
	g.Add(TypeText, "a")

	cols := g.Columns(TypeText)
	cols[0] = "mutated"

	if got := g.Columns(TypeText)[0]; got != "a" {
		t.Errorf("group was mutated through returned slice: %q", got)
	}
}

func TestResultSet_Indices(t *testing.T) {
	rs := &ResultSet{Results: []SearchResult{{Index: 3}, {Index: 0}, {Index: 7}}}
	if got, want := rs.Indices(), []int{3, 0, 7}; !slices.Equal(got, want) {
		t.Errorf("Indices() = %v, want %v", got, want)
	}
	if rs.Len() != 3 {
		t.Errorf("Len() = %d, want 3", rs.Len())
	}
}
