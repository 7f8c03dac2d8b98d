package core

import (
	"errors"
	"slices"
	"testing"
	"time"
)

func TestDetectKind(t *testing.T) {
	ts := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		values []any
		want   Kind
	}{
		{name: "empty", values: nil, want: KindObject},
		{name: "all absent", values: []any{nil, nil}, want: KindFloat},
		{name: "ints", values: []any{int64(1), int64(2)}, want: KindInt},
		{name: "ints with absent widen to float", values: []any{int64(1), nil}, want: KindFloat},
		{name: "ints and floats", values: []any{int64(1), 2.5}, want: KindFloat},
		{name: "bools", values: []any{true, false}, want: KindBool},
		{name: "bools with absent become object", values: []any{true, nil}, want: KindObject},
		{name: "times", values: []any{ts, nil}, want: KindTime},
		{name: "strings", values: []any{"a", nil}, want: KindObject},
		{name: "mixed", values: []any{"a", int64(1)}, want: KindObject},
		{name: "foreign type", values: []any{[]int{1}}, want: KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectKind(tt.values); got != tt.want {
				t.Errorf("DetectKind() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewColumn_NormalizesValues(t *testing.T) {
	col := NewColumn("n", 1, int32(2), nil)
	if col.Kind != KindFloat {
		t.Fatalf("Kind = %v, want float64", col.Kind)
	}
	want := []any{1.0, 2.0, nil}
	if !slices.Equal(col.Values, want) {
		t.Errorf("Values = %v, want %v", col.Values, want)
	}
}

func TestNewTable(t *testing.T) {
	t.Run("duplicate column", func(t *testing.T) {
		_, err := NewTable(NewColumn("a", 1), NewColumn("a", 2))
		if !errors.Is(err, ErrInvalidTable) {
			t.Errorf("error = %v, want ErrInvalidTable", err)
		}
	})

	t.Run("ragged columns", func(t *testing.T) {
		_, err := NewTable(NewColumn("a", 1, 2), NewColumn("b", 1))
		if !errors.Is(err, ErrInvalidTable) {
			t.Errorf("error = %v, want ErrInvalidTable", err)
		}
	})

	t.Run("value lookup", func(t *testing.T) {
		table, err := NewTable(NewColumn("a", "x", "y"))
		if err != nil {
			t.Fatal(err)
		}
		v, err := table.Value(1, "a")
		if err != nil || v != "y" {
			t.Errorf("Value(1, a) = %v, %v", v, err)
		}
		if _, err := table.Value(0, "nope"); !errors.Is(err, ErrUnknownColumn) {
			t.Errorf("Value(0, nope) error = %v, want ErrUnknownColumn", err)
		}
	})
}

func TestTable_WithColumnDoesNotMutate(t *testing.T) {
	table, err := NewTable(NewColumn("a", 1, 2))
	if err != nil {
		t.Fatal(err)
	}

	tagged, err := table.WithColumn(NewColumn(SourceColumn, "s", "s"))
	if err != nil {
		t.Fatal(err)
	}

	if table.HasColumn(SourceColumn) {
		t.Error("original table gained the source column")
	}
	if !slices.Equal(tagged.ColumnNames(), []string{"a", SourceColumn}) {
		t.Errorf("ColumnNames() = %v", tagged.ColumnNames())
	}
}

func TestConcat_ColumnUnion(t *testing.T) {
	first, err := NewTable(NewColumn("A", 1, 2), NewColumn("B", "x", "y"))
	if err != nil {
		t.Fatal(err)
	}
	second, err := NewTable(NewColumn("A", 3), NewColumn("C", true))
	if err != nil {
		t.Fatal(err)
	}

	merged := Concat(first, second)

	if !slices.Equal(merged.ColumnNames(), []string{"A", "B", "C"}) {
		t.Fatalf("ColumnNames() = %v", merged.ColumnNames())
	}
	if merged.NumRows() != 3 {
		t.Fatalf("NumRows() = %d, want 3", merged.NumRows())
	}

	c, _ := merged.Column("C")
	if !slices.Equal(c.Values, []any{nil, nil, true}) {
		t.Errorf("C = %v", c.Values)
	}
	if c.Kind != KindObject {
		t.Errorf("C kind = %v, want object", c.Kind)
	}

	b, _ := merged.Column("B")
	if !slices.Equal(b.Values, []any{"x", "y", nil}) {
		t.Errorf("B = %v", b.Values)
	}

	a, _ := merged.Column("A")
	if a.Kind != KindInt {
		t.Errorf("A kind = %v, want int64", a.Kind)
	}
}

func TestConcat_NoTables(t *testing.T) {
	if !Concat().IsEmpty() {
		t.Error("Concat() of nothing should be empty")
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{nil, ""},
		{"x", "x"},
		{true, "true"},
		{int64(42), "42"},
		{2.5, "2.5"},
		{120000.0, "120000"},
		{time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC), "2024-03-01 09:30:00"},
	}
	for _, tt := range tests {
		if got := FormatValue(tt.in); got != tt.want {
			t.Errorf("FormatValue(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
