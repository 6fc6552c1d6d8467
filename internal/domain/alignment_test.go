package domain

import "testing"

func rowsFrom(seqs ...string) []Row {
	rows := make([]Row, 0, len(seqs))
	for i, s := range seqs {
		rows = append(rows, Row{ID: string(rune('a' + i)), Seq: []byte(s)})
	}
	return rows
}

func mustAlignment(t *testing.T, seqs ...string) *Alignment {
	t.Helper()
	a, err := NewAlignment(rowsFrom(seqs...))
	if err != nil {
		t.Fatalf("NewAlignment: %v", err)
	}
	return a
}

func TestNewAlignment_Empty(t *testing.T) {
	a, err := NewAlignment(nil)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if a.Rows() != 0 || a.Length() != 0 {
		t.Fatalf("expected empty matrix, got %dx%d", a.Rows(), a.Length())
	}
}

func TestNewAlignment_UnequalRows(t *testing.T) {
	_, err := NewAlignment(rowsFrom("ACGT", "ACG"))
	if err == nil {
		t.Fatal("expected error for unequal row lengths")
	}
	if !IsKind(err, KindMalformedMatrix) {
		t.Fatalf("expected KindMalformedMatrix, got %v", err)
	}
}

func TestAlignment_Accessors(t *testing.T) {
	a := mustAlignment(t, "ACGTA", "ACCTA")

	if a.Rows() != 2 {
		t.Fatalf("Rows() = %d, want 2", a.Rows())
	}
	if a.Length() != 5 {
		t.Fatalf("Length() = %d, want 5", a.Length())
	}
	if got := a.Symbol(1, 2); got != 'C' {
		t.Fatalf("Symbol(1,2) = %c, want C", got)
	}
	if got := a.RowString(0); got != "ACGTA" {
		t.Fatalf("RowString(0) = %q", got)
	}
}

func TestAlignment_RowStringDoesNotAlias(t *testing.T) {
	rows := rowsFrom("ACGT")
	a, err := NewAlignment(rows)
	if err != nil {
		t.Fatal(err)
	}

	// Mutating the caller's row after construction must not show through.
	rows[0].Seq[0] = 'T'
	if got := a.RowString(0); got != "ACGT" {
		t.Fatalf("matrix aliased caller data: %q", got)
	}
}
