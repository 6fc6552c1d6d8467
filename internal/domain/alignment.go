package domain

import "fmt"

// Row is one named sequence of an alignment, as produced by a loader.
type Row struct {
	ID  string
	Seq []byte
}

// Alignment is a rectangular multiple-sequence alignment stored as a single
// row-major buffer with a fixed stride, so "all rows have the same length"
// holds structurally instead of being re-checked at every access.
type Alignment struct {
	ids  []string
	data []byte
	cols int
}

// NewAlignment copies rows into a fresh matrix. Rows of unequal length yield
// a malformed_matrix error and the matrix is never partially built.
func NewAlignment(rows []Row) (*Alignment, error) {
	if len(rows) == 0 {
		return &Alignment{}, nil
	}

	cols := len(rows[0].Seq)
	a := &Alignment{
		ids:  make([]string, 0, len(rows)),
		data: make([]byte, 0, len(rows)*cols),
		cols: cols,
	}

	for i, r := range rows {
		if len(r.Seq) != cols {
			return nil, &OpError{
				Op:   "alignment.new",
				Kind: KindMalformedMatrix,
				Err:  fmt.Errorf("row %d (%s) has length %d, want %d: %w", i, r.ID, len(r.Seq), cols, ErrMalformedMatrix),
			}
		}
		a.ids = append(a.ids, r.ID)
		a.data = append(a.data, r.Seq...)
	}

	return a, nil
}

// Rows returns the number of sequences.
func (a *Alignment) Rows() int {
	if a == nil {
		return 0
	}
	return len(a.ids)
}

// Length returns the alignment length (columns shared by every row).
func (a *Alignment) Length() int {
	if a == nil || len(a.ids) == 0 {
		return 0
	}
	return a.cols
}

// ID returns the identifier of row i.
func (a *Alignment) ID(i int) string {
	return a.ids[i]
}

// Symbol returns the symbol at (row, col).
func (a *Alignment) Symbol(row, col int) byte {
	return a.data[row*a.cols+col]
}

// RowString returns a copy of row i's symbols. The copy keeps callers from
// aliasing into the matrix buffer.
func (a *Alignment) RowString(i int) string {
	return string(a.data[i*a.cols : (i+1)*a.cols])
}
