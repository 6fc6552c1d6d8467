package domain

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// GapSymbol marks an inserted/deleted position in one sequence relative to
// the others.
const GapSymbol = '-'

// ColumnClass is the classification of a single alignment column.
type ColumnClass int

const (
	// ColumnExcluded: the column holds a gap or a symbol outside {A,C,G,T}
	// (e.g. an ambiguity code). Excluded columns are neither conserved nor
	// counted as SNPs.
	ColumnExcluded ColumnClass = iota
	// ColumnConserved: every row holds the same canonical nucleotide.
	ColumnConserved
	// ColumnVariant: at least two distinct canonical nucleotides, no gaps.
	ColumnVariant
)

// Classify splits column indices into variant (SNP) and conserved positions,
// both ascending. Fewer than two rows carries no signal and yields two empty
// slices, not an error.
func Classify(a *Alignment) (snps, conserved []int) {
	snps, conserved = []int{}, []int{}
	if a.Rows() <= 1 {
		return snps, conserved
	}

	for col := 0; col < a.Length(); col++ {
		switch a.classifyColumn(col) {
		case ColumnConserved:
			conserved = append(conserved, col)
		case ColumnVariant:
			snps = append(snps, col)
		}
	}
	return snps, conserved
}

// ClassifyParallel is Classify with the column range partitioned across
// workers. Columns are independent; per-chunk results are concatenated in
// chunk order so the ascending emission order downstream code relies on is
// preserved.
func ClassifyParallel(ctx context.Context, a *Alignment, workers int) (snps, conserved []int, err error) {
	if a.Rows() <= 1 {
		return []int{}, []int{}, nil
	}

	n := a.Length()
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		snps, conserved = Classify(a)
		return snps, conserved, nil
	}

	type part struct {
		snps, conserved []int
	}
	parts := make([]part, workers)
	chunk := (n + workers - 1) / workers

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		w := w
		from := w * chunk
		to := min(from+chunk, n)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			p := part{snps: []int{}, conserved: []int{}}
			for col := from; col < to; col++ {
				switch a.classifyColumn(col) {
				case ColumnConserved:
					p.conserved = append(p.conserved, col)
				case ColumnVariant:
					p.snps = append(p.snps, col)
				}
			}
			parts[w] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	snps, conserved = []int{}, []int{}
	for _, p := range parts {
		snps = append(snps, p.snps...)
		conserved = append(conserved, p.conserved...)
	}
	return snps, conserved, nil
}

func (a *Alignment) classifyColumn(col int) ColumnClass {
	first := a.Symbol(0, col)
	identical := true

	for row := 0; row < a.Rows(); row++ {
		s := a.Symbol(row, col)
		switch s {
		case 'A', 'C', 'G', 'T':
		default:
			// Gaps and ambiguity codes (N etc.) exclude the whole column.
			return ColumnExcluded
		}
		if s != first {
			identical = false
		}
	}

	if identical {
		return ColumnConserved
	}
	return ColumnVariant
}
