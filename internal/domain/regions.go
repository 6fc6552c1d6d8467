package domain

// Region is a maximal run of conserved columns. Start and End are 0-based and
// inclusive; Seq is copied from one representative row, which is enough since
// every row agrees on conserved columns.
type Region struct {
	Start  int
	End    int
	Length int
	Seq    string
}

// MergeRegions merges ascending conserved column indices into maximal
// contiguous regions. A run only closes when the next index is not
// current+1, so no two emitted regions can be adjacent, and every input
// index lands in exactly one region. Empty input yields an empty list.
func MergeRegions(conserved []int, representative string) []Region {
	regions := []Region{}
	if len(conserved) == 0 {
		return regions
	}

	start := conserved[0]
	current := start

	emit := func() {
		regions = append(regions, Region{
			Start:  start,
			End:    current,
			Length: current - start + 1,
			Seq:    representative[start : current+1],
		})
	}

	for _, pos := range conserved[1:] {
		if pos == current+1 {
			current = pos
			continue
		}
		emit()
		start, current = pos, pos
	}
	emit()

	return regions
}

// Analyze is the engine boundary: validate-free classification plus region
// merging over an already-constructed alignment. Under-determined input
// (fewer than two rows) yields empty results.
func Analyze(a *Alignment) (snps []int, regions []Region) {
	snps, conserved := Classify(a)

	var representative string
	if a.Rows() > 0 {
		representative = a.RowString(0)
	}
	return snps, MergeRegions(conserved, representative)
}
