package domain

import "sort"

// SummaryRow is a conserved region in 1-based display coordinates, ranked by
// length.
type SummaryRow struct {
	Rank   int
	Start  int
	End    int
	Length int
	Seq    string
}

// BuildSummary orders regions by length (longest first, original order kept
// on ties) and shifts Start/End to 1-based coordinates. An empty input yields
// an empty table, not an error.
func BuildSummary(regions []Region) []SummaryRow {
	rows := make([]SummaryRow, 0, len(regions))
	for _, r := range regions {
		rows = append(rows, SummaryRow{
			Start:  r.Start + 1,
			End:    r.End + 1,
			Length: r.Length,
			Seq:    r.Seq,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Length > rows[j].Length })

	for i := range rows {
		rows[i].Rank = i + 1
	}
	return rows
}
