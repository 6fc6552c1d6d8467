package domain

import "testing"

func TestBuildSummary_Empty(t *testing.T) {
	rows := BuildSummary(nil)
	if rows == nil || len(rows) != 0 {
		t.Fatalf("expected empty (non-nil) table, got %#v", rows)
	}
}

func TestBuildSummary_SortsByLengthDescending(t *testing.T) {
	regions := []Region{
		{Start: 0, End: 1, Length: 2, Seq: "AC"},
		{Start: 10, End: 16, Length: 7, Seq: "ACGTACG"},
		{Start: 20, End: 23, Length: 4, Seq: "ACGT"},
	}

	rows := BuildSummary(regions)
	if len(rows) != 3 {
		t.Fatalf("len = %d", len(rows))
	}

	for i := 1; i < len(rows); i++ {
		if rows[i-1].Length < rows[i].Length {
			t.Fatalf("not sorted: %+v before %+v", rows[i-1], rows[i])
		}
		if rows[i].Rank != rows[i-1].Rank+1 {
			t.Fatalf("ranks not sequential: %+v %+v", rows[i-1], rows[i])
		}
	}
	if rows[0].Rank != 1 || rows[0].Length != 7 {
		t.Fatalf("rows[0] = %+v", rows[0])
	}
}

func TestBuildSummary_OneBasedCoordinates(t *testing.T) {
	rows := BuildSummary([]Region{{Start: 0, End: 4, Length: 5, Seq: "ACGTA"}})
	if rows[0].Start != 1 || rows[0].End != 5 {
		t.Fatalf("expected 1-based coords, got %+v", rows[0])
	}
}

func TestBuildSummary_StableOnTies(t *testing.T) {
	regions := []Region{
		{Start: 0, End: 1, Length: 2, Seq: "AC"},
		{Start: 5, End: 6, Length: 2, Seq: "GT"},
		{Start: 9, End: 10, Length: 2, Seq: "TA"},
	}

	rows := BuildSummary(regions)
	if rows[0].Seq != "AC" || rows[1].Seq != "GT" || rows[2].Seq != "TA" {
		t.Fatalf("tie order not preserved: %+v", rows)
	}
}
