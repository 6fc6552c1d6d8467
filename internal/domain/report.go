package domain

import "time"

// AlignmentRef is a lightweight reference to an alignment file on disk.
type AlignmentRef struct {
	Name string
	Path string
}

// Report is a persisted analysis artifact: one full pass of the engine over
// one alignment.
type Report struct {
	AlignmentPath string

	SequenceCount   int
	AlignmentLength int

	SNPPositions []int
	Regions      []Region
	Summary      []SummaryRow

	StartedAt  time.Time
	FinishedAt time.Time
}

// AnalysisResult bundles the persisted report with the display payload for
// interactive callers.
type AnalysisResult struct {
	Report  Report
	Display DisplayPayload
}
