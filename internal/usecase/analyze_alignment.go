package usecase

import (
	"context"
	"time"

	"github.com/tayden1990/alnscope/internal/domain"
	"github.com/tayden1990/alnscope/internal/ports"
)

// AnalyzeAlignment loads an aligned file, runs the analysis engine, and
// optionally persists the resulting report.
type AnalyzeAlignment struct {
	loader ports.AlignmentLoader
	store  ports.ReportStore // nil disables persistence

	maxDisplayRows int
	workers        int
	now            func() time.Time
}

type AnalyzeOption func(*AnalyzeAlignment)

func WithMaxDisplayRows(n int) AnalyzeOption {
	return func(uc *AnalyzeAlignment) {
		if n > 0 {
			uc.maxDisplayRows = n
		}
	}
}

// WithWorkers sets the column-classification parallelism. 0 means all CPUs.
func WithWorkers(n int) AnalyzeOption {
	return func(uc *AnalyzeAlignment) { uc.workers = n }
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) AnalyzeOption {
	return func(uc *AnalyzeAlignment) { uc.now = now }
}

func NewAnalyzeAlignment(loader ports.AlignmentLoader, store ports.ReportStore, opts ...AnalyzeOption) *AnalyzeAlignment {
	uc := &AnalyzeAlignment{
		loader:         loader,
		store:          store,
		maxDisplayRows: domain.DefaultMaxDisplayRows,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute runs one full analysis pass. The returned id is empty when no store
// is configured.
func (uc *AnalyzeAlignment) Execute(ctx context.Context, path string) (domain.AnalysisResult, string, error) {
	started := uc.now()

	a, err := uc.loader.LoadAlignment(path)
	if err != nil {
		return domain.AnalysisResult{}, "", err
	}

	snps, conserved, err := domain.ClassifyParallel(ctx, a, uc.workers)
	if err != nil {
		return domain.AnalysisResult{}, "", err
	}

	var representative string
	if a.Rows() > 0 {
		representative = a.RowString(0)
	}
	regions := domain.MergeRegions(conserved, representative)

	result := domain.AnalysisResult{
		Report: domain.Report{
			AlignmentPath:   path,
			SequenceCount:   a.Rows(),
			AlignmentLength: a.Length(),
			SNPPositions:    snps,
			Regions:         regions,
			Summary:         domain.BuildSummary(regions),
			StartedAt:       started,
			FinishedAt:      uc.now(),
		},
		Display: domain.BuildDisplay(a, snps, regions, uc.maxDisplayRows),
	}

	if uc.store == nil {
		return result, "", nil
	}

	id, err := uc.store.SaveReport(result.Report)
	if err != nil {
		// The analysis itself succeeded; hand it back alongside the error.
		return result, id, err
	}
	return result, id, nil
}
