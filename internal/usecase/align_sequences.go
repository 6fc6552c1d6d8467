package usecase

import (
	"context"

	"github.com/tayden1990/alnscope/internal/domain"
	"github.com/tayden1990/alnscope/internal/ports"
)

// AlignSequences runs the external aligner and then analyzes its output.
type AlignSequences struct {
	aligner ports.Aligner
	analyze *AnalyzeAlignment // nil skips the analysis step
}

func NewAlignSequences(aligner ports.Aligner, analyze *AnalyzeAlignment) *AlignSequences {
	return &AlignSequences{aligner: aligner, analyze: analyze}
}

func (uc *AlignSequences) Execute(ctx context.Context, req domain.AlignRequest) (domain.AlignResult, domain.AnalysisResult, string, error) {
	aligned, err := uc.aligner.Align(ctx, req)
	if err != nil {
		return aligned, domain.AnalysisResult{}, "", err
	}

	if uc.analyze == nil {
		return aligned, domain.AnalysisResult{}, "", nil
	}

	analysis, id, err := uc.analyze.Execute(ctx, aligned.OutputPath)
	return aligned, analysis, id, err
}
