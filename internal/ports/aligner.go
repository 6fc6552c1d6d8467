package ports

import (
	"context"

	"github.com/tayden1990/alnscope/internal/domain"
)

// Aligner runs the external alignment executable over an input FASTA.
type Aligner interface {
	Align(ctx context.Context, req domain.AlignRequest) (domain.AlignResult, error)
}
