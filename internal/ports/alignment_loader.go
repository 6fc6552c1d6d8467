package ports

import "github.com/tayden1990/alnscope/internal/domain"

// AlignmentLoader parses aligned files into the domain matrix.
type AlignmentLoader interface {
	LoadAlignment(path string) (*domain.Alignment, error)
	ListAlignments(root string) ([]domain.AlignmentRef, error)
}
