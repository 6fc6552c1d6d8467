package usecase

import (
	"context"

	"github.com/tayden1990/alnscope/internal/domain"
)

type fakeLoader struct {
	alignment *domain.Alignment
	err       error
}

func (f fakeLoader) LoadAlignment(string) (*domain.Alignment, error) {
	return f.alignment, f.err
}

func (f fakeLoader) ListAlignments(string) ([]domain.AlignmentRef, error) {
	return nil, f.err
}

type fakeStore struct {
	saved []domain.Report
	id    string
	err   error
}

func (f *fakeStore) SaveReport(r domain.Report) (string, error) {
	f.saved = append(f.saved, r)
	return f.id, f.err
}

type fakeAligner struct {
	result domain.AlignResult
	err    error
	calls  []domain.AlignRequest
}

func (f *fakeAligner) Align(_ context.Context, req domain.AlignRequest) (domain.AlignResult, error) {
	f.calls = append(f.calls, req)
	return f.result, f.err
}

func mustAlignment(seqs ...string) *domain.Alignment {
	rows := make([]domain.Row, 0, len(seqs))
	for i, s := range seqs {
		rows = append(rows, domain.Row{ID: string(rune('a' + i)), Seq: []byte(s)})
	}
	a, err := domain.NewAlignment(rows)
	if err != nil {
		panic(err)
	}
	return a
}
