package tui

import "github.com/tayden1990/alnscope/internal/domain"

type workspaceRefreshedMsg struct {
	cwd   string
	found bool
	root  string
	err   error
}

type initWorkspaceDoneMsg struct {
	root string
	err  error
}

type alignmentsLoadedMsg struct {
	root string
	refs []domain.AlignmentRef
	err  error
}

type analysisDoneMsg struct {
	path   string
	result domain.AnalysisResult
	id     string
	err    error
}
