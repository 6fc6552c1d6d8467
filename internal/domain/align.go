package domain

import "time"

// AlignRequest describes one invocation of the external MUSCLE5 aligner.
type AlignRequest struct {
	InputPath  string
	OutputPath string

	// Super5 selects the large-dataset algorithm (muscle -super5).
	Super5 bool

	// Stratified asks for a stratified ensemble; output becomes .efa.
	// Ignored when Super5 is set.
	Stratified bool

	// Threads passed via -threads. 0 means all CPUs.
	Threads int
}

// AlignResult is what the aligner reports back.
type AlignResult struct {
	OutputPath string
	Stdout     string
	Stderr     string
	Truncated  bool // stdout/stderr capture was bounded
	Duration   time.Duration
}
