// Package musclerunner drives the external MUSCLE5 executable.
package musclerunner

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/tayden1990/alnscope/internal/domain"
	"github.com/tayden1990/alnscope/internal/ports"
)

const defaultMaxCaptureBytes = 256 * 1024 // 256KB per stream

type Runner struct {
	exe             string
	maxCaptureBytes int
}

type Option func(*Runner)

func WithMaxCaptureBytes(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.maxCaptureBytes = n
		}
	}
}

func New(exe string, opts ...Option) *Runner {
	r := &Runner{
		exe:             exe,
		maxCaptureBytes: defaultMaxCaptureBytes,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var _ ports.Aligner = (*Runner)(nil)

// Align runs one MUSCLE5 invocation. Stdout/stderr are captured bounded so a
// chatty aligner cannot blow up memory; the output file path actually used is
// returned (stratified runs swap the extension to .efa).
func (r *Runner) Align(ctx context.Context, req domain.AlignRequest) (domain.AlignResult, error) {
	if strings.TrimSpace(req.InputPath) == "" {
		return domain.AlignResult{}, &domain.OpError{
			Op:   "musclerunner.align",
			Kind: domain.KindInvalidInput,
			Err:  fmt.Errorf("input path is empty: %w", domain.ErrInvalidInput),
		}
	}
	if strings.TrimSpace(req.OutputPath) == "" {
		return domain.AlignResult{}, &domain.OpError{
			Op:   "musclerunner.align",
			Kind: domain.KindInvalidInput,
			Err:  fmt.Errorf("output path is empty: %w", domain.ErrInvalidInput),
		}
	}

	out := outputPath(req)
	args := buildArgs(req, out)

	cmd := exec.CommandContext(ctx, r.exe, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	runErr := cmd.Run()
	elapsed := time.Since(start)

	so, soTrunc := clamp(stdout.Bytes(), r.maxCaptureBytes)
	se, seTrunc := clamp(stderr.Bytes(), r.maxCaptureBytes)

	result := domain.AlignResult{
		OutputPath: out,
		Stdout:     so,
		Stderr:     se,
		Truncated:  soTrunc || seTrunc,
		Duration:   elapsed,
	}

	if runErr != nil {
		detail := strings.TrimSpace(se)
		if detail == "" {
			detail = runErr.Error()
		}
		return result, &domain.OpError{
			Op:   "musclerunner.align",
			Kind: domain.KindExecution,
			Path: r.exe,
			Err:  fmt.Errorf("%s: %w", detail, domain.ErrExecution),
		}
	}

	return result, nil
}

// Validate runs the candidate with -version and checks the output actually
// mentions MUSCLE, so a random executable on the path does not pass for the
// aligner.
func (r *Runner) Validate(ctx context.Context) error {
	cmd := exec.CommandContext(ctx, r.exe, "-version")
	out, err := cmd.CombinedOutput()
	if err != nil && len(out) == 0 {
		return &domain.OpError{
			Op:   "musclerunner.validate",
			Kind: domain.KindExecution,
			Path: r.exe,
			Err:  err,
		}
	}
	if !strings.Contains(strings.ToLower(string(out)), "muscle") {
		return &domain.OpError{
			Op:   "musclerunner.validate",
			Kind: domain.KindInvalidConfig,
			Path: r.exe,
			Err:  fmt.Errorf("does not look like a MUSCLE executable: %w", domain.ErrInvalidConfig),
		}
	}
	return nil
}

func buildArgs(req domain.AlignRequest, out string) []string {
	threads := req.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}

	mode := "-align"
	if req.Super5 {
		mode = "-super5"
	}

	args := []string{mode, req.InputPath, "-output", out, "-threads", strconv.Itoa(threads)}
	if req.Stratified && !req.Super5 {
		args = append(args, "-stratified")
	}
	return args
}

// outputPath swaps .afa for .efa on stratified ensemble runs, matching the
// file MUSCLE actually writes.
func outputPath(req domain.AlignRequest) string {
	out := req.OutputPath
	if req.Stratified && !req.Super5 && strings.HasSuffix(out, ".afa") {
		out = strings.TrimSuffix(out, ".afa") + ".efa"
	}
	return out
}

func clamp(b []byte, maxBytes int) (string, bool) {
	if len(b) <= maxBytes {
		return string(b), false
	}
	return string(b[:maxBytes]), true
}
