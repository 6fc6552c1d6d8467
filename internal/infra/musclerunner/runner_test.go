package musclerunner

import (
	"context"
	"strings"
	"testing"

	"github.com/tayden1990/alnscope/internal/domain"
)

func TestBuildArgs_Standard(t *testing.T) {
	req := domain.AlignRequest{InputPath: "seqs.fa", OutputPath: "aln.afa", Threads: 4}
	args := buildArgs(req, "aln.afa")

	want := []string{"-align", "seqs.fa", "-output", "aln.afa", "-threads", "4"}
	if strings.Join(args, " ") != strings.Join(want, " ") {
		t.Fatalf("args = %v, want %v", args, want)
	}
}

func TestBuildArgs_Super5(t *testing.T) {
	req := domain.AlignRequest{InputPath: "seqs.fa", OutputPath: "aln.afa", Super5: true, Threads: 2}
	args := buildArgs(req, "aln.afa")

	if args[0] != "-super5" {
		t.Fatalf("args = %v", args)
	}
	for _, a := range args {
		if a == "-stratified" {
			t.Fatal("-stratified must not combine with -super5")
		}
	}
}

func TestBuildArgs_Stratified(t *testing.T) {
	req := domain.AlignRequest{InputPath: "seqs.fa", OutputPath: "aln.afa", Stratified: true, Threads: 1}
	out := outputPath(req)
	if out != "aln.efa" {
		t.Fatalf("output = %q, want aln.efa", out)
	}

	args := buildArgs(req, out)
	if args[len(args)-1] != "-stratified" {
		t.Fatalf("args = %v", args)
	}
	if args[3] != "aln.efa" {
		t.Fatalf("args = %v", args)
	}
}

func TestBuildArgs_DefaultThreads(t *testing.T) {
	req := domain.AlignRequest{InputPath: "seqs.fa", OutputPath: "aln.afa"}
	args := buildArgs(req, "aln.afa")
	if args[5] == "0" {
		t.Fatalf("threads must default to CPU count, got %v", args)
	}
}

func TestAlign_RejectsEmptyPaths(t *testing.T) {
	r := New("muscle")

	_, err := r.Align(context.Background(), domain.AlignRequest{OutputPath: "x.afa"})
	if !domain.IsKind(err, domain.KindInvalidInput) {
		t.Fatalf("expected KindInvalidInput, got %v", err)
	}

	_, err = r.Align(context.Background(), domain.AlignRequest{InputPath: "x.fa"})
	if !domain.IsKind(err, domain.KindInvalidInput) {
		t.Fatalf("expected KindInvalidInput, got %v", err)
	}
}

func TestAlign_MissingExecutable(t *testing.T) {
	r := New("/definitely/not/a/muscle/binary")

	_, err := r.Align(context.Background(), domain.AlignRequest{InputPath: "in.fa", OutputPath: "out.afa"})
	if err == nil {
		t.Fatal("expected error")
	}
	if !domain.IsKind(err, domain.KindExecution) {
		t.Fatalf("expected KindExecution, got %v", err)
	}
}

func TestClamp(t *testing.T) {
	s, trunc := clamp([]byte("hello"), 3)
	if s != "hel" || !trunc {
		t.Fatalf("clamp = %q trunc=%v", s, trunc)
	}
	s, trunc = clamp([]byte("hi"), 3)
	if s != "hi" || trunc {
		t.Fatalf("clamp = %q trunc=%v", s, trunc)
	}
}

func TestLocate_PrefersConfigured(t *testing.T) {
	if got := Locate("/opt/muscle5"); got != "/opt/muscle5" {
		t.Fatalf("Locate = %q", got)
	}
}

func TestLocate_EnvOverridesDefaults(t *testing.T) {
	t.Setenv("MUSCLE5_PATH", "/env/muscle")
	if got := Locate(""); got != "/env/muscle" {
		t.Fatalf("Locate = %q", got)
	}
}
