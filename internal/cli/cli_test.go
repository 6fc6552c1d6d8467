package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/tayden1990/alnscope/internal/domain"
)

// --- looksLikePath ---

func TestLooksLikePath(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"demo", false},
		{"demo.afa", false},
		{"./demo.afa", true},
		{"alignments/demo.afa", true},
		{"/abs/path/demo.afa", true},
	}
	for _, c := range cases {
		if got := looksLikePath(c.input); got != c.want {
			t.Errorf("looksLikePath(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

// --- hasFastaExt ---

func TestHasFastaExt(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"demo.afa", true},
		{"demo.fasta", true},
		{"demo.fa", true},
		{"demo.aln", true},
		{"demo.efa", true},
		{"DEMO.AFA", true},
		{"demo.json", false},
		{"demo", false},
		{"", false},
	}
	for _, c := range cases {
		if got := hasFastaExt(c.input); got != c.want {
			t.Errorf("hasFastaExt(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

// --- fileExists ---

func TestFileExists_True(t *testing.T) {
	tmp := t.TempDir()
	p := filepath.Join(tmp, "exists.txt")
	if err := os.WriteFile(p, []byte("hi"), 0o644); err != nil {
		t.Fatal(err)
	}
	if !fileExists(p) {
		t.Errorf("expected fileExists=true for %s", p)
	}
}

func TestFileExists_False(t *testing.T) {
	tmp := t.TempDir()
	if fileExists(filepath.Join(tmp, "not_there.txt")) {
		t.Error("expected fileExists=false for non-existent file")
	}
}

// --- clipSeq ---

func TestClipSeq(t *testing.T) {
	if got := clipSeq("ACGT", 10); got != "ACGT" {
		t.Errorf("expected unchanged, got %q", got)
	}
	if got := clipSeq("ACGTACGT", 4); got != "ACGT..." {
		t.Errorf("expected clipped, got %q", got)
	}
}

// --- durationOrZero ---

func TestDurationOrZero(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	if d := durationOrZero(now, now.Add(time.Second)); d != time.Second {
		t.Errorf("expected 1s, got %s", d)
	}
	if d := durationOrZero(time.Time{}, now); d != 0 {
		t.Errorf("expected 0 for zero start, got %s", d)
	}
	if d := durationOrZero(now, time.Time{}); d != 0 {
		t.Errorf("expected 0 for zero end, got %s", d)
	}
}

// --- printAnalysis ---

func sampleAnalysis() domain.AnalysisResult {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	regions := []domain.Region{{Start: 0, End: 1, Length: 2, Seq: "AC"}}
	return domain.AnalysisResult{
		Report: domain.Report{
			AlignmentPath:   "alignments/demo.afa",
			SequenceCount:   3,
			AlignmentLength: 5,
			SNPPositions:    []int{2},
			Regions:         regions,
			Summary:         domain.BuildSummary(regions),
			StartedAt:       now,
			FinishedAt:      now.Add(100 * time.Millisecond),
		},
	}
}

func TestPrintAnalysis_JSON_ValidOutput(t *testing.T) {
	var buf bytes.Buffer
	if err := printAnalysis(&buf, sampleAnalysis(), "abc123", "json"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var payload map[string]any
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}
	if payload["report_id"] != "abc123" {
		t.Errorf("expected report_id=abc123, got %v", payload["report_id"])
	}
	if payload["report"] == nil {
		t.Error("expected 'report' key in JSON output")
	}
}

func TestPrintAnalysis_Pretty_ContainsCoreFacts(t *testing.T) {
	var buf bytes.Buffer
	if err := printAnalysis(&buf, sampleAnalysis(), "report-42", "pretty"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "alignments/demo.afa") {
		t.Errorf("expected alignment path in pretty output, got:\n%s", out)
	}
	if !strings.Contains(out, "report-42") {
		t.Errorf("expected report ID in pretty output, got:\n%s", out)
	}
	// SNP column 2 prints as 1-based position 3.
	if !strings.Contains(out, "positions (1-based): 3") {
		t.Errorf("expected 1-based SNP position in output, got:\n%s", out)
	}
}

func TestPrintAnalysis_Pretty_TruncationNote(t *testing.T) {
	res := sampleAnalysis()
	res.Display.Truncated = true
	res.Display.DisplayCount = 30
	res.Display.TotalRows = 50

	var buf bytes.Buffer
	if err := printAnalysis(&buf, res, "", "pretty"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "30 of 50") {
		t.Errorf("expected truncation note, got:\n%s", buf.String())
	}
}

func TestPrintAnalysis_EmptyFormat_IsPretty(t *testing.T) {
	var buf bytes.Buffer
	if err := printAnalysis(&buf, domain.AnalysisResult{}, "", ""); err != nil {
		t.Fatalf("empty format should behave like pretty, got error: %v", err)
	}
}

func TestPrintAnalysis_UnknownFormat_ReturnsError(t *testing.T) {
	var buf bytes.Buffer
	err := printAnalysis(&buf, domain.AnalysisResult{}, "", "xml")
	if err == nil {
		t.Fatal("expected error for unknown format")
	}
	if !strings.Contains(err.Error(), "xml") {
		t.Errorf("expected error to mention format, got: %v", err)
	}
}

// --- command structure ---

func TestRootCmd_RegistersSubcommands(t *testing.T) {
	cmd := newRootCmd()
	names := map[string]bool{}
	for _, sub := range cmd.Commands() {
		names[sub.Use] = true
	}
	for _, expected := range []string{"analyze", "align", "alignments", "init"} {
		if !names[expected] {
			t.Errorf("expected subcommand %q to be registered", expected)
		}
	}
}

func TestAnalyzeCmd_Flags(t *testing.T) {
	cmd := analyzeCmd()
	if cmd.Use != "analyze" {
		t.Errorf("expected Use=analyze, got %q", cmd.Use)
	}
	for _, flag := range []string{"file", "workspace", "max-rows", "workers", "no-save", "format"} {
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("expected --%s flag on analyze command", flag)
		}
	}
}

func TestAlignCmd_Flags(t *testing.T) {
	cmd := alignCmd()
	if cmd.Use != "align" {
		t.Errorf("expected Use=align, got %q", cmd.Use)
	}
	for _, flag := range []string{"input", "output", "super5", "stratified", "threads", "no-analyze", "no-save", "workspace"} {
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("expected --%s flag on align command", flag)
		}
	}
}

func TestAlignmentsCmd_HasListSubcommand(t *testing.T) {
	cmd := alignmentsCmd()
	found := false
	for _, sub := range cmd.Commands() {
		if sub.Use == "list" {
			found = true
		}
	}
	if !found {
		t.Error("expected 'list' subcommand under alignments")
	}
}

func TestInitCmd_Flags(t *testing.T) {
	cmd := initCmd()
	if cmd.Flags().Lookup("path") == nil {
		t.Error("expected --path flag on init command")
	}
	if cmd.Flags().Lookup("force") == nil {
		t.Error("expected --force flag on init command")
	}
}

// --- resolveWorkspaceRoot ---

func TestResolveWorkspaceRoot_ExplicitPath(t *testing.T) {
	tmp := t.TempDir()
	got, err := resolveWorkspaceRoot(tmp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != tmp {
		t.Errorf("expected %q, got %q", tmp, got)
	}
}

func TestResolveWorkspaceRoot_RelativePath(t *testing.T) {
	got, err := resolveWorkspaceRoot(".")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !filepath.IsAbs(got) {
		t.Errorf("expected absolute path, got %q", got)
	}
}

// --- resolveAlignmentPath ---

func workspaceForTest(t *testing.T) *workspaceCtx {
	t.Helper()
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "alnscope.yaml"), []byte("alnscope: {}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(root, "alignments"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "alignments", "demo.afa"), []byte(">a\nACGT\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	ws, err := loadWorkspace(root)
	if err != nil {
		t.Fatalf("loadWorkspace: %v", err)
	}
	return ws
}

func TestResolveAlignmentPath_ByName(t *testing.T) {
	ws := workspaceForTest(t)

	got, err := resolveAlignmentPath(ws, "demo")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filepath.Base(got) != "demo.afa" {
		t.Errorf("expected demo.afa, got %q", got)
	}
}

func TestResolveAlignmentPath_ByFilename(t *testing.T) {
	ws := workspaceForTest(t)

	got, err := resolveAlignmentPath(ws, "demo.afa")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filepath.Base(got) != "demo.afa" {
		t.Errorf("expected demo.afa, got %q", got)
	}
}

func TestResolveAlignmentPath_RelativePath(t *testing.T) {
	ws := workspaceForTest(t)

	got, err := resolveAlignmentPath(ws, "alignments/demo.afa")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != filepath.Join(ws.root, "alignments", "demo.afa") {
		t.Errorf("unexpected path %q", got)
	}
}

func TestResolveAlignmentPath_NotFound(t *testing.T) {
	ws := workspaceForTest(t)

	if _, err := resolveAlignmentPath(ws, "missing"); err == nil {
		t.Fatal("expected error for unknown alignment")
	}
}

func TestResolveAlignmentPath_Empty(t *testing.T) {
	ws := workspaceForTest(t)

	if _, err := resolveAlignmentPath(ws, "  "); err == nil {
		t.Fatal("expected error for empty alignment arg")
	}
}

// --- defaultOutputPath ---

func TestDefaultOutputPath(t *testing.T) {
	ws := workspaceForTest(t)

	got := defaultOutputPath(ws, "/tmp/raw/sequences.fasta")
	want := filepath.Join(ws.root, "alignments", "sequences.afa")
	if got != want {
		t.Errorf("defaultOutputPath = %q, want %q", got, want)
	}
}
