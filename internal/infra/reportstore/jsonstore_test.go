package reportstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/tayden1990/alnscope/internal/domain"
)

func sampleReport() domain.Report {
	return domain.Report{
		AlignmentPath:   "alignments/Demo Set.afa",
		SequenceCount:   3,
		AlignmentLength: 5,
		SNPPositions:    []int{2},
		Regions: []domain.Region{
			{Start: 0, End: 1, Length: 2, Seq: "AC"},
			{Start: 3, End: 4, Length: 2, Seq: "TA"},
		},
		Summary:   domain.BuildSummary([]domain.Region{{Start: 0, End: 1, Length: 2, Seq: "AC"}}),
		StartedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestSaveReport_WritesArtifact(t *testing.T) {
	root := t.TempDir()
	store := NewJSONStore(root, domain.DefaultConfig())

	id, err := store.SaveReport(sampleReport())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.HasPrefix(id, "20240102T030405Z_") {
		t.Fatalf("id = %q", id)
	}
	if !strings.Contains(id, "demo-set") {
		t.Fatalf("id = %q, want slugified alignment name", id)
	}

	path := filepath.Join(root, "reports", id+".json")
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("artifact missing: %v", err)
	}

	var got domain.Report
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("artifact not valid JSON: %v", err)
	}
	if got.SequenceCount != 3 || len(got.Regions) != 2 {
		t.Fatalf("roundtrip mismatch: %+v", got)
	}

	// No leftover tmp file.
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatal("tmp file left behind")
	}
}

func TestSaveReport_UsesNowWhenStartMissing(t *testing.T) {
	root := t.TempDir()
	fixed := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	store := NewJSONStore(root, domain.DefaultConfig(), WithNow(func() time.Time { return fixed }))

	r := sampleReport()
	r.StartedAt = time.Time{}

	id, err := store.SaveReport(r)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(id, "20240601T000000Z_") {
		t.Fatalf("id = %q", id)
	}
}

func TestSaveReport_Index(t *testing.T) {
	root := t.TempDir()
	store := NewJSONStore(root, domain.DefaultConfig(), WithIndex(true))

	if _, err := store.SaveReport(sampleReport()); err != nil {
		t.Fatal(err)
	}
	if _, err := store.SaveReport(sampleReport()); err != nil {
		t.Fatal(err)
	}

	b, err := os.ReadFile(filepath.Join(root, "reports", "index.jsonl"))
	if err != nil {
		t.Fatalf("index missing: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	if len(lines) != 2 {
		t.Fatalf("index lines = %d", len(lines))
	}

	var entry struct {
		ID        string `json:"id"`
		Sequences int    `json:"sequences"`
		SNPs      int    `json:"snps"`
	}
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatal(err)
	}
	if entry.Sequences != 3 || entry.SNPs != 1 || entry.ID == "" {
		t.Fatalf("entry = %+v", entry)
	}
}

func TestSaveReport_CustomReportsDir(t *testing.T) {
	root := t.TempDir()
	cfg := domain.DefaultConfig()
	cfg.Paths.ReportsDir = "out"
	store := NewJSONStore(root, cfg)

	id, err := store.SaveReport(sampleReport())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(root, "out", id+".json")); err != nil {
		t.Fatalf("artifact not in custom dir: %v", err)
	}
}

func TestSlugify(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Demo Set", "demo-set"},
		{"already-fine", "already-fine"},
		{"??weird!!", "weird"},
		{"", ""},
	}
	for _, c := range cases {
		if got := slugify(c.in); got != c.want {
			t.Errorf("slugify(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
