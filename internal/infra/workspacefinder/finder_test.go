package workspacefinder

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tayden1990/alnscope/internal/domain"
)

func TestFindRoot_FindsMarkerUpward(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "alnscope.yaml"), []byte("alnscope: {}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	nested := filepath.Join(root, "alignments", "deep")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := NewFinder().FindRoot(nested)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got != root {
		t.Fatalf("root = %q, want %q", got, root)
	}
}

func TestFindRoot_FilePathUsesDir(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "alnscope.yaml"), []byte("alnscope: {}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	file := filepath.Join(root, "demo.afa")
	if err := os.WriteFile(file, []byte(">a\nACGT\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := NewFinder().FindRoot(file)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got != root {
		t.Fatalf("root = %q, want %q", got, root)
	}
}

func TestFindRoot_NotFound(t *testing.T) {
	_, err := NewFinder().FindRoot(t.TempDir())
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got %v", err)
	}
}

func TestFindRoot_EmptyStart(t *testing.T) {
	_, err := NewFinder().FindRoot("")
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig, got %v", err)
	}
}
