// Package fastaparse maps aligned FASTA files into the domain matrix.
package fastaparse

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tayden1990/alnscope/internal/domain"
	"github.com/tayden1990/alnscope/internal/ports"
)

// Long genome rows easily exceed bufio.Scanner's default line limit.
const maxLineBytes = 8 * 1024 * 1024

type Loader struct {
	alignmentsDir string
}

type Option func(*Loader)

func WithAlignmentsDir(dir string) Option {
	return func(l *Loader) { l.alignmentsDir = dir }
}

func NewLoader(opts ...Option) *Loader {
	l := &Loader{alignmentsDir: "alignments"}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

var _ ports.AlignmentLoader = (*Loader)(nil)

// LoadAlignment parses an aligned FASTA file. The resulting matrix is
// validated by the domain constructor: unequal row lengths surface as
// malformed_matrix, not a partially built alignment.
func (l *Loader) LoadAlignment(path string) (*domain.Alignment, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "fastaparse.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}
	defer f.Close()

	rows, err := parseRecords(f)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "fastaparse.load",
			Kind: domain.KindInvalidInput,
			Path: path,
			Err:  err,
		}
	}
	if len(rows) == 0 {
		return nil, &domain.OpError{
			Op:   "fastaparse.load",
			Kind: domain.KindInvalidInput,
			Path: path,
			Err:  fmt.Errorf("no FASTA records: %w", domain.ErrInvalidInput),
		}
	}

	a, err := domain.NewAlignment(rows)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func parseRecords(f *os.File) ([]domain.Row, error) {
	var rows []domain.Row
	var cur domain.Row
	inRecord := false

	flush := func() {
		if inRecord {
			rows = append(rows, cur)
		}
	}

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ">") {
			flush()
			cur = domain.Row{ID: recordID(line)}
			inRecord = true
			continue
		}

		if !inRecord {
			return nil, fmt.Errorf("line %d: sequence data before first header: %w", lineNo, domain.ErrInvalidInput)
		}
		cur.Seq = append(cur.Seq, []byte(line)...)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	flush()

	return rows, nil
}

// recordID keeps only the accession part of a header, matching how alignment
// viewers label rows.
func recordID(header string) string {
	h := strings.TrimSpace(strings.TrimPrefix(header, ">"))
	if i := strings.IndexAny(h, " \t"); i >= 0 {
		h = h[:i]
	}
	return h
}

// ListAlignments returns alignment files under the workspace alignments dir,
// sorted by name.
func (l *Loader) ListAlignments(root string) ([]domain.AlignmentRef, error) {
	dir := filepath.Join(root, l.alignmentsDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "fastaparse.list",
			Kind: domain.KindNotFound,
			Path: dir,
			Err:  err,
		}
	}

	var refs []domain.AlignmentRef
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !hasAlignmentExt(name) {
			continue
		}
		refs = append(refs, domain.AlignmentRef{
			Name: strings.TrimSuffix(name, filepath.Ext(name)),
			Path: filepath.Join(dir, name),
		})
	}

	sort.Slice(refs, func(i, j int) bool { return refs[i].Name < refs[j].Name })
	return refs, nil
}

func hasAlignmentExt(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".fasta", ".fa", ".afa", ".aln":
		return true
	}
	return false
}
