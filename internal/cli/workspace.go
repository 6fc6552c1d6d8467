package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tayden1990/alnscope/internal/domain"
	"github.com/tayden1990/alnscope/internal/infra/fastaparse"
	"github.com/tayden1990/alnscope/internal/infra/reportstore"
	"github.com/tayden1990/alnscope/internal/infra/workspacefinder"
	"github.com/tayden1990/alnscope/internal/ports"
)

type workspaceCtx struct {
	root string
	cfg  domain.Config

	alignments ports.AlignmentLoader
	store      ports.ReportStore
}

func loadWorkspace(workspaceFlag string) (*workspaceCtx, error) {
	root, err := resolveWorkspaceRoot(workspaceFlag)
	if err != nil {
		return nil, err
	}

	cfg, err := workspacefinder.LoadConfig(root)
	if err != nil {
		return nil, err
	}

	loader := fastaparse.NewLoader(
		fastaparse.WithAlignmentsDir(cfg.Paths.AlignmentsDir),
	)

	store := reportstore.NewJSONStore(root, cfg, reportstore.WithIndex(true))

	return &workspaceCtx{
		root:       root,
		cfg:        cfg,
		alignments: loader,
		store:      store,
	}, nil
}

func resolveWorkspaceRoot(workspaceFlag string) (string, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	locator := workspacefinder.NewFinder()
	root, err := locator.FindRoot(wd)
	if err != nil {
		return "", fmt.Errorf("workspace not found from %q (tip: run `alnscope init`): %w", wd, err)
	}
	return root, nil
}

func resolveAlignmentPath(ws *workspaceCtx, arg string) (string, error) {
	in := strings.TrimSpace(arg)
	if in == "" {
		return "", fmt.Errorf("alignment file is required (use --file or -f)")
	}

	// If arg looks like a path (contains separators), resolve relative to workspace root.
	if looksLikePath(in) {
		p := in
		if !filepath.IsAbs(p) {
			p = filepath.Join(ws.root, p)
		}
		return filepath.Clean(p), nil
	}

	alignmentsDir := filepath.Join(ws.root, ws.cfg.Paths.AlignmentsDir)

	// If user provided "demo.afa", treat it as a file under the alignments dir.
	if hasFastaExt(in) {
		p := filepath.Join(alignmentsDir, in)
		if fileExists(p) {
			return p, nil
		}
	}

	// If user provided "demo", try the known extensions in the alignments dir.
	for _, ext := range []string{".afa", ".fasta", ".fa", ".aln"} {
		p := filepath.Join(alignmentsDir, in+ext)
		if fileExists(p) {
			return p, nil
		}
	}

	// As a last resort: match by listed alignment name.
	refs, err := ws.alignments.ListAlignments(ws.root)
	if err == nil {
		for _, r := range refs {
			if strings.EqualFold(r.Name, in) {
				return r.Path, nil
			}
		}
	}

	return "", fmt.Errorf("alignment %q not found in %q", in, alignmentsDir)
}

func looksLikePath(s string) bool {
	return strings.Contains(s, "/") || strings.Contains(s, string(filepath.Separator))
}

func hasFastaExt(s string) bool {
	ext := strings.ToLower(filepath.Ext(s))
	switch ext {
	case ".afa", ".fasta", ".fa", ".aln", ".efa":
		return true
	}
	return false
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
