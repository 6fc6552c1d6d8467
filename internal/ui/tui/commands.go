package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tayden1990/alnscope/internal/domain"
	"github.com/tayden1990/alnscope/internal/infra/fastaparse"
	"github.com/tayden1990/alnscope/internal/infra/reportstore"
	"github.com/tayden1990/alnscope/internal/infra/workspacefinder"
	"github.com/tayden1990/alnscope/internal/usecase"
)

func cmdRefreshWorkspace(deps Deps) tea.Cmd {
	return func() tea.Msg {
		wd, err := os.Getwd()
		if err != nil {
			return workspaceRefreshedMsg{cwd: "", found: false, err: fmt.Errorf("getwd: %w", err)}
		}
		if deps.WorkspaceLocator == nil {
			return workspaceRefreshedMsg{cwd: wd, found: false, err: errors.New("WorkspaceLocator is nil")}
		}

		root, findErr := deps.WorkspaceLocator.FindRoot(wd)
		if findErr != nil {
			return workspaceRefreshedMsg{cwd: wd, found: false, err: findErr}
		}

		return workspaceRefreshedMsg{cwd: wd, found: true, root: root, err: nil}
	}
}

func cmdInitWorkspaceHere(deps Deps, root string) tea.Cmd {
	return func() tea.Msg {
		if deps.WorkspaceInitializer == nil {
			return initWorkspaceDoneMsg{root: root, err: errors.New("WorkspaceInitializer is nil")}
		}

		err := deps.WorkspaceInitializer.Init(domain.WorkspaceSpec{Root: root}, true)
		return initWorkspaceDoneMsg{root: root, err: err}
	}
}

func cmdLoadAlignments(root string) tea.Cmd {
	return func() tea.Msg {
		cfg, err := workspacefinder.LoadConfig(root)
		if err != nil {
			return alignmentsLoadedMsg{root: root, err: err}
		}

		loader := fastaparse.NewLoader(
			fastaparse.WithAlignmentsDir(cfg.Paths.AlignmentsDir),
		)

		refs, err := loader.ListAlignments(root)
		return alignmentsLoadedMsg{root: root, refs: refs, err: err}
	}
}

func listenAnalysis(ch <-chan analysisDoneMsg) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-ch
		if !ok {
			return analysisDoneMsg{err: errors.New("analysis channel closed")}
		}
		return msg
	}
}

func startAnalysisAsync(
	workspaceRoot, alignmentPath string,
	log *slog.Logger,
	debug bool,
) (chan analysisDoneMsg, tea.Cmd) {
	ch := make(chan analysisDoneMsg, 1)

	if log == nil {
		log = slog.Default()
	}

	go func() {
		defer close(ch)

		log.Info("analysis.start",
			"workspace", workspaceRoot,
			"alignment_path", alignmentPath,
			"debug", debug,
		)

		cfg, err := workspacefinder.LoadConfig(workspaceRoot)
		if err != nil {
			log.Error("analysis.load_config.failed", "err", err)
			ch <- analysisDoneMsg{path: alignmentPath, err: err}
			return
		}

		loader := fastaparse.NewLoader(
			fastaparse.WithAlignmentsDir(cfg.Paths.AlignmentsDir),
		)
		store := reportstore.NewJSONStore(workspaceRoot, cfg, reportstore.WithIndex(true))

		uc := usecase.NewAnalyzeAlignment(loader, store,
			usecase.WithMaxDisplayRows(cfg.Defaults.MaxDisplayRows),
		)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		result, id, execErr := uc.Execute(ctx, alignmentPath)

		if execErr != nil {
			log.Error("analysis.failed", "err", execErr, "saved_id", id)
		} else {
			log.Info("analysis.ok",
				"saved_id", id,
				"sequences", result.Report.SequenceCount,
				"length", result.Report.AlignmentLength,
				"snps", len(result.Report.SNPPositions),
				"regions", len(result.Report.Regions),
			)
		}

		if debug && result.Display.Truncated {
			log.Debug("analysis.display_truncated",
				"shown", result.Display.DisplayCount,
				"total", result.Display.TotalRows,
			)
		}

		ch <- analysisDoneMsg{path: alignmentPath, result: result, id: id, err: execErr}
	}()

	return ch, listenAnalysis(ch)
}
