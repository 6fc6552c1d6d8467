package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tayden1990/alnscope/internal/domain"
	"github.com/tayden1990/alnscope/internal/infra/musclerunner"
	"github.com/tayden1990/alnscope/internal/usecase"
)

func alignCmd() *cobra.Command {
	var workspace string
	var input string
	var output string
	var super5 bool
	var stratified bool
	var threads int
	var noAnalyze bool
	var noSave bool
	var format string

	c := &cobra.Command{
		Use:   "align",
		Short: "Align unaligned FASTA sequences with MUSCLE5, then analyze the result",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			inputPath := input
			if !filepath.IsAbs(inputPath) {
				inputPath = filepath.Join(ws.root, inputPath)
			}
			if !fileExists(inputPath) {
				return fmt.Errorf("input file %q not found", inputPath)
			}

			outputPath := output
			if outputPath == "" {
				outputPath = defaultOutputPath(ws, inputPath)
			} else if !filepath.IsAbs(outputPath) {
				outputPath = filepath.Join(ws.root, outputPath)
			}

			if threads == 0 {
				threads = ws.cfg.Muscle.Threads
			}

			exe := musclerunner.Locate(ws.cfg.Muscle.Path)
			runner := musclerunner.New(exe)
			if err := runner.Validate(cmd.Context()); err != nil {
				return err
			}

			var analyze *usecase.AnalyzeAlignment
			if !noAnalyze {
				var store = ws.store
				if noSave {
					store = nil
				}
				analyze = usecase.NewAnalyzeAlignment(ws.alignments, store,
					usecase.WithMaxDisplayRows(ws.cfg.Defaults.MaxDisplayRows),
				)
			}

			uc := usecase.NewAlignSequences(runner, analyze)

			alignRes, analysis, reportID, err := uc.Execute(cmd.Context(), domain.AlignRequest{
				InputPath:  inputPath,
				OutputPath: outputPath,
				Super5:     super5,
				Stratified: stratified,
				Threads:    threads,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Aligned:    %s\n", inputPath)
			fmt.Printf("Output:     %s\n", alignRes.OutputPath)
			fmt.Printf("Duration:   %s\n", alignRes.Duration)
			if alignRes.Truncated {
				fmt.Println("(aligner output capture was truncated)")
			}

			if noAnalyze {
				return nil
			}

			fmt.Println()
			return printAnalysis(os.Stdout, analysis, reportID, format)
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVarP(&input, "input", "i", "", "Unaligned FASTA input (required)")
	c.Flags().StringVarP(&output, "output", "o", "", "Aligned output path (default: alignments/<input>.afa)")
	c.Flags().BoolVar(&super5, "super5", false, "Use the large-dataset super5 algorithm")
	c.Flags().BoolVar(&stratified, "stratified", false, "Produce a stratified ensemble (.efa); ignored with --super5")
	c.Flags().IntVar(&threads, "threads", 0, "Aligner threads (default from alnscope.yaml)")
	c.Flags().BoolVar(&noAnalyze, "no-analyze", false, "Skip analysis after alignment")
	c.Flags().BoolVar(&noSave, "no-save", false, "Do not save a report artifact under reports/")
	c.Flags().StringVar(&format, "format", "pretty", "Output format for the analysis: pretty|json")

	_ = c.MarkFlagRequired("input")
	return c
}

// defaultOutputPath places the aligned file next to the workspace alignments
// dir, swapping the extension for .afa.
func defaultOutputPath(ws *workspaceCtx, inputPath string) string {
	base := filepath.Base(inputPath)
	ext := filepath.Ext(base)
	if ext != "" {
		base = strings.TrimSuffix(base, ext)
	}
	return filepath.Join(ws.root, ws.cfg.Paths.AlignmentsDir, base+".afa")
}
