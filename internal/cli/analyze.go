package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/tayden1990/alnscope/internal/domain"
	"github.com/tayden1990/alnscope/internal/usecase"
)

func analyzeCmd() *cobra.Command {
	var workspace string
	var file string
	var maxRows int
	var workers int
	var noSave bool
	var format string

	c := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze an aligned FASTA: SNP columns and conserved regions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			path, err := resolveAlignmentPath(ws, file)
			if err != nil {
				return err
			}

			var store = ws.store
			if noSave {
				store = nil
			}

			opts := []usecase.AnalyzeOption{usecase.WithWorkers(workers)}
			if maxRows > 0 {
				opts = append(opts, usecase.WithMaxDisplayRows(maxRows))
			} else if ws.cfg.Defaults.MaxDisplayRows > 0 {
				opts = append(opts, usecase.WithMaxDisplayRows(ws.cfg.Defaults.MaxDisplayRows))
			}

			uc := usecase.NewAnalyzeAlignment(ws.alignments, store, opts...)

			result, reportID, err := uc.Execute(cmd.Context(), path)
			if err != nil {
				// A save failure still carries a usable result; print what we have.
				_ = printAnalysis(os.Stdout, result, reportID, format)
				return err
			}

			return printAnalysis(os.Stdout, result, reportID, format)
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVarP(&file, "file", "f", "", "Alignment name or path (required)")
	c.Flags().IntVar(&maxRows, "max-rows", 0, "Max sequences in the display payload (default from alnscope.yaml)")
	c.Flags().IntVar(&workers, "workers", 0, "Column classification parallelism (0 = all CPUs)")
	c.Flags().BoolVar(&noSave, "no-save", false, "Do not save a report artifact under reports/")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")

	_ = c.MarkFlagRequired("file")
	return c
}

func printAnalysis(w io.Writer, result domain.AnalysisResult, reportID string, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		// Include reportID as a wrapper to avoid changing the domain model.
		payload := map[string]any{
			"report_id": reportID,
			"report":    result.Report,
		}
		return enc.Encode(payload)
	case "pretty", "":
		printPrettyAnalysis(w, result, reportID)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func printPrettyAnalysis(w io.Writer, result domain.AnalysisResult, reportID string) {
	r := result.Report
	total := durationOrZero(r.StartedAt, r.FinishedAt)

	fmt.Fprintf(w, "Alignment:  %s\n", r.AlignmentPath)
	fmt.Fprintf(w, "Sequences:  %d\n", r.SequenceCount)
	fmt.Fprintf(w, "Length:     %d\n", r.AlignmentLength)
	fmt.Fprintf(w, "Duration:   %s\n", total)
	if reportID != "" {
		fmt.Fprintf(w, "Report ID:  %s\n", reportID)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "SNP columns: %d\n", len(r.SNPPositions))
	if len(r.SNPPositions) > 0 {
		fmt.Fprintf(w, "  positions (1-based):")
		for _, p := range r.SNPPositions {
			fmt.Fprintf(w, " %d", p+1)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Conserved regions: %d\n", len(r.Summary))
	if len(r.Summary) > 0 {
		fmt.Fprintf(w, "  %-5s %-8s %-8s %-7s %s\n", "rank", "start", "end", "length", "sequence")
		for _, row := range r.Summary {
			fmt.Fprintf(w, "  %-5d %-8d %-8d %-7d %s\n", row.Rank, row.Start, row.End, row.Length, clipSeq(row.Seq, 48))
		}
	}

	d := result.Display
	if d.Truncated {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Display shows %d of %d sequences.\n", d.DisplayCount, d.TotalRows)
	}
}

func clipSeq(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

// durationOrZero guards against half-filled timestamps in older artifacts.
func durationOrZero(start, end time.Time) time.Duration {
	if start.IsZero() || end.IsZero() {
		return 0
	}
	return end.Sub(start)
}
