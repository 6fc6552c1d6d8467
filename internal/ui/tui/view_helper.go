package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/tayden1990/alnscope/internal/domain"
)

const idColWidth = 14

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

// clampWindow keeps an inclusive column window inside [0, length-1] while
// preserving its width where possible.
func clampWindow(w domain.Window, length int) domain.Window {
	if length <= 0 {
		return domain.Window{From: 0, To: 0}
	}
	width := w.To - w.From
	if width < 0 {
		width = 0
	}
	if width > length-1 {
		width = length - 1
	}

	from := w.From
	if from < 0 {
		from = 0
	}
	if from+width > length-1 {
		from = length - 1 - width
	}
	return domain.Window{From: from, To: from + width}
}

// markerLine draws one character per visible column: '*' over SNP columns,
// '=' under conserved regions, space elsewhere. SNPs win on overlap.
func markerLine(p domain.DisplayPayload, w domain.Window) string {
	if w.To < w.From {
		return ""
	}
	line := make([]byte, w.To-w.From+1)
	for i := range line {
		line[i] = ' '
	}
	for _, r := range p.Regions {
		for col := r.Start; col <= r.End; col++ {
			if col >= w.From && col <= w.To {
				line[col-w.From] = '='
			}
		}
	}
	for _, pos := range p.SNPs {
		if pos >= w.From && pos <= w.To {
			line[pos-w.From] = '*'
		}
	}
	return string(line)
}

func renderAlignmentWindow(t Theme, p domain.DisplayPayload, w domain.Window) string {
	var b strings.Builder

	if p.Err != "" {
		b.WriteString("Analysis error: ")
		b.WriteString(p.Err)
		b.WriteString("\n")
		return b.String()
	}
	if len(p.Rows) == 0 {
		return "(nothing to display: need at least 2 sequences)\n"
	}

	w = clampWindow(w, p.Length)

	b.WriteString(fmt.Sprintf("Columns %d-%d of %d\n\n", w.From+1, w.To+1, p.Length))

	pad := strings.Repeat(" ", idColWidth+2)
	b.WriteString(pad)
	b.WriteString(markerLine(p, w))
	b.WriteString("\n")

	for _, row := range p.Rows {
		id := clampString(row.ID, idColWidth)
		b.WriteString(fmt.Sprintf("%-*s  ", idColWidth, id))
		for col := w.From; col <= w.To && col < len(row.Cells); col++ {
			cell := row.Cells[col]
			b.WriteString(t.StyleFor(cell.Color).Render(string(cell.Symbol)))
		}
		b.WriteString("\n")
	}

	if p.Truncated {
		b.WriteString(fmt.Sprintf("\n(showing %d of %d sequences)\n", p.DisplayCount, p.TotalRows))
	}

	return b.String()
}

func renderSummaryTable(summary []domain.SummaryRow, snps []int) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("SNP columns: %d\n", len(snps)))
	if len(snps) > 0 {
		b.WriteString("  positions (1-based):")
		for _, p := range snps {
			b.WriteString(fmt.Sprintf(" %d", p+1))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("Conserved regions: %d\n", len(summary)))
	if len(summary) == 0 {
		return b.String()
	}

	b.WriteString(fmt.Sprintf("%-5s %-8s %-8s %-7s %s\n", "rank", "start", "end", "length", "sequence"))
	for _, row := range summary {
		b.WriteString(fmt.Sprintf("%-5d %-8d %-8d %-7d %s\n",
			row.Rank, row.Start, row.End, row.Length, clampString(row.Seq, 40)))
	}
	return b.String()
}
