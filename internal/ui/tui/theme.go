package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/tayden1990/alnscope/internal/domain"
)

type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Help     lipgloss.Style
	Card     lipgloss.Style

	nucleotide map[domain.ColorClass]lipgloss.Style
}

func DefaultTheme() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true),
		Subtitle: lipgloss.NewStyle().Faint(true),
		Help:     lipgloss.NewStyle().Faint(true),
		Card: lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")),
		nucleotide: map[domain.ColorClass]lipgloss.Style{
			domain.ColorGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
			domain.ColorBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
			domain.ColorOrange:  lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
			domain.ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("160")),
			domain.ColorGrey:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			domain.ColorUnknown: lipgloss.NewStyle().Foreground(lipgloss.Color("129")),
		},
	}
}

// StyleFor returns the terminal style for one symbol color. Unmapped colors
// render unstyled rather than failing.
func (t Theme) StyleFor(c domain.ColorClass) lipgloss.Style {
	if s, ok := t.nucleotide[c]; ok {
		return s
	}
	return lipgloss.NewStyle()
}
