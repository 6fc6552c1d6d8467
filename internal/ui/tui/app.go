package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tayden1990/alnscope/internal/domain"
)

type screen int

const (
	screenHome screen = iota
	screenAlignments
	screenViewer
	screenSummary
)

const panStep = 20

type menuItem struct {
	title string
	desc  string
}

func (m menuItem) Title() string       { return m.title }
func (m menuItem) Description() string { return m.desc }
func (m menuItem) FilterValue() string { return m.title }

type alignmentItem struct {
	ref domain.AlignmentRef
}

func (a alignmentItem) Title() string       { return a.ref.Name }
func (a alignmentItem) Description() string { return a.ref.Path }
func (a alignmentItem) FilterValue() string { return a.ref.Name }

type model struct {
	theme Theme
	deps  Deps

	scr        screen
	menu       list.Model
	alignments list.Model

	workspaceFound bool
	workspaceRoot  string

	running bool
	toast   string

	analysis domain.AnalysisResult
	reportID string
	window   domain.Window

	analysisCh chan analysisDoneMsg
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, deps.Logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	t := DefaultTheme()

	items := []list.Item{
		menuItem{"Alignments", "Browse and analyze aligned FASTA files"},
		menuItem{"Init Workspace", "Create alnscope.yaml and workspace dirs here"},
		menuItem{"Quit", "Exit alnscope"},
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "alnscope"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	al := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	al.Title = "Alignments"
	al.SetShowStatusBar(false)
	al.SetFilteringEnabled(true)
	al.SetShowHelp(false)

	return model{
		theme:      t,
		deps:       deps,
		scr:        screenHome,
		menu:       l,
		alignments: al,
	}
}

func (m model) Init() tea.Cmd {
	return cmdRefreshWorkspace(m.deps)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w, h := msg.Width, msg.Height
		m.menu.SetSize(w-4, h-10)
		m.alignments.SetSize(w-4, h-10)
		return m, nil

	case workspaceRefreshedMsg:
		m.workspaceFound = msg.found
		m.workspaceRoot = msg.root
		if msg.err != nil && msg.found {
			m.toast = userMessage(msg.err)
		}
		return m, nil

	case initWorkspaceDoneMsg:
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			return m, nil
		}
		m.toast = "Workspace initialized"
		return m, cmdRefreshWorkspace(m.deps)

	case alignmentsLoadedMsg:
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			return m, nil
		}
		items := make([]list.Item, 0, len(msg.refs))
		for _, r := range msg.refs {
			items = append(items, alignmentItem{ref: r})
		}
		m.alignments.SetItems(items)
		m.scr = screenAlignments
		return m, nil

	case analysisDoneMsg:
		m.running = false
		m.analysisCh = nil
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			return m, nil
		}
		m.analysis = msg.result
		m.reportID = msg.id
		m.window = msg.result.Display.DefaultWindow
		m.toast = ""
		m.scr = screenViewer
		return m, nil

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	return m.updateLists(msg)
}

func (m model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "ctrl+c":
		return m, tea.Quit

	case "q":
		if m.scr == screenHome {
			return m, tea.Quit
		}
		m.scr = screenHome
		m.toast = ""
		return m, nil

	case "esc", "b":
		switch m.scr {
		case screenSummary:
			m.scr = screenViewer
		case screenViewer:
			m.scr = screenAlignments
		case screenAlignments:
			m.scr = screenHome
		}
		return m, nil
	}

	switch m.scr {
	case screenHome:
		if key == "enter" {
			it, ok := m.menu.SelectedItem().(menuItem)
			if !ok {
				return m, nil
			}
			switch {
			case strings.EqualFold(it.title, "Quit"):
				return m, tea.Quit
			case strings.EqualFold(it.title, "Alignments"):
				if !m.workspaceFound {
					m.toast = "No workspace found (use Init Workspace)"
					return m, nil
				}
				return m, cmdLoadAlignments(m.workspaceRoot)
			case strings.EqualFold(it.title, "Init Workspace"):
				root := m.workspaceRoot
				if root == "" {
					root = "."
				}
				return m, cmdInitWorkspaceHere(m.deps, root)
			}
		}

	case screenAlignments:
		if key == "enter" && !m.running {
			it, ok := m.alignments.SelectedItem().(alignmentItem)
			if !ok {
				return m, nil
			}
			m.running = true
			m.toast = "Analyzing " + it.ref.Name + "..."

			ch, cmd := startAnalysisAsync(m.workspaceRoot, it.ref.Path, m.deps.Logger, m.deps.Debug)
			m.analysisCh = ch
			return m, cmd
		}

	case screenViewer:
		switch key {
		case "left", "h":
			m.window = panWindow(m.window, -panStep, m.analysis.Display.Length)
			return m, nil
		case "right", "l":
			m.window = panWindow(m.window, panStep, m.analysis.Display.Length)
			return m, nil
		case "z":
			m.window = m.analysis.Display.FullWindow
			return m, nil
		case "r":
			m.window = m.analysis.Display.DefaultWindow
			return m, nil
		case "tab", "s":
			m.scr = screenSummary
			return m, nil
		}

	case screenSummary:
		if key == "tab" || key == "s" {
			m.scr = screenViewer
			return m, nil
		}
	}

	return m.updateLists(msg)
}

func (m model) updateLists(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.scr {
	case screenHome:
		m.menu, cmd = m.menu.Update(msg)
	case screenAlignments:
		m.alignments, cmd = m.alignments.Update(msg)
	}
	return m, cmd
}

func panWindow(w domain.Window, delta, length int) domain.Window {
	return clampWindow(domain.Window{From: w.From + delta, To: w.To + delta}, length)
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("alnscope") + "\n" +
		m.theme.Subtitle.Render("Multiple-alignment viewer: SNP columns and conserved regions") + "\n"

	var workspaceBanner string
	if m.workspaceFound {
		workspaceBanner = m.theme.Help.Render(fmt.Sprintf("Workspace: %s", m.workspaceRoot))
	} else {
		workspaceBanner = m.theme.Card.Render(
			"No workspace found.\n\nSelect Init Workspace to create one here.",
		)
	}

	var toast string
	if m.toast != "" {
		toast = "\n" + m.theme.Help.Render(m.toast)
	}

	switch m.scr {
	case screenHome:
		help := m.theme.Help.Render("up/down navigate, enter open, / search, q quit")
		return wrap.Render(header + "\n" + workspaceBanner + toast + "\n\n" + m.theme.Card.Render(m.menu.View()) + "\n" + help)

	case screenAlignments:
		help := m.theme.Help.Render("enter analyze, esc back, q home")
		return wrap.Render(header + "\n" + workspaceBanner + toast + "\n\n" + m.theme.Card.Render(m.alignments.View()) + "\n" + help)

	case screenViewer:
		body := renderAlignmentWindow(m.theme, m.analysis.Display, m.window)
		var meta string
		if m.reportID != "" {
			meta = m.theme.Help.Render("Report: "+m.reportID) + "\n"
		}
		help := m.theme.Help.Render("left/right pan, z full, r reset, tab summary, esc back")
		return wrap.Render(header + "\n" + meta + m.theme.Card.Render(body) + toast + "\n" + help)

	case screenSummary:
		body := renderSummaryTable(m.analysis.Report.Summary, m.analysis.Report.SNPPositions)
		help := m.theme.Help.Render("tab viewer, esc back")
		return wrap.Render(header + "\n" + m.theme.Card.Render(body) + toast + "\n" + help)

	default:
		return wrap.Render(header + "\n" + "unknown state")
	}
}
