package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/z64/shark-report/internal/domain"
	"github.com/z64/shark-report/internal/usecase/tolerance"
)

type screen int

const (
	screenCycles screen = iota
	screenFeatures
)

type cycleItem struct {
	cycle domain.Cycle
	bad   int
}

func (c cycleItem) Title() string { return fmt.Sprintf("Cycle %d", c.cycle.Number) }
func (c cycleItem) Description() string {
	return fmt.Sprintf("%d features • %d out of tolerance", len(c.cycle.Features), c.bad)
}
func (c cycleItem) FilterValue() string { return c.Title() }

type featureItem struct {
	feature domain.Feature
}

func (f featureItem) Title() string {
	if f.feature.InTolerance() {
		return "✓ " + f.feature.Name
	}
	return "✗ " + f.feature.Name
}
func (f featureItem) Description() string { return featureLine(f.feature) }
func (f featureItem) FilterValue() string { return f.feature.Name }

type model struct {
	theme Theme
	deps  Deps

	scr      screen
	cycles   list.Model
	features list.Model
	active   int

	report  domain.Report
	summary domain.ToleranceSummary
	toast   string

	width  int
	height int
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, deps.Logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	cycles := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	cycles.Title = "Cycles"
	cycles.SetShowStatusBar(false)
	cycles.SetFilteringEnabled(true)
	cycles.SetShowHelp(false)

	features := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	features.SetShowStatusBar(false)
	features.SetFilteringEnabled(true)
	features.SetShowHelp(false)

	m := model{
		theme:    DefaultTheme(),
		deps:     deps,
		scr:      screenCycles,
		cycles:   cycles,
		features: features,
	}
	m.setReport(deps.Report)
	return m
}

func (m *model) setReport(r domain.Report) {
	m.report = r
	m.summary = tolerance.Summarize(r)

	items := make([]list.Item, 0, len(r.Cycles))
	for _, c := range r.Cycles {
		bad := 0
		for _, f := range c.Features {
			if !f.InTolerance() {
				bad++
			}
		}
		items = append(items, cycleItem{cycle: c, bad: bad})
	}
	m.cycles.SetItems(items)
	m.cycles.Select(0)
	m.scr = screenCycles
}

// openCycle shows the features of the cycle numbered number. The cycle list may
// be filtered, so cycles are addressed by number rather than list position.
func (m *model) openCycle(number int) {
	idx := -1
	for i := range m.report.Cycles {
		if m.report.Cycles[i].Number == number {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	c := m.report.Cycles[idx]

	items := make([]list.Item, 0, len(c.Features))
	for _, f := range c.Features {
		items = append(items, featureItem{feature: f})
	}
	m.features.Title = fmt.Sprintf("Cycle %d", c.Number)
	m.features.SetItems(items)
	m.features.ResetFilter()
	m.features.Select(0)
	m.active = idx
	m.scr = screenFeatures
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.cycles.SetSize(msg.Width-4, msg.Height-10)
		m.features.SetSize(msg.Width-4, msg.Height-16)
		return m, nil

	case reportLoadedMsg:
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			return m, nil
		}
		m.setReport(msg.report)
		m.toast = "Reloaded " + msg.source
		return m, nil

	case tea.KeyMsg:
		if m.filtering() {
			break
		}

		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.scr == screenCycles {
				return m, tea.Quit
			}
			m.scr = screenCycles
			return m, nil

		case "esc", "b":
			if m.scr == screenFeatures {
				m.scr = screenCycles
				return m, nil
			}

		case "enter":
			if m.scr == screenCycles {
				if it, ok := m.cycles.SelectedItem().(cycleItem); ok {
					m.toast = ""
					m.openCycle(it.cycle.Number)
				}
				return m, nil
			}

		case "r":
			if m.deps.Loader == nil {
				m.toast = "Reload is not available"
				return m, nil
			}
			return m, cmdReloadReport(m.deps)
		}
	}

	var cmd tea.Cmd
	if m.scr == screenCycles {
		m.cycles, cmd = m.cycles.Update(msg)
	} else {
		m.features, cmd = m.features.Update(msg)
	}
	return m, cmd
}

func (m model) filtering() bool {
	if m.scr == screenCycles {
		return m.cycles.FilterState() == list.Filtering
	}
	return m.features.FilterState() == list.Filtering
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("shark-report") + "\n" +
		m.theme.Subtitle.Render(m.deps.Source) + "\n" +
		m.theme.Help.Render(summaryLine(m.summary)) + "\n"

	var toast string
	if m.toast != "" {
		toast = "\n" + m.theme.Toast.Render(m.toast) + "\n"
	}

	switch m.scr {
	case screenCycles:
		if len(m.report.Cycles) == 0 {
			card := m.theme.Card.Render("No measurement lines found in this report.")
			return wrap.Render(header + toast + "\n" + card + "\n" + m.theme.Help.Render("r reload • q quit"))
		}
		help := m.theme.Help.Render("↑/↓ navigate • enter open • / search • r reload • q quit")
		return wrap.Render(header + toast + "\n" + m.theme.Card.Render(m.cycles.View()) + "\n" + help)

	case screenFeatures:
		details := ""
		if it, ok := m.features.SelectedItem().(featureItem); ok {
			details = renderFeatureDetails(m.theme, it.feature, m.width-8)
		}
		help := m.theme.Help.Render("↑/↓ navigate • / search • esc/b back • q cycles")
		return wrap.Render(header + toast + "\n" + m.theme.Card.Render(m.features.View()) + "\n" +
			m.theme.Card.Render(details) + "\n" + help)

	default:
		return wrap.Render(header + "\n" + "unknown state")
	}
}
