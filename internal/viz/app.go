package viz

import (
	"fmt"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/asciify/internal/export"
	"github.com/san-kum/asciify/internal/session"
)

// chrome is the number of terminal rows used by header, footer and status.
const chrome = 6

type Model struct {
	ctl    *session.Controller
	source string

	width, height int
	status        string
	failed        bool
}

func NewModel(ctl *session.Controller, source string) Model {
	return Model{ctl: ctl, source: source, width: 80, height: 24}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case "left", "h":
		m.ctl.AdjustWidth(-1)
	case "right", "l":
		m.ctl.AdjustWidth(1)
	case "H":
		m.ctl.AdjustWidth(-10)
	case "L":
		m.ctl.AdjustWidth(10)
	case "t":
		next, err := m.ctl.ToggleTheme()
		m.report(fmt.Sprintf("theme: %s", next), err)
	case "s":
		m.save(export.FormatText)
	case "p":
		m.save(export.FormatPNG)
	case "v":
		m.save(export.FormatSVG)
	}
	return m, nil
}

func (m *Model) save(f export.Format) {
	err := m.ctl.Export(f)
	m.report("saved "+f.Filename(), err)
}

func (m *Model) report(msg string, err error) {
	if err != nil {
		m.status, m.failed = err.Error(), true
		return
	}
	m.status, m.failed = msg, false
}

func (m Model) View() string {
	st := newStyles(m.ctl.Theme())
	var b strings.Builder

	name := filepath.Base(m.source)
	if m.source == "" {
		name = "no image"
	}
	b.WriteString(st.title.Render("ASCIIFY") + "  " + st.label.Render(name) + "\n")
	b.WriteString(st.label.Render("width ") + st.value.Render(fmt.Sprintf("%d", m.ctl.Width())) +
		st.label.Render("  rows ") + st.value.Render(fmt.Sprintf("%d", m.ctl.Art().Height())) +
		st.label.Render("  theme ") + st.value.Render(m.ctl.Theme().String()) +
		st.label.Render("  resample ") + st.value.Render(m.ctl.Resampler()) + "\n\n")

	if m.ctl.HasArt() {
		b.WriteString(st.art.Render(crop(m.ctl.Art().Lines(), m.width, m.height-chrome)))
	} else {
		b.WriteString(st.label.Render("nothing to show"))
	}
	b.WriteString("\n\n")

	hints := []struct{ key, desc string }{
		{"h/l", "width"}, {"H/L", "±10"}, {"t", "theme"},
		{"s", "txt"}, {"p", "png"}, {"v", "svg"}, {"q", "quit"},
	}
	for i, h := range hints {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(st.key.Render(h.key) + st.hint.Render(" "+h.desc))
	}

	if m.status != "" {
		b.WriteString("\n")
		if m.failed {
			b.WriteString(st.failed.Render(m.status))
		} else {
			b.WriteString(st.ok.Render(m.status))
		}
	}
	return b.String()
}

// crop trims lines to fit a w×h terminal region.
func crop(lines []string, w, h int) string {
	if h < 1 {
		h = 1
	}
	if len(lines) > h {
		lines = lines[:h]
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		if w > 0 && len(line) > w {
			line = line[:w]
		}
		out[i] = line
	}
	return strings.Join(out, "\n")
}

func Run(ctl *session.Controller, source string) error {
	_, err := tea.NewProgram(NewModel(ctl, source), tea.WithAltScreen()).Run()
	return err
}
