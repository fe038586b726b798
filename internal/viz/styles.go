package viz

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/asciify/internal/theme"
)

type styles struct {
	title  lipgloss.Style
	label  lipgloss.Style
	value  lipgloss.Style
	key    lipgloss.Style
	hint   lipgloss.Style
	art    lipgloss.Style
	ok     lipgloss.Style
	failed lipgloss.Style
}

func newStyles(t theme.Theme) styles {
	p := t.Palette()
	return styles{
		title:  lipgloss.NewStyle().Foreground(p.Accent).Bold(true),
		label:  lipgloss.NewStyle().Foreground(p.Muted),
		value:  lipgloss.NewStyle().Foreground(theme.Lip(p.Foreground)).Bold(true),
		key:    lipgloss.NewStyle().Foreground(p.Accent).Bold(true),
		hint:   lipgloss.NewStyle().Foreground(p.Muted),
		art:    lipgloss.NewStyle().Foreground(theme.Lip(p.Foreground)).Background(theme.Lip(p.Background)),
		ok:     lipgloss.NewStyle().Foreground(p.Accent),
		failed: lipgloss.NewStyle().Foreground(p.Error).Bold(true),
	}
}
