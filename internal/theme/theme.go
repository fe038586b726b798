// Package theme holds the dark/light color schemes used by exports and the
// terminal viewer, and the persisted choice between them.
package theme

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ErrUnknownTheme indicates a theme name other than dark or light.
var ErrUnknownTheme = errors.New("theme: unknown theme")

// Theme selects export and viewer colors. The zero value is Dark.
type Theme uint8

const (
	Dark Theme = iota
	Light
)

// Default is used when nothing has been persisted yet.
const Default = Dark

// Palette defines the colors for one theme
type Palette struct {
	Name       string
	Background color.RGBA
	Foreground color.RGBA

	// terminal viewer chrome
	Accent lipgloss.Color
	Muted  lipgloss.Color
	Error  lipgloss.Color
}

var (
	PaletteDark = Palette{
		Name:       "dark",
		Background: color.RGBA{R: 0x1d, G: 0x23, B: 0x2a, A: 0xff}, // #1d232a
		Foreground: color.RGBA{R: 0xec, G: 0xf9, B: 0xff, A: 0xff}, // #ecf9ff
		Accent:     lipgloss.Color("#00cccc"),
		Muted:      lipgloss.Color("#666688"),
		Error:      lipgloss.Color("#ff4444"),
	}

	PaletteLight = Palette{
		Name:       "light",
		Background: color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, // #ffffff
		Foreground: color.RGBA{R: 0x18, G: 0x18, B: 0x1b, A: 0xff}, // #18181b
		Accent:     lipgloss.Color("#0077be"),
		Muted:      lipgloss.Color("#888899"),
		Error:      lipgloss.Color("#cc0000"),
	}
)

func (t Theme) String() string {
	return t.Palette().Name
}

// Palette returns the colors for t. Anything that is not Dark renders light.
func (t Theme) Palette() Palette {
	if t == Dark {
		return PaletteDark
	}
	return PaletteLight
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// Parse accepts "dark" and "light" as well as the "theme-" prefixed names
// older versions stored.
func Parse(s string) (Theme, error) {
	switch strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "theme-") {
	case "dark":
		return Dark, nil
	case "light":
		return Light, nil
	}
	return Default, fmt.Errorf("%w: %q (available: %v)", ErrUnknownTheme, s, Names())
}

// Names returns the theme names.
func Names() []string {
	return []string{Dark.String(), Light.String()}
}

// Hex formats c as #rrggbb.
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Lip converts c to a lipgloss color.
func Lip(c color.RGBA) lipgloss.Color {
	return lipgloss.Color(Hex(c))
}
