package export

import (
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/san-kum/asciify/internal/ascii"
	"github.com/san-kum/asciify/internal/theme"
)

// SVG lays art out on the same grid as Render, as one text element per line.
func SVG(art ascii.Art, th theme.Theme) (string, error) {
	w, h := CanvasSize(art)
	if w <= 0 || h <= 0 {
		return "", ErrEmptyArt
	}

	p := th.Palette()
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
<g fill="%s" font-family="monospace" font-size="%d" xml:space="preserve">
`, w, h, w, h, theme.Hex(p.Background), theme.Hex(p.Foreground), FontSize))

	for i, line := range art.Lines() {
		if line == "" {
			continue
		}
		sb.WriteString(fmt.Sprintf(`<text x="0" y="%g">`, lineHeight*float64(i+1)))
		xml.EscapeText(&sb, []byte(line))
		sb.WriteString("</text>\n")
	}

	sb.WriteString("</g>\n</svg>\n")
	return sb.String(), nil
}
