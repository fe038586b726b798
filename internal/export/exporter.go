package export

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/san-kum/asciify/internal/ascii"
	"github.com/san-kum/asciify/internal/theme"
)

// Exporter encodes art and hands the bytes to a FileWriter. Each call is a
// single write with no retry.
type Exporter struct {
	w   FileWriter
	log *log.Logger
}

// New returns an exporter. A nil logger discards output.
func New(w FileWriter, logger *log.Logger) *Exporter {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Exporter{w: w, log: logger}
}

// Text writes ascii.txt.
func (e *Exporter) Text(art ascii.Art) error {
	if art.Empty() {
		return ErrEmptyArt
	}
	return e.write(FormatText, Text(art))
}

// Image writes ascii.png.
func (e *Exporter) Image(art ascii.Art, th theme.Theme) error {
	if art.Empty() {
		return ErrEmptyArt
	}
	data, err := PNG(art, th)
	if err != nil {
		return err
	}
	return e.write(FormatPNG, data)
}

// ImageNamed is Image for callers that hold the theme as a string. An empty
// name skips the export without an error.
func (e *Exporter) ImageNamed(art ascii.Art, name string) error {
	if name == "" {
		e.log.Debug("png export skipped", "reason", "no theme")
		return nil
	}
	th, err := theme.Parse(name)
	if err != nil {
		return err
	}
	return e.Image(art, th)
}

// SVG writes ascii.svg.
func (e *Exporter) SVG(art ascii.Art, th theme.Theme) error {
	if art.Empty() {
		return ErrEmptyArt
	}
	doc, err := SVG(art, th)
	if err != nil {
		return err
	}
	return e.write(FormatSVG, []byte(doc))
}

// Export dispatches on f.
func (e *Exporter) Export(art ascii.Art, th theme.Theme, f Format) error {
	switch f {
	case FormatText:
		return e.Text(art)
	case FormatPNG:
		return e.Image(art, th)
	case FormatSVG:
		return e.SVG(art, th)
	}
	return fmt.Errorf("%w: %s", ErrUnknownFormat, f)
}

func (e *Exporter) write(f Format, data []byte) error {
	if err := e.w.WriteFile(f.Filename(), data); err != nil {
		e.log.Error("export failed", "file", f.Filename(), "err", err)
		return fmt.Errorf("export %s: %w", f.Filename(), err)
	}
	e.log.Info("exported", "file", f.Filename(), "mime", f.MIME(), "bytes", len(data))
	return nil
}
