// Package session holds the state of one interactive conversion: the source
// image, the chosen width, the resulting art and the active theme.
package session

import (
	"errors"
	"image"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/san-kum/asciify/internal/ascii"
	"github.com/san-kum/asciify/internal/config"
	"github.com/san-kum/asciify/internal/export"
	"github.com/san-kum/asciify/internal/imageio"
	"github.com/san-kum/asciify/internal/theme"
)

// ErrNothingToExport indicates an export before any art was produced.
var ErrNothingToExport = errors.New("session: no art to export")

// Options configures a Controller. Zero fields take defaults.
type Options struct {
	Width     int
	Resampler ascii.Resampler
	Decoder   imageio.Decoder
	Themes    *theme.Manager
	Writer    export.FileWriter
	Logger    *log.Logger
}

// Controller owns all conversion state. Every change recomputes the art
// from scratch and replaces it.
type Controller struct {
	width    int
	rs       ascii.Resampler
	dec      imageio.Decoder
	themes   *theme.Manager
	exporter *export.Exporter
	log      *log.Logger

	img image.Image
	art ascii.Art
}

func New(opts Options) (*Controller, error) {
	if opts.Width == 0 {
		opts.Width = config.DefaultWidth
	}
	if err := config.CheckWidth(opts.Width); err != nil {
		return nil, err
	}
	if opts.Resampler == nil {
		opts.Resampler = ascii.Nearest
	}
	if opts.Decoder == nil {
		opts.Decoder = imageio.Std{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Themes == nil {
		m, err := theme.NewManager(nil)
		if err != nil {
			return nil, err
		}
		opts.Themes = m
	}
	if opts.Writer == nil {
		opts.Writer = export.DirWriter{Dir: config.DefaultOutput}
	}

	return &Controller{
		width:    opts.Width,
		rs:       opts.Resampler,
		dec:      opts.Decoder,
		themes:   opts.Themes,
		exporter: export.New(opts.Writer, opts.Logger),
		log:      opts.Logger,
	}, nil
}

// Load decodes data and converts it at the current width. On failure the
// previous image and art are kept.
func (c *Controller) Load(data []byte) error {
	img, err := c.dec.Decode(data)
	if err != nil {
		c.log.Warn("decode failed", "err", err)
		return err
	}
	c.SetImage(img)
	return nil
}

// LoadFile is Load on the contents of path.
func (c *Controller) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return c.Load(data)
}

// SetImage replaces the source image and recomputes the art.
func (c *Controller) SetImage(img image.Image) {
	c.img = img
	c.recompute()
}

// SetWidth changes the output width and recomputes the art.
func (c *Controller) SetWidth(w int) error {
	if err := config.CheckWidth(w); err != nil {
		return err
	}
	if w == c.width {
		return nil
	}
	c.width = w
	c.recompute()
	return nil
}

// AdjustWidth moves the width by delta, clamped to the accepted range.
func (c *Controller) AdjustWidth(delta int) {
	w := c.width + delta
	if w < config.MinWidth {
		w = config.MinWidth
	}
	if w > config.MaxWidth {
		w = config.MaxWidth
	}
	_ = c.SetWidth(w)
}

func (c *Controller) recompute() {
	if c.img == nil {
		c.art = ""
		return
	}
	c.art = ascii.ConvertWith(c.img, c.width, c.rs)
	c.log.Debug("converted", "width", c.width, "rows", c.art.Height(), "resample", c.rs.Name())
}

func (c *Controller) Width() int         { return c.width }
func (c *Controller) Art() ascii.Art     { return c.art }
func (c *Controller) HasArt() bool       { return !c.art.Empty() }
func (c *Controller) Image() image.Image { return c.img }
func (c *Controller) Theme() theme.Theme { return c.themes.Current() }
func (c *Controller) Resampler() string  { return c.rs.Name() }

// SetTheme switches and persists the theme. The art is unaffected.
func (c *Controller) SetTheme(t theme.Theme) error {
	return c.themes.Set(t)
}

// ToggleTheme flips and persists the theme.
func (c *Controller) ToggleTheme() (theme.Theme, error) {
	return c.themes.Toggle()
}

func (c *Controller) ExportText() error {
	return c.Export(export.FormatText)
}

func (c *Controller) ExportImage() error {
	return c.Export(export.FormatPNG)
}

func (c *Controller) ExportSVG() error {
	return c.Export(export.FormatSVG)
}

// Export writes the current art in format f using the active theme.
func (c *Controller) Export(f export.Format) error {
	if !c.HasArt() {
		return ErrNothingToExport
	}
	return c.exporter.Export(c.art, c.Theme(), f)
}
