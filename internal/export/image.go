package export

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/san-kum/asciify/internal/ascii"
	"github.com/san-kum/asciify/internal/theme"
)

// Glyph metrics. Advance and line height approximate a monospace cell and
// must stay in sync with the SVG layout.
const (
	FontSize         = 10
	AdvanceFactor    = 0.6
	LineHeightFactor = 1.2
)

var (
	monoOnce sync.Once
	monoFont *opentype.Font
	monoErr  error
)

func mono() (*opentype.Font, error) {
	monoOnce.Do(func() {
		monoFont, monoErr = opentype.Parse(gomono.TTF)
	})
	return monoFont, monoErr
}

// advance is the cell width and lineHeight the distance between
// consecutive baselines, both in pixels.
const (
	advance    = FontSize * AdvanceFactor
	lineHeight = FontSize * LineHeightFactor
)

// CanvasSize returns the pixel size of the rendered art.
func CanvasSize(art ascii.Art) (w, h int) {
	w = int(float64(art.Width()) * advance)
	h = int(float64(len(art.Lines())) * lineHeight)
	return w, h
}

// Render draws art onto a canvas filled with the theme background. Line i
// has its baseline at lineHeight*(i+1).
func Render(art ascii.Art, th theme.Theme) (*image.RGBA, error) {
	w, h := CanvasSize(art)
	if w <= 0 || h <= 0 {
		return nil, ErrEmptyArt
	}

	f, err := mono()
	if err != nil {
		return nil, fmt.Errorf("export: load font: %w", err)
	}
	// faces cache glyphs internally, so each render gets its own
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    FontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("export: load font: %w", err)
	}
	defer face.Close()

	p := th.Palette()
	canvas := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(p.Background), image.Point{}, draw.Src)

	d := font.Drawer{
		Dst:  canvas,
		Src:  image.NewUniform(p.Foreground),
		Face: face,
	}
	for i, line := range art.Lines() {
		d.Dot = fixed.Point26_6{X: 0, Y: fixed.Int26_6(lineHeight * float64(i+1) * 64)}
		d.DrawString(line)
	}
	return canvas, nil
}

// PNG renders art and encodes it.
func PNG(art ascii.Art, th theme.Theme) ([]byte, error) {
	img, err := Render(art, th)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
