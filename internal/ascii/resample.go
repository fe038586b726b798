package ascii

import (
	"fmt"
	"image"
	"sort"

	"github.com/nfnt/resize"
	"golang.org/x/image/draw"
)

// Resampler scales an image into a w×h RGBA buffer whose bounds start at
// the origin. The buffer holds alpha-premultiplied values, so transparent
// pixels read back as if composited onto black.
type Resampler interface {
	Name() string
	Resample(src image.Image, w, h int) *image.RGBA
}

type drawResampler struct {
	name   string
	scaler draw.Scaler
}

func (d drawResampler) Name() string { return d.name }

func (d drawResampler) Resample(src image.Image, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	d.scaler.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

type lanczosResampler struct{}

func (lanczosResampler) Name() string { return "lanczos" }

func (lanczosResampler) Resample(src image.Image, w, h int) *image.RGBA {
	scaled := resize.Resize(uint(w), uint(h), src, resize.Lanczos3)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), scaled, scaled.Bounds().Min, draw.Src)
	return dst
}

// Built-in resamplers.
var (
	Nearest    Resampler = drawResampler{name: "nearest", scaler: draw.NearestNeighbor}
	Bilinear   Resampler = drawResampler{name: "bilinear", scaler: draw.ApproxBiLinear}
	CatmullRom Resampler = drawResampler{name: "catmullrom", scaler: draw.CatmullRom}
	Lanczos    Resampler = lanczosResampler{}
)

var resamplers = map[string]func() Resampler{
	"nearest":    func() Resampler { return Nearest },
	"bilinear":   func() Resampler { return Bilinear },
	"catmullrom": func() Resampler { return CatmullRom },
	"lanczos":    func() Resampler { return Lanczos },
}

// GetResampler looks up a resampler by name. The empty name selects Nearest.
func GetResampler(name string) (Resampler, error) {
	if name == "" {
		return Nearest, nil
	}
	fn, ok := resamplers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownResampler, name, ResamplerNames())
	}
	return fn(), nil
}

// ResamplerNames returns the registered names in sorted order.
func ResamplerNames() []string {
	names := make([]string, 0, len(resamplers))
	for name := range resamplers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
