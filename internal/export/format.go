package export

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyArt indicates an export of art with no characters.
	ErrEmptyArt = errors.New("export: nothing to export")

	// ErrUnknownFormat indicates a format name other than txt, png or svg.
	ErrUnknownFormat = errors.New("export: unknown format")
)

const (
	TextFilename  = "ascii.txt"
	ImageFilename = "ascii.png"
	SVGFilename   = "ascii.svg"

	TextMIME  = "text/plain; charset=utf-8"
	ImageMIME = "image/png"
	SVGMIME   = "image/svg+xml"
)

// Format identifies an export artifact.
type Format uint8

const (
	FormatText Format = iota
	FormatPNG
	FormatSVG
)

func (f Format) String() string {
	switch f {
	case FormatText:
		return "txt"
	case FormatPNG:
		return "png"
	case FormatSVG:
		return "svg"
	}
	return fmt.Sprintf("format(%d)", uint8(f))
}

// Filename returns the fixed file name of the artifact.
func (f Format) Filename() string {
	switch f {
	case FormatPNG:
		return ImageFilename
	case FormatSVG:
		return SVGFilename
	}
	return TextFilename
}

// MIME returns the media type of the artifact.
func (f Format) MIME() string {
	switch f {
	case FormatPNG:
		return ImageMIME
	case FormatSVG:
		return SVGMIME
	}
	return TextMIME
}

// ParseFormat accepts txt, text, png and svg.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "txt", "text":
		return FormatText, nil
	case "png":
		return FormatPNG, nil
	case "svg":
		return FormatSVG, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}
