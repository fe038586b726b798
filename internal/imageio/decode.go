// Package imageio decodes image bytes into pixel buffers.
package imageio

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

var (
	// ErrDecode indicates the bytes are not an image in a registered format.
	ErrDecode = errors.New("imageio: cannot decode image")

	// ErrEmptyImage indicates a decoded image with no pixels.
	ErrEmptyImage = errors.New("imageio: image has zero width or height")
)

// Decoder turns encoded bytes into an image.
type Decoder interface {
	Decode(data []byte) (image.Image, error)
}

// Std decodes png, jpeg, gif, bmp and webp.
type Std struct{}

// Decode implements Decoder.
func (Std) Decode(data []byte) (image.Image, error) {
	img, _, err := decode(data)
	return img, err
}

// Format returns the registered format name of data without decoding pixels.
func Format(data []byte) (string, error) {
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return format, nil
}

// DecodeFile reads and decodes the image at path.
func DecodeFile(path string) (image.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	img, _, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}

func decode(data []byte) (image.Image, string, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if b := img.Bounds(); b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, format, ErrEmptyImage
	}
	return img, format, nil
}
