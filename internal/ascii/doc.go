// Package ascii converts raster images into monochrome ASCII art.
//
// The conversion is a two stage pipeline:
//
//   - [Rasterize]: downsample an image to a luminance [Grid] whose width is
//     the requested column count and whose height is compressed by
//     [CellAspect] to compensate for tall monospace cells
//   - [Quantize]: map every luminance value onto the fixed [Ramp] and join
//     the rows into an [Art] block
//
// # Example
//
//	img, _ := imageio.DecodeFile("cat.png")
//	art := ascii.Convert(img, 100)
//	fmt.Println(art)
//
// Both stages are pure functions: the same image and width always produce
// the same Art.
package ascii
