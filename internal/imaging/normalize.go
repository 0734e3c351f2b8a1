package imaging

import (
	"image"
	"image/draw"

	"github.com/disintegration/imaging"
)

// Normalize converts an image of any color mode to opaque RGB.
//
// Alpha-bearing images are composited onto an opaque white canvas
// using their alpha channel as the blend mask. Palette images with a
// transparent entry are expanded and composited the same way; palette
// images without transparency, grayscale images, and any other
// non-RGB mode convert directly. Already-RGB images pass through with
// their pixels unchanged.
//
// The result is always an *image.NRGBA with every alpha sample at
// 255, anchored at the origin.
func Normalize(img image.Image) *image.NRGBA {
	switch m := img.(type) {
	case *image.Paletted:
		if paletteHasTransparency(m) {
			return compositeOnWhite(m)
		}
		return imaging.Clone(img)
	}

	switch Mode(img) {
	case ModeRGBA:
		return compositeOnWhite(img)
	default:
		// ModeRGB passes through; grayscale and other modes are a
		// direct conversion. Clone yields NRGBA in both cases.
		return imaging.Clone(img)
	}
}

// compositeOnWhite flattens img onto an opaque white canvas, using the
// source alpha channel as the blend mask. Fully opaque sources come
// back pixel-identical.
func compositeOnWhite(img image.Image) *image.NRGBA {
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Over)
	return dst
}

// paletteHasTransparency reports whether any palette entry carries a
// non-opaque alpha value (the decoder's representation of a declared
// transparency key).
func paletteHasTransparency(img *image.Paletted) bool {
	for _, c := range img.Palette {
		if _, _, _, a := c.RGBA(); a < 0xffff {
			return true
		}
	}
	return false
}
