package imaging

import (
	"image"

	"github.com/anthonynsimon/bild/effect"
	"github.com/disintegration/imaging"
)

// Sharpening parameters. These are fixed; they are tuned for text
// edges and are not exposed as user configuration.
const (
	unsharpRadius = 1.0
	unsharpAmount = 1.5 // 150%

	sharpnessFactor = 1.2
	sharpnessSigma  = 1.0
)

// Sharpen applies the two-stage sharpening pass used before OCR:
// an edge-aware unsharp mask, then a global sharpness boost.
func Sharpen(img image.Image) *image.NRGBA {
	masked := effect.UnsharpMask(img, unsharpRadius, unsharpAmount)
	return boostSharpness(masked, sharpnessFactor)
}

// boostSharpness interpolates each pixel between a blurred copy and
// the source. Factors above 1 extrapolate past the source, which
// amplifies local contrast uniformly across the image.
func boostSharpness(img image.Image, factor float64) *image.NRGBA {
	src := imaging.Clone(img)
	blurred := imaging.Blur(src, sharpnessSigma)

	out := image.NewNRGBA(src.Rect)
	for i := range src.Pix {
		s := float64(src.Pix[i])
		b := float64(blurred.Pix[i])
		out.Pix[i] = clampByte(b + (s-b)*factor)
	}
	return out
}

func clampByte(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
