package imaging

import (
	"image"

	"github.com/disintegration/imaging"
)

// DefaultMaxSide is the preprocessing bound used by the MCP pipeline.
// The CLI's --max-size flag is a separate knob that feeds the engine's
// own detection limit, not this value.
const DefaultMaxSide = 1920

// Downsample constrains the longer image dimension to maxSide,
// preserving aspect ratio. The driving dimension is set exactly to
// maxSide; the other dimension is the truncated scaled value. Images
// already within bounds are returned unchanged. Resampling uses a
// Lanczos filter to preserve text quality.
func Downsample(img image.Image, maxSide int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxSide <= 0 || (w <= maxSide && h <= maxSide) {
		return img
	}

	var nw, nh int
	if w > h {
		nw = maxSide
		nh = int(float64(h) * float64(maxSide) / float64(w))
	} else {
		nh = maxSide
		nw = int(float64(w) * float64(maxSide) / float64(h))
	}
	// Extreme aspect ratios truncate to zero; keep one row/column so
	// the resampler has something to work with.
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}

	return imaging.Resize(img, nw, nh, imaging.Lanczos)
}
