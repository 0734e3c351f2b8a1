package format

// Rescaler maps prepared-image pixel coordinates back to
// original-image pixel coordinates. The preprocessing pipeline may
// downsample the input before recognition; snapshot geometry must
// refer to the image the user supplied.
type Rescaler struct {
	scaleX   float64
	scaleY   float64
	identity bool
}

// NewRescaler builds a Rescaler from the original and prepared image
// dimensions. Equal dimensions, or unknown prepared dimensions, yield
// an identity mapping.
func NewRescaler(origWidth, origHeight, prepWidth, prepHeight int) Rescaler {
	if prepWidth <= 0 || prepHeight <= 0 ||
		(origWidth == prepWidth && origHeight == prepHeight) {
		return Rescaler{identity: true}
	}
	return Rescaler{
		scaleX: float64(origWidth) / float64(prepWidth),
		scaleY: float64(origHeight) / float64(prepHeight),
	}
}

// X maps a prepared-image x coordinate to original-image pixels,
// truncating toward zero.
func (r Rescaler) X(v float64) int {
	if r.identity {
		return int(v)
	}
	return int(v * r.scaleX)
}

// Y maps a prepared-image y coordinate to original-image pixels,
// truncating toward zero.
func (r Rescaler) Y(v float64) int {
	if r.identity {
		return int(v)
	}
	return int(v * r.scaleY)
}
