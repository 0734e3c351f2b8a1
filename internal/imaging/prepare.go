package imaging

import (
	"fmt"
	"os"

	"github.com/disintegration/imaging"
)

// JPEG quality for the prepared temp file. High quality preserves
// text clarity for the recognizer.
const preparedJPEGQuality = 95

// PreparedImage describes the preprocessed temporary file handed to
// the OCR engine, along with the sizes needed to rescale recognition
// geometry back to original-image coordinates.
type PreparedImage struct {
	// Path is the temporary JPEG on disk. The caller owns it and
	// removes it with Cleanup after inference.
	Path string

	// OriginalSize is the pixel size of the source image.
	OriginalSize Size

	// PreparedSize is the pixel size after downsampling.
	PreparedSize Size
}

// Prepare loads the image at path and runs the full preprocessing
// pipeline: normalize to opaque RGB, downsample to maxSide, sharpen,
// then save as a uniquely named temporary JPEG.
func Prepare(path string, maxSide int) (*PreparedImage, error) {
	img, err := Load(path)
	if err != nil {
		return nil, err
	}

	rgb := Normalize(img)
	scaled := Downsample(rgb, maxSide)
	sharpened := Sharpen(scaled)

	tmp, err := os.CreateTemp("", "preprocessed-*.jpg")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	if err := imaging.Encode(tmp, sharpened, imaging.JPEG, imaging.JPEGQuality(preparedJPEGQuality)); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return nil, fmt.Errorf("failed to encode preprocessed image: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return nil, fmt.Errorf("failed to write preprocessed image: %w", err)
	}

	return &PreparedImage{
		Path:         tmp.Name(),
		OriginalSize: Dimensions(img),
		PreparedSize: Dimensions(sharpened),
	}, nil
}

// Cleanup removes the prepared temporary file. Removal failures are
// swallowed; cleanup never surfaces an error to the request.
func (p *PreparedImage) Cleanup() {
	if p == nil || p.Path == "" {
		return
	}
	os.Remove(p.Path)
}
