package imaging

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"

	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// ColorMode tags the pixel layout of a decoded image.
type ColorMode string

const (
	ModeRGB     ColorMode = "rgb"
	ModeRGBA    ColorMode = "rgba"
	ModeGray    ColorMode = "grayscale"
	ModePalette ColorMode = "palette"
	ModeOther   ColorMode = "other"
)

// Size is a width/height pair in pixels.
type Size struct {
	Width  int
	Height int
}

// Load decodes the image at path. Unreadable or corrupt files are
// returned as errors; there is no retry.
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	return img, nil
}

// Mode reports the color mode of a decoded image.
//
// Go's decoders surface grayscale+alpha sources as *image.NRGBA, so
// such images classify as ModeRGBA here; the white-composite path of
// Normalize covers them.
func Mode(img image.Image) ColorMode {
	switch img.(type) {
	case *image.RGBA, *image.NRGBA, *image.RGBA64, *image.NRGBA64, *image.NYCbCrA:
		return ModeRGBA
	case *image.Gray, *image.Gray16:
		return ModeGray
	case *image.Paletted:
		return ModePalette
	case *image.YCbCr:
		return ModeRGB
	default:
		return ModeOther
	}
}

// Dimensions returns the pixel size of an image.
func Dimensions(img image.Image) Size {
	b := img.Bounds()
	return Size{Width: b.Dx(), Height: b.Dy()}
}
