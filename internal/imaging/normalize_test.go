package imaging

import (
	"image"
	"image/color"
	"testing"
)

// assertOpaque fails if any alpha sample deviates from 255.
func assertOpaque(t *testing.T, img *image.NRGBA) {
	t.Helper()
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 255 {
			t.Fatalf("alpha at byte %d: got %d, want 255", i, img.Pix[i])
		}
	}
}

func TestNormalize_AllModesYieldOpaqueRGB(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 8, 8))
	gray16 := image.NewGray16(image.Rect(0, 0, 8, 8))
	rgba := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	opaquePalette := image.NewPaletted(image.Rect(0, 0, 8, 8), color.Palette{
		color.RGBA{0, 0, 0, 255},
		color.RGBA{255, 255, 255, 255},
	})
	transparentPalette := image.NewPaletted(image.Rect(0, 0, 8, 8), color.Palette{
		color.RGBA{0, 0, 0, 0},
		color.RGBA{255, 0, 0, 255},
	})
	ycbcr := image.NewYCbCr(image.Rect(0, 0, 8, 8), image.YCbCrSubsampleRatio420)
	cmyk := image.NewCMYK(image.Rect(0, 0, 8, 8))

	tests := []struct {
		name string
		img  image.Image
	}{
		{"grayscale", gray},
		{"grayscale 16-bit", gray16},
		{"rgba", rgba},
		{"palette opaque", opaquePalette},
		{"palette transparent", transparentPalette},
		{"rgb (ycbcr)", ycbcr},
		{"other (cmyk)", cmyk},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Normalize(tt.img)
			if out == nil {
				t.Fatal("Normalize returned nil")
			}
			if got := Dimensions(out); got != Dimensions(tt.img) {
				t.Errorf("dimensions changed: got %v, want %v", got, Dimensions(tt.img))
			}
			assertOpaque(t, out)
		})
	}
}

func TestNormalize_TransparentPixelsCompositeToWhite(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	// Fully transparent except one opaque black pixel.
	img.SetNRGBA(1, 1, color.NRGBA{0, 0, 0, 255})

	out := Normalize(img)

	if c := out.NRGBAAt(0, 0); c.R != 255 || c.G != 255 || c.B != 255 {
		t.Errorf("transparent pixel: got %v, want white", c)
	}
	if c := out.NRGBAAt(1, 1); c.R != 0 || c.G != 0 || c.B != 0 {
		t.Errorf("opaque pixel: got %v, want black", c)
	}
}

func TestNormalize_PartialAlphaBlendsWithWhite(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	// 50% opaque black over white should land mid-gray.
	img.SetNRGBA(0, 0, color.NRGBA{0, 0, 0, 128})

	out := Normalize(img)

	c := out.NRGBAAt(0, 0)
	if c.R < 120 || c.R > 135 {
		t.Errorf("blended value: got %d, want ~127", c.R)
	}
	if c.R != c.G || c.G != c.B {
		t.Errorf("blend not neutral: %v", c)
	}
}

func TestNormalize_GrayAlphaCompositesToWhite(t *testing.T) {
	// Decoders surface grayscale+alpha as NRGBA with equal channels.
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{64, 64, 64, 255})
	img.SetNRGBA(1, 0, color.NRGBA{64, 64, 64, 0})

	out := Normalize(img)

	if c := out.NRGBAAt(0, 0); c.R != 64 {
		t.Errorf("opaque gray: got %d, want 64", c.R)
	}
	if c := out.NRGBAAt(1, 0); c.R != 255 {
		t.Errorf("transparent gray: got %d, want 255 (white)", c.R)
	}
}

func TestNormalize_TransparentPaletteCompositesToWhite(t *testing.T) {
	pal := color.Palette{
		color.RGBA{0, 0, 0, 0},     // transparency key
		color.RGBA{10, 20, 30, 255},
	}
	img := image.NewPaletted(image.Rect(0, 0, 2, 1), pal)
	img.SetColorIndex(0, 0, 0)
	img.SetColorIndex(1, 0, 1)

	out := Normalize(img)

	if c := out.NRGBAAt(0, 0); c.R != 255 || c.G != 255 || c.B != 255 {
		t.Errorf("transparent palette entry: got %v, want white", c)
	}
	if c := out.NRGBAAt(1, 0); c.R != 10 || c.G != 20 || c.B != 30 {
		t.Errorf("opaque palette entry: got %v, want {10 20 30}", c)
	}
}

func TestNormalize_RGBPassesThrough(t *testing.T) {
	img := image.NewYCbCr(image.Rect(0, 0, 4, 4), image.YCbCrSubsampleRatio444)
	out := Normalize(img)
	if got := Dimensions(out); got != (Size{4, 4}) {
		t.Errorf("dimensions: got %v, want {4 4}", got)
	}
	assertOpaque(t, out)
}

func TestMode(t *testing.T) {
	tests := []struct {
		name string
		img  image.Image
		want ColorMode
	}{
		{"nrgba", image.NewNRGBA(image.Rect(0, 0, 1, 1)), ModeRGBA},
		{"rgba", image.NewRGBA(image.Rect(0, 0, 1, 1)), ModeRGBA},
		{"gray", image.NewGray(image.Rect(0, 0, 1, 1)), ModeGray},
		{"paletted", image.NewPaletted(image.Rect(0, 0, 1, 1), color.Palette{color.Black}), ModePalette},
		{"ycbcr", image.NewYCbCr(image.Rect(0, 0, 1, 1), image.YCbCrSubsampleRatio444), ModeRGB},
		{"cmyk", image.NewCMYK(image.Rect(0, 0, 1, 1)), ModeOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Mode(tt.img); got != tt.want {
				t.Errorf("Mode: got %s, want %s", got, tt.want)
			}
		})
	}
}
