package ocr

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/otiai10/gosseract/v2"

	internalimaging "github.com/ironsheep/ocr-markdown-mcp/internal/imaging"
)

// hpiRemediation names the concrete fix for a missing accelerated
// inference runtime, surfaced verbatim to the user.
const hpiRemediation = "high-performance inference (HPI) requested but the accelerated runtime is not available. " +
	"Install the native Tesseract build with acceleration enabled first:\n" +
	"  apt-get install tesseract-ocr libtesseract-dev   # Debian/Ubuntu\n" +
	"  brew install tesseract                           # macOS"

// languageAliases maps the engine-facing language codes accepted on
// the wire to Tesseract traineddata names. Unknown codes pass through
// unchanged.
var languageAliases = map[string]string{
	"ch":     "chi_sim+eng",
	"en":     "eng",
	"japan":  "jpn",
	"korean": "kor",
}

// TesseractEngine is the gosseract-backed Engine implementation.
type TesseractEngine struct {
	client *gosseract.Client
	opts   Options
}

// NewTesseractEngine constructs a Tesseract-backed engine. It is
// Factory-compatible. Explicit GPU device requests fail with a
// GPU-classified error: this backend performs CPU inference only, and
// the caller decides whether to retry on CPU.
func NewTesseractEngine(opts Options) (Engine, error) {
	if opts.EnableHPI {
		return nil, &InitError{Kind: KindHPI, Err: errors.New(hpiRemediation)}
	}
	if strings.HasPrefix(opts.Device, "gpu") {
		return nil, &InitError{Kind: KindGPU, Err: fmt.Errorf("gpu device %q requested but this backend supports CPU inference only", opts.Device)}
	}
	switch opts.Version {
	case "", VersionV4, VersionV5:
	default:
		return nil, &InitError{Kind: KindOther, Err: fmt.Errorf("unknown engine version %q", opts.Version)}
	}

	lang := tesseractLanguage(opts.Language)
	client := gosseract.NewClient()
	if err := client.SetLanguage(strings.Split(lang, "+")...); err != nil {
		client.Close()
		return nil, &InitError{
			Kind: KindMissingLanguage,
			Err: fmt.Errorf("language data %q not available (install it with: apt-get install tesseract-ocr-%s): %w",
				lang, strings.Split(lang, "+")[0], err),
		}
	}

	return &TesseractEngine{client: client, opts: opts}, nil
}

// tesseractLanguage resolves a wire language code to traineddata
// names.
func tesseractLanguage(code string) string {
	code = NormalizeLanguage(code)
	if mapped, ok := languageAliases[code]; ok {
		return mapped
	}
	return code
}

// Recognize runs inference on the image file at imagePath and returns
// a single page of line-level units with axis-aligned boxes. If
// box-level iteration fails, recognition falls back to plain text
// lines without geometry rather than failing the request.
func (t *TesseractEngine) Recognize(imagePath string) ([]Page, error) {
	if err := t.setImage(imagePath); err != nil {
		return nil, err
	}

	boxes, err := t.client.GetBoundingBoxes(gosseract.RIL_TEXTLINE)
	if err != nil {
		text, terr := t.client.Text()
		if terr != nil {
			return nil, fmt.Errorf("OCR failed: %w", terr)
		}
		return []Page{textOnlyPage(text)}, nil
	}

	units := make([]Unit, 0, len(boxes))
	for _, b := range boxes {
		if strings.TrimSpace(b.Word) == "" {
			continue
		}
		units = append(units, Unit{
			Text: b.Word,
			Box: &Box{
				XMin: float64(b.Box.Min.X),
				YMin: float64(b.Box.Min.Y),
				XMax: float64(b.Box.Max.X),
				YMax: float64(b.Box.Max.Y),
			},
		})
	}
	return []Page{{Units: units}}, nil
}

// setImage hands the image to the client, honoring DetLimitSideLen by
// pre-scaling oversized inputs in memory.
func (t *TesseractEngine) setImage(imagePath string) error {
	limit := t.opts.DetLimitSideLen
	if limit <= 0 {
		if err := t.client.SetImage(imagePath); err != nil {
			return fmt.Errorf("failed to set image: %w", err)
		}
		return nil
	}

	img, err := internalimaging.Load(imagePath)
	if err != nil {
		return err
	}
	scaled := internalimaging.Downsample(img, limit)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, scaled, imaging.JPEG, imaging.JPEGQuality(95)); err != nil {
		return fmt.Errorf("failed to encode scaled image: %w", err)
	}
	if err := t.client.SetImageFromBytes(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to set image: %w", err)
	}
	return nil
}

// textOnlyPage splits recognizer output into per-line units without
// geometry.
func textOnlyPage(text string) Page {
	var units []Unit
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		units = append(units, Unit{Text: line})
	}
	return Page{Units: units}
}

// Close releases the underlying Tesseract client.
func (t *TesseractEngine) Close() error {
	return t.client.Close()
}
