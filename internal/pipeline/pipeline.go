package pipeline

import (
	"fmt"
	"os"

	"github.com/ironsheep/ocr-markdown-mcp/internal/format"
	"github.com/ironsheep/ocr-markdown-mcp/internal/imaging"
	"github.com/ironsheep/ocr-markdown-mcp/internal/ocr"
)

// Result names the artifacts written for one processed image.
type Result struct {
	MarkdownPath string
	SnapshotPath string
}

// Pipeline processes images end to end using a shared engine cache.
type Pipeline struct {
	engines *ocr.Cache
	maxSide int
}

// New creates a Pipeline backed by the given engine cache.
func New(engines *ocr.Cache) *Pipeline {
	return &Pipeline{engines: engines, maxSide: imaging.DefaultMaxSide}
}

// Process runs OCR on the image at imagePath and writes the Markdown
// document and snapshot next to it. The returned paths are
// "<image>.md" and "<image>.snapshot.log".
func (p *Pipeline) Process(imagePath, language string) (*Result, error) {
	info, err := os.Stat(imagePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("image file not found: %s", imagePath)
		}
		return nil, fmt.Errorf("failed to access image file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("path is not a file: %s", imagePath)
	}

	prepared, err := imaging.Prepare(imagePath, p.maxSide)
	if err != nil {
		return nil, err
	}
	defer prepared.Cleanup()

	language = ocr.NormalizeLanguage(language)
	engine, err := p.engines.Get(language)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize OCR engine for language %q: %w", language, err)
	}

	pages, err := engine.Recognize(prepared.Path)
	if err != nil {
		return nil, fmt.Errorf("OCR failed for %s: %w", imagePath, err)
	}

	markdownPath := imagePath + ".md"
	markdown := format.Markdown(imagePath, language, ocr.CollectTexts(pages))
	if err := os.WriteFile(markdownPath, []byte(markdown), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write markdown output: %w", err)
	}

	rs := format.NewRescaler(
		prepared.OriginalSize.Width, prepared.OriginalSize.Height,
		prepared.PreparedSize.Width, prepared.PreparedSize.Height,
	)
	snapshot, err := format.Snapshot(imagePath, language, pages, rs)
	if err != nil {
		return nil, err
	}
	snapshotPath := imagePath + ".snapshot.log"
	if err := os.WriteFile(snapshotPath, []byte(snapshot), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write snapshot output: %w", err)
	}

	return &Result{MarkdownPath: markdownPath, SnapshotPath: snapshotPath}, nil
}
