package format

import (
	"fmt"
	"strings"
)

// noTextPlaceholder is emitted when recognition finds no text at all.
const noTextPlaceholder = "*No text detected in image.*"

// Markdown renders recognized texts as a Markdown document. The
// header names the source image and, when language is non-empty, the
// recognition language. Each text becomes one bullet; an image with
// no recognized text gets an italic placeholder instead of bullets.
func Markdown(imagePath, language string, texts []string) string {
	var b strings.Builder

	b.WriteString("# OCR Result\n\n")
	fmt.Fprintf(&b, "**Source Image:** `%s`\n\n", imagePath)
	if language != "" {
		fmt.Fprintf(&b, "**Language:** `%s`\n\n", language)
	}
	b.WriteString("---\n\n")

	wrote := false
	for _, text := range texts {
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		fmt.Fprintf(&b, "- %s\n", text)
		wrote = true
	}
	if !wrote {
		b.WriteString(noTextPlaceholder + "\n")
	}

	return b.String()
}
