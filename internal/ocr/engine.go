package ocr

import "strings"

// DefaultLanguage is used when a request carries no language code.
// "ch" selects combined Chinese+English recognition.
const DefaultLanguage = "ch"

// Engine version identifiers accepted by Options.Version.
const (
	VersionV4 = "PP-OCRv4" // faster
	VersionV5 = "PP-OCRv5" // better accuracy
)

// Options configures engine construction. The zero value is a usable
// CPU configuration with automatic device selection.
type Options struct {
	// Language is the recognition language code (free-form, lower-cased
	// by the cache; empty means DefaultLanguage).
	Language string

	// Device selects inference hardware: "gpu:0", "cpu", or empty for
	// engine auto-selection.
	Device string

	// Version picks the model generation (VersionV4 or VersionV5).
	// Empty means VersionV4.
	Version string

	// DetLimitSideLen caps the side length the detector operates on.
	// Zero leaves the engine default. This is the CLI's --max-size
	// knob; it is independent of the MCP pipeline's preprocessing
	// bound.
	DetLimitSideLen int

	// TextlineOrientation enables text-line orientation classification.
	// Disabled in fast mode.
	TextlineOrientation bool

	// EnableHPI requests the high-performance inference backend.
	EnableHPI bool
}

// Engine is the wrapped OCR engine. Recognize consumes the path of a
// prepared image file and returns per-page results; inference errors
// surface as-is, with no internal retry.
type Engine interface {
	Recognize(imagePath string) ([]Page, error)
	Close() error
}

// Factory constructs an Engine for the given options. Construction
// failures should be *InitError values so callers can classify them.
type Factory func(Options) (Engine, error)

// NormalizeLanguage lower-cases and trims a language code, falling
// back to DefaultLanguage when empty.
func NormalizeLanguage(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if lang == "" {
		return DefaultLanguage
	}
	return lang
}

// Cache hands out one engine per language code for the lifetime of
// the process. Engines are constructed lazily on first use and never
// evicted. Single-threaded use is assumed; there is no lock.
type Cache struct {
	factory Factory
	base    Options
	engines map[string]Engine
}

// NewCache creates an engine cache. base supplies every option except
// Language, which is set per Get call.
func NewCache(factory Factory, base Options) *Cache {
	return &Cache{
		factory: factory,
		base:    base,
		engines: make(map[string]Engine),
	}
}

// Get returns the engine for lang, constructing it on first use. The
// first use for a given language pays the initialization cost;
// subsequent calls reuse the cached instance.
func (c *Cache) Get(lang string) (Engine, error) {
	key := NormalizeLanguage(lang)
	if eng, ok := c.engines[key]; ok {
		return eng, nil
	}

	opts := c.base
	opts.Language = key
	eng, err := c.factory(opts)
	if err != nil {
		return nil, err
	}
	c.engines[key] = eng
	return eng, nil
}

// Close closes every cached engine, returning the first error
// encountered.
func (c *Cache) Close() error {
	var first error
	for _, eng := range c.engines {
		if err := eng.Close(); err != nil && first == nil {
			first = err
		}
	}
	c.engines = make(map[string]Engine)
	return first
}
