package ocr

import (
	"errors"
	"strings"
)

// Kind classifies engine initialization failures.
type Kind int

const (
	KindOther Kind = iota

	// KindGPU marks failures tied to GPU/driver initialization. The
	// CLI retries once on CPU when it sees this kind.
	KindGPU

	// KindHPI marks a missing high-performance inference dependency.
	KindHPI

	// KindMissingLanguage marks missing recognition data for the
	// requested language.
	KindMissingLanguage
)

// InitError is returned by engine factories when construction fails.
// It carries the failure classification so callers do not need to
// inspect message text.
type InitError struct {
	Kind Kind
	Err  error
}

func (e *InitError) Error() string { return e.Err.Error() }
func (e *InitError) Unwrap() error { return e.Err }

// Classify reports the failure kind of an engine initialization
// error. A typed *InitError anywhere in the chain is authoritative.
// Untyped errors fall back to substring matching on the lowered
// message text, which tracks the engine's wording and can break
// across engine versions.
func Classify(err error) Kind {
	var ie *InitError
	if errors.As(err, &ie) {
		return ie.Kind
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "hpi"):
		return KindHPI
	case strings.Contains(msg, "cuda"), strings.Contains(msg, "gpu"), strings.Contains(msg, "device"):
		return KindGPU
	}
	return KindOther
}
