// Package ocr defines the contract with the wrapped OCR engine and
// provides the Tesseract-backed implementation.
//
// The engine is consumed through the Engine interface: given the path
// to a prepared image file it returns per-page recognition results
// (text spans with optional axis-aligned boxes or polygons, in
// prepared-image pixel coordinates). Engines are constructed through
// an injectable Factory and reused through a Cache keyed by language
// code: one engine per distinct language for the lifetime of the
// process, initialized lazily and never evicted.
//
// The Cache assumes single-threaded request handling and provides no
// lock; concurrent first-use requests for the same language in a
// multi-threaded host would race.
//
// Inference errors are never retried here. Initialization errors are
// classified (GPU, HPI, missing language data) so callers can decide
// on fallback; see Classify.
package ocr
