// Package cli implements the command-line OCR tool. It parses flags,
// selects the inference device with a one-shot CPU fallback when GPU
// initialization fails, runs recognition on a single image, and
// writes the recognized text as a Markdown document.
//
// Unlike the MCP server, the CLI processes only the first result page
// and emits no snapshot file.
package cli
