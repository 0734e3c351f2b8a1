// Package format renders recognition results into the two output
// artifacts: a Markdown document listing the recognized text and a
// YAML accessibility-style snapshot describing the result tree with
// geometry mapped back to original-image pixel coordinates.
//
// Snapshot nodes carry short random reference ids so tooling can
// address individual nodes across runs of the same document.
package format
