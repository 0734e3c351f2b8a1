// Package server implements the MCP (Model Context Protocol) server
// over stdio. Requests arrive as newline-delimited JSON-RPC 2.0
// messages on stdin; responses go to stdout. Logging goes to stderr
// so the protocol stream stays clean.
//
// The server exposes a single tool, ocr_image, which delegates to the
// pipeline and returns the paths of the written Markdown and snapshot
// files as two text contents.
package server
