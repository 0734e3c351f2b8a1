// Package imaging prepares raster images for OCR inference.
//
// The preparation pipeline has three stages, applied in order:
//
//  1. Normalize: any color mode (alpha-bearing, palette, grayscale,
//     other) is flattened to opaque RGB, compositing transparent
//     content onto a white background.
//  2. Downsample: images whose longer side exceeds a configured bound
//     are scaled down with a Lanczos filter, preserving aspect ratio.
//  3. Sharpen: a two-stage sharpening pass (unsharp mask followed by a
//     global sharpness boost) improves text edge contrast for the
//     recognizer.
//
// Prepare runs all three stages and writes the result to a uniquely
// named temporary JPEG. The caller owns the temporary file and removes
// it with Cleanup once inference has finished; removal failures are
// ignored.
//
// Supported input formats are PNG, JPEG, GIF, BMP, TIFF, and WebP.
// All pixel coordinates are 0-based with the origin at the top-left.
package imaging
