// Package pipeline runs the full OCR flow for one image: validate
// the input path, preprocess the image into a temporary file,
// recognize it with the cached engine for the requested language, and
// write the Markdown and snapshot artifacts next to the source image.
//
// The temporary preprocessed file is removed before Process returns,
// on success and on failure alike.
package pipeline
