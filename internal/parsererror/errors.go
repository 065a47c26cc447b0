// Package parsererror defines typed errors for image- and run-level failures.
// Field-level extraction failures are never errors; they degrade to sentinel
// or absent values inside the extraction engine.
package parsererror

import "fmt"

// EmptyOCRError indicates that the OCR collaborator returned no text for an
// image. A receipt with no text at all is not worth emitting, so the parser
// surfaces this to its caller instead of producing a degraded record.
type EmptyOCRError struct {
	SourceID string
}

func (e *EmptyOCRError) Error() string {
	return fmt.Sprintf("empty OCR result for %s: no text to parse", e.SourceID)
}

// OCRError wraps a failure of the external OCR command for one image.
type OCRError struct {
	ImagePath string
	Err       error
}

func (e *OCRError) Error() string {
	return fmt.Sprintf("OCR failed for %s: %v", e.ImagePath, e.Err)
}

func (e *OCRError) Unwrap() error {
	return e.Err
}

// DirectoryNotFoundError indicates that the configured input directory does
// not exist. This is fatal for the whole run.
type DirectoryNotFoundError struct {
	Path string
}

func (e *DirectoryNotFoundError) Error() string {
	return fmt.Sprintf("input directory does not exist: %s", e.Path)
}

// NoImagesFoundError indicates that the input directory contained no
// supported receipt images.
type NoImagesFoundError struct {
	Path string
}

func (e *NoImagesFoundError) Error() string {
	return fmt.Sprintf("no receipt images found in %s", e.Path)
}

// ExportError wraps a failure while writing an output file.
type ExportError struct {
	FilePath string
	Err      error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.FilePath, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}
