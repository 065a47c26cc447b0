// Package ocr is the boundary to the external OCR collaborator. It shells
// out to the tesseract command-line tool; the extraction engine never calls
// it, only the CLI drivers do.
package ocr

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"time"

	"fjacquet/receipt-csv/internal/parsererror"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Client runs the external OCR command against receipt images.
type Client struct {
	Command  string
	Language string
	Timeout  time.Duration
}

// NewClient creates an OCR client. Zero values fall back to tesseract with
// Japanese language data and a 60 second timeout per image.
func NewClient(command, language string, timeout time.Duration) *Client {
	if command == "" {
		command = "tesseract"
	}
	if language == "" {
		language = "jpn"
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{Command: command, Language: language, Timeout: timeout}
}

// ExtractText runs OCR on one image and returns the raw text block.
// Stdout target "-" makes tesseract write the text to stdout instead of a
// sidecar file.
func (c *Client) ExtractText(ctx context.Context, imagePath string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.Timeout)
	defer cancel()

	start := time.Now()
	cmd := exec.CommandContext(ctx, c.Command, imagePath, "-", "-l", c.Language)

	var out, errb bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errb

	if err := cmd.Run(); err != nil {
		log.WithError(err).WithFields(logrus.Fields{
			"file":   imagePath,
			"stderr": errb.String(),
		}).Error("OCR command failed")
		return "", &parsererror.OCRError{
			ImagePath: imagePath,
			Err:       fmt.Errorf("running %s: %w", c.Command, err),
		}
	}

	log.WithFields(logrus.Fields{
		"file":        imagePath,
		"duration_ms": time.Since(start).Milliseconds(),
		"bytes":       out.Len(),
	}).Debug("OCR completed")

	return out.String(), nil
}
