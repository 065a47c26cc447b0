// Package batch orchestrates processing of whole directories of receipt
// images: OCR each image, parse the text, and collect the structured
// records. Failures are isolated per image; one bad receipt never aborts
// the run.
package batch

import (
	"context"
	"runtime"
	"sync"

	"fjacquet/receipt-csv/internal/fileutils"
	"fjacquet/receipt-csv/internal/models"
	"fjacquet/receipt-csv/internal/ocr"
	"fjacquet/receipt-csv/internal/parsererror"
	"fjacquet/receipt-csv/internal/receiptparser"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Processor runs OCR and parsing over many receipt images. Receipt assembly
// is pure CPU work with no shared mutable state, so images are processed by
// a worker pool; results keep the input order.
type Processor struct {
	ocrClient   *ocr.Client
	parser      *receiptparser.Parser
	workerCount int
}

// NewProcessor creates a Processor with one worker per CPU.
func NewProcessor(ocrClient *ocr.Client, parser *receiptparser.Parser) *Processor {
	return &Processor{
		ocrClient:   ocrClient,
		parser:      parser,
		workerCount: runtime.NumCPU(),
	}
}

// ProcessDirectory processes every supported receipt image in the directory.
// A missing directory is fatal, as is an empty one; a failure on a single
// image is logged and that image skipped.
func (p *Processor) ProcessDirectory(ctx context.Context, inputDir string) ([]models.Receipt, error) {
	if !fileutils.DirectoryExists(inputDir) {
		return nil, &parsererror.DirectoryNotFoundError{Path: inputDir}
	}

	images, err := fileutils.ListImageFiles(inputDir)
	if err != nil {
		return nil, err
	}
	if len(images) == 0 {
		return nil, &parsererror.NoImagesFoundError{Path: inputDir}
	}

	log.WithFields(logrus.Fields{
		"dir":     inputDir,
		"images":  len(images),
		"workers": p.workerCount,
	}).Info("Processing receipt images")

	results := make([]*models.Receipt, len(images))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < p.workerCount; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = p.processImage(ctx, images[i])
			}
		}()
	}

	for i := range images {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	receipts := make([]models.Receipt, 0, len(images))
	for _, r := range results {
		if r != nil {
			receipts = append(receipts, *r)
		}
	}

	log.WithFields(logrus.Fields{
		"processed": len(receipts),
		"skipped":   len(images) - len(receipts),
	}).Info("Finished processing receipt images")

	return receipts, nil
}

// processImage handles one image end to end, returning nil when the image
// has to be skipped.
func (p *Processor) processImage(ctx context.Context, imagePath string) *models.Receipt {
	text, err := p.ocrClient.ExtractText(ctx, imagePath)
	if err != nil {
		log.WithError(err).WithField("file", imagePath).Warn("Skipping image, OCR failed")
		return nil
	}

	receipt, err := p.parser.ParseText(ctx, receiptparser.SourceID(imagePath), text)
	if err != nil {
		log.WithError(err).WithField("file", imagePath).Warn("Skipping image, no usable text")
		return nil
	}

	return &receipt
}
