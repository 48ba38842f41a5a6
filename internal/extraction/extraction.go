// Package extraction turns an uploaded resume document into plain text fit
// for prompting. Structured PDF extraction is cheap but fails silently on
// image-only PDFs; the configured length threshold is the only available
// signal to detect that failure, and OCR is the slow fallback.
package extraction

import (
	"context"
)

// Document formats accepted by the acquisition pipeline.
const (
	FormatPDF       = "pdf"
	FormatPlainText = "txt"
)

// Extraction methods reported alongside acquired text.
const (
	MethodPlainText = "plain-text"
	MethodPDFText   = "pdf-text"
	MethodPDFOCR    = "pdf-ocr"
)

// Document is an uploaded file with its declared format. The format is taken
// from the upload's declared content type, never sniffed.
type Document struct {
	Name   string
	Format string
	Data   []byte
}

// OCREngine runs optical character recognition over a whole PDF document.
// This path may take substantially longer than structured extraction and
// produces noisier text.
type OCREngine interface {
	// Recognize extracts text from the PDF data via OCR
	Recognize(ctx context.Context, pdfData []byte) (string, error)

	// Name returns the name of the OCR engine
	Name() string
}
