package extraction

import (
	"context"
	"regexp"
	"strings"
	"time"

	"compass-utils/internal/config"
	"compass-utils/internal/logging"
	"compass-utils/pkg/utils"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Service implements resume text acquisition with the two-tier PDF strategy.
type Service struct {
	config *config.Config
	ocr    OCREngine
	logger logging.Logger
}

// NewService creates a new acquisition service. The OCR engine may be nil, in
// which case the fallback path fails as insufficient text.
func NewService(cfg *config.Config, ocr OCREngine) *Service {
	return &Service{
		config: cfg,
		ocr:    ocr,
		logger: logging.GetGlobalLogger(),
	}
}

// Acquire extracts text from the document and returns it together with the
// extraction method used. Failure modes: UnsupportedFormatError for a
// declared type that is neither PDF nor plain text, InsufficientTextError
// when the final normalized text is below the configured threshold.
func (s *Service) Acquire(ctx context.Context, doc Document) (string, string, error) {
	format := NormalizeFormat(doc.Format)

	switch format {
	case FormatPlainText:
		text := normalizeWhitespace(string(doc.Data))
		if err := s.checkLength(text); err != nil {
			return "", "", err
		}
		return text, MethodPlainText, nil

	case FormatPDF:
		return s.acquireFromPDF(ctx, doc)

	default:
		return "", "", &utils.UnsupportedFormatError{Format: doc.Format}
	}
}

// acquireFromPDF tries the text layer first and falls back to OCR when the
// result looks like a scanned document.
func (s *Service) acquireFromPDF(ctx context.Context, doc Document) (string, string, error) {
	threshold := s.config.Extraction.MinTextLength
	method := MethodPDFText

	text, err := extractPDFText(doc.Data)
	if err != nil {
		s.logger.Warn("Structured PDF extraction failed, falling back to OCR", map[string]interface{}{
			"document": doc.Name,
			"error":    err.Error(),
		})
		text = ""
	}

	text = normalizeWhitespace(text)

	if len(text) < threshold && s.ocr != nil {
		s.logger.Info("Text layer below threshold, re-extracting with OCR", map[string]interface{}{
			"document":   doc.Name,
			"length":     len(text),
			"threshold":  threshold,
			"ocr_engine": s.ocr.Name(),
		})

		startTime := time.Now()
		ocrText, ocrErr := s.ocr.Recognize(ctx, doc.Data)
		if ocrErr != nil {
			s.logger.Error("OCR extraction failed", map[string]interface{}{
				"document": doc.Name,
				"error":    ocrErr.Error(),
			})
		} else {
			text = normalizeWhitespace(ocrText)
			method = MethodPDFOCR
			s.logger.Info("OCR extraction completed", map[string]interface{}{
				"document":        doc.Name,
				"length":          len(text),
				"processing_time": time.Since(startTime),
			})
		}
	}

	if err := s.checkLength(text); err != nil {
		return "", "", err
	}

	return text, method, nil
}

func (s *Service) checkLength(text string) error {
	threshold := s.config.Extraction.MinTextLength
	if len(text) < threshold {
		return &utils.InsufficientTextError{Length: len(text), Threshold: threshold}
	}
	return nil
}

// NormalizeFormat maps declared content types and file extensions onto the
// pipeline's format constants. Unknown declarations are returned as-is so the
// caller can report what was actually declared.
func NormalizeFormat(declared string) string {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(declared), ".")) {
	case "pdf", "application/pdf":
		return FormatPDF
	case "txt", "text", "text/plain", "text/plain; charset=utf-8":
		return FormatPlainText
	default:
		return declared
	}
}

// normalizeWhitespace collapses any run of whitespace to a single space and
// trims the result.
func normalizeWhitespace(text string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(text, " "))
}
