package extraction

import (
	"fmt"

	"compass-utils/internal/config"
	"compass-utils/internal/extraction/engines/tesseract"
)

// NewOCREngine creates an OCR engine based on the configuration.
func NewOCREngine(cfg *config.Config) (OCREngine, error) {
	switch cfg.Extraction.OCREngine {
	case "tesseract":
		return tesseract.NewEngine(cfg), nil
	case "disabled", "":
		return nil, nil
	default:
		return nil, fmt.Errorf("unsupported OCR engine: %s", cfg.Extraction.OCREngine)
	}
}
