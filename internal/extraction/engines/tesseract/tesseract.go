// Package tesseract implements the OCR engine on top of the Tesseract
// recognizer. Tesseract works on images, so PDF pages are rasterized with
// pdftoppm before recognition.
package tesseract

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/otiai10/gosseract/v2"

	"compass-utils/internal/config"
	"compass-utils/internal/logging"
)

// Engine recognizes text in scanned PDFs via pdftoppm + Tesseract.
type Engine struct {
	pdftoppmPath string
	language     string
	timeout      time.Duration
	logger       logging.Logger
}

// NewEngine creates a new Tesseract OCR engine.
func NewEngine(cfg *config.Config) *Engine {
	return &Engine{
		pdftoppmPath: cfg.Extraction.PdftoppmPath,
		language:     cfg.Extraction.OCRLanguage,
		timeout:      cfg.Extraction.OCRTimeout,
		logger:       logging.GetGlobalLogger(),
	}
}

// Name returns the name of the OCR engine
func (e *Engine) Name() string {
	return "tesseract"
}

// Recognize rasterizes every page of the PDF and runs recognition over each
// page image in order, concatenating the results with newline separators.
func (e *Engine) Recognize(ctx context.Context, pdfData []byte) (string, error) {
	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	workDir, err := os.MkdirTemp("", "compass-ocr-*")
	if err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(workDir)

	pdfPath := filepath.Join(workDir, "document.pdf")
	if err := os.WriteFile(pdfPath, pdfData, 0644); err != nil {
		return "", fmt.Errorf("write pdf file: %w", err)
	}

	pages, err := e.rasterize(ctx, workDir, pdfPath)
	if err != nil {
		return "", err
	}
	if len(pages) == 0 {
		return "", fmt.Errorf("pdftoppm produced no page images")
	}

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(e.language); err != nil {
		return "", fmt.Errorf("set OCR language: %w", err)
	}

	var textBuilder strings.Builder
	for _, page := range pages {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}

		if err := client.SetImage(page); err != nil {
			return "", fmt.Errorf("set OCR image %s: %w", filepath.Base(page), err)
		}

		text, err := client.Text()
		if err != nil {
			return "", fmt.Errorf("recognize %s: %w", filepath.Base(page), err)
		}

		textBuilder.WriteString(text)
		textBuilder.WriteString("\n")
	}

	return textBuilder.String(), nil
}

// rasterize renders each PDF page to a PNG and returns the page image paths
// in page order.
func (e *Engine) rasterize(ctx context.Context, workDir, pdfPath string) ([]string, error) {
	cmd := exec.CommandContext(ctx, e.pdftoppmPath, "-png", "-r", "300", pdfPath, filepath.Join(workDir, "page"))

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("pdftoppm failed: %w; output:\n%s", err, out.String())
	}

	pages, err := filepath.Glob(filepath.Join(workDir, "page-*.png"))
	if err != nil {
		return nil, fmt.Errorf("list page images: %w", err)
	}

	// pdftoppm zero-pads page numbers, so lexical order is page order
	sort.Strings(pages)
	return pages, nil
}
