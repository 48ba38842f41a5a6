package utils

import (
	"fmt"
	"net/http"
)

// UnsupportedFormatError indicates a document whose declared type is neither
// PDF nor plain text. Acquisition fails before any extraction is attempted.
type UnsupportedFormatError struct {
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported document format: %q", e.Format)
}

// InsufficientTextError indicates that extraction produced less text than the
// configured minimum, even after the OCR fallback. The document is treated as
// unreadable rather than passed on as garbage input to the language model.
type InsufficientTextError struct {
	Length    int
	Threshold int
}

func (e *InsufficientTextError) Error() string {
	return fmt.Sprintf("extracted text too short: %d characters (minimum %d)", e.Length, e.Threshold)
}

// CompletionError indicates a failed call to the completion endpoint. A
// non-2xx HTTP status and an error payload field both collapse to this one
// failure kind. It carries enough to log but not to recover automatically.
type CompletionError struct {
	Status int
	Body   string
}

func (e *CompletionError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("completion request failed with status %d: %s", e.Status, e.Body)
	}
	return fmt.Sprintf("completion request failed: %s", e.Body)
}

// MalformedResponseError indicates that a completion response could not be
// decoded into the expected shape. Raw carries the full response text for
// diagnostic logging; no partial recovery is ever attempted.
type MalformedResponseError struct {
	Raw string
	Err error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed completion response: %v", e.Err)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

// CustomError represents a custom application error
type CustomError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

func (e *CustomError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Detail)
	}
	return e.Message
}

// Common error constructors
func NewBadRequestError(message string) *CustomError {
	return &CustomError{
		Code:    http.StatusBadRequest,
		Message: message,
	}
}

func NewInternalServerError(message string) *CustomError {
	return &CustomError{
		Code:    http.StatusInternalServerError,
		Message: message,
	}
}

func NewValidationError(detail string) *CustomError {
	return &CustomError{
		Code:    http.StatusBadRequest,
		Message: "Validation failed",
		Detail:  detail,
	}
}

// NewExtractionError maps a resume acquisition failure to an HTTP error
func NewExtractionError(detail string) *CustomError {
	return &CustomError{
		Code:    http.StatusUnprocessableEntity,
		Message: "Resume text extraction failed",
		Detail:  detail,
	}
}

// NewLLMError maps a completion or interpretation failure to an HTTP error
func NewLLMError(detail string) *CustomError {
	return &CustomError{
		Code:    http.StatusBadGateway,
		Message: "LLM processing failed",
		Detail:  detail,
	}
}
