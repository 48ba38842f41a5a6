// Package interpreter decodes raw completion text into the shapes the rest of
// the service trusts. The upstream model is instructed to emit pure JSON, but
// instruction-following is not guaranteed: the only defenses here are fence
// stripping and all-or-nothing decoding. A response that fails to decode is
// rejected wholesale; there are no schema-repair heuristics.
package interpreter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"compass-utils/internal/logging"
	"compass-utils/pkg/models"
	"compass-utils/pkg/utils"
)

// AsFreeText returns the raw completion text verbatim. Used for the resume
// critique, where the model's prose is the product. Empty text is passed
// through; downstream display degrades gracefully.
func AsFreeText(raw string) string {
	return raw
}

// StripFences removes markdown code-fence markers wherever they occur in the
// text, not only at the boundaries, then trims surrounding whitespace. Both
// the language-tagged form (```json) and the bare form (```) are removed.
func StripFences(raw string) string {
	cleaned := strings.ReplaceAll(raw, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	return strings.TrimSpace(cleaned)
}

// ParseRoadmap strictly decodes a completion response into a Roadmap.
func ParseRoadmap(raw string) (*models.Roadmap, error) {
	var roadmap models.Roadmap
	if err := decodeStrict(raw, &roadmap); err != nil {
		return nil, err
	}
	if err := roadmap.Validate(); err != nil {
		return nil, malformed(raw, err)
	}
	return &roadmap, nil
}

// ParseRecommendations strictly decodes a completion response into a
// RecommendationBundle.
func ParseRecommendations(raw string) (*models.RecommendationBundle, error) {
	var bundle models.RecommendationBundle
	if err := decodeStrict(raw, &bundle); err != nil {
		return nil, err
	}
	if err := bundle.Validate(); err != nil {
		return nil, malformed(raw, err)
	}
	return &bundle, nil
}

// decodeStrict strips fences then decodes, rejecting unknown fields and
// trailing content. Any decode failure collapses to MalformedResponseError
// carrying the raw text for operator-side logging.
func decodeStrict(raw string, v interface{}) error {
	cleaned := StripFences(raw)

	dec := json.NewDecoder(strings.NewReader(cleaned))
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		return malformed(raw, err)
	}

	// Anything after the JSON value means the model kept talking
	if dec.More() {
		return malformed(raw, fmt.Errorf("trailing content after JSON value"))
	}

	var rest bytes.Buffer
	if _, err := rest.ReadFrom(dec.Buffered()); err == nil {
		if strings.TrimSpace(rest.String()) != "" {
			return malformed(raw, fmt.Errorf("trailing content after JSON value"))
		}
	}

	return nil
}

func malformed(raw string, err error) error {
	logging.GetGlobalLogger().Error("Completion response failed strict decoding", map[string]interface{}{
		"error":         err.Error(),
		"response_text": raw,
	})
	return &utils.MalformedResponseError{Raw: raw, Err: err}
}
