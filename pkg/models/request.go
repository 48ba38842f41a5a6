package models

// GenerateRoadmapRequest is the payload for POST /api/v1/coach/roadmap.
type GenerateRoadmapRequest struct {
	Profile Profile `json:"profile" validate:"required"`
}

// RecommendationsRequest is the payload for POST /api/v1/coach/recommendations.
type RecommendationsRequest struct {
	Profile Profile `json:"profile" validate:"required"`
}

// RelayRequest is the payload accepted by the standalone completion relay.
// The prompt is forwarded verbatim; no validation is applied to its content.
type RelayRequest struct {
	Prompt string `json:"prompt"`
}
