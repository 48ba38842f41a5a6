package models

import "time"

// RoadmapResponse is the response from a roadmap generation request.
type RoadmapResponse struct {
	Success        bool          `json:"success"`
	Roadmap        *Roadmap      `json:"roadmap,omitempty"`
	Error          string        `json:"error,omitempty"`
	ProcessingTime time.Duration `json:"processing_time"`
	Provider       string        `json:"provider_used"`
	RequestID      string        `json:"request_id"`
}

// ResumeAnalysisResponse is the response from a resume analysis request.
type ResumeAnalysisResponse struct {
	Success        bool          `json:"success"`
	Analysis       string        `json:"analysis,omitempty"`
	Method         string        `json:"extraction_method,omitempty"`
	Error          string        `json:"error,omitempty"`
	ProcessingTime time.Duration `json:"processing_time"`
	Provider       string        `json:"provider_used"`
	RequestID      string        `json:"request_id"`
}

// RecommendationsResponse is the response from a recommendations request.
type RecommendationsResponse struct {
	Success         bool                  `json:"success"`
	Recommendations *RecommendationBundle `json:"recommendations,omitempty"`
	Error           string                `json:"error,omitempty"`
	ProcessingTime  time.Duration         `json:"processing_time"`
	Provider        string                `json:"provider_used"`
	RequestID       string                `json:"request_id"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Uptime    time.Duration     `json:"uptime"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	RequestID string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`
}
