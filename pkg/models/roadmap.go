package models

import "fmt"

// RoadmapPhase is a single phase of a generated career roadmap.
type RoadmapPhase struct {
	Title    string   `json:"title"`
	Duration string   `json:"duration"`
	Tasks    []string `json:"tasks"`
}

// Roadmap is a structured, phased career plan produced by the language model.
// It is derived data: never hand-edited, always replaced wholesale on each
// generation request.
type Roadmap struct {
	Phases      []RoadmapPhase `json:"phases"`
	NextActions []string       `json:"nextActions"`
}

// Validate checks that the required top-level fields were present in the
// decoded payload. A missing field decodes as a nil slice; an explicitly
// empty array does not.
func (r *Roadmap) Validate() error {
	if r.Phases == nil {
		return fmt.Errorf("missing required field: phases")
	}
	if r.NextActions == nil {
		return fmt.Errorf("missing required field: nextActions")
	}
	return nil
}

// JobRecommendation is the job suggestion part of a recommendation bundle.
type JobRecommendation struct {
	Title    string  `json:"title"`
	Company  string  `json:"company"`
	Match    float64 `json:"match"`
	ApplyURL string  `json:"applyUrl"`
}

// MentorRecommendation is the mentor suggestion part of a recommendation bundle.
type MentorRecommendation struct {
	Reason   string `json:"reason"`
	CTARoute string `json:"ctaRoute"`
}

// LearningRecommendation is the learning suggestion part of a recommendation bundle.
type LearningRecommendation struct {
	Task     string `json:"task"`
	CTARoute string `json:"ctaRoute"`
}

// RecommendationBundle is the short-form personalized recommendation set
// produced by the language model. Same all-or-nothing decode contract as
// Roadmap.
type RecommendationBundle struct {
	Job      *JobRecommendation      `json:"job"`
	Mentor   *MentorRecommendation   `json:"mentor"`
	Learning *LearningRecommendation `json:"learning"`
}

// Validate checks that all three recommendation sections were present.
func (b *RecommendationBundle) Validate() error {
	if b.Job == nil {
		return fmt.Errorf("missing required field: job")
	}
	if b.Mentor == nil {
		return fmt.Errorf("missing required field: mentor")
	}
	if b.Learning == nil {
		return fmt.Errorf("missing required field: learning")
	}
	return nil
}

// ResumeAnalysis is the model's free-form resume critique. The text is opaque
// to the server; the client segments it by section-marker glyphs for display.
type ResumeAnalysis struct {
	Analysis string `json:"analysis"`
}
