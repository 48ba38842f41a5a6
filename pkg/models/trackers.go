package models

import "time"

// Application statuses as surfaced in the applications tracker.
const (
	ApplicationStatusApplied   = "Applied"
	ApplicationStatusInterview = "Interview"
	ApplicationStatusRejected  = "Rejected"
	ApplicationStatusOffer     = "Offer"
)

// Application is a single entry in the job applications tracker.
type Application struct {
	ID          string    `json:"id"`
	Company     string    `json:"company" validate:"required"`
	Role        string    `json:"role" validate:"required"`
	Location    string    `json:"location,omitempty"`
	Source      string    `json:"source,omitempty"`
	Status      string    `json:"status" validate:"required,oneof=Applied Interview Rejected Offer"`
	AppliedDate time.Time `json:"appliedDate"`
}

// Mentor is a single entry in the mentors tracker.
type Mentor struct {
	ID           string `json:"id"`
	Name         string `json:"name" validate:"required"`
	Role         string `json:"role,omitempty"`
	Organization string `json:"organization,omitempty"`
	Location     string `json:"location,omitempty"`
	Connected    bool   `json:"connected"`
}

// LearningItem is a single checklist entry in the learning path tracker.
type LearningItem struct {
	ID    string `json:"id"`
	Track string `json:"track,omitempty"`
	Level string `json:"level,omitempty"`
	Name  string `json:"name" validate:"required"`
	Done  bool   `json:"done"`
}
