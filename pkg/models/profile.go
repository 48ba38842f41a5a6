package models

// Profile represents the structured onboarding answers describing a user's
// education, goals, skills, and experience. It is created once when onboarding
// completes and only replaced wholesale by re-running onboarding.
type Profile struct {
	Name            string   `json:"name,omitempty"`
	Degree          string   `json:"degree" validate:"required"`
	Year            string   `json:"year" validate:"required"`
	College         string   `json:"college" validate:"required"`
	CareerRole      string   `json:"careerRole" validate:"required"`
	CareerGoal      string   `json:"careerGoal" validate:"required"`
	Skills          []string `json:"skills" validate:"required,min=1,dive,required"`
	Interests       []string `json:"interests" validate:"omitempty,dive,required"`
	ExperienceLevel string   `json:"experienceLevel" validate:"required,experience_level"`
	HasProjects     bool     `json:"hasProjects"`
	HasInternships  bool     `json:"hasInternships"`
	Certifications  string   `json:"certifications,omitempty"`
}

// ExperienceLevels enumerates the accepted values for Profile.ExperienceLevel.
var ExperienceLevels = []string{"beginner", "intermediate", "advanced"}
