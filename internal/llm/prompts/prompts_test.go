package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"compass-utils/pkg/models"
)

func promptProfile() *models.Profile {
	return &models.Profile{
		Name:            "Priya",
		Degree:          "B.Tech Computer Science",
		Year:            "3rd Year",
		College:         "NIT Trichy",
		CareerRole:      "Backend Developer",
		CareerGoal:      "Land a backend internship",
		Skills:          []string{"Go", "SQL", "Docker"},
		Interests:       []string{"distributed systems"},
		ExperienceLevel: "intermediate",
		HasProjects:     true,
		HasInternships:  false,
		Certifications:  "AWS Cloud Practitioner",
	}
}

func TestBuildRoadmapPrompt(t *testing.T) {
	prompt := BuildRoadmapPrompt(promptProfile())

	assert.Contains(t, prompt, "You MUST return ONLY valid JSON")
	assert.Contains(t, prompt, `"phases"`)
	assert.Contains(t, prompt, `"nextActions"`)
	assert.Contains(t, prompt, "B.Tech Computer Science, 3rd Year")
	assert.Contains(t, prompt, "Target Role: Backend Developer")
	assert.Contains(t, prompt, "Skills: Go, SQL, Docker")
	assert.Contains(t, prompt, "Has Projects: Yes")
	assert.Contains(t, prompt, "Has Internships: No")
	assert.Contains(t, prompt, "6-month career roadmap")
}

func TestBuildRoadmapPromptDeterministic(t *testing.T) {
	p := promptProfile()
	assert.Equal(t, BuildRoadmapPrompt(p), BuildRoadmapPrompt(p))
}

func TestBuildResumeCritiquePrompt(t *testing.T) {
	resumeText := "Priya Sharma. Built a URL shortener in Go serving 1k rps."
	prompt := BuildResumeCritiquePrompt(promptProfile(), resumeText)

	assert.Contains(t, prompt, resumeText)
	assert.Contains(t, prompt, "Name: Priya")
	assert.Contains(t, prompt, "at NIT Trichy")
	assert.Contains(t, prompt, "Certifications: AWS Cloud Practitioner")

	// The section glyphs drive client-side segmentation of the critique.
	for _, glyph := range []string{"📊", "💪", "⚠️", "🎯", "🤖", "✍️", "🎓", "📝"} {
		assert.Contains(t, prompt, glyph)
	}
}

func TestBuildResumeCritiquePromptDefaults(t *testing.T) {
	p := promptProfile()
	p.Name = ""
	p.Certifications = ""

	prompt := BuildResumeCritiquePrompt(p, "resume body")

	assert.Contains(t, prompt, "Name: Candidate")
	assert.Contains(t, prompt, "Certifications: None mentioned")
}

func TestBuildRecommendationsPrompt(t *testing.T) {
	prompt := BuildRecommendationsPrompt(promptProfile())

	assert.Contains(t, prompt, `"job"`)
	assert.Contains(t, prompt, `"mentor"`)
	assert.Contains(t, prompt, `"learning"`)
	assert.Contains(t, prompt, `"ctaRoute": "/mentors"`)
	assert.Contains(t, prompt, `"ctaRoute": "/learning-path"`)
	assert.Contains(t, prompt, "College: NIT Trichy")
	assert.Contains(t, prompt, "Interests: distributed systems")
	assert.Contains(t, prompt, "REAL public careers page")
}

func TestBuildRecommendationsPromptNoInterests(t *testing.T) {
	p := promptProfile()
	p.Interests = nil

	prompt := BuildRecommendationsPrompt(p)
	assert.Contains(t, prompt, "Interests: Not specified")
	assert.False(t, strings.Contains(prompt, "Interests: \n"))
}
