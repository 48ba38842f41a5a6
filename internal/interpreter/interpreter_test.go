package interpreter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"compass-utils/pkg/utils"
)

const roadmapJSON = `{
  "phases": [
    {"title": "Foundation Phase", "duration": "4 weeks", "tasks": ["Learn Go basics", "Build a CLI tool"]},
    {"title": "Project Phase", "duration": "8 weeks", "tasks": ["Ship a web service"]}
  ],
  "nextActions": ["Update LinkedIn", "Apply to two internships"]
}`

func TestStripFences(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "bare json untouched",
			input:    `{"phases": []}`,
			expected: `{"phases": []}`,
		},
		{
			name:     "json fence removed",
			input:    "```json\n{\"phases\": []}\n```",
			expected: `{"phases": []}`,
		},
		{
			name:     "plain fence removed",
			input:    "```\n{\"phases\": []}\n```",
			expected: `{"phases": []}`,
		},
		{
			name:     "fences removed everywhere not just boundaries",
			input:    "prefix ```json inner``` suffix",
			expected: "prefix  inner suffix",
		},
		{
			name:     "surrounding whitespace trimmed",
			input:    "  \n{\"a\": 1}\n  ",
			expected: `{"a": 1}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StripFences(tt.input))
		})
	}
}

func TestStripFencesIdempotent(t *testing.T) {
	inputs := []string{
		"```json\n{\"phases\": []}\n```",
		`{"phases": []}`,
		"no fences at all",
		"``` ```json ```",
	}

	for _, input := range inputs {
		once := StripFences(input)
		assert.Equal(t, once, StripFences(once), "second strip must be a no-op for %q", input)
	}
}

func TestParseRoadmap(t *testing.T) {
	roadmap, err := ParseRoadmap(roadmapJSON)
	require.NoError(t, err)
	require.Len(t, roadmap.Phases, 2)
	assert.Equal(t, "Foundation Phase", roadmap.Phases[0].Title)
	assert.Equal(t, []string{"Update LinkedIn", "Apply to two internships"}, roadmap.NextActions)
}

func TestParseRoadmapWithFences(t *testing.T) {
	fenced := "```json\n" + roadmapJSON + "\n```"

	roadmap, err := ParseRoadmap(fenced)
	require.NoError(t, err)
	assert.Len(t, roadmap.Phases, 2)
}

func TestParseRoadmapEmptyArraysAreValid(t *testing.T) {
	// Empty arrays mean the fields were present; only absence is an error.
	roadmap, err := ParseRoadmap(`{"phases": [], "nextActions": []}`)
	require.NoError(t, err)
	assert.Empty(t, roadmap.Phases)
	assert.Empty(t, roadmap.NextActions)
}

func TestParseRoadmapMissingField(t *testing.T) {
	_, err := ParseRoadmap(`{"phases": []}`)
	require.Error(t, err)

	var malformed *utils.MalformedResponseError
	require.True(t, errors.As(err, &malformed))
	assert.Contains(t, malformed.Err.Error(), "nextActions")
}

func TestParseRoadmapProse(t *testing.T) {
	raw := "Sure! Here is your roadmap:\n\n1. Learn the basics\n2. Build projects"

	_, err := ParseRoadmap(raw)
	require.Error(t, err)

	var malformed *utils.MalformedResponseError
	require.True(t, errors.As(err, &malformed))
	assert.Equal(t, raw, malformed.Raw)
}

func TestParseRoadmapUnknownFieldRejected(t *testing.T) {
	_, err := ParseRoadmap(`{"phases": [], "nextActions": [], "extra": true}`)
	require.Error(t, err)

	var malformed *utils.MalformedResponseError
	assert.True(t, errors.As(err, &malformed))
}

func TestParseRoadmapTrailingContentRejected(t *testing.T) {
	_, err := ParseRoadmap(`{"phases": [], "nextActions": []} and that is my plan`)
	require.Error(t, err)

	var malformed *utils.MalformedResponseError
	assert.True(t, errors.As(err, &malformed))
}

func TestParseRecommendations(t *testing.T) {
	raw := "```json\n" + `{
  "job": {"title": "Backend Intern", "company": "Google", "match": 82, "applyUrl": "https://careers.google.com"},
  "mentor": {"reason": "You need guidance on system design", "ctaRoute": "/mentors"},
  "learning": {"task": "Finish the Go concurrency course", "ctaRoute": "/learning-path"}
}` + "\n```"

	bundle, err := ParseRecommendations(raw)
	require.NoError(t, err)
	assert.Equal(t, "Backend Intern", bundle.Job.Title)
	assert.Equal(t, 82.0, bundle.Job.Match)
	assert.Equal(t, "/mentors", bundle.Mentor.CTARoute)
	assert.Equal(t, "/learning-path", bundle.Learning.CTARoute)
}

func TestParseRecommendationsMissingSection(t *testing.T) {
	_, err := ParseRecommendations(`{
  "job": {"title": "Backend Intern", "company": "Google", "match": 82, "applyUrl": "https://careers.google.com"},
  "mentor": {"reason": "You need guidance", "ctaRoute": "/mentors"}
}`)
	require.Error(t, err)

	var malformed *utils.MalformedResponseError
	require.True(t, errors.As(err, &malformed))
	assert.Contains(t, malformed.Err.Error(), "learning")
}

func TestAsFreeText(t *testing.T) {
	// Free text passes through untouched, fences and all.
	raw := "```json\nnot actually json\n```"
	assert.Equal(t, raw, AsFreeText(raw))
	assert.Equal(t, "", AsFreeText(""))
}
