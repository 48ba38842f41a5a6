// Package prompts builds the instruction text sent to the completion
// provider. Each builder is a pure function of the profile (plus resume text
// for the critique) so the same inputs always produce the same prompt.
package prompts

import (
	"fmt"
	"strings"

	"compass-utils/pkg/models"
	"compass-utils/pkg/utils"
)

// BuildRoadmapPrompt produces the career roadmap instruction. The response
// contract demands bare JSON matching the roadmap shape.
func BuildRoadmapPrompt(profile *models.Profile) string {
	return fmt.Sprintf(`
You are a career advisor AI.

You MUST return ONLY valid JSON.
DO NOT include explanations, markdown, headings, or text outside JSON.

Return JSON strictly in this format:
{
  "phases": [
    {
      "title": "Foundation Phase",
      "duration": "X weeks",
      "tasks": ["task1", "task2", "task3"]
    }
  ],
  "nextActions": ["action1", "action2", "action3"]
}

STUDENT PROFILE:
- Education: %s, %s
- Target Role: %s
- Skills: %s
- Has Projects: %s
- Has Internships: %s

Create a realistic 6-month career roadmap.
`,
		profile.Degree, profile.Year,
		profile.CareerRole,
		strings.Join(profile.Skills, ", "),
		utils.YesNo(profile.HasProjects),
		utils.YesNo(profile.HasInternships),
	)
}

// BuildResumeCritiquePrompt produces the long-form resume review instruction.
// Unlike the other two builders, the response here is free text and is passed
// through to the client without interpretation.
func BuildResumeCritiquePrompt(profile *models.Profile, resumeText string) string {
	skills := strings.Join(profile.Skills, ", ")

	return fmt.Sprintf(`You are an expert resume reviewer and senior career coach with 15+ years of experience. You're reviewing a resume for someone targeting a %s position.

CANDIDATE PROFILE:
- Name: %s
- Education: %s, %s at %s
- Target Role: %s
- Career Goal: %s
- Current Skills: %s
- Interests: %s
- Experience Level: %s
- Has Done Projects: %s
- Has Internship Experience: %s
- Certifications: %s

RESUME TO ANALYZE:
%s

Provide a comprehensive, detailed analysis in a conversational yet professional tone. Structure your response with these sections:

📊 OVERALL ASSESSMENT
Give an overall score out of 100 and explain what this score means. Be honest but encouraging.

💪 STRENGTHS
Highlight what's working well in this resume. Be specific - mention actual content from their resume. What would make recruiters interested?

⚠️ AREAS FOR IMPROVEMENT
What's holding this resume back? Be constructive and specific. Point out gaps, unclear sections, or missed opportunities.

🎯 SKILLS ALIGNMENT CHECK
Compare the resume against their profile:
- Which of their skills (%s) are well-represented?
- Which skills are missing or underrepresented?
- Are there skills in the resume that don't match their target role of %s?
- Does the resume align with their goal: "%s"?

🤖 ATS (Applicant Tracking System) COMPATIBILITY
Will this resume pass ATS systems? Check for:
- Keyword optimization for %s
- Format issues (tables, images, columns that ATS can't read)
- Standard section headings
- Specific improvement suggestions

✍️ SPECIFIC RECOMMENDATIONS
Give 5-7 actionable suggestions with examples:
- What sections to add/remove/modify
- How to rephrase bullet points (give before/after examples)
- What keywords to include
- How to better showcase projects/internships

🎓 TAILORING FOR %s
How can they make this resume more appealing for %s positions specifically? What do recruiters in this field look for?

📝 FINAL VERDICT
Summarize: Is this resume ready to send? What's the priority fix? What's the potential if they implement your suggestions?

Write in a helpful, encouraging tone. Be specific and reference actual content from their resume. Give examples where possible.`,
		profile.CareerRole,
		utils.GetStringOrDefault(profile.Name, "Candidate"),
		profile.Degree, profile.Year, profile.College,
		profile.CareerRole,
		profile.CareerGoal,
		skills,
		strings.Join(profile.Interests, ", "),
		profile.ExperienceLevel,
		utils.YesNo(profile.HasProjects),
		utils.YesNo(profile.HasInternships),
		utils.GetStringOrDefault(profile.Certifications, "None mentioned"),
		resumeText,
		skills,
		profile.CareerRole,
		profile.CareerGoal,
		profile.CareerRole,
		profile.CareerRole,
		profile.CareerRole,
	)
}

// BuildRecommendationsPrompt produces the personalized recommendations
// instruction. The response contract demands bare JSON with job, mentor, and
// learning sections all present.
func BuildRecommendationsPrompt(profile *models.Profile) string {
	interests := "Not specified"
	if len(profile.Interests) > 0 {
		interests = strings.Join(profile.Interests, ", ")
	}

	return fmt.Sprintf(`
You are an AI career recommendation agent.

You MUST return ONLY valid JSON.
DO NOT include explanations, markdown, or extra text.

Return JSON strictly in this format:
{
  "job": {
    "title": "",
    "company": "",
    "match": number,
    "applyUrl": ""
  },
  "mentor": {
    "reason": "",
    "ctaRoute": "/mentors"
  },
  "learning": {
    "task": "",
    "ctaRoute": "/learning-path"
  }
}

USER PROFILE:
- Education: %s, %s
- College: %s
- Target Role: %s
- Skills: %s
- Interests: %s
- Has Projects: %s
- Has Internships: %s

Rules:
- Job applyUrl MUST be a REAL public careers page (Google, Microsoft, Amazon, etc.)
- Mentor suggestion should explain WHY (1 line)
- Learning task should be actionable (not generic)

Return only JSON.
`,
		profile.Degree, profile.Year,
		profile.College,
		profile.CareerRole,
		strings.Join(profile.Skills, ", "),
		interests,
		utils.YesNo(profile.HasProjects),
		utils.YesNo(profile.HasInternships),
	)
}
