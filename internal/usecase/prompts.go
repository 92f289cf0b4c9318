package usecase

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fadilmartias/cv-assistant/internal/model"
)

func jobAnalysisPrompt(jobDescription string) string {
	return fmt.Sprintf(`You are an experienced recruiter. Analyze the job description below.

Return your answer STRICTLY as one JSON object with this schema:
{
  "businessType": "<kind of business hiring>",
  "industry": "<industry>",
  "candidateProfile": {
    "experienceLevel": "<Junior | Mid-level | Senior | Lead | Executive>",
    "keySkills": ["<skill>"],
    "traits": ["<personal trait>"],
    "education": "<expected education>"
  },
  "values": ["<company value>"],
  "requirements": ["<explicit requirement>"],
  "writingStyle": {
    "tone": "<tone a CV should use>",
    "formality": "<formal | semi-formal | casual>",
    "keywords": ["<keyword a CV should contain>"]
  },
  "domainStandards": ["<industry standard or certification>"],
  "missingInfo": ["<information the posting does not give>"]
}

Job description:
%s
`, jobDescription)
}

func cvMatchPrompt(jobDescription, cvContent string, job model.JobAnalysis) string {
	return fmt.Sprintf(`You are an experienced recruiter. Compare the CV with the job.

Key skills: %s
Requirements:
%s

Return your answer STRICTLY as one JSON object with this schema:
{
  "matchScore": <integer 0-100>,
  "matchedSkills": ["<skill found in the CV>"],
  "missingSkills": ["<skill not found in the CV>"],
  "matchedRequirements": ["<requirement the CV satisfies>"],
  "missingRequirements": ["<requirement the CV does not satisfy>"],
  "semanticGaps": ["<gap in meaning, not just keywords>"],
  "recommendations": ["<concrete improvement for the CV>"]
}

Job description:
%s

CV:
%s
`, strings.Join(job.CandidateProfile.KeySkills, ", "), bulletList(job.Requirements), jobDescription, cvContent)
}

func questionsPrompt(job model.JobAnalysis, match *model.CVMatchAnalysis, info model.ExtractedCVInfo) string {
	matchSection := "No CV match analysis available."
	if match != nil {
		matchSection = fmt.Sprintf("Match score: %d\nMissing skills: %s\nMissing requirements:\n%s",
			match.MatchScore, strings.Join(match.MissingSkills, ", "), bulletList(match.MissingRequirements))
	}
	return fmt.Sprintf(`You help a candidate build a CV for this role: %s (%s, %s level).
Key skills: %s

%s

Information already present in the CV: personal info=%t, experience=%t, education=%t, skills=%t.
Do not ask for information that is already present.

Write between %d and %d interview questions that collect what is missing.
Return your answer STRICTLY as one JSON array:
[{"id": "q1", "type": "<personal_info | experience | education | skills | certifications | languages | summary>", "question": "<question>", "purpose": "<why it matters>", "priority": "<high | medium | low>"}]
`, job.BusinessType, job.Industry, job.CandidateProfile.ExperienceLevel,
		strings.Join(job.CandidateProfile.KeySkills, ", "), matchSection,
		info.HasPersonalInfo, info.HasExperience, info.HasEducation, info.HasSkills,
		model.MinQuestions, model.MaxQuestions)
}

func cvGenerationPrompt(jobDescription string, data model.CVData, job *model.JobAnalysis) string {
	background, _ := json.MarshalIndent(data, "", "  ")

	guidance := ""
	if job != nil {
		guidance = fmt.Sprintf(`
Target profile: %s level in %s.
Use a %s, %s tone and include these keywords where truthful: %s.
`, job.CandidateProfile.ExperienceLevel, job.Industry, job.WritingStyle.Tone, job.WritingStyle.Formality,
			strings.Join(job.WritingStyle.Keywords, ", "))
	}

	return fmt.Sprintf(`You are a professional CV writer. Write a complete, ATS-friendly CV in Markdown
for the candidate below, tailored to the job description.
Only use facts from the candidate background. Do not invent employers, dates or degrees.
%s
Job description:
%s

Candidate background (JSON):
%s
`, guidance, jobDescription, string(background))
}

func bulletList(items []string) string {
	if len(items) == 0 {
		return "- (none)"
	}
	var sb strings.Builder
	for i, item := range items {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("- ")
		sb.WriteString(item)
	}
	return sb.String()
}
