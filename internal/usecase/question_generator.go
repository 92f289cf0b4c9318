package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fadilmartias/cv-assistant/internal/model"
	"github.com/fadilmartias/cv-assistant/internal/util"
)

const maxMissingSkillQuestions = 3

type rawQuestion struct {
	Type     string `json:"type"`
	Question string `json:"question"`
	Purpose  string `json:"purpose"`
	Priority string `json:"priority"`
}

// GenerateQuestions returns between 10 and 15 questions that collect the
// information the CV is missing for this job.
func (uc *AssistantUsecase) GenerateQuestions(ctx context.Context, job model.JobAnalysis, match *model.CVMatchAnalysis, cvContent string) ([]model.GeneratedQuestion, error) {
	info := ExtractCVInfo(cvContent)

	var questions []model.GeneratedQuestion
	res, err := uc.generator.Complete(ctx, questionsPrompt(job, match, info), questionsMaxTokens)
	switch {
	case err != nil:
		if !uc.degrade("generate_questions", err) {
			return nil, err
		}
	default:
		questions, err = parseQuestions(res.Text, info)
		if err != nil {
			uc.degrade("generate_questions", fmt.Errorf("model %s: %w", res.Model, err))
		}
	}

	templates := TemplateQuestions(job, match, info)
	if len(questions) == 0 {
		return completeQuestions(templates, nil), nil
	}
	return completeQuestions(questions, templates), nil
}

func parseQuestions(text string, info model.ExtractedCVInfo) ([]model.GeneratedQuestion, error) {
	span, ok := util.ExtractJSONArray(text)
	if !ok {
		return nil, errNoJSON
	}
	var raw []rawQuestion
	if err := json.Unmarshal([]byte(span), &raw); err != nil {
		return nil, fmt.Errorf("failed to decode questions: %w", err)
	}

	questions := make([]model.GeneratedQuestion, 0, len(raw))
	for _, r := range raw {
		qType := model.QuestionType(strings.TrimSpace(r.Type))
		body := strings.TrimSpace(r.Question)
		if !qType.Valid() || body == "" || alreadyKnown(qType, info) {
			continue
		}
		priority := model.Priority(strings.ToLower(strings.TrimSpace(r.Priority)))
		if !priority.Valid() {
			priority = model.PriorityMedium
		}
		questions = append(questions, model.GeneratedQuestion{
			Type:     qType,
			Question: body,
			Purpose:  strings.TrimSpace(r.Purpose),
			Priority: priority,
		})
	}
	return questions, nil
}

// alreadyKnown drops questions whose answer the CV already contains.
func alreadyKnown(t model.QuestionType, info model.ExtractedCVInfo) bool {
	return t == model.QuestionPersonalInfo && info.HasPersonalInfo
}

// completeQuestions tops up from the templates, pads with generic
// experience questions and truncates so the count is within bounds.
func completeQuestions(questions, templates []model.GeneratedQuestion) []model.GeneratedQuestion {
	seen := make(map[string]bool, len(questions))
	for _, q := range questions {
		seen[strings.ToLower(q.Question)] = true
	}
	for _, t := range templates {
		if len(questions) >= model.MinQuestions {
			break
		}
		if seen[strings.ToLower(t.Question)] {
			continue
		}
		seen[strings.ToLower(t.Question)] = true
		questions = append(questions, t)
	}
	for n := 1; len(questions) < model.MinQuestions; n++ {
		questions = append(questions, model.GeneratedQuestion{
			Type:     model.QuestionExperience,
			Question: fmt.Sprintf("Tell me about another experience or project that shows you fit this role (%d).", n),
			Purpose:  "Collect additional evidence for the CV",
			Priority: model.PriorityLow,
		})
	}
	if len(questions) > model.MaxQuestions {
		questions = questions[:model.MaxQuestions]
	}
	// Answers are keyed by id, so ids follow the final order.
	for i := range questions {
		questions[i].ID = fmt.Sprintf("q%d", i+1)
	}
	return questions
}

// TemplateQuestions builds questions without a provider call, conditioned
// on what the CV already contains.
func TemplateQuestions(job model.JobAnalysis, match *model.CVMatchAnalysis, info model.ExtractedCVInfo) []model.GeneratedQuestion {
	qs := []model.GeneratedQuestion{}
	add := func(t model.QuestionType, p model.Priority, question, purpose string) {
		qs = append(qs, model.GeneratedQuestion{Type: t, Question: question, Purpose: purpose, Priority: p})
	}

	if !info.HasPersonalInfo {
		add(model.QuestionPersonalInfo, model.PriorityHigh,
			"What is your full name, email address and phone number?",
			"Contact details for the CV header")
		add(model.QuestionPersonalInfo, model.PriorityMedium,
			"Where are you based, and do you have a LinkedIn or portfolio link?",
			"Location and online presence")
	}

	if info.HasExperience {
		add(model.QuestionExperience, model.PriorityHigh,
			"Which achievement in your recent roles are you most proud of, and what measurable result did it have?",
			"Quantified impact for the experience section")
	} else {
		add(model.QuestionExperience, model.PriorityHigh,
			"What is your most recent job title, employer and period of employment?",
			"Build the experience section")
		add(model.QuestionExperience, model.PriorityHigh,
			"What were your main responsibilities and achievements in that role?",
			"Describe impact in the experience section")
	}
	for i, req := range job.Requirements {
		if i == 2 {
			break
		}
		add(model.QuestionExperience, model.PriorityMedium,
			fmt.Sprintf("Can you describe a situation where you demonstrated this: %s?", req),
			"Evidence for a stated job requirement")
	}

	if !info.HasEducation {
		add(model.QuestionEducation, model.PriorityHigh,
			"What is your highest level of education, the institution and the year you graduated?",
			"Build the education section")
	}

	if !info.HasSkills {
		add(model.QuestionSkills, model.PriorityHigh,
			"Which tools, technologies or methods are you most proficient in?",
			"Build the skills section")
	}
	if match != nil {
		for i, skill := range match.MissingSkills {
			if i == maxMissingSkillQuestions {
				break
			}
			add(model.QuestionSkills, model.PriorityHigh,
				fmt.Sprintf("Do you have any experience with %s? If so, where did you use it?", skill),
				"Close a skill gap against the job")
		}
	}

	add(model.QuestionCertifications, model.PriorityMedium,
		"Do you hold any certifications or completed courses relevant to this role?",
		"Certifications section")
	add(model.QuestionLanguages, model.PriorityLow,
		"Which languages do you speak, and at what level?",
		"Languages section")
	add(model.QuestionSummary, model.PriorityMedium,
		fmt.Sprintf("In two or three sentences, why are you a strong fit for a %s role in %s?",
			valueOr(job.CandidateProfile.ExperienceLevel, "this"), valueOr(job.Industry, "this industry")),
		"Professional summary")
	return qs
}

func valueOr(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
