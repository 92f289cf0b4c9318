package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/fadilmartias/cv-assistant/internal/model"
	"github.com/fadilmartias/cv-assistant/internal/util"
)

const maxHeuristicRequirements = 15

var (
	bulletPattern      = regexp.MustCompile(`^\s*(?:[-*•▪●]|\d+[.)])\s+`)
	requirementMarkers = []string{"experience", "required", "must", "knowledge of", "proficien", "ability to", "degree", "familiar", "understanding of", "years"}

	domainStandards = map[string][]string{
		"Fintech":    {"PCI DSS", "KYC/AML", "SOC 2"},
		"Healthcare": {"HIPAA", "HL7/FHIR"},
		"E-commerce": {"PCI DSS", "GDPR"},
		"Software":   {"OWASP", "SOC 2"},
		"Education":  {"FERPA"},
		"Logistics":  {"ISO 9001"},
	}
)

// AnalyzeJob extracts structured requirements from a job description. AI
// output that cannot be parsed is replaced by the keyword heuristic.
func (uc *AssistantUsecase) AnalyzeJob(ctx context.Context, jobDescription string) (model.JobAnalysis, error) {
	res, err := uc.generator.Complete(ctx, jobAnalysisPrompt(jobDescription), analysisMaxTokens)
	if err != nil {
		if !uc.degrade("analyze_job", err) {
			return model.JobAnalysis{}, err
		}
		return HeuristicJobAnalysis(jobDescription), nil
	}

	analysis, err := parseJobAnalysis(res.Text)
	if err != nil {
		uc.degrade("analyze_job", fmt.Errorf("model %s: %w", res.Model, err))
		return HeuristicJobAnalysis(jobDescription), nil
	}
	return analysis, nil
}

func parseJobAnalysis(text string) (model.JobAnalysis, error) {
	span, ok := util.ExtractJSONObject(text)
	if !ok {
		return model.JobAnalysis{}, errNoJSON
	}
	var analysis model.JobAnalysis
	if err := json.Unmarshal([]byte(span), &analysis); err != nil {
		return model.JobAnalysis{}, fmt.Errorf("failed to decode job analysis: %w", err)
	}
	if len(analysis.CandidateProfile.KeySkills) == 0 && len(analysis.Requirements) == 0 {
		return model.JobAnalysis{}, fmt.Errorf("job analysis has neither skills nor requirements")
	}
	analysis.Source = sourceAI
	analysis.Normalize()
	return analysis, nil
}

// HeuristicJobAnalysis builds a JobAnalysis from dictionary matches alone.
func HeuristicJobAnalysis(jobDescription string) model.JobAnalysis {
	lower := strings.ToLower(jobDescription)
	industry, businessType := detectIndustry(lower)
	skills := findTerms(jobDescription, skillDictionary)

	keywords := skills
	if len(keywords) > 10 {
		keywords = keywords[:10]
	}

	analysis := model.JobAnalysis{
		BusinessType: businessType,
		Industry:     industry,
		CandidateProfile: model.CandidateProfile{
			ExperienceLevel: detectSeniority(lower),
			KeySkills:       skills,
			Traits:          findTerms(jobDescription, traitDictionary),
			Education:       detectEducation(lower),
		},
		Values:       findTerms(jobDescription, valueDictionary),
		Requirements: extractRequirements(jobDescription),
		WritingStyle: model.WritingStyle{
			Tone:      "professional",
			Formality: detectFormality(lower),
			Keywords:  append([]string{}, keywords...),
		},
		DomainStandards: append([]string{}, domainStandards[industry]...),
		MissingInfo:     detectMissingInfo(lower),
		Source:          sourceHeuristic,
	}
	analysis.Normalize()
	return analysis
}

func detectIndustry(lower string) (string, string) {
	for _, entry := range industryKeywords {
		if containsAny(lower, entry.keywords) {
			return entry.industry, entry.businessType
		}
	}
	return "General", "Not specified"
}

func detectSeniority(lower string) string {
	for _, entry := range seniorityLevels {
		if containsAny(lower, entry.keywords) {
			return entry.level
		}
	}
	return "Mid-level"
}

func detectEducation(lower string) string {
	switch {
	case strings.Contains(lower, "phd") || strings.Contains(lower, "doctorate"):
		return "PhD or equivalent"
	case strings.Contains(lower, "master") || strings.Contains(lower, "mba"):
		return "Master's degree or equivalent"
	case containsAny(lower, educationKeywords):
		return "Bachelor's degree or equivalent"
	}
	return "Not specified"
}

func detectFormality(lower string) string {
	if containsAny(lower, []string{"startup", "fun", "rockstar", "ninja", "casual"}) {
		return "semi-formal"
	}
	return "formal"
}

func detectMissingInfo(lower string) []string {
	missing := []string{}
	if !containsAny(lower, []string{"salary", "compensation", "$", "€", "pay range"}) {
		missing = append(missing, "salary range")
	}
	if !containsAny(lower, []string{"remote", "hybrid", "on-site", "onsite", "location", "office"}) {
		missing = append(missing, "work location")
	}
	if !containsAny(lower, []string{"team of", "team size", "report to", "reporting to"}) {
		missing = append(missing, "team structure")
	}
	return missing
}

// extractRequirements keeps bullet lines and lines that read like a
// requirement.
func extractRequirements(jobDescription string) []string {
	reqs := []string{}
	seen := map[string]bool{}
	for _, line := range strings.Split(jobDescription, "\n") {
		isBullet := bulletPattern.MatchString(line)
		line = strings.TrimSpace(bulletPattern.ReplaceAllString(line, ""))
		if len(line) < 10 || len(line) > 300 || seen[line] {
			continue
		}
		if !isBullet && !containsAny(strings.ToLower(line), requirementMarkers) {
			continue
		}
		seen[line] = true
		reqs = append(reqs, line)
		if len(reqs) == maxHeuristicRequirements {
			break
		}
	}
	return reqs
}
