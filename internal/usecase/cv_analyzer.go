package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/fadilmartias/cv-assistant/internal/model"
	"github.com/fadilmartias/cv-assistant/internal/util"
	"github.com/tidwall/gjson"
)

const (
	skillWeight       = 40
	requirementWeight = 40
	keywordWeight     = 20
	lengthBonus       = 5
	lengthBonusChars  = 500
)

// AnalyzeCV scores how well a CV fits a job. The AI result is only kept
// when its matchScore is present and within bounds.
func (uc *AssistantUsecase) AnalyzeCV(ctx context.Context, jobDescription, cvContent string, job model.JobAnalysis) (model.CVMatchAnalysis, error) {
	if strings.TrimSpace(cvContent) == "" {
		return HeuristicCVMatch(jobDescription, cvContent, job), nil
	}

	res, err := uc.generator.Complete(ctx, cvMatchPrompt(jobDescription, cvContent, job), analysisMaxTokens)
	if err != nil {
		if !uc.degrade("analyze_cv", err) {
			return model.CVMatchAnalysis{}, err
		}
		return HeuristicCVMatch(jobDescription, cvContent, job), nil
	}

	match, err := parseCVMatch(res.Text)
	if err != nil {
		uc.degrade("analyze_cv", fmt.Errorf("model %s: %w", res.Model, err))
		return HeuristicCVMatch(jobDescription, cvContent, job), nil
	}
	return match, nil
}

// aiMatch accepts fractional scores from the model.
type aiMatch struct {
	model.CVMatchAnalysis
	MatchScore float64 `json:"matchScore"`
}

func parseCVMatch(text string) (model.CVMatchAnalysis, error) {
	span, ok := util.ExtractJSONObject(text)
	if !ok {
		return model.CVMatchAnalysis{}, errNoJSON
	}

	score := gjson.Get(span, "matchScore")
	if !score.Exists() || score.Type != gjson.Number {
		return model.CVMatchAnalysis{}, fmt.Errorf("matchScore missing or not a number")
	}
	if score.Float() < model.MinMatchScore || score.Float() > model.MaxMatchScore {
		return model.CVMatchAnalysis{}, fmt.Errorf("matchScore %v out of range", score.Float())
	}

	var raw aiMatch
	if err := json.Unmarshal([]byte(span), &raw); err != nil {
		return model.CVMatchAnalysis{}, fmt.Errorf("failed to decode cv match: %w", err)
	}
	match := raw.CVMatchAnalysis
	match.MatchScore = int(math.Round(raw.MatchScore))
	match.Source = sourceAI
	match.Normalize()
	return match, nil
}

// HeuristicCVMatch scores a CV by keyword coverage:
// 40 x skill coverage + 40 x requirement coverage + 20 x keyword overlap,
// plus a flat bonus for CVs longer than 500 characters.
func HeuristicCVMatch(jobDescription, cvContent string, job model.JobAnalysis) model.CVMatchAnalysis {
	cvLower := strings.ToLower(cvContent)
	match := model.CVMatchAnalysis{Source: sourceHeuristic}

	for _, skill := range job.CandidateProfile.KeySkills {
		if strings.Contains(cvLower, strings.ToLower(skill)) {
			match.MatchedSkills = append(match.MatchedSkills, skill)
		} else {
			match.MissingSkills = append(match.MissingSkills, skill)
		}
	}

	for _, req := range job.Requirements {
		if requirementMatched(cvLower, req) {
			match.MatchedRequirements = append(match.MatchedRequirements, req)
		} else {
			match.MissingRequirements = append(match.MissingRequirements, req)
		}
	}

	keywords := job.WritingStyle.Keywords
	if len(keywords) == 0 {
		keywords = significantWords(jobDescription)
	}
	keywordHits := 0
	for _, kw := range keywords {
		if strings.Contains(cvLower, strings.ToLower(kw)) {
			keywordHits++
		}
	}

	score := skillWeight*coverage(len(match.MatchedSkills), len(job.CandidateProfile.KeySkills)) +
		requirementWeight*coverage(len(match.MatchedRequirements), len(job.Requirements)) +
		keywordWeight*coverage(keywordHits, len(keywords))
	if len(cvContent) > lengthBonusChars {
		score += lengthBonus
	}
	match.MatchScore = model.ClampScore(int(math.Round(score)))

	match.SemanticGaps = semanticGaps(match, job)
	match.Recommendations = recommendations(match)
	match.Normalize()
	return match
}

func coverage(hits, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(hits) / float64(total)
}

// requirementMatched is true when any word longer than four characters from
// the requirement appears in the CV.
func requirementMatched(cvLower, requirement string) bool {
	for _, w := range significantWords(requirement) {
		if strings.Contains(cvLower, w) {
			return true
		}
	}
	return false
}

func semanticGaps(match model.CVMatchAnalysis, job model.JobAnalysis) []string {
	gaps := []string{}
	for i, skill := range match.MissingSkills {
		if i == 3 {
			break
		}
		gaps = append(gaps, fmt.Sprintf("No evidence of %s in the CV", skill))
	}
	if len(match.MissingRequirements) > 0 && job.CandidateProfile.ExperienceLevel != "" {
		gaps = append(gaps, fmt.Sprintf("The CV does not yet show %s level responsibilities for every requirement", job.CandidateProfile.ExperienceLevel))
	}
	return gaps
}

func recommendations(match model.CVMatchAnalysis) []string {
	recs := []string{}
	for i, skill := range match.MissingSkills {
		if i == 3 {
			break
		}
		recs = append(recs, fmt.Sprintf("Highlight any experience with %s, even from side projects or training", skill))
	}
	for i, req := range match.MissingRequirements {
		if i == 3 {
			break
		}
		recs = append(recs, fmt.Sprintf("Add an example that addresses: %s", req))
	}
	if match.MatchScore < 50 {
		recs = append(recs, "Mirror the wording of the job description in your summary and experience bullets")
	}
	return recs
}
