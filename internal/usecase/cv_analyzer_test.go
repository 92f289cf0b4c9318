package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/fadilmartias/cv-assistant/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJob() model.JobAnalysis {
	job := model.JobAnalysis{
		CandidateProfile: model.CandidateProfile{
			ExperienceLevel: "Senior",
			KeySkills:       []string{"Go", "PostgreSQL", "Kubernetes", "Terraform"},
		},
		Requirements: []string{"Experience designing payment systems", "Fluent Portuguese"},
		WritingStyle: model.WritingStyle{Keywords: []string{"payments", "reliability"}},
	}
	job.Normalize()
	return job
}

func TestAnalyzeCV_AIResponse(t *testing.T) {
	gen := &fakeGenerator{text: "```json\n{\"matchScore\": 72.6, \"matchedSkills\": [\"Go\"], \"missingSkills\": [\"Terraform\"]}\n```"}
	uc := newTestUsecase(gen, nil, tokenFound)

	match, err := uc.AnalyzeCV(context.Background(), goJob, sampleCV, testJob())
	require.NoError(t, err)
	assert.Equal(t, "ai", match.Source)
	assert.Equal(t, 73, match.MatchScore)
	assert.Equal(t, []string{"Go"}, match.MatchedSkills)
	assert.NotNil(t, match.SemanticGaps)
	assert.NotNil(t, match.Recommendations)
}

func TestAnalyzeCV_RejectsInvalidScores(t *testing.T) {
	cases := map[string]string{
		"missing":    `{"matchedSkills": ["Go"]}`,
		"too high":   `{"matchScore": 140}`,
		"negative":   `{"matchScore": -3}`,
		"not number": `{"matchScore": "high"}`,
	}
	for name, text := range cases {
		t.Run(name, func(t *testing.T) {
			uc := newTestUsecase(&fakeGenerator{text: text}, nil, tokenFound)
			match, err := uc.AnalyzeCV(context.Background(), goJob, sampleCV, testJob())
			require.NoError(t, err)
			assert.Equal(t, "heuristic", match.Source)
			assert.GreaterOrEqual(t, match.MatchScore, 0)
			assert.LessOrEqual(t, match.MatchScore, 100)
		})
	}
}

func TestAnalyzeCV_EmptyCVSkipsProvider(t *testing.T) {
	gen := &fakeGenerator{text: `{"matchScore": 90}`}
	uc := newTestUsecase(gen, nil, tokenFound)

	match, err := uc.AnalyzeCV(context.Background(), goJob, "", testJob())
	require.NoError(t, err)
	assert.Empty(t, gen.prompts)
	assert.Equal(t, 0, match.MatchScore)
	assert.Equal(t, testJob().CandidateProfile.KeySkills, match.MissingSkills)
}

func TestAnalyzeCV_ExhaustionFallsBackToHeuristic(t *testing.T) {
	uc := newTestUsecase(&fakeGenerator{err: exhausted()}, nil, tokenFound)

	match, err := uc.AnalyzeCV(context.Background(), goJob, sampleCV, testJob())
	require.NoError(t, err)
	assert.Equal(t, "heuristic", match.Source)
}

func TestHeuristicCVMatch_NoMatches(t *testing.T) {
	job := testJob()
	match := HeuristicCVMatch(goJob, "I like gardening.", job)

	assert.Equal(t, 0, match.MatchScore)
	assert.Empty(t, match.MatchedSkills)
	assert.NotNil(t, match.MatchedSkills)
	assert.Equal(t, job.CandidateProfile.KeySkills, match.MissingSkills)
	assert.Equal(t, job.Requirements, match.MissingRequirements)
}

func TestHeuristicCVMatch_Scoring(t *testing.T) {
	job := testJob()
	// 2 of 4 skills, 1 of 2 requirements, 1 of 2 keywords, short CV.
	cv := "Go and PostgreSQL developer who built payments systems."
	match := HeuristicCVMatch(goJob, cv, job)

	assert.Equal(t, []string{"Go", "PostgreSQL"}, match.MatchedSkills)
	assert.Equal(t, []string{"Experience designing payment systems"}, match.MatchedRequirements)
	assert.Equal(t, 50, match.MatchScore)

	long := cv + " " + strings.Repeat("filler ", 80)
	assert.Equal(t, 55, HeuristicCVMatch(goJob, long, job).MatchScore)
}

func TestHeuristicCVMatch_ScoreIsClamped(t *testing.T) {
	job := testJob()
	cv := strings.Repeat("Go PostgreSQL Kubernetes Terraform payment systems Portuguese payments reliability. ", 10)
	match := HeuristicCVMatch(goJob, cv, job)
	assert.Equal(t, 100, match.MatchScore)
}

func TestHeuristicCVMatch_EmptyJobLists(t *testing.T) {
	match := HeuristicCVMatch("", "some cv", model.JobAnalysis{})
	assert.Equal(t, 0, match.MatchScore)
	assert.NotNil(t, match.MissingSkills)
	assert.NotNil(t, match.Recommendations)
}
