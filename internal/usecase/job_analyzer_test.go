package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/fadilmartias/cv-assistant/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeJob_AIResponse(t *testing.T) {
	gen := &fakeGenerator{text: `Here is the analysis:
{"businessType":"Payments","industry":"Fintech","candidateProfile":{"experienceLevel":"Senior","keySkills":["Go","PostgreSQL"],"traits":["ownership"],"education":"Bachelor"},"requirements":["5+ years Go"],"writingStyle":{"tone":"confident","formality":"formal","keywords":["payments"]}}
Good luck!`}
	uc := newTestUsecase(gen, nil, tokenFound)

	job, err := uc.AnalyzeJob(context.Background(), goJob)
	require.NoError(t, err)
	assert.Equal(t, "ai", job.Source)
	assert.Equal(t, "Fintech", job.Industry)
	assert.Equal(t, []string{"Go", "PostgreSQL"}, job.CandidateProfile.KeySkills)
	assert.NotNil(t, job.Values)
	assert.NotNil(t, job.DomainStandards)
	assert.NotNil(t, job.MissingInfo)
	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], goJob)
}

func TestAnalyzeJob_UnparseableFallsBackToHeuristic(t *testing.T) {
	uc := newTestUsecase(&fakeGenerator{text: "I cannot help with that."}, nil, tokenFound)

	job, err := uc.AnalyzeJob(context.Background(), goJob)
	require.NoError(t, err)
	assert.Equal(t, "heuristic", job.Source)
	assert.Contains(t, job.CandidateProfile.KeySkills, "Go")
}

func TestAnalyzeJob_ExhaustionFallsBackToHeuristic(t *testing.T) {
	uc := newTestUsecase(&fakeGenerator{err: exhausted()}, nil, tokenFound)

	job, err := uc.AnalyzeJob(context.Background(), goJob)
	require.NoError(t, err)
	assert.Equal(t, "heuristic", job.Source)
}

func TestAnalyzeJob_MissingCredentialIsSurfaced(t *testing.T) {
	uc := newTestUsecase(&fakeGenerator{err: config.ErrNoCredential}, nil, tokenMissing)

	_, err := uc.AnalyzeJob(context.Background(), goJob)
	assert.True(t, errors.Is(err, config.ErrNoCredential))
}

func TestHeuristicJobAnalysis(t *testing.T) {
	job := HeuristicJobAnalysis(goJob)

	assert.Equal(t, "Fintech", job.Industry)
	assert.Equal(t, "Senior", job.CandidateProfile.ExperienceLevel)
	assert.Subset(t, job.CandidateProfile.KeySkills, []string{"Go", "PostgreSQL", "Redis", "Kubernetes", "AWS"})
	assert.Contains(t, job.CandidateProfile.Traits, "ownership")
	assert.Contains(t, job.Values, "transparency")
	assert.Contains(t, job.Requirements, "5+ years of experience building services in Go")
	assert.Contains(t, job.Requirements, "Strong knowledge of PostgreSQL and Redis")
	assert.Contains(t, job.DomainStandards, "PCI DSS")
	assert.Contains(t, job.MissingInfo, "salary range")
	assert.NotContains(t, job.MissingInfo, "work location")
	assert.Equal(t, "semi-formal", job.WritingStyle.Formality)
}

func TestHeuristicJobAnalysis_EmptyInputHasArrays(t *testing.T) {
	job := HeuristicJobAnalysis("")
	assert.NotNil(t, job.CandidateProfile.KeySkills)
	assert.NotNil(t, job.Requirements)
	assert.NotNil(t, job.WritingStyle.Keywords)
	assert.Equal(t, "General", job.Industry)
	assert.Equal(t, "Mid-level", job.CandidateProfile.ExperienceLevel)
}
