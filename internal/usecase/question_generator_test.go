package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/fadilmartias/cv-assistant/internal/config"
	"github.com/fadilmartias/cv-assistant/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertQuestionBounds(t *testing.T, qs []model.GeneratedQuestion) {
	t.Helper()
	assert.GreaterOrEqual(t, len(qs), model.MinQuestions)
	assert.LessOrEqual(t, len(qs), model.MaxQuestions)
	for _, q := range qs {
		assert.NotEmpty(t, q.ID)
		assert.NotEmpty(t, q.Question)
		assert.True(t, q.Type.Valid(), q.Type)
		assert.True(t, q.Priority.Valid(), q.Priority)
	}
}

func TestGenerateQuestions_AIFiltersAndTopsUp(t *testing.T) {
	gen := &fakeGenerator{text: `[
		{"id": "a1", "type": "personal_info", "question": "What is your email?", "purpose": "contact", "priority": "high"},
		{"type": "experience", "question": "Describe your Go work.", "purpose": "evidence", "priority": "urgent"},
		{"type": "hobbies", "question": "Do you ski?", "priority": "low"},
		{"type": "skills", "question": "  ", "priority": "low"}
	]`}
	uc := newTestUsecase(gen, nil, tokenFound)

	qs, err := uc.GenerateQuestions(context.Background(), testJob(), nil, sampleCV)
	require.NoError(t, err)
	assertQuestionBounds(t, qs)

	assert.Equal(t, "Describe your Go work.", qs[0].Question)
	assert.Equal(t, model.PriorityMedium, qs[0].Priority)
	assert.Equal(t, "q1", qs[0].ID)
	for _, q := range qs {
		assert.NotEqual(t, model.QuestionPersonalInfo, q.Type)
		assert.NotEqual(t, "Do you ski?", q.Question)
	}
}

func TestGenerateQuestions_TruncatesToMax(t *testing.T) {
	var items []string
	for i := 0; i < 20; i++ {
		items = append(items, fmt.Sprintf(`{"type":"experience","question":"Question %d?","priority":"high"}`, i))
	}
	gen := &fakeGenerator{text: "[" + strings.Join(items, ",") + "]"}
	uc := newTestUsecase(gen, nil, tokenFound)

	qs, err := uc.GenerateQuestions(context.Background(), testJob(), nil, "")
	require.NoError(t, err)
	assert.Len(t, qs, model.MaxQuestions)
	assert.Equal(t, "q15", qs[14].ID)
}

func TestGenerateQuestions_ProviderFailureUsesTemplates(t *testing.T) {
	uc := newTestUsecase(&fakeGenerator{err: exhausted()}, nil, tokenFound)

	match := &model.CVMatchAnalysis{MissingSkills: []string{"Terraform", "Rust", "Kafka", "Scala"}}
	qs, err := uc.GenerateQuestions(context.Background(), testJob(), match, "")
	require.NoError(t, err)
	assertQuestionBounds(t, qs)

	skillQuestions := 0
	for _, q := range qs {
		if q.Type == model.QuestionSkills && strings.HasPrefix(q.Question, "Do you have any experience with") {
			skillQuestions++
		}
	}
	assert.Equal(t, 3, skillQuestions)
}

func TestGenerateQuestions_MissingCredential(t *testing.T) {
	uc := newTestUsecase(&fakeGenerator{err: config.ErrNoCredential}, nil, tokenMissing)

	_, err := uc.GenerateQuestions(context.Background(), testJob(), nil, "")
	assert.True(t, errors.Is(err, config.ErrNoCredential))
}

func TestTemplateQuestions_SkipsKnownPersonalInfo(t *testing.T) {
	info := ExtractCVInfo(sampleCV)
	require.True(t, info.HasPersonalInfo)

	qs := completeQuestions(nil, TemplateQuestions(testJob(), nil, info))
	assertQuestionBounds(t, qs)
	for _, q := range qs {
		assert.NotEqual(t, model.QuestionPersonalInfo, q.Type)
	}
}

func TestTemplateQuestions_EmptyCVAsksEverything(t *testing.T) {
	qs := TemplateQuestions(model.JobAnalysis{}, nil, ExtractCVInfo(""))

	types := map[model.QuestionType]bool{}
	for _, q := range qs {
		types[q.Type] = true
	}
	for _, want := range []model.QuestionType{
		model.QuestionPersonalInfo, model.QuestionExperience, model.QuestionEducation,
		model.QuestionSkills, model.QuestionCertifications, model.QuestionLanguages, model.QuestionSummary,
	} {
		assert.True(t, types[want], want)
	}
}

func TestCompleteQuestions_PadsToMinimum(t *testing.T) {
	qs := completeQuestions(nil, nil)
	assert.Len(t, qs, model.MinQuestions)
	assert.Equal(t, "q1", qs[0].ID)
	assert.Equal(t, model.QuestionExperience, qs[9].Type)
}

func TestGenerateQuestions_IDsAreUniqueAfterFiltering(t *testing.T) {
	gen := &fakeGenerator{text: `[
		{"id": "q1", "type": "personal_info", "question": "What is your phone number?", "priority": "high"},
		{"id": "q2", "type": "experience", "question": "Describe your Go work.", "priority": "high"},
		{"id": "q3", "type": "skills", "question": "Which databases have you tuned?", "priority": "medium"}
	]`}
	uc := newTestUsecase(gen, nil, tokenFound)

	qs, err := uc.GenerateQuestions(context.Background(), testJob(), nil, sampleCV)
	require.NoError(t, err)
	assertQuestionBounds(t, qs)

	seen := map[string]int{}
	for i, q := range qs {
		prev, dup := seen[q.ID]
		assert.False(t, dup, "id %q at positions %d and %d", q.ID, prev, i)
		seen[q.ID] = i
		assert.Equal(t, fmt.Sprintf("q%d", i+1), q.ID)
	}
	assert.Equal(t, "Describe your Go work.", qs[0].Question)
	assert.Equal(t, "Which databases have you tuned?", qs[1].Question)
}
