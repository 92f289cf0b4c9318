package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/fadilmartias/cv-assistant/internal/model"
	"github.com/fadilmartias/cv-assistant/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCV_Success(t *testing.T) {
	gen := &fakeGenerator{text: "```markdown\n# Jane Doe\nBackend engineer\n```", model: "fallback/model"}
	uc := newTestUsecase(gen, nil, tokenFound)

	job := testJob()
	data := model.CVData{PersonalInfo: model.PersonalInfo{FullName: "Jane Doe"}, Skills: []string{"Go"}}
	result, err := uc.GenerateCV(context.Background(), goJob, data, &job)
	require.NoError(t, err)
	require.NotNil(t, result.GeneratedCV)

	assert.Equal(t, "# Jane Doe\nBackend engineer", *result.GeneratedCV)
	assert.Equal(t, model.StatusCompleted, result.Status)
	assert.Equal(t, 100, result.Progress)
	assert.Equal(t, "fallback/model", result.Model)
	assert.Nil(t, result.CoverLetter)
	assert.Equal(t, fixedNow, result.StartedAt)

	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], "Jane Doe")
	assert.Contains(t, gen.prompts[0], "Senior level")
}

func TestGenerateCV_Exhausted(t *testing.T) {
	uc := newTestUsecase(&fakeGenerator{err: exhausted()}, nil, tokenFound)

	result, err := uc.GenerateCV(context.Background(), goJob, model.CVData{Skills: []string{"Go"}}, nil)
	var exhaustedErr *service.ExhaustedError
	require.True(t, errors.As(err, &exhaustedErr))
	assert.Equal(t, []string{"a", "b"}, exhaustedErr.Models())
	require.NotNil(t, result)
	assert.Equal(t, model.StatusError, result.Status)
	assert.Nil(t, result.GeneratedCV)
}

func TestGenerateCoverLetter_AlwaysDisabled(t *testing.T) {
	uc := newTestUsecase(&fakeGenerator{text: "Dear hiring manager"}, nil, tokenFound)

	_, err := uc.GenerateCoverLetter(context.Background(), goJob, model.CVData{})
	assert.ErrorIs(t, err, ErrCoverLetterDisabled)
	assert.Equal(t, "cover letter generation is currently disabled", err.Error())
}

func TestStripCodeFence(t *testing.T) {
	assert.Equal(t, "body", stripCodeFence("```\nbody\n```"))
	assert.Equal(t, "plain text", stripCodeFence("  plain text "))
}
