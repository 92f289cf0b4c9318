package usecase

import "errors"

var (
	errNoJSON = errors.New("no JSON found in model output")

	// ErrCoverLetterDisabled is returned by every cover letter request.
	ErrCoverLetterDisabled = errors.New("cover letter generation is currently disabled")
)
