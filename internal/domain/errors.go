package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUpload          = errors.New("failed to upload asset")
	ErrSubmit          = errors.New("failed to submit extraction job")
	ErrJob             = errors.New("extraction job failed")
	ErrFetch           = errors.New("failed to fetch job result")
	ErrMissingManifest = errors.New("no JSON file found in the zip")
	ErrParse           = errors.New("failed to parse extraction manifest")
)

// ExtractionError reports a failed extraction of a single uploaded file.
type ExtractionError struct {
	Filename string
	Err      error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("%s: %v", e.Filename, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}
