package match

import (
	"errors"
	"fmt"
)

var ErrInvalidInput = errors.New("missing resume url or job description")

// FetchError means the resume could not be downloaded from its stored URL.
// The caller passed a bad or stale URL, so this maps to a client error.
type FetchError struct {
	URL    string
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetch resume %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("fetch resume %s: status %d", e.URL, e.Status)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ModelError means the scoring service answered with a non-success status.
// Details carries the upstream response body verbatim.
type ModelError struct {
	Status  int
	Details string
}

func (e *ModelError) Error() string {
	return fmt.Sprintf("scoring service returned %d: %s", e.Status, e.Details)
}
