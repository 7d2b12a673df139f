package applications

import (
	"context"
	"errors"
)

var (
	ErrNotFound       = errors.New("application not found")
	ErrAlreadyApplied = errors.New("candidate already applied to this job")
)

type Repo interface {
	// Create stores a new application. A repeat (candidate, job) pair
	// returns ErrAlreadyApplied.
	Create(ctx context.Context, application Application) error
	// ListByCandidate returns the candidate's applications as slim refs.
	ListByCandidate(ctx context.Context, candidateID string) ([]Ref, error)
	// ListByJob returns a job's applicants newest-first with the candidate
	// profile and account email attached.
	ListByJob(ctx context.Context, jobID string) ([]Applicant, error)
}
