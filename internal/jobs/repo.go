package jobs

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("job not found")

type Repo interface {
	Create(ctx context.Context, job Job) error
	GetByID(ctx context.Context, jobID string) (Job, error)
	// List returns every posting newest-first with its owning recruiter.
	List(ctx context.Context) ([]JobWithRecruiter, error)
	// Update replaces the mutable fields of the recruiter's own posting.
	// ErrNotFound covers both a missing job and a job owned by someone else.
	Update(ctx context.Context, job Job) (Job, error)
	Delete(ctx context.Context, jobID string) error
}
