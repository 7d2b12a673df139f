package applications

import (
	"context"
	"sort"
	"sync"

	"skillbridge/internal/profiles"
)

// CandidateResolver fetches the candidate profile behind an application.
type CandidateResolver func(ctx context.Context, candidateID string) (profiles.Candidate, error)

// EmailResolver fetches the account email for a user id.
type EmailResolver func(ctx context.Context, userID string) (string, error)

type MemoryRepo struct {
	mu           sync.RWMutex
	applications map[string]Application
	candidate    CandidateResolver
	email        EmailResolver
}

func NewMemoryRepo(candidate CandidateResolver, email EmailResolver) *MemoryRepo {
	return &MemoryRepo{
		applications: make(map[string]Application),
		candidate:    candidate,
		email:        email,
	}
}

func (r *MemoryRepo) Create(ctx context.Context, application Application) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.applications {
		if existing.CandidateID == application.CandidateID && existing.JobID == application.JobID {
			return ErrAlreadyApplied
		}
	}
	r.applications[application.ID] = application
	return nil
}

func (r *MemoryRepo) ListByCandidate(ctx context.Context, candidateID string) ([]Ref, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	refs := make([]Ref, 0)
	for _, application := range r.applications {
		if application.CandidateID == candidateID {
			refs = append(refs, Ref{ID: application.ID, JobID: application.JobID})
		}
	}
	return refs, nil
}

func (r *MemoryRepo) ListByJob(ctx context.Context, jobID string) ([]Applicant, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	matched := make([]Application, 0)
	for _, application := range r.applications {
		if application.JobID == jobID {
			matched = append(matched, application)
		}
	}
	r.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	applicants := make([]Applicant, 0, len(matched))
	for _, application := range matched {
		item := Applicant{Application: application}
		if r.candidate != nil {
			candidate, err := r.candidate(ctx, application.CandidateID)
			if err != nil && err != profiles.ErrNotFound {
				return nil, err
			}
			item.Candidate.Candidate = candidate
			if r.email != nil && candidate.UserID != "" {
				email, err := r.email(ctx, candidate.UserID)
				if err == nil {
					item.Candidate.User.Email = email
				}
			}
		}
		applicants = append(applicants, item)
	}
	return applicants, nil
}

var _ Repo = (*MemoryRepo)(nil)
