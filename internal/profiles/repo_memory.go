package profiles

import (
	"context"
	"sync"
)

type MemoryRepo struct {
	mu         sync.RWMutex
	candidates map[string]Candidate
	recruiters map[string]Recruiter
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		candidates: make(map[string]Candidate),
		recruiters: make(map[string]Recruiter),
	}
}

func (r *MemoryRepo) CreateCandidate(ctx context.Context, candidate Candidate) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.candidates[candidate.UserID]; ok {
		return ErrAlreadyOnboarded
	}
	if _, ok := r.recruiters[candidate.UserID]; ok {
		return ErrAlreadyOnboarded
	}
	r.candidates[candidate.UserID] = candidate
	return nil
}

func (r *MemoryRepo) CreateRecruiter(ctx context.Context, recruiter Recruiter) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.recruiters[recruiter.UserID]; ok {
		return ErrAlreadyOnboarded
	}
	if _, ok := r.candidates[recruiter.UserID]; ok {
		return ErrAlreadyOnboarded
	}
	r.recruiters[recruiter.UserID] = recruiter
	return nil
}

func (r *MemoryRepo) GetCandidateByUserID(ctx context.Context, userID string) (Candidate, error) {
	if err := ctx.Err(); err != nil {
		return Candidate{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	candidate, ok := r.candidates[userID]
	if !ok {
		return Candidate{}, ErrNotFound
	}
	return candidate, nil
}

func (r *MemoryRepo) GetRecruiterByUserID(ctx context.Context, userID string) (Recruiter, error) {
	if err := ctx.Err(); err != nil {
		return Recruiter{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	recruiter, ok := r.recruiters[userID]
	if !ok {
		return Recruiter{}, ErrNotFound
	}
	return recruiter, nil
}

func (r *MemoryRepo) GetCandidateByID(ctx context.Context, candidateID string) (Candidate, error) {
	if err := ctx.Err(); err != nil {
		return Candidate{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, candidate := range r.candidates {
		if candidate.ID == candidateID {
			return candidate, nil
		}
	}
	return Candidate{}, ErrNotFound
}

func (r *MemoryRepo) GetRecruiterByID(ctx context.Context, recruiterID string) (Recruiter, error) {
	if err := ctx.Err(); err != nil {
		return Recruiter{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, recruiter := range r.recruiters {
		if recruiter.ID == recruiterID {
			return recruiter, nil
		}
	}
	return Recruiter{}, ErrNotFound
}

var _ Repo = (*MemoryRepo)(nil)
