package jobs

import (
	"context"
	"sort"
	"sync"

	"skillbridge/internal/profiles"
)

// RecruiterResolver looks up the recruiter profile a posting belongs to.
// The postgres repo does this with a join; the memory repo asks the
// profile store directly.
type RecruiterResolver func(ctx context.Context, recruiterID string) (profiles.Recruiter, error)

type MemoryRepo struct {
	mu        sync.RWMutex
	jobs      map[string]Job
	recruiter RecruiterResolver
}

func NewMemoryRepo(recruiter RecruiterResolver) *MemoryRepo {
	return &MemoryRepo{
		jobs:      make(map[string]Job),
		recruiter: recruiter,
	}
}

func (r *MemoryRepo) Create(ctx context.Context, job Job) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.jobs[job.ID] = job
	return nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, jobID string) (Job, error) {
	if err := ctx.Err(); err != nil {
		return Job{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	job, ok := r.jobs[jobID]
	if !ok {
		return Job{}, ErrNotFound
	}
	return job, nil
}

func (r *MemoryRepo) List(ctx context.Context) ([]JobWithRecruiter, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	all := make([]Job, 0, len(r.jobs))
	for _, job := range r.jobs {
		all = append(all, job)
	}
	r.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	list := make([]JobWithRecruiter, 0, len(all))
	for _, job := range all {
		item := JobWithRecruiter{Job: job}
		if r.recruiter != nil {
			rec, err := r.recruiter(ctx, job.RecruiterID)
			if err != nil && err != profiles.ErrNotFound {
				return nil, err
			}
			item.Recruiter = rec
		}
		list = append(list, item)
	}
	return list, nil
}

func (r *MemoryRepo) Update(ctx context.Context, job Job) (Job, error) {
	if err := ctx.Err(); err != nil {
		return Job{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	current, ok := r.jobs[job.ID]
	if !ok || current.RecruiterID != job.RecruiterID {
		return Job{}, ErrNotFound
	}
	job.CreatedAt = current.CreatedAt
	r.jobs[job.ID] = job
	return job, nil
}

func (r *MemoryRepo) Delete(ctx context.Context, jobID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.jobs[jobID]; !ok {
		return ErrNotFound
	}
	delete(r.jobs, jobID)
	return nil
}

var _ Repo = (*MemoryRepo)(nil)
