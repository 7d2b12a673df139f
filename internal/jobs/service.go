package jobs

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidInput = errors.New("missing required job fields")

// PostingInput carries the writable fields of a posting.
type PostingInput struct {
	RecruiterID    string
	JobName        string
	JobRole        string
	JobDescription string
	Requirements   string
	Location       string
	Salary         string
}

func (in PostingInput) validate() error {
	if strings.TrimSpace(in.RecruiterID) == "" ||
		strings.TrimSpace(in.JobName) == "" ||
		strings.TrimSpace(in.JobRole) == "" ||
		strings.TrimSpace(in.JobDescription) == "" ||
		strings.TrimSpace(in.Requirements) == "" {
		return ErrInvalidInput
	}
	return nil
}

type Service struct {
	Repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

func (s *Service) Create(ctx context.Context, in PostingInput) (Job, error) {
	if err := in.validate(); err != nil {
		return Job{}, err
	}

	job := Job{
		ID:             uuid.NewString(),
		RecruiterID:    in.RecruiterID,
		JobName:        in.JobName,
		JobRole:        in.JobRole,
		JobDescription: in.JobDescription,
		Requirements:   in.Requirements,
		Location:       in.Location,
		Salary:         in.Salary,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, job); err != nil {
		return Job{}, err
	}
	return job, nil
}

func (s *Service) List(ctx context.Context) ([]JobWithRecruiter, error) {
	return s.Repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, jobID string) (Job, error) {
	return s.Repo.GetByID(ctx, jobID)
}

// Update rewrites a posting. The repo scopes the write to the recruiter,
// so an update against someone else's posting surfaces as ErrNotFound.
func (s *Service) Update(ctx context.Context, jobID string, in PostingInput) (Job, error) {
	if err := in.validate(); err != nil {
		return Job{}, err
	}

	job := Job{
		ID:             jobID,
		RecruiterID:    in.RecruiterID,
		JobName:        in.JobName,
		JobRole:        in.JobRole,
		JobDescription: in.JobDescription,
		Requirements:   in.Requirements,
		Location:       in.Location,
		Salary:         in.Salary,
	}
	return s.Repo.Update(ctx, job)
}

func (s *Service) Delete(ctx context.Context, jobID string) error {
	if strings.TrimSpace(jobID) == "" {
		return ErrInvalidInput
	}
	return s.Repo.Delete(ctx, jobID)
}
