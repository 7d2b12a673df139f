package applications

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidInput = errors.New("missing required application fields")

type Service struct {
	Repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// Apply submits a candidate's application to a job. The cover letter is
// optional; everything else is mandatory.
func (s *Service) Apply(ctx context.Context, candidateID, jobID, resumeURL, coverLetter string) (Application, error) {
	candidateID = strings.TrimSpace(candidateID)
	jobID = strings.TrimSpace(jobID)
	resumeURL = strings.TrimSpace(resumeURL)
	if candidateID == "" || jobID == "" || resumeURL == "" {
		return Application{}, ErrInvalidInput
	}

	application := Application{
		ID:          uuid.NewString(),
		CandidateID: candidateID,
		JobID:       jobID,
		ResumeURL:   resumeURL,
		CoverLetter: coverLetter,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, application); err != nil {
		return Application{}, err
	}
	return application, nil
}

func (s *Service) ListByCandidate(ctx context.Context, candidateID string) ([]Ref, error) {
	if strings.TrimSpace(candidateID) == "" {
		return nil, ErrInvalidInput
	}
	return s.Repo.ListByCandidate(ctx, candidateID)
}

func (s *Service) ListByJob(ctx context.Context, jobID string) ([]Applicant, error) {
	if strings.TrimSpace(jobID) == "" {
		return nil, ErrInvalidInput
	}
	return s.Repo.ListByJob(ctx, jobID)
}
