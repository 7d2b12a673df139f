package profiles

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidInput = errors.New("all fields are required")

type Service struct {
	Repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// OnboardCandidate creates the candidate profile for a signed-up user.
func (s *Service) OnboardCandidate(ctx context.Context, userID, name string, age int, collegeName string) (Candidate, error) {
	userID = strings.TrimSpace(userID)
	name = strings.TrimSpace(name)
	collegeName = strings.TrimSpace(collegeName)
	if userID == "" || name == "" || collegeName == "" || age <= 0 {
		return Candidate{}, ErrInvalidInput
	}

	candidate := Candidate{
		ID:          uuid.NewString(),
		UserID:      userID,
		Name:        name,
		Age:         age,
		CollegeName: collegeName,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.Repo.CreateCandidate(ctx, candidate); err != nil {
		return Candidate{}, err
	}
	return candidate, nil
}

// OnboardRecruiter creates the recruiter profile for a signed-up user.
func (s *Service) OnboardRecruiter(ctx context.Context, userID, name string, age int, companyName string) (Recruiter, error) {
	userID = strings.TrimSpace(userID)
	name = strings.TrimSpace(name)
	companyName = strings.TrimSpace(companyName)
	if userID == "" || name == "" || companyName == "" || age <= 0 {
		return Recruiter{}, ErrInvalidInput
	}

	recruiter := Recruiter{
		ID:          uuid.NewString(),
		UserID:      userID,
		Name:        name,
		Age:         age,
		CompanyName: companyName,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.Repo.CreateRecruiter(ctx, recruiter); err != nil {
		return Recruiter{}, err
	}
	return recruiter, nil
}

// Status reports whether the user finished onboarding and in which role.
func (s *Service) Status(ctx context.Context, userID string) (onboarded bool, role string, err error) {
	if strings.TrimSpace(userID) == "" {
		return false, "", ErrInvalidInput
	}

	if _, err := s.Repo.GetCandidateByUserID(ctx, userID); err == nil {
		return true, "candidate", nil
	} else if !errors.Is(err, ErrNotFound) {
		return false, "", err
	}

	if _, err := s.Repo.GetRecruiterByUserID(ctx, userID); err == nil {
		return true, "recruiter", nil
	} else if !errors.Is(err, ErrNotFound) {
		return false, "", err
	}

	return false, "", nil
}

func (s *Service) CandidateByUserID(ctx context.Context, userID string) (Candidate, error) {
	return s.Repo.GetCandidateByUserID(ctx, userID)
}

func (s *Service) RecruiterByUserID(ctx context.Context, userID string) (Recruiter, error) {
	return s.Repo.GetRecruiterByUserID(ctx, userID)
}
