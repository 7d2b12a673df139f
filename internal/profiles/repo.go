package profiles

import (
	"context"
	"errors"
)

var (
	ErrNotFound         = errors.New("profile not found")
	ErrAlreadyOnboarded = errors.New("user already onboarded")
)

type Repo interface {
	CreateCandidate(ctx context.Context, candidate Candidate) error
	CreateRecruiter(ctx context.Context, recruiter Recruiter) error
	GetCandidateByUserID(ctx context.Context, userID string) (Candidate, error)
	GetRecruiterByUserID(ctx context.Context, userID string) (Recruiter, error)
	GetCandidateByID(ctx context.Context, candidateID string) (Candidate, error)
	GetRecruiterByID(ctx context.Context, recruiterID string) (Recruiter, error)
}
