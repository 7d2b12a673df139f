package applications

import (
	"context"
	"errors"
	"testing"

	"skillbridge/internal/profiles"
	"skillbridge/internal/users"
)

func newTestService(t *testing.T) (*Service, *profiles.MemoryRepo, *users.MemoryRepo) {
	t.Helper()
	pr := profiles.NewMemoryRepo()
	ur := users.NewMemoryRepo()
	email := func(ctx context.Context, userID string) (string, error) {
		user, err := ur.GetByID(ctx, userID)
		if err != nil {
			return "", err
		}
		return user.Email, nil
	}
	repo := NewMemoryRepo(pr.GetCandidateByID, email)
	return NewService(repo), pr, ur
}

func TestApplyAndListByCandidate(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	application, err := svc.Apply(ctx, "cand-1", "job-1", "http://files/resume.pdf", "Hello")
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if application.ID == "" {
		t.Fatalf("expected generated id")
	}

	refs, err := svc.ListByCandidate(ctx, "cand-1")
	if err != nil {
		t.Fatalf("ListByCandidate: %v", err)
	}
	if len(refs) != 1 || refs[0].JobID != "job-1" || refs[0].ID != application.ID {
		t.Fatalf("unexpected refs %+v", refs)
	}
}

func TestApplyRejectsMissingFields(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	cases := []struct {
		name        string
		candidateID string
		jobID       string
		resumeURL   string
	}{
		{"missing candidateId", "", "job-1", "http://files/r.pdf"},
		{"missing jobId", "cand-1", "", "http://files/r.pdf"},
		{"missing resumeUrl", "cand-1", "job-1", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Apply(ctx, tc.candidateID, tc.jobID, tc.resumeURL, ""); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestApplyOncePerJob(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Apply(ctx, "cand-1", "job-1", "http://files/r.pdf", ""); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if _, err := svc.Apply(ctx, "cand-1", "job-1", "http://files/r.pdf", ""); !errors.Is(err, ErrAlreadyApplied) {
		t.Fatalf("expected ErrAlreadyApplied, got %v", err)
	}
	if _, err := svc.Apply(ctx, "cand-1", "job-2", "http://files/r.pdf", ""); err != nil {
		t.Fatalf("Apply to another job: %v", err)
	}
}

func TestListByJobIncludesCandidateAndEmail(t *testing.T) {
	svc, pr, ur := newTestService(t)
	ctx := context.Background()

	if err := ur.Create(ctx, users.User{ID: "user-1", Email: "jane@example.com"}); err != nil {
		t.Fatalf("users.Create: %v", err)
	}
	candidate := profiles.Candidate{ID: "cand-1", UserID: "user-1", Name: "Jane", Age: 22, CollegeName: "State College"}
	if err := pr.CreateCandidate(ctx, candidate); err != nil {
		t.Fatalf("CreateCandidate: %v", err)
	}

	if _, err := svc.Apply(ctx, "cand-1", "job-1", "http://files/r.pdf", "cover"); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	applicants, err := svc.ListByJob(ctx, "job-1")
	if err != nil {
		t.Fatalf("ListByJob: %v", err)
	}
	if len(applicants) != 1 {
		t.Fatalf("expected 1 applicant, got %d", len(applicants))
	}
	got := applicants[0]
	if got.Candidate.Name != "Jane" || got.Candidate.User.Email != "jane@example.com" {
		t.Fatalf("expected joined candidate and email, got %+v", got.Candidate)
	}
}
