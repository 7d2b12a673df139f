package jobs

import (
	"context"
	"errors"
	"testing"

	"skillbridge/internal/profiles"
)

func newTestService(t *testing.T) (*Service, *profiles.MemoryRepo) {
	t.Helper()
	pr := profiles.NewMemoryRepo()
	repo := NewMemoryRepo(pr.GetRecruiterByID)
	return NewService(repo), pr
}

func validInput(recruiterID string) PostingInput {
	return PostingInput{
		RecruiterID:    recruiterID,
		JobName:        "Backend Engineer",
		JobRole:        "Engineering",
		JobDescription: "Build the platform",
		Requirements:   "Go, SQL",
		Location:       "Remote",
		Salary:         "120k",
	}
}

func TestCreateAndListNewestFirst(t *testing.T) {
	svc, pr := newTestService(t)
	ctx := context.Background()

	rec := profiles.Recruiter{ID: "rec-1", UserID: "user-1", Name: "Rita", Age: 30, CompanyName: "Acme"}
	if err := pr.CreateRecruiter(ctx, rec); err != nil {
		t.Fatalf("CreateRecruiter: %v", err)
	}

	first, err := svc.Create(ctx, validInput("rec-1"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	in := validInput("rec-1")
	in.JobName = "Data Engineer"
	second, err := svc.Create(ctx, in)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	list, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(list))
	}
	if list[0].ID != second.ID || list[1].ID != first.ID {
		t.Fatalf("expected newest first, got %s then %s", list[0].ID, list[1].ID)
	}
	if list[0].Recruiter.CompanyName != "Acme" {
		t.Fatalf("expected recruiter joined into listing, got %+v", list[0].Recruiter)
	}
}

func TestCreateRejectsMissingFields(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*PostingInput)
	}{
		{"missing recruiterId", func(in *PostingInput) { in.RecruiterID = "" }},
		{"missing jobName", func(in *PostingInput) { in.JobName = "" }},
		{"missing jobRole", func(in *PostingInput) { in.JobRole = "" }},
		{"missing jobDescription", func(in *PostingInput) { in.JobDescription = "" }},
		{"missing requirements", func(in *PostingInput) { in.Requirements = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput("rec-1")
			tc.mutate(&in)
			if _, err := svc.Create(ctx, in); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestCreateAllowsOptionalFieldsEmpty(t *testing.T) {
	svc, _ := newTestService(t)

	in := validInput("rec-1")
	in.Location = ""
	in.Salary = ""
	job, err := svc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if job.Location != "" || job.Salary != "" {
		t.Fatalf("expected empty optional fields, got %+v", job)
	}
}

func TestUpdateScopedToOwner(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	job, err := svc.Create(ctx, validInput("rec-1"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	in := validInput("rec-1")
	in.JobName = "Senior Backend Engineer"
	updated, err := svc.Update(ctx, job.ID, in)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.JobName != "Senior Backend Engineer" {
		t.Fatalf("expected updated name, got %q", updated.JobName)
	}
	if !updated.CreatedAt.Equal(job.CreatedAt) {
		t.Fatalf("expected createdAt preserved")
	}

	if _, err := svc.Update(ctx, job.ID, validInput("rec-2")); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for other recruiter, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	job, err := svc.Create(ctx, validInput("rec-1"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.Delete(ctx, job.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := svc.Delete(ctx, job.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}
