package applications

import (
	"time"

	"skillbridge/internal/profiles"
)

// Application records a candidate applying to a job with a stored resume.
type Application struct {
	ID          string    `json:"id"`
	CandidateID string    `json:"candidateId"`
	JobID       string    `json:"jobId"`
	ResumeURL   string    `json:"resumeUrl"`
	CoverLetter string    `json:"coverLetter,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Ref is the slim shape the candidate dashboard needs to mark jobs as
// already applied.
type Ref struct {
	ID    string `json:"id"`
	JobID string `json:"jobId"`
}

// UserEmail exposes only the contact address from the user record.
type UserEmail struct {
	Email string `json:"email"`
}

// CandidateWithEmail is the candidate profile plus the account email.
type CandidateWithEmail struct {
	profiles.Candidate
	User UserEmail `json:"user"`
}

// Applicant is the recruiter-facing view of an application.
type Applicant struct {
	Application
	Candidate CandidateWithEmail `json:"candidate"`
}
