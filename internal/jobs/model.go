package jobs

import (
	"time"

	"skillbridge/internal/profiles"
)

// Job is a posting owned by a recruiter profile.
type Job struct {
	ID             string    `json:"id"`
	RecruiterID    string    `json:"recruiterId"`
	JobName        string    `json:"jobName"`
	JobRole        string    `json:"jobRole"`
	JobDescription string    `json:"jobDescription"`
	Requirements   string    `json:"requirements"`
	Location       string    `json:"location,omitempty"`
	Salary         string    `json:"salary,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// JobWithRecruiter is the board listing shape: the posting plus the
// recruiter profile that owns it.
type JobWithRecruiter struct {
	Job
	Recruiter profiles.Recruiter `json:"recruiter"`
}
