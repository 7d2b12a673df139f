package profiles

import "time"

// Candidate is a job-seeker profile owned 1:1 by a user.
type Candidate struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Name        string    `json:"name"`
	Age         int       `json:"age"`
	CollegeName string    `json:"collegeName"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Recruiter is a hiring profile owned 1:1 by a user.
type Recruiter struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Name        string    `json:"name"`
	Age         int       `json:"age"`
	CompanyName string    `json:"companyName"`
	CreatedAt   time.Time `json:"createdAt"`
}
