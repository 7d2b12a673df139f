package applications

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Create(ctx context.Context, application Application) error {
	const query = `
INSERT INTO applications (id, candidate_id, job_id, resume_url, cover_letter, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.DB.ExecContext(ctx, query,
		application.ID,
		application.CandidateID,
		application.JobID,
		application.ResumeURL,
		nullableString(application.CoverLetter),
		application.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return ErrAlreadyApplied
		}
		return err
	}
	return nil
}

func (r *PGRepo) ListByCandidate(ctx context.Context, candidateID string) ([]Ref, error) {
	const query = `
SELECT id, job_id
FROM applications
WHERE candidate_id = $1`
	rows, err := r.DB.QueryContext(ctx, query, candidateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	refs := make([]Ref, 0)
	for rows.Next() {
		var ref Ref
		if err := rows.Scan(&ref.ID, &ref.JobID); err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, rows.Err()
}

func (r *PGRepo) ListByJob(ctx context.Context, jobID string) ([]Applicant, error) {
	const query = `
SELECT a.id, a.candidate_id, a.job_id, a.resume_url, a.cover_letter, a.created_at,
       c.id, c.user_id, c.name, c.age, c.college_name, c.created_at,
       u.email
FROM applications a
JOIN candidates c ON c.id = a.candidate_id
JOIN users u ON u.id = c.user_id
WHERE a.job_id = $1
ORDER BY a.created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	applicants := make([]Applicant, 0)
	for rows.Next() {
		var item Applicant
		var coverLetter sql.NullString
		err := rows.Scan(
			&item.ID, &item.CandidateID, &item.JobID, &item.ResumeURL, &coverLetter, &item.CreatedAt,
			&item.Candidate.ID, &item.Candidate.UserID, &item.Candidate.Name,
			&item.Candidate.Age, &item.Candidate.CollegeName, &item.Candidate.CreatedAt,
			&item.Candidate.User.Email,
		)
		if err != nil {
			return nil, err
		}
		item.CoverLetter = coverLetter.String
		applicants = append(applicants, item)
	}
	return applicants, rows.Err()
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

var _ Repo = (*PGRepo)(nil)
