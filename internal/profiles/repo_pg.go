package profiles

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

func (r *PGRepo) CreateCandidate(ctx context.Context, candidate Candidate) error {
	const query = `
INSERT INTO candidates (id, user_id, name, age, college_name, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.DB.ExecContext(ctx, query,
		candidate.ID,
		candidate.UserID,
		candidate.Name,
		candidate.Age,
		candidate.CollegeName,
		candidate.CreatedAt,
	)
	return mapUnique(err)
}

func (r *PGRepo) CreateRecruiter(ctx context.Context, recruiter Recruiter) error {
	const query = `
INSERT INTO recruiters (id, user_id, name, age, company_name, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.DB.ExecContext(ctx, query,
		recruiter.ID,
		recruiter.UserID,
		recruiter.Name,
		recruiter.Age,
		recruiter.CompanyName,
		recruiter.CreatedAt,
	)
	return mapUnique(err)
}

func (r *PGRepo) GetCandidateByUserID(ctx context.Context, userID string) (Candidate, error) {
	const query = `
SELECT id, user_id, name, age, college_name, created_at
FROM candidates
WHERE user_id = $1
LIMIT 1`
	return scanCandidate(r.DB.QueryRowContext(ctx, query, userID))
}

func (r *PGRepo) GetRecruiterByUserID(ctx context.Context, userID string) (Recruiter, error) {
	const query = `
SELECT id, user_id, name, age, company_name, created_at
FROM recruiters
WHERE user_id = $1
LIMIT 1`
	return scanRecruiter(r.DB.QueryRowContext(ctx, query, userID))
}

func (r *PGRepo) GetCandidateByID(ctx context.Context, candidateID string) (Candidate, error) {
	const query = `
SELECT id, user_id, name, age, college_name, created_at
FROM candidates
WHERE id = $1
LIMIT 1`
	return scanCandidate(r.DB.QueryRowContext(ctx, query, candidateID))
}

func (r *PGRepo) GetRecruiterByID(ctx context.Context, recruiterID string) (Recruiter, error) {
	const query = `
SELECT id, user_id, name, age, company_name, created_at
FROM recruiters
WHERE id = $1
LIMIT 1`
	return scanRecruiter(r.DB.QueryRowContext(ctx, query, recruiterID))
}

func scanCandidate(row *sql.Row) (Candidate, error) {
	var candidate Candidate
	err := row.Scan(
		&candidate.ID,
		&candidate.UserID,
		&candidate.Name,
		&candidate.Age,
		&candidate.CollegeName,
		&candidate.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Candidate{}, ErrNotFound
		}
		return Candidate{}, err
	}
	return candidate, nil
}

func scanRecruiter(row *sql.Row) (Recruiter, error) {
	var recruiter Recruiter
	err := row.Scan(
		&recruiter.ID,
		&recruiter.UserID,
		&recruiter.Name,
		&recruiter.Age,
		&recruiter.CompanyName,
		&recruiter.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Recruiter{}, ErrNotFound
		}
		return Recruiter{}, err
	}
	return recruiter, nil
}

func mapUnique(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return ErrAlreadyOnboarded
	}
	return err
}

var _ Repo = (*PGRepo)(nil)
