package jobs

import (
	"context"
	"database/sql"
	"errors"
)

type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Create(ctx context.Context, job Job) error {
	const query = `
INSERT INTO jobs (id, recruiter_id, job_name, job_role, job_description, requirements, location, salary, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.DB.ExecContext(ctx, query,
		job.ID,
		job.RecruiterID,
		job.JobName,
		job.JobRole,
		job.JobDescription,
		job.Requirements,
		nullableString(job.Location),
		nullableString(job.Salary),
		job.CreatedAt,
	)
	return err
}

func (r *PGRepo) GetByID(ctx context.Context, jobID string) (Job, error) {
	const query = `
SELECT id, recruiter_id, job_name, job_role, job_description, requirements, location, salary, created_at
FROM jobs
WHERE id = $1
LIMIT 1`
	return scanJob(r.DB.QueryRowContext(ctx, query, jobID))
}

func (r *PGRepo) List(ctx context.Context) ([]JobWithRecruiter, error) {
	const query = `
SELECT j.id, j.recruiter_id, j.job_name, j.job_role, j.job_description, j.requirements, j.location, j.salary, j.created_at,
       r.id, r.user_id, r.name, r.age, r.company_name, r.created_at
FROM jobs j
JOIN recruiters r ON r.id = j.recruiter_id
ORDER BY j.created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]JobWithRecruiter, 0)
	for rows.Next() {
		var item JobWithRecruiter
		var location, salary sql.NullString
		err := rows.Scan(
			&item.ID, &item.RecruiterID, &item.JobName, &item.JobRole,
			&item.JobDescription, &item.Requirements, &location, &salary, &item.CreatedAt,
			&item.Recruiter.ID, &item.Recruiter.UserID, &item.Recruiter.Name,
			&item.Recruiter.Age, &item.Recruiter.CompanyName, &item.Recruiter.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		item.Location = location.String
		item.Salary = salary.String
		list = append(list, item)
	}
	return list, rows.Err()
}

func (r *PGRepo) Update(ctx context.Context, job Job) (Job, error) {
	const query = `
UPDATE jobs
SET job_name = $1, job_role = $2, job_description = $3, requirements = $4, location = $5, salary = $6
WHERE id = $7 AND recruiter_id = $8
RETURNING id, recruiter_id, job_name, job_role, job_description, requirements, location, salary, created_at`
	return scanJob(r.DB.QueryRowContext(ctx, query,
		job.JobName,
		job.JobRole,
		job.JobDescription,
		job.Requirements,
		nullableString(job.Location),
		nullableString(job.Salary),
		job.ID,
		job.RecruiterID,
	))
}

func (r *PGRepo) Delete(ctx context.Context, jobID string) error {
	const query = `DELETE FROM jobs WHERE id = $1`
	res, err := r.DB.ExecContext(ctx, query, jobID)
	if err != nil {
		return err
	}
	count, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if count == 0 {
		return ErrNotFound
	}
	return nil
}

func scanJob(row *sql.Row) (Job, error) {
	var job Job
	var location, salary sql.NullString
	err := row.Scan(
		&job.ID, &job.RecruiterID, &job.JobName, &job.JobRole,
		&job.JobDescription, &job.Requirements, &location, &salary, &job.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Job{}, ErrNotFound
		}
		return Job{}, err
	}
	job.Location = location.String
	job.Salary = salary.String
	return job, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

var _ Repo = (*PGRepo)(nil)
