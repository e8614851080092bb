package jobposting

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jobportal/jobportal/internal/platform/httpx"
)

// Repository defines persistence operations for job postings.
type Repository interface {
	Create(ctx context.Context, j *Job) error
	Get(ctx context.Context, id string) (*Job, error)
	List(ctx context.Context, keyword string) ([]Job, error)
	ListByCreator(ctx context.Context, userID string) ([]Job, error)
}

// PGRepository implements Repository using PostgreSQL.
type PGRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL repository.
func NewRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{pool: pool}
}

const jobColumns = `id, title, description, requirements, salary,
	experience_level, location, job_type, positions, company,
	created_by, created_at`

func collectJobs(rows pgx.Rows) ([]Job, error) {
	defer rows.Close()
	jobs := []Job{}
	for rows.Next() {
		var j Job
		if err := rows.Scan(
			&j.ID, &j.Title, &j.Description, &j.Requirements, &j.Salary,
			&j.ExperienceLevel, &j.Location, &j.JobType, &j.Positions,
			&j.Company, &j.CreatedBy, &j.CreatedAt,
		); err != nil {
			return nil, err
		}
		if j.Requirements == nil {
			j.Requirements = []string{}
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

// Create inserts a new job posting.
func (r *PGRepository) Create(ctx context.Context, j *Job) error {
	j.CreatedAt = time.Now().UTC()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO jobs (
			id, title, description, requirements, salary, experience_level,
			location, job_type, positions, company, created_by, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`,
		j.ID, j.Title, j.Description, j.Requirements, j.Salary,
		j.ExperienceLevel, j.Location, j.JobType, j.Positions,
		j.Company, j.CreatedBy, j.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("jobposting: create job: %w", err)
	}
	return nil
}

// Get fetches a posting by id.
func (r *PGRepository) Get(ctx context.Context, id string) (*Job, error) {
	var j Job
	err := r.pool.QueryRow(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id).Scan(
		&j.ID, &j.Title, &j.Description, &j.Requirements, &j.Salary,
		&j.ExperienceLevel, &j.Location, &j.JobType, &j.Positions,
		&j.Company, &j.CreatedBy, &j.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, httpx.ErrNotFound
		}
		return nil, err
	}
	if j.Requirements == nil {
		j.Requirements = []string{}
	}
	return &j, nil
}

// List returns postings matching the keyword against title or description,
// newest first. An empty keyword returns everything.
func (r *PGRepository) List(ctx context.Context, keyword string) ([]Job, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+jobColumns+` FROM jobs
		WHERE $1 = '' OR title ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%'
		ORDER BY created_at DESC`, keyword)
	if err != nil {
		return nil, fmt.Errorf("jobposting: list jobs: %w", err)
	}
	return collectJobs(rows)
}

// ListByCreator returns the postings a recruiter has published.
func (r *PGRepository) ListByCreator(ctx context.Context, userID string) ([]Job, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+jobColumns+` FROM jobs
		WHERE created_by = $1
		ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("jobposting: list admin jobs: %w", err)
	}
	return collectJobs(rows)
}

var _ Repository = (*PGRepository)(nil)
