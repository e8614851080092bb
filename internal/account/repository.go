package account

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jobportal/jobportal/internal/platform/httpx"
)

// Repository defines persistence operations for accounts.
type Repository interface {
	Create(ctx context.Context, u *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id string) (*User, error)
	Update(ctx context.Context, u *User) error
}

// PGRepository implements Repository using PostgreSQL.
type PGRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL repository.
func NewRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{pool: pool}
}

const userColumns = `id, fullname, email, phone_number, password_hash, role,
	bio, skills, profile_photo_url, resume_url, resume_original_name,
	created_at, updated_at`

func scanUser(row pgx.Row) (*User, error) {
	var u User
	err := row.Scan(
		&u.ID, &u.FullName, &u.Email, &u.PhoneNumber, &u.PasswordHash, &u.Role,
		&u.Profile.Bio, &u.Profile.Skills, &u.Profile.ProfilePhoto,
		&u.Profile.Resume, &u.Profile.ResumeOriginalName,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, httpx.ErrNotFound
		}
		return nil, err
	}
	if u.Profile.Skills == nil {
		u.Profile.Skills = []string{}
	}
	return &u, nil
}

// Create inserts a new user. The users_email unique index is the backstop
// against concurrent duplicate registrations; a violation maps to ErrDuplicate.
func (r *PGRepository) Create(ctx context.Context, u *User) error {
	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now
	_, err := r.pool.Exec(ctx, `
		INSERT INTO users (
			id, fullname, email, phone_number, password_hash, role,
			bio, skills, profile_photo_url, resume_url, resume_original_name,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`,
		u.ID, u.FullName, u.Email, u.PhoneNumber, u.PasswordHash, u.Role,
		u.Profile.Bio, u.Profile.Skills, u.Profile.ProfilePhoto,
		u.Profile.Resume, u.Profile.ResumeOriginalName,
		u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return httpx.ErrDuplicate
		}
		return fmt.Errorf("account: create user: %w", err)
	}
	return nil
}

// FindByEmail fetches a user by email.
func (r *PGRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	return scanUser(row)
}

// FindByID fetches a user by id.
func (r *PGRepository) FindByID(ctx context.Context, id string) (*User, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

// Update overwrites the mutable account fields.
func (r *PGRepository) Update(ctx context.Context, u *User) error {
	u.UpdatedAt = time.Now().UTC()
	tag, err := r.pool.Exec(ctx, `
		UPDATE users SET
			fullname = $2, email = $3, phone_number = $4,
			bio = $5, skills = $6, profile_photo_url = $7,
			resume_url = $8, resume_original_name = $9, updated_at = $10
		WHERE id = $1`,
		u.ID, u.FullName, u.Email, u.PhoneNumber,
		u.Profile.Bio, u.Profile.Skills, u.Profile.ProfilePhoto,
		u.Profile.Resume, u.Profile.ResumeOriginalName, u.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return httpx.ErrDuplicate
		}
		return fmt.Errorf("account: update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return httpx.ErrNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

var _ Repository = (*PGRepository)(nil)
