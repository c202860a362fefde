package admin

import (
	"context"
	"errors"
	"io"
	"log"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"musclesaction-store/internal/domain"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) GetByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	const q = `
SELECT id::text, email, password_hash, created_at
FROM admins
WHERE email = $1
`
	var a domain.Admin
	err := r.pool.QueryRow(ctx, q, email).Scan(&a.ID, &a.Email, &a.PasswordHash, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("admin repo: get email=%s error=%v", email, err)
		return nil, err
	}
	return &a, nil
}

func (r *postgresRepo) Create(ctx context.Context, email, passwordHash string) (*domain.Admin, error) {
	const q = `
INSERT INTO admins (email, password_hash)
VALUES ($1, $2)
ON CONFLICT (email) DO UPDATE SET password_hash = EXCLUDED.password_hash
RETURNING id::text, email, password_hash, created_at
`
	var a domain.Admin
	err := r.pool.QueryRow(ctx, q, email, passwordHash).Scan(&a.ID, &a.Email, &a.PasswordHash, &a.CreatedAt)
	if err != nil {
		r.logger.Printf("admin repo: create email=%s error=%v", email, err)
		return nil, err
	}
	r.logger.Printf("admin repo: created email=%s id=%s", a.Email, a.ID)
	return &a, nil
}

func (r *postgresRepo) CreateToken(ctx context.Context, token, adminID string, expiresAt time.Time) error {
	const q = `
INSERT INTO admin_tokens (token, admin_id, expires_at)
VALUES ($1, $2, $3)
`
	if _, err := r.pool.Exec(ctx, q, token, adminID, expiresAt); err != nil {
		r.logger.Printf("admin repo: create token admin_id=%s error=%v", adminID, err)
		return err
	}
	return nil
}

func (r *postgresRepo) FindToken(ctx context.Context, token string) (*domain.AdminToken, error) {
	const q = `
SELECT token, admin_id::text, expires_at, created_at
FROM admin_tokens
WHERE token = $1
`
	var t domain.AdminToken
	err := r.pool.QueryRow(ctx, q, token).Scan(&t.Token, &t.AdminID, &t.ExpiresAt, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("admin repo: find token error=%v", err)
		return nil, err
	}
	return &t, nil
}

func (r *postgresRepo) DeleteToken(ctx context.Context, token string) error {
	if _, err := r.pool.Exec(ctx, "DELETE FROM admin_tokens WHERE token = $1", token); err != nil {
		r.logger.Printf("admin repo: delete token error=%v", err)
		return err
	}
	return nil
}
