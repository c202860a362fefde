package offer

import (
	"context"
	"errors"
	"io"
	"log"

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

func (r *postgresRepo) List(ctx context.Context) ([]domain.Offer, error) {
	const q = `
SELECT id::text, title, description, discount, product_ids, duration_value, duration_unit, created_at
FROM offers
ORDER BY created_at DESC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Printf("offer repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Offer
	for rows.Next() {
		var o domain.Offer
		if err := rows.Scan(&o.ID, &o.Title, &o.Description, &o.Discount, &o.ProductIDs,
			&o.DurationValue, &o.DurationUnit, &o.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("offer repo: list rows error=%v", err)
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) Insert(ctx context.Context, o domain.Offer) (*domain.Offer, error) {
	const q = `
INSERT INTO offers (title, description, discount, product_ids, duration_value, duration_unit)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id::text, created_at
`
	res := o
	err := r.pool.QueryRow(ctx, q,
		o.Title, o.Description, o.Discount, o.ProductIDs, o.DurationValue, o.DurationUnit,
	).Scan(&res.ID, &res.CreatedAt)
	if err != nil {
		r.logger.Printf("offer repo: insert title=%s error=%v", o.Title, err)
		return nil, err
	}
	r.logger.Printf("offer repo: inserted id=%s title=%s", res.ID, res.Title)
	return &res, nil
}

func (r *postgresRepo) Update(ctx context.Context, o domain.Offer) (*domain.Offer, error) {
	const q = `
UPDATE offers
SET title = $2, description = $3, discount = $4, product_ids = $5, duration_value = $6, duration_unit = $7
WHERE id = $1
RETURNING created_at
`
	res := o
	err := r.pool.QueryRow(ctx, q, o.ID,
		o.Title, o.Description, o.Discount, o.ProductIDs, o.DurationValue, o.DurationUnit,
	).Scan(&res.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("offer repo: update id=%s error=%v", o.ID, err)
		return nil, err
	}
	return &res, nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, "DELETE FROM offers WHERE id = $1", id)
	if err != nil {
		r.logger.Printf("offer repo: delete id=%s error=%v", id, err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
