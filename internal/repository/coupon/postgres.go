package coupon

import (
	"context"
	"errors"
	"io"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"musclesaction-store/internal/domain"
)

const couponColumns = `id::text, code, discount, type, usage_limit, used, expires_at, active, created_at`

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

func (r *postgresRepo) FindByCode(ctx context.Context, code string) (*domain.Coupon, error) {
	q := "SELECT " + couponColumns + " FROM coupons WHERE LOWER(code) = LOWER($1)"
	c, err := scanCoupon(r.pool.QueryRow(ctx, q, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Printf("coupon repo: code=%s not found", code)
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("coupon repo: find code=%s error=%v", code, err)
		return nil, err
	}
	return c, nil
}

func (r *postgresRepo) IncrementUsed(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, "UPDATE coupons SET used = used + 1 WHERE id = $1", id)
	if err != nil {
		r.logger.Printf("coupon repo: increment id=%s error=%v", id, err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	r.logger.Printf("coupon repo: incremented id=%s", id)
	return nil
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Coupon, error) {
	q := "SELECT " + couponColumns + " FROM coupons ORDER BY created_at DESC"
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Printf("coupon repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Coupon
	for rows.Next() {
		c, err := scanCoupon(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *c)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("coupon repo: list rows error=%v", err)
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) Insert(ctx context.Context, c domain.Coupon) (*domain.Coupon, error) {
	const q = `
INSERT INTO coupons (code, discount, type, usage_limit, used, expires_at, active)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id::text, created_at
`
	res := c
	err := r.pool.QueryRow(ctx, q,
		c.Code, c.Discount, string(c.Type), c.UsageLimit, c.Used, c.ExpiresAt, c.Active,
	).Scan(&res.ID, &res.CreatedAt)
	if err != nil {
		r.logger.Printf("coupon repo: insert code=%s error=%v", c.Code, err)
		return nil, err
	}
	r.logger.Printf("coupon repo: inserted id=%s code=%s", res.ID, res.Code)
	return &res, nil
}

func (r *postgresRepo) Update(ctx context.Context, c domain.Coupon) (*domain.Coupon, error) {
	const q = `
UPDATE coupons
SET code = $2, discount = $3, type = $4, usage_limit = $5, expires_at = $6, active = $7
WHERE id = $1
RETURNING used, created_at
`
	res := c
	err := r.pool.QueryRow(ctx, q, c.ID,
		c.Code, c.Discount, string(c.Type), c.UsageLimit, c.ExpiresAt, c.Active,
	).Scan(&res.Used, &res.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("coupon repo: update id=%s error=%v", c.ID, err)
		return nil, err
	}
	return &res, nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, "DELETE FROM coupons WHERE id = $1", id)
	if err != nil {
		r.logger.Printf("coupon repo: delete id=%s error=%v", id, err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCoupon(row rowScanner) (*domain.Coupon, error) {
	var (
		c   domain.Coupon
		typ string
	)
	err := row.Scan(&c.ID, &c.Code, &c.Discount, &typ, &c.UsageLimit, &c.Used,
		&c.ExpiresAt, &c.Active, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	c.Type = domain.CouponType(typ)
	return &c, nil
}
