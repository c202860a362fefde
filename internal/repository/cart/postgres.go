package cart

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

func (r *postgresRepo) GetByToken(ctx context.Context, token string) (*domain.Cart, error) {
	const cartQuery = `
SELECT id::text, token, created_at, updated_at
FROM carts
WHERE token = $1
`
	var c domain.Cart
	err := r.pool.QueryRow(ctx, cartQuery, token).Scan(&c.ID, &c.Token, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("cart repo: get token=%s error=%v", token, err)
		return nil, err
	}

	const linesQuery = `
SELECT product_id, name, name_ar, flavor, unit_price, quantity
FROM cart_lines
WHERE cart_id = $1
ORDER BY position
`
	rows, err := r.pool.Query(ctx, linesQuery, c.ID)
	if err != nil {
		r.logger.Printf("cart repo: lines cart_id=%s error=%v", c.ID, err)
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var l domain.CartLine
		if err := rows.Scan(&l.ProductID, &l.Name, &l.NameAr, &l.Flavor, &l.UnitPrice, &l.Quantity); err != nil {
			return nil, err
		}
		c.Lines = append(c.Lines, l)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("cart repo: lines rows cart_id=%s error=%v", c.ID, err)
		return nil, err
	}
	return &c, nil
}

// Save upserts the cart row and replaces the persisted line list with the
// given one, in a single transaction.
func (r *postgresRepo) Save(ctx context.Context, token string, lines domain.CartLines) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	const upsert = `
INSERT INTO carts (token)
VALUES ($1)
ON CONFLICT (token) DO UPDATE SET updated_at = now()
RETURNING id::text
`
	var cartID string
	if err := tx.QueryRow(ctx, upsert, token).Scan(&cartID); err != nil {
		r.logger.Printf("cart repo: upsert token=%s error=%v", token, err)
		return err
	}

	if _, err := tx.Exec(ctx, "DELETE FROM cart_lines WHERE cart_id = $1", cartID); err != nil {
		return err
	}

	const insertLine = `
INSERT INTO cart_lines (cart_id, product_id, name, name_ar, flavor, unit_price, quantity, position)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`
	for i, l := range lines {
		if _, err := tx.Exec(ctx, insertLine,
			cartID, l.ProductID, l.Name, l.NameAr, l.Flavor, l.UnitPrice, l.Quantity, i,
		); err != nil {
			r.logger.Printf("cart repo: insert line cart_id=%s product_id=%s error=%v", cartID, l.ProductID, err)
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}
	r.logger.Printf("cart repo: saved token=%s lines=%d", token, len(lines))
	return nil
}

func (r *postgresRepo) Clear(ctx context.Context, token string) error {
	const q = `
DELETE FROM cart_lines
WHERE cart_id IN (SELECT id FROM carts WHERE token = $1)
`
	if _, err := r.pool.Exec(ctx, q, token); err != nil {
		r.logger.Printf("cart repo: clear token=%s error=%v", token, err)
		return err
	}
	r.logger.Printf("cart repo: cleared token=%s", token)
	return nil
}
