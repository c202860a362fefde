package product

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"musclesaction-store/internal/domain"
)

const productColumns = `id::text, name, name_ar, description, description_ar, images, flavors,
price, original_price, discount, category, in_stock, is_best_seller, is_new, rating, created_at`

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

func (r *postgresRepo) List(ctx context.Context, f Filter) ([]domain.Product, error) {
	var (
		conds []string
		args  []interface{}
	)
	if f.Category != "" {
		args = append(args, f.Category)
		conds = append(conds, "category = $"+strconv.Itoa(len(args)))
	}
	if f.BestSeller {
		conds = append(conds, "is_best_seller")
	}
	if f.New {
		conds = append(conds, "is_new")
	}

	q := "SELECT " + productColumns + " FROM products"
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += " ORDER BY created_at DESC"
	if f.Limit > 0 {
		q += " LIMIT " + strconv.Itoa(f.Limit)
	}

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		r.logger.Printf("product repo: list category=%s error=%v", f.Category, err)
		return nil, err
	}
	defer rows.Close()

	result, err := collectProducts(rows)
	if err != nil {
		r.logger.Printf("product repo: list rows error=%v", err)
		return nil, err
	}
	r.logger.Printf("product repo: list category=%s count=%d", f.Category, len(result))
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	q := "SELECT " + productColumns + " FROM products WHERE id = $1"
	row := r.pool.QueryRow(ctx, q, id)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Printf("product repo: get id=%s not found", id)
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("product repo: get id=%s error=%v", id, err)
		return nil, err
	}
	return p, nil
}

func (r *postgresRepo) GetByIDs(ctx context.Context, ids []string) ([]domain.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	q := "SELECT " + productColumns + " FROM products WHERE id::text = ANY($1)"
	rows, err := r.pool.Query(ctx, q, ids)
	if err != nil {
		r.logger.Printf("product repo: get by ids error=%v", err)
		return nil, err
	}
	defer rows.Close()
	return collectProducts(rows)
}

func (r *postgresRepo) Insert(ctx context.Context, p domain.Product) (*domain.Product, error) {
	const q = `
INSERT INTO products (name, name_ar, description, description_ar, images, flavors,
    price, original_price, discount, category, in_stock, is_best_seller, is_new, rating)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
RETURNING id::text, created_at
`
	res := p
	err := r.pool.QueryRow(ctx, q,
		p.Name, p.NameAr, p.Description, p.DescriptionAr, p.Images, p.Flavors,
		p.Price, p.OriginalPrice, p.Discount, p.Category, p.InStock, p.IsBestSeller, p.IsNew, p.Rating,
	).Scan(&res.ID, &res.CreatedAt)
	if err != nil {
		r.logger.Printf("product repo: insert name=%s error=%v", p.Name, err)
		return nil, err
	}
	r.logger.Printf("product repo: inserted id=%s name=%s", res.ID, res.Name)
	return &res, nil
}

func (r *postgresRepo) Update(ctx context.Context, p domain.Product) (*domain.Product, error) {
	const q = `
UPDATE products
SET name = $2, name_ar = $3, description = $4, description_ar = $5, images = $6, flavors = $7,
    price = $8, original_price = $9, discount = $10, category = $11, in_stock = $12,
    is_best_seller = $13, is_new = $14, rating = $15
WHERE id = $1
RETURNING created_at
`
	res := p
	err := r.pool.QueryRow(ctx, q, p.ID,
		p.Name, p.NameAr, p.Description, p.DescriptionAr, p.Images, p.Flavors,
		p.Price, p.OriginalPrice, p.Discount, p.Category, p.InStock, p.IsBestSeller, p.IsNew, p.Rating,
	).Scan(&res.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("product repo: update id=%s error=%v", p.ID, err)
		return nil, err
	}
	r.logger.Printf("product repo: updated id=%s name=%s", p.ID, p.Name)
	return &res, nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, "DELETE FROM products WHERE id = $1", id)
	if err != nil {
		r.logger.Printf("product repo: delete id=%s error=%v", id, err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	r.logger.Printf("product repo: deleted id=%s", id)
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProduct(row rowScanner) (*domain.Product, error) {
	var p domain.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.NameAr, &p.Description, &p.DescriptionAr, &p.Images, &p.Flavors,
		&p.Price, &p.OriginalPrice, &p.Discount, &p.Category, &p.InStock, &p.IsBestSeller,
		&p.IsNew, &p.Rating, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func collectProducts(rows pgx.Rows) ([]domain.Product, error) {
	var result []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("product rows: %w", err)
	}
	return result, nil
}
