package order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
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

// Create persists a new order. Line snapshots and the coupon reference are
// serialized to JSON for storage in JSONB columns.
func (r *postgresRepo) Create(ctx context.Context, o domain.Order) (*domain.Order, error) {
	itemsJSON, err := json.Marshal(o.Items)
	if err != nil {
		return nil, fmt.Errorf("marshal order items: %w", err)
	}
	var couponJSON []byte
	if o.Coupon != nil {
		couponJSON, err = json.Marshal(o.Coupon)
		if err != nil {
			return nil, fmt.Errorf("marshal order coupon: %w", err)
		}
	}

	const q = `
INSERT INTO orders (customer_name, address, phone, payment_method, items, total, coupon, status)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id::text, created_at
`
	res := o
	err = r.pool.QueryRow(ctx, q,
		o.CustomerName, o.Address, o.Phone, o.PaymentMethod,
		itemsJSON, o.Total, couponJSON, string(o.Status),
	).Scan(&res.ID, &res.CreatedAt)
	if err != nil {
		r.logger.Printf("order repo: create error=%v", err)
		return nil, err
	}
	r.logger.Printf("order repo: created id=%s total=%s", res.ID, res.Total)
	return &res, nil
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Order, error) {
	const q = `
SELECT id::text, customer_name, address, phone, payment_method, items, total, coupon, status, created_at
FROM orders
ORDER BY created_at DESC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Printf("order repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Order
	for rows.Next() {
		var (
			o          domain.Order
			status     string
			itemsJSON  []byte
			couponJSON []byte
		)
		if err := rows.Scan(&o.ID, &o.CustomerName, &o.Address, &o.Phone, &o.PaymentMethod,
			&itemsJSON, &o.Total, &couponJSON, &status, &o.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(itemsJSON, &o.Items); err != nil {
			return nil, fmt.Errorf("unmarshal items for order %s: %w", o.ID, err)
		}
		if len(couponJSON) > 0 {
			var snap domain.CouponSnapshot
			if err := json.Unmarshal(couponJSON, &snap); err != nil {
				return nil, fmt.Errorf("unmarshal coupon for order %s: %w", o.ID, err)
			}
			o.Coupon = &snap
		}
		o.Status = domain.OrderStatus(status)
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("order repo: list rows error=%v", err)
		return nil, err
	}
	r.logger.Printf("order repo: list count=%d", len(result))
	return result, nil
}

func (r *postgresRepo) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error {
	tag, err := r.pool.Exec(ctx, "UPDATE orders SET status = $2 WHERE id = $1", id, string(status))
	if err != nil {
		r.logger.Printf("order repo: update status id=%s error=%v", id, err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	r.logger.Printf("order repo: status id=%s status=%s", id, status)
	return nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, "DELETE FROM orders WHERE id = $1", id)
	if err != nil {
		r.logger.Printf("order repo: delete id=%s error=%v", id, err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Stats aggregates the income panel counters in a single query.
func (r *postgresRepo) Stats(ctx context.Context) (*domain.OrderStats, error) {
	const q = `
SELECT COUNT(*),
       COALESCE(SUM(total), 0),
       COUNT(*) FILTER (WHERE status = 'Confirmed'),
       COUNT(*) FILTER (WHERE status = 'Delivered')
FROM orders
`
	var s domain.OrderStats
	err := r.pool.QueryRow(ctx, q).Scan(&s.TotalOrders, &s.TotalSales, &s.ConfirmedOrders, &s.DeliveredOrders)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &domain.OrderStats{}, nil
		}
		r.logger.Printf("order repo: stats error=%v", err)
		return nil, err
	}
	return &s, nil
}
