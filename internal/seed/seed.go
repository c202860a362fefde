package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

type productSeed struct {
	Name         string
	NameAr       string
	Price        decimal.Decimal
	Category     string
	Flavors      []string
	IsBestSeller bool
	IsNew        bool
	Rating       float64
}

// Apply inserts basic seed data for manual testing: a handful of products, a
// demo coupon, and the admin account. It is idempotent.
func Apply(ctx context.Context, pool *pgxpool.Pool, adminEmail, adminPassword string) error {
	products := []productSeed{
		{
			Name:         "Whey Protein 2kg",
			NameAr:       "واي بروتين ٢ كجم",
			Price:        decimal.NewFromInt(1850),
			Category:     "protein",
			Flavors:      []string{"Chocolate", "Vanilla", "Strawberry"},
			IsBestSeller: true,
			Rating:       4.8,
		},
		{
			Name:     "Creatine Monohydrate 300g",
			NameAr:   "كرياتين مونوهيدرات ٣٠٠ جم",
			Price:    decimal.NewFromInt(650),
			Category: "creatine",
			Flavors:  []string{},
			IsNew:    true,
			Rating:   4.6,
		},
		{
			Name:     "Mass Gainer 3kg",
			NameAr:   "ماس جينر ٣ كجم",
			Price:    decimal.NewFromInt(1400),
			Category: "mass-gainer",
			Flavors:  []string{"Chocolate", "Cookies"},
			Rating:   4.3,
		},
		{
			Name:     "Pre-Workout 30 Servings",
			NameAr:   "بري وورك أوت ٣٠ جرعة",
			Price:    decimal.NewFromInt(900),
			Category: "preworkout",
			Flavors:  []string{"Fruit Punch", "Blue Raspberry"},
			IsNew:    true,
			Rating:   4.5,
		},
	}

	for _, p := range products {
		if err := ensureProduct(ctx, pool, p); err != nil {
			return fmt.Errorf("ensure product %s: %w", p.Name, err)
		}
	}

	if err := ensureCoupon(ctx, pool, "WELCOME10", decimal.NewFromInt(10), "percent", 100); err != nil {
		return fmt.Errorf("ensure coupon: %w", err)
	}

	if err := ensureAdmin(ctx, pool, adminEmail, adminPassword); err != nil {
		return fmt.Errorf("ensure admin: %w", err)
	}

	return nil
}

func ensureProduct(ctx context.Context, pool *pgxpool.Pool, p productSeed) error {
	var id string
	err := pool.QueryRow(ctx, `SELECT id::text FROM products WHERE name = $1`, p.Name).Scan(&id)
	if err == nil {
		return nil
	}
	if err != pgx.ErrNoRows {
		return err
	}

	const q = `
INSERT INTO products (name, name_ar, images, flavors, price, category, in_stock, is_best_seller, is_new, rating)
VALUES ($1, $2, '{}', $3, $4, $5, TRUE, $6, $7, $8)
`
	_, err = pool.Exec(ctx, q, p.Name, p.NameAr, p.Flavors, p.Price, p.Category, p.IsBestSeller, p.IsNew, p.Rating)
	return err
}

func ensureCoupon(ctx context.Context, pool *pgxpool.Pool, code string, discount decimal.Decimal, typ string, usageLimit int) error {
	const q = `
INSERT INTO coupons (code, discount, type, usage_limit, active)
VALUES ($1, $2, $3, $4, TRUE)
ON CONFLICT (LOWER(code)) DO NOTHING
`
	_, err := pool.Exec(ctx, q, code, discount, typ, usageLimit)
	return err
}

func ensureAdmin(ctx context.Context, pool *pgxpool.Pool, email, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	const q = `
INSERT INTO admins (email, password_hash)
VALUES ($1, $2)
ON CONFLICT (email) DO UPDATE SET password_hash = EXCLUDED.password_hash
`
	_, err = pool.Exec(ctx, q, email, string(hash))
	return err
}
