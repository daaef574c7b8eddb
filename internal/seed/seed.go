package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type productSeed struct {
	Key        string
	Name       string
	PriceCents int64
	Category   string
	Sizes      []string
	Image      string
}

// Apply inserts the demo catalog. It is idempotent via ON CONFLICT.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	products := []productSeed{
		{
			Key:        "essential-white-tee",
			Name:       "Essential White Tee",
			PriceCents: 4900,
			Category:   "essentials",
			Sizes:      []string{"XS", "S", "M", "L", "XL"},
			Image:      "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=500&q=80",
		},
		{
			Key:        "premium-cotton-tee",
			Name:       "Premium Cotton Tee",
			PriceCents: 5900,
			Category:   "premium",
			Sizes:      []string{"S", "M", "L", "XL"},
			Image:      "https://images.unsplash.com/photo-1586790170083-2f9ceadc732d?w=500&q=80",
		},
		{
			Key:        "minimalist-classic",
			Name:       "Minimalist Classic",
			PriceCents: 4500,
			Category:   "essentials",
			Sizes:      []string{"XS", "S", "M", "L"},
			Image:      "https://images.unsplash.com/photo-1618354691373-d851c5c3a990?w=500&q=80",
		},
		{
			Key:        "pure-elegance",
			Name:       "Pure Elegance",
			PriceCents: 6500,
			Category:   "premium",
			Sizes:      []string{"S", "M", "L", "XL", "XXL"},
			Image:      "https://images.unsplash.com/photo-1576566588028-4147f3842f27?w=500&q=80",
		},
		{
			Key:        "organic-blend-tee",
			Name:       "Organic Blend Tee",
			PriceCents: 5500,
			Category:   "organic",
			Sizes:      []string{"XS", "S", "M", "L", "XL"},
			Image:      "https://images.unsplash.com/photo-1503341504253-dff4815485f1?w=500&q=80",
		},
		{
			Key:        "luxury-comfort",
			Name:       "Luxury Comfort",
			PriceCents: 7500,
			Category:   "premium",
			Sizes:      []string{"S", "M", "L", "XL"},
			Image:      "https://images.unsplash.com/photo-1581655353564-df123a1eb820?w=500&q=80",
		},
	}

	for _, p := range products {
		if err := upsertProduct(ctx, pool, p); err != nil {
			return fmt.Errorf("upsert product %s: %w", p.Key, err)
		}
	}

	return nil
}

func upsertProduct(ctx context.Context, pool *pgxpool.Pool, p productSeed) error {
	const q = `
INSERT INTO products (key, name, price_cents, currency, category, sizes, image)
VALUES ($1, $2, $3, 'USD', $4, $5, $6)
ON CONFLICT (key) DO UPDATE
SET name = EXCLUDED.name,
    price_cents = EXCLUDED.price_cents,
    category = EXCLUDED.category,
    sizes = EXCLUDED.sizes,
    image = EXCLUDED.image
`
	_, err := pool.Exec(ctx, q, p.Key, p.Name, p.PriceCents, p.Category, p.Sizes, p.Image)
	return err
}
