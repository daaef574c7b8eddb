package order

import (
	"context"
	"errors"
	"io"
	"log"

	"ravio-storefront/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
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

func (r *postgresRepo) Create(ctx context.Context, in CreateOrderInput) (*domain.Order, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	const insertOrder = `
INSERT INTO orders (email, first_name, last_name, address, city, postal_code, country,
                    subtotal_cents, shipping_cents, total_cents, status)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, 'processing')
RETURNING id::text, status, created_at
`
	order := domain.Order{
		Email:         in.Email,
		FirstName:     in.FirstName,
		LastName:      in.LastName,
		Address:       in.Address,
		City:          in.City,
		PostalCode:    in.PostalCode,
		Country:       in.Country,
		SubtotalCents: in.SubtotalCents,
		ShippingCents: in.ShippingCents,
		TotalCents:    in.TotalCents,
	}
	if err := tx.QueryRow(ctx, insertOrder,
		in.Email, in.FirstName, in.LastName, in.Address, in.City, in.PostalCode, in.Country,
		in.SubtotalCents, in.ShippingCents, in.TotalCents,
	).Scan(&order.ID, &order.Status, &order.CreatedAt); err != nil {
		r.logger.Printf("order repo: create error=%v", err)
		return nil, err
	}

	const insertLine = `
INSERT INTO order_lines (order_id, product_id, name, size, quantity, unit_price_cents, total_cents)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id::text
`
	for _, li := range in.Lines {
		line := domain.OrderLine{
			OrderID:        order.ID,
			ProductID:      li.ProductID,
			Name:           li.Name,
			Size:           li.Size,
			Quantity:       li.Quantity,
			UnitPriceCents: li.UnitPriceCents,
			TotalCents:     li.ExtensionCents(),
		}
		if err := tx.QueryRow(ctx, insertLine,
			order.ID, li.ProductID, li.Name, li.Size, li.Quantity, li.UnitPriceCents, line.TotalCents,
		).Scan(&line.ID); err != nil {
			r.logger.Printf("order repo: create line product_id=%s error=%v", li.ProductID, err)
			return nil, err
		}
		order.Lines = append(order.Lines, line)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	r.logger.Printf("order repo: created id=%s lines=%d total_cents=%d", order.ID, len(order.Lines), order.TotalCents)
	return &order, nil
}

const orderColumns = `id::text, email, first_name, last_name, address, city, postal_code, country,
       subtotal_cents, shipping_cents, total_cents, status, created_at`

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	q := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	order, err := scanOrder(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("order repo: get id=%s error=%v", id, err)
		return nil, err
	}

	const linesQuery = `
SELECT id::text, order_id::text, product_id::text, name, size, quantity, unit_price_cents, total_cents
FROM order_lines
WHERE order_id = $1
ORDER BY created_at ASC
`
	rows, err := r.pool.Query(ctx, linesQuery, order.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var line domain.OrderLine
		if err := rows.Scan(
			&line.ID,
			&line.OrderID,
			&line.ProductID,
			&line.Name,
			&line.Size,
			&line.Quantity,
			&line.UnitPriceCents,
			&line.TotalCents,
		); err != nil {
			return nil, err
		}
		order.Lines = append(order.Lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *postgresRepo) ListRecent(ctx context.Context, limit int) ([]domain.Order, error) {
	if limit <= 0 {
		limit = 50
	}
	q := `SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC LIMIT $1`
	rows, err := r.pool.Query(ctx, q, limit)
	if err != nil {
		r.logger.Printf("order repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) UpdateStatus(ctx context.Context, id, status string) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE orders SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		r.logger.Printf("order repo: update status id=%s error=%v", id, err)
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	r.logger.Printf("order repo: status id=%s -> %s", id, status)
	return nil
}

func scanOrder(row pgx.Row) (domain.Order, error) {
	var o domain.Order
	err := row.Scan(
		&o.ID,
		&o.Email,
		&o.FirstName,
		&o.LastName,
		&o.Address,
		&o.City,
		&o.PostalCode,
		&o.Country,
		&o.SubtotalCents,
		&o.ShippingCents,
		&o.TotalCents,
		&o.Status,
		&o.CreatedAt,
	)
	return o, err
}
