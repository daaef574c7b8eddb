package newsletter

import (
	"context"
	"io"
	"log"

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

func (r *postgresRepo) Subscribe(ctx context.Context, email string) error {
	const q = `
INSERT INTO newsletter_subscribers (email)
VALUES (lower($1))
ON CONFLICT (email) DO NOTHING
`
	if _, err := r.pool.Exec(ctx, q, email); err != nil {
		r.logger.Printf("newsletter repo: subscribe error=%v", err)
		return err
	}
	return nil
}

func (r *postgresRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM newsletter_subscribers`).Scan(&count); err != nil {
		r.logger.Printf("newsletter repo: count error=%v", err)
		return 0, err
	}
	return count, nil
}
