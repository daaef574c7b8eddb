package newsletter

import "context"

type Repository interface {
	// Subscribe records the email address. Re-subscribing is a no-op.
	Subscribe(ctx context.Context, email string) error
	Count(ctx context.Context) (int64, error)
}
