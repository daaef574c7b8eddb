package order

import (
	"context"

	"ravio-storefront/internal/domain"
)

// CreateOrderInput carries everything needed to persist a placed order. Lines
// are stored atomically with the order header.
type CreateOrderInput struct {
	Email         string
	FirstName     string
	LastName      string
	Address       string
	City          string
	PostalCode    string
	Country       string
	SubtotalCents int64
	ShippingCents int64
	TotalCents    int64
	Lines         []domain.LineItem
}

type Repository interface {
	Create(ctx context.Context, in CreateOrderInput) (*domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	ListRecent(ctx context.Context, limit int) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id, status string) error
}
