package product

import (
	"context"

	"ravio-storefront/internal/domain"
)

// Sort keys accepted by List, mirroring the shop page controls.
const (
	SortFeatured  = "featured"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortName      = "name"
)

// ListFilter narrows and orders a product listing. An empty Category means
// all categories; an empty Sort means featured order.
type ListFilter struct {
	Category string
	Sort     string
}

type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Upsert(ctx context.Context, product domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}
