package catalog

import (
	"context"
	"errors"

	"ravio-storefront/internal/domain"
	productrepo "ravio-storefront/internal/repository/product"
)

var (
	ErrUnknownSort     = errors.New("unknown sort key")
	ErrUnknownCategory = errors.New("unknown category")
)

// Categories the shop filters on. "all" (or empty) means no filter.
var categories = map[string]bool{
	"essentials": true,
	"premium":    true,
	"organic":    true,
}

type Service struct {
	repo productrepo.Repository
}

func New(repo productrepo.Repository) *Service {
	return &Service{repo: repo}
}

// List returns products filtered by category and ordered by the sort key.
func (s *Service) List(ctx context.Context, category, sort string) ([]domain.Product, error) {
	if category == "all" {
		category = ""
	}
	if category != "" && !categories[category] {
		return nil, ErrUnknownCategory
	}

	switch sort {
	case "", productrepo.SortFeatured, productrepo.SortPriceLow, productrepo.SortPriceHigh, productrepo.SortName:
	default:
		return nil, ErrUnknownSort
	}

	return s.repo.List(ctx, productrepo.ListFilter{Category: category, Sort: sort})
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// Save creates or updates a product (back office).
func (s *Service) Save(ctx context.Context, p domain.Product) (*domain.Product, error) {
	if p.Key == "" || p.Name == "" {
		return nil, errors.New("key and name required")
	}
	if p.PriceCents < 0 {
		return nil, errors.New("price must not be negative")
	}
	if p.Category == "" || !categories[p.Category] {
		return nil, ErrUnknownCategory
	}
	if p.Currency == "" {
		p.Currency = "USD"
	}
	return s.repo.Upsert(ctx, p)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
