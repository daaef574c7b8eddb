package checkout

import (
	"context"
	"io"
	"log"
	"strings"

	"ravio-storefront/internal/cart"
	"ravio-storefront/internal/domain"
	orderrepo "ravio-storefront/internal/repository/order"
)

// Input is the checkout form: contact and shipping details for the order.
type Input struct {
	Email      string `json:"email"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// ValidationError reports a missing checkout form field.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return e.Field + " required"
}

func (in Input) validate() error {
	for _, f := range []struct {
		name, value string
	}{
		{"email", in.Email},
		{"firstName", in.FirstName},
		{"lastName", in.LastName},
		{"address", in.Address},
		{"city", in.City},
		{"postalCode", in.PostalCode},
		{"country", in.Country},
	} {
		if strings.TrimSpace(f.value) == "" {
			return &ValidationError{Field: f.name}
		}
	}
	return nil
}

type Service struct {
	orders orderrepo.Repository
	logger *log.Logger
}

func New(orders orderrepo.Repository, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{orders: orders, logger: logger}
}

// PlaceOrder persists the cart's items as an order and, only once that
// succeeds, clears the cart. A failed submission leaves the cart untouched so
// the user can retry.
func (s *Service) PlaceOrder(ctx context.Context, eng *cart.Engine, in Input) (*domain.Order, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	items := eng.Items()
	if len(items) == 0 {
		return nil, domain.ErrEmptyCart
	}
	summary := cart.Summarize(eng.SubtotalCents())

	order, err := s.orders.Create(ctx, orderrepo.CreateOrderInput{
		Email:         strings.TrimSpace(in.Email),
		FirstName:     strings.TrimSpace(in.FirstName),
		LastName:      strings.TrimSpace(in.LastName),
		Address:       strings.TrimSpace(in.Address),
		City:          strings.TrimSpace(in.City),
		PostalCode:    strings.TrimSpace(in.PostalCode),
		Country:       strings.TrimSpace(in.Country),
		SubtotalCents: summary.SubtotalCents,
		ShippingCents: summary.ShippingCents,
		TotalCents:    summary.TotalCents,
		Lines:         items,
	})
	if err != nil {
		s.logger.Printf("checkout: create order: %v", err)
		return nil, err
	}

	if err := eng.Clear(ctx); err != nil {
		// The order is placed; a stale snapshot only risks the cart
		// reappearing until its TTL lapses.
		s.logger.Printf("checkout: clear cart after order %s: %v", order.ID, err)
	}
	return order, nil
}
