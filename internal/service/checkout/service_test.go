package checkout

import (
	"context"
	"errors"
	"testing"

	"ravio-storefront/internal/cart"
	"ravio-storefront/internal/cartstore"
	"ravio-storefront/internal/domain"
	orderrepo "ravio-storefront/internal/repository/order"
)

type stubOrderRepo struct {
	created    *domain.Order
	createErr  error
	lastCreate orderrepo.CreateOrderInput
	calls      int
}

func (s *stubOrderRepo) Create(_ context.Context, in orderrepo.CreateOrderInput) (*domain.Order, error) {
	s.calls++
	s.lastCreate = in
	if s.createErr != nil {
		return nil, s.createErr
	}
	if s.created != nil {
		return s.created, nil
	}
	return &domain.Order{ID: "ord-1", Status: domain.OrderStatusProcessing, TotalCents: in.TotalCents}, nil
}

func (s *stubOrderRepo) GetByID(_ context.Context, _ string) (*domain.Order, error) {
	return nil, domain.ErrNotFound
}

func (s *stubOrderRepo) ListRecent(_ context.Context, _ int) ([]domain.Order, error) {
	return nil, nil
}

func (s *stubOrderRepo) UpdateStatus(_ context.Context, _, _ string) error {
	return nil
}

func validInput() Input {
	return Input{
		Email:      "jane@example.com",
		FirstName:  "Jane",
		LastName:   "Doe",
		Address:    "1 Main St",
		City:       "Springfield",
		PostalCode: "12345",
		Country:    "United States",
	}
}

func cartWith(t *testing.T, store cartstore.Store, candidates ...cart.Candidate) *cart.Engine {
	t.Helper()
	eng := cart.NewEngine("cart:test", store, nil)
	for _, c := range candidates {
		if err := eng.AddItem(context.Background(), c); err != nil {
			t.Fatalf("AddItem: %v", err)
		}
	}
	return eng
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	repo := &stubOrderRepo{}
	svc := New(repo, nil)
	eng := cartWith(t, cartstore.NewMemoryStore())

	_, err := svc.PlaceOrder(context.Background(), eng, validInput())
	if !errors.Is(err, domain.ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
	if repo.calls != 0 {
		t.Fatalf("must not create an order for an empty cart")
	}
}

func TestPlaceOrderValidation(t *testing.T) {
	repo := &stubOrderRepo{}
	svc := New(repo, nil)
	eng := cartWith(t, cartstore.NewMemoryStore(),
		cart.Candidate{ProductID: "1", Name: "Tee", UnitPriceCents: 4900, Size: "M"})

	in := validInput()
	in.Email = "  "
	if _, err := svc.PlaceOrder(context.Background(), eng, in); err == nil || err.Error() != "email required" {
		t.Fatalf("expected email validation error, got %v", err)
	}
	if eng.TotalItems() != 1 {
		t.Fatalf("validation failure must leave the cart untouched")
	}
}

func TestPlaceOrderSuccessClearsCart(t *testing.T) {
	repo := &stubOrderRepo{}
	svc := New(repo, nil)
	store := cartstore.NewMemoryStore()
	eng := cartWith(t, store,
		cart.Candidate{ProductID: "1", Name: "Tee", UnitPriceCents: 4900, Size: "M"},
		cart.Candidate{ProductID: "1", Name: "Tee", UnitPriceCents: 4900, Size: "M"})

	order, err := svc.PlaceOrder(context.Background(), eng, validInput())
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}
	if order.ID != "ord-1" {
		t.Fatalf("unexpected order %+v", order)
	}
	// 98.00 subtotal clears the free-shipping threshold.
	if repo.lastCreate.SubtotalCents != 9800 || repo.lastCreate.ShippingCents != 0 || repo.lastCreate.TotalCents != 9800 {
		t.Fatalf("unexpected totals %+v", repo.lastCreate)
	}
	if len(repo.lastCreate.Lines) != 1 || repo.lastCreate.Lines[0].Quantity != 2 {
		t.Fatalf("unexpected lines %+v", repo.lastCreate.Lines)
	}
	if eng.TotalItems() != 0 {
		t.Fatalf("cart must be cleared after a successful order")
	}
	if _, err := store.Load(context.Background(), "cart:test"); !errors.Is(err, cartstore.ErrNoSnapshot) {
		t.Fatalf("snapshot must be deleted after checkout, got %v", err)
	}
}

func TestPlaceOrderChargesShippingBelowThreshold(t *testing.T) {
	repo := &stubOrderRepo{}
	svc := New(repo, nil)
	eng := cartWith(t, cartstore.NewMemoryStore(),
		cart.Candidate{ProductID: "3", Name: "Minimalist Classic", UnitPriceCents: 4500, Size: "S"})

	if _, err := svc.PlaceOrder(context.Background(), eng, validInput()); err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}
	if repo.lastCreate.ShippingCents != 999 || repo.lastCreate.TotalCents != 5499 {
		t.Fatalf("unexpected totals %+v", repo.lastCreate)
	}
}

func TestPlaceOrderFailureLeavesCart(t *testing.T) {
	repo := &stubOrderRepo{createErr: errors.New("boom")}
	svc := New(repo, nil)
	eng := cartWith(t, cartstore.NewMemoryStore(),
		cart.Candidate{ProductID: "1", Name: "Tee", UnitPriceCents: 4900, Size: "M"})

	if _, err := svc.PlaceOrder(context.Background(), eng, validInput()); err == nil || err.Error() != "boom" {
		t.Fatalf("expected repo error, got %v", err)
	}
	if eng.TotalItems() != 1 {
		t.Fatalf("failed checkout must leave the cart for retry")
	}
}
