package httpserver

import (
	"context"
	"io"
	"log"
	"time"

	"ravio-storefront/internal/cart"
	"ravio-storefront/internal/cartstore"
	"ravio-storefront/internal/domain"
	orderrepo "ravio-storefront/internal/repository/order"
	productrepo "ravio-storefront/internal/repository/product"
	"ravio-storefront/internal/service/catalog"
	"ravio-storefront/internal/service/checkout"
	"ravio-storefront/internal/service/drops"
	"github.com/gin-gonic/gin"
)

type stubProductRepo struct {
	products map[string]domain.Product
}

func (s *stubProductRepo) List(_ context.Context, _ productrepo.ListFilter) ([]domain.Product, error) {
	var out []domain.Product
	for _, p := range s.products {
		out = append(out, p)
	}
	return out, nil
}

func (s *stubProductRepo) GetByID(_ context.Context, id string) (*domain.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

func (s *stubProductRepo) Upsert(_ context.Context, p domain.Product) (*domain.Product, error) {
	if p.ID == "" {
		p.ID = "generated-id"
	}
	s.products[p.ID] = p
	return &p, nil
}

func (s *stubProductRepo) Delete(_ context.Context, id string) error {
	if _, ok := s.products[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.products, id)
	return nil
}

type stubOrderRepo struct {
	orders     []domain.Order
	createErr  error
	statusErr  error
	lastStatus string
}

func (s *stubOrderRepo) Create(_ context.Context, in orderrepo.CreateOrderInput) (*domain.Order, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	order := domain.Order{
		ID:            "ord-1",
		Email:         in.Email,
		FirstName:     in.FirstName,
		LastName:      in.LastName,
		SubtotalCents: in.SubtotalCents,
		ShippingCents: in.ShippingCents,
		TotalCents:    in.TotalCents,
		Status:        domain.OrderStatusProcessing,
		CreatedAt:     time.Now().UTC(),
	}
	s.orders = append(s.orders, order)
	return &order, nil
}

func (s *stubOrderRepo) GetByID(_ context.Context, _ string) (*domain.Order, error) {
	return nil, domain.ErrNotFound
}

func (s *stubOrderRepo) ListRecent(_ context.Context, _ int) ([]domain.Order, error) {
	return s.orders, nil
}

func (s *stubOrderRepo) UpdateStatus(_ context.Context, _, status string) error {
	if s.statusErr != nil {
		return s.statusErr
	}
	s.lastStatus = status
	return nil
}

type stubNewsletterRepo struct {
	emails []string
}

func (s *stubNewsletterRepo) Subscribe(_ context.Context, email string) error {
	s.emails = append(s.emails, email)
	return nil
}

func (s *stubNewsletterRepo) Count(_ context.Context) (int64, error) {
	return int64(len(s.emails)), nil
}

func essentialTee() domain.Product {
	return domain.Product{
		ID:         "p1",
		Key:        "essential-white-tee",
		Name:       "Essential White Tee",
		PriceCents: 4900,
		Currency:   "USD",
		Category:   "essentials",
		Sizes:      []string{"XS", "S", "M", "L", "XL"},
	}
}

type testEnv struct {
	router     *gin.Engine
	products   *stubProductRepo
	orders     *stubOrderRepo
	newsletter *stubNewsletterRepo
}

func newTestEnv() *testEnv {
	gin.SetMode(gin.TestMode)
	logger := log.New(io.Discard, "", 0)

	products := &stubProductRepo{products: map[string]domain.Product{"p1": essentialTee()}}
	orders := &stubOrderRepo{}
	letters := &stubNewsletterRepo{}

	catalogSvc := catalog.New(products)
	manager := cart.NewManager(cartstore.NewMemoryStore(), logger)

	deps := Deps{
		Carts:       manager,
		CatalogSvc:  catalogSvc,
		CheckoutSvc: checkout.New(orders, logger),
		DropsSvc:    drops.New(time.Now().UTC().Add(48 * time.Hour)),
		Orders:      orders,
		Newsletter:  letters,
		AdminToken:  "secret",
		CORSOrigins: []string{"http://localhost:5173"},
	}

	return &testEnv{
		router:     buildRouter(logger, nil, deps),
		products:   products,
		orders:     orders,
		newsletter: letters,
	}
}
