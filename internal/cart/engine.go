package cart

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"sync"

	"ravio-storefront/internal/cartstore"
	"ravio-storefront/internal/domain"
)

// Candidate is what a caller adds to the cart: a product variant without a
// quantity. The engine trusts these values as given.
type Candidate struct {
	ProductID      string
	Name           string
	UnitPriceCents int64
	Size           string
	Image          string
}

// Engine owns one cart's line items. Duplicate (productID, size) additions
// merge into quantity increments; every mutation is written through to the
// snapshot store after it is applied in memory. All mutations funnel through
// the engine; consumers only read derived values.
type Engine struct {
	key    string
	store  cartstore.Store
	logger *log.Logger

	mu    sync.Mutex
	items []domain.LineItem
}

// NewEngine returns an empty engine persisting under key. Use Hydrate to
// restore a previous snapshot.
func NewEngine(key string, store cartstore.Store, logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Engine{key: key, store: store, logger: logger}
}

// Hydrate restores the cart from the snapshot store. A missing or unparsable
// snapshot yields an empty cart, never an error.
func (e *Engine) Hydrate(ctx context.Context) {
	data, err := e.store.Load(ctx, e.key)
	if err != nil {
		if !errors.Is(err, cartstore.ErrNoSnapshot) {
			e.logger.Printf("cart %s: load snapshot: %v", e.key, err)
		}
		return
	}
	var items []domain.LineItem
	if err := json.Unmarshal(data, &items); err != nil {
		e.logger.Printf("cart %s: corrupt snapshot, starting empty: %v", e.key, err)
		return
	}
	e.mu.Lock()
	e.items = items
	e.mu.Unlock()
}

// AddItem merges the candidate into an existing (productID, size) slot,
// incrementing its quantity by one, or appends a new slot with quantity one.
// A merge leaves the slot's captured name, price and image untouched.
func (e *Engine) AddItem(ctx context.Context, c Candidate) error {
	e.mu.Lock()
	merged := false
	for i := range e.items {
		if e.items[i].SameSlot(c.ProductID, c.Size) {
			e.items[i].Quantity++
			merged = true
			break
		}
	}
	if !merged {
		e.items = append(e.items, domain.LineItem{
			ProductID:      c.ProductID,
			Name:           c.Name,
			UnitPriceCents: c.UnitPriceCents,
			Size:           c.Size,
			Quantity:       1,
			Image:          c.Image,
		})
	}
	e.mu.Unlock()
	return e.persist(ctx)
}

// RemoveItem drops the (productID, size) slot. Removing an absent slot is a
// no-op, not an error.
func (e *Engine) RemoveItem(ctx context.Context, productID, size string) error {
	e.mu.Lock()
	kept := e.items[:0]
	for _, li := range e.items {
		if !li.SameSlot(productID, size) {
			kept = append(kept, li)
		}
	}
	e.items = kept
	e.mu.Unlock()
	return e.persist(ctx)
}

// UpdateQuantity sets the slot's quantity to the given value exactly. A value
// of zero or less removes the slot. Missing slots are a no-op.
func (e *Engine) UpdateQuantity(ctx context.Context, productID, size string, quantity int) error {
	if quantity <= 0 {
		return e.RemoveItem(ctx, productID, size)
	}
	e.mu.Lock()
	for i := range e.items {
		if e.items[i].SameSlot(productID, size) {
			e.items[i].Quantity = quantity
			break
		}
	}
	e.mu.Unlock()
	return e.persist(ctx)
}

// Clear empties the cart and deletes the stored snapshot.
func (e *Engine) Clear(ctx context.Context) error {
	e.mu.Lock()
	e.items = nil
	e.mu.Unlock()
	if err := e.store.Delete(ctx, e.key); err != nil {
		e.logger.Printf("cart %s: delete snapshot: %v", e.key, err)
		return err
	}
	return nil
}

// Items returns a copy of the line items in insertion order.
func (e *Engine) Items() []domain.LineItem {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]domain.LineItem, len(e.items))
	copy(out, e.items)
	return out
}

// TotalItems is the sum of quantities across all line items.
func (e *Engine) TotalItems() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	total := 0
	for _, li := range e.items {
		total += li.Quantity
	}
	return total
}

// SubtotalCents is the sum of line extensions, using each slot's captured
// unit price rather than a fresh catalog lookup.
func (e *Engine) SubtotalCents() int64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	var total int64
	for _, li := range e.items {
		total += li.ExtensionCents()
	}
	return total
}

// persist writes the current snapshot after the in-memory mutation, so reads
// within the process always observe the newest state even if the write fails.
func (e *Engine) persist(ctx context.Context) error {
	e.mu.Lock()
	items := e.items
	if items == nil {
		items = []domain.LineItem{}
	}
	data, err := json.Marshal(items)
	e.mu.Unlock()
	if err != nil {
		return err
	}
	if err := e.store.Save(ctx, e.key, data); err != nil {
		e.logger.Printf("cart %s: save snapshot: %v", e.key, err)
		return err
	}
	return nil
}
