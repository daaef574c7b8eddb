package domain

// LineItem is a quantity of one product variant held in a cart. Identity of a
// cart slot is the (ProductID, Size) pair; Name, UnitPriceCents and Image are
// captured when the slot is created and kept for display only.
type LineItem struct {
	ProductID      string `json:"productId"`
	Name           string `json:"name"`
	UnitPriceCents int64  `json:"unitPriceCents"`
	Size           string `json:"size"`
	Quantity       int    `json:"quantity"`
	Image          string `json:"image,omitempty"`
}

// SameSlot reports whether the item occupies the (productID, size) slot.
func (li LineItem) SameSlot(productID, size string) bool {
	return li.ProductID == productID && li.Size == size
}

// ExtensionCents is the line total: unit price times quantity.
func (li LineItem) ExtensionCents() int64 {
	return li.UnitPriceCents * int64(li.Quantity)
}
