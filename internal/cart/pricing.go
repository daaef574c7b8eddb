package cart

// Orders at or above the threshold ship free; everything below pays the flat
// standard fee.
const (
	FreeShippingThresholdCents int64 = 8000
	StandardShippingFeeCents   int64 = 999
)

// Summary is the order-summary arithmetic shown on the cart and checkout
// views. All amounts are minor currency units.
type Summary struct {
	SubtotalCents int64 `json:"subtotalCents"`
	ShippingCents int64 `json:"shippingCents"`
	TotalCents    int64 `json:"totalCents"`
}

// Summarize computes shipping and the order total for a subtotal.
func Summarize(subtotalCents int64) Summary {
	var shipping int64
	if subtotalCents < FreeShippingThresholdCents {
		shipping = StandardShippingFeeCents
	}
	return Summary{
		SubtotalCents: subtotalCents,
		ShippingCents: shipping,
		TotalCents:    subtotalCents + shipping,
	}
}
