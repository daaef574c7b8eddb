package httpserver

import (
	"fmt"
	"time"

	"ravio-storefront/internal/cart"
	"ravio-storefront/internal/domain"
)

// priceValue renders a cent amount for clients: raw cents plus the value
// formatted to exactly two decimal places.
type priceValue struct {
	CentAmount     int64  `json:"centAmount"`
	CurrencyCode   string `json:"currencyCode"`
	FractionDigits int    `json:"fractionDigits"`
	Formatted      string `json:"formatted"`
}

func price(cents int64, currency string) priceValue {
	return priceValue{
		CentAmount:     cents,
		CurrencyCode:   currency,
		FractionDigits: 2,
		Formatted:      formatCents(cents),
	}
}

func formatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

type cartLineResponse struct {
	ProductID string     `json:"productId"`
	Name      string     `json:"name"`
	Size      string     `json:"size"`
	Quantity  int        `json:"quantity"`
	UnitPrice priceValue `json:"unitPrice"`
	Total     priceValue `json:"total"`
	Image     string     `json:"image,omitempty"`
}

type cartResponse struct {
	Items      []cartLineResponse `json:"items"`
	TotalItems int                `json:"totalItems"`
	Subtotal   priceValue         `json:"subtotal"`
	Shipping   priceValue         `json:"shipping"`
	Total      priceValue         `json:"total"`
}

func toCartResponse(eng *cart.Engine) cartResponse {
	items := eng.Items()
	lines := make([]cartLineResponse, 0, len(items))
	for _, li := range items {
		lines = append(lines, cartLineResponse{
			ProductID: li.ProductID,
			Name:      li.Name,
			Size:      li.Size,
			Quantity:  li.Quantity,
			UnitPrice: price(li.UnitPriceCents, "USD"),
			Total:     price(li.ExtensionCents(), "USD"),
			Image:     li.Image,
		})
	}
	summary := cart.Summarize(eng.SubtotalCents())
	return cartResponse{
		Items:      lines,
		TotalItems: eng.TotalItems(),
		Subtotal:   price(summary.SubtotalCents, "USD"),
		Shipping:   price(summary.ShippingCents, "USD"),
		Total:      price(summary.TotalCents, "USD"),
	}
}

type productResponse struct {
	ID          string     `json:"id"`
	Key         string     `json:"key"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Price       priceValue `json:"price"`
	Category    string     `json:"category"`
	Sizes       []string   `json:"sizes"`
	Image       string     `json:"image,omitempty"`
}

func toProductResponse(p domain.Product) productResponse {
	sizes := p.Sizes
	if sizes == nil {
		sizes = []string{}
	}
	return productResponse{
		ID:          p.ID,
		Key:         p.Key,
		Name:        p.Name,
		Description: p.Description,
		Price:       price(p.PriceCents, p.Currency),
		Category:    p.Category,
		Sizes:       sizes,
		Image:       p.Image,
	}
}

type orderResponse struct {
	ID        string              `json:"id"`
	Email     string              `json:"email"`
	Name      string              `json:"name"`
	Status    string              `json:"status"`
	Subtotal  priceValue          `json:"subtotal"`
	Shipping  priceValue          `json:"shipping"`
	Total     priceValue          `json:"total"`
	CreatedAt string              `json:"createdAt"`
	Lines     []orderLineResponse `json:"lines,omitempty"`
}

type orderLineResponse struct {
	ProductID string     `json:"productId"`
	Name      string     `json:"name"`
	Size      string     `json:"size"`
	Quantity  int        `json:"quantity"`
	UnitPrice priceValue `json:"unitPrice"`
	Total     priceValue `json:"total"`
}

func toOrderResponse(o domain.Order) orderResponse {
	lines := make([]orderLineResponse, 0, len(o.Lines))
	for _, l := range o.Lines {
		lines = append(lines, orderLineResponse{
			ProductID: l.ProductID,
			Name:      l.Name,
			Size:      l.Size,
			Quantity:  l.Quantity,
			UnitPrice: price(l.UnitPriceCents, "USD"),
			Total:     price(l.TotalCents, "USD"),
		})
	}
	return orderResponse{
		ID:        o.ID,
		Email:     o.Email,
		Name:      o.FirstName + " " + o.LastName,
		Status:    o.Status,
		Subtotal:  price(o.SubtotalCents, "USD"),
		Shipping:  price(o.ShippingCents, "USD"),
		Total:     price(o.TotalCents, "USD"),
		CreatedAt: o.CreatedAt.UTC().Format(time.RFC3339),
		Lines:     lines,
	}
}
