package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")

	// ErrEmptyCart indicates an operation that needs a non-empty cart.
	ErrEmptyCart = errors.New("cart is empty")
)
