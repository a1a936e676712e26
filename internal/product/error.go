package product

import "errors"

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrInsufficientStock = errors.New("not enough stock available")
	ErrInvalidPrice      = errors.New("price must not be negative")
	ErrInvalidStock      = errors.New("stock must not be negative")
	ErrNotOwner          = errors.New("product belongs to another seller")
)
