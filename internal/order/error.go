package order

import "errors"

var (
	ErrOrderNotFound        = errors.New("order not found")
	ErrEmptyCart            = errors.New("cart is empty")
	ErrInsufficientStock    = errors.New("not enough stock for an item in the cart")
	ErrInvalidPaymentMethod = errors.New("unsupported payment method")
	ErrPaymentDeclined      = errors.New("payment was declined")
)
