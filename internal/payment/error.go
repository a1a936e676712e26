package payment

import "errors"

var (
	ErrCardDeclined   = errors.New("card was declined")
	ErrChargeNotFound = errors.New("charge not found")
)
