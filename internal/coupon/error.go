package coupon

import "errors"

var (
	ErrCouponNotFound = errors.New("coupon not found")
	ErrCouponExists   = errors.New("coupon code already exists")
	ErrCouponInvalid  = errors.New("coupon is expired or already redeemed")
	ErrMinOrderNotMet = errors.New("order total is below the coupon minimum order value")
	ErrInvalidCoupon  = errors.New("coupon fields are invalid")
)
