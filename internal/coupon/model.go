package coupon

import (
	"time"

	"github.com/shopspring/decimal"
)

type Coupon struct {
	ID              string
	Code            string
	DiscountPercent decimal.Decimal
	MaxDiscount     decimal.Decimal
	MinOrderValue   decimal.Decimal
	SingleUse       bool
	Expiration      time.Time
	CreatedAt       time.Time
}

// ValidFor reports whether the coupon can be applied by a buyer at this
// instant. A coupon is spent the moment it reaches its expiration, and a
// single-use coupon may be redeemed at most once per buyer.
func (c *Coupon) ValidFor(buyerRedeemed bool, now time.Time) bool {
	if c == nil {
		return false
	}
	if c.SingleUse && buyerRedeemed {
		return false
	}
	return now.Before(c.Expiration)
}

// Discount returns the amount taken off an order of the given value. Orders
// below the minimum get nothing; above it, the percentage discount applies
// capped at MaxDiscount.
func (c *Coupon) Discount(orderValue decimal.Decimal) decimal.Decimal {
	if orderValue.LessThan(c.MinOrderValue) {
		return decimal.Zero
	}
	discount := orderValue.Mul(c.DiscountPercent).Div(decimal.NewFromInt(100))
	if discount.GreaterThan(c.MaxDiscount) {
		return c.MaxDiscount
	}
	return discount
}

type UpdateCouponParams struct {
	Code            string
	DiscountPercent *decimal.Decimal
	MaxDiscount     *decimal.Decimal
	MinOrderValue   *decimal.Decimal
	SingleUse       *bool
	Expiration      *time.Time
}
