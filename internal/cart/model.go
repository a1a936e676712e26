package cart

import (
	"time"

	"lokapasar-be/internal/product"
)

type Item struct {
	ID        int64
	BuyerID   string
	ProductID string
	Quantity  int
	CreatedAt time.Time
}

// Line is a cart item joined with its product so callers can re-price
// against the current offer window.
type Line struct {
	Item
	Product *product.Product
}
