package wishlist

import (
	"time"

	"lokapasar-be/internal/product"
)

type Item struct {
	ID        int64
	BuyerID   string
	ProductID string
	CreatedAt time.Time
}

type Entry struct {
	Item
	Product *product.Product
}
