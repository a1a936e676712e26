package product

import (
	"time"

	"lokapasar-be/internal/catalog"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
	CategoryID  string
	BrandID     string
	SellerID    string
	OfferID     *string

	// Populated on reads for response mapping.
	CategoryName string
	BrandName    string
	SellerName   string
	Offer        *catalog.Offer
}

// FinalPrice returns the price after applying the product's offer when it is
// active and the instant falls inside the offer window; otherwise the list
// price.
func (p *Product) FinalPrice(now time.Time) decimal.Decimal {
	if p.Offer.ActiveAt(now) {
		discount := p.Price.Mul(p.Offer.DiscountPercent).Div(decimal.NewFromInt(100))
		return p.Price.Sub(discount)
	}
	return p.Price
}

type CreateProductParams struct {
	Name         string
	Description  string
	Price        decimal.Decimal
	Stock        int
	CategoryName string
	BrandName    string
	OfferName    *string
	SellerID     string
}

type UpdateProductParams struct {
	ID          string
	Name        *string
	Description *string
	Price       *decimal.Decimal
	Stock       *int
	OfferName   *string
}
